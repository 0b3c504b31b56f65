package handler

import (
	"errors"
	"net/http"
	"testing"

	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	mockUsecase "authhub/internal/mocks/usecase"
	"authhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestXHandler_Login(t *testing.T) {
	t.Run("redirects to provider", func(t *testing.T) {
		uc := mockUsecase.NewMockXAuthUsecase(t)
		h := NewXHandler(uc, newTestConfig(), newDiscardLogger())
		sess := newTestSession()
		c, rec := newTestContext(http.MethodGet, "/api/auth/x/login", "", sess)

		uc.EXPECT().Login(mock.Anything, sess).Return("https://x.com/i/oauth2/authorize?state=s", nil).Once()

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://x.com/i/oauth2/authorize?state=s", rec.Header().Get("Location"))
	})

	t.Run("not configured", func(t *testing.T) {
		uc := mockUsecase.NewMockXAuthUsecase(t)
		h := NewXHandler(uc, newTestConfig(), newDiscardLogger())
		sess := newTestSession()
		c, _ := newTestContext(http.MethodGet, "/api/auth/x/login", "", sess)

		uc.EXPECT().Login(mock.Anything, sess).Return("", domainerrors.ErrXNotConfigured).Once()

		assert.ErrorIs(t, h.Login(c), domainerrors.ErrXNotConfigured)
	})
}

func TestXHandler_Callback(t *testing.T) {
	tests := []struct {
		name    string
		callErr error
	}{
		{name: "success"},
		{name: "state mismatch", callErr: domainerrors.ErrBadRequest.WithDetails("state mismatch")},
		{name: "exchange failure", callErr: domainerrors.NewUpstreamError(errors.New("invalid_grant"), "exchange")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockXAuthUsecase(t)
			h := NewXHandler(uc, newTestConfig(), newDiscardLogger())
			sess := newTestSession()
			c, rec := newTestContext(http.MethodGet, "/api/auth/x/callback?code=c1&state=s1", "", sess)

			uc.EXPECT().Callback(mock.Anything, sess, &usecase.XCallbackInput{Code: "c1", State: "s1"}).Return(tt.callErr).Once()

			require.NoError(t, h.Callback(c))
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "http://localhost:3000/", rec.Header().Get("Location"))
		})
	}
}

func TestXHandler_CurrentUser(t *testing.T) {
	t.Run("profile", func(t *testing.T) {
		uc := mockUsecase.NewMockXAuthUsecase(t)
		h := NewXHandler(uc, newTestConfig(), newDiscardLogger())
		sess := newTestSession()
		c, rec := newTestContext(http.MethodGet, "/api/auth/x/current-user", "", sess)

		uc.EXPECT().CurrentUser(mock.Anything, sess).Return(&usecase.XCurrentUserOutput{
			ID:         "id-1",
			Role:       entity.RoleUser,
			XUserID:    "42",
			XUsername:  "alice",
			RateLimits: []usecase.RateLimitOutput{},
			Status:     entity.SessionAuthenticated,
		}, nil).Once()

		require.NoError(t, h.CurrentUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"x_username":"alice"`)
		assert.Contains(t, rec.Body.String(), `"rate_limits":[]`)
	})

	t.Run("session expired", func(t *testing.T) {
		uc := mockUsecase.NewMockXAuthUsecase(t)
		h := NewXHandler(uc, newTestConfig(), newDiscardLogger())
		sess := newTestSession()
		c, _ := newTestContext(http.MethodGet, "/api/auth/x/session", "", sess)

		uc.EXPECT().CurrentUser(mock.Anything, sess).Return(nil, domainerrors.ErrSessionExpired).Once()

		assert.ErrorIs(t, h.CurrentUser(c), domainerrors.ErrSessionExpired)
	})
}

func TestXHandler_Logout(t *testing.T) {
	uc := mockUsecase.NewMockXAuthUsecase(t)
	h := NewXHandler(uc, newTestConfig(), newDiscardLogger())
	sess := newTestSession()
	c, rec := newTestContext(http.MethodGet, "/api/auth/x/logout", "", sess)

	uc.EXPECT().Logout(mock.Anything, sess).Return(&usecase.SuccessOutput{Success: true}).Once()

	require.NoError(t, h.Logout(c))
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}
