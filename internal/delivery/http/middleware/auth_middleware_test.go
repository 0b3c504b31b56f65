package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	mockUsecase "authhub/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authenticatedSession(role entity.Role) *entity.Session {
	sess := &entity.Session{ID: "sid-1"}
	sess.Authenticate(entity.Principal{IdentityID: "id-1", Role: role, Provider: entity.ProviderEVM})

	return sess
}

func TestAuthMiddleware_RequireAuthenticated(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		session     *entity.Session
		setupMocks  func(uc *mockUsecase.MockAPISecretUsecase)
		expectErr   error
		expectRole  entity.Role
		expectIdent string
	}{
		{
			name:        "session principal",
			session:     authenticatedSession(entity.RoleAdmin),
			expectRole:  entity.RoleAdmin,
			expectIdent: "id-1",
		},
		{
			name:      "anonymous session",
			session:   &entity.Session{ID: "sid-1", Status: entity.SessionUnauthenticated},
			expectErr: domainerrors.ErrUnauthorized,
		},
		{
			name:      "no session",
			expectErr: domainerrors.ErrUnauthorized,
		},
		{
			name:   "bearer api secret",
			header: "Bearer key-1:secret-1",
			setupMocks: func(uc *mockUsecase.MockAPISecretUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "key-1:secret-1").
					Return(&entity.Principal{IdentityID: "id-2", Role: entity.RoleSuper, Provider: entity.ProviderAPIKey}, nil).Once()
			},
			expectRole:  entity.RoleSuper,
			expectIdent: "id-2",
		},
		{
			name:    "bearer rejected even with a session",
			header:  "Bearer key-1:wrong",
			session: authenticatedSession(entity.RoleAdmin),
			setupMocks: func(uc *mockUsecase.MockAPISecretUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "key-1:wrong").
					Return(nil, domainerrors.ErrUnauthorized).Once()
			},
			expectErr: domainerrors.ErrUnauthorized,
		},
		{
			name:      "non bearer scheme",
			header:    "Basic dXNlcjpwYXNz",
			expectErr: domainerrors.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockAPISecretUsecase(t)
			if tt.setupMocks != nil {
				tt.setupMocks(uc)
			}
			mw := NewAuthMiddleware(uc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())
			if tt.session != nil {
				deliverycontext.SetSession(c, tt.session)
			}

			var principal *entity.Principal
			err := mw.RequireAuthenticated(func(c echo.Context) error {
				principal = deliverycontext.GetPrincipal(c)

				return nil
			})(c)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, principal)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, principal)
			assert.Equal(t, tt.expectRole, principal.Role)
			assert.Equal(t, tt.expectIdent, principal.IdentityID)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name      string
		principal *entity.Principal
		guard     func(mw *AuthMiddleware) echo.MiddlewareFunc
		expectErr error
	}{
		{
			name:      "admin passes admin guard",
			principal: &entity.Principal{Role: entity.RoleAdmin},
			guard:     (*AuthMiddleware).AdminOnly,
		},
		{
			name:      "super passes admin guard",
			principal: &entity.Principal{Role: entity.RoleSuper},
			guard:     (*AuthMiddleware).AdminOnly,
		},
		{
			name:      "user fails admin guard",
			principal: &entity.Principal{Role: entity.RoleUser},
			guard:     (*AuthMiddleware).AdminOnly,
			expectErr: domainerrors.ErrForbidden,
		},
		{
			name:      "admin fails super guard",
			principal: &entity.Principal{Role: entity.RoleAdmin},
			guard:     (*AuthMiddleware).SuperOnly,
			expectErr: domainerrors.ErrForbidden,
		},
		{
			name:      "missing principal",
			guard:     (*AuthMiddleware).SuperOnly,
			expectErr: domainerrors.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := NewAuthMiddleware(mockUsecase.NewMockAPISecretUsecase(t))
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			if tt.principal != nil {
				deliverycontext.SetPrincipal(c, tt.principal)
			}

			called := false
			err := tt.guard(mw)(func(c echo.Context) error {
				called = true

				return nil
			})(c)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.False(t, called)

				return
			}
			require.NoError(t, err)
			assert.True(t, called)
		})
	}
}
