package handler

import (
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

func TestWhatsAppHandler_SendOTP(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(uc *mockUsecase.MockWhatsAppAuthUsecase, sess *entity.Session)
		expectErr  error
	}{
		{
			name: "success",
			body: `{"phone_number":"+15551234567"}`,
			setupMocks: func(uc *mockUsecase.MockWhatsAppAuthUsecase, sess *entity.Session) {
				uc.EXPECT().SendOTP(mock.Anything, sess, &usecase.SendOTPInput{PhoneNumber: "+15551234567"}).
					Return(&usecase.SendOTPOutput{Success: true, Message: "OTP sent successfully"}, nil).Once()
			},
		},
		{
			name:      "missing phone",
			body:      `{}`,
			expectErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "rate limited",
			body: `{"phone_number":"+15551234567"}`,
			setupMocks: func(uc *mockUsecase.MockWhatsAppAuthUsecase, sess *entity.Session) {
				uc.EXPECT().SendOTP(mock.Anything, sess, mock.Anything).Return(nil, domainerrors.ErrTooManyOTPRequests).Once()
			},
			expectErr: domainerrors.ErrTooManyOTPRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockWhatsAppAuthUsecase(t)
			sess := newTestSession()
			if tt.setupMocks != nil {
				tt.setupMocks(uc, sess)
			}
			h := NewWhatsAppHandler(uc)
			c, rec := newTestContext(http.MethodPost, "/api/auth/whatsapp/send-otp", tt.body, sess)

			err := h.SendOTP(c)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)

				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, `{"success":true,"message":"OTP sent successfully"}`, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "otp_code")
		})
	}
}

func TestWhatsAppHandler_VerifyOTP(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := mockUsecase.NewMockWhatsAppAuthUsecase(t)
		h := NewWhatsAppHandler(uc)
		sess := newTestSession()
		c, rec := newTestContext(http.MethodPost, "/api/auth/whatsapp/verify-otp", `{"otp_code":"012345"}`, sess)

		uc.EXPECT().VerifyOTP(mock.Anything, sess, &usecase.VerifyOTPInput{OTPCode: "012345"}).Return(&usecase.WhatsAppSessionOutput{
			MongoID:       "id-1",
			Role:          entity.RoleUser,
			WhatsAppPhone: "15551234567",
			Status:        entity.SessionAuthenticated,
		}, nil).Once()

		require.NoError(t, h.VerifyOTP(c))
		assert.JSONEq(t, `{"mongo_id":"id-1","role":"USER","whatsapp_phone":"15551234567","status":"authenticated"}`, rec.Body.String())
	})

	t.Run("empty code reaches the use case", func(t *testing.T) {
		uc := mockUsecase.NewMockWhatsAppAuthUsecase(t)
		h := NewWhatsAppHandler(uc)
		sess := newTestSession()
		c, _ := newTestContext(http.MethodPost, "/api/auth/whatsapp/verify-otp", `{}`, sess)

		uc.EXPECT().VerifyOTP(mock.Anything, sess, &usecase.VerifyOTPInput{}).Return(nil, domainerrors.ErrOTPRequired).Once()

		assert.ErrorIs(t, h.VerifyOTP(c), domainerrors.ErrOTPRequired)
	})
}

func TestWhatsAppHandler_SessionAndSignOut(t *testing.T) {
	uc := mockUsecase.NewMockWhatsAppAuthUsecase(t)
	h := NewWhatsAppHandler(uc)
	sess := newTestSession()

	uc.EXPECT().Session(mock.Anything, sess).Return(nil, domainerrors.ErrUnauthorized).Once()
	c, _ := newTestContext(http.MethodGet, "/api/auth/whatsapp/session", "", sess)
	assert.ErrorIs(t, h.Session(c), domainerrors.ErrUnauthorized)

	uc.EXPECT().SignOut(mock.Anything, sess).Return(&usecase.SuccessOutput{Success: true}).Twice()
	for range 2 {
		c, rec := newTestContext(http.MethodGet, "/api/auth/whatsapp/signout", "", sess)
		require.NoError(t, h.SignOut(c))
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	}
}
