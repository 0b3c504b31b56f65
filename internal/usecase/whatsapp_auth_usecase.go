package usecase

import (
	"context"

	"authhub/internal/domain/entity"
)

type SendOTPInput struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

type SendOTPOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type VerifyOTPInput struct {
	OTPCode string `json:"otp_code"`
}

// WhatsAppSessionOutput is the authenticated WhatsApp session.
type WhatsAppSessionOutput struct {
	MongoID       string               `json:"mongo_id"`
	Role          entity.Role          `json:"role"`
	WhatsAppPhone string               `json:"whatsapp_phone"`
	Status        entity.SessionStatus `json:"status"`
}

// WhatsAppAuthUsecase is the WhatsApp one-time password flow.
type WhatsAppAuthUsecase interface {
	SendOTP(ctx context.Context, sess *entity.Session, input *SendOTPInput) (*SendOTPOutput, error)
	VerifyOTP(ctx context.Context, sess *entity.Session, input *VerifyOTPInput) (*WhatsAppSessionOutput, error)
	Session(ctx context.Context, sess *entity.Session) (*WhatsAppSessionOutput, error)
	SignOut(ctx context.Context, sess *entity.Session) *SuccessOutput
}
