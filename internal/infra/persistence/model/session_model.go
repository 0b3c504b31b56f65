package model

import (
	"time"

	"gorm.io/datatypes"
)

// SessionModel mirrors the 'sessions' table. The state bag is stored as JSON.
type SessionModel struct {
	ID        string                           `gorm:"type:varchar(64);primaryKey"`
	Data      datatypes.JSONType[SessionState] `gorm:"type:jsonb;not null"`
	ExpiresAt time.Time                        `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

type SessionState struct {
	Status    string             `json:"status"`
	Principal *SessionPrincipal  `json:"principal,omitempty"`
	Nonce     string             `json:"nonce,omitempty"`
	X         *SessionXChallenge `json:"x,omitempty"`
	OTP       *SessionOTP        `json:"otp,omitempty"`
	TTL       time.Duration      `json:"ttl"`
}

type SessionPrincipal struct {
	IdentityID            string     `json:"identity_id"`
	Role                  string     `json:"role"`
	Provider              string     `json:"provider"`
	Address               string     `json:"address,omitempty"`
	XUserID               string     `json:"x_user_id,omitempty"`
	XUsername             string     `json:"x_username,omitempty"`
	XDisplayName          string     `json:"x_display_name,omitempty"`
	XProfileImageURL      string     `json:"x_profile_image_url,omitempty"`
	XAccessTokenExpiresAt *time.Time `json:"x_access_token_expires_at,omitempty"`
	WhatsAppPhone         string     `json:"whatsapp_phone,omitempty"`
}

type SessionXChallenge struct {
	State        string `json:"oauth_state"`
	CodeVerifier string `json:"oauth_code_verifier"`
}

type SessionOTP struct {
	Code      string    `json:"otp_code"`
	Phone     string    `json:"pending_phone"`
	ExpiresAt time.Time `json:"otp_expires_at"`
	Attempts  int       `json:"attempts"`
}
