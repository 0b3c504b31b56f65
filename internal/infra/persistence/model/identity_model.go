package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// IdentityModel mirrors the 'identities' table. The external identifiers are
// nullable so that the unique indexes only apply when a value is present.
type IdentityModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role string    `gorm:"type:varchar(16);not null;default:USER"`

	Address *string `gorm:"type:varchar(42);uniqueIndex"`

	XUserID               *string `gorm:"type:varchar(64);uniqueIndex"`
	XUsername             string  `gorm:"type:varchar(100)"`
	XDisplayName          string  `gorm:"type:varchar(100)"`
	XProfileImageURL      string  `gorm:"type:text"`
	XAccessToken          string  `gorm:"type:text"`
	XRefreshToken         string  `gorm:"type:text"`
	XAccessTokenExpiresAt *time.Time

	WhatsAppPhone *string `gorm:"column:whatsapp_phone;type:varchar(16);uniqueIndex"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	RateLimits []RateLimitModel `gorm:"foreignKey:IdentityID;constraint:OnDelete:CASCADE"`
	APISecrets []APISecretModel `gorm:"foreignKey:IdentityID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}

// RateLimitModel mirrors the 'x_rate_limits' table. Rows keep insertion
// order through the serial id. Day holds the optional 24-hour window as JSON.
type RateLimitModel struct {
	ID          uint64         `gorm:"primaryKey;autoIncrement"`
	IdentityID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Endpoint    string         `gorm:"type:text;not null"`
	Method      string         `gorm:"type:varchar(10);not null"`
	Quota       int            `gorm:"column:rate_limit"`
	Remaining   int            `gorm:"column:remaining"`
	Reset       int64          `gorm:"column:reset;index"`
	Day         datatypes.JSON `gorm:"type:jsonb"`
	LastUpdated time.Time
}

// TableName explicitly sets the table name for GORM.
func (RateLimitModel) TableName() string {
	return "x_rate_limits"
}

// RateLimitWindowJSON is the encoded form of RateLimitModel.Day.
type RateLimitWindowJSON struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"`
}

// APISecretModel mirrors the 'api_secrets' table.
type APISecretModel struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	IdentityID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Key          string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Title        string    `gorm:"type:varchar(100)"`
	HashedSecret string    `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (APISecretModel) TableName() string {
	return "api_secrets"
}
