package usecase

import (
	"context"
	"time"

	"authhub/internal/domain/entity"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

type ListUsersInput struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// UserSummary is an identity without credentials or tokens.
type UserSummary struct {
	ID               string      `json:"id"`
	Role             entity.Role `json:"role"`
	Address          string      `json:"address,omitempty"`
	XUserID          string      `json:"x_user_id,omitempty"`
	XUsername        string      `json:"x_username,omitempty"`
	XDisplayName     string      `json:"x_display_name,omitempty"`
	XProfileImageURL string      `json:"x_profile_image_url,omitempty"`
	WhatsAppPhone    string      `json:"whatsapp_phone,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

type ListUsersOutput struct {
	Users      []UserSummary `json:"users"`
	Pagination Pagination    `json:"pagination"`
}

// UserUsecase lists identities for administrators.
type UserUsecase interface {
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)
}
