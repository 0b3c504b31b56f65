package impl

import (
	"context"
	"log/slog"

	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/repository"
	"authhub/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	identityRepo repository.IdentityRepository
	logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(identityRepo repository.IdentityRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		identityRepo: identityRepo,
		logger:       logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers clamps page to at least 1 and limit to [1, MaxPageLimit].
func (srv *userService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) (*usecase.ListUsersOutput, error) {
	page := max(input.Page, 1)
	limit := input.Limit
	if limit == 0 {
		limit = usecase.DefaultPageLimit
	}
	limit = min(max(limit, 1), usecase.MaxPageLimit)

	identities, total, err := srv.identityRepo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list identities", slog.Int("page", page), slog.Int("limit", limit), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "list identities")
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	users := make([]usecase.UserSummary, 0, len(identities))
	for _, identity := range identities {
		users = append(users, toUserSummary(identity))
	}

	return &usecase.ListUsersOutput{
		Users: users,
		Pagination: usecase.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalCount:  total,
			Limit:       limit,
			HasNextPage: page < totalPages,
			HasPrevPage: page > 1,
		},
	}, nil
}

func toUserSummary(identity *entity.Identity) usecase.UserSummary {
	return usecase.UserSummary{
		ID:               identity.ID,
		Role:             identity.Role,
		Address:          identity.Address,
		XUserID:          identity.XUserID,
		XUsername:        identity.XUsername,
		XDisplayName:     identity.XDisplayName,
		XProfileImageURL: identity.XProfileImageURL,
		WhatsAppPhone:    identity.WhatsAppPhone,
		CreatedAt:        identity.CreatedAt,
		UpdatedAt:        identity.UpdatedAt,
	}
}
