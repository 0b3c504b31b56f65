package impl

import (
	"context"
	"testing"

	"authhub/internal/domain/entity"
	mockRepo "authhub/internal/mocks/repository"
	"authhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_ListUsers(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		input     usecase.ListUsersInput
		offset    int
		limit     int
		total     int64
		wantPage  int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{name: "defaults", input: usecase.ListUsersInput{}, offset: 0, limit: 10, total: 25, wantPage: 1, wantPages: 3, wantNext: true},
		{name: "middle page", input: usecase.ListUsersInput{Page: 2, Limit: 10}, offset: 10, limit: 10, total: 25, wantPage: 2, wantPages: 3, wantNext: true, wantPrev: true},
		{name: "last page", input: usecase.ListUsersInput{Page: 3, Limit: 10}, offset: 20, limit: 10, total: 25, wantPage: 3, wantPages: 3, wantPrev: true},
		{name: "limit clamped", input: usecase.ListUsersInput{Page: -4, Limit: 1000}, offset: 0, limit: 100, total: 0, wantPage: 1, wantPages: 0},
		{name: "negative limit", input: usecase.ListUsersInput{Limit: -1}, offset: 0, limit: 1, total: 2, wantPage: 1, wantPages: 2, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockIdentityRepository(t)
			srv := NewUserService(repo, newDiscardLogger())

			repo.EXPECT().List(ctx, tt.offset, tt.limit).Return([]*entity.Identity{{ID: "id-1", Role: entity.RoleAdmin, APISecrets: []entity.APISecret{{Key: "k"}}}}, tt.total, nil)

			output, err := srv.ListUsers(ctx, &tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, output.Pagination.CurrentPage)
			assert.Equal(t, tt.limit, output.Pagination.Limit)
			assert.Equal(t, tt.wantPages, output.Pagination.TotalPages)
			assert.Equal(t, tt.total, output.Pagination.TotalCount)
			assert.Equal(t, tt.wantNext, output.Pagination.HasNextPage)
			assert.Equal(t, tt.wantPrev, output.Pagination.HasPrevPage)
			require.Len(t, output.Users, 1)
			assert.Equal(t, entity.RoleAdmin, output.Users[0].Role)
		})
	}
}

func TestUserService_ListUsers_StoreFailure(t *testing.T) {
	repo := mockRepo.NewMockIdentityRepository(t)
	srv := NewUserService(repo, newDiscardLogger())

	repo.EXPECT().List(context.Background(), 0, 10).Return(nil, int64(0), errors.New("connection reset"))

	_, err := srv.ListUsers(context.Background(), &usecase.ListUsersInput{})

	assert.Error(t, err)
}
