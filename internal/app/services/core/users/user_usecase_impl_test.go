package users

import (
	"context"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, int, error) {
	args := m.Called(ctx, filter)
	users, _ := args.Get(0).([]models.User)
	return users, args.Int(1), args.Error(2)
}

func TestUserUsecase_GetUserByID(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, "pat-1").Return(&models.User{
		ID:       "pat-1",
		Email:    "pat@example.com",
		Password: "$2a$10$hash",
		Role:     constvars.RolePatient,
		IsActive: true,
	}, nil)
	repo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)
	uc := NewUserUsecase(repo, zap.NewNop())

	user, err := uc.GetUserByID(context.Background(), "pat-1")
	require.NoError(t, err)
	assert.Equal(t, "pat@example.com", user.Email)
	assert.Equal(t, "PATIENT", user.Role)
	assert.Equal(t, "USER", user.AccountType)

	_, err = uc.GetUserByID(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
}

func TestUserUsecase_ListUsers(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("List", mock.Anything, models.UserFilter{Role: constvars.RoleDoctor, Page: 2, PageSize: 1}).
		Return([]models.User{{ID: "doc-2", Role: constvars.RoleDoctor}}, 3, nil)
	uc := NewUserUsecase(repo, zap.NewNop())

	users, total, err := uc.ListUsers(context.Background(), &requests.ListUsers{
		Role:       "DOCTOR",
		Pagination: requests.Pagination{Page: 2, PageSize: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, users, 1)
	assert.Equal(t, "doc-2", users[0].ID)
}
