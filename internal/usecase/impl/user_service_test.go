package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserServiceForTest(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockUC.MockOrderDirectory) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockOrders := mockUC.NewMockOrderDirectory(t)

	service := NewUserService(UserServiceParams{
		UserRepo: mockUserRepo,
		Hasher:   mockHasher,
		Logger:   testLogger(),
	})
	service.(usecase.OrderDirectoryBinder).BindOrderDirectory(mockOrders)

	return service, mockUserRepo, mockHasher, mockOrders
}

func TestUserService_CreateUser(t *testing.T) {
	service, mockUserRepo, mockHasher, _ := newUserServiceForTest(t)

	ctx := context.Background()

	mockHasher.EXPECT().
		Hash("s3cret-password").
		Return("$2a$10$hash", nil)

	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := service.CreateUser(ctx, &usecase.CreateUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	service, mockUserRepo, _, _ := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := service.GetUser(ctx, userID)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateUser_PartialChange(t *testing.T) {
	service, mockUserRepo, _, _ := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{
			ID:    userID,
			Email: "alice@example.com",
			Name:  "Alice",
		}, nil)

	mockUserRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "Alice Cooper", user.Name)
			assert.Equal(t, "alice@example.com", user.Email, "untouched field keeps its value")
		}).
		Return(nil)

	newName := "Alice Cooper"
	user, err := service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", user.Name)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	service, mockUserRepo, _, _ := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		Delete(ctx, userID).
		Return(repository.ErrUserNotFound)

	err := service.DeleteUser(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetUserWithOrders(t *testing.T) {
	service, mockUserRepo, _, mockOrders := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "alice@example.com", Name: "Alice"}, nil)

	orders := []*entity.Order{
		{ID: uuid.New(), UserID: userID, Product: "keyboard"},
		{ID: uuid.New(), UserID: userID, Product: "trackball"},
	}
	mockOrders.EXPECT().
		ListOrdersByUser(ctx, userID).
		Return(orders, nil)

	aggregate, err := service.GetUserWithOrders(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, aggregate.User.ID)
	require.Len(t, aggregate.Orders, 2)
	assert.Equal(t, "keyboard", aggregate.Orders[0].Product)
}

func TestUserService_GetUserWithOrders_NoOrders(t *testing.T) {
	service, mockUserRepo, _, mockOrders := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	mockOrders.EXPECT().
		ListOrdersByUser(ctx, userID).
		Return([]*entity.Order{}, nil)

	aggregate, err := service.GetUserWithOrders(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, aggregate.Orders)
}

func TestUserService_GetUserWithOrders_MissingUser(t *testing.T) {
	service, mockUserRepo, _, _ := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	aggregate, err := service.GetUserWithOrders(ctx, userID)
	assert.Nil(t, aggregate)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetUserWithOrders_DirectoryUnbound(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		UserRepo: mockUserRepo,
		Hasher:   mockHasher,
		Logger:   testLogger(),
	})

	aggregate, err := service.GetUserWithOrders(context.Background(), uuid.New())
	assert.Nil(t, aggregate)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}
