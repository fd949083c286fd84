package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthServiceForTest(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenIssuer) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockIssuer := mockSvc.NewMockTokenIssuer(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo: mockUserRepo,
		Hasher:   mockHasher,
		Issuer:   mockIssuer,
		Logger:   testLogger(),
	})

	return service, mockUserRepo, mockHasher, mockIssuer
}

func TestAuthService_Register(t *testing.T) {
	service, mockUserRepo, mockHasher, _ := newAuthServiceForTest(t)

	ctx := context.Background()

	mockHasher.EXPECT().
		Hash("s3cret-password").
		Return("$2a$10$hash", nil)

	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "Alice", user.Name)
			assert.Equal(t, "$2a$10$hash", user.PasswordHash)
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
	assert.Empty(t, output.User.PasswordHash, "registration output must not carry the hash")
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	service, mockUserRepo, mockHasher, _ := newAuthServiceForTest(t)

	ctx := context.Background()

	mockHasher.EXPECT().
		Hash("s3cret-password").
		Return("$2a$10$hash", nil)

	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.Wrap(domainerrors.ErrEmailTaken, "duplicate email"))

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-password",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	service, _, mockHasher, _ := newAuthServiceForTest(t)

	ctx := context.Background()

	mockHasher.EXPECT().
		Hash("s3cret-password").
		Return("", errors.New("bcrypt exploded"))

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-password",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_ValidateUser(t *testing.T) {
	service, mockUserRepo, mockHasher, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{
			ID:           userID,
			Email:        "alice@example.com",
			Name:         "Alice",
			PasswordHash: "$2a$10$hash",
		}, nil)

	mockHasher.EXPECT().
		Check("s3cret-password", "$2a$10$hash").
		Return(true)

	user, err := service.ValidateUser(ctx, "alice@example.com", "s3cret-password")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Empty(t, user.PasswordHash, "validated user must not carry the hash")
}

func TestAuthService_ValidateUser_UnknownEmail(t *testing.T) {
	service, mockUserRepo, _, _ := newAuthServiceForTest(t)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	user, err := service.ValidateUser(ctx, "ghost@example.com", "whatever")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_ValidateUser_WrongPassword(t *testing.T) {
	service, mockUserRepo, mockHasher, _ := newAuthServiceForTest(t)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{
			ID:           uuid.New(),
			Email:        "alice@example.com",
			PasswordHash: "$2a$10$hash",
		}, nil)

	mockHasher.EXPECT().
		Check("wrong-password", "$2a$10$hash").
		Return(false)

	user, err := service.ValidateUser(ctx, "alice@example.com", "wrong-password")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

// Both failure modes must resolve to the exact same error value, so the API
// response cannot reveal whether an email is registered.
func TestAuthService_ValidateUser_FailureModesIndistinguishable(t *testing.T) {
	service, mockUserRepo, mockHasher, _ := newAuthServiceForTest(t)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, unknownEmailErr := service.ValidateUser(ctx, "ghost@example.com", "pw")

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "$2a$10$hash"}, nil)
	mockHasher.EXPECT().
		Check("wrong", "$2a$10$hash").
		Return(false)

	_, wrongPasswordErr := service.ValidateUser(ctx, "alice@example.com", "wrong")

	var unknownApp, wrongApp domainerrors.AppError
	require.ErrorAs(t, unknownEmailErr, &unknownApp)
	require.ErrorAs(t, wrongPasswordErr, &wrongApp)
	assert.Equal(t, unknownApp.HTTPCode(), wrongApp.HTTPCode())
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
	assert.Equal(t, "Invalid credentials", wrongApp.Message())
}

func TestAuthService_Login(t *testing.T) {
	service, mockUserRepo, mockHasher, mockIssuer := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{
			ID:           userID,
			Email:        "alice@example.com",
			PasswordHash: "$2a$10$hash",
		}, nil)

	mockHasher.EXPECT().
		Check("s3cret-password", "$2a$10$hash").
		Return(true)

	mockIssuer.EXPECT().
		Issue(&entity.Identity{ID: userID, Email: "alice@example.com"}).
		Return("signed.jwt.token", nil)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, userID, output.User.ID)
	assert.Empty(t, output.User.PasswordHash)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	service, mockUserRepo, _, _ := newAuthServiceForTest(t)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
