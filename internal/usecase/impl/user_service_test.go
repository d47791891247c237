package impl

import (
	"context"
	"testing"

	"shopsync/internal/domain/entity"
	domainerrors "shopsync/internal/domain/errors"
	"shopsync/internal/domain/repository"
	"shopsync/internal/domain/service"
	mockRepo "shopsync/internal/mocks/repository"
	mockSvc "shopsync/internal/mocks/service"
	"shopsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T, deps UserServiceParams) usecase.UserUsecase {
	t.Helper()

	if deps.Metrics == nil {
		deps.Metrics = newTestMetrics()
	}
	if deps.Logger == nil {
		deps.Logger = newDiscardLogger()
	}

	return NewUserService(deps)
}

func TestUserService_Register_Success(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockToken := mockSvc.NewMockTokenService(t)

	userID := uuid.New()

	mockHasher.EXPECT().Hash("secret123").Return("hashed", nil)

	mockUserRepo.EXPECT().
		FindByUsername(mock.Anything, "alice").
		Return(nil, repository.ErrUserNotFound)

	mockUserRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = userID

			return nil
		})

	mockToken.EXPECT().IssueAccessToken(userID).Return("access-token", nil)
	mockToken.EXPECT().IssueRefreshToken(userID).Return("refresh-token", nil)

	svc := newUserService(t, UserServiceParams{
		TxManager:    newPassthroughTxManager(t, mockFactory),
		UserRepo:     mockUserRepo,
		Hasher:       mockHasher,
		TokenService: mockToken,
	})

	output, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "hashed", output.User.PasswordHash)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockToken := mockSvc.NewMockTokenService(t)

	mockHasher.EXPECT().Hash("secret123").Return("hashed", nil)

	mockUserRepo.EXPECT().
		FindByUsername(mock.Anything, "alice").
		Return(&entity.User{ID: uuid.New(), Username: "alice"}, nil)

	svc := newUserService(t, UserServiceParams{
		TxManager:    newPassthroughTxManager(t, mockFactory),
		UserRepo:     mockUserRepo,
		Hasher:       mockHasher,
		TokenService: mockToken,
	})

	output, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUser)
}

func TestUserService_Register_DuplicateAtInsert(t *testing.T) {
	// The pre-check can race another registration; the unique constraint is
	// the authority and must still map to the duplicate-user error.
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockToken := mockSvc.NewMockTokenService(t)

	mockHasher.EXPECT().Hash("secret123").Return("hashed", nil)

	mockUserRepo.EXPECT().
		FindByUsername(mock.Anything, "alice").
		Return(nil, repository.ErrUserNotFound)

	mockUserRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	svc := newUserService(t, UserServiceParams{
		TxManager:    newPassthroughTxManager(t, mockFactory),
		UserRepo:     mockUserRepo,
		Hasher:       mockHasher,
		TokenService: mockToken,
	})

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUser)
}

func TestUserService_Login_Success(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockToken := mockSvc.NewMockTokenService(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", PasswordHash: "hashed"}

	mockUserRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(user, nil)
	mockHasher.EXPECT().Check("secret123", "hashed").Return(true)
	mockToken.EXPECT().IssueAccessToken(userID).Return("access-token", nil)
	mockToken.EXPECT().IssueRefreshToken(userID).Return("refresh-token", nil)

	svc := newUserService(t, UserServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     mockUserRepo,
		Hasher:       mockHasher,
		TokenService: mockToken,
	})

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_UnknownUserAndWrongPassword(t *testing.T) {
	// Both failure modes must surface the identical error so responses give
	// no hint whether the username exists.
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockToken := mockSvc.NewMockTokenService(t)

	mockUserRepo.EXPECT().
		FindByUsername(mock.Anything, "ghost").
		Return(nil, repository.ErrUserNotFound)

	mockUserRepo.EXPECT().
		FindByUsername(mock.Anything, "alice").
		Return(&entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "hashed"}, nil)
	mockHasher.EXPECT().Check("wrong", "hashed").Return(false)

	svc := newUserService(t, UserServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     mockUserRepo,
		Hasher:       mockHasher,
		TokenService: mockToken,
	})

	_, unknownErr := svc.Login(context.Background(), &usecase.LoginInput{Username: "ghost", Password: "whatever"})
	require.Error(t, unknownErr)
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)

	_, wrongPassErr := svc.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "wrong"})
	require.Error(t, wrongPassErr)
	assert.ErrorIs(t, wrongPassErr, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Refresh_Success(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockToken := mockSvc.NewMockTokenService(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice"}

	mockToken.EXPECT().VerifyRefreshToken("refresh-token").Return(userID, nil)
	mockUserRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)
	mockToken.EXPECT().IssueAccessToken(userID).Return("new-access-token", nil)

	svc := newUserService(t, UserServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     mockUserRepo,
		Hasher:       mockHasher,
		TokenService: mockToken,
	})

	output, err := svc.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "refresh-token"})
	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockToken := mockSvc.NewMockTokenService(t)

	mockToken.EXPECT().
		VerifyRefreshToken("expired-token").
		Return(uuid.Nil, service.ErrInvalidToken)

	svc := newUserService(t, UserServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     mockUserRepo,
		Hasher:       mockHasher,
		TokenService: mockToken,
	})

	_, err := svc.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "expired-token"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestUserService_Refresh_MalformedPayload(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockToken := mockSvc.NewMockTokenService(t)

	mockToken.EXPECT().
		VerifyRefreshToken("no-identity-token").
		Return(uuid.Nil, service.ErrMalformedPayload)

	svc := newUserService(t, UserServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     mockUserRepo,
		Hasher:       mockHasher,
		TokenService: mockToken,
	})

	_, err := svc.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "no-identity-token"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMalformedPayload)
}

func TestUserService_Refresh_DeletedUser(t *testing.T) {
	// A token holder whose account is gone must not receive new tokens.
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockToken := mockSvc.NewMockTokenService(t)

	userID := uuid.New()

	mockToken.EXPECT().VerifyRefreshToken("refresh-token").Return(userID, nil)
	mockUserRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)

	svc := newUserService(t, UserServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     mockUserRepo,
		Hasher:       mockHasher,
		TokenService: mockToken,
	})

	_, err := svc.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "refresh-token"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestUserService_GetProfile(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockToken := mockSvc.NewMockTokenService(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", Email: "alice@example.com"}

	mockUserRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)

	unknownID := uuid.New()
	mockUserRepo.EXPECT().
		FindByID(mock.Anything, unknownID).
		Return(nil, repository.ErrUserNotFound)

	svc := newUserService(t, UserServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     mockUserRepo,
		Hasher:       mockHasher,
		TokenService: mockToken,
	})

	got, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = svc.GetProfile(context.Background(), unknownID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
