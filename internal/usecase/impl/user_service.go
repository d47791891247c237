// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "shopsync/internal/delivery/context"
	"shopsync/internal/domain/entity"
	domainerrors "shopsync/internal/domain/errors"
	"shopsync/internal/domain/repository"
	"shopsync/internal/domain/service"
	"shopsync/internal/metrics"
	"shopsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// Pre-check gives a clean error for the common collision. The unique
		// constraints still close the race window at insert time.
		_, findErr := userRepo.FindByUsername(ctx, input.Username)
		if findErr == nil {
			return domainerrors.ErrDuplicateUser.WrapMessage("username already taken")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check username availability")
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicateUser) {
				return domainerrors.ErrDuplicateUser.WrapMessage("username or email already taken")
			}

			return errors.Wrap(createErr, "failed to create user during registration")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	output, err := srv.issueSession(ctx, newUser)
	if err != nil {
		return nil, err
	}

	srv.metrics.UsersRegistered.Inc()
	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return output, nil
}

// Login orchestrates the user login process. Unknown username and wrong
// password take the same path out so responses never reveal which one failed.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	output, err := srv.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.metrics.Logins.Inc()
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return output, nil
}

// issueSession mints the access and refresh token pair for a verified user.
func (srv *userService) issueSession(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, err := srv.tokenService.IssueAccessToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.IssueRefreshToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue refresh token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
// The refresh token itself is never rotated.
func (srv *userService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh access token")

	userID, err := srv.tokenService.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token verification failed", slog.Any("error", err))

		if errors.Is(err, service.ErrMalformedPayload) {
			return nil, errors.Wrap(domainerrors.ErrMalformedPayload, "refresh failed")
		}

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "refresh failed")
	}

	// The account must still exist. This lookup is the seam where revocation
	// or account-disable checks would slot in later.
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Refresh for unknown user", slog.Any("userID", userID), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "refresh failed")
		}

		return nil, errors.Wrap(err, "failed to find user during refresh")
	}

	accessToken, err := srv.tokenService.IssueAccessToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token during refresh", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token during refresh")
	}

	srv.metrics.TokenRefreshes.Inc()

	return &usecase.RefreshOutput{AccessToken: accessToken}, nil
}

// GetProfile retrieves the account data for an authenticated user.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load profile", slog.Any("userID", userID), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}
