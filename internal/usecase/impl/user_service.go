// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "tube/internal/delivery/context"
	"tube/internal/domain/entity"
	domainerrors "tube/internal/domain/errors"
	"tube/internal/domain/repository"
	"tube/internal/domain/service"
	"tube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	subscriptionRepo repository.SubscriptionRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	cache            service.ProfileCache
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	SubscriptionRepo repository.SubscriptionRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Cache            service.ProfileCache `optional:"true"`
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		subscriptionRepo: params.SubscriptionRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		cache:            params.Cache,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return user, nil
}

func (srv *userService) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}

// FindByID returns domainerrors.ErrUserNotFound when the user does not exist.
func (srv *userService) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return loadUser(ctx, srv.userRepo, srv.cache, srv.log(ctx), id)
}

// CreateUser hashes the password and inserts the account. Uniqueness is
// decided by the store, so a concurrent duplicate still yields a validation error.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	hashed, err := srv.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashed,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return nil, mapped
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.Any("userID", user.ID))

	return user, nil
}

// UpdateUser applies the non-nil fields of input inside one transaction.
func (srv *userService) UpdateUser(ctx context.Context, userID uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user by id")
		}

		if err := srv.applyUpdate(ctx, userRepo, user, input); err != nil {
			return err
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}
			if mapped := mapWriteError(err); mapped != nil {
				return mapped
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	invalidateUser(ctx, srv.cache, srv.log(ctx), userID)

	return updated, nil
}

// applyUpdate copies the present fields onto user. A new email or username
// is rejected when another account already owns it.
func (srv *userService) applyUpdate(ctx context.Context, userRepo repository.UserRepository, user *entity.User, input *usecase.UpdateUserInput) error {
	if input.Email != nil && *input.Email != user.Email {
		owner, err := userRepo.FindByEmail(ctx, *input.Email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}
		if owner != nil && owner.ID != user.ID {
			return domainerrors.ErrEmailTaken
		}
		user.Email = *input.Email
	}

	if input.Username != nil && *input.Username != user.Username {
		owner, err := userRepo.FindByUsername(ctx, *input.Username)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by username")
		}
		if owner != nil && owner.ID != user.ID {
			return domainerrors.ErrUsernameTaken
		}
		user.Username = *input.Username
	}

	if input.Password != nil {
		hashed, err := srv.hashPassword(*input.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hashed
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	if input.Cover != nil {
		user.Cover = *input.Cover
	}
	if input.ChannelDescription != nil {
		user.ChannelDescription = *input.ChannelDescription
	}

	return nil
}

func (srv *userService) CreateToken(userID uuid.UUID) (string, error) {
	token, err := srv.tokenService.GenerateToken(userID)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate token")
	}

	return token, nil
}

// Register checks username before email so a request clashing on both
// reports the username.
func (srv *userService) Register(ctx context.Context, input *usecase.CreateUserInput) (*usecase.AuthOutput, error) {
	existing, err := srv.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.ErrUsernameTaken
	}

	existing, err = srv.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.ErrEmailTaken
	}

	user, err := srv.CreateUser(ctx, input)
	if err != nil {
		return nil, err
	}

	token, err := srv.CreateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrEmailNotFound
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrPasswordIncorrect
	}

	token, err := srv.CreateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

func (srv *userService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := loadUser(ctx, srv.userRepo, srv.cache, srv.log(ctx), claims.UserID)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidToken.WithDetails("token subject no longer exists")
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (srv *userService) GetProfile(ctx context.Context, viewerID *uuid.UUID, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	user, err := loadUser(ctx, srv.userRepo, srv.cache, srv.log(ctx), userID)
	if err != nil {
		return nil, err
	}

	output := &usecase.ProfileOutput{User: user}
	if viewerID == nil || *viewerID == userID {
		return output, nil
	}

	output.IsSubscribed, err = srv.subscriptionRepo.Exists(ctx, *viewerID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check subscription")
	}

	return output, nil
}

// hashPassword reports an over-long password as bad input, not a server fault.
func (srv *userService) hashPassword(password string) (string, error) {
	hashed, err := srv.hasher.Hash(password)
	if errors.Is(err, service.ErrPasswordTooLong) {
		return "", domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("password: maxbytes=%d", service.MaxPasswordBytes))
	}
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return hashed, nil
}

// mapWriteError turns store rejections caused by the input into validation errors.
func mapWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateUsername):
		return domainerrors.ErrUsernameTaken
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domainerrors.ErrEmailTaken
	case errors.Is(err, repository.ErrValueTooLong):
		return domainerrors.ErrValidationFailed.WithDetails("a field exceeds its maximum length")
	default:
		return nil
	}
}
