package impl

import (
	"context"
	"strings"
	"testing"

	"tube/internal/domain/entity"
	domainerrors "tube/internal/domain/errors"
	"tube/internal/domain/repository"
	"tube/internal/domain/service"
	mockRepo "tube/internal/mocks/repository"
	mockSvc "tube/internal/mocks/service"
	"tube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	cache            *mockSvc.MockProfileCache
}

func createTestUserService(t *testing.T, withCache bool) userServiceFixtures {
	f := userServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}

	params := UserServiceParams{
		TxManager:        f.txManager,
		UserRepo:         f.userRepo,
		SubscriptionRepo: f.subscriptionRepo,
		Hasher:           f.hasher,
		TokenService:     f.tokenService,
		Logger:           newDiscardLogger(),
	}
	if withCache {
		f.cache = mockSvc.NewMockProfileCache(t)
		params.Cache = f.cache
	}
	f.service = NewUserService(params)

	return f
}

func TestUserService_Register_Success(t *testing.T) {
	f := createTestUserService(t, false)
	ctx := context.Background()
	newID := uuid.New()

	f.userRepo.EXPECT().FindByUsername(ctx, "ls").Return(nil, repository.ErrUserNotFound)
	f.userRepo.EXPECT().FindByEmail(ctx, "ls@x.com").Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash("123456").Return("hashed", nil)
	f.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "ls" && u.Email == "ls@x.com" && u.PasswordHash == "hashed"
		})).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = newID
		}).
		Return(nil)
	f.tokenService.EXPECT().GenerateToken(newID).Return("signed-token", nil)

	output, err := f.service.Register(ctx, &usecase.CreateUserInput{
		Username: "ls",
		Email:    "ls@x.com",
		Password: "123456",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, newID, output.User.ID)
	assert.Equal(t, "ls", output.User.Username)
	assert.Equal(t, int64(0), output.User.SubscribersCount)
}

func TestUserService_Register_UsernameTakenWinsOverEmail(t *testing.T) {
	f := createTestUserService(t, false)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByUsername(ctx, "ls").Return(&entity.User{ID: uuid.New(), Username: "ls"}, nil)

	output, err := f.service.Register(ctx, &usecase.CreateUserInput{
		Username: "ls",
		Email:    "ls@x.com",
		Password: "123456",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	f := createTestUserService(t, false)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByUsername(ctx, "other").Return(nil, repository.ErrUserNotFound)
	f.userRepo.EXPECT().FindByEmail(ctx, "ls@x.com").Return(&entity.User{ID: uuid.New(), Email: "ls@x.com"}, nil)

	_, err := f.service.Register(ctx, &usecase.CreateUserInput{
		Username: "other",
		Email:    "ls@x.com",
		Password: "123456",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_Register_ConcurrentDuplicateFromStore(t *testing.T) {
	f := createTestUserService(t, false)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByUsername(ctx, "ls").Return(nil, repository.ErrUserNotFound)
	f.userRepo.EXPECT().FindByEmail(ctx, "ls@x.com").Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash("123456").Return("hashed", nil)
	f.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)

	_, err := f.service.Register(ctx, &usecase.CreateUserInput{
		Username: "ls",
		Email:    "ls@x.com",
		Password: "123456",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_Register_LookupFailure(t *testing.T) {
	f := createTestUserService(t, false)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	f.userRepo.EXPECT().FindByUsername(ctx, "ls").Return(nil, dbErr)

	_, err := f.service.Register(ctx, &usecase.CreateUserInput{Username: "ls", Email: "ls@x.com", Password: "123456"})

	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}

func TestUserService_Register_HashFailure(t *testing.T) {
	f := createTestUserService(t, false)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByUsername(ctx, "ls").Return(nil, repository.ErrUserNotFound)
	f.userRepo.EXPECT().FindByEmail(ctx, "ls@x.com").Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash("123456").Return("", errors.New("entropy exhausted"))

	_, err := f.service.Register(ctx, &usecase.CreateUserInput{Username: "ls", Email: "ls@x.com", Password: "123456"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Register_PasswordTooLong(t *testing.T) {
	f := createTestUserService(t, false)
	ctx := context.Background()
	long := strings.Repeat("a", service.MaxPasswordBytes+1)

	f.userRepo.EXPECT().FindByUsername(ctx, "ls").Return(nil, repository.ErrUserNotFound)
	f.userRepo.EXPECT().FindByEmail(ctx, "ls@x.com").Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash(long).Return("", errors.WithStack(service.ErrPasswordTooLong))

	_, err := f.service.Register(ctx, &usecase.CreateUserInput{Username: "ls", Email: "ls@x.com", Password: long})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "password: maxbytes=72", appErr.Details())
}

func TestUserService_Register_StoreWriteFailures(t *testing.T) {
	dbErr := errors.New("disk full")

	tests := []struct {
		name     string
		storeErr error
		wantKind domainerrors.Kind
		wantCode string
	}{
		{name: "value too long", storeErr: repository.ErrValueTooLong, wantKind: domainerrors.KindValidation, wantCode: "VALIDATION_FAILED"},
		{name: "other failure", storeErr: dbErr, wantKind: domainerrors.KindInternal, wantCode: "DATABASE_EXECUTE_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestUserService(t, false)
			ctx := context.Background()

			f.userRepo.EXPECT().FindByUsername(ctx, "ls").Return(nil, repository.ErrUserNotFound)
			f.userRepo.EXPECT().FindByEmail(ctx, "ls@x.com").Return(nil, repository.ErrUserNotFound)
			f.hasher.EXPECT().Hash("123456").Return("hashed", nil)
			f.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(tt.storeErr)

			_, err := f.service.Register(ctx, &usecase.CreateUserInput{Username: "ls", Email: "ls@x.com", Password: "123456"})

			assert.Equal(t, tt.wantKind, domainerrors.KindOf(err))
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.ErrorCode())
		})
	}
}

func TestUserService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "ls", Email: "ls@x.com", PasswordHash: "hashed"}

	tests := []struct {
		name      string
		setup     func(f userServiceFixtures)
		password  string
		wantErr   error
		wantToken string
	}{
		{
			name: "unknown email",
			setup: func(f userServiceFixtures) {
				f.userRepo.EXPECT().FindByEmail(mock.Anything, "ls@x.com").Return(nil, repository.ErrUserNotFound)
			},
			password: "123456",
			wantErr:  domainerrors.ErrEmailNotFound,
		},
		{
			name: "wrong password",
			setup: func(f userServiceFixtures) {
				f.userRepo.EXPECT().FindByEmail(mock.Anything, "ls@x.com").Return(user, nil)
				f.hasher.EXPECT().Check("nope", "hashed").Return(false)
			},
			password: "nope",
			wantErr:  domainerrors.ErrPasswordIncorrect,
		},
		{
			name: "success",
			setup: func(f userServiceFixtures) {
				f.userRepo.EXPECT().FindByEmail(mock.Anything, "ls@x.com").Return(user, nil)
				f.hasher.EXPECT().Check("123456", "hashed").Return(true)
				f.tokenService.EXPECT().GenerateToken(user.ID).Return("signed-token", nil)
			},
			password:  "123456",
			wantToken: "signed-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestUserService(t, false)
			tt.setup(f)

			output, err := f.service.Login(context.Background(), &usecase.LoginInput{Email: "ls@x.com", Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
				assert.Nil(t, output)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, output.Token)
			assert.Equal(t, user, output.User)
		})
	}
}

func TestUserService_Authenticate_InvalidToken(t *testing.T) {
	f := createTestUserService(t, false)

	f.tokenService.EXPECT().ValidateToken("garbage").Return(nil, domainerrors.ErrInvalidToken.WithDetails("token is malformed"))

	user, err := f.service.Authenticate(context.Background(), "garbage")

	assert.Nil(t, user)
	assert.Equal(t, domainerrors.KindInvalidToken, domainerrors.KindOf(err))
}

func TestUserService_Authenticate_DeletedSubject(t *testing.T) {
	f := createTestUserService(t, false)
	ctx := context.Background()
	id := uuid.New()

	f.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: id}, nil)
	f.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.Authenticate(ctx, "tok")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestUserService_Authenticate_CacheHitSkipsStore(t *testing.T) {
	f := createTestUserService(t, true)
	ctx := context.Background()
	cached := &entity.User{ID: uuid.New(), Username: "ls"}

	f.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: cached.ID}, nil)
	f.cache.EXPECT().GetUser(ctx, cached.ID).Return(cached, true, nil)

	user, err := f.service.Authenticate(ctx, "tok")

	require.NoError(t, err)
	assert.Equal(t, cached, user)
}

func TestUserService_FindByID_CacheMissPopulates(t *testing.T) {
	f := createTestUserService(t, true)
	ctx := context.Background()
	stored := &entity.User{ID: uuid.New(), Username: "ls"}

	f.cache.EXPECT().GetUser(ctx, stored.ID).Return(nil, false, nil)
	f.userRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	f.cache.EXPECT().SetUser(ctx, stored).Return(nil)

	user, err := f.service.FindByID(ctx, stored.ID)

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestUserService_FindByID_CacheErrorFallsBack(t *testing.T) {
	f := createTestUserService(t, true)
	ctx := context.Background()
	stored := &entity.User{ID: uuid.New(), Username: "ls"}

	f.cache.EXPECT().GetUser(ctx, stored.ID).Return(nil, false, errors.New("redis down"))
	f.userRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	f.cache.EXPECT().SetUser(ctx, stored).Return(errors.New("redis down"))

	user, err := f.service.FindByID(ctx, stored.ID)

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestUserService_FindByUsername_NotFoundIsNil(t *testing.T) {
	f := createTestUserService(t, false)

	f.userRepo.EXPECT().FindByUsername(mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

	user, err := f.service.FindByUsername(context.Background(), "ghost")

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserService_UpdateUser_AppliesPresentFields(t *testing.T) {
	f := createTestUserService(t, true)
	ctx := context.Background()
	id := uuid.New()
	current := &entity.User{ID: id, Username: "ls", Email: "ls@x.com", PasswordHash: "old", Avatar: "a.png", SubscribersCount: 3}

	expectTransaction(t, f.txManager, f.userRepo, f.subscriptionRepo)
	f.userRepo.EXPECT().FindByID(ctx, id).Return(current, nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "new@x.com").Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash("654321").Return("new-hash", nil)
	f.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	f.cache.EXPECT().InvalidateUser(ctx, id).Return(nil)

	updated, err := f.service.UpdateUser(ctx, id, &usecase.UpdateUserInput{
		Email:              ptr("new@x.com"),
		Password:           ptr("654321"),
		ChannelDescription: ptr("cooking"),
	})

	require.NoError(t, err)
	assert.Equal(t, "new@x.com", updated.Email)
	assert.Equal(t, "new-hash", updated.PasswordHash)
	assert.Equal(t, "cooking", updated.ChannelDescription)
	assert.Equal(t, "ls", updated.Username)
	assert.Equal(t, "a.png", updated.Avatar)
	assert.Equal(t, int64(3), updated.SubscribersCount)
}

func TestUserService_UpdateUser_PasswordTooLong(t *testing.T) {
	f := createTestUserService(t, true)
	ctx := context.Background()
	id := uuid.New()
	long := strings.Repeat("é", 40)

	expectTransaction(t, f.txManager, f.userRepo, f.subscriptionRepo)
	f.userRepo.EXPECT().FindByID(ctx, id).Return(&entity.User{ID: id, Username: "ls", Email: "ls@x.com"}, nil)
	f.hasher.EXPECT().Hash(long).Return("", errors.WithStack(service.ErrPasswordTooLong))

	_, err := f.service.UpdateUser(ctx, id, &usecase.UpdateUserInput{Password: ptr(long)})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
	f.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_UpdateUser_OwnEmailIsNotAConflict(t *testing.T) {
	f := createTestUserService(t, false)
	ctx := context.Background()
	id := uuid.New()

	expectTransaction(t, f.txManager, f.userRepo, f.subscriptionRepo)
	f.userRepo.EXPECT().FindByID(ctx, id).Return(&entity.User{ID: id, Username: "ls", Email: "ls@x.com"}, nil)
	f.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	updated, err := f.service.UpdateUser(ctx, id, &usecase.UpdateUserInput{
		Email:    ptr("ls@x.com"),
		Username: ptr("ls"),
	})

	require.NoError(t, err)
	assert.Equal(t, "ls@x.com", updated.Email)
}

func TestUserService_UpdateUser_Conflicts(t *testing.T) {
	id := uuid.New()
	other := &entity.User{ID: uuid.New(), Username: "taken", Email: "taken@x.com"}

	tests := []struct {
		name    string
		input   *usecase.UpdateUserInput
		setup   func(f userServiceFixtures)
		wantErr error
	}{
		{
			name:  "email owned by another user",
			input: &usecase.UpdateUserInput{Email: ptr("taken@x.com")},
			setup: func(f userServiceFixtures) {
				f.userRepo.EXPECT().FindByEmail(mock.Anything, "taken@x.com").Return(other, nil)
			},
			wantErr: domainerrors.ErrEmailTaken,
		},
		{
			name:  "username owned by another user",
			input: &usecase.UpdateUserInput{Username: ptr("taken")},
			setup: func(f userServiceFixtures) {
				f.userRepo.EXPECT().FindByUsername(mock.Anything, "taken").Return(other, nil)
			},
			wantErr: domainerrors.ErrUsernameTaken,
		},
		{
			name:  "unique index rejects the write",
			input: &usecase.UpdateUserInput{Username: ptr("fresh")},
			setup: func(f userServiceFixtures) {
				f.userRepo.EXPECT().FindByUsername(mock.Anything, "fresh").Return(nil, repository.ErrUserNotFound)
				f.userRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateUsername)
			},
			wantErr: domainerrors.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestUserService(t, false)
			expectTransaction(t, f.txManager, f.userRepo, f.subscriptionRepo)
			f.userRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.User{ID: id, Username: "ls", Email: "ls@x.com"}, nil)
			tt.setup(f)

			updated, err := f.service.UpdateUser(context.Background(), id, tt.input)

			assert.Nil(t, updated)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_UpdateUser_UnknownUser(t *testing.T) {
	f := createTestUserService(t, false)
	id := uuid.New()

	expectTransaction(t, f.txManager, f.userRepo, f.subscriptionRepo)
	f.userRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.UpdateUser(context.Background(), id, &usecase.UpdateUserInput{Avatar: ptr("b.png")})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestUserService_GetProfile(t *testing.T) {
	channel := &entity.User{ID: uuid.New(), Username: "chef", SubscribersCount: 2}
	viewer := uuid.New()

	t.Run("anonymous viewer", func(t *testing.T) {
		f := createTestUserService(t, false)
		f.userRepo.EXPECT().FindByID(mock.Anything, channel.ID).Return(channel, nil)

		profile, err := f.service.GetProfile(context.Background(), nil, channel.ID)

		require.NoError(t, err)
		assert.Equal(t, channel, profile.User)
		assert.False(t, profile.IsSubscribed)
	})

	t.Run("subscribed viewer", func(t *testing.T) {
		f := createTestUserService(t, false)
		f.userRepo.EXPECT().FindByID(mock.Anything, channel.ID).Return(channel, nil)
		f.subscriptionRepo.EXPECT().Exists(mock.Anything, viewer, channel.ID).Return(true, nil)

		profile, err := f.service.GetProfile(context.Background(), &viewer, channel.ID)

		require.NoError(t, err)
		assert.True(t, profile.IsSubscribed)
	})

	t.Run("viewing self", func(t *testing.T) {
		f := createTestUserService(t, false)
		f.userRepo.EXPECT().FindByID(mock.Anything, channel.ID).Return(channel, nil)

		self := channel.ID
		profile, err := f.service.GetProfile(context.Background(), &self, channel.ID)

		require.NoError(t, err)
		assert.False(t, profile.IsSubscribed)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := createTestUserService(t, false)
		missing := uuid.New()
		f.userRepo.EXPECT().FindByID(mock.Anything, missing).Return(nil, repository.ErrUserNotFound)

		_, err := f.service.GetProfile(context.Background(), &viewer, missing)

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
