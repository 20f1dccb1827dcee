package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service   *accountService
	userRepo  *mockRepo.MockUserRepository
	publisher *mockSvc.MockEventPublisher
	core      realCore
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	core := newRealCore(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	srv := NewAccountService(AccountServiceParams{
		UserRepo:     userRepo,
		Hasher:       core.hasher,
		Policy:       core.policy,
		Codec:        core.codec,
		ResetDeriver: core.deriver,
		Publisher:    publisher,
		Config:       core.config,
		Logger:       newDiscardLogger(),
	}).(*accountService)

	return accountServiceFixtures{service: srv, userRepo: userRepo, publisher: publisher, core: core}
}

// Register, then redeem today's reset token, then the new credential replaces the old one.
func TestAccountService_RegisterThenResetPassword(t *testing.T) {
	ctx := context.Background()
	fx := createTestAccountService(t)

	var registered *entity.User
	fx.userRepo.EXPECT().ExistsByEmailOrUsername(ctx, "a@x.com", "alice").Return(false, nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = 1
			registered = user
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Email: "a@x.com", Password: "Secret1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "Secret1", registered.PasswordHash)
	assert.True(t, fx.core.hasher.Verify(registered.PasswordHash, "Secret1"))

	fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(registered, nil)

	var newHash string
	fx.userRepo.EXPECT().UpdatePasswordHash(ctx, int64(1), mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ int64, passwordHash string) { newHash = passwordHash }).
		Return(nil)

	err = fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		UserID:      1,
		ResetToken:  fx.core.deriver.Derive(1, "a@x.com"),
		NewPassword: "Secret2",
	})

	require.NoError(t, err)
	assert.True(t, fx.core.hasher.Verify(newHash, "Secret2"))
	assert.False(t, fx.core.hasher.Verify(newHash, "Secret1"))
}

func TestAccountService_Register_Conflicts(t *testing.T) {
	ctx := context.Background()
	fx := createTestAccountService(t)
	fx.userRepo.EXPECT().ExistsByEmailOrUsername(ctx, "a@x.com", "alice").Return(true, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Email: "a@x.com", Password: "Secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAccountService_Register_RejectsWeakPassword(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Username: "alice", Email: "a@x.com"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	fx := createTestAccountService(t)
	stored, err := fx.core.hasher.Hash("Secret1")
	require.NoError(t, err)
	alice := &entity.User{ID: 1, Username: "alice", Email: "a@x.com", PasswordHash: stored}

	t.Run("success issues an identity token", func(t *testing.T) {
		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(alice, nil).Once()

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "Secret1"})
		require.NoError(t, err)
		assert.Equal(t, alice, out.User)

		claims, err := fx.core.codec.Validate(out.IdentityToken)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{entity.ClaimUserID: "1"}, claims.Values)
		assert.WithinDuration(t, claims.IssuedAt.Add(30*time.Minute), claims.ExpiresAt, time.Second)
		assert.True(t, claims.ExpiresAt.Equal(out.ExpiresAt), "reported %s, token %s", out.ExpiresAt, claims.ExpiresAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(alice, nil).Once()

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret1"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown user looks the same", func(t *testing.T) {
		fx.userRepo.EXPECT().FindByUsername(ctx, "mallory").Return(nil, repository.ErrUserNotFound).Once()

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "mallory", Password: "Secret1"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAccountService_ForgotPassword(t *testing.T) {
	ctx := context.Background()
	alice := &entity.User{ID: 1, Email: "a@x.com"}

	t.Run("publishes and exposes the token", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(alice, nil)

		var published *service.PasswordResetEvent
		fx.publisher.EXPECT().PublishPasswordReset(ctx, mock.AnythingOfType("*service.PasswordResetEvent")).
			Run(func(_ context.Context, event *service.PasswordResetEvent) { published = event }).
			Return(nil)

		out, err := fx.service.ForgotPassword(ctx, "a@x.com")
		require.NoError(t, err)

		expected := fx.core.deriver.Derive(1, "a@x.com")
		assert.Equal(t, expected, out.ResetToken)
		assert.Equal(t, int64(1), out.UserID)
		assert.Equal(t, expected, published.ResetToken)
		assert.Equal(t, int64(1), published.UserID)
		assert.NotEmpty(t, published.EventID)
		assert.True(t, out.ValidUntil.After(time.Now()))
		assert.Zero(t, out.ValidUntil.Hour())
		assert.Equal(t, out.ValidUntil.Format(time.RFC3339), published.ValidUntil)
	})

	t.Run("hides the token when exposure is off", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.service.exposeResetToken = false
		fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(alice, nil)
		fx.publisher.EXPECT().PublishPasswordReset(ctx, mock.Anything).Return(nil)

		out, err := fx.service.ForgotPassword(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Empty(t, out.ResetToken)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@x.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.ForgotPassword(ctx, "nobody@x.com")
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("publish failure fails the request", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(alice, nil)
		fx.publisher.EXPECT().PublishPasswordReset(ctx, mock.Anything).Return(errors.New("broker down"))

		_, err := fx.service.ForgotPassword(ctx, "a@x.com")
		assert.Error(t, err)
	})
}

func TestAccountService_ResetPassword_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown subject", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.userRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrUserNotFound)

		err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{UserID: 9, ResetToken: "x", NewPassword: "Secret2"})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("token of another subject", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.User{ID: 1, Email: "a@x.com"}, nil)

		err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
			UserID:      1,
			ResetToken:  fx.core.deriver.Derive(2, "a@x.com"),
			NewPassword: "Secret2",
		})
		assert.ErrorIs(t, err, domainerrors.ErrResetTokenMismatch)
	})

	t.Run("user removed between lookup and update", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.User{ID: 1, Email: "a@x.com"}, nil)
		fx.userRepo.EXPECT().UpdatePasswordHash(ctx, int64(1), mock.Anything).Return(repository.ErrUserNotFound)

		err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
			UserID:      1,
			ResetToken:  fx.core.deriver.Derive(1, "a@x.com"),
			NewPassword: "Secret2",
		})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
