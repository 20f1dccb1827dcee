// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo         repository.UserRepository
	hasher           service.CredentialHasher
	policy           service.PasswordPolicy
	codec            service.TokenCodec
	resetDeriver     service.ResetTokenDeriver
	publisher        service.EventPublisher
	identityTTL      time.Duration
	exposeResetToken bool
	now              func() time.Time
	logger           *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.CredentialHasher
	Policy       service.PasswordPolicy
	Codec        service.TokenCodec
	ResetDeriver service.ResetTokenDeriver
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	srv := &accountService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		policy:       params.Policy,
		codec:        params.Codec,
		resetDeriver: params.ResetDeriver,
		publisher:    params.Publisher,
		now:          time.Now,
		logger:       params.Logger,
	}
	if params.Config != nil && params.Config.Auth != nil {
		srv.identityTTL = params.Config.Auth.IdentityTokenTTL
		srv.exposeResetToken = params.Config.Auth.ExposeResetToken
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a non-admin account.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	if err := srv.policy.Validate(input.Password); err != nil {
		return nil, err
	}

	exists, err := srv.userRepo.ExistsByEmailOrUsername(ctx, input.Email, input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing user")
	}
	if exists {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	stored, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: stored,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID))

	return user, nil
}

// Login verifies the credential and issues an identity token. Unknown users and wrong
// passwords produce the same error.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Verify(user.PasswordHash, input.Password) {
		srv.log(ctx).Info("Login rejected", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := srv.codec.Issue(map[string]string{
		entity.ClaimUserID: strconv.FormatInt(user.ID, 10),
	}, srv.identityTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue identity token")
	}

	return &usecase.LoginOutput{
		IdentityToken: token,
		ExpiresAt:     expiresAt,
		User:          user,
	}, nil
}

// ForgotPassword derives today's reset token and hands it to the mail worker.
func (srv *accountService) ForgotPassword(ctx context.Context, email string) (*usecase.ForgotPasswordOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, translateError(err)
	}

	token := srv.resetDeriver.Derive(user.ID, user.Email)
	validUntil := srv.resetDeriver.ValidUntil()

	event := &service.PasswordResetEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		UserID:     user.ID,
		Email:      user.Email,
		ResetToken: token,
		ValidUntil: validUntil.Format(time.RFC3339),
	}
	if err := srv.publisher.PublishPasswordReset(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish password reset event",
			slog.Int64("userID", user.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to publish password reset event")
	}

	srv.log(ctx).Info("Password reset requested",
		slog.Int64("userID", user.ID),
		slog.String("eventID", event.EventID),
		slog.String("validFor", util.FormatDuration(validUntil.Sub(srv.now()))),
	)

	output := &usecase.ForgotPasswordOutput{
		UserID:     user.ID,
		ValidUntil: validUntil,
	}
	if srv.exposeResetToken {
		output.ResetToken = token
	}

	return output, nil
}

// ResetPassword accepts the token until UTC midnight of the day it was derived.
func (srv *accountService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return translateError(err)
	}

	if !srv.resetDeriver.Matches(user.ID, user.Email, input.ResetToken) {
		srv.log(ctx).Info("Reset token mismatch", slog.Int64("userID", user.ID))

		return domainerrors.ErrResetTokenMismatch
	}

	return replaceCredential(ctx, srv.userRepo, srv.policy, srv.hasher, user.ID, input.NewPassword)
}

// replaceCredential stores a fresh StoredCredential for newPassword. The previous one is superseded, never edited.
func replaceCredential(
	ctx context.Context,
	userRepo repository.UserRepository,
	policy service.PasswordPolicy,
	hasher service.CredentialHasher,
	userID int64,
	newPassword string,
) error {
	if err := policy.Validate(newPassword); err != nil {
		return err
	}

	stored, err := hasher.Hash(newPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed
	}

	if err := userRepo.UpdatePasswordHash(ctx, userID, stored); err != nil {
		return translateError(err)
	}

	return nil
}
