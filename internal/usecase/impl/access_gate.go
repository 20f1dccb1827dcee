package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type accessGate struct {
	codec    service.TokenCodec
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// AccessGateParams holds dependencies for AccessGate, injected by Fx.
type AccessGateParams struct {
	fx.In

	Codec    service.TokenCodec
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewAccessGate is the constructor for accessGate.
func NewAccessGate(params AccessGateParams) usecase.AccessGate {
	return &accessGate{
		codec:    params.Codec,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (g *accessGate) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// Authenticate turns an identity token into a Principal. Every failure is reported as
// ErrUnauthenticated except expiry, which keeps its own code.
func (g *accessGate) Authenticate(ctx context.Context, rawToken string) (*entity.Principal, error) {
	if rawToken == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	claims, err := g.codec.Validate(rawToken)
	if err != nil {
		if errors.Is(err, domainerrors.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}
		g.log(ctx).Debug("Identity token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthenticated
	}

	// Intent tokens share the signing secret but never identify a caller.
	if _, isIntent := claims.Get(entity.ClaimIntent); isIntent {
		return nil, domainerrors.ErrUnauthenticated
	}

	rawUserID, ok := claims.Get(entity.ClaimUserID)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil || userID <= 0 {
		return nil, domainerrors.ErrUnauthenticated
	}

	return &entity.Principal{UserID: userID, TokenID: claims.ID}, nil
}

// AuthorizeAdmin reloads the user so role changes apply to the next request.
func (g *accessGate) AuthorizeAdmin(ctx context.Context, principal *entity.Principal) (*entity.User, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	user, err := g.userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load principal")
	}

	if !user.IsAdmin {
		g.log(ctx).Info("Admin access denied", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrForbidden
	}

	return user, nil
}
