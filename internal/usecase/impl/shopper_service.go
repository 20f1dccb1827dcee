package impl

import (
	"context"
	"encoding/json"
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

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// shopperService implements the ShopperUsecase interface.
type shopperService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	hasher      service.CredentialHasher
	policy      service.PasswordPolicy
	codec       service.TokenCodec
	intentTTL   time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// ShopperServiceParams holds dependencies for ShopperService, injected by Fx.
type ShopperServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	Hasher      service.CredentialHasher
	Policy      service.PasswordPolicy
	Codec       service.TokenCodec
	Config      *config.Config
	Logger      *slog.Logger
}

// NewShopperService is the constructor for shopperService.
func NewShopperService(params ShopperServiceParams) usecase.ShopperUsecase {
	srv := &shopperService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		hasher:      params.Hasher,
		policy:      params.Policy,
		codec:       params.Codec,
		now:         time.Now,
		logger:      params.Logger,
	}
	if params.Config != nil && params.Config.Auth != nil {
		srv.intentTTL = params.Config.Auth.IntentTokenTTL
	}

	return srv
}

func (srv *shopperService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *shopperService) CurrentUser(ctx context.Context, principal *entity.Principal) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		return nil, translateError(err)
	}

	return user, nil
}

// IssueIntent mints a short-lived token binding the operation parameters to the caller.
func (srv *shopperService) IssueIntent(ctx context.Context, principal *entity.Principal, input *usecase.IssueIntentInput) (*usecase.IntentOutput, error) {
	claims := map[string]string{
		entity.ClaimIntent: string(input.Intent),
		entity.ClaimUserID: strconv.FormatInt(principal.UserID, 10),
	}

	switch input.Intent {
	case entity.IntentChangePassword:
		if input.OldPassword == "" || input.NewPassword == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("oldPassword and newPassword are required")
		}
		claims[entity.ClaimOldPassword] = input.OldPassword
		claims[entity.ClaimNewPassword] = input.NewPassword

	case entity.IntentCreateOrder:
		if !validItems(input.Items) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("items need a productId and a positive quantity")
		}
		items, err := json.Marshal(input.Items)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		claims[entity.ClaimItems] = string(items)

	case entity.IntentCancelOrder:
		if input.OrderID <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("orderId is required")
		}
		claims[entity.ClaimOrderID] = strconv.FormatInt(input.OrderID, 10)

	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown intent " + string(input.Intent))
	}

	token, expiresAt, err := srv.codec.Issue(claims, srv.intentTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue intent token")
	}

	srv.log(ctx).Debug("Intent token issued",
		slog.String("intent", string(input.Intent)),
		slog.Int64("userID", principal.UserID),
	)

	return &usecase.IntentOutput{Token: token, ExpiresAt: expiresAt}, nil
}

// openIntent validates an intent token and checks it names intent and was minted for principal.
func (srv *shopperService) openIntent(principal *entity.Principal, rawToken string, intent entity.Intent) (*service.TokenClaims, error) {
	if rawToken == "" {
		return nil, domainerrors.ErrTokenRequired
	}

	claims, err := srv.codec.Validate(rawToken)
	if err != nil {
		return nil, err
	}

	if got, _ := claims.Get(entity.ClaimIntent); got != string(intent) {
		return nil, domainerrors.ErrInvalidTokenPayload
	}

	rawUserID, ok := claims.Get(entity.ClaimUserID)
	if !ok {
		return nil, domainerrors.ErrInvalidTokenPayload
	}
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrInvalidTokenPayload
	}
	if userID != principal.UserID {
		return nil, domainerrors.ErrIntentSubjectMismatch
	}

	return claims, nil
}

// ChangePassword requires the current password carried by the intent token to verify.
func (srv *shopperService) ChangePassword(ctx context.Context, principal *entity.Principal, intentToken string) error {
	claims, err := srv.openIntent(principal, intentToken, entity.IntentChangePassword)
	if err != nil {
		return err
	}

	oldPassword, okOld := claims.Get(entity.ClaimOldPassword)
	newPassword, okNew := claims.Get(entity.ClaimNewPassword)
	if !okOld || !okNew {
		return domainerrors.ErrInvalidTokenPayload
	}

	user, err := srv.userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		return translateError(err)
	}

	if !srv.hasher.Verify(user.PasswordHash, oldPassword) {
		return domainerrors.ErrInvalidCurrentPassword
	}

	if err := replaceCredential(ctx, srv.userRepo, srv.policy, srv.hasher, user.ID, newPassword); err != nil {
		return err
	}

	srv.log(ctx).Info("Password changed", slog.Int64("userID", user.ID))

	return nil
}

// CreateOrder places a Pending order for the items of the intent token.
func (srv *shopperService) CreateOrder(ctx context.Context, principal *entity.Principal, intentToken string) (*entity.Order, error) {
	claims, err := srv.openIntent(principal, intentToken, entity.IntentCreateOrder)
	if err != nil {
		return nil, err
	}

	rawItems, ok := claims.Get(entity.ClaimItems)
	if !ok {
		return nil, domainerrors.ErrInvalidTokenPayload
	}
	var items []entity.OrderItem
	if err := json.Unmarshal([]byte(rawItems), &items); err != nil || !validItems(items) {
		return nil, domainerrors.ErrInvalidTokenPayload
	}

	var order *entity.Order
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var txErr error
		order, txErr = placeOrder(ctx, repos, principal.UserID, items, entity.OrderStatusPending, srv.now().UTC())

		return txErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order created",
		slog.Int64("orderID", order.ID),
		slog.Int64("userID", principal.UserID),
	)

	return order, nil
}

// CancelOrder deletes an order of the caller together with its details.
func (srv *shopperService) CancelOrder(ctx context.Context, principal *entity.Principal, intentToken string) error {
	claims, err := srv.openIntent(principal, intentToken, entity.IntentCancelOrder)
	if err != nil {
		return err
	}

	rawOrderID, ok := claims.Get(entity.ClaimOrderID)
	if !ok {
		return domainerrors.ErrInvalidTokenPayload
	}
	orderID, err := strconv.ParseInt(rawOrderID, 10, 64)
	if err != nil {
		return domainerrors.ErrInvalidTokenPayload
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		orderRepo := repos.OrderRepo()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return translateError(err)
		}
		if !order.OwnedBy(principal.UserID) {
			return domainerrors.ErrOrderOwnershipViolation
		}

		return translateError(orderRepo.Delete(ctx, order.ID))
	})
	if err != nil {
		return errors.Wrap(err, "failed to cancel order")
	}

	srv.log(ctx).Info("Order cancelled", slog.Int64("orderID", orderID))

	return nil
}

func (srv *shopperService) AvailableProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListAvailable(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available products")
	}

	return products, nil
}
