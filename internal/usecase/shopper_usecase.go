package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// IssueIntentInput lists the parameters an intent token will carry. Only the fields of Intent are used.
type IssueIntentInput struct {
	Intent      entity.Intent
	OldPassword string
	NewPassword string
	Items       []entity.OrderItem
	OrderID     int64
}

// IntentOutput is a freshly minted intent token.
type IntentOutput struct {
	Token     string
	ExpiresAt time.Time
}

// ShopperUsecase covers the operations of an authenticated user acting on their own account.
// Every state change takes an intent token whose claims hold the operation parameters.
type ShopperUsecase interface {
	CurrentUser(ctx context.Context, principal *entity.Principal) (*entity.User, error)
	IssueIntent(ctx context.Context, principal *entity.Principal, input *IssueIntentInput) (*IntentOutput, error)
	ChangePassword(ctx context.Context, principal *entity.Principal, intentToken string) error
	CreateOrder(ctx context.Context, principal *entity.Principal, intentToken string) (*entity.Order, error)
	CancelOrder(ctx context.Context, principal *entity.Principal, intentToken string) error
	AvailableProducts(ctx context.Context) ([]*entity.Product, error)
}
