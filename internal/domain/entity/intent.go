package entity

// Intent names the operation an intent token authorizes.
type Intent string

const (
	IntentChangePassword Intent = "change-password"
	IntentCreateOrder    Intent = "create-order"
	IntentCancelOrder    Intent = "cancel-order"
)

// Claim names shared by identity and intent tokens.
const (
	ClaimUserID      = "UserId"
	ClaimIntent      = "Intent"
	ClaimOldPassword = "OldPassword"
	ClaimNewPassword = "NewPassword"
	ClaimItems       = "Items"
	ClaimOrderID     = "OrderId"
)

// OrderItem is one element of the Items claim of a create-order intent.
type OrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}
