package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopperHandlerParams holds dependencies for ShopperHandler, injected by Fx.
type ShopperHandlerParams struct {
	fx.In

	ShopperUC usecase.ShopperUsecase
	Logger    *slog.Logger
}

// ShopperHandler serves the routes of an authenticated user.
type ShopperHandler struct {
	shopperUC usecase.ShopperUsecase
	logger    *slog.Logger
}

// NewShopperHandler is the constructor for ShopperHandler
func NewShopperHandler(params ShopperHandlerParams) *ShopperHandler {
	return &ShopperHandler{
		shopperUC: params.ShopperUC,
		logger:    params.Logger,
	}
}

type OrderItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// IssueIntentRequest names the intent and the parameters the token will carry.
type IssueIntentRequest struct {
	Intent      string             `json:"intent" validate:"required,oneof=change-password create-order cancel-order"`
	OldPassword string             `json:"oldPassword"`
	NewPassword string             `json:"newPassword"`
	Items       []OrderItemRequest `json:"items" validate:"dive"`
	OrderID     int64              `json:"orderId"`
}

type IntentResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IntentTokenRequest carries an intent token minted by IssueIntent.
type IntentTokenRequest struct {
	Token string `json:"token"`
}

type CurrentUserResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toOrderItems(items []OrderItemRequest) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, entity.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	return out
}

func (h *ShopperHandler) CurrentUser(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Unauthorized. Please log in.")
	}

	user, err := h.shopperUC.CurrentUser(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CurrentUserResponse{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// IssueIntent mints an intent token for the caller.
func (h *ShopperHandler) IssueIntent(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Unauthorized. Please log in.")
	}

	var req IssueIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid intent input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.shopperUC.IssueIntent(c.Request().Context(), principal, &usecase.IssueIntentInput{
		Intent:      entity.Intent(req.Intent),
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
		Items:       toOrderItems(req.Items),
		OrderID:     req.OrderID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, IntentResponse{Token: output.Token, ExpiresAt: output.ExpiresAt})
}

func (h *ShopperHandler) ChangePassword(c echo.Context) error {
	principal, token, err := h.bindIntent(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.shopperUC.ChangePassword(c.Request().Context(), principal, token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password changed"})
}

func (h *ShopperHandler) CreateOrder(c echo.Context) error {
	principal, token, err := h.bindIntent(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.shopperUC.CreateOrder(c.Request().Context(), principal, token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newOrderView(order))
}

func (h *ShopperHandler) CancelOrder(c echo.Context) error {
	principal, token, err := h.bindIntent(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.shopperUC.CancelOrder(c.Request().Context(), principal, token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Order cancelled"})
}

func (h *ShopperHandler) AvailableProducts(c echo.Context) error {
	products, err := h.shopperUC.AvailableProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductViews(products))
}

// bindIntent reads the caller and the intent token of the request body.
// An empty token is left to the use case, which rejects it with its own error.
func (h *ShopperHandler) bindIntent(c echo.Context) (*entity.Principal, string, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return nil, "", domainerrors.ErrUnauthenticated
	}

	var req IntentTokenRequest
	if err := c.Bind(&req); err != nil {
		return nil, "", domainerrors.ErrValidationFailed.WithDetails("invalid intent token input")
	}

	return principal, req.Token, nil
}
