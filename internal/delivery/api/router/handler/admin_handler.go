package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the back-office routes. Every route sits behind the admin gate.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

type AddProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Tags        []string `json:"tags" validate:"dive,required"`
}

type ImportProductsRequest struct {
	Key string `json:"key" validate:"required"`
}

type ImportProductsResponse struct {
	Products    []*ProductView `json:"products"`
	CreatedTags []string       `json:"createdTags"`
}

// AddOrderRequest places an order for userId. Status defaults to Pending and orderDate to now.
type AddOrderRequest struct {
	UserID    int64              `json:"userId" validate:"required,gt=0"`
	Status    string             `json:"status" validate:"omitempty,oneof=Pending Paid Shipped Completed"`
	OrderDate *time.Time         `json:"orderDate"`
	Items     []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderRequest struct {
	Status    string    `json:"status" validate:"required,oneof=Pending Paid Shipped Completed"`
	OrderDate time.Time `json:"orderDate" validate:"required"`
}

type AddTagRequest struct {
	Name string `json:"name" validate:"required"`
}

type AddUserRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	IsAdmin  bool   `json:"isAdmin"`
}

type RemoveUserResponse struct {
	UserID           int64 `json:"userId"`
	ReassignedOrders int64 `json:"reassignedOrders"`
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer")
	}

	return id, nil
}

// bindAndValidate binds the request body into req and validates it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// --- Products ---

func (h *AdminHandler) AddProduct(c echo.Context) error {
	var req AddProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.adminUC.AddProduct(c.Request().Context(), &usecase.AddProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		TagNames:    req.Tags,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newProductView(product))
}

func (h *AdminHandler) RemoveProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.RemoveProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"id": id})
}

// ImportProducts loads a catalog XML document from the configured bucket.
func (h *AdminHandler) ImportProducts(c echo.Context) error {
	var req ImportProductsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if admin, ok := middleware.GetAdmin(c); ok {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Catalog import requested",
			slog.String("key", req.Key),
			slog.Int64("adminID", admin.ID),
		)
	}

	output, err := h.adminUC.ImportProducts(c.Request().Context(), req.Key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ImportProductsResponse{
		Products:    newProductViews(output.Products),
		CreatedTags: output.CreatedTags,
	})
}

// --- Orders ---

func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.adminUC.ListOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderViews(orders))
}

func (h *AdminHandler) CancelOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.CancelOrder(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"id": id})
}

func (h *AdminHandler) AddOrder(c echo.Context) error {
	var req AddOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.AddOrderInput{
		UserID: req.UserID,
		Status: entity.OrderStatus(req.Status),
		Items:  toOrderItems(req.Items),
	}
	if req.OrderDate != nil {
		input.OrderDate = req.OrderDate.UTC()
	}

	order, err := h.adminUC.AddOrder(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newOrderView(order))
}

func (h *AdminHandler) UpdateOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	err = h.adminUC.UpdateOrder(c.Request().Context(), id, &usecase.UpdateOrderInput{
		Status:    entity.OrderStatus(req.Status),
		OrderDate: req.OrderDate.UTC(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"id": id})
}

func (h *AdminHandler) ListOrderDetails(c echo.Context) error {
	details, err := h.adminUC.ListOrderDetails(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]OrderDetailView, 0, len(details))
	for _, detail := range details {
		views = append(views, newOrderDetailView(detail))
	}

	return response.Success(c, http.StatusOK, views)
}

func (h *AdminHandler) RemoveOrderDetail(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.RemoveOrderDetail(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"id": id})
}

// --- Tags ---

func (h *AdminHandler) AddTag(c echo.Context) error {
	var req AddTagRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	tag, err := h.adminUC.AddTag(c.Request().Context(), req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newTagView(tag))
}

func (h *AdminHandler) RemoveTag(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.RemoveTag(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"id": id})
}

// --- Users ---

func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserViews(users))
}

func (h *AdminHandler) UserOrders(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.adminUC.UserOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderViews(orders))
}

func (h *AdminHandler) AddUser(c echo.Context) error {
	var req AddUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.adminUC.AddUser(c.Request().Context(), &usecase.AddUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserView(user))
}

// RemoveUser deletes the account and reports how many orders moved to the deleted-user sentinel.
func (h *AdminHandler) RemoveUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reassigned, err := h.adminUC.RemoveUser(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RemoveUserResponse{UserID: id, ReassignedOrders: reassigned})
}
