// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	ShopperHandler *handler.ShopperHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	shopperHandler *handler.ShopperHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		shopperHandler: params.ShopperHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	publicGroup := e.Group("/public")
	{
		publicGroup.POST("/register", r.accountHandler.Register)
		publicGroup.POST("/login", r.accountHandler.Login)
		publicGroup.POST("/forget-password", r.accountHandler.ForgetPassword)
		publicGroup.POST("/reset-password", r.accountHandler.ResetPassword)
	}

	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/current-user", r.shopperHandler.CurrentUser)
		userGroup.POST("/intents", r.shopperHandler.IssueIntent)
		userGroup.PUT("/change-password", r.shopperHandler.ChangePassword)
		userGroup.POST("/create-order", r.shopperHandler.CreateOrder)
		userGroup.DELETE("/cancel-order", r.shopperHandler.CancelOrder)
		userGroup.GET("/available-products", r.shopperHandler.AvailableProducts)
	}

	// Authenticate runs before RequireAdmin, so a bad token is always 401 and never 403.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.POST("/add-product", r.adminHandler.AddProduct)
		adminGroup.DELETE("/remove-product/:id", r.adminHandler.RemoveProduct)
		adminGroup.POST("/import-products", r.adminHandler.ImportProducts)

		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.DELETE("/cancel-order/:id", r.adminHandler.CancelOrder)
		adminGroup.POST("/add-order", r.adminHandler.AddOrder)
		adminGroup.PUT("/update-order/:id", r.adminHandler.UpdateOrder)
		adminGroup.GET("/order-details", r.adminHandler.ListOrderDetails)
		adminGroup.DELETE("/remove-order-detail/:id", r.adminHandler.RemoveOrderDetail)

		adminGroup.POST("/add-tag", r.adminHandler.AddTag)
		adminGroup.DELETE("/remove-tag/:id", r.adminHandler.RemoveTag)

		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/user-orders/:userId", r.adminHandler.UserOrders)
		adminGroup.POST("/add-user", r.adminHandler.AddUser)
		adminGroup.DELETE("/remove-user/:id", r.adminHandler.RemoveUser)
	}
}
