// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"bakehouse/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	OrderHandler   *handler.OrderHandler
	CatalogHandler *handler.CatalogHandler
	ContactHandler *handler.ContactHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler   *handler.OrderHandler
	catalogHandler *handler.CatalogHandler
	contactHandler *handler.ContactHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:   params.OrderHandler,
		catalogHandler: params.CatalogHandler,
		contactHandler: params.ContactHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog and content routes
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/menus", r.catalogHandler.ListMenus)
		catalogGroup.GET("/menus/:id", r.catalogHandler.GetMenu)
		catalogGroup.GET("/products", r.catalogHandler.QueryProducts)
	}
	e.GET("/content/news", r.catalogHandler.ListNews)

	// Contact form
	e.POST("/contact", r.contactHandler.Submit)

	// Order session routes
	e.POST("/order/sessions", r.orderHandler.StartSession)
	sessionGroup := e.Group("/order/sessions/:id")
	{
		sessionGroup.GET("", r.orderHandler.GetSession)
		sessionGroup.DELETE("", r.orderHandler.EndSession)

		sessionGroup.POST("/menu", r.orderHandler.SelectMenu)
		sessionGroup.POST("/order-type", r.orderHandler.SetOrderType)
		sessionGroup.DELETE("/order-type", r.orderHandler.ResetOrderType)

		sessionGroup.POST("/items/toggle", r.orderHandler.ToggleItem)
		sessionGroup.PATCH("/draft", r.orderHandler.UpdateDraft)
		sessionGroup.POST("/draft/commit", r.orderHandler.AddDraftItem)
		sessionGroup.POST("/lines/:lineID/edit", r.orderHandler.EditLine)
		sessionGroup.DELETE("/lines/:lineID", r.orderHandler.RemoveLine)

		sessionGroup.PUT("/matrix", r.orderHandler.SetMatrixQuantity)
		sessionGroup.POST("/matrix/commit", r.orderHandler.AddMatrixSelections)

		sessionGroup.POST("/checkout/open", r.orderHandler.OpenCheckout)
		sessionGroup.POST("/checkout/close", r.orderHandler.CloseCheckout)
		sessionGroup.PATCH("/fulfillment", r.orderHandler.UpdateFulfillment)
		sessionGroup.PATCH("/customer", r.orderHandler.UpdateCustomer)
		sessionGroup.PUT("/notes", r.orderHandler.SetNotes)
		sessionGroup.POST("/touch", r.orderHandler.TouchField)
		sessionGroup.POST("/submit", r.orderHandler.Submit)
	}
}
