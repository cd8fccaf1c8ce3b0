package routes

import (
	"alu_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCart     = "/cart"
	PathOrders   = "/orders"
	PathProducts = "/products"
)

func addPortalRoutes(
	rg *gin.RouterGroup,
	cartHandler *handlers.CartHandler,
	orderHandler *handlers.OrderHandler,
	documentHandler *handlers.DocumentHandler,
	productHandler *handlers.ProductHandler,
) {
	cart := rg.Group(PathCart)
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.Clear)
		cart.POST("/items", cartHandler.AddItem)
		cart.DELETE("/items/:index", cartHandler.RemoveItem)
		cart.GET("/quotation", documentHandler.Quotation)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.PlaceOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/metrics", orderHandler.Metrics)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/status", orderHandler.UpdateStatus)
		orders.GET("/:id/receipt", documentHandler.Receipt)
		orders.GET("/:id/delivery-note", documentHandler.DeliveryNote)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.POST("/:id/price", productHandler.QuotePrice)
		products.PATCH("/:id/inventory", productHandler.UpdateInventory)
	}
}
