// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/verve-shop/storefront/internal/config"
	"github.com/verve-shop/storefront/internal/domain/cart"
	"github.com/verve-shop/storefront/internal/domain/catalog"
	"github.com/verve-shop/storefront/internal/domain/checkout"
	"github.com/verve-shop/storefront/internal/domain/order"
	"github.com/verve-shop/storefront/internal/domain/session"
	"github.com/verve-shop/storefront/internal/domain/storefront"
	"github.com/verve-shop/storefront/internal/interfaces/http/handlers"
	"github.com/verve-shop/storefront/internal/interfaces/http/middleware"
	"github.com/verve-shop/storefront/internal/pkg/auth"
	"github.com/verve-shop/storefront/internal/pkg/pdf"
)

// Services holds everything the handlers need
type Services struct {
	Config     *config.Config
	Logger     *logrus.Entry
	Catalog    *catalog.Service
	Cart       *cart.Service
	Checkout   *checkout.Service
	Orders     *order.Service
	Storefront *storefront.Service
	Sessions   *session.Manager
	Admin      *auth.AdminAuthenticator
	Invoices   *pdf.Service
}

// SetupRoutes registers every API route on the group
func SetupRoutes(rg *gin.RouterGroup, svc Services) {
	sessions := handlers.NewSessions(svc.Sessions, svc.Config.Session)

	SetupSessionRoutes(rg, svc, sessions)
	SetupProductRoutes(rg, svc)
	SetupCartRoutes(rg, svc, sessions)
	SetupCheckoutRoutes(rg, svc, sessions)
	SetupAccountRoutes(rg, svc)
	SetupAdminRoutes(rg, svc)
}

// SetupSessionRoutes sets up the rendered view and navigation routes
func SetupSessionRoutes(rg *gin.RouterGroup, svc Services, sessions *handlers.Sessions) {
	sessionHandler := handlers.NewSessionHandler(sessions, svc.Storefront)

	s := rg.Group("/session")
	s.Use(middleware.OptionalAdmin(svc.Admin.Tokens()))
	{
		s.GET("/view", sessionHandler.GetView)
		s.POST("/actions", sessionHandler.Dispatch)
		s.DELETE("", sessionHandler.Reset)
	}
}

// SetupProductRoutes sets up product related routes
func SetupProductRoutes(rg *gin.RouterGroup, svc Services) {
	productHandler := handlers.NewProductHandler(svc.Catalog)
	reviewHandler := handlers.NewReviewHandler(svc.Catalog)
	categoryHandler := handlers.NewCategoryHandler(svc.Catalog)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.GET("/:id/reviews", reviewHandler.GetProductReviews)
	}

	rg.GET("/categories", categoryHandler.GetCategories)
	rg.GET("/search", productHandler.SearchProducts)
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, svc Services, sessions *handlers.Sessions) {
	cartHandler := handlers.NewCartHandler(svc.Cart, sessions)

	c := rg.Group("/cart")
	{
		c.GET("", cartHandler.GetCart)
		c.GET("/count", cartHandler.GetCartCount)
		c.POST("/items", cartHandler.AddToCart)
		c.PUT("/items/:product_id", cartHandler.UpdateCartItem)
		c.DELETE("/items/:product_id", cartHandler.RemoveFromCart)
		c.DELETE("", cartHandler.ClearCart)
	}
}

// SetupCheckoutRoutes sets up the checkout flow
func SetupCheckoutRoutes(rg *gin.RouterGroup, svc Services, sessions *handlers.Sessions) {
	checkoutHandler := handlers.NewCheckoutHandler(svc.Checkout, sessions)

	co := rg.Group("/checkout")
	{
		co.GET("", checkoutHandler.GetCheckout)
		co.POST("/contact", checkoutHandler.SubmitContact)
		co.POST("/shipping", checkoutHandler.SubmitShipping)
		co.POST("/payment", checkoutHandler.SubmitPayment)
		co.POST("/back", checkoutHandler.Back)
		co.POST("/place-order", checkoutHandler.PlaceOrder)
	}
}

// SetupAccountRoutes sets up the account dashboard routes
func SetupAccountRoutes(rg *gin.RouterGroup, svc Services) {
	orderHandler := handlers.NewOrderHandler(svc.Orders)
	addressHandler := handlers.NewAddressHandler(svc.Orders)
	invoiceHandler := handlers.NewInvoiceHandler(svc.Orders, svc.Invoices)

	account := rg.Group("/account")
	{
		account.GET("/dashboard", orderHandler.GetDashboard)
		account.GET("/orders", orderHandler.GetOrders)
		account.GET("/orders/:id", orderHandler.GetOrder)
		account.GET("/orders/:id/invoice", invoiceHandler.GenerateInvoice)
		account.GET("/addresses", addressHandler.GetAddresses)
	}
}

// SetupAdminRoutes sets up admin login and the protected admin routes
func SetupAdminRoutes(rg *gin.RouterGroup, svc Services) {
	authHandler := handlers.NewAuthHandler(svc.Admin, svc.Logger.WithField("component", "admin"))
	inventoryHandler := handlers.NewInventoryHandler(svc.Catalog)

	admin := rg.Group("/admin")
	{
		admin.POST("/login", authHandler.AdminLogin)

		protected := admin.Group("")
		protected.Use(middleware.RequireAdmin(svc.Admin.Tokens()))
		{
			protected.GET("/inventory", inventoryHandler.GetInventory)
		}
	}
}
