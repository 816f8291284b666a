package routes

import (
	"babyshop/controllers"
	"babyshop/middleware"

	"github.com/gin-gonic/gin"
)

// Deps carries the constructed controllers so route registration stays free
// of service wiring.
type Deps struct {
	Products      *controllers.ProductController
	AdminProducts *controllers.AdminProductController
	Cart          *controllers.CartController
	Orders        *controllers.OrderController
	AdminOrders   *controllers.AdminOrderController
	Settings      *controllers.SettingsController
	Payments      *controllers.PaymentController
}

func RegisterRoutes(r *gin.Engine, d *Deps) {

	api := r.Group("/api")
	{
		api.POST("/register", controllers.Register)
		api.POST("/login", controllers.Login)
		api.POST("/admin/login", controllers.AdminLogin)
		api.POST("/logout", controllers.Logout)

		// Public storefront, no auth.
		api.GET("/categories", d.Products.GetCategories)
		api.GET("/categories/:id/products", d.Products.GetCategoryProducts)
		api.GET("/products", d.Products.GetProducts)
		api.GET("/products/:id", d.Products.GetProduct)
		api.GET("/payment-accounts", controllers.GetActivePaymentAccounts)

		// Gateway return/cancel callbacks arrive unauthenticated.
		api.GET("/payment/return", d.Payments.PaymentReturn)
		api.GET("/payment/cancel", d.Payments.PaymentCancel)

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			admin := protected.Group("/admin")
			admin.Use(middleware.AdminMiddleware())
			{
				admin.POST("/products", d.AdminProducts.CreateProduct)
				admin.GET("/products", d.AdminProducts.GetProducts)
				admin.GET("/products/low-stock", d.AdminProducts.GetLowStock)
				admin.PUT("/products/:id", d.AdminProducts.UpdateProduct)
				admin.DELETE("/products/:id", d.AdminProducts.DeleteProduct)

				admin.GET("/orders", d.AdminOrders.GetOrders)
				admin.GET("/orders/:id", d.AdminOrders.GetOrderByID)
				admin.PUT("/orders/:id/status", d.AdminOrders.UpdateOrderStatus)
				admin.PUT("/orders/:id/tracking", d.AdminOrders.AttachTracking)
				admin.PUT("/orders/:id/cancel", d.AdminOrders.CancelOrder)

				admin.GET("/settings", d.Settings.GetSettings)
				admin.PUT("/settings", d.Settings.UpdateSettings)

				admin.GET("/payment-accounts", controllers.GetPaymentAccountsAdmin)
				admin.POST("/payment-accounts", controllers.CreatePaymentAccount)
				admin.PUT("/payment-accounts/:id/active", controllers.SetPaymentAccountActive)
			}

			user := protected.Group("/user")
			{
				user.GET("/cart", d.Cart.GetCart)
				user.POST("/cart", d.Cart.AddToCart)
				user.PUT("/cart/:productId", d.Cart.UpdateCart)
				user.DELETE("/cart/:productId", d.Cart.RemoveFromCart)
				user.DELETE("/cart", d.Cart.ClearCart)

				user.POST("/checkout", d.Orders.Checkout)
				user.GET("/orders", d.Orders.GetOrders)
				user.GET("/orders/:id", d.Orders.GetOrder)
				user.PUT("/orders/:id/cancel", d.Orders.CancelOrder)

				user.GET("/orders/:id/pay", d.Payments.InitiatePayment)
				user.POST("/orders/:id/pay/sandbox", d.Payments.SandboxPay)
			}
		}
	}
}
