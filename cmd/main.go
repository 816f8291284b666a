package main

import (
	"context"

	"babyshop/config"
	"babyshop/controllers"
	"babyshop/database"
	"babyshop/logger"
	"babyshop/routes"
	"babyshop/services"

	"github.com/gin-gonic/gin"
)

func main() {

	config.LoadEnv()
	config.MustGetEnv("JWT_SECRET")

	log := logger.New(logger.Options{
		Service: "babyshop",
		Env:     config.GetEnv("APP_ENV", "dev"),
		Level:   config.GetEnv("LOG_LEVEL", "info"),
	})

	database.ConnectMongo()
	database.InitCollections()

	redisClient := database.ConnectRedis(config.GetEnv("REDIS_ADDR", "localhost:6379"))

	sandbox := config.GetEnvBool("PAYMENT_SANDBOX", true)
	gatewayCfg := services.GatewayConfig{
		GatewayURL: config.GetEnv("JAZZCASH_GATEWAY_URL", "https://sandbox.jazzcash.com.pk/CustomerPortal/transactionmanagement/merchantform"),
		ReturnURL:  config.GetEnv("PAYMENT_RETURN_URL", "http://localhost:8080/api/payment/return"),
		CancelURL:  config.GetEnv("PAYMENT_CANCEL_URL", "http://localhost:8080/api/payment/cancel"),
		Sandbox:    sandbox,
	}
	if sandbox {
		gatewayCfg.MerchantID = config.GetEnv("JAZZCASH_MERCHANT_ID", "MC-SANDBOX")
		gatewayCfg.Password = config.GetEnv("JAZZCASH_PASSWORD", "sandbox")
		gatewayCfg.IntegritySalt = config.GetEnv("JAZZCASH_INTEGRITY_SALT", "sandbox-salt")
	} else {
		gatewayCfg.MerchantID = config.MustGetEnv("JAZZCASH_MERCHANT_ID")
		gatewayCfg.Password = config.MustGetEnv("JAZZCASH_PASSWORD")
		gatewayCfg.IntegritySalt = config.MustGetEnv("JAZZCASH_INTEGRITY_SALT")
	}

	catalog := services.NewCatalogService(database.ProductCollection, log)
	if err := catalog.Load(context.Background()); err != nil {
		log.Warn("initial catalog load failed", "err", err)
	}
	go catalog.Watch(context.Background())

	carts := services.NewCartService(redisClient, log)
	pricing := services.NewPricingService(database.SiteSettingsCollection, log)
	email := services.NewEmailService(log)
	gateway := services.NewPaymentGateway(gatewayCfg)

	deps := &routes.Deps{
		Products:      controllers.NewProductController(catalog),
		AdminProducts: controllers.NewAdminProductController(catalog),
		Cart:          controllers.NewCartController(carts, catalog),
		Orders:        controllers.NewOrderController(carts, catalog, pricing, email),
		AdminOrders:   controllers.NewAdminOrderController(email),
		Settings:      controllers.NewSettingsController(pricing),
		Payments:      controllers.NewPaymentController(gateway, sandbox),
	}

	r := gin.Default()
	r.SetTrustedProxies(nil)
	routes.RegisterRoutes(r, deps)

	port := config.GetEnv("PORT", "8080")
	r.Run(":" + port)
}
