package main

import (
	"github.com/gin-gonic/gin"

	"ghala.backend/internal/interfaces/http/handlers"
	"ghala.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler      *handlers.AuthHandler
	merchantHandler  *handlers.MerchantHandler
	orderHandler     *handlers.OrderHandler
	analyticsHandler *handlers.AnalyticsHandler
	adminHandler     *handlers.AdminHandler
}

// registerRoutes wires the API surface. Paths are flat, matching the demo
// dashboard the server was built for.
func registerRoutes(r *gin.Engine, d routeDeps) {
	// Auth
	r.POST("/login", d.authHandler.Login)

	// Merchant configuration
	r.GET("/payment-methods", d.merchantHandler.PaymentMethods)
	r.GET("/merchant/:id", d.merchantHandler.GetConfig)
	r.POST("/merchant/:id", d.merchantHandler.UpsertConfig)

	// Order lifecycle
	r.POST("/order/:merchant_id", middleware.IdempotencyMiddleware(), d.orderHandler.CreateOrder)
	r.GET("/orders/:merchant_id", d.orderHandler.ListOrders)
	r.GET("/order/:merchant_id/:order_id", d.orderHandler.GetOrder)
	r.PUT("/order/:merchant_id/:order_id", d.orderHandler.UpdateOrder)
	r.DELETE("/order/:merchant_id/:order_id", d.orderHandler.DeleteOrder)
	r.POST("/simulate-payment/:merchant_id/:order_id", d.orderHandler.SimulatePayment)

	// Analytics
	r.GET("/analytics/orders/:merchant_id", d.analyticsHandler.DailySeries)
	r.GET("/analytics/payment-methods/:merchant_id", d.analyticsHandler.PaymentMethodMix)
	r.GET("/analytics/status-distribution/:merchant_id", d.analyticsHandler.StatusDistribution)

	// Admin-wide listings
	r.GET("/merchants", d.adminHandler.ListMerchants)
	r.GET("/orders", d.adminHandler.ListOrders)
}
