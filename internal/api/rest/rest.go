package rest

import (
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/iryswiki/iryswiki/internal/api/middleware"
)

// SetupRoutes configures all REST API routes. Paid mutations pass through
// authentication and then mutationLimit, which may be nil.
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, mutationLimit gin.HandlerFunc) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	guards := []gin.HandlerFunc{middleware.Auth(authCfg)}
	if mutationLimit != nil {
		guards = append(guards, mutationLimit)
	}
	paid := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(slices.Clone(guards), h)
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/categories", handler.ListCategories)

		// Threads (public read access)
		v1.GET("/threads", handler.ListThreads)
		v1.GET("/threads/:id", handler.GetThread)
		v1.POST("/threads", paid(handler.CreateThread)...)
		v1.POST("/threads/:id/replies", paid(handler.CreateReply)...)

		// Profiles
		v1.GET("/profiles/:address", handler.GetProfile)
		v1.PUT("/profile", paid(handler.SaveProfile)...)

		// Ledger and wallet
		v1.GET("/transactions", handler.ListTransactions)
		v1.GET("/requirements/:action", handler.GetRequirement)
		v1.GET("/wallet/balance", handler.GetBalance)
		v1.GET("/stats", handler.GetStats)
	}
}
