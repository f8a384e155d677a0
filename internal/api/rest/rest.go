package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/lucid-net/poot-engine/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Proof submission (node clients authenticate with API keys)
		v1.POST("/proofs", middleware.Auth(authCfg), handler.SubmitProof)

		// Proof queries (public read access for auditability)
		v1.GET("/proofs", handler.GetProofsBySlot)
		v1.GET("/nodes/:node_id/proofs", handler.GetProofsByNode)

		// Tally and schedule reads (public)
		v1.GET("/epochs/:epoch/tally", handler.GetEpochTally)
		v1.GET("/epochs/:epoch/schedule", handler.GetEpochSchedule)
		v1.GET("/slots/:slot/schedule", handler.GetSlotSchedule)

		// Slot result recording (requires authentication)
		v1.POST("/slots/:slot/result", middleware.Auth(authCfg), handler.RecordSlotResult)
	}
}
