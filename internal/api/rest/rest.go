package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Factor lookups
		v1.POST("/factors/resolve", handler.ResolveFactors)
		v1.GET("/factors/levels", handler.ListLevels)
		v1.GET("/factors/divisions/:type/:id", handler.ListDivisionFactors)
		v1.GET("/factors/id/:uuid", handler.GetFactor)
		v1.GET("/factors/electricity/countries", handler.ListElectricityCountries)
		v1.GET("/factors/electricity/states", handler.ListElectricityStates)
		v1.GET("/factors/electricity/states/:state/utilities", handler.ListElectricityUtilities)
		v1.GET("/imports/:kind", handler.GetLastImport)

		// Emissions
		v1.POST("/emissions/compute", handler.ComputeEmissions)

		// Balances
		v1.GET("/balances/:kind", handler.ListBalances)
		v1.GET("/balances/:kind/:holder/:asset", handler.GetBalance)
		v1.GET("/assets/:kind/:id/audit", handler.AuditAsset)

		// Ledger mutations
		v1.POST("/ledger/:kind/issue", handler.Issue)
		v1.POST("/ledger/:kind/transfer", handler.Transfer)
		v1.POST("/ledger/:kind/retire", handler.Retire)
		v1.PUT("/trackers/:tracker/holders/:holder/status", handler.SetTrackerStatus)
	}
}
