package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"warga-registry-svc/internal/service"
	"warga-registry-svc/pkg/logger"
	"warga-registry-svc/pkg/response"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	wargaService service.WargaService,
	summaryService service.SummaryService,
	writer *response.Writer,
	logger *logger.Logger,
) {
	// Initialize handlers
	wargaHandler := NewWargaHandler(wargaService, writer, logger)
	summaryHandler := NewSummaryHandler(summaryService, writer, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", HealthCheck)

	// Warga routes
	warga := router.Group("/warga")
	{
		warga.POST("", wargaHandler.CreateWarga)
		warga.GET("", wargaHandler.GetAllWarga)
		warga.GET("/summary", summaryHandler.GetRegistrySummary)
		warga.GET("/by-nik/:nik", wargaHandler.GetWargaByNik)
		warga.PUT("/:nik", wargaHandler.UpdateWarga)
		warga.DELETE("/:nik", wargaHandler.DeleteWarga)
	}
}

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Warga Registry Service",
	})
}
