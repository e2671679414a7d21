package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ArowuTest/ticket-ledger/internal/config"
	"github.com/ArowuTest/ticket-ledger/internal/handlers"
	"github.com/ArowuTest/ticket-ledger/internal/metrics"
	"github.com/ArowuTest/ticket-ledger/internal/middleware"
	"github.com/ArowuTest/ticket-ledger/pkg/jwt"
)

// HandlerDependencies holds all handlers needed by the router
type HandlerDependencies struct {
	Tokens         *jwt.TokenService
	LoginLimiter   *middleware.RateLimiter // nil disables login throttling
	HealthHandler  *handlers.HealthHandler
	AuthHandler    *handlers.AuthHandler
	SessionHandler *handlers.SessionHandler
	ReportHandler  *handlers.ReportHandler
	ResultHandler  *handlers.ResultHandler
	OCRHandler     *handlers.OCRHandler
}

// SetupRouter configures the Gin router with all routes
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedHosts))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(metrics.Middleware())

	router.GET(metrics.Path, gin.WrapH(metrics.Handler()))

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", deps.HealthHandler.Health)

		auth := public.Group("/auth")
		{
			login := []gin.HandlerFunc{deps.AuthHandler.Login}
			if deps.LoginLimiter != nil {
				login = append([]gin.HandlerFunc{deps.LoginLimiter.Handler()}, login...)
			}
			auth.POST("/login", login...)
		}
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(deps.Tokens))
	{
		sessions := protected.Group("/sessions")
		{
			sessions.POST("", deps.SessionHandler.Open)
			sessions.POST("/latest", deps.SessionHandler.OpenLatest)
			sessions.GET("/:id", deps.SessionHandler.Get)
			sessions.DELETE("/:id", deps.SessionHandler.Close)
			sessions.PUT("/:id/slot", deps.SessionHandler.ChangeSlot)
			sessions.POST("/:id/rows", deps.SessionHandler.AddRow)
			sessions.PATCH("/:id/rows/:index", deps.SessionHandler.UpdateRow)
			sessions.DELETE("/:id/rows/:index", deps.SessionHandler.DeleteRow)
			sessions.DELETE("/:id/customers/:name", deps.SessionHandler.DeleteCustomer)
			sessions.GET("/:id/summary", deps.SessionHandler.Summary)
			sessions.POST("/:id/search-unsold", deps.SessionHandler.SearchUnsold)
			sessions.POST("/:id/save", deps.SessionHandler.Save)
		}

		reports := protected.Group("/reports")
		{
			reports.GET("", deps.ReportHandler.List)
			reports.GET("/dates", deps.ReportHandler.Dates)
			reports.GET("/:date/:slot", deps.ReportHandler.Get)
			reports.GET("/:date/:slot/customers/:name", deps.ReportHandler.Customer)
			reports.DELETE("", deps.ReportHandler.DeleteAll)
		}

		results := protected.Group("/results")
		{
			results.GET("", deps.ResultHandler.List)
			results.GET("/dates", deps.ResultHandler.Dates)
			results.POST("/extract-text", deps.ResultHandler.ExtractText)
			results.POST("/extract-image", deps.ResultHandler.ExtractImage)
			results.GET("/:date/:slot", deps.ResultHandler.Get)
			results.PUT("/:date/:slot", deps.ResultHandler.Save)
			results.DELETE("/:date/:slot", deps.ResultHandler.Delete)
			results.GET("/:date/:slot/csv", deps.ResultHandler.DownloadCSV)
		}

		ocr := protected.Group("/ocr")
		{
			ocr.GET("/crop-regions", deps.OCRHandler.CropRegions)
			ocr.PUT("/crop-regions/:boxId", deps.OCRHandler.UpdateCropRegion)
		}
	}

	return router
}
