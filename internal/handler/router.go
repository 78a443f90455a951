package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"elibrary-borrowing/internal/handler/api"
	"elibrary-borrowing/internal/handler/middleware"
	"elibrary-borrowing/internal/pkg/config"
	"elibrary-borrowing/internal/pkg/identity"
)

func NewRouter(engine *gin.Engine, cfg config.Config, borrowHandler *api.BorrowHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, borrowHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, borrowHandler *api.BorrowHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	borrows := engine.Group("/borrows")
	borrows.Use(middleware.RequireIdentity())
	{
		borrows.POST("", borrowHandler.Borrow)
		borrows.GET("/mine", borrowHandler.ListMine)
		borrows.PUT("/:id/return", borrowHandler.Return)

		admin := borrows.Group("")
		admin.Use(middleware.RequireRole(identity.RoleAdmin))
		admin.GET("", borrowHandler.ListAll)
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Borrowing service is up and accessible",
	})
}
