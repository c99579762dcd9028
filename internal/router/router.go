package router

import (
	"github.com/gin-gonic/gin"

	"cisgen/internal/handler"
	"cisgen/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	pageH *handler.PageHandler,
	jobH *handler.JobHandler,
	configH *handler.ConfigHandler,
	healthH *handler.HealthHandler,
	templateGlob string,
	maxBodyBytes int64,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	r.LoadHTMLGlob(templateGlob)

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// HTML pages
	r.GET("/", pageH.Index)
	r.POST("/upload", pageH.Upload)
	r.GET("/download/:job_id/:filename", jobH.Download)

	v1 := r.Group("/api/v1")

	// Job routes
	jobs := v1.Group("/jobs")
	jobs.POST("", jobH.Create)
	jobs.GET("/:id", jobH.Get)
	jobs.GET("/:id/export", jobH.ExportCSV)

	// Configuration routes
	cfg := v1.Group("/config")
	cfg.GET("/patterns", configH.Patterns)

	return r
}
