// Package routes wires gin route groups to their controllers.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/textplane/langdetect/app/controllers"
)

// Setup registers every route group on engine.
func Setup(engine *gin.Engine, detect *controllers.DetectController, admin *controllers.AdminController) {
	engine.GET("/healthz", detect.Health)

	v1 := engine.Group("/v1")
	{
		v1.POST("/detect", detect.Detect)
		v1.POST("/detect/batch", detect.BatchDetect)
		v1.GET("/jobs/:id", detect.JobStatus)
		v1.GET("/jobs/:id/results", detect.JobResults)

		admingroup := v1.Group("/admin")
		admingroup.GET("/stats", admin.Stats)
		admingroup.POST("/profiles/reload", admin.Reload)
	}
}
