package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textplane/langdetect/app/responses"
	"github.com/textplane/langdetect/app/services"
)

// AdminController exposes profile reload and system stats.
type AdminController struct {
	admin *services.ProfileAdminService
}

func NewAdminController(admin *services.ProfileAdminService) *AdminController {
	return &AdminController{admin: admin}
}

// Stats handles GET /v1/admin/stats.
func (ctl *AdminController) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.admin.Stats())
}

type reloadRequest struct {
	Variant   string   `json:"variant" binding:"required"`
	Languages []string `json:"languages" binding:"required,min=1"`
}

// Reload handles POST /v1/admin/profiles/reload.
func (ctl *AdminController) Reload(c *gin.Context) {
	var req reloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: err.Error()})
		return
	}

	settings := ctl.admin.Detector().Settings()
	if err := ctl.admin.Reload(req.Variant, req.Languages, settings, 0); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ctl.admin.Stats())
}
