// Package controllers holds the gin handlers for the detection API.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/textplane/langdetect/app/apperr"
	"github.com/textplane/langdetect/app/requests"
	"github.com/textplane/langdetect/app/responses"
	"github.com/textplane/langdetect/app/services"
)

// DetectController exposes single and batch detection over HTTP.
type DetectController struct {
	service *services.DetectionService
	logger  *zap.Logger
}

func NewDetectController(service *services.DetectionService, logger *zap.Logger) *DetectController {
	return &DetectController{service: service, logger: logger}
}

// Detect handles POST /v1/detect.
func (ctl *DetectController) Detect(c *gin.Context) {
	var req requests.DetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: err.Error()})
		return
	}

	languages, cached, err := ctl.service.Detect(c.Request.Context(), req.Text)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses.DetectResponse{Languages: languages, Cached: cached})
}

// BatchDetect handles POST /v1/detect/batch: it registers a job and
// returns its ID immediately; the in-process worker pool processes
// the texts asynchronously.
func (ctl *DetectController) BatchDetect(c *gin.Context) {
	var req requests.BatchDetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: err.Error()})
		return
	}
	jobID := ctl.service.SubmitBatch(req.Texts)
	c.JSON(http.StatusAccepted, responses.BatchDetectResponse{JobID: jobID})
}

// JobStatus handles GET /v1/jobs/:id.
func (ctl *DetectController) JobStatus(c *gin.Context) {
	jobID := c.Param("id")
	job, ok := ctl.service.JobStatus(jobID)
	if !ok {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{Error: "job not found"})
		return
	}
	c.JSON(http.StatusOK, responses.JobStatusResponse{
		JobID:      job.ID,
		Status:     string(job.Status),
		TotalTexts: job.TotalTexts,
		Completed:  job.Completed,
		Failed:     job.Failed,
	})
}

// JobResults handles GET /v1/jobs/:id/results.
func (ctl *DetectController) JobResults(c *gin.Context) {
	jobID := c.Param("id")
	results, ok := ctl.service.JobResults(jobID)
	if !ok {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{Error: "job not found"})
		return
	}
	c.JSON(http.StatusOK, responses.JobResultsResponse{JobID: jobID, Results: results})
}

// Health handles GET /healthz.
func (ctl *DetectController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func writeServiceError(c *gin.Context, err error) {
	if apperr.IsConfigurationError(err) {
		c.JSON(http.StatusUnprocessableEntity, responses.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, responses.ErrorResponse{Error: err.Error()})
}
