// Package responses holds the gin JSON response shapes for the
// detection API.
package responses

import "github.com/textplane/langdetect/app/models"

// DetectResponse is the body returned by POST /v1/detect.
type DetectResponse struct {
	Languages []models.LanguageResult `json:"languages"`
	Cached    bool                    `json:"cached"`
}

// BatchDetectResponse is the body returned when a batch job is
// submitted; results are fetched separately once the job completes.
type BatchDetectResponse struct {
	JobID string `json:"job_id"`
}

// JobStatusResponse reports a batch job's progress.
type JobStatusResponse struct {
	JobID      string `json:"job_id"`
	Status     string `json:"status"`
	TotalTexts int    `json:"total_texts"`
	Completed  int    `json:"completed"`
	Failed     int    `json:"failed"`
}

// JobResultsResponse returns the per-text results recorded so far for
// a batch job, in request order.
type JobResultsResponse struct {
	JobID   string                  `json:"job_id"`
	Results []models.BatchJobResult `json:"results"`
}

// ErrorResponse is the uniform error body every handler returns on
// failure.
type ErrorResponse struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}
