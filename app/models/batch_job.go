package models

import "time"

// JobStatus is the lifecycle state of a batch detection job.
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// BatchJob tracks a single batch-detection request: how many texts it
// covers, how far the worker pool has gotten, and where the results
// ended up.
type BatchJob struct {
	ID          string    `json:"id" bson:"_id"`
	Status      JobStatus `json:"status" bson:"status"`
	TotalTexts  int       `json:"total_texts" bson:"total_texts"`
	Completed   int       `json:"completed" bson:"completed"`
	Failed      int       `json:"failed" bson:"failed"`
	Error       string    `json:"error,omitempty" bson:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	CompletedAt time.Time `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
}

// BatchJobResult is one text's outcome inside a batch job, keyed by
// its position in the original request so results can be reassembled
// in order.
type BatchJobResult struct {
	Index     int              `json:"index" bson:"index"`
	Languages []LanguageResult `json:"languages" bson:"languages"`
	Error     string           `json:"error,omitempty" bson:"error,omitempty"`
}
