package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/textplane/langdetect/app/models"
)

// RunWorkerPool starts n goroutines draining svc's batch task queue
// until ctx is canceled. Each worker runs detection for its task's
// text and records the outcome back onto the owning job.
func RunWorkerPool(ctx context.Context, svc *DetectionService, logger *zap.Logger, n int) {
	if n <= 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		go runWorker(ctx, svc, logger)
	}
}

func runWorker(ctx context.Context, svc *DetectionService, logger *zap.Logger) {
	for {
		task, ok := svc.Dequeue(ctx)
		if !ok {
			return
		}
		languages, _, err := svc.Detect(ctx, task.Text)
		result := models.BatchJobResult{Index: task.Index, Languages: languages}
		if err != nil {
			logger.Warn("batch task failed", zap.String("job_id", task.JobID), zap.Int("index", task.Index), zap.Error(err))
			result.Error = err.Error()
		}
		svc.RecordBatchResult(task.JobID, result)
	}
}
