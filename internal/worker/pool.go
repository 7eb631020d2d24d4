package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueClosingReport = "jobs:closing_report"

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// ClosingReportPayload identifies the register whose report should be built.
type ClosingReportPayload struct {
	RegisterID string `json:"register_id"`
}

// EnqueueClosingReport pushes a closing-report job to Redis.
func (d *Dispatcher) EnqueueClosingReport(ctx context.Context, payload ClosingReportPayload) error {
	return d.enqueue(ctx, QueueClosingReport, "closing_report", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// WorkerHandlers holds the per-job-type processors, wired in the composition root.
type WorkerHandlers struct {
	ClosingReport *ClosingReportWorker
}

// StartWorkerPool launches numWorkers goroutines consuming the job queues.
// Each goroutine blocks on BRPOP, so idle workers burn no CPU.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go run(ctx, rdb, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func run(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop, waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueClosingReport).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			process(ctx, handlers, result[1])
		}
	}
}

func process(ctx context.Context, handlers *WorkerHandlers, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal job")
		return
	}
	switch job.Type {
	case "closing_report":
		if handlers.ClosingReport != nil {
			handlers.ClosingReport.Process(ctx, job.Payload)
		}
	default:
		log.Warn().Str("type", job.Type).Msg("unknown job type")
	}
}
