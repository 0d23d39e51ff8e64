package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// FileProcessor is the pipeline entry point the pool drives.
type FileProcessor interface {
	ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error)
}

type Options struct {
	Workers  int // default 2
	Capacity int // buffered queue size; default 64
}

// ProcessorQueue runs pipeline jobs on a fixed set of workers. Per-job
// failures are logged and recorded on the job row by the processor; they
// never stop the pool.
type ProcessorQueue struct {
	proc   FileProcessor
	logger *slog.Logger
	jobs   chan Job
	wg     sync.WaitGroup
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

func NewProcessorQueue(proc FileProcessor, logger *slog.Logger, opts Options) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Workers <= 0 {
		opts.Workers = 2
	}
	if opts.Capacity <= 0 {
		opts.Capacity = 64
	}

	ctx, cancel := context.WithCancel(context.Background())
	q := &ProcessorQueue{
		proc:   proc,
		logger: logger,
		jobs:   make(chan Job, opts.Capacity),
		cancel: cancel,
	}
	for i := 0; i < opts.Workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx, i)
	}
	return q
}

func (q *ProcessorQueue) worker(ctx context.Context, id int) {
	defer q.wg.Done()
	for job := range q.jobs {
		if ctx.Err() != nil {
			return
		}
		jobID, err := q.proc.ProcessFile(ctx, job.FileID)
		if err != nil {
			q.logger.Error("queue.process.failed",
				"worker", id,
				"file_id", job.FileID,
				"job_id", jobID,
				"err", err,
			)
			continue
		}
		q.logger.Debug("queue.process.ok", "worker", id, "file_id", job.FileID, "job_id", jobID)
	}
}

// Enqueue submits a job without blocking; a full queue is an error so callers
// can surface backpressure instead of hanging an RPC.
func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return errors.New("queue is shut down")
	}
	select {
	case q.jobs <- job:
		return nil
	default:
		return errors.New("queue is full")
	}
}

// Shutdown stops accepting jobs and waits for in-flight work, or returns
// early when ctx expires.
func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		q.cancel()
		q.logger.Warn("queue shutdown timed out; cancelling workers")
	}
}
