package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Job is a best-effort side effect. Its error is logged and otherwise ignored.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Notifier runs jobs one at a time outside of the request that queued them.
type Notifier struct {
	jobs    chan Job
	timeout time.Duration
	logger  *zap.Logger
}

func NewNotifier(queueSize int, timeout time.Duration, logger *zap.Logger) *Notifier {
	return &Notifier{
		jobs:    make(chan Job, queueSize),
		timeout: timeout,
		logger:  logger,
	}
}

// Enqueue never blocks. It reports false when the queue is full and the job
// was dropped.
func (n *Notifier) Enqueue(job Job) bool {
	select {
	case n.jobs <- job:
		return true
	default:
		n.logger.Warn("Notifier queue full, dropping job", zap.String("job", job.Name))
		return false
	}
}

// Run consumes jobs until ctx is cancelled, then runs whatever is still queued.
func (n *Notifier) Run(ctx context.Context) {
	n.logger.Info("Notifier started")

	for {
		select {
		case <-ctx.Done():
			n.drain()
			n.logger.Info("Notifier stopped")
			return
		case job := <-n.jobs:
			n.process(job)
		}
	}
}

func (n *Notifier) drain() {
	for {
		select {
		case job := <-n.jobs:
			n.process(job)
		default:
			return
		}
	}
}

func (n *Notifier) process(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	start := time.Now()
	if err := job.Run(ctx); err != nil {
		n.logger.Error("Best-effort job failed", zap.String("job", job.Name), zap.Error(err))
		return
	}
	n.logger.Debug("Best-effort job done", zap.String("job", job.Name), zap.Duration("took", time.Since(start)))
}
