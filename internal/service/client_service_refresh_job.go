package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-sweet-shop/internal/logger"
)

type catalogRefreshJob struct {
	catalog CatalogService
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	results chan error
}

// NewCatalogRefreshJob creates a job that calls catalog.Refresh on a ticker.
// The job is idle until Start is called.
func NewCatalogRefreshJob(catalog CatalogService, logger *logger.Logger) CatalogRefreshJob {
	return &catalogRefreshJob{
		catalog: catalog,
		logger:  logger,
		results: make(chan error, 1),
	}
}

// Start replaces any running loop. The swap happens under one lock so
// concurrent calls leave exactly one loop that Stop can reach.
func (j *catalogRefreshJob) Start(ctx context.Context, interval time.Duration) {
	j.mu.Lock()
	prevCancel, prevDone := j.cancel, j.done
	j.cancel, j.done = nil, nil
	if interval > 0 {
		jobCtx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		j.cancel, j.done = cancel, done
		go j.run(jobCtx, interval, done)
	}
	j.mu.Unlock()

	stopLoop(prevCancel, prevDone)
}

func (j *catalogRefreshJob) run(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			err := j.catalog.Refresh(ctx)
			if errors.Is(err, ErrStaleResult) || ctx.Err() != nil {
				continue
			}
			if err != nil {
				j.logger.Warn().Err(err).Str("func", "catalogRefreshJob.run").Msg("background refresh failed")
			}
			j.publish(err)
		}
	}
}

func (j *catalogRefreshJob) Stop() {
	j.mu.Lock()
	cancel, done := j.cancel, j.done
	j.cancel, j.done = nil, nil
	j.mu.Unlock()

	stopLoop(cancel, done)
}

func stopLoop(cancel context.CancelFunc, done <-chan struct{}) {
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (j *catalogRefreshJob) Results() <-chan error {
	return j.results
}

// publish keeps only the newest outcome when the reader lags behind.
func (j *catalogRefreshJob) publish(err error) {
	for {
		select {
		case j.results <- err:
			return
		default:
		}
		select {
		case <-j.results:
		default:
		}
	}
}
