package usecase

import (
	"context"
	"sync"
	"time"

	"InsightFlow/internal/domain/models"
	"InsightFlow/pkg/logger"
)

// Refresher drives periodic refreshes across every registered store.
// One ticker, one pass at a time; stores fence their own responses so
// an overlapping manual refresh can never be clobbered by an older
// scheduled one.
type Refresher struct {
	registry *Registry
	log      *logger.Logger
	interval time.Duration
	workers  int
	onStart  bool

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	stopped chan struct{}
}

// RefresherOption configures a Refresher.
type RefresherOption func(*Refresher)

// WithInterval sets the refresh period.
func WithInterval(d time.Duration) RefresherOption {
	return func(r *Refresher) { r.interval = d }
}

// WithWorkers caps how many stores refresh concurrently per pass.
func WithWorkers(n int) RefresherOption {
	return func(r *Refresher) { r.workers = n }
}

// WithRefreshOnStart triggers a full pass immediately on Start.
func WithRefreshOnStart(on bool) RefresherOption {
	return func(r *Refresher) { r.onStart = on }
}

// NewRefresher builds the refresh scheduler.
func NewRefresher(registry *Registry, log *logger.Logger, opts ...RefresherOption) *Refresher {
	r := &Refresher{
		registry: registry,
		log:      log,
		interval: 5 * time.Minute,
		workers:  3,
		onStart:  true,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers < 1 {
		r.workers = 1
	}
	return r
}

// Start launches the refresh loop. It returns immediately.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	r.running = true
	r.cancel = cancel
	r.stopped = make(chan struct{})
	r.mu.Unlock()

	go func() {
		defer close(r.stopped)

		if r.onStart {
			r.RefreshAll(ctx)
		}

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.RefreshAll(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for the in-flight pass to finish.
func (r *Refresher) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	cancel := r.cancel
	stopped := r.stopped
	r.mu.Unlock()

	cancel()
	<-stopped
}

// RefreshAll refreshes every store through a bounded worker pool.
func (r *Refresher) RefreshAll(ctx context.Context) {
	stores := r.registry.All()
	sem := make(chan struct{}, r.workers)
	var wg sync.WaitGroup

	started := time.Now()
	for _, store := range stores {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(store DomainStore) {
			defer wg.Done()
			defer func() { <-sem }()
			source := store.Refresh(ctx)
			if source == models.SourceFallback {
				r.log.Debug("store refreshed from fallback",
					logger.String("domain", string(store.Domain())),
				)
			}
		}(store)
	}
	wg.Wait()

	r.log.Info("refresh pass complete",
		logger.Int("stores", len(stores)),
		logger.Duration("took", time.Since(started)),
	)
}
