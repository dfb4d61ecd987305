package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"InsightFlow/internal/domain/models"
	domrepo "InsightFlow/internal/domain/repository"
)

// Sink is the downstream the pipeline delivers events to.
type Sink interface {
	Deliver(ctx context.Context, e models.StoreEvent) error
}

// EventPipeline sits between the stores and the board stream. It
// validates, throttles per domain, and buffers when the sink is
// unavailable so a slow subscriber never stalls a refresh.
type EventPipeline struct {
	sink    Sink
	metrics domrepo.Metrics
	maxRPS  int
	bufSize int
	bufCh   chan models.StoreEvent
	stopCh  chan struct{}
	started bool
	mu      sync.Mutex
	// per-domain last accepted time
	lastSeen map[models.Domain]time.Time
}

type PipelineOption func(*EventPipeline)

// WithMaxRPS sets the max events per second per domain.
func WithMaxRPS(n int) PipelineOption {
	return func(p *EventPipeline) {
		if n > 0 {
			p.maxRPS = n
		}
	}
}

// WithBufferSize sets the temporary buffer size when the sink is unavailable.
func WithBufferSize(n int) PipelineOption {
	return func(p *EventPipeline) {
		if n > 0 {
			p.bufSize = n
		}
	}
}

// NewEventPipeline creates a new pipeline.
func NewEventPipeline(sink Sink, metrics domrepo.Metrics, opts ...PipelineOption) *EventPipeline {
	p := &EventPipeline{
		sink:     sink,
		metrics:  metrics,
		maxRPS:   20,
		bufSize:  1000,
		stopCh:   make(chan struct{}),
		lastSeen: make(map[models.Domain]time.Time),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.bufCh = make(chan models.StoreEvent, p.bufSize)
	return p
}

// Start launches background flushing of buffered events.
func (p *EventPipeline) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	go func() {
		backoff := 50 * time.Millisecond
		for {
			select {
			case <-p.stopCh:
				return
			case e := <-p.bufCh:
				if err := p.sink.Deliver(ctx, e); err != nil {
					if backoff < 2*time.Second {
						backoff *= 2
					}
					p.metrics.RecordError("pipeline_flush")
					time.Sleep(backoff)
					// requeue if space; drop otherwise
					select {
					case p.bufCh <- e:
					default:
						p.metrics.RecordError("pipeline_buffer_drop")
					}
				} else {
					backoff = 50 * time.Millisecond
				}
			}
		}
	}()
}

// Stop stops the background flushing.
func (p *EventPipeline) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.started = false
	p.mu.Unlock()
	close(p.stopCh)
}

// Process validates, throttles, and forwards an event, buffering on errors.
func (p *EventPipeline) Process(ctx context.Context, e models.StoreEvent) error {
	start := time.Now()
	if err := validateEvent(e); err != nil {
		p.metrics.RecordError("pipeline_validate")
		return err
	}
	if !p.allow(e.Domain, start) {
		// throttled; status churn is lossy by contract
		p.metrics.RecordError("pipeline_throttle")
		return nil
	}

	if err := p.sink.Deliver(ctx, e); err != nil {
		p.metrics.RecordError("pipeline_deliver")
		select {
		case p.bufCh <- e:
			p.metrics.RecordLatency("pipeline_buffer_depth", float64(len(p.bufCh)))
		default:
			p.metrics.RecordError("pipeline_buffer_full")
		}
		return fmt.Errorf("pipeline sink: %w", err)
	}
	p.metrics.RecordLatency("pipeline_deliver", time.Since(start).Seconds())
	return nil
}

func validateEvent(e models.StoreEvent) error {
	if e.Kind == "" {
		return fmt.Errorf("event kind empty")
	}
	if e.Domain == "" && e.Topic == "" {
		return fmt.Errorf("event has no domain or topic")
	}
	if e.At.IsZero() {
		return fmt.Errorf("event time unset")
	}
	return nil
}

func (p *EventPipeline) allow(domain models.Domain, now time.Time) bool {
	if p.maxRPS <= 0 {
		return true
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	last := p.lastSeen[domain]
	if last.IsZero() || now.Sub(last) >= time.Second/time.Duration(p.maxRPS) {
		p.lastSeen[domain] = now
		return true
	}
	return false
}
