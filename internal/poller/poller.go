package poller

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/02loveslollipop/chamber-air-dashboard/internal/sensor"
	"github.com/02loveslollipop/chamber-air-dashboard/internal/sheets"
)

// Source produces the full normalized series on each call.
type Source interface {
	FetchRecords(ctx context.Context) ([]sensor.Record, error)
}

// SourceFunc is a function adapter for Source.
type SourceFunc func(ctx context.Context) ([]sensor.Record, error)

func (f SourceFunc) FetchRecords(ctx context.Context) ([]sensor.Record, error) {
	return f(ctx)
}

// SnapshotHandler receives the state after every applied fetch outcome.
type SnapshotHandler interface {
	HandleSnapshot(snapshot Snapshot)
}

// SnapshotHandlerFunc is a function adapter for SnapshotHandler.
type SnapshotHandlerFunc func(Snapshot)

func (f SnapshotHandlerFunc) HandleSnapshot(s Snapshot) {
	f(s)
}

// Config holds poller configuration.
type Config struct {
	Interval time.Duration // Poll interval (default: 10s)
	Timeout  time.Duration // Per-fetch timeout (default: 10s)
}

// DefaultConfig returns the live-data cadence.
func DefaultConfig() Config {
	return Config{
		Interval: 10 * time.Second,
		Timeout:  10 * time.Second,
	}
}

// DemoConfig returns the slower demo cadence.
func DemoConfig() Config {
	return Config{
		Interval: 30 * time.Second,
		Timeout:  10 * time.Second,
	}
}

// Poller periodically refreshes a State from a Source.
type Poller struct {
	cfg    Config
	source Source
	state  *State
	logger *log.Logger

	seq      atomic.Uint64
	started  atomic.Bool
	detached atomic.Bool
	refresh  chan struct{}

	handlersMu sync.RWMutex
	handlers   map[uint64]SnapshotHandler
	nextID     uint64

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	fetches sync.WaitGroup
}

// New creates a new Poller with an empty state.
func New(cfg Config, source Source, logger *log.Logger) *Poller {
	if logger == nil {
		logger = log.Default()
	}
	def := DefaultConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	return &Poller{
		cfg:      cfg,
		source:   source,
		state:    NewState(),
		logger:   logger,
		refresh:  make(chan struct{}, 1),
		handlers: make(map[uint64]SnapshotHandler),
	}
}

// Config returns the effective configuration.
func (p *Poller) Config() Config {
	return p.cfg
}

// Snapshot returns the current state of the series.
func (p *Poller) Snapshot() Snapshot {
	return p.state.Snapshot()
}

// Subscribe registers h for snapshot notifications and returns a function
// that removes it.
func (p *Poller) Subscribe(h SnapshotHandler) func() {
	p.handlersMu.Lock()
	id := p.nextID
	p.nextID++
	p.handlers[id] = h
	p.handlersMu.Unlock()

	return func() {
		p.handlersMu.Lock()
		delete(p.handlers, id)
		p.handlersMu.Unlock()
	}
}

// Start begins the polling loop. The first fetch is issued immediately.
func (p *Poller) Start(ctx context.Context) error {
	if !p.started.CompareAndSwap(false, true) {
		return errors.New("poller already started")
	}
	p.ctx, p.cancel = context.WithCancel(ctx)

	p.wg.Add(1)
	go p.run()

	p.logger.Printf("sensor poller started (interval=%s timeout=%s)", p.cfg.Interval, p.cfg.Timeout)
	return nil
}

// Stop cancels the schedule and detaches all handlers. Fetches already in
// flight run to completion but nothing new is scheduled. Stop waits for them
// until ctx is done.
func (p *Poller) Stop(ctx context.Context) error {
	p.detached.Store(true)
	if p.cancel != nil {
		p.cancel()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		p.fetches.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Printf("sensor poller stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Refresh requests an out-of-schedule fetch. It never blocks.
func (p *Poller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// run is the main polling loop.
func (p *Poller) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	p.poll()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.poll()
		case <-p.refresh:
			p.poll()
		}
	}
}

// poll launches one tagged fetch. Fetches may overlap; the State discards
// any result older than the one last applied.
func (p *Poller) poll() {
	if p.ctx.Err() != nil {
		return
	}
	seq := p.seq.Add(1)
	p.state.BeginFetch()

	p.fetches.Add(1)
	go func() {
		defer p.fetches.Done()
		p.fetch(seq)
	}()
}

func (p *Poller) fetch(seq uint64) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(p.ctx), p.cfg.Timeout)
	defer cancel()

	records, err := p.source.FetchRecords(ctx)
	if err != nil {
		if !p.state.ApplyFailure(seq, err) {
			p.logger.Printf("poll %d: discarding stale failure: %v", seq, err)
			return
		}
		if !sheets.Retryable(err) {
			p.logger.Printf("poll %d: %v; polling stopped", seq, err)
			p.cancel()
		} else {
			p.logger.Printf("poll %d failed, retrying next tick: %v", seq, err)
		}
		p.notify()
		return
	}

	if !p.state.ApplySuccess(seq, records, time.Now()) {
		p.logger.Printf("poll %d: discarding stale result", seq)
		return
	}
	p.logger.Printf("poll %d: fetched %d records in %s", seq, len(records), time.Since(start).Round(time.Millisecond))
	p.notify()
}

func (p *Poller) notify() {
	if p.detached.Load() {
		return
	}
	snap := p.state.Snapshot()

	p.handlersMu.RLock()
	handlers := make([]SnapshotHandler, 0, len(p.handlers))
	for _, h := range p.handlers {
		handlers = append(handlers, h)
	}
	p.handlersMu.RUnlock()

	for _, h := range handlers {
		h.HandleSnapshot(snap)
	}
}
