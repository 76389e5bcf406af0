package scene

import (
	"context"
	"sync"
	"time"
)

// ProgressState is a point-in-time view of asset loading.
type ProgressState struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Failed    int     `json:"failed"`
	Percent   float64 `json:"percent"`
	Loaded    bool    `json:"loaded"`
}

// Progress aggregates in-flight asset fetches into one percentage. Percent never
// decreases, even when more assets are registered after others completed. A
// failed fetch counts as completed.
type Progress struct {
	settleDelay time.Duration

	mu        sync.Mutex
	started   bool
	total     int
	completed int
	failed    int
	percent   float64
	changed   chan struct{}
	listeners map[uint64]func(ProgressState)
	nextSub   uint64
}

func NewProgress(settleDelay time.Duration) *Progress {
	return &Progress{
		settleDelay: settleDelay,
		changed:     make(chan struct{}),
		listeners:   map[uint64]func(ProgressState){},
	}
}

// Register announces n more fetches. Register(0) marks an empty scene as loaded.
func (p *Progress) Register(n int) {
	if n < 0 {
		n = 0
	}
	p.update(func() {
		p.started = true
		p.total += n
	})
}

// Complete records a finished fetch.
func (p *Progress) Complete() {
	p.update(func() { p.completed++ })
}

// Fail records a failed fetch.
func (p *Progress) Fail() {
	p.update(func() {
		p.completed++
		p.failed++
	})
}

func (p *Progress) State() ProgressState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

// Subscribe registers fn for every change. fn runs synchronously on the goroutine
// that reported the change and must not call back into p.
func (p *Progress) Subscribe(fn func(ProgressState)) (unsubscribe func()) {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.listeners[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

// WaitLoaded blocks until every registered fetch finished, then waits the settle
// delay before returning.
func (p *Progress) WaitLoaded(ctx context.Context) error {
	for {
		p.mu.Lock()
		loaded := p.loadedLocked()
		changed := p.changed
		p.mu.Unlock()

		if loaded {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changed:
		}
	}

	if p.settleDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(p.settleDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (p *Progress) update(fn func()) {
	p.mu.Lock()
	fn()
	if computed := p.computeLocked(); computed > p.percent {
		p.percent = computed
	}
	state := p.stateLocked()
	close(p.changed)
	p.changed = make(chan struct{})
	listeners := make([]func(ProgressState), 0, len(p.listeners))
	for _, fn := range p.listeners {
		listeners = append(listeners, fn)
	}
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}

func (p *Progress) computeLocked() float64 {
	if !p.started {
		return 0
	}
	if p.total == 0 || p.completed >= p.total {
		return 100
	}
	return float64(p.completed) * 100 / float64(p.total)
}

func (p *Progress) loadedLocked() bool {
	return p.started && p.completed >= p.total
}

func (p *Progress) stateLocked() ProgressState {
	return ProgressState{
		Total:     p.total,
		Completed: p.completed,
		Failed:    p.failed,
		Percent:   p.percent,
		Loaded:    p.loadedLocked(),
	}
}
