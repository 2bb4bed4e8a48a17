package sim

import (
	"context"
	"sync"
	"time"
)

// Pacer controls the delay between driver ticks. Speed changes and
// pause/resume take effect at the next tick. Safe for concurrent use:
// the session's control goroutine adjusts it while the driver waits on it.
type Pacer struct {
	mu     sync.Mutex
	speed  float64
	paused bool
	gate   chan struct{} // closed while running, open (blocking) while paused
}

func NewPacer(speed float64) *Pacer {
	gate := make(chan struct{})
	close(gate)
	return &Pacer{speed: speed, gate: gate}
}

func (p *Pacer) Speed() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.speed
}

// SetSpeed clamps to the valid range; out-of-range requests are ignored.
func (p *Pacer) SetSpeed(speed float64) {
	if speed < MinSpeed || speed > MaxSpeed {
		return
	}
	p.mu.Lock()
	p.speed = speed
	p.mu.Unlock()
}

func (p *Pacer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.paused {
		p.paused = true
		p.gate = make(chan struct{})
	}
}

func (p *Pacer) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused {
		p.paused = false
		close(p.gate)
	}
}

func (p *Pacer) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Wait sleeps for mul base delays (base = 0.5s / speed), then blocks while
// paused. Returns early with ctx.Err() on cancellation.
func (p *Pacer) Wait(ctx context.Context, mul float64) error {
	d := time.Duration(mul * 0.5 / p.Speed() * float64(time.Second))

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return ctx.Err()
	}

	p.mu.Lock()
	gate := p.gate
	p.mu.Unlock()
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
