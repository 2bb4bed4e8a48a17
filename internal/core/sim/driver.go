package sim

import (
	"context"
	"fmt"
)

// Match phases, advanced strictly in order. The terminal phase is reached
// exactly once; a Match cannot be restarted.
const (
	firstHalfStart  = 1
	firstHalfEnd    = 45
	secondHalfStart = 46
	secondHalfEnd   = 90
	maxAddedMinutes = 5
)

// Stream runs the full simulation on its own goroutine, sending events on
// the returned channel at the configured pace. The channel is closed after
// the final whistle event (or on cancellation). The last event before a
// normal close is the match_end event with IsFinal set.
func (m *Match) Stream(ctx context.Context) <-chan Event {
	out := make(chan Event)
	go func() {
		defer close(out)
		m.run(ctx, out)
	}()
	return out
}

func (m *Match) run(ctx context.Context, out chan<- Event) {
	emit := func(ev Event) bool {
		select {
		case out <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	// Kickoff.
	kickoff := m.newEvent(EventMatchStart, 0, func(ev *Event) {
		ev.Description = fmt.Sprintf("Kick-off! %s vs %s is underway!", m.cfg.HomeTeam, m.cfg.AwayTeam)
	})
	if !emit(kickoff) || m.pacer.Wait(ctx, 1) != nil {
		return
	}

	if !m.playHalf(ctx, out, firstHalfStart, firstHalfEnd) {
		return
	}

	// Halftime: a fixed event and a deliberately longer pause.
	halftime := m.newEvent(EventHalftime, firstHalfEnd, func(ev *Event) {
		ev.Description = "The referee blows for halftime!"
	})
	if !emit(halftime) || m.pacer.Wait(ctx, 3) != nil {
		return
	}

	restart := m.newEvent(EventSecondHalfStart, firstHalfEnd, func(ev *Event) {
		ev.Description = "We're back underway for the second half!"
	})
	if !emit(restart) || m.pacer.Wait(ctx, 1) != nil {
		return
	}

	if !m.playHalf(ctx, out, secondHalfStart, secondHalfEnd) {
		return
	}

	// Added time: 1-5 sub-ticks, all at minute 90.
	added := m.rng.Intn(maxAddedMinutes) + 1
	board := m.newEvent(EventAddedTime, secondHalfEnd, func(ev *Event) {
		ev.Description = fmt.Sprintf("%d minutes of added time to be played.", added)
	})
	if !emit(board) || m.pacer.Wait(ctx, 1) != nil {
		return
	}

	for tick := 1; tick <= added; tick++ {
		ev, ok := m.MaybeEvent(secondHalfEnd)
		if !ok {
			continue
		}
		at := tick
		ev.AddedTime = &at
		if !emit(ev) || m.pacer.Wait(ctx, m.jitter()) != nil {
			return
		}
	}

	// Final whistle, carrying the final snapshot.
	at := added
	final := m.newEvent(EventMatchEnd, secondHalfEnd, func(ev *Event) {
		ev.AddedTime = &at
		ev.IsFinal = true
		ev.Description = fmt.Sprintf("Full time! %s %d - %d %s",
			m.cfg.HomeTeam, m.score.Home, m.score.Away, m.cfg.AwayTeam)
	})
	emit(final)
}

// playHalf simulates minutes from..to inclusive, emitting at most one event
// per minute.
func (m *Match) playHalf(ctx context.Context, out chan<- Event, from, to int) bool {
	for minute := from; minute <= to; minute++ {
		ev, ok := m.MaybeEvent(minute)
		if !ok {
			continue
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return false
		}
		if m.pacer.Wait(ctx, m.jitter()) != nil {
			return false
		}
	}
	return true
}

// jitter spreads event pacing uniformly over [0.5, 1.5] base delays.
func (m *Match) jitter() float64 {
	return 0.5 + m.rng.Float64()
}
