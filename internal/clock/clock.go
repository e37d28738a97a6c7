// Package clock formats wall-clock time for the overlay and drives the
// once-per-second refresh.
package clock

import (
	"fmt"
	"sync"
	"time"
)

// TickInterval is the fixed refresh period of the clock face
const TickInterval = 1000 * time.Millisecond

// Clock abstracts time.Now() to allow deterministic testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package
type RealClock struct{}

// Now returns the current local time
func (RealClock) Now() time.Time {
	return time.Now()
}

// Sample is the formatted time and date produced by one tick
type Sample struct {
	Time string
	Date string
}

// FormatDate renders MM/DD/YYYY, replacing the leading zero of a
// single-digit month with a space so the text keeps a fixed width.
func FormatDate(t time.Time) string {
	if t.Month() < 10 {
		return t.Format(" 1/02/2006")
	}
	return t.Format("01/02/2006")
}

// FormatTime renders the hour modulo 12 and the minutes as " H:MM" or "HH:MM".
// Midnight and noon read " 0:MM".
func FormatTime(t time.Time) string {
	return fmt.Sprintf("%2d:%02d", t.Hour()%12, t.Minute())
}

// SampleAt formats t into a Sample
func SampleAt(t time.Time) Sample {
	return Sample{Time: FormatTime(t), Date: FormatDate(t)}
}

// Ticker produces a Sample every TickInterval. Each tick is handed to
// dispatch, which must run the callback on the UI thread.
type Ticker struct {
	clock    Clock
	dispatch func(func())
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewTicker creates a ticker reading from clk. A nil dispatch runs the
// callback on the ticker goroutine.
func NewTicker(clk Clock, dispatch func(func())) *Ticker {
	if clk == nil {
		clk = RealClock{}
	}
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	return &Ticker{
		clock:    clk,
		dispatch: dispatch,
		interval: TickInterval,
	}
}

// Sample formats the current time
func (t *Ticker) Sample() Sample {
	return SampleAt(t.clock.Now())
}

// Start begins ticking. Calling Start on a running ticker is a no-op.
func (t *Ticker) Start(onTick func(Sample)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != nil {
		return
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})

	go t.loop(onTick, t.stop, t.done)
}

func (t *Ticker) loop(onTick func(Sample), stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.dispatch(func() {
				onTick(t.Sample())
			})
		case <-stop:
			return
		}
	}
}

// Stop ends the tick loop and waits for it to exit
func (t *Ticker) Stop() {
	t.mu.Lock()
	stop, done := t.stop, t.done
	t.stop, t.done = nil, nil
	t.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Running reports whether the tick loop is active
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}
