package clock

import (
	"context"
	"sync"
	"time"
)

// Fake is a manually advanced Clock. Tickers, timers and sleepers fire only from Advance.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	waiters []*waiter
}

type waiter struct {
	at      time.Time
	period  time.Duration
	ch      chan time.Time
	fn      func()
	done    chan struct{}
	stopped bool
}

// NewFake returns a fake clock starting at start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) NewTicker(d time.Duration) Ticker {
	if d <= 0 {
		panic("clock: non-positive ticker period")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	w := &waiter{at: f.now.Add(d), period: d, ch: make(chan time.Time, 1)}
	f.waiters = append(f.waiters, w)
	return &fakeTicker{f: f, w: w}
}

func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	w := &waiter{at: f.now.Add(d), fn: fn}
	f.waiters = append(f.waiters, w)
	return &fakeTimer{f: f, w: w}
}

func (f *Fake) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	f.mu.Lock()
	w := &waiter{at: f.now.Add(d), done: make(chan struct{})}
	f.waiters = append(f.waiters, w)
	f.mu.Unlock()
	select {
	case <-ctx.Done():
		f.stop(w)
		return ctx.Err()
	case <-w.done:
		return nil
	}
}

// Waiters returns the number of pending tickers, timers and sleepers.
func (f *Fake) Waiters() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.waiters)
}

// Advance moves the clock forward by d, firing everything that falls due in order.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	for {
		w := f.nextDue(target)
		if w == nil {
			break
		}
		f.now = w.at
		switch {
		case w.fn != nil:
			f.remove(w)
			fn := w.fn
			f.mu.Unlock()
			fn()
			f.mu.Lock()
		case w.done != nil:
			f.remove(w)
			close(w.done)
		default:
			select {
			case w.ch <- w.at:
			default:
			}
			w.at = w.at.Add(w.period)
		}
	}
	f.now = target
	f.mu.Unlock()
}

func (f *Fake) nextDue(target time.Time) *waiter {
	var next *waiter
	for _, w := range f.waiters {
		if w.stopped || w.at.After(target) {
			continue
		}
		if next == nil || w.at.Before(next.at) {
			next = w
		}
	}
	return next
}

func (f *Fake) remove(w *waiter) {
	for i, it := range f.waiters {
		if it == w {
			f.waiters = append(f.waiters[:i], f.waiters[i+1:]...)
			return
		}
	}
}

func (f *Fake) stop(w *waiter) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w.stopped {
		return false
	}
	for _, it := range f.waiters {
		if it == w {
			w.stopped = true
			f.remove(w)
			return true
		}
	}
	return false
}

type fakeTicker struct {
	f *Fake
	w *waiter
}

func (t *fakeTicker) C() <-chan time.Time { return t.w.ch }
func (t *fakeTicker) Stop()               { t.f.stop(t.w) }

type fakeTimer struct {
	f *Fake
	w *waiter
}

func (t *fakeTimer) Stop() bool { return t.f.stop(t.w) }
