package publisher

import (
	"context"
	"sync"
)

// Hub delivers ticks to in-process subscribers. A subscriber that falls behind loses
// ticks instead of blocking the simulation.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*Subscription]struct{}
	buffer int
}

// Subscription is one consumer of a Hub.
type Subscription struct {
	hub  *Hub
	ch   chan Tick
	once sync.Once
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 8
	}
	return &Hub{subs: make(map[*Subscription]struct{}), buffer: buffer}
}

func (h *Hub) Subscribe() *Subscription {
	s := &Subscription{hub: h, ch: make(chan Tick, h.buffer)}
	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()
	return s
}

// Subscribers returns the number of open subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) Publish(_ context.Context, t Tick) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs {
		select {
		case s.ch <- t:
		default:
		}
	}
	return nil
}

// C is closed when the subscription is closed.
func (s *Subscription) C() <-chan Tick { return s.ch }

// Close detaches the subscription. It is safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s)
		close(s.ch)
		s.hub.mu.Unlock()
	})
}
