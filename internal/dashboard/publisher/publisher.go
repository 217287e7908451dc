// Package publisher fans simulation results out to live consumers: websocket streams through
// the in-process Hub and, optionally, Redis pub/sub.
package publisher

import (
	"context"
	"errors"
	"time"

	"github.com/qiniu/pulseboard/internal/dashboard/model"
)

// Tick is the outcome of one simulation pass.
type Tick struct {
	Seq         int64                    `json:"seq"`
	At          time.Time                `json:"at"`
	Transitions []model.StatusTransition `json:"transitions"`
}

// Publisher receives every tick.
type Publisher interface {
	Publish(ctx context.Context, t Tick) error
}

// Multi publishes to every member and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, t Tick) error {
	var errs []error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
