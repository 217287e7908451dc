package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/qiniu/pulseboard/internal/dashboard/model"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	mu       sync.Mutex
	err      error
	calls    int
	channels []string
	messages [][]byte
}

func (f *fakeRedis) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	cmd := redis.NewIntCmd(ctx, "publish", channel, message)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.channels = append(f.channels, channel)
	f.messages = append(f.messages, message.([]byte))
	cmd.SetVal(1)
	return cmd
}

func sampleTick() Tick {
	return Tick{
		Seq: 1,
		At:  time.Date(2026, 2, 27, 14, 25, 0, 0, time.UTC),
		Transitions: []model.StatusTransition{
			{MonitorID: "api-gateway", ProjectID: "1", Type: model.TypeAPI, From: model.StatusOK, To: model.StatusSlow},
			{MonitorID: "rabbitmq", ProjectID: "1", Type: model.TypeMQ, From: model.StatusError, To: model.StatusOK},
		},
	}
}

func TestHub_FanOutAndClose(t *testing.T) {
	h := NewHub(1)
	a, b := h.Subscribe(), h.Subscribe()
	assert.Equal(t, 2, h.Subscribers())

	require.NoError(t, h.Publish(context.Background(), sampleTick()))
	assert.Equal(t, int64(1), (<-a.C()).Seq)
	assert.Equal(t, int64(1), (<-b.C()).Seq)

	a.Close()
	a.Close()
	assert.Equal(t, 1, h.Subscribers())
	_, open := <-a.C()
	assert.False(t, open)
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub(1)
	s := h.Subscribe()
	defer s.Close()

	for i := 0; i < 5; i++ {
		tk := sampleTick()
		tk.Seq = int64(i)
		require.NoError(t, h.Publish(context.Background(), tk))
	}
	assert.Equal(t, int64(0), (<-s.C()).Seq)
	select {
	case <-s.C():
		t.Fatal("expected later ticks to be dropped")
	default:
	}
}

func TestRedis_PublishesEachTransition(t *testing.T) {
	f := &fakeRedis{}
	r := NewRedis(f, "")
	require.NoError(t, r.Publish(context.Background(), sampleTick()))

	require.Len(t, f.messages, 2)
	assert.Equal(t, []string{DefaultChannel, DefaultChannel}, f.channels)
	var tr model.StatusTransition
	require.NoError(t, json.Unmarshal(f.messages[0], &tr))
	assert.Equal(t, "api-gateway", tr.MonitorID)
	assert.Equal(t, model.StatusSlow, tr.To)

	require.NoError(t, r.Publish(context.Background(), Tick{Seq: 2}))
	assert.Equal(t, 2, f.calls)
}

func TestRedis_BreakerOpensAfterFailures(t *testing.T) {
	f := &fakeRedis{err: errors.New("connection refused")}
	r := NewRedis(f, "test")
	r.delay = time.Millisecond

	for i := 0; i < 3; i++ {
		assert.Error(t, r.Publish(context.Background(), sampleTick()))
	}
	assert.Equal(t, gobreaker.StateOpen, r.State())

	calls := f.calls
	err := r.Publish(context.Background(), sampleTick())
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, calls, f.calls)
}

func TestMulti_JoinsErrors(t *testing.T) {
	h := NewHub(1)
	s := h.Subscribe()
	defer s.Close()
	bad := NewRedis(&fakeRedis{err: errors.New("down")}, "")
	bad.delay = time.Millisecond

	err := Multi{h, nil, bad}.Publish(context.Background(), sampleTick())
	assert.Error(t, err)
	assert.Equal(t, int64(1), (<-s.C()).Seq)
}
