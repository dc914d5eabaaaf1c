package ringing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"ringron/internal/engine"
	"ringron/internal/method"
	"ringron/pkg/api"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func build(t *testing.T, id int, opt engine.Options) *engine.Extent {
	t.Helper()
	m, err := method.Load("../method/testdata/plain_bob_minimus.mcf")
	require.NoError(t, err)
	x, err := engine.New(engine.Config{Shuffler: engine.NewSeededShuffler(1)}).Build(m, id, opt)
	require.NoError(t, err)
	return x
}

type recorder struct{ events []api.EventV1 }

func (r *recorder) Emit(_ context.Context, ev api.EventV1) error {
	r.events = append(r.events, ev)
	return nil
}

func TestPlayEmitsEveryStrike(t *testing.T) {
	x := build(t, 1, engine.DefaultOptions())
	rec := &recorder{}

	sum, err := NewPlayer(zaptest.NewLogger(t), nil).Play(context.Background(), x, rec)
	require.NoError(t, err)

	assert.Equal(t, x.Len(), sum.Rows)
	assert.Equal(t, x.Size(), sum.Strikes)
	assert.Zero(t, sum.Silenced)
	assert.Equal(t, sum.Strikes+sum.Calls, len(rec.events))

	// First row is rounds at handstroke.
	for p := 0; p < 4; p++ {
		ev := rec.events[p]
		assert.Equal(t, EventStrike, ev.Type)
		assert.Equal(t, "hand", ev.Stroke)
		assert.Equal(t, p+1, ev.Bell)
		assert.Equal(t, p+1, ev.Place)
	}
}

func TestPlayCallsPrecedeStrikes(t *testing.T) {
	x := build(t, 2, engine.DefaultOptions())
	rec := &recorder{}
	_, err := NewPlayer(nil, nil).Play(context.Background(), x, rec)
	require.NoError(t, err)

	var calls []string
	lastRow := -1
	for i, ev := range rec.events {
		if ev.Type != EventCall {
			continue
		}
		calls = append(calls, ev.Call)
		if i > 0 {
			prev := rec.events[i-1]
			// A call is the first event of its row or follows another call.
			assert.True(t, prev.Row < ev.Row || prev.Type == EventCall, "call after strike at row %d", ev.Row)
		}
		assert.GreaterOrEqual(t, ev.Row, lastRow)
		lastRow = ev.Row
	}
	assert.Equal(t, []string{"Go", "Bob", "Bob", "Bob", "That's all", "Stand next"}, calls)
}

func TestPlaySilencesAssignedBells(t *testing.T) {
	x := build(t, 1, engine.DefaultOptions())
	rec := &recorder{}
	sum, err := NewPlayer(nil, []int{1, 3}).Play(context.Background(), x, rec)
	require.NoError(t, err)

	assert.Equal(t, 2*x.Len(), sum.Silenced)
	assert.Equal(t, x.Size()-sum.Silenced, sum.Strikes)
	for _, ev := range rec.events {
		if ev.Type == EventStrike {
			assert.NotContains(t, []int{1, 3}, ev.Bell)
		}
	}
}

func TestPlayStopsOnCancel(t *testing.T) {
	x := build(t, 1, engine.DefaultOptions())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := 0
	sink := SinkFunc(func(context.Context, api.EventV1) error {
		n++
		if n == 6 {
			cancel()
		}
		return nil
	})
	sum, err := NewPlayer(nil, nil).Play(ctx, x, sink)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 6, n)
	// Row 0 is four strikes; row 1 opens with Go and stops after one strike.
	assert.Equal(t, Summary{Rows: 1, Strikes: 5, Calls: 1}, sum)
}

func TestPlaySinkError(t *testing.T) {
	x := build(t, 1, engine.DefaultOptions())
	boom := errors.New("boom")
	_, err := NewPlayer(nil, nil).Play(context.Background(), x,
		SinkFunc(func(context.Context, api.EventV1) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestChanSinkGivesUpOnCancel(t *testing.T) {
	ch := make(chan api.EventV1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ChanSink(ch).Emit(ctx, api.EventV1{Type: EventStrike})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckAssigned(t *testing.T) {
	x := build(t, 1, engine.DefaultOptions())
	assert.NoError(t, NewPlayer(nil, []int{4}).CheckAssigned(x))
	assert.EqualError(t, NewPlayer(nil, []int{5}).CheckAssigned(x), "assigned bell 5 not in 1..4")

	covered := build(t, 1, engine.Options{Cover: true, Intros: 1, Courses: 1})
	assert.NoError(t, NewPlayer(nil, []int{5}).CheckAssigned(covered))
	assert.Equal(t, []int{2, 5}, NewPlayer(nil, []int{5, 2, 5}).Assigned())
}
