package ringing

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"ringron/internal/engine"
	"ringron/pkg/api"
)

const (
	EventCall   = "call"
	EventStrike = "strike"
)

// Sink receives events in ringing order. A Sink error stops the run.
type Sink interface {
	Emit(ctx context.Context, ev api.EventV1) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, ev api.EventV1) error

func (f SinkFunc) Emit(ctx context.Context, ev api.EventV1) error { return f(ctx, ev) }

// ChanSink forwards events to a channel, giving up when ctx is done.
type ChanSink chan<- api.EventV1

func (c ChanSink) Emit(ctx context.Context, ev api.EventV1) error {
	select {
	case c <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Summary counts what a run emitted.
type Summary struct {
	Rows     int
	Strikes  int
	Calls    int
	Silenced int
}

// Player plays extents. The zero value is not usable; see NewPlayer.
type Player struct {
	log      *zap.Logger
	assigned map[int]bool
}

// NewPlayer returns a Player that stays silent for the assigned bells.
// A nil logger discards.
func NewPlayer(log *zap.Logger, assigned []int) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Player{log: log, assigned: make(map[int]bool, len(assigned))}
	for _, b := range assigned {
		p.assigned[b] = true
	}
	return p
}

// Assigned lists the silent bells, sorted.
func (p *Player) Assigned() []int {
	out := make([]int, 0, len(p.assigned))
	for b := range p.assigned {
		out = append(out, b)
	}
	sort.Ints(out)
	return out
}

// CheckAssigned rejects bells that do not ring in x.
func (p *Player) CheckAssigned(x *engine.Extent) error {
	width := x.NumberOfBells()
	for _, b := range p.Assigned() {
		if b < 1 || b > width {
			return fmt.Errorf("assigned bell %d not in 1..%d", b, width)
		}
	}
	return nil
}

// Play emits the events of x to sink. Calls on a row precede its strikes.
// ctx is checked between rows and between bells; on cancellation the
// partial summary is returned with ctx.Err().
func (p *Player) Play(ctx context.Context, x *engine.Extent, sink Sink) (Summary, error) {
	var sum Summary
	log := p.log.With(zap.String("method", x.Method()), zap.String("extent", x.Name()))
	log.Debug("ringing start", zap.Int("rows", x.Len()), zap.Ints("assigned", p.Assigned()))

	var err error
	x.Each(func(i int, r engine.Row) bool {
		if err = ctx.Err(); err != nil {
			return false
		}
		stroke := engine.StrokeAt(i).String()
		for _, c := range r.Calls() {
			ev := api.EventV1{Type: EventCall, Row: i, Stroke: stroke, Call: string(c)}
			if err = sink.Emit(ctx, ev); err != nil {
				return false
			}
			sum.Calls++
			log.Info("call", zap.Int("row", i), zap.String("call", string(c)))
		}
		for place, bell := range r.Places {
			if err = ctx.Err(); err != nil {
				return false
			}
			if p.assigned[bell] {
				sum.Silenced++
				continue
			}
			ev := api.EventV1{Type: EventStrike, Row: i, Stroke: stroke, Bell: bell, Place: place + 1}
			if err = sink.Emit(ctx, ev); err != nil {
				return false
			}
			sum.Strikes++
		}
		sum.Rows++
		return true
	})
	if err != nil {
		log.Debug("ringing stopped", zap.Int("rows", sum.Rows), zap.Error(err))
		return sum, err
	}
	log.Debug("ringing done", zap.Int("rows", sum.Rows), zap.Int("strikes", sum.Strikes))
	return sum, nil
}
