package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventBatchStart EventType = "batch_start"
	EventTerm       EventType = "term"
	EventBatchDone  EventType = "batch_done"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
}

// BatchEvent marks the start or the end of a batch.
type BatchEvent struct {
	EventBase
	Count       int           `json:"count"`
	Destination string        `json:"destination,omitempty"`
	Duration    time.Duration `json:"duration,omitempty"`
}

// TermEvent is emitted once per generated term.
type TermEvent struct {
	EventBase
	Index  int `json:"index"`
	Tokens int `json:"tokens"`
	Depth  int `json:"depth"`
}

// LifecycleHooks defines callbacks for batch observability.
type LifecycleHooks struct {
	OnBatchStart func(context.Context, *BatchEvent)
	OnTerm       func(context.Context, *TermEvent)
	OnBatchDone  func(context.Context, *BatchEvent)
}

// Merge returns hooks that call h first, then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnBatchStart: chain(h.OnBatchStart, other.OnBatchStart),
		OnTerm:       chain(h.OnTerm, other.OnTerm),
		OnBatchDone:  chain(h.OnBatchDone, other.OnBatchDone),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
