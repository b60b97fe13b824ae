package service

import (
	"context"
	"log/slog"
	"sync"
)

// Pipeline event names. AMQP publishers use them as routing keys.
const (
	EventShardDone = "generate:shard-done"
	EventTaskState = "convert:task-state"
	EventTableDone = "convert:table-done"
)

// ─────────────────────────────────────────────────────────────
// EventEmitter: decouples the pipeline from its observers
// ─────────────────────────────────────────────────────────────

// EventEmitter receives pipeline progress. Emit is called from worker
// goroutines, so implementations must be safe for concurrent use.
type EventEmitter interface {
	Emit(ctx context.Context, event string, data any)
}

// TaskStateEvent is the payload of EventTaskState.
type TaskStateEvent struct {
	Table     string `json:"table"`
	Partition int    `json:"partition"`
	From      string `json:"from"`
	To        string `json:"to"`
	Error     string `json:"error,omitempty"`
}

// LogEmitter writes every event to a slog.Logger at debug level.
type LogEmitter struct {
	Log *slog.Logger
}

func (e LogEmitter) Emit(ctx context.Context, event string, data any) {
	log := e.Log
	if log == nil {
		log = slog.Default()
	}
	log.DebugContext(ctx, "event", "name", event, "data", data)
}

// MultiEmitter fans each event out to every emitter in order.
type MultiEmitter []EventEmitter

func (m MultiEmitter) Emit(ctx context.Context, event string, data any) {
	for _, e := range m {
		if e != nil {
			e.Emit(ctx, event, data)
		}
	}
}

// MockEmitter is a test-friendly EventEmitter that records all calls.
type MockEmitter struct {
	mu     sync.Mutex
	events []EmittedEvent
}

// EmittedEvent holds a single recorded emission for test assertions.
type EmittedEvent struct {
	Event string
	Data  any
}

func (m *MockEmitter) Emit(_ context.Context, event string, data any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, EmittedEvent{Event: event, Data: data})
}

// Events returns a copy of everything recorded so far.
func (m *MockEmitter) Events() []EmittedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]EmittedEvent(nil), m.events...)
}

// Named returns the payloads recorded under event, in emission order.
func (m *MockEmitter) Named(event string) []any {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []any
	for _, e := range m.events {
		if e.Event == event {
			out = append(out, e.Data)
		}
	}
	return out
}
