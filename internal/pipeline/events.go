package pipeline

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type EventType string

const (
	PipelineStarted   EventType = "pipeline.started"
	PipelineCompleted EventType = "pipeline.completed"
	PipelineFailed    EventType = "pipeline.failed"
	StepStarted       EventType = "step.started"
	StepCompleted     EventType = "step.completed"
	StepFailed        EventType = "step.failed"
)

// Event describes one observation of pipeline progress. Events are
// observability only; pipeline control flow never depends on them.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Step      string    `json:"step,omitempty"`
	Image     string    `json:"image,omitempty"`
	Error     string    `json:"error,omitempty"`
}

type EventHandler interface {
	Handle(event Event)
	CanHandle(eventType EventType) bool
}

// EventBus delivers pipeline events to subscribed handlers.
type EventBus struct {
	handlers []EventHandler
	mu       sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make([]EventHandler, 0),
	}
}

func (bus *EventBus) Subscribe(handler EventHandler) {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.handlers = append(bus.handlers, handler)
	log.Debug().
		Str("handler_type", fmt.Sprintf("%T", handler)).
		Int("total_handlers", len(bus.handlers)).
		Msg("Event handler subscribed")
}

// Publish delivers the event synchronously to every handler that can take
// it. The driver is strictly sequential, so there is no queue to drain.
func (bus *EventBus) Publish(event Event) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	bus.mu.RLock()
	handlers := make([]EventHandler, len(bus.handlers))
	copy(handlers, bus.handlers)
	bus.mu.RUnlock()

	for _, handler := range handlers {
		if handler.CanHandle(event.Type) {
			handler.Handle(event)
		}
	}
}

// LogHandler writes every pipeline event to the log.
type LogHandler struct{}

func (h *LogHandler) CanHandle(eventType EventType) bool {
	return true
}

func (h *LogHandler) Handle(event Event) {
	logger := log.Info()
	if event.Type == StepFailed || event.Type == PipelineFailed {
		logger = log.Error()
	}

	logger.
		Str("event_id", event.ID).
		Str("event_type", string(event.Type)).
		Str("step", event.Step).
		Str("image", event.Image).
		Str("error", event.Error).
		Msg("Pipeline event")
}
