package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type filteringHandler struct {
	accept EventType
	seen   []Event
}

func (h *filteringHandler) CanHandle(eventType EventType) bool { return eventType == h.accept }
func (h *filteringHandler) Handle(event Event)                 { h.seen = append(h.seen, event) }

func TestEventBus_PublishFillsIDAndTimestamp(t *testing.T) {
	bus := NewEventBus()
	handler := &recordingHandler{}
	bus.Subscribe(handler)

	bus.Publish(Event{Type: StepStarted, Step: "build"})

	require.Len(t, handler.events, 1)
	assert.NotEmpty(t, handler.events[0].ID)
	assert.False(t, handler.events[0].Timestamp.IsZero())
	assert.Equal(t, "build", handler.events[0].Step)
}

func TestEventBus_DeliversInOrder(t *testing.T) {
	bus := NewEventBus()
	handler := &recordingHandler{}
	bus.Subscribe(handler)

	bus.Publish(Event{Type: PipelineStarted})
	bus.Publish(Event{Type: StepStarted, Step: "build"})
	bus.Publish(Event{Type: StepCompleted, Step: "build"})

	assert.Equal(t, []EventType{PipelineStarted, StepStarted, StepCompleted}, handler.types())
}

func TestEventBus_RespectsCanHandle(t *testing.T) {
	bus := NewEventBus()
	failures := &filteringHandler{accept: StepFailed}
	bus.Subscribe(failures)

	bus.Publish(Event{Type: StepStarted, Step: "build"})
	bus.Publish(Event{Type: StepFailed, Step: "build", Error: "boom"})
	bus.Publish(Event{Type: StepCompleted, Step: "tag"})

	require.Len(t, failures.seen, 1)
	assert.Equal(t, StepFailed, failures.seen[0].Type)
	assert.Equal(t, "boom", failures.seen[0].Error)
}

func TestEventBus_MultipleHandlers(t *testing.T) {
	bus := NewEventBus()
	first := &recordingHandler{}
	second := &recordingHandler{}
	bus.Subscribe(first)
	bus.Subscribe(second)

	bus.Publish(Event{Type: PipelineCompleted})

	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 1)
}
