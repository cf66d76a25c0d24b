package putt

import (
	"github.com/akmonengine/putt/actor"
	"github.com/akmonengine/putt/constraint"
)

const (
	SEGMENT_HIT EventType = iota
	CORNER_HIT
	SUBSTEP_LIMIT
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// SegmentHitEvent - the ball bounced off the flat part of a segment
type SegmentHitEvent struct {
	Ball    *actor.Ball
	Contact constraint.ContactConstraint
}

func (e SegmentHitEvent) Type() EventType { return SEGMENT_HIT }

// CornerHitEvent - the ball bounced off the rounded end of a segment
type CornerHitEvent struct {
	Ball    *actor.Ball
	Contact constraint.ContactConstraint
}

func (e CornerHitEvent) Type() EventType { return CORNER_HIT }

// SubstepLimitEvent - the ball stopped early in the tick, after too many contacts
type SubstepLimitEvent struct {
	Ball     *actor.Ball
	Substeps int
}

func (e SubstepLimitEvent) Type() EventType { return SUBSTEP_LIMIT }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager. Events are diagnostics: listeners cannot alter the simulation.
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 64),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordContacts buffers the events of one ball for the current step
func (e *Events) recordContacts(ball *actor.Ball, result advanceResult) {
	for _, contact := range result.contacts {
		switch contact.Kind {
		case constraint.ContactCorner:
			e.buffer = append(e.buffer, CornerHitEvent{Ball: ball, Contact: contact})
		default:
			e.buffer = append(e.buffer, SegmentHitEvent{Ball: ball, Contact: contact})
		}
	}

	if result.stalled {
		e.buffer = append(e.buffer, SubstepLimitEvent{Ball: ball, Substeps: result.substeps})
	}
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
