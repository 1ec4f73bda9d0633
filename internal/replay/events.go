package replay

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"treedrag.dev/treedrag/internal/errors"
)

// EventType names a pointer event
type EventType string

const (
	DragStart EventType = "dragStart"
	DragOver  EventType = "dragOver"
	DragLeave EventType = "dragLeave"
	Drop      EventType = "drop"
	DragEnd   EventType = "dragEnd"
)

var eventTypes = []EventType{DragStart, DragOver, DragLeave, Drop, DragEnd}

// Event is one scripted pointer event. Y is the pointer position; Top and
// Height describe the hovered row's box. Related is the element a dragLeave
// moved into.
type Event struct {
	Type    EventType `mapstructure:"type"`
	Row     string    `mapstructure:"row"`
	Y       float64   `mapstructure:"y"`
	Top     float64   `mapstructure:"top"`
	Height  float64   `mapstructure:"height"`
	Related string    `mapstructure:"related"`
}

// ParseEvents decodes a YAML or JSON sequence of event mappings. Values are
// converted leniently, so row: 3 and y: "15" are both accepted.
func ParseEvents(data []byte) ([]Event, error) {
	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse events: %w: %w", errors.ErrInvalidEvent, err)
	}

	events := make([]Event, 0, len(raw))
	for i, item := range raw {
		event, err := decodeEvent(item)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i+1, err)
		}
		events = append(events, event)
	}
	return events, nil
}

func decodeEvent(item map[string]any) (Event, error) {
	var event Event
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &event,
	})
	if err != nil {
		return Event{}, err
	}
	if err := decoder.Decode(item); err != nil {
		return Event{}, fmt.Errorf("%w: %w", errors.ErrInvalidEvent, err)
	}

	event.Type = normalizeType(event.Type)
	if err := event.Validate(); err != nil {
		return Event{}, err
	}
	return event, nil
}

func normalizeType(t EventType) EventType {
	for _, known := range eventTypes {
		if strings.EqualFold(string(known), strings.TrimSpace(string(t))) {
			return known
		}
	}
	return t
}

// Validate checks that the event has a known type and the fields it needs
func (e Event) Validate() error {
	switch e.Type {
	case DragStart, DragOver, DragLeave, Drop:
		if e.Row == "" {
			return fmt.Errorf("%w: %s needs a row", errors.ErrInvalidEvent, e.Type)
		}
	case DragEnd:
	default:
		return fmt.Errorf("%w: unknown type %q", errors.ErrInvalidEvent, e.Type)
	}
	return nil
}
