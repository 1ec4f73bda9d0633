// Package intent classifies where a dragged row would land relative to the
// row under the pointer.
package intent

import (
	"strings"

	"treedrag.dev/treedrag/internal/errors"
)

// Intent is the drop relationship between the dragged row and the hovered row
type Intent int

const (
	// None means no intent has been classified yet
	None Intent = iota
	// Above inserts the dragged row before the target, as its sibling
	Above
	// Over nests the dragged row as the last child of the target
	Over
	// Below inserts the dragged row after the target, as its sibling
	Below
)

// All lists the drop intents in display order
var All = []Intent{Above, Over, Below}

// String returns the lowercase name of the intent
func (i Intent) String() string {
	switch i {
	case Above:
		return "above"
	case Over:
		return "over"
	case Below:
		return "below"
	default:
		return "none"
	}
}

// Valid reports whether i is one of the three drop intents
func (i Intent) Valid() bool {
	return i == Above || i == Over || i == Below
}

// Parse converts text such as "above" into an Intent.
func Parse(s string) (Intent, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "above":
		return Above, nil
	case "over":
		return Over, nil
	case "below":
		return Below, nil
	default:
		return None, errors.NewInvalidIntentError(s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (i Intent) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (i *Intent) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "none" {
		*i = None
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
