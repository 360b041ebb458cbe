package discord

import (
	"errors"
	"fmt"

	g "maragu.dev/gomponents"
)

// Sentinel errors for message composition.
var (
	// ErrInvalidSlot is returned when a named slot holds something other than
	// the component kind that slot accepts.
	ErrInvalidSlot = errors.New("invalid slot content")

	// ErrInvalidTimestamp is returned when a timestamp string cannot be parsed.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// SlotError describes a named slot filled with the wrong kind of node, or a
// child tagged with a slot name that does not exist. Expected is empty in the
// latter case.
type SlotError struct {
	Slot     Slot
	Expected string
	Node     g.Node
}

func (e *SlotError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("unknown slot name %q", e.Slot)
	}
	return fmt.Sprintf("element with slot name %q should be a valid %s component, got %T", e.Slot, e.Expected, e.Node)
}

// Unwrap lets callers match the error with errors.Is(err, ErrInvalidSlot).
func (e *SlotError) Unwrap() error {
	return ErrInvalidSlot
}
