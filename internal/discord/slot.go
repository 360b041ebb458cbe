package discord

import (
	"log/slog"

	g "maragu.dev/gomponents"
)

// Slot names a region of a message that content can be routed to.
type Slot string

const (
	SlotDefault      Slot = "default"
	SlotActions      Slot = "actions"
	SlotEmbeds       Slot = "embeds"
	SlotInteractions Slot = "interactions"
	SlotReactions    Slot = "reactions"
)

// namedSlots are resolved in this order by Compose.
var namedSlots = []Slot{SlotActions, SlotEmbeds, SlotInteractions, SlotReactions}

// Valid reports whether s is one of the known slot names. The empty slot is
// valid and means SlotDefault.
func (s Slot) Valid() bool {
	switch s {
	case "", SlotDefault, SlotActions, SlotEmbeds, SlotInteractions, SlotReactions:
		return true
	}
	return false
}

func (s Slot) normalize() Slot {
	if s == "" {
		return SlotDefault
	}
	return s
}

// Child is one piece of loosely composed message content, optionally tagged
// with the slot it belongs in.
type Child struct {
	Slot Slot
	Node g.Node
}

// InSlot tags node for the named slot.
func InSlot(slot Slot, node g.Node) Child {
	return Child{Slot: slot, Node: node}
}

// Content wraps nodes as untagged children.
func Content(nodes ...g.Node) []Child {
	children := make([]Child, 0, len(nodes))
	for _, n := range nodes {
		children = append(children, Child{Node: n})
	}
	return children
}

// FindSlot returns the first child tagged with slot, or nil if there is none,
// together with the remaining children. Every child tagged with slot is left
// out of the remainder; the others keep their relative order.
func FindSlot(children []Child, slot Slot) (*Child, []Child) {
	slot = slot.normalize()

	var found *Child
	rest := make([]Child, 0, len(children))
	for _, c := range children {
		if c.Slot.normalize() != slot {
			rest = append(rest, c)
			continue
		}
		if found == nil {
			match := c
			found = &match
		}
	}
	return found, rest
}

func countSlot(children []Child, slot Slot) int {
	n := 0
	for _, c := range children {
		if c.Slot.normalize() == slot {
			n++
		}
	}
	return n
}

// Compose routes children into the typed slots of props. Children tagged
// actions, embeds, interactions or reactions must be a *Buttons, *Embed,
// *Interaction or *Reactions respectively; anything else yields a *SlotError.
// Untagged children are appended to props.Content in order. A child tagged
// with an unknown slot name also yields a *SlotError.
func Compose(props MessageProps, children ...Child) (MessageProps, error) {
	for _, c := range children {
		if !c.Slot.Valid() {
			return props, &SlotError{Slot: c.Slot, Node: c.Node}
		}
	}

	rest := children
	for _, slot := range namedSlots {
		if n := countSlot(rest, slot); n > 1 {
			slog.Warn("Multiple children claim the same slot, using the first", "slot", slot, "count", n)
		}

		var child *Child
		child, rest = FindSlot(rest, slot)
		if child == nil {
			continue
		}
		if err := assignSlot(&props, *child); err != nil {
			return props, err
		}
	}

	for _, c := range rest {
		props.Content = append(props.Content, c.Node)
	}
	return props, nil
}

func assignSlot(props *MessageProps, child Child) error {
	switch child.Slot {
	case SlotActions:
		v, ok := child.Node.(*Buttons)
		if !ok || v == nil {
			return &SlotError{Slot: child.Slot, Expected: "Buttons", Node: child.Node}
		}
		props.Actions = v
	case SlotEmbeds:
		v, ok := child.Node.(*Embed)
		if !ok || v == nil {
			return &SlotError{Slot: child.Slot, Expected: "Embed", Node: child.Node}
		}
		props.Embed = v
	case SlotInteractions:
		v, ok := child.Node.(*Interaction)
		if !ok || v == nil {
			return &SlotError{Slot: child.Slot, Expected: "Interaction", Node: child.Node}
		}
		props.Interaction = v
	case SlotReactions:
		v, ok := child.Node.(*Reactions)
		if !ok || v == nil {
			return &SlotError{Slot: child.Slot, Expected: "Reactions", Node: child.Node}
		}
		props.Reactions = v
	}
	return nil
}
