// Package view bridges gomponents nodes into templ's rendering pipeline.
package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// GomponentToTemplAdapter wraps a gomponents.Node to satisfy templ.Component,
// so message markup can be handed to anything that expects templ components.
type GomponentToTemplAdapter struct {
	Node g.Node
}

// Render implements templ.Component. A cancelled context stops the render
// before anything is written.
func (a *GomponentToTemplAdapter) Render(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.Node.Render(w)
}

// Fragment converts a gomponents node into a templ.Component.
func Fragment(node g.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// Fragments joins several nodes into one component.
func Fragments(nodes ...g.Node) templ.Component {
	return Fragment(g.Group(nodes))
}
