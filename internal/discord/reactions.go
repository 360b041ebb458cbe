package discord

import (
	"io"
	"strconv"
	"strings"

	"github.com/nfrund/mockcord/internal/twemoji"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Reactions is the strip of reactions under a message.
type Reactions struct {
	Items []Reaction
}

// NewReactions builds a reaction strip.
func NewReactions(items ...Reaction) *Reactions {
	return &Reactions{Items: items}
}

// Render implements gomponents.Node.
func (r *Reactions) Render(w io.Writer) error {
	return h.Div(
		h.Class("discord-reactions"),
		g.Map(r.Items, func(item Reaction) g.Node { return item }),
	).Render(w)
}

// Reaction is a single emoji reaction with its count.
type Reaction struct {
	Name string
	// Emoji is either an image URL or a unicode emoji.
	Emoji   string
	Count   int
	Reacted bool
}

// Render implements gomponents.Node. A zero count is shown as 1.
func (r Reaction) Render(w io.Writer) error {
	src := r.Emoji
	if !isImageRef(src) {
		src = twemoji.URL(src)
	}
	return h.Div(
		h.Class(classNames("discord-reaction", when(r.Reacted, "discord-reaction-reacted"))),
		g.If(r.Name != "", g.Attr("title", r.Name)),
		h.Img(h.Src(src), h.Alt(r.Name), g.Attr("draggable", "false")),
		h.Span(g.Text(strconv.Itoa(max(r.Count, 1)))),
	).Render(w)
}

func isImageRef(s string) bool {
	return strings.Contains(s, "://") || strings.HasPrefix(s, "/") || strings.HasPrefix(s, "data:")
}
