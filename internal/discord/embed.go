package discord

import (
	"io"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Embed is a rich embed card, shown in a message's embeds slot.
type Embed struct {
	// Color paints the left border, e.g. "#0099ff".
	Color string

	AuthorName  string
	AuthorImage string
	AuthorURL   string

	Title string
	URL   string

	Description []g.Node
	Fields      *EmbedFields

	Image     string
	Thumbnail string

	Footer      string
	FooterImage string
	Timestamp   time.Time
}

// Render implements gomponents.Node using the built-in options.
func (e *Embed) Render(w io.Writer) error {
	return e.node(nil).Render(w)
}

func (e *Embed) node(opts *Options) g.Node {
	return h.Div(
		h.Class("discord-embed"),
		h.Div(h.Class("discord-left-border"), colorStyle("background-color", e.Color)),
		h.Div(
			h.Class("discord-embed-container"),
			h.Div(
				h.Class("discord-embed-content"),
				h.Div(
					e.author(),
					e.title(),
					g.If(len(e.Description) > 0, h.Div(h.Class("discord-embed-description"), g.Group(e.Description))),
					g.Iff(e.Fields != nil, func() g.Node { return e.Fields }),
					g.If(e.Image != "", h.Img(h.Class("discord-embed-image"), h.Src(e.Image), h.Alt(""))),
				),
				g.If(e.Thumbnail != "", h.Img(h.Class("discord-embed-thumbnail"), h.Src(e.Thumbnail), h.Alt(""))),
			),
			e.footer(opts),
		),
	)
}

func (e *Embed) author() g.Node {
	if e.AuthorName == "" {
		return nil
	}
	var name g.Node = g.Text(e.AuthorName)
	if e.AuthorURL != "" {
		name = h.A(h.Href(e.AuthorURL), h.Target("_blank"), h.Rel("noopener noreferrer"), name)
	}
	return h.Div(
		h.Class("discord-embed-author"),
		g.If(e.AuthorImage != "", h.Img(h.Class("discord-author-image"), h.Src(e.AuthorImage), h.Alt(""))),
		name,
	)
}

func (e *Embed) title() g.Node {
	if e.Title == "" {
		return nil
	}
	var title g.Node = g.Text(e.Title)
	if e.URL != "" {
		title = h.A(h.Href(e.URL), h.Target("_blank"), h.Rel("noopener noreferrer"), title)
	}
	return h.Div(h.Class("discord-embed-title"), title)
}

func (e *Embed) footer(opts *Options) g.Node {
	hasTimestamp := !e.Timestamp.IsZero()
	if e.Footer == "" && !hasTimestamp {
		return nil
	}
	return h.Div(
		h.Class("discord-embed-footer"),
		g.If(e.FooterImage != "", h.Img(h.Class("discord-footer-image"), h.Src(e.FooterImage), h.Alt(""))),
		g.If(e.Footer != "", h.Span(g.Text(e.Footer))),
		g.If(e.Footer != "" && hasTimestamp, h.Span(h.Class("discord-footer-separator"), g.Text("•"))),
		g.Iff(hasTimestamp, func() g.Node {
			return h.Span(g.Text(FormatTimestamp(e.Timestamp, Cozy, opts.Locale())))
		}),
	)
}

// EmbedFields is the grid of fields inside an embed.
type EmbedFields struct {
	Items []EmbedField
}

// NewEmbedFields builds a field grid.
func NewEmbedFields(items ...EmbedField) *EmbedFields {
	return &EmbedFields{Items: items}
}

// Render implements gomponents.Node.
func (f *EmbedFields) Render(w io.Writer) error {
	return h.Div(
		h.Class("discord-embed-fields"),
		g.Map(f.Items, func(field EmbedField) g.Node { return field }),
	).Render(w)
}

// EmbedField is a titled field; inline fields sit side by side.
type EmbedField struct {
	Title   string
	Inline  bool
	Content []g.Node
}

// Render implements gomponents.Node.
func (f EmbedField) Render(w io.Writer) error {
	return h.Div(
		h.Class(classNames("discord-embed-field", when(f.Inline, "discord-inline-field"))),
		h.Div(h.Class("discord-field-title"), g.Text(f.Title)),
		g.Group(f.Content),
	).Render(w)
}
