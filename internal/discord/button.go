package discord

import (
	"io"

	"github.com/nfrund/mockcord/internal/twemoji"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ButtonType is the visual style of a button.
type ButtonType string

const (
	ButtonPrimary     ButtonType = "primary"
	ButtonSecondary   ButtonType = "secondary"
	ButtonSuccess     ButtonType = "success"
	ButtonDestructive ButtonType = "destructive"
	ButtonLink        ButtonType = "link"
)

// Button is a message component button. An enabled link button with a URL
// renders as an anchor opening in a new tab; everything else is a <button>.
type Button struct {
	Type     ButtonType
	Disabled bool
	URL      string
	// Image is a custom emoji image URL shown before the label.
	Image string
	// Emoji is a unicode emoji shown before the label as a Twemoji image.
	Emoji string
	Label []g.Node
}

// Render implements gomponents.Node.
func (b Button) Render(w io.Writer) error {
	typ := b.Type
	if typ == "" {
		typ = ButtonPrimary
	}

	inner := g.Group{
		g.If(b.Image != "", h.Img(h.Class("discord-button-emoji"), h.Src(b.Image), h.Alt(""))),
		g.Iff(b.Emoji != "", func() g.Node { return twemoji.Image(b.Emoji, "discord-button-emoji") }),
		g.Group(b.Label),
	}

	if typ == ButtonLink && b.URL != "" && !b.Disabled {
		return h.A(
			h.Class("discord-button discord-button-link"),
			h.Href(b.URL),
			h.Target("_blank"),
			h.Rel("noopener noreferrer"),
			inner,
			OutboundLinkIcon(),
		).Render(w)
	}

	return h.Button(
		h.Class(classNames("discord-button", "discord-button-"+string(typ), when(b.Disabled, "discord-button-disabled"))),
		g.If(b.Disabled, h.Disabled()),
		inner,
		g.If(typ == ButtonLink, OutboundLinkIcon()),
	).Render(w)
}

// Buttons is the row of buttons shown in a message's actions slot.
type Buttons struct {
	Items []Button
}

// NewButtons builds an action row.
func NewButtons(items ...Button) *Buttons {
	return &Buttons{Items: items}
}

// Render implements gomponents.Node.
func (b *Buttons) Render(w io.Writer) error {
	return h.Div(
		h.Class("discord-buttons"),
		g.Map(b.Items, func(item Button) g.Node { return item }),
	).Render(w)
}
