package discord

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// AuthorInfo is the author line of a message: the user name, coloured by
// role when a colour is given, followed by the bot tag for bot accounts.
type AuthorInfo struct {
	Author    string
	Bot       bool
	RoleColor string
}

// Render implements gomponents.Node.
func (a AuthorInfo) Render(w io.Writer) error {
	return h.Span(
		h.Class("discord-author-info"),
		h.Span(
			h.Class("discord-author-username"),
			colorStyle("color", a.RoleColor),
			g.Text(a.Author),
		),
		g.If(a.Bot, h.Span(h.Class("discord-author-bot-tag"), g.Text("Bot"))),
	).Render(w)
}
