package discord

import (
	"io"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Interaction is the reply or slash-command header shown above a message in
// its interactions slot. Ephemeral and Highlight feed the message's own state.
type Interaction struct {
	Author    string
	Avatar    string
	Profile   string
	RoleColor string
	// Command turns the header into "<author> used /<command>".
	Command string
	Edited  bool

	Ephemeral bool
	Highlight bool

	Content []g.Node
}

// Render implements gomponents.Node using the built-in options.
func (i *Interaction) Render(w io.Writer) error {
	return i.node(nil).Render(w)
}

func (i *Interaction) node(opts *Options) g.Node {
	u := resolveUser(opts, i.Profile, i.Author, i.Avatar, i.RoleColor, nil)

	var body g.Node
	if i.Command != "" {
		body = g.Group{
			g.Text(" used "),
			h.Span(h.Class("discord-command-name"), g.Text("/"+strings.TrimPrefix(i.Command, "/"))),
		}
	} else {
		body = h.Div(
			h.Class("discord-replied-message-content"),
			g.Group(i.Content),
			g.If(i.Edited, h.Span(h.Class("discord-message-edited"), g.Text("(edited)"))),
		)
	}

	return h.Div(
		h.Class(classNames("discord-replied-message", when(i.Command != "", "discord-executed-command"))),
		h.Img(h.Class("discord-replied-message-avatar"), g.If(u.avatar != "", h.Src(u.avatar)), h.Alt("")),
		h.Span(
			h.Class("discord-replied-message-username"),
			colorStyle("color", u.roleColor),
			g.Text(u.author),
		),
		body,
	)
}
