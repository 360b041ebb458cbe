package discord

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// MentionType is what a mention points at.
type MentionType string

const (
	MentionUser    MentionType = "user"
	MentionRole    MentionType = "role"
	MentionChannel MentionType = "channel"
	MentionVoice   MentionType = "voice"
)

var mentionDefaults = map[MentionType]struct{ prefix, text string }{
	MentionUser:    {prefix: "@", text: "User"},
	MentionRole:    {prefix: "@", text: "Role"},
	MentionChannel: {prefix: "#", text: "channel"},
	MentionVoice:   {prefix: "", text: "Voice Channel"},
}

// Mention is an inline mention pill. A highlighted user or role mention marks
// the surrounding message as mentioning the reader; channel mentions never do.
type Mention struct {
	Type      MentionType
	Highlight bool
	// Color tints role mentions.
	Color   string
	Content []g.Node
}

func (m Mention) kind() MentionType {
	if _, ok := mentionDefaults[m.Type]; !ok {
		return MentionUser
	}
	return m.Type
}

func (m Mention) highlightsMessage() bool {
	return m.Highlight && m.kind() != MentionChannel
}

// Render implements gomponents.Node.
func (m Mention) Render(w io.Writer) error {
	kind := m.kind()
	defaults := mentionDefaults[kind]

	content := g.Group(m.Content)
	if len(m.Content) == 0 {
		content = g.Group{g.Text(defaults.text)}
	}

	return h.Span(
		h.Class("discord-mention discord-"+string(kind)+"-mention"),
		g.If(kind == MentionRole, colorStyle("color", m.Color)),
		g.Text(defaults.prefix),
		content,
	).Render(w)
}

// highlighter is implemented by content that can mark its message as
// mentioning the reader.
type highlighter interface {
	highlightsMessage() bool
}
