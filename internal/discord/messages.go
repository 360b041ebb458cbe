package discord

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// MessagesProps configures a conversation container.
type MessagesProps struct {
	CompactMode  bool
	LightTheme   bool
	NoBackground bool
	// Options is handed to every message that does not bring its own.
	Options *Options
}

// Messages renders a conversation. The container's compact mode applies to
// every message in it.
func Messages(p MessagesProps, messages ...MessageProps) g.Node {
	return h.Div(
		h.Class(classNames(
			"discord-messages",
			when(p.LightTheme, "discord-light-theme"),
			when(p.NoBackground, "discord-no-background"),
			when(p.CompactMode, "discord-compact-mode"),
		)),
		g.Map(messages, func(m MessageProps) g.Node {
			m.CompactMode = p.CompactMode
			if m.Options == nil {
				m.Options = p.Options
			}
			return Message(m)
		}),
	)
}
