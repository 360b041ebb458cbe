package discord

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// OutboundLinkIcon is the "opens in a new tab" glyph shown on link buttons.
func OutboundLinkIcon() g.Node {
	return g.El("svg",
		h.Class("discord-button-launch"),
		h.Aria("hidden", "false"),
		h.Width("16"),
		h.Height("16"),
		g.Attr("viewBox", "0 0 24 24"),
		g.El("path",
			g.Attr("fill", "currentColor"),
			g.Attr("d", "M10 5V3H5.375C4.06519 3 3 4.06519 3 5.375V18.625C3 19.936 4.06519 21 5.375 21H18.625C19.936 21 21 19.936 21 18.625V14H19V19H5V5H10Z"),
		),
		g.El("path",
			g.Attr("fill", "currentColor"),
			g.Attr("d", "M21 2.99902H14V4.99902H17.586L9.29297 13.292L10.707 14.706L19 6.41302V9.99902H21V2.99902Z"),
		),
	)
}
