package pages

import (
	"github.com/nfrund/mockcord/internal/discord"
	"github.com/nfrund/mockcord/internal/stories"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Gallery lists every story with its rendered preview.
func Gallery(all []stories.Story, opts *discord.Options) g.Node {
	return h.Div(
		h.Class("gallery"),
		h.H1(g.Text("Components")),
		g.Map(all, func(s stories.Story) g.Node {
			return StoryCard(s, opts)
		}),
	)
}

// StoryCard is a single story: its name, description and preview.
func StoryCard(s stories.Story, opts *discord.Options) g.Node {
	return h.Section(
		h.Class("story"),
		h.ID("story-"+s.Name),
		h.H2(h.A(h.Href("/stories/"+s.Name), g.Text(s.Name))),
		h.P(h.Class("story-description"), g.Text(s.Description)),
		h.Div(h.Class("story-preview"), s.Render(opts)),
	)
}
