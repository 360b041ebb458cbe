package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// HTMXScript is the htmx build the playground relies on.
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the document shell. The stylesheet carries the
// discord-* component styles and is omitted when empty.
func Base(title, stylesheetURL string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return c.HTML5(c.HTML5Props{
			Title:    CalculateTitle(title),
			Language: "en",
			Head: []g.Node{
				g.If(stylesheetURL != "", h.Link(h.Rel("stylesheet"), h.Href(stylesheetURL))),
				h.Script(h.Src(HTMXScript), h.Defer()),
			},
			Body: []g.Node{
				h.Header(
					h.Class("site-header"),
					h.Nav(
						h.A(h.Href("/"), g.Text("Gallery")),
						g.Text(" "),
						h.A(h.Href("/playground"), g.Text("Playground")),
					),
				),
				h.Main(g.NodeFunc(func(w io.Writer) error {
					return content.Render(ctx, w)
				})),
			},
		}).Render(w)
	})
}
