package pages

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// PreviewID is the element the playground swaps rendered output into.
const PreviewID = "preview"

// Playground is a JSON editor whose content is re-rendered as it changes.
func Playground(document string, preview g.Node) g.Node {
	return h.Div(
		h.Class("playground"),
		h.H1(g.Text("Playground")),
		h.Form(
			hx.Post("/playground/render"),
			hx.Target("#"+PreviewID),
			hx.Swap("innerHTML"),
			hx.Trigger("submit, keyup changed delay:500ms from:#document"),
			h.Textarea(
				h.ID("document"),
				h.Name("document"),
				h.Rows("24"),
				h.Cols("80"),
				g.Attr("spellcheck", "false"),
				g.Text(document),
			),
			h.Button(h.Type("submit"), g.Text("Render")),
		),
		h.Div(h.ID(PreviewID), preview),
	)
}

// RenderError is shown in the preview when a document cannot be rendered.
func RenderError(message string) g.Node {
	return h.Div(h.Class("render-error"), h.Role("alert"), g.Text(message))
}
