package discord

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

var validate = validator.New()

// colorTag accepts hex, rgb(a) and hsl(a) colours and bare keywords such as "red".
const colorTag = "hexcolor|rgb|rgba|hsl|hsla|alpha"

// colorStyle sets a single CSS colour property. Empty and malformed colours
// produce no attribute.
func colorStyle(property, color string) g.Node {
	if color == "" {
		return nil
	}
	if err := validate.Var(color, colorTag); err != nil {
		slog.Warn("Ignoring invalid colour", "property", property, "color", color)
		return nil
	}
	return h.Style(property + ": " + color)
}
