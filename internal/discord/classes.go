package discord

import (
	"strings"

	"github.com/samber/lo"
)

// classNames joins the non-empty class names with spaces, keeping their order.
func classNames(names ...string) string {
	return strings.Join(lo.Compact(names), " ")
}

// when returns class if cond holds and the empty string otherwise.
func when(cond bool, class string) string {
	return lo.Ternary(cond, class, "")
}
