// Package twemoji swaps emoji characters for Twemoji images, the way the
// platform's web client renders them, and answers emoji-only questions about text.
package twemoji

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// BaseURL is where the SVG assets are served from.
const BaseURL = "https://cdn.jsdelivr.net/gh/jdecked/twemoji@15.1.0/assets/svg/"

const (
	zwj    = '\u200d'
	vs16   = '\ufe0f'
	keycap = '\u20e3'
)

// IsEmojiOnly reports whether s consists solely of pictographic code points,
// emoji sequence components and whitespace. The empty string qualifies.
func IsEmojiOnly(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.In(r, pictographic, components) {
			continue
		}
		return false
	}
	return true
}

// IsEmoji reports whether a single grapheme cluster is drawn as an emoji.
func IsEmoji(cluster string) bool {
	if cluster == "" {
		return false
	}
	if strings.ContainsRune(cluster, keycap) {
		return true
	}

	first := []rune(cluster)[0]
	switch {
	case first >= 0x1f1e6 && first <= 0x1f1ff:
		// Regional indicator pairs form flags.
		return true
	case !unicode.Is(pictographic, first):
		return false
	case first > 0xffff, unicode.Is(presentation, first):
		return true
	default:
		// Text-default pictographs need an explicit emoji selector or a sequence.
		return strings.ContainsRune(cluster, vs16) || strings.ContainsRune(cluster, zwj)
	}
}

// CodePoints returns the asset name of an emoji: its code points in lowercase
// hex joined by dashes. VS16 is dropped unless the sequence contains a ZWJ.
func CodePoints(emoji string) string {
	if !strings.ContainsRune(emoji, zwj) {
		emoji = strings.ReplaceAll(emoji, string(vs16), "")
	}
	parts := make([]string, 0, len(emoji))
	for _, r := range emoji {
		parts = append(parts, strconv.FormatInt(int64(r), 16))
	}
	return strings.Join(parts, "-")
}

// URL returns the image URL for an emoji.
func URL(emoji string) string {
	return BaseURL + CodePoints(emoji) + ".svg"
}

// Image renders an emoji as a Twemoji <img> carrying the given class.
func Image(emoji, class string) g.Node {
	return h.Img(
		g.If(class != "", h.Class(class)),
		g.Attr("draggable", "false"),
		h.Alt(emoji),
		h.Src(URL(emoji)),
	)
}

// Replace swaps every emoji grapheme in text for an image tag. Text is
// expected to be already HTML-escaped; non-emoji clusters are copied through.
func Replace(text, class string) string {
	var b strings.Builder
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cluster := gr.Str()
		if !IsEmoji(cluster) {
			b.WriteString(cluster)
			continue
		}
		// strings.Builder never fails to write.
		_ = Image(cluster, class).Render(&b)
	}
	return b.String()
}

// ParseHTML rewrites the text nodes of an HTML fragment with Replace, leaving
// tags, attributes and comments byte-for-byte untouched.
func ParseHTML(src, class string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(src))
	var b strings.Builder
	b.Grow(len(src))

	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return b.String(), nil
			}
			return "", z.Err()
		case html.TextToken:
			b.WriteString(Replace(string(z.Raw()), class))
		default:
			b.Write(z.Raw())
		}
	}
}

// Parse renders node and passes its markup through ParseHTML.
func Parse(node g.Node, class string) (string, error) {
	var b strings.Builder
	if err := node.Render(&b); err != nil {
		return "", err
	}
	return ParseHTML(b.String(), class)
}
