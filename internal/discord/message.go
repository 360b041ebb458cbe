package discord

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/nfrund/mockcord/internal/twemoji"
	"github.com/samber/lo"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// fallbackAuthor is shown when neither the message nor its profile names an author.
const fallbackAuthor = "User"

// now supplies the timestamp of messages that do not carry one.
var now = time.Now

// MessageProps describes a single chat message.
type MessageProps struct {
	Author string
	// Avatar is an avatar name from Options or an image URL.
	Avatar string
	// Bot overrides the profile's bot flag when set.
	Bot       *bool
	Edited    bool
	Profile   string
	RoleColor string
	// Timestamp defaults to the time of rendering.
	Timestamp time.Time

	CompactMode    bool
	DisableTwemoji bool

	// Options supplies avatars, profiles and the locale; nil means DefaultOptions.
	Options *Options

	Content     []g.Node
	Interaction *Interaction
	Embed       *Embed
	Actions     *Buttons
	Reactions   *Reactions
}

// user is the author display data after profile and fallback resolution.
type user struct {
	author    string
	avatar    string
	bot       bool
	roleColor string
}

// resolveUser applies "explicit value, then profile value, then fallback" to
// every author field.
func resolveUser(opts *Options, profileKey, author, avatar, roleColor string, bot *bool) user {
	var profile Profile
	if profileKey != "" {
		profile, _ = opts.Profile(profileKey)
	}
	return user{
		author:    lo.CoalesceOrEmpty(author, profile.Author, fallbackAuthor),
		avatar:    opts.ResolveAvatar(lo.CoalesceOrEmpty(avatar, profile.Avatar)),
		bot:       lo.FromPtrOr(bot, profile.Bot),
		roleColor: lo.CoalesceOrEmpty(roleColor, profile.RoleColor),
	}
}

// Ephemeral reports whether only the invoking user can see the message.
func (p MessageProps) Ephemeral() bool {
	return p.Interaction != nil && p.Interaction.Ephemeral
}

// Highlighted reports whether the message mentions the reader: a highlighted
// non-channel mention in the content, or a highlighted interaction.
func (p MessageProps) Highlighted() bool {
	if p.Interaction != nil && p.Interaction.Highlight {
		return true
	}
	return lo.SomeBy(p.Content, func(n g.Node) bool {
		hl, ok := n.(highlighter)
		return ok && hl.highlightsMessage()
	})
}

// Message renders a chat message.
func Message(p MessageProps) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return renderMessage(w, p)
	})
}

// MessageFromChildren routes slot-tagged children into p with Compose and
// renders the result. It fails with a *SlotError when a named slot holds the
// wrong kind of component.
func MessageFromChildren(p MessageProps, children ...Child) (g.Node, error) {
	p, err := Compose(p, children...)
	if err != nil {
		return nil, err
	}
	return Message(p), nil
}

func renderMessage(w io.Writer, p MessageProps) error {
	opts := p.Options.orDefault()
	u := resolveUser(opts, p.Profile, p.Author, p.Avatar, p.RoleColor, p.Bot)

	ts := p.Timestamp
	if ts.IsZero() {
		ts = now()
	}
	format := lo.Ternary(p.CompactMode, Compact, Cozy)
	stamp := FormatTimestamp(ts, format, opts.Locale())

	// The default content is rendered up front: its markup decides whether
	// the message only holds emoji.
	var content bytes.Buffer
	if err := g.Group(p.Content).Render(&content); err != nil {
		return fmt.Errorf("render message content: %w", err)
	}
	jumbo := twemoji.IsEmojiOnly(content.String())

	ephemeral := p.Ephemeral()
	highlight := p.Highlighted()

	tree := h.Div(
		h.Class(classNames(
			"discord-message",
			when(ephemeral, "discord-ephemeral-highlight"),
			when(highlight && !ephemeral, "discord-mention-highlight"),
		)),
		g.Iff(p.Interaction != nil, func() g.Node { return p.Interaction.node(opts) }),
		h.Div(
			h.Class("discord-message-content"),
			h.Div(
				h.Class("discord-author-avatar"),
				h.Img(g.If(u.avatar != "", h.Src(u.avatar)), h.Alt("")),
			),
			h.Div(
				h.Class("discord-message-body"),
				header(u, stamp, p.CompactMode),
				g.Raw(content.String()),
				g.If(p.Edited, h.Span(h.Class("discord-message-edited"), g.Text("(edited)"))),
				g.Iff(p.Embed != nil, func() g.Node { return p.Embed.node(opts) }),
				g.Iff(p.Actions != nil, func() g.Node { return p.Actions }),
				g.If(ephemeral, h.Div(h.Class("discord-message-ephemeral-notice"), g.Text("Only you can see this"))),
				g.Iff(p.Reactions != nil, func() g.Node { return p.Reactions }),
			),
		),
	)

	if p.DisableTwemoji {
		return tree.Render(w)
	}

	out, err := twemoji.Parse(tree, classNames("emoji", when(jumbo, "jumboable")))
	if err != nil {
		return fmt.Errorf("apply twemoji: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// header orders the author line and timestamp: author first in cozy mode,
// timestamp first in compact mode.
func header(u user, stamp string, compact bool) g.Node {
	info := AuthorInfo{Author: u.author, Bot: u.bot, RoleColor: u.roleColor}
	ts := h.Span(h.Class("discord-message-timestamp"), g.Text(stamp))
	if compact {
		return g.Group{ts, info}
	}
	return h.Div(info, ts)
}
