package document

import (
	"fmt"
	"time"

	"github.com/nfrund/mockcord/internal/discord"
	"github.com/samber/lo"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Render builds the conversation into a messages container. Slot errors from
// message children come back wrapped, so errors.Is(err, discord.ErrInvalidSlot)
// still holds.
func (c *Conversation) Render(opts *discord.Options) (g.Node, error) {
	messages := make([]discord.MessageProps, 0, len(c.Messages))
	for i, m := range c.Messages {
		props, err := m.Props()
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		messages = append(messages, props)
	}

	return discord.Messages(discord.MessagesProps{
		CompactMode:  c.Compact,
		LightTheme:   c.LightTheme,
		NoBackground: c.NoBackground,
		Options:      opts,
	}, messages...), nil
}

// Props turns the message into composed message props: its children are
// built and routed into slots.
func (m Message) Props() (discord.MessageProps, error) {
	ts, err := parseOptionalTimestamp(m.Timestamp)
	if err != nil {
		return discord.MessageProps{}, err
	}

	props := discord.MessageProps{
		Author:         m.Author,
		Avatar:         m.Avatar,
		Bot:            m.Bot,
		Edited:         m.Edited,
		Profile:        m.Profile,
		RoleColor:      m.RoleColor,
		Timestamp:      ts,
		DisableTwemoji: !lo.FromPtrOr(m.Twemoji, true),
	}

	children := make([]discord.Child, 0, len(m.Children))
	for i, n := range m.Children {
		node, err := n.Build()
		if err != nil {
			return discord.MessageProps{}, fmt.Errorf("child %d: %w", i, err)
		}
		children = append(children, discord.InSlot(discord.Slot(n.Slot), node))
	}

	return discord.Compose(props, children...)
}

// Build turns a node into its component.
func (n Node) Build() (g.Node, error) {
	switch n.Kind {
	case KindText:
		return g.Text(n.Text), nil

	case KindLineBreak:
		return h.Br(), nil

	case KindMention:
		var content []g.Node
		if n.Text != "" {
			content = []g.Node{g.Text(n.Text)}
		}
		return discord.Mention{
			Type:      discord.MentionType(lo.CoalesceOrEmpty(n.MentionType, string(discord.MentionUser))),
			Highlight: n.Highlight,
			Color:     n.Color,
			Content:   content,
		}, nil

	case KindButtons:
		return discord.NewButtons(lo.Map(n.Buttons, func(b Button, _ int) discord.Button {
			return discord.Button{
				Type:     discord.ButtonType(b.Type),
				Disabled: b.Disabled,
				URL:      b.URL,
				Image:    b.Image,
				Emoji:    b.Emoji,
				Label:    textNodes(b.Label),
			}
		})...), nil

	case KindReactions:
		return discord.NewReactions(lo.Map(n.Reactions, func(r Reaction, _ int) discord.Reaction {
			return discord.Reaction{Name: r.Name, Emoji: r.Emoji, Count: r.Count, Reacted: r.Reacted}
		})...), nil

	case KindEmbed:
		if n.Embed == nil {
			return nil, fmt.Errorf("%w: embed node without embed", ErrInvalidDocument)
		}
		return n.Embed.build()

	case KindInteraction:
		if n.Interaction == nil {
			return nil, fmt.Errorf("%w: interaction node without interaction", ErrInvalidDocument)
		}
		i := n.Interaction
		return &discord.Interaction{
			Author:    i.Author,
			Avatar:    i.Avatar,
			Profile:   i.Profile,
			RoleColor: i.RoleColor,
			Command:   i.Command,
			Edited:    i.Edited,
			Ephemeral: i.Ephemeral,
			Highlight: i.Highlight,
			Content:   textNodes(i.Text),
		}, nil
	}

	return nil, fmt.Errorf("%w: unknown node kind %q", ErrInvalidDocument, n.Kind)
}

func (e *Embed) build() (*discord.Embed, error) {
	ts, err := parseOptionalTimestamp(e.Timestamp)
	if err != nil {
		return nil, err
	}

	embed := &discord.Embed{
		Color:       e.Color,
		AuthorName:  e.AuthorName,
		AuthorImage: e.AuthorImage,
		AuthorURL:   e.AuthorURL,
		Title:       e.Title,
		URL:         e.URL,
		Description: textNodes(e.Description),
		Image:       e.Image,
		Thumbnail:   e.Thumbnail,
		Footer:      e.Footer,
		FooterImage: e.FooterImage,
		Timestamp:   ts,
	}
	if len(e.Fields) > 0 {
		embed.Fields = discord.NewEmbedFields(lo.Map(e.Fields, func(f Field, _ int) discord.EmbedField {
			return discord.EmbedField{Title: f.Title, Inline: f.Inline, Content: textNodes(f.Value)}
		})...)
	}
	return embed, nil
}

func textNodes(s string) []g.Node {
	if s == "" {
		return nil
	}
	return []g.Node{g.Text(s)}
}

func parseOptionalTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	ts, err := discord.ParseTimestamp(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return ts, nil
}
