package discord

import (
	"strings"
	"testing"
	"time"

	"github.com/nfrund/mockcord/internal/testutils"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
)

var fixedTime = time.Date(2021, time.January, 1, 9, 5, 0, 0, time.Local)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	return testutils.Render(t, n)
}

// assertOrder checks that every fragment appears in html after the previous one.
func assertOrder(t *testing.T, html string, fragments ...string) {
	t.Helper()
	last := -1
	for _, f := range fragments {
		i := strings.Index(html, f)
		require.NotEqual(t, -1, i, "fragment %q missing from:\n%s", f, html)
		assert.Greater(t, i, last, "fragment %q out of order in:\n%s", f, html)
		last = i
	}
}

func TestMessage_Defaults(t *testing.T) {
	restore := now
	now = func() time.Time { return fixedTime }
	defer func() { now = restore }()

	html := render(t, Message(MessageProps{Content: []g.Node{g.Text("Hello World")}}))

	assert.Contains(t, html, `<span class="discord-author-username">User</span>`)
	assert.Contains(t, html, `<div class="discord-author-avatar"><img alt=""></div>`, "avatar src is omitted")
	assert.Contains(t, html, `<span class="discord-message-timestamp">1/1/21 9:05 am</span>`)
	assert.NotContains(t, html, "discord-author-bot-tag")
	assert.NotContains(t, html, "(edited)")
	assert.True(t, strings.HasPrefix(html, `<div class="discord-message">`), html)
}

func TestMessage_UserResolution(t *testing.T) {
	opts := NewOptions(
		map[string]string{"red": "https://cdn.example.com/red.png", "default": "https://cdn.example.com/default.png"},
		map[string]Profile{
			"maximillian": {Author: "Maximillian", Avatar: "red", Bot: true, RoleColor: "#ff0000"},
		},
		language.AmericanEnglish,
	)

	tests := []struct {
		name     string
		props    MessageProps
		contains []string
		missing  []string
	}{
		{
			name:  "profile values",
			props: MessageProps{Profile: "maximillian"},
			contains: []string{
				`<span class="discord-author-username" style="color: #ff0000">Maximillian</span>`,
				`<img src="https://cdn.example.com/red.png" alt="">`,
				`<span class="discord-author-bot-tag">Bot</span>`,
			},
		},
		{
			name:  "explicit values beat the profile",
			props: MessageProps{Profile: "maximillian", Author: "Alyx", Avatar: "https://example.com/a.png", RoleColor: "#00ff00", Bot: lo.ToPtr(false)},
			contains: []string{
				`style="color: #00ff00">Alyx</span>`,
				`<img src="https://example.com/a.png" alt="">`,
			},
			missing: []string{"Maximillian", "discord-author-bot-tag"},
		},
		{
			name:     "unknown profile falls back",
			props:    MessageProps{Profile: "nobody"},
			contains: []string{`<span class="discord-author-username">User</span>`, `<img src="https://cdn.example.com/default.png" alt="">`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.props.Options = opts
			tt.props.Timestamp = fixedTime
			html := render(t, Message(tt.props))

			for _, want := range tt.contains {
				assert.Contains(t, html, want)
			}
			for _, unwanted := range tt.missing {
				assert.NotContains(t, html, unwanted)
			}
		})
	}
}

func TestMessage_NamedAvatarWithDefaultOptions(t *testing.T) {
	html := render(t, Message(MessageProps{Avatar: "green", Timestamp: fixedTime}))

	assert.Contains(t, html, `<img src="https://cdn.discordapp.com/embed/avatars/2.png" alt="">`)
}

func TestMessage_HeaderOrder(t *testing.T) {
	t.Run("cozy puts the author first", func(t *testing.T) {
		html := render(t, Message(MessageProps{Author: "Alyx", Timestamp: fixedTime}))

		assertOrder(t, html, "discord-author-info", "discord-message-timestamp")
		assert.Contains(t, html, "1/1/21 9:05 am")
	})

	t.Run("compact puts the timestamp first", func(t *testing.T) {
		html := render(t, Message(MessageProps{Author: "Alyx", Timestamp: fixedTime, CompactMode: true}))

		assertOrder(t, html, "discord-message-timestamp", "discord-author-info")
		assert.Contains(t, html, `<span class="discord-message-timestamp">9:05 AM</span>`)
	})
}

func TestMessage_Ephemeral(t *testing.T) {
	html := render(t, Message(MessageProps{
		Timestamp:   fixedTime,
		Interaction: &Interaction{Author: "Alyx", Command: "ping", Ephemeral: true, Highlight: true},
		Content:     []g.Node{Mention{Type: MentionUser, Highlight: true}},
	}))

	assert.True(t, strings.HasPrefix(html, `<div class="discord-message discord-ephemeral-highlight">`), html)
	assert.Contains(t, html, `<div class="discord-message-ephemeral-notice">Only you can see this</div>`)
	assert.NotContains(t, html, "discord-mention-highlight")
}

func TestMessage_Highlight(t *testing.T) {
	tests := []struct {
		name  string
		props MessageProps
		want  bool
	}{
		{name: "highlighted user mention", props: MessageProps{Content: []g.Node{g.Text("hey "), Mention{Type: MentionUser, Highlight: true}}}, want: true},
		{name: "highlighted role mention", props: MessageProps{Content: []g.Node{Mention{Type: MentionRole, Highlight: true}}}, want: true},
		{name: "highlighted channel mention", props: MessageProps{Content: []g.Node{Mention{Type: MentionChannel, Highlight: true}}}, want: false},
		{name: "plain mention", props: MessageProps{Content: []g.Node{Mention{Type: MentionUser}}}, want: false},
		{name: "highlighted interaction", props: MessageProps{Interaction: &Interaction{Highlight: true}}, want: true},
		{name: "nothing", props: MessageProps{Content: []g.Node{g.Text("hi")}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.props.Timestamp = fixedTime
			assert.Equal(t, tt.want, tt.props.Highlighted())

			html := render(t, Message(tt.props))
			if tt.want {
				assert.True(t, strings.HasPrefix(html, `<div class="discord-message discord-mention-highlight">`), html)
			} else {
				assert.NotContains(t, html, "discord-mention-highlight")
			}
		})
	}
}

func TestMessage_EmojiOnly(t *testing.T) {
	tests := []struct {
		name    string
		content []g.Node
		jumbo   bool
	}{
		{name: "single emoji", content: []g.Node{g.Text("😀")}, jumbo: true},
		{name: "emoji and whitespace", content: []g.Node{g.Text("🎉 "), g.Text(" 🚀")}, jumbo: true},
		{name: "emoji with text", content: []g.Node{g.Text("nice 😀")}, jumbo: false},
		{name: "emoji inside markup", content: []g.Node{Mention{}, g.Text("😀")}, jumbo: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := render(t, Message(MessageProps{Timestamp: fixedTime, Content: tt.content}))

			if tt.jumbo {
				assert.Contains(t, html, `<img class="emoji jumboable"`)
			} else {
				assert.Contains(t, html, `<img class="emoji"`)
				assert.NotContains(t, html, "jumboable")
			}
		})
	}

	t.Run("empty content still counts", func(t *testing.T) {
		html := render(t, Message(MessageProps{Timestamp: fixedTime, Author: "😎"}))
		assert.Contains(t, html, `<img class="emoji jumboable" draggable="false" alt="😎"`)
	})

	t.Run("twemoji can be turned off", func(t *testing.T) {
		html := render(t, Message(MessageProps{Timestamp: fixedTime, DisableTwemoji: true, Content: []g.Node{g.Text("😀")}}))
		assert.NotContains(t, html, "<img class=\"emoji")
		assert.Contains(t, html, "😀")
	})
}

func TestMessage_RegionOrder(t *testing.T) {
	html := render(t, Message(MessageProps{
		Timestamp:   fixedTime,
		Edited:      true,
		Interaction: &Interaction{Author: "Alyx", Ephemeral: true, Content: []g.Node{g.Text("original")}},
		Content:     []g.Node{g.Text("body text")},
		Embed:       &Embed{Title: "Embed title"},
		Actions:     NewButtons(Button{Label: []g.Node{g.Text("Click")}}),
		Reactions:   NewReactions(Reaction{Name: "tada", Emoji: "🎉", Count: 3}),
	}))

	assertOrder(t, html,
		"discord-replied-message",
		"discord-author-avatar",
		"discord-author-info",
		"discord-message-timestamp",
		"body text",
		"discord-message-edited",
		"discord-embed",
		"discord-buttons",
		"discord-message-ephemeral-notice",
		"discord-reactions",
	)
}

func TestMessageFromChildren(t *testing.T) {
	t.Run("renders routed slots", func(t *testing.T) {
		node, err := MessageFromChildren(MessageProps{Timestamp: fixedTime},
			InSlot(SlotReactions, NewReactions(Reaction{Name: "fire", Emoji: "🔥"})),
			Child{Node: g.Text("first")},
			Child{Node: g.Text(" second")},
		)
		require.NoError(t, err)

		html := render(t, node)
		assertOrder(t, html, "first second", "discord-reactions")
	})

	t.Run("fails on invalid slot content", func(t *testing.T) {
		node, err := MessageFromChildren(MessageProps{}, InSlot(SlotInteractions, g.Text("oops")))

		assert.Nil(t, node)
		assert.ErrorIs(t, err, ErrInvalidSlot)
	})
}

func TestMessages(t *testing.T) {
	opts := NewOptions(nil, map[string]Profile{"bot": {Author: "Helper", Bot: true}}, language.German)

	html := render(t, Messages(
		MessagesProps{CompactMode: true, LightTheme: true, Options: opts},
		MessageProps{Profile: "bot", Timestamp: fixedTime},
		MessageProps{Author: "Alyx", Timestamp: fixedTime, CompactMode: false},
	))

	assert.True(t, strings.HasPrefix(html, `<div class="discord-messages discord-light-theme discord-compact-mode">`), html)
	assert.Contains(t, html, "Helper")
	assert.Equal(t, 2, strings.Count(html, `<span class="discord-message-timestamp">09:05</span>`), "container compact mode and locale apply to every message")
}
