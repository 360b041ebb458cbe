package stories_test

import (
	"strings"
	"testing"

	"github.com/nfrund/mockcord/internal/discord"
	"github.com/nfrund/mockcord/internal/stories"
	"github.com/nfrund/mockcord/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func render(t *testing.T, s stories.Story, opts *discord.Options) string {
	t.Helper()
	return testutils.Render(t, s.Render(opts))
}

func TestAll_RenderWithoutError(t *testing.T) {
	all := stories.All()
	require.NotEmpty(t, all)

	for _, s := range all {
		t.Run(s.Name, func(t *testing.T) {
			out := render(t, s, nil)
			assert.True(t, strings.HasPrefix(out, `<div class="discord-messages`), out)
			assert.NotEmpty(t, s.Description)
		})
	}
}

func TestNames_Unique(t *testing.T) {
	names := stories.Names()
	seen := map[string]bool{}
	for _, n := range names {
		assert.False(t, seen[n], "duplicate story %q", n)
		seen[n] = true
	}
	assert.Equal(t, "Default", names[0])
}

func TestFind(t *testing.T) {
	s, ok := stories.Find("Jumbo")
	require.True(t, ok)
	assert.Contains(t, render(t, s, nil), `class="emoji jumboable"`)

	_, ok = stories.Find("Nope")
	assert.False(t, ok)
}

func TestStories_Behaviour(t *testing.T) {
	tests := []struct {
		story string
		want  []string
		not   []string
	}{
		{story: "Mention", want: []string{"discord-mention-highlight"}},
		{story: "ChannelMention", want: []string{"discord-channel-mention"}, not: []string{"discord-mention-highlight"}},
		{story: "Ephemeral", want: []string{"discord-ephemeral-highlight", "Only you can see this", "/ping"}},
		{story: "Bot", want: []string{`<span class="discord-author-bot-tag">Bot</span>`}},
		{story: "Compact", want: []string{"discord-compact-mode"}},
		{story: "Buttons", want: []string{"discord-button-primary", "discord-button-disabled", `href="https://example.com"`}},
		{story: "Embed", want: []string{"discord-embed", "v1.2.0 released"}},
		{story: "Reactions", want: []string{"discord-reaction-reacted"}},
	}

	for _, tt := range tests {
		t.Run(tt.story, func(t *testing.T) {
			s, ok := stories.Find(tt.story)
			require.True(t, ok)

			out := render(t, s, nil)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, n := range tt.not {
				assert.NotContains(t, out, n)
			}
		})
	}
}

func TestProfileStory(t *testing.T) {
	s, ok := stories.Find("Profile")
	require.True(t, ok)

	t.Run("demo profiles without configured ones", func(t *testing.T) {
		out := render(t, s, nil)
		assert.Contains(t, out, "Maintainer")
		assert.Contains(t, out, "Helper")
	})

	t.Run("configured profiles win", func(t *testing.T) {
		opts := discord.NewOptions(discord.DefaultAvatars(), map[string]discord.Profile{
			"ops": {Author: "Ops Team"},
		}, language.BritishEnglish)

		out := render(t, s, opts)
		assert.Contains(t, out, "Ops Team")
		assert.NotContains(t, out, "Maintainer")
		assert.Contains(t, out, "04/03/2021")
	})
}
