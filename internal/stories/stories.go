// Package stories is the catalogue of example conversations shown by the
// preview gallery and the CLI.
package stories

import (
	"time"

	"github.com/nfrund/mockcord/internal/discord"
	"github.com/samber/lo"
	g "maragu.dev/gomponents"
)

// Story is a named example. Render draws it with the given options; nil
// means the built-in ones.
type Story struct {
	Name        string
	Description string
	Render      func(opts *discord.Options) g.Node
}

// demoTime is the fixed timestamp every story uses so output is stable.
var demoTime = time.Date(2021, time.March, 4, 15, 7, 0, 0, time.Local)

// demoProfiles back the Profile story when the caller has no profiles of its own.
var demoProfiles = map[string]discord.Profile{
	"maintainer": {Author: "Maintainer", Avatar: "orange", RoleColor: "#f1c40f"},
	"helper":     {Author: "Helper", Avatar: "pink", Bot: true, RoleColor: "#5865f2"},
}

var catalogue = []Story{
	{
		Name:        "Default",
		Description: "A message with nothing but content.",
		Render: single(func() discord.MessageProps {
			return discord.MessageProps{Content: text("Hello, world!")}
		}),
	},
	{
		Name:        "Author",
		Description: "A custom author name.",
		Render: single(func() discord.MessageProps {
			return discord.MessageProps{Author: "Alyx", Content: text("Names are shown above the content.")}
		}),
	},
	{
		Name:        "Avatar",
		Description: "Avatars by stock name or by URL.",
		Render: func(opts *discord.Options) g.Node {
			return discord.Messages(discord.MessagesProps{Options: opts},
				discord.MessageProps{Author: "Green", Avatar: "green", Timestamp: demoTime, Content: text("A stock avatar.")},
				discord.MessageProps{Author: "Red", Avatar: "red", Timestamp: demoTime, Content: text("Another one.")},
			)
		},
	},
	{
		Name:        "Bot",
		Description: "The bot tag next to the author.",
		Render: single(func() discord.MessageProps {
			return discord.MessageProps{Author: "Relay", Avatar: "blue", Bot: lo.ToPtr(true), Content: text("Beep boop.")}
		}),
	},
	{
		Name:        "Edited",
		Description: "The edited marker after the content.",
		Render: single(func() discord.MessageProps {
			return discord.MessageProps{Edited: true, Content: text("Fixed the typo.")}
		}),
	},
	{
		Name:        "RoleColor",
		Description: "An author name painted in a role colour.",
		Render: single(func() discord.MessageProps {
			return discord.MessageProps{Author: "Moderator", RoleColor: "#e67e22", Content: text("Please keep it civil.")}
		}),
	},
	{
		Name:        "Timestamp",
		Description: "An explicit timestamp.",
		Render: single(func() discord.MessageProps {
			return discord.MessageProps{
				Timestamp: time.Date(2020, time.January, 12, 9, 30, 0, 0, time.Local),
				Content:   text("Posted a while ago."),
			}
		}),
	},
	{
		Name:        "Compact",
		Description: "Compact mode puts the time in front of the author.",
		Render: func(opts *discord.Options) g.Node {
			return discord.Messages(discord.MessagesProps{CompactMode: true, Options: opts},
				discord.MessageProps{Author: "Alyx", Avatar: "green", Timestamp: demoTime, Content: text("Short and dense.")},
				discord.MessageProps{Author: "Gordon", Avatar: "orange", Timestamp: demoTime, Content: text("Agreed.")},
			)
		},
	},
	{
		Name:        "Mention",
		Description: "A highlighted user mention highlights the message.",
		Render: single(func() discord.MessageProps {
			return discord.MessageProps{Content: []g.Node{
				g.Text("Hey "),
				discord.Mention{Type: discord.MentionUser, Highlight: true, Content: text("Gordon")},
				g.Text(", check this out."),
			}}
		}),
	},
	{
		Name:        "ChannelMention",
		Description: "Channel mentions never highlight.",
		Render: single(func() discord.MessageProps {
			return discord.MessageProps{Content: []g.Node{
				g.Text("Moving to "),
				discord.Mention{Type: discord.MentionChannel, Highlight: true, Content: text("general")},
			}}
		}),
	},
	{
		Name:        "Ephemeral",
		Description: "A command reply only the invoker can see.",
		Render: single(func() discord.MessageProps {
			return discord.MessageProps{
				Author:      "Relay",
				Bot:         lo.ToPtr(true),
				Interaction: &discord.Interaction{Author: "Alyx", Command: "ping", Ephemeral: true},
				Content:     text("Pong!"),
			}
		}),
	},
	{
		Name:        "Jumbo",
		Description: "Messages made only of emoji show them large.",
		Render: single(func() discord.MessageProps {
			return discord.MessageProps{Content: text("🎉 🚀")}
		}),
	},
	{
		Name:        "Buttons",
		Description: "Every button style.",
		Render: single(func() discord.MessageProps {
			return discord.MessageProps{
				Content: text("Pick one."),
				Actions: discord.NewButtons(
					discord.Button{Type: discord.ButtonPrimary, Label: text("Primary")},
					discord.Button{Type: discord.ButtonSecondary, Emoji: "👋", Label: text("Wave")},
					discord.Button{Type: discord.ButtonSuccess, Label: text("Success")},
					discord.Button{Type: discord.ButtonDestructive, Disabled: true, Label: text("Disabled")},
					discord.Button{Type: discord.ButtonLink, URL: "https://example.com", Label: text("Website")},
				),
			}
		}),
	},
	{
		Name:        "Embed",
		Description: "A rich embed with fields and a footer.",
		Render: single(func() discord.MessageProps {
			return discord.MessageProps{
				Author: "Relay",
				Bot:    lo.ToPtr(true),
				Embed: &discord.Embed{
					Color:       "#0099ff",
					AuthorName:  "Release bot",
					Title:       "v1.2.0 released",
					URL:         "https://example.com/releases/v1.2.0",
					Description: text("Faster rendering and fewer surprises."),
					Fields: discord.NewEmbedFields(
						discord.EmbedField{Title: "Added", Inline: true, Content: text("3")},
						discord.EmbedField{Title: "Fixed", Inline: true, Content: text("7")},
					),
					Footer:    "CI",
					Timestamp: demoTime,
				},
			}
		}),
	},
	{
		Name:        "Reactions",
		Description: "Reactions under a message.",
		Render: single(func() discord.MessageProps {
			return discord.MessageProps{
				Content: text("Ship it?"),
				Reactions: discord.NewReactions(
					discord.Reaction{Name: ":thumbsup:", Emoji: "👍", Count: 4, Reacted: true},
					discord.Reaction{Name: ":eyes:", Emoji: "👀", Count: 1},
				),
			}
		}),
	},
	{
		Name:        "Profile",
		Description: "Authors taken from named profiles.",
		Render: func(opts *discord.Options) g.Node {
			if len(opts.ProfileKeys()) == 0 {
				opts = discord.NewOptions(discord.DefaultAvatars(), demoProfiles, opts.Locale())
			}
			keys := opts.ProfileKeys()
			return discord.Messages(discord.MessagesProps{Options: opts},
				lo.Map(keys, func(key string, _ int) discord.MessageProps {
					return discord.MessageProps{Profile: key, Timestamp: demoTime, Content: text("Speaking as " + key + ".")}
				})...,
			)
		},
	},
}

// All returns the catalogue in display order.
func All() []Story {
	return append([]Story(nil), catalogue...)
}

// Find looks a story up by name.
func Find(name string) (Story, bool) {
	return lo.Find(catalogue, func(s Story) bool { return s.Name == name })
}

// Names lists the story names in display order.
func Names() []string {
	return lo.Map(catalogue, func(s Story, _ int) string { return s.Name })
}

func single(build func() discord.MessageProps) func(*discord.Options) g.Node {
	return func(opts *discord.Options) g.Node {
		m := build()
		if m.Timestamp.IsZero() {
			m.Timestamp = demoTime
		}
		return discord.Messages(discord.MessagesProps{Options: opts}, m)
	}
}

func text(s string) []g.Node {
	return []g.Node{g.Text(s)}
}
