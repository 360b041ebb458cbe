// Package format prints CLI listings as tables or JSON.
package format

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/nfrund/mockcord/internal/discord"
	"github.com/nfrund/mockcord/internal/stories"
	"github.com/samber/lo"
)

// ProfileDisplay is a profile as shown by the CLI.
type ProfileDisplay struct {
	Key       string `json:"key"`
	Author    string `json:"author"`
	Avatar    string `json:"avatar,omitempty"`
	Bot       bool   `json:"bot"`
	RoleColor string `json:"role_color,omitempty"`
}

// ProfilesTable writes profiles and avatars as aligned tables.
func ProfilesTable(out io.Writer, opts *discord.Options) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "PROFILE\tAUTHOR\tAVATAR\tBOT\tROLE COLOR")
	fmt.Fprintln(w, "-------\t------\t------\t---\t----------")

	rows := profileDisplays(opts)
	if len(rows) == 0 {
		fmt.Fprintln(w, "No profiles configured")
	}
	for _, p := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n",
			p.Key,
			lo.CoalesceOrEmpty(p.Author, "-"),
			lo.CoalesceOrEmpty(truncateString(p.Avatar, 40), "-"),
			p.Bot,
			lo.CoalesceOrEmpty(p.RoleColor, "-"))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "AVATAR\tURL")
	fmt.Fprintln(w, "------\t---")
	avatars := opts.Avatars()
	for _, name := range sortedKeys(avatars) {
		fmt.Fprintf(w, "%s\t%s\n", name, avatars[name])
	}

	return w.Flush()
}

// ProfilesJSON writes profiles and avatars as indented JSON.
func ProfilesJSON(out io.Writer, opts *discord.Options) error {
	output := struct {
		Locale   string            `json:"locale"`
		Profiles []ProfileDisplay  `json:"profiles"`
		Avatars  map[string]string `json:"avatars"`
		Count    int               `json:"count"`
	}{
		Locale:   opts.Locale().String(),
		Profiles: profileDisplays(opts),
		Avatars:  opts.Avatars(),
	}
	output.Count = len(output.Profiles)

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// StoriesTable writes the story catalogue.
func StoriesTable(out io.Writer, all []stories.Story) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	fmt.Fprintln(w, "----\t-----------")
	for _, s := range all {
		fmt.Fprintf(w, "%s\t%s\n", s.Name, truncateString(s.Description, 60))
	}
	return w.Flush()
}

func profileDisplays(opts *discord.Options) []ProfileDisplay {
	return lo.Map(opts.ProfileKeys(), func(key string, _ int) ProfileDisplay {
		p, _ := opts.Profile(key)
		return ProfileDisplay{Key: key, Author: p.Author, Avatar: p.Avatar, Bot: p.Bot, RoleColor: p.RoleColor}
	})
}

func sortedKeys(m map[string]string) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}

// truncateString shortens s to limit runes, marking the cut with "...".
func truncateString(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
