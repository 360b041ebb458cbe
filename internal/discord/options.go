package discord

import (
	"slices"

	"github.com/samber/lo"
	"golang.org/x/text/language"
)

// Profile is a named preset of author display attributes.
type Profile struct {
	Author    string
	Avatar    string
	Bot       bool
	RoleColor string
}

// defaultAvatars are the platform's stock avatars keyed by colour.
var defaultAvatars = map[string]string{
	"blue":   "https://cdn.discordapp.com/embed/avatars/0.png",
	"gray":   "https://cdn.discordapp.com/embed/avatars/1.png",
	"green":  "https://cdn.discordapp.com/embed/avatars/2.png",
	"orange": "https://cdn.discordapp.com/embed/avatars/3.png",
	"red":    "https://cdn.discordapp.com/embed/avatars/4.png",
	"pink":   "https://cdn.discordapp.com/embed/avatars/5.png",
}

// builtin is shared by every render that is not handed its own Options.
var builtin = NewOptions(defaultAvatars, nil, language.AmericanEnglish)

// Options is the read-only configuration shared by a set of messages: named
// avatar URLs, named profiles and the locale used for timestamps.
// It cannot be changed once built, so one value can back any number of renders.
type Options struct {
	avatars  map[string]string
	profiles map[string]Profile
	locale   language.Tag
}

// NewOptions builds Options from copies of the given tables.
func NewOptions(avatars map[string]string, profiles map[string]Profile, locale language.Tag) *Options {
	return &Options{
		avatars:  lo.Assign(avatars),
		profiles: lo.Assign(profiles),
		locale:   locale,
	}
}

// DefaultOptions returns the built-in configuration: the stock avatars, no
// profiles and US English timestamps.
func DefaultOptions() *Options {
	return builtin
}

// DefaultAvatars returns a copy of the stock avatar table.
func DefaultAvatars() map[string]string {
	return lo.Assign(defaultAvatars)
}

// orDefault lets a nil *Options stand for the built-in configuration.
func (o *Options) orDefault() *Options {
	if o == nil {
		return builtin
	}
	return o
}

// Profile looks up a named profile.
func (o *Options) Profile(key string) (Profile, bool) {
	p, ok := o.orDefault().profiles[key]
	return p, ok
}

// ProfileKeys returns the profile names in sorted order.
func (o *Options) ProfileKeys() []string {
	keys := lo.Keys(o.orDefault().profiles)
	slices.Sort(keys)
	return keys
}

// Avatar looks up a named avatar URL.
func (o *Options) Avatar(key string) (string, bool) {
	url, ok := o.orDefault().avatars[key]
	return url, ok
}

// Avatars returns a copy of the avatar table.
func (o *Options) Avatars() map[string]string {
	return lo.Assign(o.orDefault().avatars)
}

// Locale is the language timestamps are formatted for.
func (o *Options) Locale() language.Tag {
	return o.orDefault().locale
}

// ResolveAvatar maps an avatar reference to a URL. A known avatar name wins,
// any other non-empty value is taken as a URL, and an empty reference falls
// back to the "default" avatar when one is configured.
func (o *Options) ResolveAvatar(ref string) string {
	if ref == "" {
		url, _ := o.Avatar("default")
		return url
	}
	if url, ok := o.Avatar(ref); ok {
		return url
	}
	return ref
}
