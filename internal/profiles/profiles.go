// Package profiles loads message options (named avatars, profiles and the
// timestamp locale) from a JSON file.
package profiles

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/nfrund/mockcord/internal/discord"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
)

// ErrInvalidOptions is returned when an options file cannot be decoded or
// fails validation.
var ErrInvalidOptions = errors.New("invalid message options")

var validate = validator.New(validator.WithRequiredStructEnabled())

// File is the on-disk shape of an options file.
//
//	{
//	  "locale": "en-GB",
//	  "avatars": {"mascot": "https://example.com/mascot.png"},
//	  "profiles": {"helper": {"author": "Helper", "avatar": "mascot", "bot": true, "roleColor": "#1abc9c"}}
//	}
type File struct {
	Locale   string                  `json:"locale" validate:"omitempty,bcp47_language_tag"`
	Avatars  map[string]string       `json:"avatars" validate:"dive,keys,required,endkeys,required,url"`
	Profiles map[string]ProfileEntry `json:"profiles" validate:"dive,keys,required,endkeys"`
}

// ProfileEntry is one profile in an options file.
type ProfileEntry struct {
	Author    string `json:"author" validate:"max=80"`
	Avatar    string `json:"avatar"`
	Bot       bool   `json:"bot"`
	RoleColor string `json:"roleColor" validate:"omitempty,hexcolor"`
}

// Load reads the options file at path from fs. An empty path yields the
// built-in options with the given locale. locale is also used when the file
// does not name one.
func Load(fs afero.Fs, path string, locale language.Tag) (*discord.Options, error) {
	if path == "" {
		return discord.NewOptions(discord.DefaultAvatars(), nil, locale), nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read options file %s: %w", path, err)
	}

	opts, err := Parse(data, locale)
	if err != nil {
		return nil, fmt.Errorf("load options file %s: %w", path, err)
	}

	slog.Debug("Loaded message options", "path", path, "profiles", len(opts.ProfileKeys()), "locale", opts.Locale().String())
	return opts, nil
}

// Parse decodes and validates an options document. File avatars are layered
// over the built-in ones.
func Parse(data []byte, locale language.Tag) (*discord.Options, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	if f.Locale != "" {
		tag, err := language.Parse(f.Locale)
		if err != nil {
			return nil, fmt.Errorf("%w: locale %q: %v", ErrInvalidOptions, f.Locale, err)
		}
		locale = tag
	}

	profiles := lo.MapValues(f.Profiles, func(p ProfileEntry, _ string) discord.Profile {
		return discord.Profile{Author: p.Author, Avatar: p.Avatar, Bot: p.Bot, RoleColor: p.RoleColor}
	})

	return discord.NewOptions(lo.Assign(discord.DefaultAvatars(), f.Avatars), profiles, locale), nil
}
