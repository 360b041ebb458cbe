package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/cs"
	"github.com/go-playground/locales/da"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fi"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/ko"
	"github.com/go-playground/locales/nb"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pl"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/sv"
	"github.com/go-playground/locales/tr"
	"github.com/go-playground/locales/uk"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

// TimestampFormat selects how a message timestamp is laid out.
type TimestampFormat string

const (
	// Cozy shows the full date and time next to the author.
	Cozy TimestampFormat = "cozy"
	// Compact shows only the time, ahead of the author.
	Compact TimestampFormat = "compact"
)

// translators lists the locales timestamps can be formatted for. The first
// entry is the fallback for tags nothing else matches.
var translators = []locales.Translator{
	en_US.New(),
	en_GB.New(),
	de.New(),
	fr.New(),
	es.New(),
	it.New(),
	nl.New(),
	pt_BR.New(),
	pt.New(),
	ja.New(),
	ko.New(),
	zh.New(),
	ru.New(),
	pl.New(),
	sv.New(),
	tr.New(),
	da.New(),
	fi.New(),
	nb.New(),
	cs.New(),
	uk.New(),
}

var (
	universal     = ut.New(translators[0], translators...)
	localeMatcher = language.NewMatcher(lo.Map(translators, func(l locales.Translator, _ int) language.Tag {
		return language.Make(strings.ReplaceAll(l.Locale(), "_", "-"))
	}))
)

// translatorFor picks the closest supported locale for tag.
func translatorFor(tag language.Tag) locales.Translator {
	_, i, _ := localeMatcher.Match(tag)
	trans, _ := universal.GetTranslator(translators[i].Locale())
	return trans
}

// FormatTimestamp renders t for display. Cozy produces the locale's short
// date followed by its short time of day; Compact produces the time alone.
// t is shown in the host time zone.
func FormatTimestamp(t time.Time, format TimestampFormat, locale language.Tag) string {
	trans := translatorFor(locale)
	t = t.In(time.Local)
	if format == Compact {
		return trans.FmtTimeShort(t)
	}
	return trans.FmtDateShort(t) + " " + trans.FmtTimeShort(t)
}

var (
	zonedLayouts = []string{time.RFC3339Nano, time.RFC1123Z, time.RFC1123}
	localLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
		"01/02/2006 15:04",
		"01/02/2006",
	}
)

// ParseTimestamp reads a timestamp written as RFC 3339, RFC 1123, an ISO date
// with optional time, or a US-style month/day/year date. Values without a
// zone are taken to be in the host time zone.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}
