package discord_test

import (
	"strings"
	"testing"
	"time"

	"github.com/nfrund/mockcord/internal/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2021, time.March, 4, 15, 7, 0, 0, time.Local)

	tests := []struct {
		name   string
		locale language.Tag
		format discord.TimestampFormat
		want   string
	}{
		{name: "us cozy", locale: language.AmericanEnglish, format: discord.Cozy, want: "3/4/21 3:07 pm"},
		{name: "us compact", locale: language.AmericanEnglish, format: discord.Compact, want: "3:07 pm"},
		{name: "british cozy", locale: language.BritishEnglish, format: discord.Cozy, want: "04/03/2021 15:07"},
		{name: "german cozy", locale: language.MustParse("de-DE"), format: discord.Cozy, want: "04.03.21 15:07"},
		{name: "german compact", locale: language.German, format: discord.Compact, want: "15:07"},
		{name: "italian cozy", locale: language.Italian, format: discord.Cozy, want: "04/03/21 15:07"},
		{name: "brazilian cozy", locale: language.BrazilianPortuguese, format: discord.Cozy, want: "04/03/2021 15:07"},
		{name: "dutch cozy", locale: language.Dutch, format: discord.Cozy, want: "04-03-2021 15:07"},
		{name: "korean cozy", locale: language.Korean, format: discord.Cozy, want: "21. 3. 4. PM 3:07"},
		{name: "chinese cozy", locale: language.Chinese, format: discord.Cozy, want: "2021/3/4 下午3:07"},
		{name: "japanese cozy", locale: language.Japanese, format: discord.Cozy, want: "2021/03/04 15:07"},
		{name: "unsupported falls back to us", locale: language.Swahili, format: discord.Cozy, want: "3/4/21 3:07 pm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, discord.FormatTimestamp(ts, tt.format, tt.locale))
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Run("zoned formats keep their instant", func(t *testing.T) {
		got, err := discord.ParseTimestamp("2021-01-01T12:30:00Z")
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2021, 1, 1, 12, 30, 0, 0, time.UTC)))

		got, err = discord.ParseTimestamp("2021-01-01T12:30:00.250+02:00")
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2021, 1, 1, 10, 30, 0, 250_000_000, time.UTC)))
	})

	t.Run("zone-less formats use the host zone", func(t *testing.T) {
		for _, value := range []string{"01/01/2021", "2021-01-01", " 2021-01-01 "} {
			got, err := discord.ParseTimestamp(value)
			require.NoError(t, err, value)
			assert.True(t, got.Equal(time.Date(2021, 1, 1, 0, 0, 0, 0, time.Local)), value)
		}

		got, err := discord.ParseTimestamp("2021-06-15 08:45")
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2021, 6, 15, 8, 45, 0, 0, time.Local)))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := discord.ParseTimestamp("yesterday-ish")
		assert.ErrorIs(t, err, discord.ErrInvalidTimestamp)
	})
}

func TestFormatTimestamp_SameDayKeepsDate(t *testing.T) {
	today := time.Now()

	got := discord.FormatTimestamp(today, discord.Cozy, language.BritishEnglish)

	assert.True(t, strings.HasPrefix(got, today.Format("02/01/2006")+" "), got)
	assert.NotContains(t, got, "Today")
}
