package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// unsetEnv removes variables for the duration of the test; an empty value
// would override envconfig defaults.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
		}
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "MOCKCORD_ADDR", "MOCKCORD_OPTIONS_FILE", "MOCKCORD_LOCALE", "MOCKCORD_STYLESHEET_URL", "MOCKCORD_MAX_BODY", "MOCKCORD_RATE_LIMIT")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, "1M", cfg.MaxBody)
	assert.Equal(t, 10.0, cfg.RateLimit)
	assert.Empty(t, cfg.OptionsFile)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("MOCKCORD_ADDR", ":9000")
	t.Setenv("MOCKCORD_OPTIONS_FILE", "profiles.json")
	t.Setenv("MOCKCORD_LOCALE", "de-DE")
	t.Setenv("MOCKCORD_MAX_BODY", "512K")
	t.Setenv("MOCKCORD_RATE_LIMIT", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "profiles.json", cfg.OptionsFile)
	assert.Equal(t, 2.5, cfg.RateLimit)

	tag, err := cfg.Language()
	require.NoError(t, err)
	assert.Equal(t, language.MustParse("de-DE"), tag)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{name: "locale", key: "MOCKCORD_LOCALE", value: "not a locale!"},
		{name: "body size", key: "MOCKCORD_MAX_BODY", value: "lots"},
		{name: "rate limit", key: "MOCKCORD_RATE_LIMIT", value: "0"},
		{name: "rate limit type", key: "MOCKCORD_RATE_LIMIT", value: "fast"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestMaxBodyBytes(t *testing.T) {
	tests := map[string]int64{
		"1M":     1_000_000,
		"512KiB": 512 << 10,
		"10KB":   10_000,
		"100":    100,
		"2GiB":   2 << 30,
		"64B":    64,
	}
	for in, want := range tests {
		cfg := Config{MaxBody: in}
		got, err := cfg.MaxBodyBytes()
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "M", "lots", "-1M", "0", "9999999999999G"} {
		cfg := Config{MaxBody: bad}
		_, err := cfg.MaxBodyBytes()
		assert.Error(t, err, bad)
	}
}
