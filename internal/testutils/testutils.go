package testutils

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/nfrund/mockcord/internal/config"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

// EnvKeys are the variables config reads.
var EnvKeys = []string{
	"MOCKCORD_ADDR",
	"MOCKCORD_OPTIONS_FILE",
	"MOCKCORD_LOCALE",
	"MOCKCORD_STYLESHEET_URL",
	"MOCKCORD_MAX_BODY",
	"MOCKCORD_RATE_LIMIT",
}

// UnsetEnv removes variables for the rest of the test. Setting them to ""
// is not enough: envconfig treats an empty value as set.
func UnsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
			os.Unsetenv(k)
		}
	}
}

// ConfigForTests builds a config from defaults plus the given MOCKCORD_*
// overrides, ignoring whatever the developer's environment holds.
func ConfigForTests(t *testing.T, env map[string]string) *config.Config {
	t.Helper()

	UnsetEnv(t, EnvKeys...)
	for key, value := range env {
		t.Setenv(key, value)
	}

	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

// CaptureLogs routes the default slog logger into a buffer until the test ends.
func CaptureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

// Render renders node to a string, failing the test on error.
func Render(t *testing.T, node g.Node) string {
	t.Helper()

	var b strings.Builder
	require.NoError(t, node.Render(&b))
	return b.String()
}
