package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/gubarz/actguide/internal/parser"
)

func reset(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestDefaults(t *testing.T) {
	reset(t)
	chdir(t, t.TempDir())

	require.NoError(t, Init(""))

	assert.Equal(t, ".", GetPath())
	assert.Equal(t, parser.DefaultImageBase, GetImageBase())
	assert.Equal(t, "print", GetOutput())
	assert.Equal(t, "text", GetFormat())
	assert.Equal(t, "auto", GetGuideStyle())
	assert.Equal(t, 100, GetWordWrap())
	assert.Empty(t, GetLogFile())
	assert.Equal(t, "debug", GetLogLevel())
	assert.Equal(t, "36", GetColorHeader())
}

func TestConfigFile(t *testing.T) {
	reset(t)

	path := filepath.Join(t.TempDir(), "actguide.yaml")
	content := "path: /guides\nimage_base: https://cdn.example/zones\nformat: json\nword_wrap: 72\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	require.NoError(t, Init(path))

	assert.Equal(t, "/guides", GetPath())
	assert.Equal(t, "https://cdn.example/zones", GetImageBase())
	assert.Equal(t, "json", GetFormat())
	assert.Equal(t, 72, GetWordWrap())
	assert.Equal(t, "print", GetOutput())
}

func TestMissingExplicitFile(t *testing.T) {
	reset(t)

	err := Init(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Equal(t, "text", GetFormat(), "defaults still apply")
}

func TestMalformedFile(t *testing.T) {
	reset(t)

	path := filepath.Join(t.TempDir(), "actguide.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [json\n"), 0o644))

	err := Init(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
	assert.Equal(t, "text", GetFormat(), "defaults still apply")
}

func TestEnvOverride(t *testing.T) {
	reset(t)
	chdir(t, t.TempDir())
	t.Setenv("ACTGUIDE_FORMAT", "yaml")

	require.NoError(t, Init(""))
	assert.Equal(t, "yaml", GetFormat())
}

func TestSetters(t *testing.T) {
	reset(t)
	SetDefaults()

	SetOutput("copy")
	SetFormat("html")
	SetPath("/tmp/guides")

	assert.Equal(t, "copy", GetOutput())
	assert.Equal(t, "html", GetFormat())
	assert.Equal(t, "/tmp/guides", GetPath())
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", expandTilde(""))
	assert.Equal(t, filepath.Join(home, "guides"), expandTilde("~/guides"))
	assert.Equal(t, "/abs/path", expandTilde("/abs/path"))

	rapid.Check(t, func(t *rapid.T) {
		p := rapid.StringMatching(`[a-z/._-]{0,20}`).Draw(t, "path")
		if got := expandTilde(p); got != p {
			t.Fatalf("expandTilde(%q) = %q", p, got)
		}
	})
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
