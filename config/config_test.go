package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/guard"
	"github.com/reoring/guard/config"
)

func TestDecode(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader("full_check: false\nlanguage: ja\n"))
	require.NoError(t, err)
	assert.Equal(t, guard.CheckConfig{FullCheck: false, Language: "ja"}, cfg)

	cfg, err = config.Decode(strings.NewReader("language: ja\n"))
	require.NoError(t, err)
	assert.Equal(t, guard.DefaultConfig().FullCheck, cfg.FullCheck, "absent keys keep defaults")

	cfg, err = config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, guard.DefaultConfig(), cfg)
}

func TestDecode_Rejects(t *testing.T) {
	_, err := config.Decode(strings.NewReader("full_chek: true\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = config.Decode(strings.NewReader("language: fr\n"))
	assert.ErrorIs(t, err, config.ErrUnsupportedLanguage)
}

func TestEncode_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := guard.CheckConfig{FullCheck: false, Language: "ja"}
	require.NoError(t, config.Encode(&buf, in))
	assert.Contains(t, buf.String(), "full_check: false")

	out, err := config.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("full_check: false\nlanguage: en\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.FullCheck)
	assert.Equal(t, "en", cfg.Language)

	t.Setenv(config.EnvFullCheck, "true")
	t.Setenv(config.EnvLanguage, " JA ")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.FullCheck, "environment wins over the file")
	assert.Equal(t, "ja", cfg.Language)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, guard.DefaultConfig(), cfg)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestApply(t *testing.T) {
	guard.Override(t, guard.DefaultConfig())
	t.Setenv(config.EnvFullCheck, "false")

	cfg, err := config.Apply("")
	require.NoError(t, err)
	assert.False(t, cfg.FullCheck)
	assert.False(t, guard.FullCheck())
}
