package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goturtle/pkg/config"
)

func TestFromYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
parser:
  strict_mode: true
  max_errors: 25
diagnostics:
  format: json
  werror: true
  suppress:
    - duplicate-prefix
`)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.True(t, cfg.Parser.StrictMode)
	assert.Equal(t, 25, cfg.Parser.MaxErrors)
	assert.Equal(t, "json", cfg.Diagnostics.Format)
	assert.True(t, cfg.Diagnostics.Werror)
	assert.Equal(t, []string{"duplicate-prefix"}, cfg.Diagnostics.Suppress)
}

func TestFromYAML_AbsentKeysKeepDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte("diagnostics:\n  format: compact\n"))
	require.NoError(t, err)

	assert.True(t, cfg.Parser.ErrorRecovery, "defaults survive partial documents")
	assert.Equal(t, "auto", cfg.Diagnostics.Color)
	assert.Nil(t, cfg.Diagnostics.ShowColumn)
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("parser: [not a mapping"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")
}

func TestToYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Diagnostics.Format = "gcc"
	cfg.Parser.TrackComments = true

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	back, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "gcc", back.Diagnostics.Format)
	assert.True(t, back.Parser.TrackComments)
}

func TestToYAML_Nil(t *testing.T) {
	t.Parallel()

	var cfg *config.Config
	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)
}
