package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd("1.2.3")

	assert.Equal(t, "solarfocus", root.Use)
	assert.Equal(t, "1.2.3", root.Version)

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"estimate", "batch", "report", "serve", "config"} {
		assert.Contains(t, names, want)
	}

	for _, flag := range []string{"debug", "config", "locale", "currency"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRootCmd_Version(t *testing.T) {
	stdout, _, err := executeCmd(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1.2.3")
}

func TestRootCmd_ConfigFlag(t *testing.T) {
	t.Run("explicit file is used", func(t *testing.T) {
		path := writeTempFile(t, "cfg.yaml", "version: 1.0.0\noutput:\n  default_format: json\n  locale: en\n")
		stdout, _, err := executeCmd(t, "--config", path, "config", "get", "output.default_format")
		require.NoError(t, err)
		assert.Equal(t, "json\n", stdout)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, _, err := executeCmd(t, "--config", "/nonexistent/cfg.yaml", "config", "list")
		require.Error(t, err)
	})

	t.Run("unsupported version fails", func(t *testing.T) {
		path := writeTempFile(t, "cfg.yaml", "version: 2.0.0\n")
		_, _, err := executeCmd(t, "--config", path, "config", "list")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported config version")
	})
}

func TestRootCmd_DebugLogging(t *testing.T) {
	_, _, err := executeCmd(t, "--debug", "estimate", "--consumption", "300", "--bill", "250")
	require.NoError(t, err)
}
