package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/solarfocus/internal/config"
)

// executeCmd runs the root command with an isolated SOLARFOCUS_HOME and
// returns stdout and stderr.
func executeCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("SOLARFOCUS_HOME", t.TempDir())
	return runCmd(t, args...)
}

// runCmd runs the root command against the current SOLARFOCUS_HOME.
func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { config.SetGlobalConfig(nil) })

	root := NewRootCmd("1.2.3")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const householdsCSV = `label,consumption,bill
Casa Azul,300,250
Loja,500,450
Broken,-1,100
`
