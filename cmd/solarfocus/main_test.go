package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/solarfocus/internal/cli"
	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		assert.NotNil(t, root)
		assert.NotEmpty(t, root.Use)
	})
}

func TestRun(t *testing.T) {
	t.Setenv("SOLARFOCUS_HOME", t.TempDir())

	assert.Equal(t, exitOK, run(context.Background(), []string{"--version"}))
	assert.Equal(t, exitInvalidInput,
		run(context.Background(), []string{"estimate", "--consumption", "0", "--bill", "250", "--output", "json"}))
	assert.Equal(t, exitFailure, run(context.Background(), []string{"no-such-command"}))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error returns 0", err: nil, want: exitOK},
		{name: "invalid input", err: fmt.Errorf("row 3: %w", engine.ErrInvalidInput), want: exitInvalidInput},
		{name: "unknown unit", err: engine.ErrUnknownUnit, want: exitInvalidInput},
		{
			name: "joined invalid input",
			err:  errors.Join(errors.New("outer"), engine.ErrInvalidInput),
			want: exitInvalidInput,
		},
		{name: "generic error falls through", err: errors.New("generic error"), want: exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
