package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/qmodes/backend/cpu"
)

func TestScenarios(t *testing.T) {
	backend := cpu.New()
	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			attrs, err := s.run(backend)
			require.NoError(t, err)
			assert.NotEmpty(t, attrs)
		})
	}
}

func TestRunChecks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	bc := cpu.WithWorkers(cpu.DefaultConfig(), 2)

	require.NoError(t, runChecks(context.Background(), logger, bc, cpu.NewWithConfig(bc)))

	out := buf.String()
	assert.Contains(t, out, "all checks passed")
	for _, s := range scenarios {
		assert.Contains(t, out, "scenario="+s.name)
	}
	assert.NotContains(t, out, "level=ERROR")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version", "--config-dir", t.TempDir()})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "qmodes "+version+"\n", out.String())
}

func TestRunChecks_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	bc := cpu.WithWorkers(cpu.DefaultConfig(), 1)
	err := runChecks(ctx, logger, bc, cpu.NewWithConfig(bc))
	assert.ErrorIs(t, err, context.Canceled)
}
