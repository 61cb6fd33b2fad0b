package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWheel(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		profilePath = ""
		spinFast = false
		simItems, simSpins, simWorkers, simSeed = 6, 100000, 4, 1
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := rootCmd.ExecuteContext(ctx)
	return buf.String(), err
}

func writeProfile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wheel.yaml")
	profile := "wind_up: 10ms\nspin_duration: 40ms\npulse_interval: 10ms\npulse_window: 20ms\nwobble_frame: 2ms\nmin_rotations: 1\nmax_rotations: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(profile), 0o600))
	return path
}

func TestSpinCommand(t *testing.T) {
	out, err := runWheel(t, "spin", "--profile", writeProfile(t), "tea", "coffee", "juice")
	require.NoError(t, err, out)
	require.Contains(t, out, "picked")
	assert.Regexp(t, `picked .*(tea|coffee|juice)`, out)
}

func TestSpinCommand_Fast(t *testing.T) {
	out, err := runWheel(t, "spin", "--fast", "left", "right")
	require.NoError(t, err, out)
	assert.Regexp(t, `picked .*(left|right)`, out)
}

func TestSpinCommand_RequiresOptions(t *testing.T) {
	_, err := runWheel(t, "spin")
	assert.Error(t, err)
}

func TestSimulateCommand(t *testing.T) {
	out, err := runWheel(t, "simulate", "--items", "3", "--spins", "3000", "--workers", "3", "--seed", "7")
	require.NoError(t, err, out)
	for _, want := range []string{"3000 spins over 3 sections", "item 1", "item 3", "chi-square"} {
		assert.Contains(t, out, want)
	}
}

func TestSimulateCommand_InvalidFlags(t *testing.T) {
	_, err := runWheel(t, "simulate", "--items", "0")
	assert.Error(t, err)
}
