package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/calsync-sim/calsync-sim/sim"
)

// resetFlags restores the package-level flag state a test mutated.
func resetFlags() {
	configPath = ""
	algorithm = "fifo"
	quantum = sim.DefaultQuantum
	mechanism = "mutex"
	maxCycles = sim.DefaultMaxCycles
	processesTxt = ""
	resourcesTxt = ""
	actionsTxt = ""
}

func TestApplyBundle_NoConfig_LeavesFlagsAlone(t *testing.T) {
	t.Cleanup(resetFlags)
	resetFlags()

	applyBundle()

	assert.Equal(t, "fifo", algorithm)
	assert.Equal(t, sim.DefaultQuantum, quantum)
	assert.Equal(t, "mutex", mechanism)
}

func TestApplyBundle_OverlaysYAMLOntoFlags(t *testing.T) {
	t.Cleanup(resetFlags)
	resetFlags()

	path := filepath.Join(t.TempDir(), "simulation.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
scheduler:
  algorithm: srtf
sync:
  mechanism: semaphore
  max_cycles: 25
inputs:
  processes: bundle_procs.txt
`), 0o644))
	configPath = path
	processesTxt = "flag_procs.txt"
	actionsTxt = "flag_actions.txt"

	applyBundle()

	assert.Equal(t, "srtf", algorithm)
	assert.Equal(t, "semaphore", mechanism)
	assert.Equal(t, 25, maxCycles)
	// YAML wins where set, flags survive where the YAML is silent
	assert.Equal(t, "bundle_procs.txt", processesTxt)
	assert.Equal(t, "flag_actions.txt", actionsTxt)
	assert.Equal(t, sim.DefaultQuantum, quantum)
}
