package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBundleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "simulation.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSimulationBundle_FullConfig(t *testing.T) {
	path := writeBundleFile(t, `
scheduler:
  algorithm: round-robin
  quantum: 4
sync:
  mechanism: semaphore
  max_cycles: 50
inputs:
  processes: procs.txt
  resources: res.txt
  actions: acts.txt
`)
	bundle, err := LoadSimulationBundle(path)
	require.NoError(t, err)
	require.NoError(t, bundle.Validate())

	assert.Equal(t, "round-robin", bundle.Scheduler.Algorithm)
	require.NotNil(t, bundle.Scheduler.Quantum)
	assert.Equal(t, 4, *bundle.Scheduler.Quantum)
	assert.Equal(t, "semaphore", bundle.Sync.Mechanism)
	require.NotNil(t, bundle.Sync.MaxCycles)
	assert.Equal(t, 50, *bundle.Sync.MaxCycles)
	assert.Equal(t, "procs.txt", bundle.Inputs.Processes)
}

func TestLoadSimulationBundle_EmptyConfig_IsValid(t *testing.T) {
	bundle, err := LoadSimulationBundle(writeBundleFile(t, ""))
	require.NoError(t, err)

	assert.NoError(t, bundle.Validate())
	assert.Nil(t, bundle.Scheduler.Quantum)
	assert.Nil(t, bundle.Sync.MaxCycles)
}

func TestLoadSimulationBundle_MissingFile(t *testing.T) {
	_, err := LoadSimulationBundle(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadSimulationBundle_MalformedYAML(t *testing.T) {
	_, err := LoadSimulationBundle(writeBundleFile(t, "scheduler: [unclosed"))
	assert.Error(t, err)
}

func TestSimulationBundle_Validate_Errors(t *testing.T) {
	bad := func(mutate func(b *SimulationBundle)) error {
		b := &SimulationBundle{}
		mutate(b)
		return b.Validate()
	}
	neg := -1
	assert.Error(t, bad(func(b *SimulationBundle) { b.Scheduler.Algorithm = "lottery" }))
	assert.Error(t, bad(func(b *SimulationBundle) { b.Sync.Mechanism = "monitor" }))
	assert.Error(t, bad(func(b *SimulationBundle) { b.Scheduler.Quantum = &neg }))
	assert.Error(t, bad(func(b *SimulationBundle) { b.Sync.MaxCycles = &neg }))
}
