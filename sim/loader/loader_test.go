package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calsync-sim/calsync-sim/sim"
)

func writeInputFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProcessesFile(t *testing.T) {
	path := writeInputFile(t, `# header comment
P1, 8, 0, 1

P2, 4, 1
`)
	procs, err := LoadProcessesFile(path)
	require.NoError(t, err)
	require.Len(t, procs, 2)

	assert.Equal(t, "P1", procs[0].PID)
	assert.Equal(t, 8, procs[0].BurstTime)
	assert.Equal(t, 1, procs[0].Priority)
	// priority column is optional
	assert.Equal(t, 0, procs[1].Priority)
}

func TestLoadProcessesFile_MalformedLinesAreSkipped(t *testing.T) {
	path := writeInputFile(t, `P1, 8, 0, 1
P2, eight, 0, 1
P3
P4, 5, 3, 3
`)
	procs, err := LoadProcessesFile(path)
	require.NoError(t, err)

	require.Len(t, procs, 2)
	assert.Equal(t, "P1", procs[0].PID)
	assert.Equal(t, "P4", procs[1].PID)
}

func TestLoadProcessesFile_MissingFile(t *testing.T) {
	_, err := LoadProcessesFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestLoadResourcesFile(t *testing.T) {
	path := writeInputFile(t, `R1, 2
R2
`)
	resources, err := LoadResourcesFile(path, sim.ModeMutex)
	require.NoError(t, err)
	require.Len(t, resources, 2)

	assert.Equal(t, "R1", resources[0].Name)
	assert.Equal(t, 2, resources[0].Counter)
	assert.Equal(t, sim.ModeMutex, resources[0].Mode)
	// counter column is optional, defaulting to 1
	assert.Equal(t, 1, resources[1].Counter)
}

func TestLoadActionsFile(t *testing.T) {
	path := writeInputFile(t, `P1, READ, R1, 0
P2, LOCK, R1, 1
P2, WRITE, R1, 2
`)
	actions, err := LoadActionsFile(path)
	require.NoError(t, err)

	// the unknown action type is skipped
	require.Len(t, actions, 2)
	assert.Equal(t, sim.ActionRead, actions[0].Type)
	assert.Equal(t, sim.ActionWrite, actions[1].Type)
	assert.Equal(t, 2, actions[1].Cycle)
}

func TestWriteSampleFiles_RoundTrip(t *testing.T) {
	files, err := WriteSampleFiles(filepath.Join(t.TempDir(), "samples"))
	require.NoError(t, err)

	procs, err := LoadProcessesFile(files.Processes)
	require.NoError(t, err)
	assert.Len(t, procs, 5)

	resources, err := LoadResourcesFile(files.Resources, sim.ModeSemaphore)
	require.NoError(t, err)
	assert.Len(t, resources, 3)

	actions, err := LoadActionsFile(files.Actions)
	require.NoError(t, err)
	assert.Len(t, actions, 6)
}
