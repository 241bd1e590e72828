package loader

import (
	"fmt"
	"os"
	"path/filepath"
)

// SampleFiles names the example input files WriteSampleFiles produces.
type SampleFiles struct {
	Processes string
	Resources string
	Actions   string
}

const sampleProcesses = `# Format: <PID>, <BT>, <AT>, <Priority>
P1, 8, 0, 1
P2, 4, 1, 2
P3, 9, 2, 1
P4, 5, 3, 3
P5, 2, 4, 2
`

const sampleResources = `# Format: <NAME>, <COUNTER>
R1, 1
R2, 2
R3, 3
`

const sampleActions = `# Format: <PID>, <ACTION>, <RESOURCE>, <CYCLE>
P1, READ, R1, 0
P2, WRITE, R1, 2
P3, READ, R2, 3
P4, READ, R2, 4
P5, WRITE, R3, 5
P1, WRITE, R3, 6
`

// WriteSampleFiles creates example process, resource, and action files in
// dir (created if missing) and returns their paths.
func WriteSampleFiles(dir string) (*SampleFiles, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating sample dir: %w", err)
	}
	files := &SampleFiles{
		Processes: filepath.Join(dir, "processes_sample.txt"),
		Resources: filepath.Join(dir, "resources_sample.txt"),
		Actions:   filepath.Join(dir, "actions_sample.txt"),
	}
	for path, content := range map[string]string{
		files.Processes: sampleProcesses,
		files.Resources: sampleResources,
		files.Actions:   sampleActions,
	} {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("writing sample file: %w", err)
		}
	}
	return files, nil
}
