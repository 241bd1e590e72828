// YAML-loadable simulation configuration, shared by the CLI subcommands.

package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SimulationBundle holds unified simulation configuration, loadable from a
// YAML file. Nil pointer fields mean "not set in YAML" — they do not
// override CLI flags. String fields use empty string for "not set".
type SimulationBundle struct {
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Sync      SyncConfig      `yaml:"sync"`
	Inputs    InputsConfig    `yaml:"inputs"`
}

// SchedulerConfig selects the scheduling algorithm and its parameters.
type SchedulerConfig struct {
	Algorithm string `yaml:"algorithm"`
	Quantum   *int   `yaml:"quantum"`
}

// SyncConfig selects the synchronization mechanism and its cycle bound.
type SyncConfig struct {
	Mechanism string `yaml:"mechanism"`
	MaxCycles *int   `yaml:"max_cycles"`
}

// InputsConfig points at the line-oriented input files.
type InputsConfig struct {
	Processes string `yaml:"processes"`
	Resources string `yaml:"resources"`
	Actions   string `yaml:"actions"`
}

// LoadSimulationBundle reads and parses a YAML simulation config file.
func LoadSimulationBundle(path string) (*SimulationBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading simulation config: %w", err)
	}
	var bundle SimulationBundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("parsing simulation config: %w", err)
	}
	return &bundle, nil
}

// Validate checks that all policy names and parameter ranges are valid.
func (b *SimulationBundle) Validate() error {
	if !IsValidSchedulingPolicy(b.Scheduler.Algorithm) {
		return fmt.Errorf("unknown scheduling algorithm %q", b.Scheduler.Algorithm)
	}
	if !IsValidSyncPolicy(b.Sync.Mechanism) {
		return fmt.Errorf("unknown sync mechanism %q", b.Sync.Mechanism)
	}
	if b.Scheduler.Quantum != nil && *b.Scheduler.Quantum <= 0 {
		return fmt.Errorf("quantum must be positive, got %d", *b.Scheduler.Quantum)
	}
	if b.Sync.MaxCycles != nil && *b.Sync.MaxCycles <= 0 {
		return fmt.Errorf("max_cycles must be positive, got %d", *b.Sync.MaxCycles)
	}
	return nil
}
