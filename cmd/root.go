package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/calsync-sim/calsync-sim/sim"
	"github.com/calsync-sim/calsync-sim/sim/loader"
)

var (
	// CLI flags shared across subcommands
	logLevel   string // Log verbosity level
	configPath string // Optional YAML simulation bundle

	// scheduling flags
	algorithm    string // Scheduling algorithm name
	quantum      int    // Round Robin time slice
	processesTxt string // Path to the process input file

	// synchronization flags
	mechanism    string // Synchronization mechanism name
	maxCycles    int    // Upper bound on simulated cycles
	resourcesTxt string // Path to the resource input file
	actionsTxt   string // Path to the action input file

	// samples flags
	samplesDir string // Directory for generated sample inputs
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "calsync-sim",
	Short: "Discrete-time simulator for CPU scheduling and resource synchronization",
}

// setupLogging parses and applies the --log flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// applyBundle overlays YAML config (when --config is given) onto the flag
// values. YAML fields left unset keep the flag values.
func applyBundle() {
	if configPath == "" {
		return
	}
	bundle, err := sim.LoadSimulationBundle(configPath)
	if err != nil {
		logrus.Fatalf("unable to read simulation config: %v", err)
	}
	if err := bundle.Validate(); err != nil {
		logrus.Fatalf("invalid simulation config: %v", err)
	}
	if bundle.Scheduler.Algorithm != "" {
		algorithm = bundle.Scheduler.Algorithm
	}
	if bundle.Scheduler.Quantum != nil {
		quantum = *bundle.Scheduler.Quantum
	}
	if bundle.Sync.Mechanism != "" {
		mechanism = bundle.Sync.Mechanism
	}
	if bundle.Sync.MaxCycles != nil {
		maxCycles = *bundle.Sync.MaxCycles
	}
	if bundle.Inputs.Processes != "" {
		processesTxt = bundle.Inputs.Processes
	}
	if bundle.Inputs.Resources != "" {
		resourcesTxt = bundle.Inputs.Resources
	}
	if bundle.Inputs.Actions != "" {
		actionsTxt = bundle.Inputs.Actions
	}
}

// scheduleCmd runs the CPU scheduling simulation from CLI flags
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the CPU scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		applyBundle()

		if processesTxt == "" {
			logrus.Fatalf("no process file provided (--processes). Exiting simulation.")
		}
		if !sim.IsValidSchedulingPolicy(algorithm) {
			logrus.Fatalf("unknown scheduling algorithm %q", algorithm)
		}

		procs, err := loader.LoadProcessesFile(processesTxt)
		if err != nil {
			logrus.Fatalf("unable to load processes: %v", err)
		}
		logrus.Infof("Starting %s scheduling with %d processes", algorithm, len(procs))

		scheduler := sim.NewScheduler(sim.NewSchedulingPolicy(algorithm))
		scheduler.SetQuantum(quantum)
		scheduler.Load(procs)
		result := scheduler.Run()
		result.Print()

		logrus.Info("Simulation complete.")
	},
}

// syncCmd runs the resource synchronization simulation from CLI flags
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run the resource synchronization simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		applyBundle()

		if processesTxt == "" || resourcesTxt == "" || actionsTxt == "" {
			logrus.Fatalf("process, resource, and action files are all required. Exiting simulation.")
		}
		if !sim.IsValidSyncPolicy(mechanism) {
			logrus.Fatalf("unknown sync mechanism %q", mechanism)
		}

		policy := sim.NewSyncPolicy(mechanism)
		procs, err := loader.LoadProcessesFile(processesTxt)
		if err != nil {
			logrus.Fatalf("unable to load processes: %v", err)
		}
		resources, err := loader.LoadResourcesFile(resourcesTxt, policy.Mode())
		if err != nil {
			logrus.Fatalf("unable to load resources: %v", err)
		}
		actions, err := loader.LoadActionsFile(actionsTxt)
		if err != nil {
			logrus.Fatalf("unable to load actions: %v", err)
		}
		logrus.Infof("Starting %s synchronization with %d actions over %d resources",
			mechanism, len(actions), len(resources))

		engine := sim.NewSyncEngine(policy)
		engine.Load(procs, resources, actions)
		result := engine.Run(maxCycles)
		result.Print()

		logrus.Info("Simulation complete.")
	},
}

// samplesCmd writes example input files to a directory
var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Generate sample process, resource, and action input files",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		files, err := loader.WriteSampleFiles(samplesDir)
		if err != nil {
			logrus.Fatalf("unable to write sample files: %v", err)
		}
		logrus.Infof("Sample files written: %s, %s, %s", files.Processes, files.Resources, files.Actions)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Optional YAML simulation config")

	scheduleCmd.Flags().StringVar(&processesTxt, "processes", "", "Path to the process input file")
	scheduleCmd.Flags().StringVar(&algorithm, "algorithm", "fifo", "Scheduling algorithm (fifo, sjf, srtf, round-robin, priority)")
	scheduleCmd.Flags().IntVar(&quantum, "quantum", sim.DefaultQuantum, "Round Robin time slice")

	syncCmd.Flags().StringVar(&processesTxt, "processes", "", "Path to the process input file")
	syncCmd.Flags().StringVar(&resourcesTxt, "resources", "", "Path to the resource input file")
	syncCmd.Flags().StringVar(&actionsTxt, "actions", "", "Path to the action input file")
	syncCmd.Flags().StringVar(&mechanism, "mechanism", "mutex", "Synchronization mechanism (mutex, semaphore)")
	syncCmd.Flags().IntVar(&maxCycles, "max-cycles", sim.DefaultMaxCycles, "Upper bound on simulated cycles")

	samplesCmd.Flags().StringVar(&samplesDir, "dir", "samples", "Directory for generated sample files")

	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(samplesCmd)
}
