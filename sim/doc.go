// Package sim provides the core discrete-time simulation engine for calsync-sim.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - process.go, resource.go, action.go: the shared data model and state machines
//   - scheduler.go: the CPU scheduling driver loop (1-unit stepping, trace recording)
//   - syncengine.go: the resource synchronization driver loop (cycle-based arbitration)
//
// # Architecture
//
// Two independent drivers share the data model but differ in execution model:
//   - Scheduler drives a ready queue of CPU-bound processes through a
//     SchedulingPolicy, producing an execution trace and waiting/turnaround metrics.
//   - SyncEngine drives pre-scheduled resource-access actions through a
//     SyncPolicy, producing a per-cycle action-outcome trace.
//
// Both are fully synchronous, single-stepped simulators: a Run() call is a
// bounded loop, no goroutines, and identical input always reproduces an
// identical trace. Determinism is load-bearing: all orderings are total
// (stable sorts with explicit tie-breaks, FIFO wait queues, oldest-first
// waiter service).
//
// # Key Interfaces
//
// The extension points are small interfaces with one implementation per
// algorithm, selected by name at configuration time and never swapped mid-run:
//   - SchedulingPolicy: FIFO, SJF, SRTF, Round Robin, Priority
//   - SyncPolicy: mutex, semaphore (reader/writer aware)
//
// Input loading from text files lives in sim/loader; the CLI front end in cmd.
package sim
