// Defines the Process struct that models a simulated CPU-bound process.
// Tracks static attributes (burst, arrival, priority) and per-run state
// (remaining time, waiting time, turnaround, start/finish times).

package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateReady      ProcessState = "READY"
	StateRunning    ProcessState = "RUNNING"
	StateWaiting    ProcessState = "WAITING"
	StateTerminated ProcessState = "TERMINATED"
)

// Process models a single process across a simulation run.
// Identity and static attributes (PID, BurstTime, ArrivalTime, Priority)
// survive Reset(); everything else is per-run state owned by the engine.
type Process struct {
	PID         string // Unique identifier for the process
	BurstTime   int    // Total CPU units required
	ArrivalTime int    // Unit at which the process becomes eligible
	Priority    int    // Lower value = more urgent

	RemainingTime  int          // Burst units still to execute
	WaitingTime    int          // Units spent eligible but not running
	TurnaroundTime int          // FinishTime - ArrivalTime, set at completion
	StartTime      int          // First unit the process ran (set once)
	Started        bool         // Tracks whether StartTime has been set
	FinishTime     int          // Unit at which the process completed
	State          ProcessState // READY, RUNNING, WAITING, TERMINATED
}

// NewProcess creates a process in its initial READY state.
func NewProcess(pid string, burstTime, arrivalTime, priority int) *Process {
	return &Process{
		PID:           pid,
		BurstTime:     burstTime,
		ArrivalTime:   arrivalTime,
		Priority:      priority,
		RemainingTime: burstTime,
		State:         StateReady,
	}
}

// ParseProcess builds a Process from a comma-separated line of the form
//
//	PID, BurstTime, ArrivalTime, Priority
//
// The priority field is optional and defaults to 0.
func ParseProcess(line string) (*Process, error) {
	parts := splitFields(line)
	if len(parts) < 3 {
		return nil, fmt.Errorf("process line %q: want at least 3 fields, got %d", line, len(parts))
	}
	burst, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("process line %q: bad burst time: %w", line, err)
	}
	arrival, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, fmt.Errorf("process line %q: bad arrival time: %w", line, err)
	}
	priority := 0
	if len(parts) > 3 {
		priority, err = strconv.Atoi(parts[3])
		if err != nil {
			return nil, fmt.Errorf("process line %q: bad priority: %w", line, err)
		}
	}
	return NewProcess(parts[0], burst, arrival, priority), nil
}

// ExecuteSlice runs the process for up to units time units and returns the
// units actually executed (less than requested if the process finishes).
// The subtraction saturates, so RemainingTime never goes negative.
func (p *Process) ExecuteSlice(units int) int {
	if p.State == StateTerminated {
		return 0
	}
	p.State = StateRunning
	// Non-positive bursts terminate on their first selection.
	if p.RemainingTime <= 0 {
		p.RemainingTime = 0
		p.State = StateTerminated
		return 0
	}
	executed := min(units, p.RemainingTime)
	p.RemainingTime -= executed
	if p.RemainingTime <= 0 {
		p.RemainingTime = 0
		p.State = StateTerminated
	}
	return executed
}

// Wait accrues waiting time. Only READY and WAITING processes accrue;
// running and terminated processes are unaffected.
func (p *Process) Wait(units int) {
	if p.State == StateReady || p.State == StateWaiting {
		p.WaitingTime += units
	}
}

// MarkStarted records the first unit the process ran. Later calls are no-ops.
func (p *Process) MarkStarted(t int) {
	if !p.Started {
		p.StartTime = t
		p.Started = true
	}
}

// MarkFinished records the completion time and derives the turnaround time.
func (p *Process) MarkFinished(t int) {
	p.FinishTime = t
	p.TurnaroundTime = p.FinishTime - p.ArrivalTime
}

// Terminated reports whether the process has completed its full burst.
func (p *Process) Terminated() bool {
	return p.State == StateTerminated
}

// Reset restores the per-run state without discarding identity or static
// attributes, so external references to the Process stay valid between runs.
func (p *Process) Reset() {
	p.RemainingTime = p.BurstTime
	p.WaitingTime = 0
	p.TurnaroundTime = 0
	p.StartTime = 0
	p.Started = false
	p.FinishTime = 0
	p.State = StateReady
}

// String returns a human-readable representation of the process.
func (p *Process) String() string {
	return fmt.Sprintf("Process %s (BT=%d, AT=%d, Prio=%d, State=%s)",
		p.PID, p.BurstTime, p.ArrivalTime, p.Priority, p.State)
}

// splitFields splits a comma-separated input line and trims whitespace
// around every field.
func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
