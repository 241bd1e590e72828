// Scheduling policies: the per-algorithm decision logic the Scheduler
// driver consults every time unit. One implementation per algorithm,
// selected by name at configuration time and never swapped mid-run.

package sim

import (
	"fmt"
	"sort"
)

// DefaultQuantum is the Round Robin time slice used when none is configured.
const DefaultQuantum = 2

// SchedulingPolicy is the decision strategy behind the Scheduler driver.
// Policies never mutate processes; they only reorder the ready queue of
// indices into the driver's owned process store. All orderings use
// sort.SliceStable so ties fall back to queue position (admission order),
// keeping traces deterministic for identical input.
type SchedulingPolicy interface {
	Name() string
	// OrderReady sorts the ready index queue in selection order; the driver
	// runs the head. Called every time unit before selection.
	OrderReady(ready []int, procs []*Process)
	// Preemptive reports whether the running process competes with the
	// ready queue every time unit (true) or keeps the CPU until it
	// completes (false).
	Preemptive() bool
	// TimeSlice returns the quantum after which the running process is sent
	// to the back of the ready queue, or 0 for no slicing.
	TimeSlice() int
}

// FIFOPolicy runs processes in arrival order, to completion once selected.
type FIFOPolicy struct{}

func (f *FIFOPolicy) Name() string     { return "FIFO" }
func (f *FIFOPolicy) Preemptive() bool { return false }
func (f *FIFOPolicy) TimeSlice() int   { return 0 }

func (f *FIFOPolicy) OrderReady(ready []int, procs []*Process) {
	sort.SliceStable(ready, func(i, j int) bool {
		return procs[ready[i]].ArrivalTime < procs[ready[j]].ArrivalTime
	})
}

// SJFPolicy runs the shortest job first, non-preemptive: once a process is
// selected it keeps the CPU for its full burst.
type SJFPolicy struct{}

func (s *SJFPolicy) Name() string     { return "SJF" }
func (s *SJFPolicy) Preemptive() bool { return false }
func (s *SJFPolicy) TimeSlice() int   { return 0 }

func (s *SJFPolicy) OrderReady(ready []int, procs []*Process) {
	sort.SliceStable(ready, func(i, j int) bool {
		pi, pj := procs[ready[i]], procs[ready[j]]
		if pi.BurstTime != pj.BurstTime {
			return pi.BurstTime < pj.BurstTime
		}
		return pi.ArrivalTime < pj.ArrivalTime
	})
}

// SRTFPolicy is the preemptive variant of SJF: the selection is re-evaluated
// every time unit against remaining time, with the running process included
// in the comparison.
type SRTFPolicy struct{}

func (s *SRTFPolicy) Name() string     { return "SRTF" }
func (s *SRTFPolicy) Preemptive() bool { return true }
func (s *SRTFPolicy) TimeSlice() int   { return 0 }

func (s *SRTFPolicy) OrderReady(ready []int, procs []*Process) {
	sort.SliceStable(ready, func(i, j int) bool {
		return procs[ready[i]].RemainingTime < procs[ready[j]].RemainingTime
	})
}

// RoundRobinPolicy grants each process a fixed quantum in circular FIFO
// order. The ready queue is kept in admission order; the driver requeues a
// process at the tail when its quantum expires.
type RoundRobinPolicy struct {
	quantum int
}

// NewRoundRobinPolicy creates a Round Robin policy with the default quantum.
func NewRoundRobinPolicy() *RoundRobinPolicy {
	return &RoundRobinPolicy{quantum: DefaultQuantum}
}

func (r *RoundRobinPolicy) Name() string     { return "Round Robin" }
func (r *RoundRobinPolicy) Preemptive() bool { return false }
func (r *RoundRobinPolicy) TimeSlice() int   { return r.quantum }

// OrderReady is a no-op: Round Robin serves the circular queue in FIFO order.
func (r *RoundRobinPolicy) OrderReady(_ []int, _ []*Process) {}

// SetQuantum updates the time slice. Non-positive values are rejected
// silently and the prior quantum is retained.
func (r *RoundRobinPolicy) SetQuantum(q int) {
	if q > 0 {
		r.quantum = q
	}
}

// PriorityPolicy runs the most urgent process first (lower priority value =
// more urgent), non-preemptive once selected.
type PriorityPolicy struct{}

func (p *PriorityPolicy) Name() string     { return "Priority" }
func (p *PriorityPolicy) Preemptive() bool { return false }
func (p *PriorityPolicy) TimeSlice() int   { return 0 }

func (p *PriorityPolicy) OrderReady(ready []int, procs []*Process) {
	sort.SliceStable(ready, func(i, j int) bool {
		pi, pj := procs[ready[i]], procs[ready[j]]
		if pi.Priority != pj.Priority {
			return pi.Priority < pj.Priority
		}
		return pi.ArrivalTime < pj.ArrivalTime
	})
}

// ValidSchedulingPolicies is the set of recognized scheduling policy names.
// Shared by NewSchedulingPolicy and bundle validation to avoid duplication.
var ValidSchedulingPolicies = map[string]bool{
	"":            true, // empty defaults to fifo
	"fifo":        true,
	"sjf":         true,
	"srtf":        true,
	"round-robin": true,
	"priority":    true,
}

// IsValidSchedulingPolicy returns true if name is a recognized policy name.
func IsValidSchedulingPolicy(name string) bool {
	return ValidSchedulingPolicies[name]
}

// NewSchedulingPolicy creates a SchedulingPolicy by name.
// Empty string defaults to FIFOPolicy (for CLI flag default compatibility).
// Panics on unrecognized names.
func NewSchedulingPolicy(name string) SchedulingPolicy {
	if !IsValidSchedulingPolicy(name) {
		panic(fmt.Sprintf("unknown scheduling policy %q", name))
	}
	switch name {
	case "", "fifo":
		return &FIFOPolicy{}
	case "sjf":
		return &SJFPolicy{}
	case "srtf":
		return &SRTFPolicy{}
	case "round-robin":
		return NewRoundRobinPolicy()
	case "priority":
		return &PriorityPolicy{}
	default:
		panic(fmt.Sprintf("unhandled scheduling policy %q", name))
	}
}
