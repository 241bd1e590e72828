// sim/scheduler.go
//
// The CPU scheduling driver: admits arrivals, consults the active
// SchedulingPolicy for a selection every time unit, executes the selected
// process, and records the execution trace and per-process metrics.

package sim

import (
	"github.com/sirupsen/logrus"
)

// ExecutionInterval is one contiguous run of a process in the trace,
// spanning [StartTime, EndTime).
type ExecutionInterval struct {
	Process   *Process
	StartTime int
	EndTime   int
}

// SchedulingResult bundles everything a Run produces: the elapsed time, the
// process list with final metrics, the full execution trace, and averages.
type SchedulingResult struct {
	Algorithm         string
	TotalTime         int
	Processes         []*Process
	ExecutionHistory  []ExecutionInterval
	AvgWaitingTime    float64
	AvgTurnaroundTime float64
}

// Scheduler drives a set of processes through one scheduling algorithm.
// It exclusively owns the loaded processes for the duration of a run; all
// queues hold indices into the owned store, never duplicate references.
// A Scheduler is not safe for concurrent use, and the whole Run call is a
// bounded synchronous loop.
type Scheduler struct {
	policy SchedulingPolicy

	procs   []*Process
	ready   []int  // index queue of admitted, runnable processes
	inReady []bool // membership tracking for the ready queue
	current int    // index of the process that ran the previous unit, or -1

	clock     int
	sliceLeft int // remaining quantum units for the current process
	completed int
	trace     []ExecutionInterval
}

// NewScheduler creates a driver for the given policy.
// Panics if policy is nil: the policy is chosen at configuration time and
// never swapped mid-run.
func NewScheduler(policy SchedulingPolicy) *Scheduler {
	if policy == nil {
		panic("NewScheduler: policy must not be nil")
	}
	return &Scheduler{policy: policy, current: -1}
}

// Policy returns the active scheduling policy.
func (s *Scheduler) Policy() SchedulingPolicy { return s.policy }

// SetQuantum forwards the quantum to a Round Robin policy. Other policies
// ignore it; non-positive values retain the prior quantum.
func (s *Scheduler) SetQuantum(q int) {
	if rr, ok := s.policy.(*RoundRobinPolicy); ok {
		rr.SetQuantum(q)
	}
}

// Load replaces the process set and resets all simulation state.
func (s *Scheduler) Load(procs []*Process) {
	s.procs = procs
	s.Reset()
}

// Reset re-initializes all mutable state without discarding the loaded
// processes, so that references held by callers stay valid between runs.
func (s *Scheduler) Reset() {
	s.ready = s.ready[:0]
	s.inReady = make([]bool, len(s.procs))
	s.current = -1
	s.clock = 0
	s.sliceLeft = 0
	s.completed = 0
	s.trace = nil
	for _, p := range s.procs {
		p.Reset()
	}
}

// Run executes the simulation until every process terminates and returns
// the result bundle. The loop is wrapped so an unexpected fault in one step
// cannot discard the already-recorded trace: the partial result is returned.
func (s *Scheduler) Run() (result *SchedulingResult) {
	s.Reset()

	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("scheduler %s: cycle aborted at t=%d: %v", s.policy.Name(), s.clock, r)
			result = s.results()
		}
	}()

	logrus.Debugf("scheduler %s: starting run with %d processes", s.policy.Name(), len(s.procs))
	for s.completed < len(s.procs) {
		s.step()
	}
	logrus.Debugf("scheduler %s: run ended at t=%d", s.policy.Name(), s.clock)

	return s.results()
}

// step advances the simulation by one time unit (or one idle unit).
func (s *Scheduler) step() {
	s.admitArrivals()

	// Preemptive policies re-evaluate the selection every unit: the running
	// process rejoins the ready queue and competes with everyone else.
	if s.current >= 0 && s.policy.Preemptive() {
		s.requeue(s.current)
		s.current = -1
	}

	if s.current < 0 {
		s.policy.OrderReady(s.ready, s.procs)
		s.current = s.popReady()
		s.sliceLeft = s.policy.TimeSlice()
	}

	if s.current < 0 {
		// Nothing runnable yet, but processes remain: idle unit.
		s.clock++
		return
	}

	p := s.procs[s.current]
	p.MarkStarted(s.clock)
	executed := p.ExecuteSlice(1)

	// Every other admitted process accrues waiting time for the units the
	// selected process actually ran.
	for _, idx := range s.ready {
		s.procs[idx].Wait(executed)
	}

	s.record(p, s.clock, executed)
	s.clock += executed

	if p.Terminated() {
		p.MarkFinished(s.clock)
		s.completed++
		s.current = -1
		logrus.Debugf("scheduler %s: %s finished at t=%d", s.policy.Name(), p.PID, s.clock)
		return
	}

	if slice := s.policy.TimeSlice(); slice > 0 {
		s.sliceLeft--
		if s.sliceLeft <= 0 {
			if len(s.ready) > 0 {
				// Quantum exhausted: back of the circular queue.
				s.requeue(s.current)
				s.current = -1
			} else {
				// Sole ready process keeps the CPU; requeueing it would only
				// add context-switch bookkeeping.
				s.sliceLeft = slice
			}
		}
	}
}

// admitArrivals moves every process whose arrival time has been reached into
// the ready queue, in load order. Terminated, already-queued, and currently
// selected processes are skipped.
func (s *Scheduler) admitArrivals() {
	for i, p := range s.procs {
		if p.ArrivalTime <= s.clock && !p.Terminated() && i != s.current && !s.inReady[i] {
			s.ready = append(s.ready, i)
			s.inReady[i] = true
		}
	}
}

// popReady removes and returns the head of the ready queue, or -1.
func (s *Scheduler) popReady() int {
	if len(s.ready) == 0 {
		return -1
	}
	idx := s.ready[0]
	s.ready = s.ready[1:]
	s.inReady[idx] = false
	return idx
}

// requeue appends a process index to the tail of the ready queue.
func (s *Scheduler) requeue(idx int) {
	s.procs[idx].State = StateReady
	s.ready = append(s.ready, idx)
	s.inReady[idx] = true
}

// record appends an execution interval, coalescing contiguous units of the
// same process into a single Gantt segment.
func (s *Scheduler) record(p *Process, start, units int) {
	if units <= 0 {
		return
	}
	if n := len(s.trace); n > 0 {
		last := &s.trace[n-1]
		if last.Process == p && last.EndTime == start {
			last.EndTime = start + units
			return
		}
	}
	s.trace = append(s.trace, ExecutionInterval{Process: p, StartTime: start, EndTime: start + units})
}

// results assembles the result bundle from the current state.
func (s *Scheduler) results() *SchedulingResult {
	waits := make([]int, len(s.procs))
	turnarounds := make([]int, len(s.procs))
	for i, p := range s.procs {
		waits[i] = p.WaitingTime
		turnarounds[i] = p.TurnaroundTime
	}
	return &SchedulingResult{
		Algorithm:         s.policy.Name(),
		TotalTime:         s.clock,
		Processes:         s.procs,
		ExecutionHistory:  s.trace,
		AvgWaitingTime:    Mean(waits),
		AvgTurnaroundTime: Mean(turnarounds),
	}
}
