// sim/syncengine.go
//
// The resource synchronization driver: advances discrete cycles, releases
// the previous cycle's point accesses, attempts due actions in becomes-due
// order, services the waiting backlog through the active SyncPolicy, and
// records a per-cycle outcome trace.

package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// DefaultMaxCycles bounds a synchronization run when the caller does not
// specify a limit. The bound is the defense against deadlock livelock.
const DefaultMaxCycles = 100

// CycleRecord is one cycle's slice of the synchronization trace.
type CycleRecord struct {
	Cycle   int
	Actions []ActionOutcome
}

// SyncResult bundles everything a synchronization Run produces. Reaching
// the cycle bound with CompletedActions < TotalActions is a normal
// termination mode signaling potential deadlock, not an error.
type SyncResult struct {
	Mechanism        string
	TotalTime        int
	ExecutionHistory []CycleRecord
	CompletedActions int
	TotalActions     int
}

// SyncState is the driver-owned store of processes, resources, and actions.
// Every queue and set addresses entries through these slices and id maps;
// no entity is duplicated across collections.
type SyncState struct {
	procs     []*Process
	procIndex map[string]int
	resources []*Resource
	resIndex  map[string]int
	actions   []*Action
}

// Process looks up a process by PID.
func (st *SyncState) Process(pid string) (*Process, bool) {
	i, ok := st.procIndex[pid]
	if !ok {
		return nil, false
	}
	return st.procs[i], true
}

// Resource looks up a resource by name.
func (st *SyncState) Resource(name string) (*Resource, bool) {
	i, ok := st.resIndex[name]
	if !ok {
		return nil, false
	}
	return st.resources[i], true
}

// releaseAll drops every hold on every resource and returns the holding
// processes to READY. Called through the policies at cycle boundaries.
func (st *SyncState) releaseAll() {
	for _, r := range st.resources {
		for pid := range r.Using {
			if p, ok := st.Process(pid); ok && p.State == StateRunning {
				p.State = StateReady
			}
		}
		r.ReleaseAll()
	}
}

// SyncEngine drives a set of pre-scheduled actions through one arbitration
// policy. Like the Scheduler, it exclusively owns its entities during a run
// and a Run call is a bounded synchronous loop.
type SyncEngine struct {
	policy SyncPolicy

	state SyncState
	clock int
	trace []CycleRecord
}

// NewSyncEngine creates a driver for the given policy.
// Panics if policy is nil.
func NewSyncEngine(policy SyncPolicy) *SyncEngine {
	if policy == nil {
		panic("NewSyncEngine: policy must not be nil")
	}
	return &SyncEngine{policy: policy}
}

// Policy returns the active synchronization policy.
func (e *SyncEngine) Policy() SyncPolicy { return e.policy }

// Load replaces the simulated entities and resets all state. Resources are
// put into the policy's mode; actions are stably sorted by scheduled cycle
// so same-cycle actions keep their input order — that ordering is
// load-bearing for trace determinism.
func (e *SyncEngine) Load(procs []*Process, resources []*Resource, actions []*Action) {
	e.state = SyncState{
		procs:     procs,
		procIndex: make(map[string]int, len(procs)),
		resources: resources,
		resIndex:  make(map[string]int, len(resources)),
		actions:   actions,
	}
	for i, p := range procs {
		e.state.procIndex[p.PID] = i
	}
	for i, r := range resources {
		r.Mode = e.policy.Mode()
		e.state.resIndex[r.Name] = i
	}
	sort.SliceStable(e.state.actions, func(i, j int) bool {
		return e.state.actions[i].Cycle < e.state.actions[j].Cycle
	})
	e.Reset()
}

// Reset re-initializes all mutable state in place; loaded entities keep
// their identity so callers' references stay valid between runs.
func (e *SyncEngine) Reset() {
	e.clock = 0
	e.trace = nil
	for _, p := range e.state.procs {
		p.Reset()
	}
	for _, r := range e.state.resources {
		r.Reset()
	}
	for _, a := range e.state.actions {
		a.Reset()
	}
}

// Run executes cycles until every action completes or maxCycles is reached.
// Non-positive maxCycles falls back to DefaultMaxCycles. The loop is
// wrapped so an unexpected fault in one cycle cannot discard the
// already-recorded trace: the partial result is returned.
func (e *SyncEngine) Run(maxCycles int) (result *SyncResult) {
	e.Reset()
	if maxCycles <= 0 {
		maxCycles = DefaultMaxCycles
	}

	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("sync %s: cycle %d aborted: %v", e.policy.Name(), e.clock, r)
			result = e.results()
		}
	}()

	logrus.Debugf("sync %s: starting run with %d actions over %d resources",
		e.policy.Name(), len(e.state.actions), len(e.state.resources))
	for e.clock < maxCycles && e.completedCount() < len(e.state.actions) {
		e.runCycle()
	}
	logrus.Debugf("sync %s: run ended after %d cycles, %d/%d actions completed",
		e.policy.Name(), e.clock, e.completedCount(), len(e.state.actions))

	return e.results()
}

// runCycle executes one discrete cycle.
func (e *SyncEngine) runCycle() {
	st := &e.state

	// Point accesses granted last cycle expire now. Semaphore release
	// cascades, completing newly satisfiable waiters immediately.
	outcomes := e.policy.ReleaseHolds(st)

	// Attempt due actions in becomes-due order (stable cycle sort at load).
	for _, a := range st.actions {
		if !a.DueAt(e.clock) {
			continue
		}
		ok := e.policy.ProcessAction(st, a)
		outcomes = append(outcomes, ActionOutcome{Action: a, Success: ok})
		if !ok {
			logrus.Debugf("sync %s: cycle %d: %s %s on %s waiting",
				e.policy.Name(), e.clock, a.PID, a.Type, a.ResourceName)
		}
	}

	// Retry earlier cycles' waiters, in strategy-specific order.
	outcomes = append(outcomes, e.policy.ServiceWaiting(st)...)

	e.trace = append(e.trace, CycleRecord{Cycle: e.clock, Actions: outcomes})
	e.clock++
}

// completedCount returns how many loaded actions have completed.
func (e *SyncEngine) completedCount() int {
	n := 0
	for _, a := range e.state.actions {
		if a.Completed() {
			n++
		}
	}
	return n
}

// results assembles the result bundle from the current state.
func (e *SyncEngine) results() *SyncResult {
	return &SyncResult{
		Mechanism:        e.policy.Name(),
		TotalTime:        e.clock,
		ExecutionHistory: e.trace,
		CompletedActions: e.completedCount(),
		TotalActions:     len(e.state.actions),
	}
}
