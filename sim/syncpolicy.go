// Synchronization policies: the arbitration logic behind the SyncEngine
// driver. A granted access is a point-in-time operation that holds its
// resource for exactly the granting cycle; the driver releases all holds at
// the next cycle boundary through the policy's ReleaseHolds hook.

package sim

import "fmt"

// ActionOutcome tags one attempted action with its success flag.
type ActionOutcome struct {
	Action  *Action
	Success bool
}

// SyncPolicy is the arbitration strategy behind the SyncEngine driver.
//
// The two implementations diverge in wake-up behavior: mutex wakes at most
// one waiter per resource per cycle (oldest scheduled cycle first), while
// semaphore cascades at release time, immediately completing every waiter
// that becomes satisfiable.
type SyncPolicy interface {
	Name() string
	// Mode is the resource semantics this policy arbitrates under.
	Mode() SyncMode
	// ProcessAction attempts one due or retried action: grant and complete
	// it, or park it on the resource's wait queue. Returns true on success.
	ProcessAction(st *SyncState, a *Action) bool
	// ReleaseHolds releases the previous cycle's point accesses and returns
	// the outcomes of any waiters granted during release.
	ReleaseHolds(st *SyncState) []ActionOutcome
	// ServiceWaiting retries the waiting backlog once per cycle, in
	// strategy-specific order, and returns the outcomes of granted waiters.
	ServiceWaiting(st *SyncState) []ActionOutcome
}

// grantAction performs the shared grant bookkeeping: acquire (unless the
// process already holds the resource), complete the action, and flip the
// process RUNNING for the remainder of the cycle.
func grantAction(st *SyncState, r *Resource, a *Action) {
	if !r.Holding(a.PID) {
		r.Acquire(a.PID, a.Type)
	}
	a.Complete()
	if p, ok := st.Process(a.PID); ok {
		p.State = StateRunning
	}
}

// parkAction marks an action (and its process) as waiting and enqueues it.
// Enqueueing is idempotent, so retries never create duplicate entries.
func parkAction(st *SyncState, r *Resource, a *Action) {
	a.MarkWaiting()
	r.Enqueue(a)
	if p, ok := st.Process(a.PID); ok {
		p.State = StateWaiting
	}
}

// MutexPolicy admits exactly one holder per resource. Same-cycle contenders
// queue up and are woken one per resource per cycle, oldest scheduled cycle
// first — contention shows up as serialization across cycles.
type MutexPolicy struct{}

func (m *MutexPolicy) Name() string   { return "Mutex" }
func (m *MutexPolicy) Mode() SyncMode { return ModeMutex }

func (m *MutexPolicy) ProcessAction(st *SyncState, a *Action) bool {
	r, ok := st.Resource(a.ResourceName)
	if !ok {
		// Unknown resource: trivial success, not an error (recovery policy).
		a.Complete()
		return true
	}
	if _, ok := st.Process(a.PID); !ok {
		// Unknown process: same recovery policy.
		a.Complete()
		return true
	}
	if r.Holding(a.PID) || r.AvailableFor(a.Type) {
		grantAction(st, r, a)
		return true
	}
	parkAction(st, r, a)
	return false
}

// ReleaseHolds releases every hold from the previous cycle. Mutex never
// grants at release time; waiters are woken by ServiceWaiting instead.
func (m *MutexPolicy) ReleaseHolds(st *SyncState) []ActionOutcome {
	st.releaseAll()
	return nil
}

// ServiceWaiting wakes at most one waiter per resource: the queued action
// with the oldest scheduled cycle (queue position breaks ties).
func (m *MutexPolicy) ServiceWaiting(st *SyncState) []ActionOutcome {
	var outcomes []ActionOutcome
	for _, r := range st.resources {
		oldest := oldestWaiter(r)
		if oldest == nil || !r.AvailableFor(oldest.Type) {
			continue
		}
		grantAction(st, r, oldest)
		r.RemoveWaiter(oldest)
		outcomes = append(outcomes, ActionOutcome{Action: oldest, Success: true})
	}
	return outcomes
}

// oldestWaiter returns the queued action with the smallest scheduled cycle,
// or nil for an empty queue. The FIFO queue breaks ties by arrival.
func oldestWaiter(r *Resource) *Action {
	var oldest *Action
	for _, a := range r.Queue {
		if oldest == nil || a.Cycle < oldest.Cycle {
			oldest = a
		}
	}
	return oldest
}

// SemaphorePolicy arbitrates reader/writer access: READ is grantable while
// no WRITE is active (reader concurrency is unbounded, independent of the
// resource counter), WRITE only when the resource is fully idle.
type SemaphorePolicy struct{}

func (s *SemaphorePolicy) Name() string   { return "Semaphore" }
func (s *SemaphorePolicy) Mode() SyncMode { return ModeSemaphore }

func (s *SemaphorePolicy) ProcessAction(st *SyncState, a *Action) bool {
	r, ok := st.Resource(a.ResourceName)
	if !ok {
		a.Complete()
		return true
	}
	if _, ok := st.Process(a.PID); !ok {
		a.Complete()
		return true
	}
	if r.Holding(a.PID) || r.AvailableFor(a.Type) {
		grantAction(st, r, a)
		return true
	}
	parkAction(st, r, a)
	return false
}

// ReleaseHolds releases the previous cycle's holds and cascades: every
// waiter that becomes satisfiable is granted and completed immediately, in
// queue order. Multiple READ waiters can be woken together; a WRITE grant
// stops the cascade for its resource.
func (s *SemaphorePolicy) ReleaseHolds(st *SyncState) []ActionOutcome {
	st.releaseAll()
	var outcomes []ActionOutcome
	for _, r := range st.resources {
		outcomes = append(outcomes, s.wake(st, r)...)
	}
	return outcomes
}

// ServiceWaiting grants all eligible READ waiters for each resource first
// (readers share), then at most one WRITE waiter if the resource is still
// fully idle after the reads. Reads jump queued writes here; writers are
// woken by the release cascade once the resource drains.
func (s *SemaphorePolicy) ServiceWaiting(st *SyncState) []ActionOutcome {
	var outcomes []ActionOutcome
	for _, r := range st.resources {
		var granted []*Action
		for _, a := range r.Queue {
			if a.Completed() {
				granted = append(granted, a)
				continue
			}
			if a.Type == ActionRead && r.AvailableFor(ActionRead) {
				grantAction(st, r, a)
				granted = append(granted, a)
				outcomes = append(outcomes, ActionOutcome{Action: a, Success: true})
			}
		}
		for _, a := range r.Queue {
			if a.Completed() || a.Type != ActionWrite {
				continue
			}
			if r.AvailableFor(ActionWrite) {
				grantAction(st, r, a)
				granted = append(granted, a)
				outcomes = append(outcomes, ActionOutcome{Action: a, Success: true})
			}
			break
		}
		for _, a := range granted {
			r.RemoveWaiter(a)
		}
	}
	return outcomes
}

// wake scans a resource's wait queue in order, granting while the
// availability rule holds. Granted waiters occupy the resource for the
// current cycle, so a granted WRITE blocks everything behind it.
func (s *SemaphorePolicy) wake(st *SyncState, r *Resource) []ActionOutcome {
	var outcomes []ActionOutcome
	var granted []*Action
	for _, a := range r.Queue {
		if a.Completed() {
			granted = append(granted, a) // stale entry, drop it
			continue
		}
		if !r.AvailableFor(a.Type) {
			break
		}
		typ := a.Type
		grantAction(st, r, a)
		granted = append(granted, a)
		outcomes = append(outcomes, ActionOutcome{Action: a, Success: true})
		if typ == ActionWrite {
			break
		}
	}
	for _, a := range granted {
		r.RemoveWaiter(a)
	}
	return outcomes
}

// ValidSyncPolicies is the set of recognized synchronization mechanism names.
var ValidSyncPolicies = map[string]bool{
	"":          true, // empty defaults to mutex
	"mutex":     true,
	"semaphore": true,
}

// IsValidSyncPolicy returns true if name is a recognized mechanism name.
func IsValidSyncPolicy(name string) bool {
	return ValidSyncPolicies[name]
}

// NewSyncPolicy creates a SyncPolicy by name.
// Empty string defaults to MutexPolicy. Panics on unrecognized names.
func NewSyncPolicy(name string) SyncPolicy {
	if !IsValidSyncPolicy(name) {
		panic(fmt.Sprintf("unknown sync policy %q", name))
	}
	switch name {
	case "", "mutex":
		return &MutexPolicy{}
	case "semaphore":
		return &SemaphorePolicy{}
	default:
		panic(fmt.Sprintf("unhandled sync policy %q", name))
	}
}
