// Defines the Resource struct that models a synchronized resource: its
// capacity, the processes currently holding it, and the FIFO queue of
// actions waiting for it.

package sim

import (
	"fmt"
	"strconv"
)

// SyncMode selects the arbitration semantics a resource is simulated under.
type SyncMode string

const (
	ModeMutex     SyncMode = "mutex"
	ModeSemaphore SyncMode = "semaphore"
)

// Resource models one synchronized resource.
//
// Under mutex semantics at most one process holds the resource and
// CurrentCounter + len(Using) == Counter holds at all times. Under
// semaphore semantics the resource is reader/writer aware: any number of
// concurrent readers while no writer is active, and a writer only when the
// resource is fully idle (reader concurrency is not bounded by Counter).
type Resource struct {
	Name           string   // Unique resource name
	Counter        int      // Declared capacity (static)
	CurrentCounter int      // Remaining slots, maintained in mutex mode
	Mode           SyncMode // mutex or semaphore

	Using map[string]ActionType // PID -> action type currently holding the resource
	Queue []*Action             // Actions waiting, FIFO arrival order, no duplicates
}

// NewResource creates an idle resource.
func NewResource(name string, counter int, mode SyncMode) *Resource {
	return &Resource{
		Name:           name,
		Counter:        counter,
		CurrentCounter: counter,
		Mode:           mode,
		Using:          make(map[string]ActionType),
	}
}

// ParseResource builds a Resource from a comma-separated line of the form
//
//	Name, Counter
//
// The counter field is optional and defaults to 1.
func ParseResource(line string, mode SyncMode) (*Resource, error) {
	parts := splitFields(line)
	if len(parts) < 1 || parts[0] == "" {
		return nil, fmt.Errorf("resource line %q: missing name", line)
	}
	counter := 1
	if len(parts) > 1 {
		var err error
		counter, err = strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("resource line %q: bad counter: %w", line, err)
		}
	}
	return NewResource(parts[0], counter, mode), nil
}

// AvailableFor reports whether the resource can be granted for the given
// action type right now.
func (r *Resource) AvailableFor(typ ActionType) bool {
	switch r.Mode {
	case ModeMutex:
		// Strict mutual exclusion: one holder, regardless of Counter.
		return len(r.Using) == 0
	case ModeSemaphore:
		if typ == ActionRead {
			return !r.HasWriter()
		}
		return len(r.Using) == 0
	}
	return false
}

// Acquire grants the resource to a process for the given action type.
// Returns false without side effects if the availability rule fails.
func (r *Resource) Acquire(pid string, typ ActionType) bool {
	if !r.AvailableFor(typ) {
		return false
	}
	r.Using[pid] = typ
	if r.Mode == ModeMutex {
		r.CurrentCounter--
	}
	return true
}

// Release drops one process's hold on the resource. Unknown PIDs are ignored.
func (r *Resource) Release(pid string) {
	if _, ok := r.Using[pid]; !ok {
		return
	}
	delete(r.Using, pid)
	if r.Mode == ModeMutex {
		r.CurrentCounter++
	}
}

// ReleaseAll drops every hold. Called by the drivers at cycle boundaries:
// a granted access is a point-in-time operation lasting exactly one cycle.
func (r *Resource) ReleaseAll() {
	r.Using = make(map[string]ActionType)
	if r.Mode == ModeMutex {
		r.CurrentCounter = r.Counter
	}
}

// Enqueue appends a waiting action to the FIFO queue. Idempotent: an action
// already queued is not added again.
func (r *Resource) Enqueue(a *Action) {
	for _, queued := range r.Queue {
		if queued == a {
			return
		}
	}
	r.Queue = append(r.Queue, a)
}

// RemoveWaiter drops an action from the wait queue, preserving order.
func (r *Resource) RemoveWaiter(a *Action) {
	for i, queued := range r.Queue {
		if queued == a {
			r.Queue = append(r.Queue[:i], r.Queue[i+1:]...)
			return
		}
	}
}

// Holding reports whether the given process currently holds the resource.
func (r *Resource) Holding(pid string) bool {
	_, ok := r.Using[pid]
	return ok
}

// HasWriter reports whether any current holder is performing a WRITE.
func (r *Resource) HasWriter() bool {
	for _, typ := range r.Using {
		if typ == ActionWrite {
			return true
		}
	}
	return false
}

// Readers returns the number of current READ holders.
func (r *Resource) Readers() int {
	n := 0
	for _, typ := range r.Using {
		if typ == ActionRead {
			n++
		}
	}
	return n
}

// Reset restores the resource to its idle initial state.
func (r *Resource) Reset() {
	r.CurrentCounter = r.Counter
	r.Using = make(map[string]ActionType)
	r.Queue = nil
}

// String returns a human-readable representation of the resource.
func (r *Resource) String() string {
	return fmt.Sprintf("Resource %s (%s) - Using: %d, Waiting: %d",
		r.Name, r.Mode, len(r.Using), len(r.Queue))
}
