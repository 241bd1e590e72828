// Defines the Action struct that models a scheduled attempt by a process to
// access a resource at a given cycle of the synchronization simulation.

package sim

import (
	"fmt"
	"strconv"
)

// ActionType distinguishes read and write accesses to a resource.
type ActionType string

const (
	ActionRead  ActionType = "READ"
	ActionWrite ActionType = "WRITE"
)

// ActionState represents the lifecycle state of an action.
// Transitions are monotonic: PENDING -> (WAITING, while contended) ->
// RUNNING -> COMPLETED. A COMPLETED action is never revisited.
type ActionState string

const (
	ActionPending   ActionState = "PENDING"
	ActionWaiting   ActionState = "WAITING"
	ActionRunning   ActionState = "RUNNING"
	ActionCompleted ActionState = "COMPLETED"
)

// Action models one pre-scheduled resource access.
// Cycle is the earliest time the action may be attempted, not a guaranteed
// execution time: a contended action waits past its cycle.
type Action struct {
	PID          string     // Process performing the access
	Type         ActionType // READ or WRITE
	ResourceName string     // Target resource
	Cycle        int        // Earliest cycle the action may be attempted

	State ActionState
}

// NewAction creates an action in the PENDING state.
func NewAction(pid string, typ ActionType, resourceName string, cycle int) *Action {
	return &Action{
		PID:          pid,
		Type:         typ,
		ResourceName: resourceName,
		Cycle:        cycle,
		State:        ActionPending,
	}
}

// ParseAction builds an Action from a comma-separated line of the form
//
//	PID, ActionType, ResourceName, Cycle
func ParseAction(line string) (*Action, error) {
	parts := splitFields(line)
	if len(parts) < 4 {
		return nil, fmt.Errorf("action line %q: want 4 fields, got %d", line, len(parts))
	}
	typ := ActionType(parts[1])
	if typ != ActionRead && typ != ActionWrite {
		return nil, fmt.Errorf("action line %q: unknown action type %q", line, parts[1])
	}
	cycle, err := strconv.Atoi(parts[3])
	if err != nil {
		return nil, fmt.Errorf("action line %q: bad cycle: %w", line, err)
	}
	return NewAction(parts[0], typ, parts[2], cycle), nil
}

// DueAt reports whether the action is eligible for its first attempt at the
// given cycle: it is still PENDING and its scheduled cycle has been reached.
func (a *Action) DueAt(cycle int) bool {
	return a.State == ActionPending && cycle >= a.Cycle
}

// MarkWaiting parks the action until its resource frees up.
// Completed actions never regress.
func (a *Action) MarkWaiting() {
	if a.State != ActionCompleted {
		a.State = ActionWaiting
	}
}

// Complete marks the action RUNNING then COMPLETED in one step (a granted
// access lasts exactly one cycle). Idempotent: completing twice is a no-op.
func (a *Action) Complete() {
	if a.State == ActionCompleted {
		return
	}
	a.State = ActionRunning
	a.State = ActionCompleted
}

// Completed reports whether the action has finished.
func (a *Action) Completed() bool {
	return a.State == ActionCompleted
}

// Reset restores the action to PENDING for a fresh run.
func (a *Action) Reset() {
	a.State = ActionPending
}

// String returns a human-readable representation of the action.
func (a *Action) String() string {
	return fmt.Sprintf("Action %s %s %s at cycle %d (State: %s)",
		a.PID, a.Type, a.ResourceName, a.Cycle, a.State)
}
