package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction_ValidLine(t *testing.T) {
	a, err := ParseAction("P1, READ, R1, 0")
	require.NoError(t, err)

	assert.Equal(t, "P1", a.PID)
	assert.Equal(t, ActionRead, a.Type)
	assert.Equal(t, "R1", a.ResourceName)
	assert.Equal(t, 0, a.Cycle)
	assert.Equal(t, ActionPending, a.State)
}

func TestParseAction_MalformedLines(t *testing.T) {
	for _, line := range []string{
		"",
		"P1, READ, R1",
		"P1, DELETE, R1, 0",
		"P1, READ, R1, soon",
	} {
		if _, err := ParseAction(line); err == nil {
			t.Errorf("ParseAction(%q): expected error, got none", line)
		}
	}
}

func TestActionDueAt(t *testing.T) {
	a := NewAction("P1", ActionWrite, "R1", 3)

	assert.False(t, a.DueAt(2))
	assert.True(t, a.DueAt(3))
	// due in any later cycle while still pending
	assert.True(t, a.DueAt(7))

	a.MarkWaiting()
	assert.False(t, a.DueAt(7), "waiting actions are retried via the queue, not the due scan")
}

func TestActionComplete_Idempotent(t *testing.T) {
	a := NewAction("P1", ActionRead, "R1", 0)

	a.Complete()
	assert.Equal(t, ActionCompleted, a.State)

	a.Complete()
	assert.Equal(t, ActionCompleted, a.State)
}

func TestActionMarkWaiting_NeverRegressesFromCompleted(t *testing.T) {
	a := NewAction("P1", ActionRead, "R1", 0)
	a.Complete()

	a.MarkWaiting()
	assert.Equal(t, ActionCompleted, a.State)
}

func TestActionReset_RestoresPending(t *testing.T) {
	a := NewAction("P1", ActionRead, "R1", 0)
	a.Complete()

	a.Reset()
	assert.Equal(t, ActionPending, a.State)
}
