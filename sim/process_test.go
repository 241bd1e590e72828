package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessState_Constants_HaveExpectedStringValues(t *testing.T) {
	assert.Equal(t, ProcessState("READY"), StateReady)
	assert.Equal(t, ProcessState("RUNNING"), StateRunning)
	assert.Equal(t, ProcessState("WAITING"), StateWaiting)
	assert.Equal(t, ProcessState("TERMINATED"), StateTerminated)
}

func TestNewProcess_InitialState(t *testing.T) {
	p := NewProcess("P1", 8, 2, 1)

	assert.Equal(t, "P1", p.PID)
	assert.Equal(t, 8, p.BurstTime)
	assert.Equal(t, 2, p.ArrivalTime)
	assert.Equal(t, 1, p.Priority)
	assert.Equal(t, 8, p.RemainingTime)
	assert.Equal(t, StateReady, p.State)
	assert.False(t, p.Started)
}

func TestParseProcess_FourFields(t *testing.T) {
	p, err := ParseProcess("P2, 4, 1, 2")
	require.NoError(t, err)

	assert.Equal(t, "P2", p.PID)
	assert.Equal(t, 4, p.BurstTime)
	assert.Equal(t, 1, p.ArrivalTime)
	assert.Equal(t, 2, p.Priority)
}

func TestParseProcess_PriorityDefaultsToZero(t *testing.T) {
	p, err := ParseProcess("P1, 5, 0")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Priority)
}

func TestParseProcess_MalformedLines(t *testing.T) {
	for _, line := range []string{
		"",
		"P1",
		"P1, 5",
		"P1, five, 0",
		"P1, 5, zero",
		"P1, 5, 0, high",
	} {
		if _, err := ParseProcess(line); err == nil {
			t.Errorf("ParseProcess(%q): expected error, got none", line)
		}
	}
}

func TestExecuteSlice_ClampsToRemainingTime(t *testing.T) {
	p := NewProcess("P1", 3, 0, 0)

	executed := p.ExecuteSlice(10)
	assert.Equal(t, 3, executed)
	assert.Equal(t, 0, p.RemainingTime)
	assert.Equal(t, StateTerminated, p.State)
}

func TestExecuteSlice_UnitSteps(t *testing.T) {
	p := NewProcess("P1", 2, 0, 0)

	assert.Equal(t, 1, p.ExecuteSlice(1))
	assert.Equal(t, StateRunning, p.State)
	assert.Equal(t, 1, p.ExecuteSlice(1))
	assert.Equal(t, StateTerminated, p.State)
	// Terminated processes never execute again
	assert.Equal(t, 0, p.ExecuteSlice(1))
	assert.Equal(t, 0, p.RemainingTime)
}

func TestExecuteSlice_NonPositiveBurst_TerminatesImmediately(t *testing.T) {
	p := NewProcess("P0", 0, 0, 0)

	executed := p.ExecuteSlice(1)
	assert.Equal(t, 0, executed)
	assert.True(t, p.Terminated())
	assert.Equal(t, 0, p.RemainingTime)
}

func TestWait_OnlyAccruesWhenReadyOrWaiting(t *testing.T) {
	p := NewProcess("P1", 5, 0, 0)

	p.Wait(2)
	assert.Equal(t, 2, p.WaitingTime)

	p.State = StateRunning
	p.Wait(3)
	assert.Equal(t, 2, p.WaitingTime)

	p.State = StateWaiting
	p.Wait(1)
	assert.Equal(t, 3, p.WaitingTime)

	p.State = StateTerminated
	p.Wait(1)
	assert.Equal(t, 3, p.WaitingTime)
}

func TestMarkStarted_SetOnce(t *testing.T) {
	p := NewProcess("P1", 5, 0, 0)

	p.MarkStarted(3)
	p.MarkStarted(7)
	assert.Equal(t, 3, p.StartTime)
}

func TestMarkFinished_DerivesTurnaround(t *testing.T) {
	p := NewProcess("P1", 5, 2, 0)

	p.MarkFinished(9)
	assert.Equal(t, 9, p.FinishTime)
	assert.Equal(t, 7, p.TurnaroundTime)
}

func TestProcessReset_KeepsIdentityAndStaticAttributes(t *testing.T) {
	p := NewProcess("P1", 5, 2, 3)
	p.ExecuteSlice(5)
	p.MarkStarted(2)
	p.MarkFinished(7)
	p.WaitingTime = 4

	p.Reset()

	assert.Equal(t, "P1", p.PID)
	assert.Equal(t, 5, p.BurstTime)
	assert.Equal(t, 2, p.ArrivalTime)
	assert.Equal(t, 3, p.Priority)
	assert.Equal(t, 5, p.RemainingTime)
	assert.Equal(t, 0, p.WaitingTime)
	assert.Equal(t, 0, p.TurnaroundTime)
	assert.False(t, p.Started)
	assert.Equal(t, StateReady, p.State)
}
