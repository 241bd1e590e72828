// Aggregation helpers and human-readable summaries for simulation results.

package sim

import "fmt"

// IntOrFloat64 constrains the numeric types the aggregation helpers accept.
type IntOrFloat64 interface {
	int | int64 | float64
}

// Mean calculates the mean of a data list. An empty list yields 0.
func Mean[T IntOrFloat64](numbers []T) float64 {
	if len(numbers) == 0 {
		return 0.0
	}
	var sum T
	for _, n := range numbers {
		sum += n
	}
	return float64(sum) / float64(len(numbers))
}

// Print displays the scheduling result at the end of a simulation:
// per-process metrics, the Gantt segments, and the averages.
func (r *SchedulingResult) Print() {
	fmt.Println("=== Scheduling Results ===")
	fmt.Printf("Algorithm            : %s\n", r.Algorithm)
	fmt.Printf("Total Time           : %d units\n", r.TotalTime)
	for _, p := range r.Processes {
		fmt.Printf("  %-8s start=%-3d finish=%-3d waiting=%-3d turnaround=%d\n",
			p.PID, p.StartTime, p.FinishTime, p.WaitingTime, p.TurnaroundTime)
	}
	fmt.Println("Execution order:")
	for _, iv := range r.ExecutionHistory {
		fmt.Printf("  [%3d, %3d) %s\n", iv.StartTime, iv.EndTime, iv.Process.PID)
	}
	fmt.Printf("Average Waiting Time    : %.2f units\n", r.AvgWaitingTime)
	fmt.Printf("Average Turnaround Time : %.2f units\n", r.AvgTurnaroundTime)
}

// Print displays the synchronization result: the per-cycle action outcomes
// and the completion counts. An incomplete count signals that the run hit
// its cycle bound with actions still blocked (potential deadlock).
func (r *SyncResult) Print() {
	fmt.Println("=== Synchronization Results ===")
	fmt.Printf("Mechanism            : %s\n", r.Mechanism)
	fmt.Printf("Total Cycles         : %d\n", r.TotalTime)
	for _, rec := range r.ExecutionHistory {
		if len(rec.Actions) == 0 {
			continue
		}
		fmt.Printf("  cycle %3d:\n", rec.Cycle)
		for _, out := range rec.Actions {
			status := "waiting"
			if out.Success {
				status = "ok"
			}
			fmt.Printf("    %-7s %s %s %s\n", status, out.Action.PID, out.Action.Type, out.Action.ResourceName)
		}
	}
	fmt.Printf("Completed Actions    : %d/%d\n", r.CompletedActions, r.TotalActions)
	if r.CompletedActions < r.TotalActions {
		fmt.Println("Warning: unresolved actions remain (possible deadlock)")
	}
}
