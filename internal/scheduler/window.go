package scheduler

import "time"

// FilterWindow keeps tasks that overlap the inclusive [from, to] range.
// A nil bound is open. Overlap is judged on the effective end, so a task
// completed early drops out of windows its planned end would have reached.
func FilterWindow(tasks []ScheduledTask, from, to *time.Time) []ScheduledTask {
	if from == nil && to == nil {
		return tasks
	}
	var kept []ScheduledTask
	for i := range tasks {
		t := &tasks[i]
		if from != nil && t.EffectiveEnd().Before(*from) {
			continue
		}
		if to != nil && t.Schedule.Start.After(*to) {
			continue
		}
		kept = append(kept, *t)
	}
	return kept
}
