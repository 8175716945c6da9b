package capacity

import (
	"time"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/scheduler"
)

// StreamSpan is the roadmap view of one workstream: the envelope of its
// tasks' schedules plus what is currently stuck inside it.
type StreamSpan struct {
	Stream     domain.Workstream
	Start      time.Time
	End        time.Time
	TaskCount  int
	TaskStarts []time.Time

	// BlockedTasks lists the names of member tasks that are parked On Hold
	// or waiting on a named blocker.
	BlockedTasks []string
}

// Rollup aggregates tasks per workstream in sheet order. Workstreams with
// no tasks are omitted. Spans end at each task's effective end, so a
// stream whose last task finished early contracts with it.
func Rollup(tasks []scheduler.ScheduledTask, streams []domain.Workstream) []StreamSpan {
	var spans []StreamSpan
	for _, group := range scheduler.GroupByStream(tasks, streams) {
		sp := StreamSpan{
			Stream:    group.Stream,
			TaskCount: len(group.Tasks),
		}
		for i := range group.Tasks {
			t := &group.Tasks[i]
			start, end := t.Schedule.Start, t.EffectiveEnd()

			if i == 0 {
				sp.Start, sp.End = start, end
			}
			if start.Before(sp.Start) {
				sp.Start = start
			}
			if end.After(sp.End) {
				sp.End = end
			}
			sp.TaskStarts = append(sp.TaskStarts, start)
			if t.Blocked() {
				sp.BlockedTasks = append(sp.BlockedTasks, t.Name)
			}
		}
		spans = append(spans, sp)
	}
	return spans
}
