package scheduler

import "github.com/alexanderramin/workplan/internal/domain"

// StreamGroup is the tasks of one workstream, in sheet order.
type StreamGroup struct {
	Stream domain.Workstream
	Tasks  []ScheduledTask
}

// GroupByStream buckets tasks under their workstream, keeping the sheet
// order of both streams and tasks. Streams with no tasks are dropped.
func GroupByStream(tasks []ScheduledTask, streams []domain.Workstream) []StreamGroup {
	var groups []StreamGroup
	for _, s := range streams {
		var members []ScheduledTask
		for i := range tasks {
			if tasks[i].Workstream == s.Name {
				members = append(members, tasks[i])
			}
		}
		if len(members) == 0 {
			continue
		}
		groups = append(groups, StreamGroup{Stream: s, Tasks: members})
	}
	return groups
}
