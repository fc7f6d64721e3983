package usecase

import (
	"sort"

	"task-reminder-bot/internal/model"
	"task-reminder-bot/internal/task"
	"task-reminder-bot/pkg/clock"
)

// stateRank orders task states inside a day group: overdue surfaces first,
// completed sinks last.
func stateRank(s model.TaskState) int {
	switch s {
	case model.StatePendingOverdue:
		return 0
	case model.StatePendingFuture:
		return 1
	default:
		return 2
	}
}

// groupByDay buckets tasks by their local due day, days ascending. Within a
// day: overdue, then pending by due time, then completed by last update
// (most recently finished first).
func groupByDay(tasks []model.Task, now clock.LocalTime) []task.DayGroup {
	var days []task.DayGroup
	index := map[string]int{}

	for _, t := range tasks {
		due := clock.ToLocal(t.DueAt)
		key := due.DayKey()
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, task.DayGroup{Date: due.StartOfDay()})
		}
		days[i].Tasks = append(days[i].Tasks, task.TaskView{
			Task:  t,
			State: model.Classify(t.Status, due, now),
		})
	}

	sort.SliceStable(days, func(a, b int) bool {
		return days[a].Date.Before(days[b].Date)
	})
	for i := range days {
		views := days[i].Tasks
		sort.SliceStable(views, func(a, b int) bool {
			ra, rb := stateRank(views[a].State), stateRank(views[b].State)
			if ra != rb {
				return ra < rb
			}
			if views[a].State == model.StateCompleted {
				return views[b].Task.UpdatedAt.Before(views[a].Task.UpdatedAt)
			}
			return views[a].Task.DueAt.Before(views[b].Task.DueAt)
		})
	}
	return days
}
