package task

import (
	"task-reminder-bot/internal/model"
	"task-reminder-bot/pkg/clock"
)

// CreateInput is the input for task creation.
// UserID and ChatID come from model.Scope, not here.
type CreateInput struct {
	RawText string // Natural language task description from the user
}

// CreateOutput is the result of task creation.
type CreateOutput struct {
	Task         model.Task
	CalendarLink string // Deep link to the Google Calendar event (may be empty)
}

// ListFilter selects which tasks a listing includes.
type ListFilter string

const (
	FilterAll       ListFilter = "all"
	FilterPending   ListFilter = "pending"
	FilterCompleted ListFilter = "completed"
	FilterOverdue   ListFilter = "overdue"
	FilterToday     ListFilter = "today"
	FilterTomorrow  ListFilter = "tomorrow"
	FilterDate      ListFilter = "date"
	FilterSearch    ListFilter = "search"
)

// ListInput is the input for listing tasks.
type ListInput struct {
	Filter ListFilter
	Date   clock.LocalTime // Used with FilterDate
	Search string          // Used with FilterSearch
	Page   int             // 1-based (default 1)
	Limit  int             // Max tasks per page (default 10)
}

// TaskView pairs a task with its state derived at listing time.
type TaskView struct {
	Task  model.Task
	State model.TaskState
}

// DayGroup holds one local calendar day's tasks, ordered overdue first,
// then pending, then completed.
type DayGroup struct {
	Date  clock.LocalTime // Midnight of the local day
	Tasks []TaskView
}

// ListOutput is the result of listing tasks.
type ListOutput struct {
	Days  []DayGroup
	Total int // Total matching tasks across all pages
	Page  int
	Limit int
}

// UpdateInput is the input for updating a task. At least one of Content and
// Deadline must be non-empty. Deadline is raw natural-language text resolved
// against the current time.
type UpdateInput struct {
	TaskID   int64
	Content  string
	Deadline string
}

// UpdateOutput is the result of a task update.
type UpdateOutput struct {
	Task            model.Task
	DeadlineChanged bool
}

// DueNotification is a reminder ready to be delivered to its chat.
type DueNotification struct {
	ReminderID string
	Kind       model.ReminderKind
	ChatID     int64
	TaskID     int64
	Content    string
	DueAt      clock.StorageTime
}
