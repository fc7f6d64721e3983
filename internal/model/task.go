package model

import "task-reminder-bot/pkg/clock"

// TaskStatus is the stored status. Only pending and completed exist; overdue
// is derived at read time, never stored.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// ReminderKind distinguishes the two notifications per task.
type ReminderKind string

const (
	ReminderKind30Minutes ReminderKind = "30_minutes"
	ReminderKindExactTime ReminderKind = "exact_time"
)

// Reminder is one scheduled notification. Exactly two exist per task; both
// are regenerated (sent reset) whenever the due time is edited.
type Reminder struct {
	ID      string
	Kind    ReminderKind
	FiresAt clock.StorageTime
	Sent    bool
}

// Task is a stored reminder task.
type Task struct {
	TaskID    int64 // per-user sequential id
	UserID    string
	ChatID    int64
	Content   string
	DueAt     clock.StorageTime
	Status    TaskStatus
	Reminders []Reminder
	CreatedAt clock.StorageTime
	UpdatedAt clock.StorageTime
}

// TaskState is the derived three-way classification used for all display
// grouping and due-reminder filtering.
type TaskState string

const (
	StateCompleted      TaskState = "completed"
	StatePendingFuture  TaskState = "pending"
	StatePendingOverdue TaskState = "overdue"
)

// Classify derives the task state from stored status and the due instant at
// the given moment. A completed task is never overdue, regardless of DueAt.
func Classify(status TaskStatus, dueAt, now clock.LocalTime) TaskState {
	if status == TaskStatusCompleted {
		return StateCompleted
	}
	if dueAt.Before(now) {
		return StatePendingOverdue
	}
	return StatePendingFuture
}
