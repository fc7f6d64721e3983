package repository

import (
	"context"

	"task-reminder-bot/internal/model"
	"task-reminder-bot/pkg/clock"
)

// Repository is the interface for task and reminder data access.
type Repository interface {
	// CreateTask assigns the next per-user sequential id and inserts the task
	// with its reminders in one transaction.
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)

	// GetTask retrieves one task with its reminders. Returns a zero-value
	// Task (TaskID == 0) when not found.
	GetTask(ctx context.Context, userID string, taskID int64) (model.Task, error)

	// ListTasks returns a page of tasks ordered by due time ascending, plus
	// the total match count. Reminders are not loaded.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)

	// UpdateTask applies the non-zero fields of opt and returns the updated
	// task. Returns a zero-value Task when not found.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)

	// DeleteTask removes a task and its reminders.
	DeleteTask(ctx context.Context, userID string, taskID int64) error

	// DueReminders returns unsent reminders of pending tasks with
	// fires_at <= now, ordered by fire time.
	DueReminders(ctx context.Context, now clock.StorageTime) ([]DueReminder, error)

	// MarkReminderSent flips the sent flag. Returns false when the reminder
	// was already sent or does not exist.
	MarkReminderSent(ctx context.Context, reminderID string) (bool, error)
}

// DueReminder is a reminder row joined with its task, ready for delivery.
type DueReminder struct {
	ReminderID string
	Kind       model.ReminderKind
	UserID     string
	ChatID     int64
	TaskID     int64
	Content    string
	DueAt      clock.StorageTime
}
