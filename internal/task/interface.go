package task

import (
	"context"

	"task-reminder-bot/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create parses raw natural-language text from the user, extracts the due
	// time, sanitizes the content, and persists the task with its two reminders.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// List returns the user's tasks grouped by local calendar day.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Detail returns a single task by its per-user sequential id.
	Detail(ctx context.Context, sc model.Scope, taskID int64) (model.Task, error)

	// Update changes a task's content and/or deadline. A deadline change
	// regenerates both reminders and reopens the task.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)

	// Complete marks a task as completed.
	Complete(ctx context.Context, sc model.Scope, taskID int64) (model.Task, error)

	// Delete removes a task and its reminders.
	Delete(ctx context.Context, sc model.Scope, taskID int64) error

	// DueReminders returns unsent reminders of pending tasks whose fire time
	// has arrived.
	DueReminders(ctx context.Context) ([]DueNotification, error)

	// MarkReminderSent marks a reminder delivered. Safe to call twice; the
	// second call is a no-op.
	MarkReminderSent(ctx context.Context, reminderID string) error
}
