package repository

import (
	"task-reminder-bot/internal/model"
	"task-reminder-bot/pkg/clock"
)

// CreateTaskOptions holds the parameters for inserting a task.
type CreateTaskOptions struct {
	UserID    string
	ChatID    int64
	Content   string
	DueAt     clock.StorageTime
	Reminders []model.Reminder
}

// ListTasksOptions holds the parameters for listing tasks.
// Zero-value fields are not applied as filters.
type ListTasksOptions struct {
	UserID  string
	Status  model.TaskStatus
	DueFrom clock.StorageTime // inclusive
	DueTo   clock.StorageTime // exclusive
	Search  string            // substring match on content
	Limit   int
	Offset  int
}

// UpdateTaskOptions holds the parameters for updating a task.
// Zero-value fields are left unchanged; a non-nil Reminders slice replaces
// all existing reminders.
type UpdateTaskOptions struct {
	UserID    string
	TaskID    int64
	Content   string
	DueAt     clock.StorageTime
	Status    model.TaskStatus
	Reminders []model.Reminder
}
