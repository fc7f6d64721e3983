package usecase

import (
	"context"
	"time"

	"task-reminder-bot/internal/model"
	repo "task-reminder-bot/internal/task/repository"
	"task-reminder-bot/pkg/clock"
	"task-reminder-bot/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}

// Mock repository with overridable behavior per test.
type mockRepository struct {
	createTask       func(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error)
	getTask          func(ctx context.Context, userID string, taskID int64) (model.Task, error)
	listTasks        func(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error)
	updateTask       func(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error)
	deleteTask       func(ctx context.Context, userID string, taskID int64) error
	dueReminders     func(ctx context.Context, now clock.StorageTime) ([]repo.DueReminder, error)
	markReminderSent func(ctx context.Context, reminderID string) (bool, error)
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	return m.createTask(ctx, opt)
}

func (m *mockRepository) GetTask(ctx context.Context, userID string, taskID int64) (model.Task, error) {
	return m.getTask(ctx, userID, taskID)
}

func (m *mockRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	return m.listTasks(ctx, opt)
}

func (m *mockRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	return m.updateTask(ctx, opt)
}

func (m *mockRepository) DeleteTask(ctx context.Context, userID string, taskID int64) error {
	return m.deleteTask(ctx, userID, taskID)
}

func (m *mockRepository) DueReminders(ctx context.Context, now clock.StorageTime) ([]repo.DueReminder, error) {
	return m.dueReminders(ctx, now)
}

func (m *mockRepository) MarkReminderSent(ctx context.Context, reminderID string) (bool, error) {
	return m.markReminderSent(ctx, reminderID)
}

// Mock calendar client for testing
type mockCalendar struct {
	createEvent func(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	return m.createEvent(ctx, req)
}

// localAt parses an RFC3339 string into a local instant for fixed test clocks.
func localAt(s string) clock.LocalTime {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return clock.NewLocal(t)
}
