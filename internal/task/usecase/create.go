package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"task-reminder-bot/internal/model"
	"task-reminder-bot/internal/task"
	repo "task-reminder-bot/internal/task/repository"
	"task-reminder-bot/pkg/clock"
	"task-reminder-bot/pkg/gcalendar"
	"task-reminder-bot/pkg/vntime"
)

// Create resolves the due time from raw text, sanitizes the content, and
// persists the task with its reminder pair. Calendar sync is best-effort and
// never fails the creation.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	raw := strings.TrimSpace(input.RawText)
	if raw == "" {
		return task.CreateOutput{}, task.ErrEmptyInput
	}

	now := uc.now()
	res, err := uc.resolver.ResolveTask(raw, now.Time())
	if err != nil {
		if errors.Is(err, vntime.ErrEmptyText) {
			return task.CreateOutput{}, task.ErrEmptyInput
		}
		uc.l.Errorf(ctx, "uc.Create ResolveTask: %v", err)
		return task.CreateOutput{}, err
	}

	due := clock.ToStorage(clock.NewLocal(res.DueAt))
	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:    sc.UserID,
		ChatID:    sc.ChatID,
		Content:   res.Content,
		DueAt:     due,
		Reminders: buildReminders(due),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}
	uc.l.Infof(ctx, "uc.Create user=%s task=%d rule=%s due=%s", sc.UserID, created.TaskID, res.Rule, clock.ToLocal(due).Format("15:04 02-01-2006"))

	out := task.CreateOutput{Task: created}
	if uc.calendar != nil {
		out.CalendarLink = uc.syncCalendarEvent(ctx, created)
	}
	return out, nil
}

// syncCalendarEvent mirrors the task as a one-hour calendar event.
// Failures are logged and swallowed; the task already exists either way.
func (uc *implUseCase) syncCalendarEvent(ctx context.Context, t model.Task) string {
	start := clock.ToLocal(t.DueAt).Time()
	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:   t.Content,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Timezone:  "Asia/Ho_Chi_Minh",
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create calendar sync failed for task %d: %v", t.TaskID, err)
		return ""
	}
	return event.HtmlLink
}
