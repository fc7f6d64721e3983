package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"task-reminder-bot/internal/model"
	"task-reminder-bot/internal/task"
	"task-reminder-bot/pkg/clock"
)

// reminderLead is how long before the due instant the early reminder fires.
const reminderLead = 30 * time.Minute

// buildReminders returns the fresh reminder pair for a due instant: one
// thirty minutes ahead and one exactly on time. Both start unsent.
func buildReminders(due clock.StorageTime) []model.Reminder {
	return []model.Reminder{
		{
			ID:      uuid.NewString(),
			Kind:    model.ReminderKind30Minutes,
			FiresAt: clock.FromUnixNano(due.UnixNano() - int64(reminderLead)),
		},
		{
			ID:      uuid.NewString(),
			Kind:    model.ReminderKindExactTime,
			FiresAt: due,
		},
	}
}

// DueReminders returns every reminder ready for delivery right now.
func (uc *implUseCase) DueReminders(ctx context.Context) ([]task.DueNotification, error) {
	rows, err := uc.repo.DueReminders(ctx, clock.ToStorage(uc.now()))
	if err != nil {
		uc.l.Errorf(ctx, "uc.DueReminders: %v", err)
		return nil, err
	}

	out := make([]task.DueNotification, 0, len(rows))
	for _, r := range rows {
		out = append(out, task.DueNotification{
			ReminderID: r.ReminderID,
			Kind:       r.Kind,
			ChatID:     r.ChatID,
			TaskID:     r.TaskID,
			Content:    r.Content,
			DueAt:      r.DueAt,
		})
	}
	return out, nil
}

// MarkReminderSent records delivery. An already-sent reminder is a no-op, so
// overlapping poll runs cannot double-mark.
func (uc *implUseCase) MarkReminderSent(ctx context.Context, reminderID string) error {
	marked, err := uc.repo.MarkReminderSent(ctx, reminderID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.MarkReminderSent %s: %v", reminderID, err)
		return err
	}
	if !marked {
		uc.l.Debugf(ctx, "uc.MarkReminderSent %s: already sent", reminderID)
	}
	return nil
}
