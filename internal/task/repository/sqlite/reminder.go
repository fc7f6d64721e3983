package sqlite

import (
	"context"

	repo "task-reminder-bot/internal/task/repository"
	"task-reminder-bot/pkg/clock"
)

// DueReminders returns unsent reminders of pending tasks whose fire time has
// arrived, oldest first. Completed tasks never fire.
func (r *implRepository) DueReminders(ctx context.Context, now clock.StorageTime) ([]repo.DueReminder, error) {
	const query = `
		SELECT r.id, r.kind, t.user_id, t.chat_id, t.task_id, t.content, t.due_at
		FROM reminders r
		JOIN tasks t ON t.id = r.task_rowid
		WHERE r.sent = 0 AND r.fires_at <= ? AND t.status = 'pending'
		ORDER BY r.fires_at ASC`

	rows, err := r.db.QueryContext(ctx, query, now.UnixNano())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DueReminders"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var due []repo.DueReminder
	for rows.Next() {
		var (
			d     repo.DueReminder
			dueAt int64
		)
		if err := rows.Scan(&d.ReminderID, &d.Kind, &d.UserID, &d.ChatID, &d.TaskID, &d.Content, &dueAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		d.DueAt = clock.FromUnixNano(dueAt)
		due = append(due, d)
	}
	return due, nil
}

// MarkReminderSent flips the sent flag exactly once. The sent = 0 guard makes
// concurrent pollers race safely; only one caller sees true.
func (r *implRepository) MarkReminderSent(ctx context.Context, reminderID string) (bool, error) {
	const query = `UPDATE reminders SET sent = 1 WHERE id = ? AND sent = 0`

	res, err := r.db.ExecContext(ctx, query, reminderID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkReminderSent"), err)
		return false, repo.ErrFailedToMark
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("MarkReminderSent"), err)
		return false, repo.ErrFailedToMark
	}
	return n > 0, nil
}
