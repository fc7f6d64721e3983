package poller

import (
	"context"
	"fmt"

	"task-reminder-bot/internal/model"
	"task-reminder-bot/internal/task"
	"task-reminder-bot/pkg/clock"
)

// Run delivers every reminder currently due and returns how many went out.
// Each reminder fails independently: a send error leaves that reminder unsent
// so the next run retries it, and never blocks the others.
func (p *Poller) Run(ctx context.Context) int {
	due, err := p.uc.DueReminders(ctx)
	if err != nil {
		p.l.Errorf(ctx, "poller: DueReminders: %v", err)
		return 0
	}
	if len(due) == 0 {
		return 0
	}

	delivered := 0
	for _, n := range due {
		if err := p.bot.SendMessage(ctx, n.ChatID, notificationText(n)); err != nil {
			p.l.Errorf(ctx, "poller: send reminder %s for task %d: %v", n.ReminderID, n.TaskID, err)
			continue
		}
		if err := p.uc.MarkReminderSent(ctx, n.ReminderID); err != nil {
			// Delivered but not recorded; the next run re-sends. Better twice
			// than never.
			p.l.Errorf(ctx, "poller: mark reminder %s: %v", n.ReminderID, err)
			continue
		}
		delivered++
	}

	p.l.Infof(ctx, "poller: delivered %d/%d reminders", delivered, len(due))
	return delivered
}

// notificationText renders the chat message for one due reminder.
func notificationText(n task.DueNotification) string {
	dueAt := clock.ToLocal(n.DueAt).Format("15:04 02-01-2006")
	if n.Kind == model.ReminderKind30Minutes {
		return fmt.Sprintf("⏰ Còn 30 phút nữa!\n📌 #%d %s\n🕐 Hạn: %s", n.TaskID, n.Content, dueAt)
	}
	return fmt.Sprintf("🔔 Đã đến hạn!\n📌 #%d %s\n🕐 Hạn: %s\n\nXong thì gõ /complete %d nhé.", n.TaskID, n.Content, dueAt, n.TaskID)
}
