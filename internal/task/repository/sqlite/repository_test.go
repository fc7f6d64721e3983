package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"task-reminder-bot/internal/model"
	repo "task-reminder-bot/internal/task/repository"
	"task-reminder-bot/pkg/clock"
)

// nopLogger satisfies log.Logger without output.
type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	// An in-memory database exists per connection; keep a single one so the
	// schema is visible everywhere.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return New(db, nopLogger{})
}

func storageAt(s string) clock.StorageTime {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return clock.ToStorage(clock.NewLocal(t))
}

func reminderPair(due clock.StorageTime) []model.Reminder {
	return []model.Reminder{
		{ID: uuid.NewString(), Kind: model.ReminderKind30Minutes, FiresAt: clock.FromUnixNano(due.UnixNano() - int64(30*time.Minute))},
		{ID: uuid.NewString(), Kind: model.ReminderKindExactTime, FiresAt: due},
	}
}

func TestCreateTaskSequentialIDs(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	due := storageAt("2025-09-06T23:30:00+07:00")

	for i := int64(1); i <= 3; i++ {
		task, err := r.CreateTask(ctx, repo.CreateTaskOptions{
			UserID: "u1", ChatID: 100, Content: "Đi ngủ", DueAt: due, Reminders: reminderPair(due),
		})
		if err != nil {
			t.Fatalf("create #%d: %v", i, err)
		}
		if task.TaskID != i {
			t.Errorf("task %d got id %d", i, task.TaskID)
		}
	}

	// A second user starts its own counter at 1.
	task, err := r.CreateTask(ctx, repo.CreateTaskOptions{
		UserID: "u2", ChatID: 200, Content: "Họp team", DueAt: due, Reminders: reminderPair(due),
	})
	if err != nil {
		t.Fatalf("create u2: %v", err)
	}
	if task.TaskID != 1 {
		t.Errorf("u2 first task id = %d, want 1", task.TaskID)
	}
}

func TestGetTask(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	due := storageAt("2025-09-06T23:30:00+07:00")

	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{
		UserID: "u1", ChatID: 100, Content: "Đi ngủ", DueAt: due, Reminders: reminderPair(due),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := r.GetTask(ctx, "u1", created.TaskID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Content != "Đi ngủ" || !got.DueAt.Equal(due) || got.Status != model.TaskStatusPending {
		t.Errorf("unexpected task: %+v", got)
	}
	if len(got.Reminders) != 2 {
		t.Fatalf("got %d reminders, want 2", len(got.Reminders))
	}
	if got.Reminders[0].Kind != model.ReminderKind30Minutes || got.Reminders[1].Kind != model.ReminderKindExactTime {
		t.Errorf("reminder kinds out of order: %+v", got.Reminders)
	}

	// Not found and wrong user both yield zero value, no error.
	for _, tc := range []struct {
		user string
		id   int64
	}{{"u1", 99}, {"u2", created.TaskID}} {
		zero, err := r.GetTask(ctx, tc.user, tc.id)
		if err != nil {
			t.Fatalf("get %s/%d: %v", tc.user, tc.id, err)
		}
		if zero.TaskID != 0 {
			t.Errorf("get %s/%d = %+v, want zero", tc.user, tc.id, zero)
		}
	}
}

func TestListTasksFilters(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	seed := []struct {
		content string
		due     string
	}{
		{"Đi ngủ", "2025-09-06T23:30:00+07:00"},
		{"Họp team", "2025-09-07T10:30:00+07:00"},
		{"Nộp báo cáo", "2025-09-07T17:00:00+07:00"},
	}
	for _, s := range seed {
		due := storageAt(s.due)
		if _, err := r.CreateTask(ctx, repo.CreateTaskOptions{
			UserID: "u1", ChatID: 100, Content: s.content, DueAt: due, Reminders: reminderPair(due),
		}); err != nil {
			t.Fatalf("seed %q: %v", s.content, err)
		}
	}

	t.Run("day window", func(t *testing.T) {
		tasks, total, err := r.ListTasks(ctx, repo.ListTasksOptions{
			UserID:  "u1",
			DueFrom: storageAt("2025-09-07T00:00:00+07:00"),
			DueTo:   storageAt("2025-09-08T00:00:00+07:00"),
		})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if total != 2 || len(tasks) != 2 {
			t.Fatalf("got %d/%d tasks, want 2/2", len(tasks), total)
		}
		if tasks[0].Content != "Họp team" || tasks[1].Content != "Nộp báo cáo" {
			t.Errorf("wrong order: %q, %q", tasks[0].Content, tasks[1].Content)
		}
	})

	t.Run("search", func(t *testing.T) {
		tasks, total, err := r.ListTasks(ctx, repo.ListTasksOptions{UserID: "u1", Search: "báo cáo"})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if total != 1 || len(tasks) != 1 || tasks[0].Content != "Nộp báo cáo" {
			t.Errorf("search got %d/%d: %+v", len(tasks), total, tasks)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		tasks, total, err := r.ListTasks(ctx, repo.ListTasksOptions{UserID: "u1", Limit: 2, Offset: 2})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if total != 3 || len(tasks) != 1 {
			t.Errorf("page 2 got %d/%d, want 1/3", len(tasks), total)
		}
	})
}

func TestUpdateTaskReplacesReminders(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	due := storageAt("2025-09-06T23:30:00+07:00")

	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{
		UserID: "u1", ChatID: 100, Content: "Đi ngủ", DueAt: due, Reminders: reminderPair(due),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newDue := storageAt("2025-09-08T09:00:00+07:00")
	updated, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{
		UserID:    "u1",
		TaskID:    created.TaskID,
		DueAt:     newDue,
		Reminders: reminderPair(newDue),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.DueAt.Equal(newDue) {
		t.Errorf("due = %v, want %v", updated.DueAt.Time(), newDue.Time())
	}
	if updated.Content != "Đi ngủ" {
		t.Errorf("content changed: %q", updated.Content)
	}

	got, err := r.GetTask(ctx, "u1", created.TaskID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Reminders) != 2 {
		t.Fatalf("got %d reminders after replace, want 2", len(got.Reminders))
	}
	for _, rem := range got.Reminders {
		if rem.Sent {
			t.Errorf("replaced reminder %s still marked sent", rem.ID)
		}
	}
	if !got.Reminders[1].FiresAt.Equal(newDue) {
		t.Errorf("exact reminder fires at %v, want %v", got.Reminders[1].FiresAt.Time(), newDue.Time())
	}

	// Unknown task yields zero value, no error.
	zero, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{UserID: "u1", TaskID: 99, Content: "x"})
	if err != nil {
		t.Fatalf("update missing: %v", err)
	}
	if zero.TaskID != 0 {
		t.Errorf("update missing = %+v, want zero", zero)
	}
}

func TestDueRemindersAndMarkSent(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	due := storageAt("2025-09-06T23:30:00+07:00")
	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{
		UserID: "u1", ChatID: 100, Content: "Đi ngủ", DueAt: due, Reminders: reminderPair(due),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A task far in the future never shows up.
	farDue := storageAt("2025-12-01T09:00:00+07:00")
	if _, err := r.CreateTask(ctx, repo.CreateTaskOptions{
		UserID: "u1", ChatID: 100, Content: "Họp team", DueAt: farDue, Reminders: reminderPair(farDue),
	}); err != nil {
		t.Fatalf("create future: %v", err)
	}

	t.Run("only 30m reminder fires before due", func(t *testing.T) {
		now := storageAt("2025-09-06T23:05:00+07:00")
		got, err := r.DueReminders(ctx, now)
		if err != nil {
			t.Fatalf("due: %v", err)
		}
		if len(got) != 1 || got[0].Kind != model.ReminderKind30Minutes {
			t.Fatalf("got %+v, want one 30_minutes reminder", got)
		}
		if got[0].ChatID != 100 || got[0].Content != "Đi ngủ" || got[0].TaskID != created.TaskID {
			t.Errorf("wrong join payload: %+v", got[0])
		}
	})

	t.Run("both fire at due, ordered by fire time", func(t *testing.T) {
		now := storageAt("2025-09-06T23:30:00+07:00")
		got, err := r.DueReminders(ctx, now)
		if err != nil {
			t.Fatalf("due: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %d reminders, want 2", len(got))
		}
		if got[0].Kind != model.ReminderKind30Minutes || got[1].Kind != model.ReminderKindExactTime {
			t.Errorf("wrong order: %+v", got)
		}
	})

	t.Run("mark sent is exactly once", func(t *testing.T) {
		now := storageAt("2025-09-06T23:30:00+07:00")
		got, _ := r.DueReminders(ctx, now)
		marked, err := r.MarkReminderSent(ctx, got[0].ReminderID)
		if err != nil || !marked {
			t.Fatalf("first mark = %v, %v; want true, nil", marked, err)
		}
		again, err := r.MarkReminderSent(ctx, got[0].ReminderID)
		if err != nil || again {
			t.Fatalf("second mark = %v, %v; want false, nil", again, err)
		}

		left, err := r.DueReminders(ctx, now)
		if err != nil {
			t.Fatalf("due: %v", err)
		}
		if len(left) != 1 {
			t.Errorf("got %d unsent reminders, want 1", len(left))
		}
	})

	t.Run("completed task stops firing", func(t *testing.T) {
		if _, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{
			UserID: "u1", TaskID: created.TaskID, Status: model.TaskStatusCompleted,
		}); err != nil {
			t.Fatalf("complete: %v", err)
		}
		got, err := r.DueReminders(ctx, storageAt("2025-09-06T23:30:00+07:00"))
		if err != nil {
			t.Fatalf("due: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("completed task still fires: %+v", got)
		}
	})
}
