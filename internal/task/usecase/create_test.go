package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-reminder-bot/internal/model"
	"task-reminder-bot/internal/task"
	repo "task-reminder-bot/internal/task/repository"
	"task-reminder-bot/pkg/clock"
	"task-reminder-bot/pkg/gcalendar"
	"task-reminder-bot/pkg/vntime"
)

func newTestUseCase(r *mockRepository, cal Calendar, now clock.LocalTime) *implUseCase {
	uc := New(&mockLogger{}, r, vntime.NewParser(clock.Vietnam), cal)
	uc.now = func() clock.LocalTime { return now }
	return uc
}

func TestCreate(t *testing.T) {
	sc := model.Scope{UserID: "telegram_42", ChatID: 42}

	t.Run("absolute datetime end to end", func(t *testing.T) {
		now := localAt("2025-09-01T22:00:00+07:00")
		var captured repo.CreateTaskOptions
		r := &mockRepository{
			createTask: func(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
				captured = opt
				return model.Task{TaskID: 1, UserID: opt.UserID, ChatID: opt.ChatID, Content: opt.Content, DueAt: opt.DueAt, Status: model.TaskStatusPending, Reminders: opt.Reminders}, nil
			},
		}
		uc := newTestUseCase(r, nil, now)

		out, err := uc.Create(context.Background(), sc, task.CreateInput{RawText: "nhắc tôi đi ngủ lúc 23:30 ngày 06-09-2025"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if out.Task.Content != "Đi ngủ" {
			t.Errorf("content = %q, want %q", out.Task.Content, "Đi ngủ")
		}

		wantDue := clock.ToStorage(localAt("2025-09-06T23:30:00+07:00"))
		if !captured.DueAt.Equal(wantDue) {
			t.Errorf("due = %v, want %v", captured.DueAt.Time(), wantDue.Time())
		}
		if captured.UserID != "telegram_42" || captured.ChatID != 42 {
			t.Errorf("scope not propagated: %+v", captured)
		}
		if len(captured.Reminders) != 2 {
			t.Fatalf("got %d reminders, want 2", len(captured.Reminders))
		}
		wantEarly := clock.FromUnixNano(wantDue.UnixNano() - int64(30*time.Minute))
		if !captured.Reminders[0].FiresAt.Equal(wantEarly) || captured.Reminders[0].Kind != model.ReminderKind30Minutes {
			t.Errorf("early reminder = %+v", captured.Reminders[0])
		}
		if !captured.Reminders[1].FiresAt.Equal(wantDue) || captured.Reminders[1].Kind != model.ReminderKindExactTime {
			t.Errorf("exact reminder = %+v", captured.Reminders[1])
		}
	})

	t.Run("relative offset", func(t *testing.T) {
		now := localAt("2025-09-01T10:00:00+07:00")
		var captured repo.CreateTaskOptions
		r := &mockRepository{
			createTask: func(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
				captured = opt
				return model.Task{TaskID: 1, Content: opt.Content, DueAt: opt.DueAt}, nil
			},
		}
		uc := newTestUseCase(r, nil, now)

		out, err := uc.Create(context.Background(), sc, task.CreateInput{RawText: "họp team sau 30 phút"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if out.Task.Content != "Họp team" {
			t.Errorf("content = %q, want %q", out.Task.Content, "Họp team")
		}
		wantDue := clock.ToStorage(localAt("2025-09-01T10:30:00+07:00"))
		if !captured.DueAt.Equal(wantDue) {
			t.Errorf("due = %v, want %v", captured.DueAt.Time(), wantDue.Time())
		}
	})

	t.Run("no time falls back to one hour", func(t *testing.T) {
		now := localAt("2025-09-01T10:00:00+07:00")
		var captured repo.CreateTaskOptions
		r := &mockRepository{
			createTask: func(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
				captured = opt
				return model.Task{TaskID: 1, Content: opt.Content, DueAt: opt.DueAt}, nil
			},
		}
		uc := newTestUseCase(r, nil, now)

		out, err := uc.Create(context.Background(), sc, task.CreateInput{RawText: "dọn dẹp nhà cửa"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if out.Task.Content != "Dọn dẹp nhà cửa" {
			t.Errorf("content = %q", out.Task.Content)
		}
		wantDue := clock.ToStorage(now.Add(time.Hour))
		if !captured.DueAt.Equal(wantDue) {
			t.Errorf("due = %v, want %v", captured.DueAt.Time(), wantDue.Time())
		}
	})

	t.Run("empty input", func(t *testing.T) {
		uc := newTestUseCase(&mockRepository{}, nil, localAt("2025-09-01T10:00:00+07:00"))
		if _, err := uc.Create(context.Background(), sc, task.CreateInput{RawText: "   "}); !errors.Is(err, task.ErrEmptyInput) {
			t.Errorf("err = %v, want ErrEmptyInput", err)
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		r := &mockRepository{
			createTask: func(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
				return model.Task{}, repo.ErrFailedToInsert
			},
		}
		uc := newTestUseCase(r, nil, localAt("2025-09-01T10:00:00+07:00"))
		if _, err := uc.Create(context.Background(), sc, task.CreateInput{RawText: "họp team sau 30 phút"}); !errors.Is(err, repo.ErrFailedToInsert) {
			t.Errorf("err = %v, want ErrFailedToInsert", err)
		}
	})

	t.Run("calendar link attached", func(t *testing.T) {
		r := &mockRepository{
			createTask: func(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
				return model.Task{TaskID: 1, Content: opt.Content, DueAt: opt.DueAt}, nil
			},
		}
		cal := &mockCalendar{
			createEvent: func(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
				if req.EndTime.Sub(req.StartTime) != time.Hour {
					t.Errorf("event duration = %v, want 1h", req.EndTime.Sub(req.StartTime))
				}
				return &gcalendar.Event{ID: "ev1", HtmlLink: "https://calendar.example/ev1"}, nil
			},
		}
		uc := newTestUseCase(r, cal, localAt("2025-09-01T10:00:00+07:00"))

		out, err := uc.Create(context.Background(), sc, task.CreateInput{RawText: "họp team sau 30 phút"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if out.CalendarLink != "https://calendar.example/ev1" {
			t.Errorf("calendar link = %q", out.CalendarLink)
		}
	})

	t.Run("calendar failure does not fail create", func(t *testing.T) {
		r := &mockRepository{
			createTask: func(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
				return model.Task{TaskID: 1, Content: opt.Content, DueAt: opt.DueAt}, nil
			},
		}
		cal := &mockCalendar{
			createEvent: func(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
				return nil, errors.New("calendar down")
			},
		}
		uc := newTestUseCase(r, cal, localAt("2025-09-01T10:00:00+07:00"))

		out, err := uc.Create(context.Background(), sc, task.CreateInput{RawText: "họp team sau 30 phút"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if out.CalendarLink != "" {
			t.Errorf("calendar link = %q, want empty", out.CalendarLink)
		}
	})
}
