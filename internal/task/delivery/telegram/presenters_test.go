package telegram

import (
	"strings"
	"testing"
	"time"

	"task-reminder-bot/internal/model"
	"task-reminder-bot/internal/task"
	"task-reminder-bot/pkg/clock"
)

func localAt(s string) clock.LocalTime {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return clock.NewLocal(t)
}

func view(id int64, content, due string, state model.TaskState) task.TaskView {
	return task.TaskView{
		Task:  model.Task{TaskID: id, Content: content, DueAt: clock.ToStorage(localAt(due))},
		State: state,
	}
}

func TestFormatList(t *testing.T) {
	now := localAt("2025-09-07T12:00:00+07:00")

	t.Run("empty", func(t *testing.T) {
		got := formatList(titleAll, task.ListOutput{Page: 1, Limit: 10}, now)
		if got != msgEmptyList {
			t.Errorf("got %q", got)
		}
	})

	t.Run("grouped with labels and overdue marker", func(t *testing.T) {
		out := task.ListOutput{
			Days: []task.DayGroup{
				{
					Date: localAt("2025-09-07T00:00:00+07:00"),
					Tasks: []task.TaskView{
						view(1, "Họp team", "2025-09-07T10:30:00+07:00", model.StatePendingOverdue),
						view(2, "Nộp báo cáo", "2025-09-07T17:00:00+07:00", model.StatePendingFuture),
						view(3, "Tập thể dục", "2025-09-07T06:00:00+07:00", model.StateCompleted),
					},
				},
				{
					Date: localAt("2025-09-08T00:00:00+07:00"),
					Tasks: []task.TaskView{
						view(4, "Đi chợ", "2025-09-08T09:00:00+07:00", model.StatePendingFuture),
					},
				},
			},
			Total: 4,
			Page:  1,
			Limit: 10,
		}

		got := formatList(titleAll, out, now)

		for _, want := range []string{
			"📋 Tất cả công việc (4 công việc)",
			"📅 Hôm nay (07-09-2025)",
			"⚠️ #1 Họp team (10:30) QUÁ HẠN",
			"⏳ #2 Nộp báo cáo (17:00)",
			"✅ #3 Tập thể dục (06:00)",
			"📅 Ngày mai (08-09-2025)",
			"⏳ #4 Đi chợ (09:00)",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("missing %q in:\n%s", want, got)
			}
		}
		if strings.Contains(got, "Trang") {
			t.Errorf("single page should have no pagination footer:\n%s", got)
		}

		// Overdue line comes before the pending one.
		if strings.Index(got, "#1") > strings.Index(got, "#2") {
			t.Errorf("overdue not listed first:\n%s", got)
		}
	})

	t.Run("pagination footer", func(t *testing.T) {
		out := task.ListOutput{
			Days: []task.DayGroup{{
				Date:  localAt("2025-09-07T00:00:00+07:00"),
				Tasks: []task.TaskView{view(1, "Họp team", "2025-09-07T10:30:00+07:00", model.StatePendingFuture)},
			}},
			Total: 25,
			Page:  2,
			Limit: 10,
		}
		got := formatList(titleAll, out, now)
		if !strings.Contains(got, "Trang 2/3") {
			t.Errorf("missing pagination footer:\n%s", got)
		}
	})

	t.Run("distant day gets bare date", func(t *testing.T) {
		out := task.ListOutput{
			Days: []task.DayGroup{{
				Date:  localAt("2025-12-01T00:00:00+07:00"),
				Tasks: []task.TaskView{view(1, "Họp team", "2025-12-01T10:30:00+07:00", model.StatePendingFuture)},
			}},
			Total: 1, Page: 1, Limit: 10,
		}
		got := formatList(titleAll, out, now)
		if !strings.Contains(got, "📅 01-12-2025") || strings.Contains(got, "Hôm nay") {
			t.Errorf("unexpected label:\n%s", got)
		}
	})
}

func TestFormatCreateReply(t *testing.T) {
	out := task.CreateOutput{
		Task: model.Task{
			TaskID:  3,
			Content: "Đi ngủ",
			DueAt:   clock.ToStorage(localAt("2025-09-06T23:30:00+07:00")),
		},
	}

	got := formatCreateReply(out)
	for _, want := range []string{
		"✅ Đã tạo công việc #3",
		"📌 Đi ngủ",
		"⏰ 23:30 06-09-2025",
		"🔔 Sẽ nhắc trước 30 phút và đúng giờ.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "📅") {
		t.Errorf("calendar line present without link:\n%s", got)
	}

	out.CalendarLink = "https://calendar.example/ev1"
	if got := formatCreateReply(out); !strings.Contains(got, "📅 https://calendar.example/ev1") {
		t.Errorf("missing calendar link:\n%s", got)
	}
}

func TestDayLabel(t *testing.T) {
	now := localAt("2025-09-07T12:00:00+07:00")

	tests := []struct {
		date string
		want string
	}{
		{"2025-09-07T00:00:00+07:00", "Hôm nay (07-09-2025)"},
		{"2025-09-08T00:00:00+07:00", "Ngày mai (08-09-2025)"},
		{"2025-09-06T00:00:00+07:00", "Hôm qua (06-09-2025)"},
		{"2025-09-10T00:00:00+07:00", "10-09-2025"},
	}
	for _, tt := range tests {
		if got := dayLabel(localAt(tt.date), now); got != tt.want {
			t.Errorf("dayLabel(%s) = %q, want %q", tt.date, got, tt.want)
		}
	}
}
