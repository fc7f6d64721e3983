package telegram

import (
	"fmt"
	"strings"

	"task-reminder-bot/internal/model"
	"task-reminder-bot/internal/task"
	"task-reminder-bot/pkg/clock"
)

const (
	dateLayout     = "02-01-2006"
	dateTimeLayout = "15:04 02-01-2006"
)

const (
	msgWelcome = "👋 Chào mừng đến với *Task Reminder Bot*!\n\n" +
		"Gửi cho tôi một công việc bằng tiếng Việt tự nhiên và tôi sẽ:\n" +
		"• 📝 Ghi nhớ công việc\n" +
		"• ⏰ Nhắc bạn trước 30 phút và đúng giờ\n\n" +
		"_Ví dụ: \"nhắc tôi họp team lúc 10:30 ngày mai\"_\n\n" +
		"Gõ /help để xem danh sách lệnh."

	msgHelp = "*Danh sách lệnh:*\n\n" +
		"/add <công việc> - tạo công việc mới\n" +
		"/list [trang] - tất cả công việc\n" +
		"/pending - công việc đang chờ\n" +
		"/done - công việc đã hoàn thành\n" +
		"/overdue - công việc quá hạn\n" +
		"/today - công việc hôm nay\n" +
		"/tomorrow - công việc ngày mai\n" +
		"/date <dd-mm-yyyy> - công việc theo ngày\n" +
		"/search <từ khóa> - tìm kiếm\n" +
		"/update <id> <nội dung mới> - sửa nội dung\n" +
		"/deadline <id> <thời gian mới> - dời hạn\n" +
		"/complete <id> - đánh dấu hoàn thành\n" +
		"/delete <id> - xóa công việc\n" +
		"/instruct - hướng dẫn chi tiết"

	msgInstruct = "*Cách ghi thời gian:*\n\n" +
		"• `23:30 ngày 06-09-2025` - giờ và ngày cụ thể\n" +
		"• `15 giờ` hoặc `15h30` - giờ hôm nay (đã qua thì chuyển sang mai)\n" +
		"• `ngày mai 9h` - giờ của ngày mai\n" +
		"• `sáng mai`, `trưa nay`, `chiều mai`, `tối nay` - buổi trong ngày\n" +
		"• `sau 30 phút`, `45 phút nữa` - tính từ bây giờ\n\n" +
		"Không ghi thời gian thì mặc định nhắc sau 1 giờ.\n\n" +
		"_Buổi trong ngày: sáng 07:00, trưa 12:00, chiều 15:00, tối 19:00._"

	msgAddUsage      = "Cách dùng: /add <công việc>\nVí dụ: /add họp team lúc 10:30 ngày mai"
	msgDateUsage     = "Cách dùng: /date <dd-mm-yyyy>\nVí dụ: /date 06-09-2025"
	msgSearchUsage   = "Cách dùng: /search <từ khóa>\nVí dụ: /search báo cáo"
	msgUpdateUsage   = "Cách dùng: /update <id> <nội dung mới>\nVí dụ: /update 3 họp team marketing"
	msgDeadlineUsage = "Cách dùng: /deadline <id> <thời gian mới>\nVí dụ: /deadline 3 ngày mai 9h"
	msgCompleteUsage = "Cách dùng: /complete <id>\nVí dụ: /complete 3"
	msgDeleteUsage   = "Cách dùng: /delete <id>\nVí dụ: /delete 3"

	msgUnknownCommand = "Lệnh không hợp lệ. Gõ /help để xem danh sách lệnh."
	msgDeleted        = "🗑 Đã xóa công việc #%d."
	msgEmptyList      = "📭 Không có công việc nào."
)

const (
	titleAll       = "📋 Tất cả công việc"
	titlePending   = "⏳ Công việc đang chờ"
	titleCompleted = "✅ Công việc đã hoàn thành"
	titleOverdue   = "⚠️ Công việc quá hạn"
	titleToday     = "📅 Công việc hôm nay"
	titleTomorrow  = "📅 Công việc ngày mai"
	titleDate      = "📅 Công việc ngày %s"
	titleSearch    = "🔍 Kết quả cho \"%s\""
)

// stateIcon maps a derived task state to its display icon.
func stateIcon(s model.TaskState) string {
	switch s {
	case model.StatePendingOverdue:
		return "⚠️"
	case model.StateCompleted:
		return "✅"
	default:
		return "⏳"
	}
}

// formatTaskLine renders one task row inside a day group.
func formatTaskLine(v task.TaskView) string {
	line := fmt.Sprintf("%s #%d %s (%s)",
		stateIcon(v.State), v.Task.TaskID, v.Task.Content,
		clock.ToLocal(v.Task.DueAt).Format("15:04"))
	if v.State == model.StatePendingOverdue {
		line += " QUÁ HẠN"
	}
	return line
}

// dayLabel names a local day relative to now; distant days get the bare date.
func dayLabel(date, now clock.LocalTime) string {
	today := now.StartOfDay()
	switch date.DayKey() {
	case today.DayKey():
		return fmt.Sprintf("Hôm nay (%s)", date.Format(dateLayout))
	case today.AddDate(0, 0, 1).DayKey():
		return fmt.Sprintf("Ngày mai (%s)", date.Format(dateLayout))
	case today.AddDate(0, 0, -1).DayKey():
		return fmt.Sprintf("Hôm qua (%s)", date.Format(dateLayout))
	default:
		return date.Format(dateLayout)
	}
}

// formatList renders a grouped listing reply.
func formatList(title string, out task.ListOutput, now clock.LocalTime) string {
	if out.Total == 0 {
		return msgEmptyList
	}

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString(fmt.Sprintf(" (%d công việc)\n", out.Total))

	for _, day := range out.Days {
		sb.WriteString(fmt.Sprintf("\n📅 %s\n", dayLabel(day.Date, now)))
		for _, v := range day.Tasks {
			sb.WriteString(formatTaskLine(v))
			sb.WriteString("\n")
		}
	}

	if pages := (out.Total + out.Limit - 1) / out.Limit; pages > 1 {
		sb.WriteString(fmt.Sprintf("\n📄 Trang %d/%d. Xem trang khác: /list <trang>", out.Page, pages))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatCreateReply renders the confirmation after creating a task.
func formatCreateReply(out task.CreateOutput) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("✅ Đã tạo công việc #%d\n", out.Task.TaskID))
	sb.WriteString(fmt.Sprintf("📌 %s\n", out.Task.Content))
	sb.WriteString(fmt.Sprintf("⏰ %s\n", clock.ToLocal(out.Task.DueAt).Format(dateTimeLayout)))
	sb.WriteString("🔔 Sẽ nhắc trước 30 phút và đúng giờ.")
	if out.CalendarLink != "" {
		sb.WriteString(fmt.Sprintf("\n📅 %s", out.CalendarLink))
	}
	return sb.String()
}

// formatUpdateReply renders the confirmation after an update.
func formatUpdateReply(out task.UpdateOutput) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("✏️ Đã cập nhật công việc #%d\n", out.Task.TaskID))
	sb.WriteString(fmt.Sprintf("📌 %s\n", out.Task.Content))
	sb.WriteString(fmt.Sprintf("⏰ %s", clock.ToLocal(out.Task.DueAt).Format(dateTimeLayout)))
	if out.DeadlineChanged {
		sb.WriteString("\n🔔 Đã đặt lại nhắc nhở cho hạn mới.")
	}
	return sb.String()
}

// formatCompleteReply renders the confirmation after completing a task.
func formatCompleteReply(t model.Task) string {
	return fmt.Sprintf("🎉 Đã hoàn thành công việc #%d\n📌 %s", t.TaskID, t.Content)
}
