package telegram

import (
	"errors"

	"task-reminder-bot/internal/task"
)

const msgInternalError = "Có lỗi xảy ra khi xử lý yêu cầu của bạn. Vui lòng thử lại."

// userMessage maps a domain error to a Vietnamese reply.
func userMessage(err error) string {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return "⚠️ Nội dung công việc trống. Hãy mô tả công việc cần nhắc."
	case errors.Is(err, task.ErrTaskNotFound):
		return "❌ Không tìm thấy công việc với ID này. Dùng /list để xem danh sách."
	case errors.Is(err, task.ErrNothingToUpdate):
		return "⚠️ Không có gì để cập nhật. Hãy nhập nội dung hoặc thời hạn mới."
	case errors.Is(err, task.ErrInvalidDeadline):
		return "❌ Không hiểu thời hạn mới. Ví dụ: ngày mai 9h, sau 30 phút."
	case errors.Is(err, task.ErrInvalidDate):
		return "❌ Ngày không hợp lệ. Định dạng: dd-mm-yyyy."
	default:
		return msgInternalError
	}
}
