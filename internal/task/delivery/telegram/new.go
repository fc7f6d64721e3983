package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-reminder-bot/internal/task"
	pkgLog "task-reminder-bot/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender is the part of the Telegram client the handler uses.
// Use interface for better testability.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMode(ctx context.Context, chatID int64, text, parseMode string) error
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc task.UseCase, bot Sender) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
