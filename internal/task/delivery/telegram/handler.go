package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"task-reminder-bot/internal/model"
	"task-reminder-bot/internal/task"
	"task-reminder-bot/pkg/clock"
	pkgLog "task-reminder-bot/pkg/log"
	pkgResponse "task-reminder-bot/pkg/response"
	pkgTelegram "task-reminder-bot/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  task.UseCase
	bot Sender
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine; Telegram expects an answer within a few seconds and
// re-delivers the update otherwise.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.From == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgInternalError)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage dispatches a single Telegram message. Plain text without a
// leading slash is treated as task creation.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
		ChatID:   msg.Chat.ID,
	}

	cmd, args := splitCommand(text)
	switch cmd {
	case "/start":
		return h.bot.SendMessageWithMode(ctx, sc.ChatID, msgWelcome, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(ctx, sc.ChatID, msgHelp, "Markdown")
	case "/instruct":
		return h.bot.SendMessageWithMode(ctx, sc.ChatID, msgInstruct, "Markdown")
	case "/add":
		if args == "" {
			return h.bot.SendMessage(ctx, sc.ChatID, msgAddUsage)
		}
		return h.handleCreate(ctx, sc, args)
	case "/list":
		return h.handleList(ctx, sc, task.ListInput{Filter: task.FilterAll, Page: parsePage(args)}, titleAll)
	case "/pending":
		return h.handleList(ctx, sc, task.ListInput{Filter: task.FilterPending, Page: parsePage(args)}, titlePending)
	case "/done":
		return h.handleList(ctx, sc, task.ListInput{Filter: task.FilterCompleted, Page: parsePage(args)}, titleCompleted)
	case "/overdue":
		return h.handleList(ctx, sc, task.ListInput{Filter: task.FilterOverdue, Page: parsePage(args)}, titleOverdue)
	case "/today":
		return h.handleList(ctx, sc, task.ListInput{Filter: task.FilterToday, Page: parsePage(args)}, titleToday)
	case "/tomorrow":
		return h.handleList(ctx, sc, task.ListInput{Filter: task.FilterTomorrow, Page: parsePage(args)}, titleTomorrow)
	case "/date":
		date, ok := parseDateArg(args)
		if !ok {
			return h.bot.SendMessage(ctx, sc.ChatID, msgDateUsage)
		}
		title := fmt.Sprintf(titleDate, date.Format(dateLayout))
		return h.handleList(ctx, sc, task.ListInput{Filter: task.FilterDate, Date: date}, title)
	case "/search":
		if args == "" {
			return h.bot.SendMessage(ctx, sc.ChatID, msgSearchUsage)
		}
		title := fmt.Sprintf(titleSearch, args)
		return h.handleList(ctx, sc, task.ListInput{Filter: task.FilterSearch, Search: args}, title)
	case "/update":
		return h.handleUpdateContent(ctx, sc, args)
	case "/deadline":
		return h.handleUpdateDeadline(ctx, sc, args)
	case "/complete":
		return h.handleComplete(ctx, sc, args)
	case "/delete":
		return h.handleDelete(ctx, sc, args)
	}

	if strings.HasPrefix(cmd, "/") {
		return h.bot.SendMessage(ctx, sc.ChatID, msgUnknownCommand)
	}
	return h.handleCreate(ctx, sc, text)
}

func (h *handler) handleCreate(ctx context.Context, sc model.Scope, text string) error {
	out, err := h.uc.Create(ctx, sc, task.CreateInput{RawText: text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Create failed: %v", err)
		return h.bot.SendMessage(ctx, sc.ChatID, userMessage(err))
	}
	return h.bot.SendMessage(ctx, sc.ChatID, formatCreateReply(out))
}

func (h *handler) handleList(ctx context.Context, sc model.Scope, input task.ListInput, title string) error {
	out, err := h.uc.List(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: List failed: %v", err)
		return h.bot.SendMessage(ctx, sc.ChatID, userMessage(err))
	}
	return h.bot.SendMessage(ctx, sc.ChatID, formatList(title, out, clock.Now()))
}

func (h *handler) handleUpdateContent(ctx context.Context, sc model.Scope, args string) error {
	taskID, rest, ok := parseTaskID(args)
	if !ok || rest == "" {
		return h.bot.SendMessage(ctx, sc.ChatID, msgUpdateUsage)
	}
	out, err := h.uc.Update(ctx, sc, task.UpdateInput{TaskID: taskID, Content: rest})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Update failed: %v", err)
		return h.bot.SendMessage(ctx, sc.ChatID, userMessage(err))
	}
	return h.bot.SendMessage(ctx, sc.ChatID, formatUpdateReply(out))
}

func (h *handler) handleUpdateDeadline(ctx context.Context, sc model.Scope, args string) error {
	taskID, rest, ok := parseTaskID(args)
	if !ok || rest == "" {
		return h.bot.SendMessage(ctx, sc.ChatID, msgDeadlineUsage)
	}
	out, err := h.uc.Update(ctx, sc, task.UpdateInput{TaskID: taskID, Deadline: rest})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Update deadline failed: %v", err)
		return h.bot.SendMessage(ctx, sc.ChatID, userMessage(err))
	}
	return h.bot.SendMessage(ctx, sc.ChatID, formatUpdateReply(out))
}

func (h *handler) handleComplete(ctx context.Context, sc model.Scope, args string) error {
	taskID, _, ok := parseTaskID(args)
	if !ok {
		return h.bot.SendMessage(ctx, sc.ChatID, msgCompleteUsage)
	}
	done, err := h.uc.Complete(ctx, sc, taskID)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Complete failed: %v", err)
		return h.bot.SendMessage(ctx, sc.ChatID, userMessage(err))
	}
	return h.bot.SendMessage(ctx, sc.ChatID, formatCompleteReply(done))
}

func (h *handler) handleDelete(ctx context.Context, sc model.Scope, args string) error {
	taskID, _, ok := parseTaskID(args)
	if !ok {
		return h.bot.SendMessage(ctx, sc.ChatID, msgDeleteUsage)
	}
	if err := h.uc.Delete(ctx, sc, taskID); err != nil {
		h.l.Errorf(ctx, "telegram handler: Delete failed: %v", err)
		return h.bot.SendMessage(ctx, sc.ChatID, userMessage(err))
	}
	return h.bot.SendMessage(ctx, sc.ChatID, fmt.Sprintf(msgDeleted, taskID))
}

// splitCommand separates a leading /command from its arguments. The optional
// @botname suffix Telegram appends in groups is dropped.
func splitCommand(text string) (string, string) {
	if !strings.HasPrefix(text, "/") {
		return text, ""
	}
	cmd := text
	args := ""
	if i := strings.IndexAny(text, " \n"); i >= 0 {
		cmd, args = text[:i], strings.TrimSpace(text[i+1:])
	}
	if i := strings.Index(cmd, "@"); i >= 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd), args
}

// parseTaskID reads a leading numeric id (with optional # prefix) and returns
// the remainder of the arguments.
func parseTaskID(args string) (int64, string, bool) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 0, "", false
	}
	raw := strings.TrimPrefix(fields[0], "#")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, "", false
	}
	rest := strings.TrimSpace(strings.TrimPrefix(args, fields[0]))
	return id, rest, true
}

// parsePage reads an optional page number argument; anything invalid means
// the first page.
func parsePage(args string) int {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 1
	}
	page, err := strconv.Atoi(fields[0])
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// parseDateArg accepts dd-mm-yyyy and dd/mm/yyyy.
func parseDateArg(args string) (clock.LocalTime, bool) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return clock.LocalTime{}, false
	}
	for _, layout := range []string{"02-01-2006", "2-1-2006", "02/01/2006", "2/1/2006"} {
		if t, err := time.ParseInLocation(layout, fields[0], clock.Vietnam); err == nil {
			return clock.NewLocal(t), true
		}
	}
	return clock.LocalTime{}, false
}
