package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"task-reminder-bot/internal/middleware"
	tgDelivery "task-reminder-bot/internal/task/delivery/telegram"
	"task-reminder-bot/pkg/log"
)

// ReminderRunner runs one reminder delivery pass and reports how many
// notifications went out. Satisfied by the poller.
type ReminderRunner interface {
	Run(ctx context.Context) int
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Task domain
	telegramHandler tgDelivery.Handler
	reminderRunner  ReminderRunner
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Task domain
	TelegramHandler tgDelivery.Handler
	ReminderRunner  ReminderRunner
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		telegramHandler: cfg.TelegramHandler,
		reminderRunner:  cfg.ReminderRunner,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.telegramHandler == nil {
		return errors.New("telegram handler is required")
	}
	return nil
}
