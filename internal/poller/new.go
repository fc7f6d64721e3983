package poller

import (
	"context"

	"github.com/robfig/cron/v3"

	"task-reminder-bot/internal/task"
	pkgLog "task-reminder-bot/pkg/log"
)

// Sender is the part of the Telegram client the poller uses.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Poller drives reminder delivery on a cron schedule.
type Poller struct {
	l    pkgLog.Logger
	uc   task.UseCase
	bot  Sender
	cron *cron.Cron
	spec string
}

// New creates a reminder poller. spec is a standard five-field cron
// expression; every minute when empty.
func New(l pkgLog.Logger, uc task.UseCase, bot Sender, spec string) *Poller {
	if spec == "" {
		spec = "* * * * *"
	}
	return &Poller{
		l:    l,
		uc:   uc,
		bot:  bot,
		cron: cron.New(),
		spec: spec,
	}
}

// Start schedules the poll loop. It returns after scheduling; delivery runs
// on the cron goroutine.
func (p *Poller) Start() error {
	if _, err := p.cron.AddFunc(p.spec, func() {
		p.Run(context.Background())
	}); err != nil {
		return err
	}
	p.cron.Start()
	p.l.Infof(context.Background(), "poller: started with schedule %q", p.spec)
	return nil
}

// Stop halts the schedule and waits for an in-flight run to finish.
func (p *Poller) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
	p.l.Info(context.Background(), "poller: stopped")
}
