package usecase

import (
	"context"

	"task-reminder-bot/internal/task/repository"
	"task-reminder-bot/pkg/clock"
	"task-reminder-bot/pkg/gcalendar"
	pkgLog "task-reminder-bot/pkg/log"
	"task-reminder-bot/pkg/vntime"
)

// Calendar mirrors the one gcalendar call the usecase makes, so tests can
// substitute it. A nil Calendar disables the integration entirely.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	resolver *vntime.Parser
	calendar Calendar
	now      func() clock.LocalTime
}

// New creates a new task UseCase instance. calendar may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	resolver *vntime.Parser,
	calendar Calendar,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		resolver: resolver,
		calendar: calendar,
		now:      clock.Now,
	}
}
