package usecase

import (
	"context"
	"strings"

	"task-reminder-bot/internal/model"
	"task-reminder-bot/internal/task"
	repo "task-reminder-bot/internal/task/repository"
	"task-reminder-bot/pkg/clock"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// List returns one page of the user's tasks, grouped by local calendar day.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	now := uc.now()
	opt, err := uc.buildListOptions(sc, input, now)
	if err != nil {
		return task.ListOutput{}, err
	}
	opt.Limit = limit
	opt.Offset = (page - 1) * limit

	tasks, total, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Days:  groupByDay(tasks, now),
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// buildListOptions maps a listing filter onto repository query options.
// Day filters are half-open local-day windows converted to storage form.
func (uc *implUseCase) buildListOptions(sc model.Scope, input task.ListInput, now clock.LocalTime) (repo.ListTasksOptions, error) {
	opt := repo.ListTasksOptions{UserID: sc.UserID}

	switch input.Filter {
	case task.FilterAll, "":
	case task.FilterPending:
		opt.Status = model.TaskStatusPending
	case task.FilterCompleted:
		opt.Status = model.TaskStatusCompleted
	case task.FilterOverdue:
		opt.Status = model.TaskStatusPending
		opt.DueTo = clock.ToStorage(now)
	case task.FilterToday:
		start := now.StartOfDay()
		opt.DueFrom = clock.ToStorage(start)
		opt.DueTo = clock.ToStorage(start.AddDate(0, 0, 1))
	case task.FilterTomorrow:
		start := now.StartOfDay().AddDate(0, 0, 1)
		opt.DueFrom = clock.ToStorage(start)
		opt.DueTo = clock.ToStorage(start.AddDate(0, 0, 1))
	case task.FilterDate:
		if input.Date.IsZero() {
			return repo.ListTasksOptions{}, task.ErrInvalidDate
		}
		start := input.Date.StartOfDay()
		opt.DueFrom = clock.ToStorage(start)
		opt.DueTo = clock.ToStorage(start.AddDate(0, 0, 1))
	case task.FilterSearch:
		if strings.TrimSpace(input.Search) == "" {
			return repo.ListTasksOptions{}, task.ErrEmptyInput
		}
		opt.Search = strings.TrimSpace(input.Search)
	default:
		return repo.ListTasksOptions{}, task.ErrEmptyInput
	}
	return opt, nil
}
