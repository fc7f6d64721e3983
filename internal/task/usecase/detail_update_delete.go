package usecase

import (
	"context"
	"strings"

	"task-reminder-bot/internal/model"
	"task-reminder-bot/internal/task"
	repo "task-reminder-bot/internal/task/repository"
	"task-reminder-bot/pkg/clock"
	"task-reminder-bot/pkg/vntime"
)

// Detail returns a single task by its per-user id.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, taskID int64) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, sc.UserID, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetTask: %v", err)
		return model.Task{}, err
	}
	if t.TaskID == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Update changes the content and/or deadline of a task. A new deadline
// regenerates the reminder pair and reopens the task; a completed task that
// gets rescheduled is pending again.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	content := strings.TrimSpace(input.Content)
	deadline := strings.TrimSpace(input.Deadline)
	if content == "" && deadline == "" {
		return task.UpdateOutput{}, task.ErrNothingToUpdate
	}

	existing, err := uc.repo.GetTask(ctx, sc.UserID, input.TaskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if existing.TaskID == 0 {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	opt := repo.UpdateTaskOptions{
		UserID:  sc.UserID,
		TaskID:  input.TaskID,
		Content: content,
	}

	deadlineChanged := false
	if deadline != "" {
		res, err := uc.resolver.ResolveTask(deadline, uc.now().Time())
		if err != nil || res.Rule == vntime.RuleDefault {
			// The one-hour default means nothing in the text parsed as a
			// time, which for an explicit deadline is a user error.
			return task.UpdateOutput{}, task.ErrInvalidDeadline
		}
		due := clock.ToStorage(clock.NewLocal(res.DueAt))
		opt.DueAt = due
		opt.Status = model.TaskStatusPending
		opt.Reminders = buildReminders(due)
		deadlineChanged = true
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if updated.TaskID == 0 {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}
	return task.UpdateOutput{Task: updated, DeadlineChanged: deadlineChanged}, nil
}

// Complete marks a task as completed. Completing twice is harmless.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, taskID int64) (model.Task, error) {
	existing, err := uc.repo.GetTask(ctx, sc.UserID, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete GetTask: %v", err)
		return model.Task{}, err
	}
	if existing.TaskID == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		UserID: sc.UserID,
		TaskID: taskID,
		Status: model.TaskStatusCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete UpdateTask: %v", err)
		return model.Task{}, err
	}
	if updated.TaskID == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}
	return updated, nil
}

// Delete removes a task and its reminders.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, taskID int64) error {
	existing, err := uc.repo.GetTask(ctx, sc.UserID, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetTask: %v", err)
		return err
	}
	if existing.TaskID == 0 {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.DeleteTask(ctx, sc.UserID, taskID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
