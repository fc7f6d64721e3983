package sqlite

import (
	"strings"

	repo "task-reminder-bot/internal/task/repository"
	"task-reminder-bot/pkg/clock"
)

// buildFilterConditions builds the WHERE conditions shared by count and list.
// All non-zero fields are applied as AND conditions.
func buildFilterConditions(opt repo.ListTasksOptions) ([]string, []any) {
	var conditions []string
	var args []any

	if opt.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.UserID)
	}
	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, opt.Status)
	}
	if !opt.DueFrom.IsZero() {
		conditions = append(conditions, "due_at >= ?")
		args = append(args, opt.DueFrom.UnixNano())
	}
	if !opt.DueTo.IsZero() {
		conditions = append(conditions, "due_at < ?")
		args = append(args, opt.DueTo.UnixNano())
	}
	if opt.Search != "" {
		conditions = append(conditions, "content LIKE ?")
		args = append(args, "%"+opt.Search+"%")
	}
	return conditions, args
}

// buildCountQuery builds WHERE clause + args for counting tasks (no pagination).
func buildCountQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions, args := buildFilterConditions(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	conditions, args := buildFilterConditions(opt)

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	parts = append(parts, "ORDER BY due_at ASC, task_id ASC")

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
	}
	if opt.Offset > 0 {
		parts = append(parts, "OFFSET ?")
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

// buildUpdateQuery builds the SET clause + args for UpdateTask.
// updated_at is always refreshed.
func buildUpdateQuery(opt repo.UpdateTaskOptions) (string, []any) {
	var sets []string
	var args []any

	if opt.Content != "" {
		sets = append(sets, "content = ?")
		args = append(args, opt.Content)
	}
	if !opt.DueAt.IsZero() {
		sets = append(sets, "due_at = ?")
		args = append(args, opt.DueAt.UnixNano())
	}
	if opt.Status != "" {
		sets = append(sets, "status = ?")
		args = append(args, opt.Status)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, clock.ToStorage(clock.Now()).UnixNano())

	return strings.Join(sets, ", "), args
}
