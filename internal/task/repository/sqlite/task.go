package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"task-reminder-bot/internal/model"
	repo "task-reminder-bot/internal/task/repository"
	"task-reminder-bot/pkg/clock"
)

const taskColumns = `user_id, task_id, chat_id, content, due_at, status, created_at, updated_at`

// scanTask scans one task row. due_at/created_at/updated_at are stored as
// UTC unix-nanoseconds.
func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var (
		t                       model.Task
		dueAt, created, updated int64
	)
	if err := row.Scan(
		&t.UserID, &t.TaskID, &t.ChatID, &t.Content, &dueAt, &t.Status, &created, &updated,
	); err != nil {
		return model.Task{}, err
	}
	t.DueAt = clock.FromUnixNano(dueAt)
	t.CreatedAt = clock.FromUnixNano(created)
	t.UpdatedAt = clock.FromUnixNano(updated)
	return t, nil
}

// CreateTask assigns the next per-user id from the counter row and inserts
// the task plus its reminders, all in one transaction. The counter upsert is
// what keeps concurrent creates from racing on the id.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	const counterQuery = `
		INSERT INTO user_counters (user_id, next_id) VALUES (?, 1)
		ON CONFLICT (user_id) DO UPDATE SET next_id = next_id + 1
		RETURNING next_id`

	var taskID int64
	if err := tx.QueryRowContext(ctx, counterQuery, opt.UserID).Scan(&taskID); err != nil {
		r.l.Errorf(ctx, "%s counter: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	now := clock.ToStorage(clock.Now())
	const insertQuery = `
		INSERT INTO tasks (user_id, task_id, chat_id, content, due_at, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 'pending', ?, ?)
		RETURNING id`

	var rowID int64
	err = tx.QueryRowContext(ctx, insertQuery,
		opt.UserID, taskID, opt.ChatID, opt.Content, opt.DueAt.UnixNano(), now.UnixNano(), now.UnixNano(),
	).Scan(&rowID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	if err := insertReminders(ctx, tx, rowID, opt.Reminders); err != nil {
		r.l.Errorf(ctx, "%s reminders: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	return model.Task{
		TaskID:    taskID,
		UserID:    opt.UserID,
		ChatID:    opt.ChatID,
		Content:   opt.Content,
		DueAt:     opt.DueAt,
		Status:    model.TaskStatusPending,
		Reminders: opt.Reminders,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetTask retrieves a single task with its reminders.
// Returns zero-value Task (TaskID == 0) when not found, never an error for not-found.
func (r *implRepository) GetTask(ctx context.Context, userID string, taskID int64) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE user_id = ? AND task_id = ?`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, userID, taskID))
	if err == sql.ErrNoRows {
		return model.Task{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}

	const remQuery = `
		SELECT r.id, r.kind, r.fires_at, r.sent
		FROM reminders r JOIN tasks t ON t.id = r.task_rowid
		WHERE t.user_id = ? AND t.task_id = ?
		ORDER BY r.fires_at ASC`
	rows, err := r.db.QueryContext(ctx, remQuery, userID, taskID)
	if err != nil {
		r.l.Errorf(ctx, "%s reminders: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rem     model.Reminder
			firesAt int64
		)
		if err := rows.Scan(&rem.ID, &rem.Kind, &firesAt, &rem.Sent); err != nil {
			return model.Task{}, repo.ErrFailedToGet
		}
		rem.FiresAt = clock.FromUnixNano(firesAt)
		t.Reminders = append(t.Reminders, rem)
	}
	return t, nil
}

// ListTasks returns a page of tasks ordered by due time and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	return tasks, total, nil
}

// UpdateTask applies the non-zero fields and returns the updated task.
// A non-nil Reminders slice replaces every existing reminder row.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	sets, args := buildUpdateQuery(opt)
	query := fmt.Sprintf(
		`UPDATE tasks SET %s WHERE user_id = ? AND task_id = ? RETURNING id, %s`,
		sets, taskColumns,
	)
	args = append(args, opt.UserID, opt.TaskID)

	var (
		rowID                   int64
		t                       model.Task
		dueAt, created, updated int64
	)
	err = tx.QueryRowContext(ctx, query, args...).Scan(
		&rowID, &t.UserID, &t.TaskID, &t.ChatID, &t.Content, &dueAt, &t.Status, &created, &updated,
	)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	t.DueAt = clock.FromUnixNano(dueAt)
	t.CreatedAt = clock.FromUnixNano(created)
	t.UpdatedAt = clock.FromUnixNano(updated)

	if opt.Reminders != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM reminders WHERE task_rowid = ?`, rowID); err != nil {
			r.l.Errorf(ctx, "%s clear reminders: %v", r.dsn("UpdateTask"), err)
			return model.Task{}, repo.ErrFailedToUpdate
		}
		if err := insertReminders(ctx, tx, rowID, opt.Reminders); err != nil {
			r.l.Errorf(ctx, "%s reminders: %v", r.dsn("UpdateTask"), err)
			return model.Task{}, repo.ErrFailedToUpdate
		}
		t.Reminders = opt.Reminders
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a task; its reminders go with it via ON DELETE CASCADE.
func (r *implRepository) DeleteTask(ctx context.Context, userID string, taskID int64) error {
	const query = `DELETE FROM tasks WHERE user_id = ? AND task_id = ?`
	if _, err := r.db.ExecContext(ctx, query, userID, taskID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// insertReminders inserts reminder rows for the task rowid.
func insertReminders(ctx context.Context, tx *sql.Tx, rowID int64, reminders []model.Reminder) error {
	const query = `INSERT INTO reminders (id, task_rowid, kind, fires_at, sent) VALUES (?, ?, ?, ?, ?)`
	for _, rem := range reminders {
		if _, err := tx.ExecContext(ctx, query, rem.ID, rowID, rem.Kind, rem.FiresAt.UnixNano(), rem.Sent); err != nil {
			return err
		}
	}
	return nil
}
