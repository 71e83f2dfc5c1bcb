package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"personal-secretary/internal/model"
	repo "personal-secretary/internal/task/repository"
)

const taskColumns = `id, title, description, importance, urgency, due_date, due_time,
	duration_minutes, status, task_type, completed_at, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var t model.Task
	var completedAt sql.NullTime
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Importance, &t.Urgency,
		&t.DueDate, &t.DueTime, &t.DurationMinutes, &t.Status, &t.TaskType,
		&completedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}
	if completedAt.Valid {
		t.CompletedAt = &completedAt.Time
	}
	return t, nil
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (title, description, importance, urgency, due_date, due_time,
			duration_minutes, status, task_type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 'pending', ?, ?, ?)`

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Description, opt.Importance, opt.Urgency,
		opt.DueDate, opt.DueTime, opt.DurationMinutes, opt.TaskType, now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s last insert id: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return r.getByID(ctx, id)
}

// GetOneTask retrieves a single Task by ID or fuzzy title match.
// Returns zero-value Task (ID == 0) when not found — no error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	var (
		query string
		args  []any
	)
	switch {
	case opt.ID != 0:
		query = fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ? LIMIT 1`, taskColumns)
		args = []any{opt.ID}
	case opt.TitleFragment != "":
		// SQLite LIKE is case-insensitive for ASCII; the fragment is
		// sanitized of wildcard characters upstream.
		query = fmt.Sprintf(
			`SELECT %s FROM tasks WHERE title LIKE '%%' || ? || '%%'
			 AND status != 'completed' ORDER BY id LIMIT 1`, taskColumns)
		args = []any{opt.TitleFragment}
	default:
		return model.Task{}, nil
	}

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a filtered, sorted page of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	where, args := buildTaskFilter(opt)

	countQuery := "SELECT COUNT(*) FROM tasks WHERE " + where
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s %s", taskColumns, where, orderClause(opt.SortBy))
	if opt.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, opt.Limit, opt.Offset)
	}

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
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask persists the full post-coalesce state and returns the entity.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	const query = `
		UPDATE tasks
		SET title = ?, description = ?, importance = ?, urgency = ?, due_date = ?,
			due_time = ?, duration_minutes = ?, status = ?, task_type = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Description, opt.Importance, opt.Urgency, opt.DueDate,
		opt.DueTime, opt.DurationMinutes, opt.Status, opt.TaskType, time.Now().UTC(), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, nil
	}
	return r.getByID(ctx, opt.ID)
}

// CompleteTask flips status to completed and stamps completed_at.
func (r *implRepository) CompleteTask(ctx context.Context, id int64) (model.Task, error) {
	const query = `
		UPDATE tasks
		SET status = 'completed', completed_at = ?, updated_at = ?
		WHERE id = ?`

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query, now, now, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompleteTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, nil
	}
	return r.getByID(ctx, id)
}

// DeleteTask removes a Task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id int64) error {
	const query = `DELETE FROM tasks WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) getByID(ctx context.Context, id int64) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ?`, taskColumns)
	t, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("getByID"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}
