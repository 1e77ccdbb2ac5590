package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo TaskRepository over PostgreSQL (usable with pool or tx).
type TaskRepo struct {
	q Querier
}

// NewTaskRepository builds the adapter. Pass a pool or tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

const taskColumns = `id, task_title, project_id, assigned_to, status, priority, due_date, notes, created_at, updated_at`

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(
		&t.ID, &t.TaskTitle, &t.ProjectID, &t.AssignedTo, &t.Status, &t.Priority,
		&t.DueDate, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persists a new task.
func (r *TaskRepo) Create(task *entity.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.TaskTitle, task.ProjectID, task.AssignedTo, task.Status,
		task.Priority, task.DueDate, task.Notes, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID fetches a task by ID.
func (r *TaskRepo) GetByID(id string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	t, err := scanTask(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// List pages through tasks, newest first.
func (r *TaskRepo) List(limit, offset int) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryTasks(query, limit, offset)
}

// ListByProject returns all tasks on one project, due date first.
func (r *TaskRepo) ListByProject(projectID string) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = $1 ORDER BY due_date NULLS LAST, created_at`
	return r.queryTasks(query, projectID)
}

func (r *TaskRepo) queryTasks(query string, args ...any) ([]*entity.Task, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update rewrites a task.
func (r *TaskRepo) Update(task *entity.Task) error {
	query := `
		UPDATE tasks SET task_title = $2, project_id = $3, assigned_to = $4, status = $5,
			priority = $6, due_date = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.TaskTitle, task.ProjectID, task.AssignedTo, task.Status,
		task.Priority, task.DueDate, task.Notes, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete removes a task by ID.
func (r *TaskRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
