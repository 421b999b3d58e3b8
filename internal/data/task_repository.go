package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"workbook_service/internal/domain"
)

func (s *Store) CreateTask(ctx context.Context, task *domain.Task) error {
	query := `
INSERT INTO tasks (user_id, title, supplementary, deadline)
VALUES ($1, $2, $3, $4)
RETURNING id
`
	err := s.db.QueryRow(ctx, query,
		task.UserID,
		task.Title,
		task.Supplementary,
		task.Deadline,
	).Scan(&task.ID)
	return handleError(err)
}

func (s *Store) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	query := `
SELECT id, user_id, title, supplementary, deadline, completed, is_deleted
FROM tasks
WHERE id = $1
`
	var task domain.Task
	if err := pgxscan.Get(ctx, s.db, &task, query, id); err != nil {
		return nil, handleError(err)
	}
	return &task, nil
}

func (s *Store) ListTasksByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	query := `
SELECT id, user_id, title, supplementary, deadline, completed, is_deleted
FROM tasks
WHERE user_id = $1
ORDER BY deadline NULLS LAST, id
`
	var tasks []*domain.Task
	if err := pgxscan.Select(ctx, s.db, &tasks, query, userID); err != nil {
		return nil, handleError(err)
	}
	return tasks, nil
}

func (s *Store) SetTaskCompleted(ctx context.Context, id int64, completed bool) error {
	tag, err := s.db.Exec(ctx, `UPDATE tasks SET completed = $2 WHERE id = $1 AND NOT is_deleted`, id, completed)
	return expectAffected(tag, err, "task", id)
}

func (s *Store) TombstoneTask(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `UPDATE tasks SET is_deleted = TRUE WHERE id = $1`, id)
	return expectAffected(tag, err, "task", id)
}
