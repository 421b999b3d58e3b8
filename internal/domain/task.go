package domain

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID            int64      `db:"id" json:"id"`
	UserID        uuid.UUID  `db:"user_id" json:"-"`
	Title         string     `db:"title" json:"title"`
	Supplementary *string    `db:"supplementary" json:"supplementary"`
	Deadline      *time.Time `db:"deadline" json:"deadline"`
	Completed     bool       `db:"completed" json:"completed"`
	Lifecycle
}
