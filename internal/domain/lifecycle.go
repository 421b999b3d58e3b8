package domain

// Lifecycle is the soft-delete status shared by every persisted entity.
// Rows are tombstoned, never removed.
type Lifecycle struct {
	Deleted bool `db:"is_deleted" json:"-"`
}

func (l Lifecycle) IsActive() bool {
	return !l.Deleted
}

func (l *Lifecycle) Tombstone() {
	l.Deleted = true
}

type Tombstoned interface {
	IsActive() bool
}

// ActiveOnly drops tombstoned items. Every read path goes through it before
// interpreting persisted data.
func ActiveOnly[T Tombstoned](items []T) []T {
	active := make([]T, 0, len(items))
	for _, item := range items {
		if item.IsActive() {
			active = append(active, item)
		}
	}
	return active
}
