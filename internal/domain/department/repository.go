package department

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint) (*Department, error)
	GetByCode(ctx context.Context, code string) (*Department, error)
	// List returns all departments ordered by Position ascending.
	List(ctx context.Context) ([]Department, error)
	// NextAfter returns the department following the given position, or
	// gorm.ErrRecordNotFound past the end of the sequence.
	NextAfter(ctx context.Context, position int) (*Department, error)
	// Seed inserts the default sequence, ignoring rows that already exist.
	Seed(ctx context.Context) error
}
