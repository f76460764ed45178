package departmentmock

import (
	"context"

	domain "foundry-trials-backend/internal/domain/department"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies department.Repository. By
// default it serves the seeded sequence from department.Defaults() with ids
// assigned by position.
type Repo struct {
	GetByIDFn   func(ctx context.Context, id uint) (*domain.Department, error)
	GetByCodeFn func(ctx context.Context, code string) (*domain.Department, error)
	ListFn      func(ctx context.Context) ([]domain.Department, error)
	NextAfterFn func(ctx context.Context, position int) (*domain.Department, error)
	SeedFn      func(ctx context.Context) error
}

func defaults() []domain.Department {
	ds := domain.Defaults()
	for i := range ds {
		ds[i].ID = uint(ds[i].Position)
	}
	return ds
}

func (m *Repo) GetByID(ctx context.Context, id uint) (*domain.Department, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	for _, d := range defaults() {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByCode(ctx context.Context, code string) (*domain.Department, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}
	for _, d := range defaults() {
		if d.Code == code {
			return &d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Department, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return defaults(), nil
}

func (m *Repo) NextAfter(ctx context.Context, position int) (*domain.Department, error) {
	if m.NextAfterFn != nil {
		return m.NextAfterFn(ctx, position)
	}
	for _, d := range defaults() {
		if d.Position > position {
			return &d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Seed(ctx context.Context) error {
	if m.SeedFn != nil {
		return m.SeedFn(ctx)
	}
	return nil
}
