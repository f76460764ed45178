package progressmock

import (
	"context"

	domain "foundry-trials-backend/internal/domain/progress"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies progress.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, r *domain.Record) error
	SaveFn              func(ctx context.Context, r *domain.Record) error
	GetPendingFn        func(ctx context.Context, trialID uint64, departmentID uint) (*domain.Record, error)
	ListByTrialFn       func(ctx context.Context, trialID uint64) ([]domain.Record, error)
	ListPendingByUserFn func(ctx context.Context, username string) ([]domain.PendingItem, error)
	HardDeleteByTrialFn func(ctx context.Context, trialID uint64) error
}

func (m *Repo) Create(ctx context.Context, r *domain.Record) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, r *domain.Record) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetPending(ctx context.Context, trialID uint64, departmentID uint) (*domain.Record, error) {
	if m.GetPendingFn != nil {
		return m.GetPendingFn(ctx, trialID, departmentID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByTrial(ctx context.Context, trialID uint64) ([]domain.Record, error) {
	if m.ListByTrialFn != nil {
		return m.ListByTrialFn(ctx, trialID)
	}
	return nil, nil
}

func (m *Repo) ListPendingByUser(ctx context.Context, username string) ([]domain.PendingItem, error) {
	if m.ListPendingByUserFn != nil {
		return m.ListPendingByUserFn(ctx, username)
	}
	return nil, nil
}

func (m *Repo) HardDeleteByTrial(ctx context.Context, trialID uint64) error {
	if m.HardDeleteByTrialFn != nil {
		return m.HardDeleteByTrialFn(ctx, trialID)
	}
	return nil
}
