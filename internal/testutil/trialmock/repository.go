package trialmock

import (
	"context"

	domain "foundry-trials-backend/internal/domain/trial"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies trial.Repository. Fill in
// the function fields a test needs; unfilled lookups return ErrRecordNotFound.
type Repo struct {
	CreateFn                func(ctx context.Context, t *domain.Trial) error
	SaveFn                  func(ctx context.Context, t *domain.Trial) error
	GetByTrialIDFn          func(ctx context.Context, trialID string) (*domain.Trial, error)
	GetByTrialIDForUpdateFn func(ctx context.Context, trialID string) (*domain.Trial, error)
	GetByTrialIDUnscopedFn  func(ctx context.Context, trialID string) (*domain.Trial, error)
	ListFn                  func(ctx context.Context) ([]domain.Trial, error)
	ListByStatusFn          func(ctx context.Context, s domain.Status) ([]domain.Trial, error)
	ListDeletedFn           func(ctx context.Context) ([]domain.Trial, error)
	SoftDeleteFn            func(ctx context.Context, t *domain.Trial, actor string) error
	RestoreFn               func(ctx context.Context, trialID string, s domain.Status) error
	HardDeleteFn            func(ctx context.Context, id uint64) error
	AllocateSequenceFn      func(ctx context.Context, partName string) (uint64, error)
}

func (m *Repo) Create(ctx context.Context, t *domain.Trial) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, t *domain.Trial) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByTrialID(ctx context.Context, trialID string) (*domain.Trial, error) {
	if m.GetByTrialIDFn != nil {
		return m.GetByTrialIDFn(ctx, trialID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByTrialIDForUpdate(ctx context.Context, trialID string) (*domain.Trial, error) {
	if m.GetByTrialIDForUpdateFn != nil {
		return m.GetByTrialIDForUpdateFn(ctx, trialID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByTrialIDUnscoped(ctx context.Context, trialID string) (*domain.Trial, error) {
	if m.GetByTrialIDUnscopedFn != nil {
		return m.GetByTrialIDUnscopedFn(ctx, trialID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Trial, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByStatus(ctx context.Context, s domain.Status) ([]domain.Trial, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, s)
	}
	return nil, nil
}

func (m *Repo) ListDeleted(ctx context.Context) ([]domain.Trial, error) {
	if m.ListDeletedFn != nil {
		return m.ListDeletedFn(ctx)
	}
	return nil, nil
}

func (m *Repo) SoftDelete(ctx context.Context, t *domain.Trial, actor string) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, t, actor)
	}
	return nil
}

func (m *Repo) Restore(ctx context.Context, trialID string, s domain.Status) error {
	if m.RestoreFn != nil {
		return m.RestoreFn(ctx, trialID, s)
	}
	return nil
}

func (m *Repo) HardDelete(ctx context.Context, id uint64) error {
	if m.HardDeleteFn != nil {
		return m.HardDeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) AllocateSequence(ctx context.Context, partName string) (uint64, error) {
	if m.AllocateSequenceFn != nil {
		return m.AllocateSequenceFn(ctx, partName)
	}
	return 1, nil
}
