package sectionmock

import (
	"context"

	domain "foundry-trials-backend/internal/domain/section"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies section.Repository. Upserted
// payloads are collected in Stored for assertions.
type Repo struct {
	UpsertFn            func(ctx context.Context, p domain.Payload) error
	GetForTrialFn       func(ctx context.Context, t domain.Type, trialID uint64) (domain.Payload, error)
	ListForTrialFn      func(ctx context.Context, trialID uint64) ([]domain.Payload, error)
	HardDeleteByTrialFn func(ctx context.Context, trialID uint64) error

	Stored []domain.Payload
}

func (m *Repo) Upsert(ctx context.Context, p domain.Payload) error {
	if m.UpsertFn != nil {
		if err := m.UpsertFn(ctx, p); err != nil {
			return err
		}
	}
	m.Stored = append(m.Stored, p)
	return nil
}

func (m *Repo) GetForTrial(ctx context.Context, t domain.Type, trialID uint64) (domain.Payload, error) {
	if m.GetForTrialFn != nil {
		return m.GetForTrialFn(ctx, t, trialID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListForTrial(ctx context.Context, trialID uint64) ([]domain.Payload, error) {
	if m.ListForTrialFn != nil {
		return m.ListForTrialFn(ctx, trialID)
	}
	return nil, nil
}

func (m *Repo) HardDeleteByTrial(ctx context.Context, trialID uint64) error {
	if m.HardDeleteByTrialFn != nil {
		return m.HardDeleteByTrialFn(ctx, trialID)
	}
	return nil
}
