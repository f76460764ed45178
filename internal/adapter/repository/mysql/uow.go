package mysql

import (
	"context"
	"errors"

	trialDomain "foundry-trials-backend/internal/domain/trial"
	"foundry-trials-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func bindRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Trials:      NewTrialRepository(tx),
		Departments: NewDepartmentRepository(tx),
		Progress:    NewProgressRepository(tx),
		Audit:       NewAuditRepository(tx),
		Sections:    NewSectionRepository(tx),
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(bindRepos(tx))
	})
}

func (u *GormUoW) WithinTrialTx(ctx context.Context, trialID string, fn func(r uow.Repos, t *trialDomain.Trial) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := bindRepos(tx)
		// lock the trial row up-front to prevent races
		t, err := r.Trials.GetByTrialIDForUpdate(ctx, trialID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return trialDomain.ErrNotFound
			}
			return err
		}
		return fn(r, t)
	})
}
