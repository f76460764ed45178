package uow

import (
	"context"

	"foundry-trials-backend/internal/domain/audit"
	"foundry-trials-backend/internal/domain/department"
	"foundry-trials-backend/internal/domain/progress"
	"foundry-trials-backend/internal/domain/section"
	"foundry-trials-backend/internal/domain/trial"
)

type Repos struct {
	Trials      trial.Repository
	Departments department.Repository
	Progress    progress.Repository
	Audit       audit.Repository
	Sections    section.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn with every repo bound to one transaction; either all
	// writes commit or none are visible.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinTrialTx additionally locks the trial row up-front, serializing
	// concurrent workflow transitions on the same trial.
	WithinTrialTx(ctx context.Context, trialID string, fn func(r Repos, t *trial.Trial) error) error
}
