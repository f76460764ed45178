package uowmock

import (
	"context"
	"errors"

	"foundry-trials-backend/internal/domain/trial"
	"foundry-trials-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork. When Repos is
// set and the function fields are not, the mock simply runs fn against Repos
// without transaction semantics. Rollback behavior is covered by the gorm
// UoW tests, so usecase tests do not need it.
type UoW struct {
	Repos uow.Repos
	// Trial, when set, is handed to WithinTrialTx callbacks.
	Trial *trial.Trial

	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinTrialTxFn func(ctx context.Context, trialID string, fn func(r uow.Repos, t *trial.Trial) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}

func (m *UoW) WithinTrialTx(ctx context.Context, trialID string, fn func(r uow.Repos, t *trial.Trial) error) error {
	if m.WithinTrialTxFn != nil {
		return m.WithinTrialTxFn(ctx, trialID, fn)
	}
	if m.Trial == nil {
		return errUnimplemented
	}
	if m.Trial.TrialID != trialID {
		return trial.ErrNotFound
	}
	return fn(m.Repos, m.Trial)
}
