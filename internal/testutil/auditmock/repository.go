package auditmock

import (
	"context"

	domain "foundry-trials-backend/internal/domain/audit"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies audit.Repository. Appended
// entries are also collected in Entries for assertions.
type Repo struct {
	AppendFn                    func(ctx context.Context, e *domain.Entry) error
	QueryFn                     func(ctx context.Context, f domain.Filter) ([]domain.Entry, error)
	ListCompletedByDepartmentFn func(ctx context.Context, departmentID uint) ([]domain.CompletedItem, error)
	HardDeleteByTrialFn         func(ctx context.Context, trialID uint64) error

	Entries []domain.Entry
}

func (m *Repo) Append(ctx context.Context, e *domain.Entry) error {
	if m.AppendFn != nil {
		if err := m.AppendFn(ctx, e); err != nil {
			return err
		}
	}
	m.Entries = append(m.Entries, *e)
	return nil
}

func (m *Repo) Query(ctx context.Context, f domain.Filter) ([]domain.Entry, error) {
	if m.QueryFn != nil {
		return m.QueryFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) ListCompletedByDepartment(ctx context.Context, departmentID uint) ([]domain.CompletedItem, error) {
	if m.ListCompletedByDepartmentFn != nil {
		return m.ListCompletedByDepartmentFn(ctx, departmentID)
	}
	return nil, nil
}

func (m *Repo) HardDeleteByTrial(ctx context.Context, trialID uint64) error {
	if m.HardDeleteByTrialFn != nil {
		return m.HardDeleteByTrialFn(ctx, trialID)
	}
	return nil
}

// HasAction reports whether an entry with the given action was appended.
func (m *Repo) HasAction(action string) bool {
	for _, e := range m.Entries {
		if e.Action == action {
			return true
		}
	}
	return false
}
