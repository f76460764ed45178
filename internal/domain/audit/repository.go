package audit

import "context"

type Repository interface {
	// Append is the only mutator: pure insert.
	Append(ctx context.Context, e *Entry) error
	// Query returns matching entries ordered by timestamp descending.
	Query(ctx context.Context, f Filter) ([]Entry, error)
	// ListCompletedByDepartment joins approval entries with their trials.
	// Soft-deleted trials are excluded from the view.
	ListCompletedByDepartment(ctx context.Context, departmentID uint) ([]CompletedItem, error)
	// HardDeleteByTrial removes a trial's entries. Administrative cascade
	// only, never exposed to workflow logic.
	HardDeleteByTrial(ctx context.Context, trialID uint64) error
}
