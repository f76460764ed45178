package progress

import "context"

type Repository interface {
	Create(ctx context.Context, r *Record) error
	Save(ctx context.Context, r *Record) error
	// GetPending returns the most recent pending record for the pair, or
	// gorm.ErrRecordNotFound.
	GetPending(ctx context.Context, trialID uint64, departmentID uint) (*Record, error)
	ListByTrial(ctx context.Context, trialID uint64) ([]Record, error)
	// ListPendingByUser returns the user's outstanding submissions joined
	// with trial + department display fields, newest first.
	ListPendingByUser(ctx context.Context, username string) ([]PendingItem, error)
	// HardDeleteByTrial removes all attempt history for a trial
	// (administrative cascade only).
	HardDeleteByTrial(ctx context.Context, trialID uint64) error
}
