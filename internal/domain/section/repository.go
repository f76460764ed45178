package section

import "context"

type Repository interface {
	// Upsert writes the payload for (type, trial), replacing any previous
	// submission. Section content is not versioned; only progress and audit
	// state are.
	Upsert(ctx context.Context, p Payload) error
	// GetForTrial returns the stored payload or gorm.ErrRecordNotFound.
	GetForTrial(ctx context.Context, t Type, trialID uint64) (Payload, error)
	// ListForTrial reads every section store independently, skipping types
	// with no submission yet.
	ListForTrial(ctx context.Context, trialID uint64) ([]Payload, error)
	// HardDeleteByTrial removes all of a trial's section rows
	// (administrative cascade only).
	HardDeleteByTrial(ctx context.Context, trialID uint64) error
}
