package trial

import "context"

type Repository interface {
	Create(ctx context.Context, t *Trial) error
	Save(ctx context.Context, t *Trial) error
	GetByTrialID(ctx context.Context, trialID string) (*Trial, error)
	// GetByTrialIDForUpdate locks the row (SELECT ... FOR UPDATE) so workflow
	// transitions on one trial are serialized.
	GetByTrialIDForUpdate(ctx context.Context, trialID string) (*Trial, error)
	// GetByTrialIDUnscoped also finds soft-deleted trials (restore and
	// recycle-bin flows address them by id).
	GetByTrialIDUnscoped(ctx context.Context, trialID string) (*Trial, error)
	List(ctx context.Context) ([]Trial, error)
	ListByStatus(ctx context.Context, s Status) ([]Trial, error)
	ListDeleted(ctx context.Context) ([]Trial, error)
	// SoftDelete hides the trial from default scopes, recording who deleted
	// it. Progress, audit and section rows are untouched.
	SoftDelete(ctx context.Context, t *Trial, actor string) error
	// Restore clears the soft-delete marker and puts the trial back in the
	// given status.
	Restore(ctx context.Context, trialID string, s Status) error
	// HardDelete removes the row permanently (administrative cascade only).
	HardDelete(ctx context.Context, id uint64) error
	// AllocateSequence atomically increments and returns the per-part
	// counter. Must be called inside the creation transaction.
	AllocateSequence(ctx context.Context, partName string) (uint64, error)
}
