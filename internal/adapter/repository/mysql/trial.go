package mysql

import (
	"context"
	"time"

	trialDomain "foundry-trials-backend/internal/domain/trial"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrialRepository struct{ db *gorm.DB }

func NewTrialRepository(db *gorm.DB) *TrialRepository { return &TrialRepository{db: db} }

func (r *TrialRepository) Create(ctx context.Context, t *trialDomain.Trial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TrialRepository) Save(ctx context.Context, t *trialDomain.Trial) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TrialRepository) GetByTrialID(ctx context.Context, trialID string) (*trialDomain.Trial, error) {
	var out trialDomain.Trial
	res := r.db.WithContext(ctx).Where("trial_id = ?", trialID).First(&out)
	return &out, res.Error
}

func (r *TrialRepository) GetByTrialIDForUpdate(ctx context.Context, trialID string) (*trialDomain.Trial, error) {
	q := r.db.WithContext(ctx)
	// sqlite serializes writers itself and rejects FOR UPDATE syntax.
	if q.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out trialDomain.Trial
	res := q.Where("trial_id = ?", trialID).First(&out)
	return &out, res.Error
}

func (r *TrialRepository) GetByTrialIDUnscoped(ctx context.Context, trialID string) (*trialDomain.Trial, error) {
	var out trialDomain.Trial
	res := r.db.WithContext(ctx).Unscoped().Where("trial_id = ?", trialID).First(&out)
	return &out, res.Error
}

func (r *TrialRepository) List(ctx context.Context) ([]trialDomain.Trial, error) {
	var out []trialDomain.Trial
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *TrialRepository) ListByStatus(ctx context.Context, s trialDomain.Status) ([]trialDomain.Trial, error) {
	var out []trialDomain.Trial
	res := r.db.WithContext(ctx).Where("status = ?", s).Order("status_updated_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *TrialRepository) ListDeleted(ctx context.Context) ([]trialDomain.Trial, error) {
	var out []trialDomain.Trial
	res := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL").
		Order("deleted_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *TrialRepository) SoftDelete(ctx context.Context, t *trialDomain.Trial, actor string) error {
	if err := r.db.WithContext(ctx).Model(t).Updates(map[string]any{
		"deleted_by":        actor,
		"status":            trialDomain.StatusDeleted,
		"status_updated_at": time.Now().UTC(),
	}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(t).Error
}

func (r *TrialRepository) Restore(ctx context.Context, trialID string, s trialDomain.Status) error {
	return r.db.WithContext(ctx).Unscoped().Model(&trialDomain.Trial{}).
		Where("trial_id = ?", trialID).
		Updates(map[string]any{
			"deleted_at":        nil,
			"deleted_by":        nil,
			"status":            s,
			"status_updated_at": time.Now().UTC(),
		}).Error
}

func (r *TrialRepository) HardDelete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&trialDomain.Trial{}, id).Error
}

// AllocateSequence bumps the per-part counter and reads it back. Safe under
// concurrency when run inside the creation transaction: the upsert takes the
// row lock until commit.
func (r *TrialRepository) AllocateSequence(ctx context.Context, partName string) (uint64, error) {
	c := trialDomain.PartCounter{PartName: partName, LastSeq: 1}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "part_name"}},
		DoUpdates: clause.Assignments(map[string]any{"last_seq": gorm.Expr("last_seq + 1")}),
	}).Create(&c).Error
	if err != nil {
		return 0, err
	}
	var out trialDomain.PartCounter
	if err := r.db.WithContext(ctx).Where("part_name = ?", partName).First(&out).Error; err != nil {
		return 0, err
	}
	return out.LastSeq, nil
}
