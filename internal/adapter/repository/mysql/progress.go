package mysql

import (
	"context"

	progressDomain "foundry-trials-backend/internal/domain/progress"

	"gorm.io/gorm"
)

type ProgressRepository struct{ db *gorm.DB }

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) Create(ctx context.Context, rec *progressDomain.Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *ProgressRepository) Save(ctx context.Context, rec *progressDomain.Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *ProgressRepository) GetPending(ctx context.Context, trialID uint64, departmentID uint) (*progressDomain.Record, error) {
	var out progressDomain.Record
	res := r.db.WithContext(ctx).
		Where("trial_id = ? AND department_id = ? AND status = ?",
			trialID, departmentID, progressDomain.StatusPending).
		Order("created_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *ProgressRepository) ListByTrial(ctx context.Context, trialID uint64) ([]progressDomain.Record, error) {
	var out []progressDomain.Record
	res := r.db.WithContext(ctx).
		Where("trial_id = ?", trialID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ProgressRepository) ListPendingByUser(ctx context.Context, username string) ([]progressDomain.PendingItem, error) {
	var out []progressDomain.PendingItem
	res := r.db.WithContext(ctx).
		Table("progress_records AS p").
		Select(`p.record_id, t.trial_id, t.part_name, p.department_id,
			d.name AS department_name, p.submitted_by, p.remarks,
			p.created_at AS submitted_at`).
		Joins("JOIN trials t ON t.id = p.trial_id AND t.deleted_at IS NULL").
		Joins("JOIN departments d ON d.id = p.department_id").
		Where("p.submitted_by = ? AND p.status = ?", username, progressDomain.StatusPending).
		Order("p.created_at DESC, p.id DESC").
		Scan(&out)
	return out, res.Error
}

func (r *ProgressRepository) HardDeleteByTrial(ctx context.Context, trialID uint64) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("trial_id = ?", trialID).
		Delete(&progressDomain.Record{}).Error
}
