package mysql

import (
	"context"

	auditDomain "foundry-trials-backend/internal/domain/audit"

	"gorm.io/gorm"
)

type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Append(ctx context.Context, e *auditDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AuditRepository) Query(ctx context.Context, f auditDomain.Filter) ([]auditDomain.Entry, error) {
	q := r.db.WithContext(ctx).Model(&auditDomain.Entry{})
	if f.TrialID != 0 {
		q = q.Where("trial_id = ?", f.TrialID)
	}
	if f.DepartmentID != 0 {
		q = q.Where("department_id = ?", f.DepartmentID)
	}
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	var out []auditDomain.Entry
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *AuditRepository) ListCompletedByDepartment(ctx context.Context, departmentID uint) ([]auditDomain.CompletedItem, error) {
	var out []auditDomain.CompletedItem
	res := r.db.WithContext(ctx).
		Table("audit_entries AS a").
		Select(`t.trial_id, t.part_name, a.department_id, a.user_id AS approved_by,
			a.remarks, a.created_at AS completed_at`).
		Joins("JOIN trials t ON t.id = a.trial_id AND t.deleted_at IS NULL").
		Where("a.department_id = ? AND a.action = ?", departmentID, auditDomain.ActionProgressApproved).
		Order("a.created_at DESC, a.id DESC").
		Scan(&out)
	return out, res.Error
}

func (r *AuditRepository) HardDeleteByTrial(ctx context.Context, trialID uint64) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("trial_id = ?", trialID).
		Delete(&auditDomain.Entry{}).Error
}
