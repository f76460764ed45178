package progress

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrDuplicatePending rejects a submission while an earlier one for the
	// same (trial, department) still awaits approval.
	ErrDuplicatePending = errors.New("section already submitted, awaiting approval")
	// ErrNoPendingRecord rejects approve/reject when nothing is pending.
	ErrNoPendingRecord = errors.New("no pending progress record for this department")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Record is one submission attempt for one (trial, department). Records only
// ever move pending -> approved|rejected; resubmission after rejection inserts
// a new row, so the table keeps the full attempt history.
type Record struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	RecordID     string    `gorm:"column:record_id;type:char(32);not null;uniqueIndex" json:"record_id"`
	TrialID      uint64    `gorm:"column:trial_id;not null;index:idx_progress_trial" json:"-"`
	DepartmentID uint      `gorm:"column:department_id;not null;index" json:"department_id"`
	SubmittedBy  string    `gorm:"column:submitted_by;size:64;not null;index" json:"submitted_by"`
	Status       Status    `gorm:"column:status;size:16;default:'pending'" json:"status"`
	Remarks      string    `gorm:"column:remarks;type:text" json:"remarks"`
	CompletedAt  *time.Time `gorm:"column:completed_at" json:"completed_at"`
	// PendingKey is "<trial_id>-<department_id>" while the record is pending
	// and NULL once terminal. Unique indexes skip NULLs, so the schema itself
	// enforces at most one pending record per pair even under races the
	// locked read-then-write did not see.
	PendingKey *string   `gorm:"column:pending_key;size:48;uniqueIndex:ux_progress_pending" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Record) TableName() string { return "progress_records" }

// BuildPendingKey derives the uniqueness key for an in-flight submission.
func BuildPendingKey(trialID uint64, departmentID uint) string {
	return fmt.Sprintf("%d-%d", trialID, departmentID)
}

// MarkApproved transitions the record to its terminal approved state.
func (r *Record) MarkApproved(at time.Time) {
	r.Status = StatusApproved
	r.CompletedAt = &at
	r.PendingKey = nil
}

// MarkRejected transitions the record to its terminal rejected state.
func (r *Record) MarkRejected(at time.Time, remarks string) {
	r.Status = StatusRejected
	r.CompletedAt = &at
	if remarks != "" {
		r.Remarks = remarks
	}
	r.PendingKey = nil
}

// PendingItem is a pending record joined with trial and department display
// fields for the per-user worklist.
type PendingItem struct {
	RecordID       string    `json:"record_id"`
	TrialID        string    `json:"trial_id"`
	PartName       string    `json:"part_name"`
	DepartmentID   uint      `json:"department_id"`
	DepartmentName string    `json:"department_name"`
	SubmittedBy    string    `json:"submitted_by"`
	Remarks        string    `json:"remarks"`
	SubmittedAt    time.Time `json:"submitted_at"`
}
