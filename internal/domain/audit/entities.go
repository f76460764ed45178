package audit

import "time"

// Action labels are free-text in storage but drawn from this closed set.
const (
	ActionTrialCreated     = "Trial created"
	ActionSectionSubmitted = "Section submitted"
	ActionProgressApproved = "Department progress approved"
	ActionProgressRejected = "Department progress rejected"
	ActionTrialDeleted     = "Trial deleted"
	ActionTrialRestored    = "Trial restored"
	ActionTrialPurged      = "Trial permanently deleted"
)

// Entry is an append-only audit row. Application code never updates or
// deletes entries; the only removal path is the administrative purge cascade.
type Entry struct {
	ID           uint64  `gorm:"primaryKey;column:id" json:"-"`
	EntryID      string  `gorm:"column:entry_id;type:char(32);not null;uniqueIndex" json:"entry_id"`
	TrialID      *uint64 `gorm:"column:trial_id;index" json:"-"`
	DepartmentID *uint   `gorm:"column:department_id;index" json:"department_id,omitempty"`
	UserID       string  `gorm:"column:user_id;size:64;not null" json:"user_id"`
	Action       string  `gorm:"column:action;size:64;not null;index" json:"action"`
	Remarks      string  `gorm:"column:remarks;type:text" json:"remarks"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (Entry) TableName() string { return "audit_entries" }

// Filter narrows Query results; zero values mean "any".
type Filter struct {
	TrialID      uint64
	DepartmentID uint
	Action       string
}

// CompletedItem is an approval entry joined with its trial, used by the
// per-department "completed trials" view. CompletedAt is the audit timestamp.
type CompletedItem struct {
	TrialID        string    `json:"trial_id"`
	PartName       string    `json:"part_name"`
	DepartmentID   uint      `json:"department_id"`
	ApprovedBy     string    `json:"approved_by"`
	Remarks        string    `json:"remarks"`
	CompletedAt    time.Time `json:"completed_at"`
}
