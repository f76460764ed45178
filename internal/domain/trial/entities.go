package trial

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("trial not found")
	// ErrClosed rejects section submissions against a closed or deleted trial.
	ErrClosed = errors.New("trial is not open for submissions")
)

// ValidationError lists the mandatory fields missing from a create request.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing mandatory fields: %v", e.Fields)
}

type Status string

const (
	StatusDraft   Status = "draft"
	StatusActive  Status = "active"
	StatusClosed  Status = "closed"
	StatusDeleted Status = "deleted"
)

type Trial struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier, "{part_name}-{seq}". Immutable once created.
	TrialID             string         `gorm:"column:trial_id;size:128;uniqueIndex:ux_trials_trial_id" json:"trial_id"`
	PartName            string         `gorm:"column:part_name;size:96;not null;index" json:"part_name"`
	PatternCode         string         `gorm:"column:pattern_code;size:64;not null" json:"pattern_code"`
	MaterialGrade       string         `gorm:"column:material_grade;size:64;not null" json:"material_grade"`
	Initiator           string         `gorm:"column:initiator;size:64;not null" json:"initiator"`
	SamplingDate        time.Time      `gorm:"column:sampling_date;type:date;not null" json:"sampling_date"`
	MouldsPlanned       int            `gorm:"column:moulds_planned;not null" json:"moulds_planned"`
	MouldsActual        int            `gorm:"column:moulds_actual" json:"moulds_actual"`
	SamplingReason      string         `gorm:"column:sampling_reason;type:text;not null" json:"sampling_reason"`
	TraceabilityCode    string         `gorm:"column:traceability_code;size:64;not null" json:"traceability_code"`
	Machine             string         `gorm:"column:machine;size:64;not null" json:"machine"`
	CurrentDepartmentID *uint          `gorm:"column:current_department_id;index" json:"current_department_id"`
	Status              Status         `gorm:"column:status;size:16;default:'draft'" json:"status"`
	StatusUpdatedAt     time.Time      `gorm:"column:status_updated_at" json:"status_updated_at"`
	CreatedAt           time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
	DeletedBy           *string        `gorm:"column:deleted_by;size:64" json:"-"`
}

func (Trial) TableName() string { return "trials" }

// PartCounter allocates trial sequence numbers per part name. Incremented
// inside the creation transaction so concurrent creates for the same part
// cannot mint the same trial id; the unique index on trials.trial_id is the
// backstop.
type PartCounter struct {
	PartName string `gorm:"primaryKey;column:part_name;size:96"`
	LastSeq  uint64 `gorm:"column:last_seq;not null"`
}

func (PartCounter) TableName() string { return "part_counters" }

// FormatTrialID builds the public id from a part name and allocated sequence.
func FormatTrialID(partName string, seq uint64) string {
	return fmt.Sprintf("%s-%d", partName, seq)
}
