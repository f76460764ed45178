package department

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("department not found")

// Codes double as section-type keys: each department owns exactly one
// section table (see internal/domain/section).
const (
	CodeSandProperties = "sand_properties"
	CodePouring        = "pouring"
	CodeMoulding       = "moulding"
	CodeMetallurgical  = "metallurgical"
	CodeVisual         = "visual"
	CodeDimensional    = "dimensional"
	CodeMachineShop    = "machine_shop"
)

// Department is a static reference row. Position is the explicit workflow
// ordinal; the orchestrator advances trials by position, never by hard-coded
// route logic.
type Department struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Code      string    `gorm:"column:code;size:32;not null;uniqueIndex" json:"code"`
	Name      string    `gorm:"column:name;size:64;not null" json:"name"`
	Position  int       `gorm:"column:position;not null;uniqueIndex" json:"position"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Department) TableName() string { return "departments" }

// Defaults is the seeded inspection sequence, in workflow order.
func Defaults() []Department {
	return []Department{
		{Code: CodeSandProperties, Name: "Sand Properties", Position: 1},
		{Code: CodePouring, Name: "Pouring", Position: 2},
		{Code: CodeMoulding, Name: "Moulding", Position: 3},
		{Code: CodeMetallurgical, Name: "Metallurgical Inspection", Position: 4},
		{Code: CodeVisual, Name: "Visual Inspection", Position: 5},
		{Code: CodeDimensional, Name: "Dimensional Inspection", Position: 6},
		{Code: CodeMachineShop, Name: "Machine Shop Inspection", Position: 7},
	}
}
