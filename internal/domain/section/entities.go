package section

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

var (
	ErrNotFound    = errors.New("section not found")
	ErrUnknownType = errors.New("unknown section type")
	// ErrRaggedGrid rejects grids whose rows do not match the column list.
	ErrRaggedGrid = errors.New("grid rows must match column count")
)

// Type identifies one section table. Values match department codes, so a
// department's submissions always land in its own store.
type Type string

const (
	TypeSandProperties Type = "sand_properties"
	TypePouring        Type = "pouring"
	TypeMoulding       Type = "moulding"
	TypeMetallurgical  Type = "metallurgical"
	TypeVisual         Type = "visual"
	TypeDimensional    Type = "dimensional"
	TypeMachineShop    Type = "machine_shop"
)

// Payload is one department's inspection data for one trial. A trial holds
// zero or one payload per type; re-submission overwrites (last write wins).
type Payload interface {
	SectionType() Type
	TrialRef() uint64
	BindTrial(id uint64)
	SetSubmitter(username string)
	// Validate checks structured sub-fields (grids, row sets) before any
	// write. Stored data is still parsed defensively at read time.
	Validate() error
}

// Base carries the columns shared by every section table.
type Base struct {
	ID          uint64         `gorm:"primaryKey;column:id" json:"-"`
	TrialID     uint64         `gorm:"column:trial_id;not null;uniqueIndex" json:"-"`
	SubmittedBy string         `gorm:"column:submitted_by;size:64" json:"submitted_by"`
	Remarks     string         `gorm:"column:remarks;type:text" json:"remarks"`
	Attachments datatypes.JSON `gorm:"column:attachments" json:"attachments,omitempty"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (b *Base) TrialRef() uint64             { return b.TrialID }
func (b *Base) BindTrial(id uint64)          { b.TrialID = id }
func (b *Base) SetSubmitter(username string) { b.SubmittedBy = username }

// Grid models the dynamic add/remove column forms: an ordered column list
// plus a row-major value matrix.
type Grid struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func (g Grid) Validate() error {
	for i, row := range g.Rows {
		if len(row) != len(g.Columns) {
			return fmt.Errorf("row %d has %d values for %d columns: %w",
				i, len(row), len(g.Columns), ErrRaggedGrid)
		}
	}
	return nil
}

// validateGrid checks an optional JSON grid column. Absent/empty passes;
// unparseable or ragged content fails the submission.
func validateGrid(raw datatypes.JSON, field string) error {
	if len(raw) == 0 {
		return nil
	}
	var g Grid
	if err := json.Unmarshal(raw, &g); err != nil {
		return fmt.Errorf("%s: malformed grid: %w", field, err)
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return nil
}

type SandProperties struct {
	Base
	MoisturePct       float64        `gorm:"column:moisture_pct" json:"moisture_pct"`
	Permeability      float64        `gorm:"column:permeability" json:"permeability"`
	GreenCompression  float64        `gorm:"column:green_compression" json:"green_compression"`
	CompactabilityPct float64        `gorm:"column:compactability_pct" json:"compactability_pct"`
	Additions         datatypes.JSON `gorm:"column:additions" json:"additions,omitempty"`
}

func (SandProperties) TableName() string   { return "sand_properties" }
func (SandProperties) SectionType() Type   { return TypeSandProperties }
func (s *SandProperties) Validate() error { return nil }

type PouringDetails struct {
	Base
	PouringTempC        float64        `gorm:"column:pouring_temp_c" json:"pouring_temp_c"`
	PouringTimeSec      float64        `gorm:"column:pouring_time_sec" json:"pouring_time_sec"`
	LadleNo             string         `gorm:"column:ladle_no;size:32" json:"ladle_no"`
	ChemicalComposition datatypes.JSON `gorm:"column:chemical_composition" json:"chemical_composition,omitempty"`
}

func (PouringDetails) TableName() string   { return "pouring_details" }
func (PouringDetails) SectionType() Type   { return TypePouring }
func (p *PouringDetails) Validate() error { return nil }

type MouldingRecord struct {
	Base
	MouldHardness   float64        `gorm:"column:mould_hardness" json:"mould_hardness"`
	CavitiesPerMould int           `gorm:"column:cavities_per_mould" json:"cavities_per_mould"`
	CavityGrid      datatypes.JSON `gorm:"column:cavity_grid" json:"cavity_grid,omitempty"`
}

func (MouldingRecord) TableName() string { return "moulding_records" }
func (MouldingRecord) SectionType() Type { return TypeMoulding }
func (m *MouldingRecord) Validate() error {
	return validateGrid(m.CavityGrid, "cavity_grid")
}

type MetallurgicalInspection struct {
	Base
	Microstructure       string         `gorm:"column:microstructure;type:text" json:"microstructure"`
	HardnessBHN          float64        `gorm:"column:hardness_bhn" json:"hardness_bhn"`
	NodularityPct        float64        `gorm:"column:nodularity_pct" json:"nodularity_pct"`
	MechanicalProperties datatypes.JSON `gorm:"column:mechanical_properties" json:"mechanical_properties,omitempty"`
}

func (MetallurgicalInspection) TableName() string   { return "metallurgical_inspections" }
func (MetallurgicalInspection) SectionType() Type   { return TypeMetallurgical }
func (m *MetallurgicalInspection) Validate() error { return nil }

type VisualInspection struct {
	Base
	SurfaceFinish string         `gorm:"column:surface_finish;size:64" json:"surface_finish"`
	QtyChecked    int            `gorm:"column:qty_checked" json:"qty_checked"`
	QtyOK         int            `gorm:"column:qty_ok" json:"qty_ok"`
	DefectRows    datatypes.JSON `gorm:"column:defect_rows" json:"defect_rows,omitempty"`
}

func (VisualInspection) TableName() string   { return "visual_inspections" }
func (VisualInspection) SectionType() Type   { return TypeVisual }
func (v *VisualInspection) Validate() error { return nil }

type DimensionalInspection struct {
	Base
	DrawingRevision string         `gorm:"column:drawing_revision;size:32" json:"drawing_revision"`
	MeasurementGrid datatypes.JSON `gorm:"column:measurement_grid" json:"measurement_grid,omitempty"`
}

func (DimensionalInspection) TableName() string { return "dimensional_inspections" }
func (DimensionalInspection) SectionType() Type { return TypeDimensional }
func (d *DimensionalInspection) Validate() error {
	return validateGrid(d.MeasurementGrid, "measurement_grid")
}

type MachineShopInspection struct {
	Base
	Operation       string         `gorm:"column:operation;size:64" json:"operation"`
	QtyMachined     int            `gorm:"column:qty_machined" json:"qty_machined"`
	QtyOK           int            `gorm:"column:qty_ok" json:"qty_ok"`
	ObservationRows datatypes.JSON `gorm:"column:observation_rows" json:"observation_rows,omitempty"`
}

func (MachineShopInspection) TableName() string   { return "machine_shop_inspections" }
func (MachineShopInspection) SectionType() Type   { return TypeMachineShop }
func (m *MachineShopInspection) Validate() error { return nil }

// Types lists every section type in workflow order.
func Types() []Type {
	return []Type{
		TypeSandProperties, TypePouring, TypeMoulding, TypeMetallurgical,
		TypeVisual, TypeDimensional, TypeMachineShop,
	}
}

// New returns an empty payload of the given type.
func New(t Type) (Payload, error) {
	switch t {
	case TypeSandProperties:
		return &SandProperties{}, nil
	case TypePouring:
		return &PouringDetails{}, nil
	case TypeMoulding:
		return &MouldingRecord{}, nil
	case TypeMetallurgical:
		return &MetallurgicalInspection{}, nil
	case TypeVisual:
		return &VisualInspection{}, nil
	case TypeDimensional:
		return &DimensionalInspection{}, nil
	case TypeMachineShop:
		return &MachineShopInspection{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", t, ErrUnknownType)
	}
}

// Decode unmarshals a submitted body into the type's payload and runs its
// shape validation.
func Decode(t Type, body []byte) (Payload, error) {
	p, err := New(t)
	if err != nil {
		return nil, err
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", t, err)
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Models returns one empty struct per section table, for migrations.
func Models() []any {
	return []any{
		&SandProperties{}, &PouringDetails{}, &MouldingRecord{},
		&MetallurgicalInspection{}, &VisualInspection{},
		&DimensionalInspection{}, &MachineShopInspection{},
	}
}
