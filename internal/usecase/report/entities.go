package report

import (
	"time"

	sectionDomain "foundry-trials-backend/internal/domain/section"
)

// CompositeReport joins one trial with its progress history and every section
// that has been submitted so far. Sections map keys are section type strings;
// absent sections are simply missing from the map.
type CompositeReport struct {
	Trial    TrialSummary           `json:"trial"`
	Progress []ProgressEntry        `json:"progress"`
	Sections map[string]SectionView `json:"sections"`
}

type TrialSummary struct {
	TrialID           string    `json:"trial_id"`
	PartName          string    `json:"part_name"`
	PatternCode       string    `json:"pattern_code"`
	MaterialGrade     string    `json:"material_grade"`
	Initiator         string    `json:"initiator"`
	SamplingDate      time.Time `json:"sampling_date"`
	MouldsPlanned     int       `json:"moulds_planned"`
	MouldsActual      int       `json:"moulds_actual"`
	SamplingReason    string    `json:"sampling_reason"`
	TraceabilityCode  string    `json:"traceability_code"`
	Machine           string    `json:"machine"`
	CurrentDepartment string    `json:"current_department,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

type ProgressEntry struct {
	DepartmentID   uint       `json:"department_id"`
	DepartmentName string     `json:"department_name"`
	SubmittedBy    string     `json:"submitted_by"`
	Status         string     `json:"status"`
	Remarks        string     `json:"remarks"`
	SubmittedAt    time.Time  `json:"submitted_at"`
	CompletedAt    *time.Time `json:"completed_at"`
}

// Row is one decoded entry of a dynamic row set (composition tables,
// mechanical properties, defect lists). Malformed stored rows decode to an
// empty slice, never an error.
type Row map[string]any

// Attachment is the stored metadata of one uploaded file; the files
// themselves live in the external attachment store.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size,omitempty"`
}

// SectionView is the report rendering of one section payload: shared header
// fields plus the type-specific body with composite fields already decoded.
type SectionView struct {
	SubmittedBy string       `json:"submitted_by"`
	Remarks     string       `json:"remarks,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Data        any          `json:"data"`
}

type sandPropertiesView struct {
	MoisturePct       float64 `json:"moisture_pct"`
	Permeability      float64 `json:"permeability"`
	GreenCompression  float64 `json:"green_compression"`
	CompactabilityPct float64 `json:"compactability_pct"`
	Additions         []Row   `json:"additions"`
}

type pouringView struct {
	PouringTempC        float64 `json:"pouring_temp_c"`
	PouringTimeSec      float64 `json:"pouring_time_sec"`
	LadleNo             string  `json:"ladle_no"`
	ChemicalComposition []Row   `json:"chemical_composition"`
}

type mouldingView struct {
	MouldHardness    float64            `json:"mould_hardness"`
	CavitiesPerMould int                `json:"cavities_per_mould"`
	CavityGrid       sectionDomain.Grid `json:"cavity_grid"`
}

type metallurgicalView struct {
	Microstructure       string  `json:"microstructure"`
	HardnessBHN          float64 `json:"hardness_bhn"`
	NodularityPct        float64 `json:"nodularity_pct"`
	MechanicalProperties []Row   `json:"mechanical_properties"`
}

type visualView struct {
	SurfaceFinish string `json:"surface_finish"`
	QtyChecked    int    `json:"qty_checked"`
	QtyOK         int    `json:"qty_ok"`
	DefectRows    []Row  `json:"defect_rows"`
}

type dimensionalView struct {
	DrawingRevision string             `json:"drawing_revision"`
	MeasurementGrid sectionDomain.Grid `json:"measurement_grid"`
}

type machineShopView struct {
	Operation       string `json:"operation"`
	QtyMachined     int    `json:"qty_machined"`
	QtyOK           int    `json:"qty_ok"`
	ObservationRows []Row  `json:"observation_rows"`
}
