package report

import (
	"context"
	"encoding/json"
	"errors"

	deptDomain "foundry-trials-backend/internal/domain/department"
	progressDomain "foundry-trials-backend/internal/domain/progress"
	sectionDomain "foundry-trials-backend/internal/domain/section"
	trialDomain "foundry-trials-backend/internal/domain/trial"
	"foundry-trials-backend/pkg/logger"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Usecase builds the composite report. Read-only: it never mutates state, and
// one corrupt section payload never blocks the rest of the report.
type Usecase struct {
	trials      trialDomain.Repository
	progress    progressDomain.Repository
	sections    sectionDomain.Repository
	departments deptDomain.Repository
	log         *logger.Logger
}

func NewUsecase(
	trials trialDomain.Repository,
	progress progressDomain.Repository,
	sections sectionDomain.Repository,
	departments deptDomain.Repository,
	log *logger.Logger,
) *Usecase {
	return &Usecase{
		trials:      trials,
		progress:    progress,
		sections:    sections,
		departments: departments,
		log:         log,
	}
}

// rowsOrEmpty decodes a stored dynamic row set, degrading malformed JSON to
// an empty slice.
func (u *Usecase) rowsOrEmpty(raw datatypes.JSON, field string) []Row {
	if len(raw) == 0 {
		return []Row{}
	}
	var rows []Row
	if err := json.Unmarshal(raw, &rows); err != nil {
		u.log.Warn("malformed section rows, degrading to empty", "field", field, "error", err)
		return []Row{}
	}
	return rows
}

// gridOrEmpty decodes a stored grid, degrading malformed JSON to a zero grid.
func (u *Usecase) gridOrEmpty(raw datatypes.JSON, field string) sectionDomain.Grid {
	if len(raw) == 0 {
		return sectionDomain.Grid{}
	}
	var g sectionDomain.Grid
	if err := json.Unmarshal(raw, &g); err != nil {
		u.log.Warn("malformed section grid, degrading to empty", "field", field, "error", err)
		return sectionDomain.Grid{}
	}
	return g
}

func (u *Usecase) attachmentsOrEmpty(raw datatypes.JSON) []Attachment {
	if len(raw) == 0 {
		return nil
	}
	var atts []Attachment
	if err := json.Unmarshal(raw, &atts); err != nil {
		u.log.Warn("malformed attachment metadata, degrading to empty", "error", err)
		return nil
	}
	return atts
}

func (u *Usecase) sectionView(p sectionDomain.Payload) SectionView {
	var (
		base sectionDomain.Base
		data any
	)
	switch s := p.(type) {
	case *sectionDomain.SandProperties:
		base = s.Base
		data = sandPropertiesView{
			MoisturePct:       s.MoisturePct,
			Permeability:      s.Permeability,
			GreenCompression:  s.GreenCompression,
			CompactabilityPct: s.CompactabilityPct,
			Additions:         u.rowsOrEmpty(s.Additions, "additions"),
		}
	case *sectionDomain.PouringDetails:
		base = s.Base
		data = pouringView{
			PouringTempC:        s.PouringTempC,
			PouringTimeSec:      s.PouringTimeSec,
			LadleNo:             s.LadleNo,
			ChemicalComposition: u.rowsOrEmpty(s.ChemicalComposition, "chemical_composition"),
		}
	case *sectionDomain.MouldingRecord:
		base = s.Base
		data = mouldingView{
			MouldHardness:    s.MouldHardness,
			CavitiesPerMould: s.CavitiesPerMould,
			CavityGrid:       u.gridOrEmpty(s.CavityGrid, "cavity_grid"),
		}
	case *sectionDomain.MetallurgicalInspection:
		base = s.Base
		data = metallurgicalView{
			Microstructure:       s.Microstructure,
			HardnessBHN:          s.HardnessBHN,
			NodularityPct:        s.NodularityPct,
			MechanicalProperties: u.rowsOrEmpty(s.MechanicalProperties, "mechanical_properties"),
		}
	case *sectionDomain.VisualInspection:
		base = s.Base
		data = visualView{
			SurfaceFinish: s.SurfaceFinish,
			QtyChecked:    s.QtyChecked,
			QtyOK:         s.QtyOK,
			DefectRows:    u.rowsOrEmpty(s.DefectRows, "defect_rows"),
		}
	case *sectionDomain.DimensionalInspection:
		base = s.Base
		data = dimensionalView{
			DrawingRevision: s.DrawingRevision,
			MeasurementGrid: u.gridOrEmpty(s.MeasurementGrid, "measurement_grid"),
		}
	case *sectionDomain.MachineShopInspection:
		base = s.Base
		data = machineShopView{
			Operation:       s.Operation,
			QtyMachined:     s.QtyMachined,
			QtyOK:           s.QtyOK,
			ObservationRows: u.rowsOrEmpty(s.ObservationRows, "observation_rows"),
		}
	}
	return SectionView{
		SubmittedBy: base.SubmittedBy,
		Remarks:     base.Remarks,
		Attachments: u.attachmentsOrEmpty(base.Attachments),
		UpdatedAt:   base.UpdatedAt,
		Data:        data,
	}
}

// BuildFullReport joins the trial, its progress history and every submitted
// section. Missing sections are omitted; only an absent trial is an error.
func (u *Usecase) BuildFullReport(ctx context.Context, trialID string) (*CompositeReport, error) {
	t, err := u.trials.GetByTrialID(ctx, trialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, trialDomain.ErrNotFound
		}
		return nil, err
	}

	depts, err := u.departments.List(ctx)
	if err != nil {
		return nil, err
	}
	deptNames := make(map[uint]string, len(depts))
	for _, d := range depts {
		deptNames[d.ID] = d.Name
	}

	summary := TrialSummary{
		TrialID:          t.TrialID,
		PartName:         t.PartName,
		PatternCode:      t.PatternCode,
		MaterialGrade:    t.MaterialGrade,
		Initiator:        t.Initiator,
		SamplingDate:     t.SamplingDate,
		MouldsPlanned:    t.MouldsPlanned,
		MouldsActual:     t.MouldsActual,
		SamplingReason:   t.SamplingReason,
		TraceabilityCode: t.TraceabilityCode,
		Machine:          t.Machine,
		Status:           string(t.Status),
		CreatedAt:        t.CreatedAt,
	}
	if t.CurrentDepartmentID != nil {
		summary.CurrentDepartment = deptNames[*t.CurrentDepartmentID]
	}

	records, err := u.progress.ListByTrial(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	history := make([]ProgressEntry, 0, len(records))
	for _, rec := range records {
		history = append(history, ProgressEntry{
			DepartmentID:   rec.DepartmentID,
			DepartmentName: deptNames[rec.DepartmentID],
			SubmittedBy:    rec.SubmittedBy,
			Status:         string(rec.Status),
			Remarks:        rec.Remarks,
			SubmittedAt:    rec.CreatedAt,
			CompletedAt:    rec.CompletedAt,
		})
	}

	payloads, err := u.sections.ListForTrial(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	sections := make(map[string]SectionView, len(payloads))
	for _, p := range payloads {
		sections[string(p.SectionType())] = u.sectionView(p)
	}

	return &CompositeReport{
		Trial:    summary,
		Progress: history,
		Sections: sections,
	}, nil
}
