package trial

import (
	"context"
	"errors"
	"fmt"
	"time"

	auditDomain "foundry-trials-backend/internal/domain/audit"
	trialDomain "foundry-trials-backend/internal/domain/trial"
	"foundry-trials-backend/internal/domain/uow"
	"foundry-trials-backend/pkg/id"
	"foundry-trials-backend/pkg/logger"

	"gorm.io/gorm"
)

type Usecase struct {
	repo trialDomain.Repository
	uow  uow.UnitOfWork
	log  *logger.Logger
}

func NewUsecase(repo trialDomain.Repository, tx uow.UnitOfWork, log *logger.Logger) *Usecase {
	return &Usecase{repo: repo, uow: tx, log: log}
}

func toDTO(t *trialDomain.Trial) *TrialDTO {
	return &TrialDTO{
		TrialID:             t.TrialID,
		PartName:            t.PartName,
		PatternCode:         t.PatternCode,
		MaterialGrade:       t.MaterialGrade,
		Initiator:           t.Initiator,
		SamplingDate:        t.SamplingDate,
		MouldsPlanned:       t.MouldsPlanned,
		MouldsActual:        t.MouldsActual,
		SamplingReason:      t.SamplingReason,
		TraceabilityCode:    t.TraceabilityCode,
		Machine:             t.Machine,
		CurrentDepartmentID: t.CurrentDepartmentID,
		Status:              string(t.Status),
		CreatedAt:           t.CreatedAt,
	}
}

func validateCreate(in CreateTrialInput) error {
	var missing []string
	check := func(name, v string) {
		if v == "" {
			missing = append(missing, name)
		}
	}
	check("part_name", in.PartName)
	check("pattern_code", in.PatternCode)
	check("material_grade", in.MaterialGrade)
	check("initiator", in.Initiator)
	check("sampling_reason", in.SamplingReason)
	check("traceability_code", in.TraceabilityCode)
	check("machine", in.Machine)
	if in.SamplingDate.IsZero() {
		missing = append(missing, "sampling_date")
	}
	if in.MouldsPlanned <= 0 {
		missing = append(missing, "moulds_planned")
	}
	if len(missing) > 0 {
		return &trialDomain.ValidationError{Fields: missing}
	}
	return nil
}

// Create allocates the trial id from the per-part counter, points the trial
// at the first department in the sequence and writes the creation audit
// entry, all in one transaction.
func (u *Usecase) Create(ctx context.Context, in CreateTrialInput) (*TrialDTO, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	var dto *TrialDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		seq, err := r.Trials.AllocateSequence(ctx, in.PartName)
		if err != nil {
			return fmt.Errorf("allocate sequence: %w", err)
		}

		depts, err := r.Departments.List(ctx)
		if err != nil {
			return err
		}
		if len(depts) == 0 {
			return errors.New("department sequence is not configured")
		}
		first := depts[0].ID

		t := &trialDomain.Trial{
			TrialID:             trialDomain.FormatTrialID(in.PartName, seq),
			PartName:            in.PartName,
			PatternCode:         in.PatternCode,
			MaterialGrade:       in.MaterialGrade,
			Initiator:           in.Initiator,
			SamplingDate:        in.SamplingDate,
			MouldsPlanned:       in.MouldsPlanned,
			MouldsActual:        in.MouldsActual,
			SamplingReason:      in.SamplingReason,
			TraceabilityCode:    in.TraceabilityCode,
			Machine:             in.Machine,
			CurrentDepartmentID: &first,
			Status:              trialDomain.StatusActive,
			StatusUpdatedAt:     time.Now().UTC(),
		}
		if err := r.Trials.Create(ctx, t); err != nil {
			return err
		}

		if err := r.Audit.Append(ctx, &auditDomain.Entry{
			EntryID: id.NewID32(),
			TrialID: &t.ID,
			UserID:  in.Initiator,
			Action:  auditDomain.ActionTrialCreated,
		}); err != nil {
			return err
		}

		dto = toDTO(t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("trial created", "trial_id", dto.TrialID, "initiator", in.Initiator)
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, trialID string) (*TrialDTO, error) {
	t, err := u.repo.GetByTrialID(ctx, trialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, trialDomain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(t), nil
}

func (u *Usecase) List(ctx context.Context) ([]TrialDTO, error) {
	ts, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TrialDTO, 0, len(ts))
	for i := range ts {
		out = append(out, *toDTO(&ts[i]))
	}
	return out, nil
}

// ListDeleted is the recycle-bin view: soft-deleted trials only.
func (u *Usecase) ListDeleted(ctx context.Context) ([]TrialDTO, error) {
	ts, err := u.repo.ListDeleted(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TrialDTO, 0, len(ts))
	for i := range ts {
		out = append(out, *toDTO(&ts[i]))
	}
	return out, nil
}

// SoftDelete hides the trial from active views. Idempotent: deleting an
// already-deleted trial succeeds without a second audit entry.
func (u *Usecase) SoftDelete(ctx context.Context, trialID, actor string) error {
	t, err := u.repo.GetByTrialIDUnscoped(ctx, trialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return trialDomain.ErrNotFound
		}
		return err
	}
	if t.DeletedAt.Valid {
		return nil
	}

	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Trials.SoftDelete(ctx, t, actor); err != nil {
			return err
		}
		return r.Audit.Append(ctx, &auditDomain.Entry{
			EntryID: id.NewID32(),
			TrialID: &t.ID,
			UserID:  actor,
			Action:  auditDomain.ActionTrialDeleted,
		})
	})
}

// Restore reverses a soft delete. The post-restore status is recomputed from
// the department pointer: no pointer means the sequence finished, so closed.
func (u *Usecase) Restore(ctx context.Context, trialID, actor string) error {
	t, err := u.repo.GetByTrialIDUnscoped(ctx, trialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return trialDomain.ErrNotFound
		}
		return err
	}
	if !t.DeletedAt.Valid {
		return nil
	}

	status := trialDomain.StatusActive
	if t.CurrentDepartmentID == nil {
		status = trialDomain.StatusClosed
	}

	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Trials.Restore(ctx, trialID, status); err != nil {
			return err
		}
		return r.Audit.Append(ctx, &auditDomain.Entry{
			EntryID: id.NewID32(),
			TrialID: &t.ID,
			UserID:  actor,
			Action:  auditDomain.ActionTrialRestored,
		})
	})
}

// PermanentDelete cascades removal of progress, audit and section rows.
// Irreversible; recycle-bin flows only. A purge entry is kept with a nil
// trial reference since the trial's own audit rows go with it.
func (u *Usecase) PermanentDelete(ctx context.Context, trialID, actor string) error {
	t, err := u.repo.GetByTrialIDUnscoped(ctx, trialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return trialDomain.ErrNotFound
		}
		return err
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Progress.HardDeleteByTrial(ctx, t.ID); err != nil {
			return err
		}
		if err := r.Audit.HardDeleteByTrial(ctx, t.ID); err != nil {
			return err
		}
		if err := r.Sections.HardDeleteByTrial(ctx, t.ID); err != nil {
			return err
		}
		if err := r.Trials.HardDelete(ctx, t.ID); err != nil {
			return err
		}
		return r.Audit.Append(ctx, &auditDomain.Entry{
			EntryID: id.NewID32(),
			UserID:  actor,
			Action:  auditDomain.ActionTrialPurged,
			Remarks: "trial " + trialID,
		})
	})
	if err != nil {
		return err
	}
	u.log.Warn("trial permanently deleted", "trial_id", trialID, "actor", actor)
	return nil
}
