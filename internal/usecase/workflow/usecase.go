package workflow

import (
	"context"
	"errors"
	"time"

	auditDomain "foundry-trials-backend/internal/domain/audit"
	deptDomain "foundry-trials-backend/internal/domain/department"
	progressDomain "foundry-trials-backend/internal/domain/progress"
	sectionDomain "foundry-trials-backend/internal/domain/section"
	trialDomain "foundry-trials-backend/internal/domain/trial"
	"foundry-trials-backend/internal/domain/uow"
	"foundry-trials-backend/pkg/id"
	"foundry-trials-backend/pkg/logger"

	"gorm.io/gorm"
)

// Usecase orchestrates the write path of a department submission and the
// administrative approve/reject transitions.
type Usecase struct {
	departments deptDomain.Repository
	progress    progressDomain.Repository
	audit       auditDomain.Repository
	trials      trialDomain.Repository
	authorizer  Authorizer
	uow         uow.UnitOfWork
	log         *logger.Logger
}

func NewUsecase(
	departments deptDomain.Repository,
	progress progressDomain.Repository,
	audit auditDomain.Repository,
	trials trialDomain.Repository,
	authorizer Authorizer,
	tx uow.UnitOfWork,
	log *logger.Logger,
) *Usecase {
	return &Usecase{
		departments: departments,
		progress:    progress,
		audit:       audit,
		trials:      trials,
		authorizer:  authorizer,
		uow:         tx,
		log:         log,
	}
}

func (u *Usecase) department(ctx context.Context, code string) (*deptDomain.Department, error) {
	d, err := u.departments.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, deptDomain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func progressDTO(rec *progressDomain.Record, trialID string, code string) *ProgressDTO {
	return &ProgressDTO{
		RecordID:       rec.RecordID,
		TrialID:        trialID,
		DepartmentID:   rec.DepartmentID,
		DepartmentCode: code,
		SubmittedBy:    rec.SubmittedBy,
		Status:         string(rec.Status),
		Remarks:        rec.Remarks,
		CompletedAt:    rec.CompletedAt,
		SubmittedAt:    rec.CreatedAt,
	}
}

// SubmitSection persists the section payload, opens a pending progress record
// and appends the audit entry as one transaction with the trial row locked.
// A failure at any step leaves nothing behind.
func (u *Usecase) SubmitSection(ctx context.Context, in SubmitInput) (*ProgressDTO, error) {
	dept, err := u.department(ctx, in.DepartmentCode)
	if err != nil {
		return nil, err
	}
	if err := u.authorizer.Authorize(ctx, in.Operator, dept); err != nil {
		return nil, err
	}

	// Decode and shape-check before touching storage.
	payload, err := sectionDomain.Decode(sectionDomain.Type(dept.Code), in.Payload)
	if err != nil {
		return nil, err
	}

	var dto *ProgressDTO
	err = u.uow.WithinTrialTx(ctx, in.TrialID, func(r uow.Repos, t *trialDomain.Trial) error {
		if t.Status != trialDomain.StatusActive {
			return trialDomain.ErrClosed
		}
		if t.CurrentDepartmentID == nil || *t.CurrentDepartmentID != dept.ID {
			return ErrWrongDepartment
		}

		// Locked duplicate check; the pending_key unique index is the
		// schema-level backstop.
		if _, err := r.Progress.GetPending(ctx, t.ID, dept.ID); err == nil {
			return progressDomain.ErrDuplicatePending
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		payload.BindTrial(t.ID)
		payload.SetSubmitter(in.Operator.ID)
		if err := r.Sections.Upsert(ctx, payload); err != nil {
			return err
		}

		key := progressDomain.BuildPendingKey(t.ID, dept.ID)
		rec := &progressDomain.Record{
			RecordID:     id.NewID32(),
			TrialID:      t.ID,
			DepartmentID: dept.ID,
			SubmittedBy:  in.Operator.ID,
			Status:       progressDomain.StatusPending,
			Remarks:      in.Remarks,
			PendingKey:   &key,
		}
		if err := r.Progress.Create(ctx, rec); err != nil {
			return err
		}

		if err := r.Audit.Append(ctx, &auditDomain.Entry{
			EntryID:      id.NewID32(),
			TrialID:      &t.ID,
			DepartmentID: &dept.ID,
			UserID:       in.Operator.ID,
			Action:       auditDomain.ActionSectionSubmitted,
			Remarks:      in.Remarks,
		}); err != nil {
			return err
		}

		dto = progressDTO(rec, t.TrialID, dept.Code)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("section submitted",
		"trial_id", in.TrialID, "department", dept.Code, "operator", in.Operator.ID)
	return dto, nil
}

// Approve moves the pending record to its terminal approved state, advances
// the trial's department pointer (closing the trial past the last department)
// and appends the approval audit entry in the same transaction.
func (u *Usecase) Approve(ctx context.Context, in DecisionInput) (*ProgressDTO, error) {
	dept, err := u.department(ctx, in.DepartmentCode)
	if err != nil {
		return nil, err
	}

	var dto *ProgressDTO
	err = u.uow.WithinTrialTx(ctx, in.TrialID, func(r uow.Repos, t *trialDomain.Trial) error {
		rec, err := r.Progress.GetPending(ctx, t.ID, dept.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return progressDomain.ErrNoPendingRecord
			}
			return err
		}

		now := time.Now().UTC()
		rec.MarkApproved(now)
		if err := r.Progress.Save(ctx, rec); err != nil {
			return err
		}

		next, err := r.Departments.NextAfter(ctx, dept.Position)
		switch {
		case err == nil:
			t.CurrentDepartmentID = &next.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Last department approved: the trial is complete.
			t.CurrentDepartmentID = nil
			t.Status = trialDomain.StatusClosed
		default:
			return err
		}
		t.StatusUpdatedAt = now
		if err := r.Trials.Save(ctx, t); err != nil {
			return err
		}

		if err := r.Audit.Append(ctx, &auditDomain.Entry{
			EntryID:      id.NewID32(),
			TrialID:      &t.ID,
			DepartmentID: &dept.ID,
			UserID:       in.Approver,
			Action:       auditDomain.ActionProgressApproved,
			Remarks:      in.Remarks,
		}); err != nil {
			return err
		}

		dto = progressDTO(rec, t.TrialID, dept.Code)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("progress approved",
		"trial_id", in.TrialID, "department", dept.Code, "approver", in.Approver)
	return dto, nil
}

// Reject moves the pending record to rejected; the department pointer stays
// put so the department can resubmit (a new pending row).
func (u *Usecase) Reject(ctx context.Context, in DecisionInput) (*ProgressDTO, error) {
	dept, err := u.department(ctx, in.DepartmentCode)
	if err != nil {
		return nil, err
	}

	var dto *ProgressDTO
	err = u.uow.WithinTrialTx(ctx, in.TrialID, func(r uow.Repos, t *trialDomain.Trial) error {
		rec, err := r.Progress.GetPending(ctx, t.ID, dept.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return progressDomain.ErrNoPendingRecord
			}
			return err
		}

		rec.MarkRejected(time.Now().UTC(), in.Remarks)
		if err := r.Progress.Save(ctx, rec); err != nil {
			return err
		}

		if err := r.Audit.Append(ctx, &auditDomain.Entry{
			EntryID:      id.NewID32(),
			TrialID:      &t.ID,
			DepartmentID: &dept.ID,
			UserID:       in.Approver,
			Action:       auditDomain.ActionProgressRejected,
			Remarks:      in.Remarks,
		}); err != nil {
			return err
		}

		dto = progressDTO(rec, t.TrialID, dept.Code)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ListPending returns the user's outstanding submissions, newest first.
func (u *Usecase) ListPending(ctx context.Context, username string) ([]progressDomain.PendingItem, error) {
	return u.progress.ListPendingByUser(ctx, username)
}

// Trail returns a trial's audit entries, newest first, optionally narrowed
// to one action label.
func (u *Usecase) Trail(ctx context.Context, trialID string, action string) ([]auditDomain.Entry, error) {
	t, err := u.trials.GetByTrialID(ctx, trialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, trialDomain.ErrNotFound
		}
		return nil, err
	}
	return u.audit.Query(ctx, auditDomain.Filter{TrialID: t.ID, Action: action})
}

// ListCompletedByDepartment answers "which trials has this department
// finished" from the audit trail: a trial is complete for a department iff an
// approval entry exists.
func (u *Usecase) ListCompletedByDepartment(ctx context.Context, departmentCode string) ([]auditDomain.CompletedItem, error) {
	dept, err := u.department(ctx, departmentCode)
	if err != nil {
		return nil, err
	}
	return u.audit.ListCompletedByDepartment(ctx, dept.ID)
}

// ListFullyCompleted is the whole-trial reading of "completed": every
// department in the sequence has approved, i.e. the trial is closed.
func (u *Usecase) ListFullyCompleted(ctx context.Context) ([]trialDomain.Trial, error) {
	return u.trials.ListByStatus(ctx, trialDomain.StatusClosed)
}

// Departments exposes the configured sequence, in workflow order.
func (u *Usecase) Departments(ctx context.Context) ([]deptDomain.Department, error) {
	return u.departments.List(ctx)
}
