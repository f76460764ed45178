package workflow

import (
	"context"
	"errors"
	"time"

	deptDomain "foundry-trials-backend/internal/domain/department"
)

var (
	// ErrNotAuthorized rejects a submission from an operator assigned to a
	// different department.
	ErrNotAuthorized = errors.New("operator is not assigned to this department")
	// ErrWrongDepartment rejects out-of-order submissions: only the trial's
	// current department may submit.
	ErrWrongDepartment = errors.New("department is not the trial's current stage")
)

// Authorizer is the external role/department collaborator. The core only
// asks whether this operator may act for the target department.
type Authorizer interface {
	Authorize(ctx context.Context, operator Operator, target *deptDomain.Department) error
}

// AuthorizerFunc adapts a plain function to Authorizer.
type AuthorizerFunc func(ctx context.Context, operator Operator, target *deptDomain.Department) error

func (f AuthorizerFunc) Authorize(ctx context.Context, op Operator, d *deptDomain.Department) error {
	return f(ctx, op, d)
}

// DepartmentMatch authorizes operators whose claimed department code matches
// the target department. Session/claim issuance is upstream's problem.
func DepartmentMatch() Authorizer {
	return AuthorizerFunc(func(_ context.Context, op Operator, d *deptDomain.Department) error {
		if op.Department != d.Code {
			return ErrNotAuthorized
		}
		return nil
	})
}

// Operator is the authenticated caller identity the adapter extracts.
type Operator struct {
	ID         string
	Department string
}

type SubmitInput struct {
	TrialID        string
	DepartmentCode string
	Operator       Operator
	Remarks        string
	// Payload is the raw section body; decoded by section type.
	Payload []byte
}

type DecisionInput struct {
	TrialID        string
	DepartmentCode string
	Approver       string
	Remarks        string
}

type ProgressDTO struct {
	RecordID       string     `json:"record_id"`
	TrialID        string     `json:"trial_id"`
	DepartmentID   uint       `json:"department_id"`
	DepartmentCode string     `json:"department_code"`
	SubmittedBy    string     `json:"submitted_by"`
	Status         string     `json:"status"`
	Remarks        string     `json:"remarks"`
	CompletedAt    *time.Time `json:"completed_at"`
	SubmittedAt    time.Time  `json:"submitted_at"`
}
