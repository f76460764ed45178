package http

import (
	"errors"
	"net/http"
	"strings"

	deptDomain "foundry-trials-backend/internal/domain/department"
	progressDomain "foundry-trials-backend/internal/domain/progress"
	sectionDomain "foundry-trials-backend/internal/domain/section"
	trialDomain "foundry-trials-backend/internal/domain/trial"
	"foundry-trials-backend/internal/usecase/workflow"

	"github.com/labstack/echo/v4"
)

// operator pulls the authenticated caller identity from upstream-auth
// headers. Session issuance is an external collaborator.
func operator(c echo.Context) workflow.Operator {
	return workflow.Operator{
		ID:         strings.TrimSpace(c.Request().Header.Get("X-Operator-Id")),
		Department: strings.TrimSpace(c.Request().Header.Get("X-Operator-Department")),
	}
}

// writeDomainError maps domain errors to HTTP responses.
func writeDomainError(c echo.Context, err error) error {
	var ve *trialDomain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Error()})
	case errors.Is(err, trialDomain.ErrNotFound),
		errors.Is(err, deptDomain.ErrNotFound),
		errors.Is(err, sectionDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, progressDomain.ErrDuplicatePending),
		errors.Is(err, progressDomain.ErrNoPendingRecord),
		errors.Is(err, workflow.ErrWrongDepartment),
		errors.Is(err, trialDomain.ErrClosed):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, workflow.ErrNotAuthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, sectionDomain.ErrRaggedGrid),
		errors.Is(err, sectionDomain.ErrUnknownType):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
