package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"foundry-trials-backend/internal/usecase/workflow"

	"github.com/labstack/echo/v4"
)

type WorkflowHandler struct{ uc *workflow.Usecase }

func NewWorkflowHandler(uc *workflow.Usecase) *WorkflowHandler {
	return &WorkflowHandler{uc: uc}
}

type submitSectionReq struct {
	Remarks string `json:"remarks"`
	// Payload is passed through to the section decoder untouched.
	Payload json.RawMessage `json:"payload"`
}

func (h *WorkflowHandler) SubmitSection(c echo.Context) error {
	op := operator(c)
	if op.ID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-Operator-Id"})
	}

	var req submitSectionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	dto, err := h.uc.SubmitSection(c.Request().Context(), workflow.SubmitInput{
		TrialID:        c.Param("trial_id"),
		DepartmentCode: c.Param("department"),
		Operator:       op,
		Remarks:        req.Remarks,
		Payload:        req.Payload,
	})
	if err != nil {
		// decode failures surface as 400 with the parse detail
		if strings.Contains(err.Error(), "decode") {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type decisionReq struct {
	Remarks string `json:"remarks"`
}

func (h *WorkflowHandler) Approve(c echo.Context) error {
	op := operator(c)
	if op.ID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-Operator-Id"})
	}
	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Approve(c.Request().Context(), workflow.DecisionInput{
		TrialID:        c.Param("trial_id"),
		DepartmentCode: c.Param("department"),
		Approver:       op.ID,
		Remarks:        req.Remarks,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WorkflowHandler) Reject(c echo.Context) error {
	op := operator(c)
	if op.ID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-Operator-Id"})
	}
	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Reject(c.Request().Context(), workflow.DecisionInput{
		TrialID:        c.Param("trial_id"),
		DepartmentCode: c.Param("department"),
		Approver:       op.ID,
		Remarks:        req.Remarks,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WorkflowHandler) ListPending(c echo.Context) error {
	username := strings.TrimSpace(c.QueryParam("username"))
	if username == "" {
		username = operator(c).ID
	}
	if username == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing username"})
	}
	items, err := h.uc.ListPending(c.Request().Context(), username)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *WorkflowHandler) Trail(c echo.Context) error {
	entries, err := h.uc.Trail(c.Request().Context(), c.Param("trial_id"), c.QueryParam("action"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *WorkflowHandler) ListCompleted(c echo.Context) error {
	items, err := h.uc.ListCompletedByDepartment(c.Request().Context(), c.Param("department"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *WorkflowHandler) ListClosedTrials(c echo.Context) error {
	trials, err := h.uc.ListFullyCompleted(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, trials)
}

func (h *WorkflowHandler) ListDepartments(c echo.Context) error {
	depts, err := h.uc.Departments(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, depts)
}
