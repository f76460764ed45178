package http

import (
	"net/http"
	"time"

	ucTrial "foundry-trials-backend/internal/usecase/trial"

	"github.com/labstack/echo/v4"
)

type TrialHandler struct{ uc *ucTrial.Usecase }

func NewTrialHandler(uc *ucTrial.Usecase) *TrialHandler { return &TrialHandler{uc: uc} }

type createTrialReq struct {
	PartName         string `json:"part_name"         validate:"required,partname,max=96"`
	PatternCode      string `json:"pattern_code"      validate:"required,max=64"`
	MaterialGrade    string `json:"material_grade"    validate:"required,max=64"`
	Initiator        string `json:"initiator"         validate:"required,max=64"`
	SamplingDate     string `json:"sampling_date"     validate:"required,datetime=2006-01-02"`
	MouldsPlanned    int    `json:"moulds_planned"    validate:"required,gte=1"`
	MouldsActual     int    `json:"moulds_actual"     validate:"gte=0"`
	SamplingReason   string `json:"sampling_reason"   validate:"required"`
	TraceabilityCode string `json:"traceability_code" validate:"required,max=64"`
	Machine          string `json:"machine"           validate:"required,max=64"`
}

func (h *TrialHandler) CreateTrial(c echo.Context) error {
	var req createTrialReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	samplingDate, _ := time.Parse("2006-01-02", req.SamplingDate)
	dto, err := h.uc.Create(c.Request().Context(), ucTrial.CreateTrialInput{
		PartName:         req.PartName,
		PatternCode:      req.PatternCode,
		MaterialGrade:    req.MaterialGrade,
		Initiator:        req.Initiator,
		SamplingDate:     samplingDate,
		MouldsPlanned:    req.MouldsPlanned,
		MouldsActual:     req.MouldsActual,
		SamplingReason:   req.SamplingReason,
		TraceabilityCode: req.TraceabilityCode,
		Machine:          req.Machine,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *TrialHandler) GetTrial(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("trial_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *TrialHandler) ListTrials(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *TrialHandler) ListDeletedTrials(c echo.Context) error {
	dtos, err := h.uc.ListDeleted(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *TrialHandler) SoftDeleteTrial(c echo.Context) error {
	op := operator(c)
	if op.ID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-Operator-Id"})
	}
	if err := h.uc.SoftDelete(c.Request().Context(), c.Param("trial_id"), op.ID); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *TrialHandler) RestoreTrial(c echo.Context) error {
	op := operator(c)
	if op.ID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-Operator-Id"})
	}
	if err := h.uc.Restore(c.Request().Context(), c.Param("trial_id"), op.ID); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "restored"})
}

func (h *TrialHandler) PermanentDeleteTrial(c echo.Context) error {
	op := operator(c)
	if op.ID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-Operator-Id"})
	}
	if err := h.uc.PermanentDelete(c.Request().Context(), c.Param("trial_id"), op.ID); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "permanently deleted"})
}
