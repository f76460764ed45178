package http

import (
	"net/http"

	ucReport "foundry-trials-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ uc *ucReport.Usecase }

func NewReportHandler(uc *ucReport.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

func (h *ReportHandler) FullReport(c echo.Context) error {
	rep, err := h.uc.BuildFullReport(c.Request().Context(), c.Param("trial_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}
