package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gatepass-backend/internal/usecase/jumma"
)

type JummaHandler struct{ uc *jumma.Usecase }

func NewJummaHandler(uc *jumma.Usecase) *JummaHandler { return &JummaHandler{uc: uc} }

// Run triggers one batch issuance on demand; the report is returned
// even when individual applicants failed.
func (h *JummaHandler) Run(c echo.Context) error {
	report := h.uc.Run(c.Request().Context())
	if report.Status == jumma.StatusError {
		return c.JSON(http.StatusInternalServerError, report)
	}
	return c.JSON(http.StatusOK, report)
}
