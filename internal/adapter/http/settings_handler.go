package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gatepass-backend/internal/usecase/sysconfig"
)

type SettingsHandler struct{ uc *sysconfig.Usecase }

func NewSettingsHandler(uc *sysconfig.Usecase) *SettingsHandler { return &SettingsHandler{uc: uc} }

func (h *SettingsHandler) Get(c echo.Context) error {
	s, err := h.uc.Get(c.Request().Context())
	if err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SettingsHandler) Update(c echo.Context) error {
	var req sysconfig.UpdateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	s, err := h.uc.Update(c.Request().Context(), req)
	if err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, s)
}
