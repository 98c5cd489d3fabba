package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gatepass-backend/internal/adapter/middleware"
	"gatepass-backend/internal/domain/applicant"
	passuc "gatepass-backend/internal/usecase/pass"
)

type PassHandler struct{ uc *passuc.Usecase }

func NewPassHandler(uc *passuc.Usecase) *PassHandler { return &PassHandler{uc: uc} }

// Submit creates a pass for the authenticated applicant.
func (h *PassHandler) Submit(c echo.Context) error {
	var req passuc.SubmitInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	actor := passuc.Actor{ID: middleware.UID(c)}
	switch middleware.Role(c) {
	case "student":
		actor.Type = applicant.TypeStudent
	case "faculty":
		actor.Type = applicant.TypeFaculty
	default:
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "only applicants may submit passes"})
	}

	dto, err := h.uc.Submit(c.Request().Context(), actor, req)
	if err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PassHandler) Get(c echo.Context) error {
	passID := c.Param("pass_id")
	if passID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing pass_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), passID)
	if err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}

// History lists the caller's own passes; ?status= filters.
func (h *PassHandler) History(c echo.Context) error {
	list, err := h.uc.History(c.Request().Context(), middleware.UID(c), c.QueryParam("status"))
	if err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]any{"passes": list})
}

// PendingInbox lists passes waiting on a role the caller holds.
func (h *PassHandler) PendingInbox(c echo.Context) error {
	list, err := h.uc.PendingFor(c.Request().Context(), middleware.UID(c))
	if err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]any{"passes": list})
}

// Overview is the admin all-passes listing.
func (h *PassHandler) Overview(c echo.Context) error {
	list, err := h.uc.Overview(c.Request().Context())
	if err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]any{"passes": list})
}
