package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gatepass-backend/internal/usecase/roles"
)

type RoleHandler struct{ uc *roles.Admin }

func NewRoleHandler(uc *roles.Admin) *RoleHandler { return &RoleHandler{uc: uc} }

func (h *RoleHandler) Create(c echo.Context) error {
	var req roles.RoleInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.RoleName == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "role_name is required"})
	}
	r, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *RoleHandler) Update(c echo.Context) error {
	roleID := c.Param("role_id")
	if roleID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing role_id path param"})
	}
	var req roles.RoleInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	r, err := h.uc.Update(c.Request().Context(), roleID, req)
	if err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *RoleHandler) List(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]any{"roles": list})
}
