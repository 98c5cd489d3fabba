package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gatepass-backend/internal/pkg/authtoken"
	"gatepass-backend/internal/usecase/auth"
)

type AuthHandler struct {
	uc     *auth.Usecase
	tokens *authtoken.Service
}

func NewAuthHandler(uc *auth.Usecase, tokens *authtoken.Service) *AuthHandler {
	return &AuthHandler{uc: uc, tokens: tokens}
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req auth.LoginInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	sess, err := h.uc.Login(c.Request().Context(), req)
	if err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}

	token, err := h.tokens.Issue(sess.UID, sess.Role, sess.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"token":   token,
		"session": sess,
	})
}
