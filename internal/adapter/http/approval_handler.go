package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gatepass-backend/internal/adapter/middleware"
	"gatepass-backend/internal/usecase/approval"
)

type ApprovalHandler struct{ uc *approval.Usecase }

func NewApprovalHandler(uc *approval.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

type decisionReq struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
}

// Decide records an approve/reject by the authenticated faculty member
// on the pass's current step.
func (h *ApprovalHandler) Decide(c echo.Context) error {
	passID := c.Param("pass_id")
	if passID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing pass_id path param"})
	}
	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.ApplyDecision(c.Request().Context(), approval.DecisionInput{
		PassID:   passID,
		ActorID:  middleware.UID(c),
		Decision: req.Decision,
	})
	if err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}
