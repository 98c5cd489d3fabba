package http

import (
	"errors"
	"net/http"
	"strings"

	"gatepass-backend/internal/domain/applicant"
	"gatepass-backend/internal/domain/identity"
	"gatepass-backend/internal/domain/pass"
	"gatepass-backend/internal/domain/role"
	"gatepass-backend/internal/domain/settings"
	applicantuc "gatepass-backend/internal/usecase/applicant"
	"gatepass-backend/internal/usecase/sysconfig"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// mapError translates domain sentinels into a status code and a client
// message. Unknown errors stay opaque 500s.
func mapError(err error) (int, string) {
	var closed *pass.ClosedError
	switch {
	case errors.As(err, &closed):
		return http.StatusUnprocessableEntity, closed.Reason
	case errors.Is(err, pass.ErrNotFound),
		errors.Is(err, applicant.ErrNotFound),
		errors.Is(err, role.ErrNotFound),
		errors.Is(err, settings.ErrNotFound),
		errors.Is(err, identity.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, pass.ErrAlreadyApplied):
		return http.StatusConflict, err.Error()
	case errors.Is(err, pass.ErrAlreadyTerminal),
		errors.Is(err, identity.ErrAlreadyExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, pass.ErrNotCurrentApprover):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, identity.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, pass.ErrInvalidPassType),
		errors.Is(err, pass.ErrInvalidDecision),
		errors.Is(err, pass.ErrNoApprovalChain),
		errors.Is(err, role.ErrInvalidApprovalType),
		errors.Is(err, role.ErrFallbackCycle),
		errors.Is(err, applicantuc.ErrIncompleteMapping),
		errors.Is(err, sysconfig.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func writeError(err error) (int, ErrorResponse) {
	code, msg := mapError(err)
	return code, ErrorResponse{Error: msg}
}
