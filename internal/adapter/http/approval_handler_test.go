package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"gatepass-backend/internal/domain/applicant"
	domainPass "gatepass-backend/internal/domain/pass"
	"gatepass-backend/internal/domain/role"
	"gatepass-backend/internal/domain/uow"
	"gatepass-backend/internal/testutil/applicantmock"
	"gatepass-backend/internal/testutil/passmock"
	"gatepass-backend/internal/testutil/uowmock"
	"gatepass-backend/internal/usecase/approval"
	passuc "gatepass-backend/internal/usecase/pass"
)

type anyChecker struct{ allow bool }

func (a anyChecker) HoldsStep(*applicant.Faculty, string) bool { return a.allow }

func (a anyChecker) Resolve(ctx context.Context, ref role.StepRef) ([]string, error) {
	return nil, role.ErrNoEligibleApprover
}

func newDecideHandler(p *domainPass.Pass, allow bool) *ApprovalHandler {
	passes := &passmock.Repo{
		GetByPassIDForUpdateFn: func(ctx context.Context, passID string) (*domainPass.Pass, error) {
			if p == nil || passID != p.PassID {
				return nil, domainPass.ErrNotFound
			}
			return p, nil
		},
	}
	applicants := &applicantmock.Repo{
		GetFacultyFn: func(ctx context.Context, id string) (*applicant.Faculty, error) {
			return &applicant.Faculty{ApplicantID: id}, nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Passes: passes, Applicants: applicants})
	return NewApprovalHandler(approval.NewUsecase(tx, anyChecker{allow: allow}, nil, zerolog.Nop()))
}

func decideRequest(e *echo.Echo, passID, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(stdhttp.MethodPost, "/passes/"+passID+"/decision",
		mustJSON(map[string]any{"decision": body}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "fac-1", "faculty")
	c.SetParamNames("pass_id")
	c.SetParamValues(passID)
	return c, rec
}

func decidablePass() *domainPass.Pass {
	return &domainPass.Pass{
		PassID:        "p-1",
		ApplicantID:   "stu-1",
		ApplicantType: string(applicant.TypeStudent),
		Status:        domainPass.StatusPending,
		Approvals: domainPass.Chain{
			{Role: "mentor_2_CSE_A", Status: domainPass.StepPending},
		},
		CurrentApprover: "mentor_2_CSE_A",
	}
}

func TestDecide_Approve(t *testing.T) {
	e := newEchoWithValidator()
	h := newDecideHandler(decidablePass(), true)

	c, rec := decideRequest(e, "p-1", "approve")
	if err := h.Decide(c); err != nil {
		t.Fatalf("Decide error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var dto passuc.PassDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if dto.Status != string(domainPass.StatusApproved) {
		t.Fatalf("dto = %+v", dto)
	}
}

func TestDecide_ValidationRejectsUnknownDecision(t *testing.T) {
	e := newEchoWithValidator()
	h := newDecideHandler(decidablePass(), true)

	c, rec := decideRequest(e, "p-1", "maybe")
	if err := h.Decide(c); err != nil {
		t.Fatalf("Decide error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestDecide_NotCurrentApprover(t *testing.T) {
	e := newEchoWithValidator()
	h := newDecideHandler(decidablePass(), false)

	c, rec := decideRequest(e, "p-1", "approve")
	if err := h.Decide(c); err != nil {
		t.Fatalf("Decide error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestDecide_TerminalConflict(t *testing.T) {
	e := newEchoWithValidator()
	p := decidablePass()
	p.Status = domainPass.StatusApproved
	h := newDecideHandler(p, true)

	c, rec := decideRequest(e, "p-1", "reject")
	if err := h.Decide(c); err != nil {
		t.Fatalf("Decide error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestDecide_PassNotFound(t *testing.T) {
	e := newEchoWithValidator()
	h := newDecideHandler(nil, true)

	c, rec := decideRequest(e, "p-404", "approve")
	if err := h.Decide(c); err != nil {
		t.Fatalf("Decide error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
