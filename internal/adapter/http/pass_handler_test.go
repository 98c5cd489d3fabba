package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"gatepass-backend/internal/adapter/middleware"
	"gatepass-backend/internal/domain/applicant"
	"gatepass-backend/internal/domain/pass"
	"gatepass-backend/internal/testutil/applicantmock"
	"gatepass-backend/internal/testutil/passmock"
	"gatepass-backend/internal/testutil/settingsmock"
	passuc "gatepass-backend/internal/usecase/pass"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

// authedContext builds a context carrying the principal RequireAuth
// would have stored.
func authedContext(e *echo.Echo, req *stdhttp.Request, rec *httptest.ResponseRecorder, uid, role string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUID, uid)
	c.Set(middleware.ContextRole, role)
	return c
}

// submissionNoon is a Monday inside the default window.
var submissionNoon = time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

type noDirectory struct{}

func (noDirectory) StepStringsFor(*applicant.Faculty) []string { return nil }

func newPassUsecase(passes *passmock.Repo, applicants *applicantmock.Repo) *passuc.Usecase {
	return passuc.NewUsecase(passes, applicants, &settingsmock.Repo{}, noDirectory{}, time.UTC, zerolog.Nop()).
		WithClock(func() time.Time { return submissionNoon })
}

// -------- tests --------

func TestSubmit_Success(t *testing.T) {
	e := newEchoWithValidator()
	passes := &passmock.Repo{}
	applicants := &applicantmock.Repo{
		GetStudentFn: func(ctx context.Context, id string) (*applicant.Student, error) {
			return &applicant.Student{
				ApplicantID: id, Name: "Asha", Branch: "CSE", Section: "A", AcademicYear: 2,
			}, nil
		},
	}
	h := NewPassHandler(newPassUsecase(passes, applicants))

	req := httptest.NewRequest(stdhttp.MethodPost, "/passes",
		mustJSON(map[string]any{"pass_type": "regular", "reason": "doctor visit"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "stu-1", "student")

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}

	var dto passuc.PassDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if dto.ApplicantID != "stu-1" || dto.CurrentApprover != "mentor_2_CSE_A" {
		t.Fatalf("dto = %+v", dto)
	}
}

func TestSubmit_AdminForbidden(t *testing.T) {
	e := newEchoWithValidator()
	h := NewPassHandler(newPassUsecase(&passmock.Repo{}, &applicantmock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodPost, "/passes",
		mustJSON(map[string]any{"pass_type": "regular", "reason": "x"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "adm-1", "admin")

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestSubmit_DuplicateDayConflict(t *testing.T) {
	e := newEchoWithValidator()
	passes := &passmock.Repo{
		ExistsForDayFn: func(ctx context.Context, id, day string) (bool, error) { return true, nil },
	}
	h := NewPassHandler(newPassUsecase(passes, &applicantmock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodPost, "/passes",
		mustJSON(map[string]any{"pass_type": "regular", "reason": "x"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "stu-1", "student")

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409, body %s", rec.Code, rec.Body.String())
	}
}

func TestGetPass_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	h := NewPassHandler(newPassUsecase(&passmock.Repo{}, &applicantmock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/passes/p-404", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "stu-1", "student")
	c.SetParamNames("pass_id")
	c.SetParamValues("p-404")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHistory_FiltersByStatus(t *testing.T) {
	e := newEchoWithValidator()
	var askedStatus pass.Status
	passes := &passmock.Repo{
		ListByApplicantFn: func(ctx context.Context, id string, status pass.Status) ([]pass.Pass, error) {
			askedStatus = status
			return []pass.Pass{{PassID: "p-1", ApplicantID: id, Status: pass.StatusApproved}}, nil
		},
	}
	h := NewPassHandler(newPassUsecase(passes, &applicantmock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/passes?status=approved", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "stu-1", "student")

	if err := h.History(c); err != nil {
		t.Fatalf("History error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if askedStatus != pass.StatusApproved {
		t.Fatalf("status filter = %q", askedStatus)
	}

	var body struct {
		Passes []passuc.PassDTO `json:"passes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Passes) != 1 || body.Passes[0].PassID != "p-1" {
		t.Fatalf("body = %+v", body)
	}
}
