package pass

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"gatepass-backend/internal/domain/applicant"
	"gatepass-backend/internal/domain/pass"
	"gatepass-backend/internal/domain/settings"
	"gatepass-backend/internal/testutil/applicantmock"
	"gatepass-backend/internal/testutil/passmock"
	"gatepass-backend/internal/testutil/settingsmock"
)

type dirStub struct{ roles []string }

func (d dirStub) StepStringsFor(*applicant.Faculty) []string { return d.roles }

// mondayNoon is inside the default submission window.
var mondayNoon = time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

func newSubmitUsecase(passes *passmock.Repo, applicants *applicantmock.Repo, st *settingsmock.Repo) *Usecase {
	return NewUsecase(passes, applicants, st, dirStub{}, time.UTC, zerolog.Nop()).
		WithClock(func() time.Time { return mondayNoon })
}

func testStudent() *applicant.Student {
	return &applicant.Student{
		ApplicantID:  "stu-1",
		Name:         "Asha",
		RollNumber:   "21CSE001",
		Branch:       "CSE",
		Section:      "A",
		AcademicYear: 2,
	}
}

func TestSubmit_Student(t *testing.T) {
	var created *pass.Pass
	passes := &passmock.Repo{
		CreateFn: func(ctx context.Context, p *pass.Pass) error {
			created = p
			return nil
		},
	}
	applicants := &applicantmock.Repo{
		GetStudentFn: func(ctx context.Context, id string) (*applicant.Student, error) {
			return testStudent(), nil
		},
	}
	uc := newSubmitUsecase(passes, applicants, &settingsmock.Repo{})

	dto, err := uc.Submit(context.Background(), Actor{ID: "stu-1", Type: applicant.TypeStudent},
		SubmitInput{PassType: "regular", Reason: "doctor visit"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if created == nil {
		t.Fatal("pass not persisted")
	}
	if created.PassDay != "2026-01-05" {
		t.Fatalf("PassDay = %q", created.PassDay)
	}
	if created.CurrentApprover != "mentor_2_CSE_A" {
		t.Fatalf("CurrentApprover = %q", created.CurrentApprover)
	}
	if len(created.Approvals) != 2 || created.Approvals[1].Role != "hod_CSE" {
		t.Fatalf("chain = %+v", created.Approvals)
	}
	if dto.Status != string(pass.StatusPending) || dto.ApplicantName != "Asha" {
		t.Fatalf("dto = %+v", dto)
	}
}

func TestSubmit_InvalidType(t *testing.T) {
	uc := newSubmitUsecase(&passmock.Repo{}, &applicantmock.Repo{}, &settingsmock.Repo{})
	_, err := uc.Submit(context.Background(), Actor{ID: "stu-1", Type: applicant.TypeStudent},
		SubmitInput{PassType: "weekend", Reason: "x"})
	if !errors.Is(err, pass.ErrInvalidPassType) {
		t.Fatalf("want ErrInvalidPassType, got %v", err)
	}
}

func TestSubmit_ClosedWindow(t *testing.T) {
	st := &settingsmock.Repo{
		GetFn: func(ctx context.Context) (*settings.Settings, error) {
			s := settings.Defaults()
			s.StudentWorkingDays = settings.Weekdays{"Tuesday"}
			return s, nil
		},
	}
	uc := newSubmitUsecase(&passmock.Repo{}, &applicantmock.Repo{}, st)

	_, err := uc.Submit(context.Background(), Actor{ID: "stu-1", Type: applicant.TypeStudent},
		SubmitInput{PassType: "regular", Reason: "x"})
	var closed *pass.ClosedError
	if !errors.As(err, &closed) {
		t.Fatalf("want ClosedError, got %v", err)
	}
	if closed.Reason == "" {
		t.Fatal("ClosedError must carry a reason")
	}
}

func TestSubmit_AlreadyApplied(t *testing.T) {
	passes := &passmock.Repo{
		ExistsForDayFn: func(ctx context.Context, id, day string) (bool, error) {
			return true, nil
		},
	}
	uc := newSubmitUsecase(passes, &applicantmock.Repo{}, &settingsmock.Repo{})

	_, err := uc.Submit(context.Background(), Actor{ID: "stu-1", Type: applicant.TypeStudent},
		SubmitInput{PassType: "regular", Reason: "x"})
	if !errors.Is(err, pass.ErrAlreadyApplied) {
		t.Fatalf("want ErrAlreadyApplied, got %v", err)
	}
}

func TestSubmit_CreateRaceLost(t *testing.T) {
	passes := &passmock.Repo{
		CreateFn: func(ctx context.Context, p *pass.Pass) error {
			return pass.ErrAlreadyApplied
		},
	}
	applicants := &applicantmock.Repo{
		GetStudentFn: func(ctx context.Context, id string) (*applicant.Student, error) {
			return testStudent(), nil
		},
	}
	uc := newSubmitUsecase(passes, applicants, &settingsmock.Repo{})

	_, err := uc.Submit(context.Background(), Actor{ID: "stu-1", Type: applicant.TypeStudent},
		SubmitInput{PassType: "regular", Reason: "x"})
	if !errors.Is(err, pass.ErrAlreadyApplied) {
		t.Fatalf("want ErrAlreadyApplied, got %v", err)
	}
}

func TestSubmit_FacultyWithoutChain(t *testing.T) {
	applicants := &applicantmock.Repo{
		GetFacultyFn: func(ctx context.Context, id string) (*applicant.Faculty, error) {
			return &applicant.Faculty{ApplicantID: id, Name: "Ravi"}, nil
		},
	}
	uc := newSubmitUsecase(&passmock.Repo{}, applicants, &settingsmock.Repo{})

	_, err := uc.Submit(context.Background(), Actor{ID: "fac-1", Type: applicant.TypeFaculty},
		SubmitInput{PassType: "regular", Reason: "seminar"})
	if !errors.Is(err, pass.ErrNoApprovalChain) {
		t.Fatalf("want ErrNoApprovalChain, got %v", err)
	}
}

func TestPendingFor(t *testing.T) {
	var askedRoles []string
	passes := &passmock.Repo{
		ListPendingByApproversFn: func(ctx context.Context, roles []string) ([]pass.Pass, error) {
			askedRoles = roles
			return []pass.Pass{{PassID: "p-1"}}, nil
		},
	}
	applicants := &applicantmock.Repo{
		GetFacultyFn: func(ctx context.Context, id string) (*applicant.Faculty, error) {
			return &applicant.Faculty{ApplicantID: id}, nil
		},
	}
	uc := NewUsecase(passes, applicants, &settingsmock.Repo{},
		dirStub{roles: []string{"mentor_2_CSE_A", "hod_CSE"}}, time.UTC, zerolog.Nop())

	list, err := uc.PendingFor(context.Background(), "fac-1")
	if err != nil {
		t.Fatalf("PendingFor: %v", err)
	}
	if len(list) != 1 || list[0].PassID != "p-1" {
		t.Fatalf("list = %+v", list)
	}
	if len(askedRoles) != 2 {
		t.Fatalf("asked roles = %v", askedRoles)
	}
}

func TestPendingFor_NoRoles(t *testing.T) {
	passes := &passmock.Repo{
		ListPendingByApproversFn: func(ctx context.Context, roles []string) ([]pass.Pass, error) {
			t.Fatal("repository must not be queried with no roles")
			return nil, nil
		},
	}
	applicants := &applicantmock.Repo{
		GetFacultyFn: func(ctx context.Context, id string) (*applicant.Faculty, error) {
			return &applicant.Faculty{ApplicantID: id}, nil
		},
	}
	uc := NewUsecase(passes, applicants, &settingsmock.Repo{}, dirStub{}, time.UTC, zerolog.Nop())

	list, err := uc.PendingFor(context.Background(), "fac-1")
	if err != nil || list != nil {
		t.Fatalf("want empty inbox, got %v / %v", list, err)
	}
}
