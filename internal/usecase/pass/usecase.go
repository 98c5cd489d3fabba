package pass

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"gatepass-backend/internal/domain/applicant"
	"gatepass-backend/internal/domain/pass"
	"gatepass-backend/internal/domain/role"
	"gatepass-backend/internal/domain/settings"
)

// RoleDirectory exposes the role strings a faculty member may act as;
// implemented by the role registry.
type RoleDirectory interface {
	StepStringsFor(f *applicant.Faculty) []string
}

type Usecase struct {
	passes     pass.Repository
	applicants applicant.Repository
	settings   settings.Repository
	directory  RoleDirectory
	loc        *time.Location
	log        zerolog.Logger
	now        func() time.Time
}

func NewUsecase(passes pass.Repository, applicants applicant.Repository, st settings.Repository, dir RoleDirectory, loc *time.Location, log zerolog.Logger) *Usecase {
	if loc == nil {
		loc = time.Local
	}
	return &Usecase{
		passes:     passes,
		applicants: applicants,
		settings:   st,
		directory:  dir,
		loc:        loc,
		log:        log,
		now:        time.Now,
	}
}

// WithClock overrides the time source; tests only.
func (u *Usecase) WithClock(now func() time.Time) *Usecase { u.now = now; return u }

// DayBucket renders the calendar-day key used for duplicate detection.
func DayBucket(t time.Time) string { return t.Format("2006-01-02") }

// Submit runs the full creation path: time-window gate, duplicate
// check, chain construction, then a single insert. The insert's unique
// (applicant, day) key backstops the duplicate check under races.
func (u *Usecase) Submit(ctx context.Context, actor Actor, in SubmitInput) (*PassDTO, error) {
	pt := pass.Type(in.PassType)
	if !pt.Valid() {
		return nil, pass.ErrInvalidPassType
	}
	if in.Reason == "" {
		return nil, errors.New("reason is required")
	}

	cfg, err := u.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	now := u.now().In(u.loc)

	aud := settings.AudienceStudent
	if actor.Type == applicant.TypeFaculty {
		aud = settings.AudienceFaculty
	}
	if open, reason := WindowFor(cfg, aud).Evaluate(now); !open {
		return nil, &pass.ClosedError{Reason: reason}
	}

	day := DayBucket(now)
	exists, err := u.passes.ExistsForDay(ctx, actor.ID, day)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, pass.ErrAlreadyApplied
	}

	p := &pass.Pass{
		PassID:      uuid.NewString(),
		ApplicantID: actor.ID,
		PassType:    pt,
		Reason:      in.Reason,
		Date:        now,
		PassDay:     day,
		OutTime:     now.Format("15:04"),
		Status:      pass.StatusPending,
	}

	var refs []role.StepRef
	switch actor.Type {
	case applicant.TypeStudent:
		s, err := u.applicants.GetStudent(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		p.ApplicantType = string(applicant.TypeStudent)
		p.ApplicantName = s.Name
		p.RollNumber = s.RollNumber
		p.Department = s.Branch
		p.AcademicYear = s.AcademicYear
		refs = StudentChain(s)
	case applicant.TypeFaculty:
		f, err := u.applicants.GetFaculty(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		p.ApplicantType = string(applicant.TypeFaculty)
		p.ApplicantName = f.Name
		p.Department = f.Department
		refs, err = FacultyChain(f)
		if err != nil {
			return nil, err
		}
	default:
		return nil, applicant.ErrNotFound
	}

	chain, err := pass.NewChain(refs)
	if err != nil {
		return nil, err
	}
	p.Approvals = chain
	p.CurrentApprover = chain[0].Role

	if err := u.passes.Create(ctx, p); err != nil {
		// lost a race with another submission for the same day
		if errors.Is(err, pass.ErrAlreadyApplied) {
			return nil, pass.ErrAlreadyApplied
		}
		return nil, err
	}
	u.log.Info().Str("pass_id", p.PassID).Str("applicant_id", actor.ID).
		Str("current_approver", p.CurrentApprover).Msg("pass submitted")
	return ToDTO(p), nil
}

func (u *Usecase) Get(ctx context.Context, passID string) (*PassDTO, error) {
	p, err := u.passes.GetByPassID(ctx, passID)
	if err != nil {
		return nil, err
	}
	return ToDTO(p), nil
}

// History lists the caller's own passes, newest first.
func (u *Usecase) History(ctx context.Context, applicantID string, status string) ([]PassDTO, error) {
	list, err := u.passes.ListByApplicant(ctx, applicantID, pass.Status(status))
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

// PendingFor is the faculty approval inbox: pending passes whose
// current approver is any role the faculty member holds.
func (u *Usecase) PendingFor(ctx context.Context, facultyID string) ([]PassDTO, error) {
	f, err := u.applicants.GetFaculty(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	roles := u.directory.StepStringsFor(f)
	if len(roles) == 0 {
		return nil, nil
	}
	list, err := u.passes.ListPendingByApprovers(ctx, roles)
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

// Overview is the admin all-passes listing, newest first.
func (u *Usecase) Overview(ctx context.Context) ([]PassDTO, error) {
	list, err := u.passes.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

func toDTOs(list []pass.Pass) []PassDTO {
	out := make([]PassDTO, 0, len(list))
	for i := range list {
		out = append(out, *ToDTO(&list[i]))
	}
	return out
}
