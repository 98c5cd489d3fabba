package applicant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	domain "gatepass-backend/internal/domain/applicant"
	"gatepass-backend/internal/domain/identity"
	"gatepass-backend/internal/domain/notify"
	"gatepass-backend/internal/domain/role"
)

// defaultPassword is issued when an administrator leaves the password
// blank; faculty default to their faculty id when one is set.
const defaultPassword = "Hitam@123"

var ErrIncompleteMapping = errors.New("scoped role mapping is incomplete")

// Usecase is the administrator's onboarding/offboarding surface. Every
// applicant record is paired with an identity-provider account created
// and deleted together with it.
type Usecase struct {
	applicants domain.Repository
	roles      role.Repository
	idp        identity.Provider
	mailer     notify.Sender
	log        zerolog.Logger
}

func NewUsecase(applicants domain.Repository, roles role.Repository, idp identity.Provider, mailer notify.Sender, log zerolog.Logger) *Usecase {
	if mailer == nil {
		mailer = notify.Noop{}
	}
	return &Usecase{applicants: applicants, roles: roles, idp: idp, mailer: mailer, log: log}
}

func (u *Usecase) RegisterStudent(ctx context.Context, in StudentInput) (*domain.Student, error) {
	password := in.Password
	if password == "" {
		password = defaultPassword
	}
	uid, err := u.idp.CreateIdentity(ctx, in.Email, password, in.Name)
	if err != nil {
		return nil, err
	}
	s := &domain.Student{
		ApplicantID:  uid,
		Name:         in.Name,
		Email:        in.Email,
		RollNumber:   in.RollNumber,
		Branch:       in.Branch,
		Section:      in.Section,
		AcademicYear: in.AcademicYear,
		PassOutYear:  in.PassOutYear,
		Gender:       in.Gender,
		Religion:     in.Religion,
		Phone:        in.Phone,
	}
	if err := u.applicants.CreateStudent(ctx, s); err != nil {
		// keep identity and record lifecycles paired
		if derr := u.idp.DeleteIdentity(ctx, uid); derr != nil {
			u.log.Error().Err(derr).Str("uid", uid).Msg("orphaned identity after failed student create")
		}
		return nil, err
	}
	return s, nil
}

func (u *Usecase) RegisterFaculty(ctx context.Context, in FacultyInput) (*domain.Faculty, error) {
	password := in.Password
	if password == "" {
		if in.FacultyID != "" {
			password = in.FacultyID
		} else {
			password = defaultPassword
		}
	}
	assignments, err := u.snapshotRoles(ctx, in.Roles)
	if err != nil {
		return nil, err
	}
	uid, err := u.idp.CreateIdentity(ctx, in.Email, password, in.Name)
	if err != nil {
		return nil, err
	}
	f := &domain.Faculty{
		ApplicantID:   uid,
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Department:    in.Department,
		FacultyID:     in.FacultyID,
		Gender:        in.Gender,
		Religion:      in.Religion,
		Status:        "present",
		AssignedRoles: assignments,
	}
	if err := u.applicants.CreateFaculty(ctx, f); err != nil {
		if derr := u.idp.DeleteIdentity(ctx, uid); derr != nil {
			u.log.Error().Err(derr).Str("uid", uid).Msg("orphaned identity after failed faculty create")
		}
		return nil, err
	}
	return f, nil
}

func (u *Usecase) UpdateStudent(ctx context.Context, applicantID string, in StudentInput) (*domain.Student, error) {
	s, err := u.applicants.GetStudent(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if in.Email != s.Email {
		if err := u.idp.UpdateIdentity(ctx, applicantID, identity.Update{Email: &in.Email}); err != nil {
			return nil, err
		}
	}
	s.Name = in.Name
	s.Email = in.Email
	s.RollNumber = in.RollNumber
	s.Branch = in.Branch
	s.Section = in.Section
	s.AcademicYear = in.AcademicYear
	s.PassOutYear = in.PassOutYear
	s.Gender = in.Gender
	s.Religion = in.Religion
	s.Phone = in.Phone
	if err := u.applicants.SaveStudent(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *Usecase) UpdateFaculty(ctx context.Context, applicantID string, in FacultyInput) (*domain.Faculty, error) {
	f, err := u.applicants.GetFaculty(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	assignments, err := u.snapshotRoles(ctx, in.Roles)
	if err != nil {
		return nil, err
	}
	if in.Email != f.Email {
		if err := u.idp.UpdateIdentity(ctx, applicantID, identity.Update{Email: &in.Email}); err != nil {
			return nil, err
		}
	}
	f.Name = in.Name
	f.Email = in.Email
	f.Phone = in.Phone
	f.Department = in.Department
	f.FacultyID = in.FacultyID
	f.Gender = in.Gender
	f.Religion = in.Religion
	f.AssignedRoles = assignments
	if err := u.applicants.SaveFaculty(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (u *Usecase) DeleteStudent(ctx context.Context, applicantID string) error {
	if err := u.idp.DeleteIdentity(ctx, applicantID); err != nil && !errors.Is(err, identity.ErrNotFound) {
		return err
	}
	return u.applicants.DeleteStudent(ctx, applicantID)
}

func (u *Usecase) DeleteFaculty(ctx context.Context, applicantID string) error {
	if err := u.idp.DeleteIdentity(ctx, applicantID); err != nil && !errors.Is(err, identity.ErrNotFound) {
		return err
	}
	return u.applicants.DeleteFaculty(ctx, applicantID)
}

// ResetPassword sets the account back to its default password and
// tells the owner by mail, best effort.
func (u *Usecase) ResetPassword(ctx context.Context, kind domain.Type, applicantID string) error {
	var email, name, password string
	switch kind {
	case domain.TypeStudent:
		s, err := u.applicants.GetStudent(ctx, applicantID)
		if err != nil {
			return err
		}
		email, name, password = s.Email, s.Name, defaultPassword
	case domain.TypeFaculty:
		f, err := u.applicants.GetFaculty(ctx, applicantID)
		if err != nil {
			return err
		}
		email, name = f.Email, f.Name
		password = f.FacultyID
		if password == "" {
			password = defaultPassword
		}
	default:
		return domain.ErrNotFound
	}

	if err := u.idp.UpdateIdentity(ctx, applicantID, identity.Update{Password: &password}); err != nil {
		return err
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		body := fmt.Sprintf("Hello %s, your gate-pass account password was reset by an administrator.", name)
		if err := u.mailer.Send(ctx, email, "Password reset", body); err != nil {
			u.log.Warn().Err(err).Str("applicant_id", applicantID).Msg("password reset mail failed")
		}
	}()
	return nil
}

func (u *Usecase) ListStudents(ctx context.Context) ([]domain.Student, error) {
	return u.applicants.ListStudents(ctx)
}

func (u *Usecase) ListFaculty(ctx context.Context) ([]domain.Faculty, error) {
	return u.applicants.ListFaculty(ctx)
}

// snapshotRoles denormalizes each granted role into an assignment
// snapshot so later edits to the role definition don't rewrite what
// was assigned.
func (u *Usecase) snapshotRoles(ctx context.Context, grants []RoleGrant) (domain.RoleAssignments, error) {
	var out domain.RoleAssignments
	for _, g := range grants {
		def, err := u.roles.GetByRoleID(ctx, g.RoleID)
		if err != nil {
			return nil, err
		}
		a := domain.RoleAssignment{
			RoleID:        def.RoleID,
			RoleName:      def.RoleName,
			ApprovalType:  def.ApprovalType,
			FallbackRoles: def.FallbackRoles,
		}
		if def.RoleName == "Mentor" || def.RoleName == "Teacher" {
			if g.Mapping["year"] == "" || g.Mapping["branch"] == "" || g.Mapping["section"] == "" {
				return nil, ErrIncompleteMapping
			}
			a.Mapping = g.Mapping
		} else if len(g.Mapping) > 0 {
			a.Mapping = g.Mapping
		}
		out = append(out, a)
	}
	return out, nil
}
