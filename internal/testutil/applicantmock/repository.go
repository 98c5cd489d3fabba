package applicantmock

import (
	"context"

	domain "gatepass-backend/internal/domain/applicant"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies applicant.Repository.
type Repo struct {
	CreateStudentFn        func(ctx context.Context, s *domain.Student) error
	SaveStudentFn          func(ctx context.Context, s *domain.Student) error
	GetStudentFn           func(ctx context.Context, applicantID string) (*domain.Student, error)
	DeleteStudentFn        func(ctx context.Context, applicantID string) error
	ListStudentsFn         func(ctx context.Context) ([]domain.Student, error)
	ListStudentsByGenderFn func(ctx context.Context, gender string) ([]domain.Student, error)

	CreateFacultyFn func(ctx context.Context, f *domain.Faculty) error
	SaveFacultyFn   func(ctx context.Context, f *domain.Faculty) error
	GetFacultyFn    func(ctx context.Context, applicantID string) (*domain.Faculty, error)
	DeleteFacultyFn func(ctx context.Context, applicantID string) error
	ListFacultyFn   func(ctx context.Context) ([]domain.Faculty, error)

	GetAdminFn    func(ctx context.Context, applicantID string) (*domain.Admin, error)
	CreateAdminFn func(ctx context.Context, a *domain.Admin) error
	CountAdminsFn func(ctx context.Context) (int64, error)
}

func (m *Repo) CreateStudent(ctx context.Context, s *domain.Student) error {
	if m.CreateStudentFn != nil {
		return m.CreateStudentFn(ctx, s)
	}
	return nil
}

func (m *Repo) SaveStudent(ctx context.Context, s *domain.Student) error {
	if m.SaveStudentFn != nil {
		return m.SaveStudentFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetStudent(ctx context.Context, applicantID string) (*domain.Student, error) {
	if m.GetStudentFn != nil {
		return m.GetStudentFn(ctx, applicantID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) DeleteStudent(ctx context.Context, applicantID string) error {
	if m.DeleteStudentFn != nil {
		return m.DeleteStudentFn(ctx, applicantID)
	}
	return nil
}

func (m *Repo) ListStudents(ctx context.Context) ([]domain.Student, error) {
	if m.ListStudentsFn != nil {
		return m.ListStudentsFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListStudentsByGender(ctx context.Context, gender string) ([]domain.Student, error) {
	if m.ListStudentsByGenderFn != nil {
		return m.ListStudentsByGenderFn(ctx, gender)
	}
	return nil, nil
}

func (m *Repo) CreateFaculty(ctx context.Context, f *domain.Faculty) error {
	if m.CreateFacultyFn != nil {
		return m.CreateFacultyFn(ctx, f)
	}
	return nil
}

func (m *Repo) SaveFaculty(ctx context.Context, f *domain.Faculty) error {
	if m.SaveFacultyFn != nil {
		return m.SaveFacultyFn(ctx, f)
	}
	return nil
}

func (m *Repo) GetFaculty(ctx context.Context, applicantID string) (*domain.Faculty, error) {
	if m.GetFacultyFn != nil {
		return m.GetFacultyFn(ctx, applicantID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) DeleteFaculty(ctx context.Context, applicantID string) error {
	if m.DeleteFacultyFn != nil {
		return m.DeleteFacultyFn(ctx, applicantID)
	}
	return nil
}

func (m *Repo) ListFaculty(ctx context.Context) ([]domain.Faculty, error) {
	if m.ListFacultyFn != nil {
		return m.ListFacultyFn(ctx)
	}
	return nil, nil
}

func (m *Repo) GetAdmin(ctx context.Context, applicantID string) (*domain.Admin, error) {
	if m.GetAdminFn != nil {
		return m.GetAdminFn(ctx, applicantID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) CreateAdmin(ctx context.Context, a *domain.Admin) error {
	if m.CreateAdminFn != nil {
		return m.CreateAdminFn(ctx, a)
	}
	return nil
}

func (m *Repo) CountAdmins(ctx context.Context) (int64, error) {
	if m.CountAdminsFn != nil {
		return m.CountAdminsFn(ctx)
	}
	return 0, nil
}
