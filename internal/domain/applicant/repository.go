package applicant

import "context"

type Repository interface {
	CreateStudent(ctx context.Context, s *Student) error
	SaveStudent(ctx context.Context, s *Student) error
	GetStudent(ctx context.Context, applicantID string) (*Student, error)
	DeleteStudent(ctx context.Context, applicantID string) error
	ListStudents(ctx context.Context) ([]Student, error)
	// ListStudentsByGender is a case-sensitive equality filter, matching
	// the stored literal exactly.
	ListStudentsByGender(ctx context.Context, gender string) ([]Student, error)

	CreateFaculty(ctx context.Context, f *Faculty) error
	SaveFaculty(ctx context.Context, f *Faculty) error
	GetFaculty(ctx context.Context, applicantID string) (*Faculty, error)
	DeleteFaculty(ctx context.Context, applicantID string) error
	ListFaculty(ctx context.Context) ([]Faculty, error)

	GetAdmin(ctx context.Context, applicantID string) (*Admin, error)
	CreateAdmin(ctx context.Context, a *Admin) error
	CountAdmins(ctx context.Context) (int64, error)
}
