package auth

import (
	"context"
	"errors"
	"testing"

	"gatepass-backend/internal/domain/applicant"
	"gatepass-backend/internal/domain/identity"
	"gatepass-backend/internal/testutil/applicantmock"
	"gatepass-backend/internal/testutil/identitymock"
)

func verifierFor(uid string) *identitymock.Provider {
	return &identitymock.Provider{
		VerifyCredentialsFn: func(ctx context.Context, email, password string) (string, error) {
			return uid, nil
		},
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	uc := NewUsecase(&identitymock.Provider{}, &applicantmock.Repo{})
	_, err := uc.Login(context.Background(), LoginInput{Email: "x@example.edu", Password: "nope"})
	if !errors.Is(err, identity.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_RoleProbing(t *testing.T) {
	applicants := &applicantmock.Repo{
		GetAdminFn: func(ctx context.Context, id string) (*applicant.Admin, error) {
			if id == "uid-admin" {
				return &applicant.Admin{ApplicantID: id, Name: "Root"}, nil
			}
			return nil, applicant.ErrNotFound
		},
		GetFacultyFn: func(ctx context.Context, id string) (*applicant.Faculty, error) {
			if id == "uid-fac" {
				return &applicant.Faculty{ApplicantID: id, Name: "Ravi"}, nil
			}
			return nil, applicant.ErrNotFound
		},
		GetStudentFn: func(ctx context.Context, id string) (*applicant.Student, error) {
			if id == "uid-stu" {
				return &applicant.Student{ApplicantID: id, Name: "Asha"}, nil
			}
			return nil, applicant.ErrNotFound
		},
	}

	cases := []struct {
		uid, role, name string
	}{
		{"uid-admin", "admin", "Root"},
		{"uid-fac", "faculty", "Ravi"},
		{"uid-stu", "student", "Asha"},
	}
	for _, tc := range cases {
		uc := NewUsecase(verifierFor(tc.uid), applicants)
		s, err := uc.Login(context.Background(), LoginInput{Email: "x@example.edu", Password: "pw"})
		if err != nil {
			t.Fatalf("%s: Login: %v", tc.uid, err)
		}
		if s.UID != tc.uid || s.Role != tc.role || s.Name != tc.name {
			t.Fatalf("%s: session = %+v", tc.uid, s)
		}
	}
}

func TestLogin_IdentityWithoutRecord(t *testing.T) {
	uc := NewUsecase(verifierFor("uid-orphan"), &applicantmock.Repo{})
	_, err := uc.Login(context.Background(), LoginInput{Email: "x@example.edu", Password: "pw"})
	if !errors.Is(err, identity.ErrInvalidCredentials) {
		t.Fatalf("orphaned identity must not log in: %v", err)
	}
}

func TestLogin_RepositoryErrorSurfaces(t *testing.T) {
	boom := errors.New("db down")
	applicants := &applicantmock.Repo{
		GetAdminFn: func(ctx context.Context, id string) (*applicant.Admin, error) {
			return nil, boom
		},
	}
	uc := NewUsecase(verifierFor("uid-1"), applicants)
	if _, err := uc.Login(context.Background(), LoginInput{Email: "x@example.edu", Password: "pw"}); !errors.Is(err, boom) {
		t.Fatalf("want repo error, got %v", err)
	}
}
