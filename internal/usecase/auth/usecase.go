package auth

import (
	"context"
	"errors"

	"gatepass-backend/internal/domain/applicant"
	"gatepass-backend/internal/domain/identity"
)

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Session struct {
	UID  string `json:"uid"`
	Role string `json:"role"` // "admin" | "faculty" | "student"
	Name string `json:"name"`
}

type Usecase struct {
	idp        identity.Provider
	applicants applicant.Repository
}

func NewUsecase(idp identity.Provider, applicants applicant.Repository) *Usecase {
	return &Usecase{idp: idp, applicants: applicants}
}

// Login exchanges credentials for a session, determining the caller's
// role by probing admin, faculty, then student records. The uid must
// resolve to one of them or the account has no role here.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*Session, error) {
	uid, err := u.idp.VerifyCredentials(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if a, err := u.applicants.GetAdmin(ctx, uid); err == nil {
		return &Session{UID: uid, Role: "admin", Name: a.Name}, nil
	} else if !errors.Is(err, applicant.ErrNotFound) {
		return nil, err
	}
	if f, err := u.applicants.GetFaculty(ctx, uid); err == nil {
		return &Session{UID: uid, Role: "faculty", Name: f.Name}, nil
	} else if !errors.Is(err, applicant.ErrNotFound) {
		return nil, err
	}
	if s, err := u.applicants.GetStudent(ctx, uid); err == nil {
		return &Session{UID: uid, Role: "student", Name: s.Name}, nil
	} else if !errors.Is(err, applicant.ErrNotFound) {
		return nil, err
	}
	return nil, identity.ErrInvalidCredentials
}
