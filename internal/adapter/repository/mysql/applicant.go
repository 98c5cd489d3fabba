package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gatepass-backend/internal/domain/applicant"
)

type ApplicantRepository struct{ db *gorm.DB }

func NewApplicantRepository(db *gorm.DB) *ApplicantRepository {
	return &ApplicantRepository{db: db}
}

func (r *ApplicantRepository) CreateStudent(ctx context.Context, s *applicant.Student) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ApplicantRepository) SaveStudent(ctx context.Context, s *applicant.Student) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ApplicantRepository) GetStudent(ctx context.Context, applicantID string) (*applicant.Student, error) {
	var out applicant.Student
	res := r.db.WithContext(ctx).Where("applicant_id = ?", applicantID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, applicant.ErrNotFound
	}
	return &out, res.Error
}

func (r *ApplicantRepository) DeleteStudent(ctx context.Context, applicantID string) error {
	return r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Delete(&applicant.Student{}).Error
}

func (r *ApplicantRepository) ListStudents(ctx context.Context) ([]applicant.Student, error) {
	var out []applicant.Student
	res := r.db.WithContext(ctx).Order("roll_number ASC").Find(&out)
	return out, res.Error
}

func (r *ApplicantRepository) ListStudentsByGender(ctx context.Context, gender string) ([]applicant.Student, error) {
	var out []applicant.Student
	res := r.db.WithContext(ctx).Where("gender = ?", gender).Find(&out)
	return out, res.Error
}

func (r *ApplicantRepository) CreateFaculty(ctx context.Context, f *applicant.Faculty) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *ApplicantRepository) SaveFaculty(ctx context.Context, f *applicant.Faculty) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *ApplicantRepository) GetFaculty(ctx context.Context, applicantID string) (*applicant.Faculty, error) {
	var out applicant.Faculty
	res := r.db.WithContext(ctx).Where("applicant_id = ?", applicantID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, applicant.ErrNotFound
	}
	return &out, res.Error
}

func (r *ApplicantRepository) DeleteFaculty(ctx context.Context, applicantID string) error {
	return r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Delete(&applicant.Faculty{}).Error
}

func (r *ApplicantRepository) ListFaculty(ctx context.Context) ([]applicant.Faculty, error) {
	var out []applicant.Faculty
	res := r.db.WithContext(ctx).Order("faculty_id ASC").Find(&out)
	return out, res.Error
}

func (r *ApplicantRepository) GetAdmin(ctx context.Context, applicantID string) (*applicant.Admin, error) {
	var out applicant.Admin
	res := r.db.WithContext(ctx).Where("applicant_id = ?", applicantID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, applicant.ErrNotFound
	}
	return &out, res.Error
}

func (r *ApplicantRepository) CreateAdmin(ctx context.Context, a *applicant.Admin) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicantRepository) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&applicant.Admin{}).Count(&n)
	return n, res.Error
}
