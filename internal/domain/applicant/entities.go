package applicant

import (
	"errors"
	"time"

	"gatepass-backend/internal/domain/role"
)

var ErrNotFound = errors.New("applicant not found")

type Type string

const (
	TypeStudent Type = "student"
	TypeFaculty Type = "faculty"
)

// Student's applicant_id is the identity provider's uid for the same
// person.
type Student struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	ApplicantID  string    `gorm:"size:36;uniqueIndex:ux_students_applicant_id" json:"applicant_id"`
	Name         string    `gorm:"size:128" json:"name"`
	Email        string    `gorm:"size:128;index" json:"email"`
	RollNumber   string    `gorm:"size:32" json:"roll_number"`
	Branch       string    `gorm:"size:32" json:"branch"`
	Section      string    `gorm:"size:8" json:"section"`
	AcademicYear int       `json:"academic_year"`
	PassOutYear  int       `json:"pass_out_year"`
	Gender       string    `gorm:"size:16" json:"gender"`
	Religion     string    `gorm:"size:32" json:"religion"`
	Phone        string    `gorm:"size:20" json:"phone"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Student) TableName() string { return "students" }

type Faculty struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	ApplicantID   string          `gorm:"size:36;uniqueIndex:ux_faculty_applicant_id" json:"applicant_id"`
	Name          string          `gorm:"size:128" json:"name"`
	Email         string          `gorm:"size:128;index" json:"email"`
	Phone         string          `gorm:"size:20" json:"phone"`
	Department    string          `gorm:"size:32" json:"department"`
	FacultyID     string          `gorm:"size:32" json:"faculty_id"`
	Gender        string          `gorm:"size:16" json:"gender"`
	Religion      string          `gorm:"size:32" json:"religion"`
	Status        string          `gorm:"size:16;default:present" json:"status"`
	AssignedRoles RoleAssignments `gorm:"serializer:json" json:"assigned_roles"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Faculty) TableName() string { return "faculty" }

// RoleAssignment is a resolved-at-assignment-time snapshot of a role.
// Editing the Role definition later must not rewrite what was assigned,
// so the name/type/fallbacks are copied here, not joined at read time.
type RoleAssignment struct {
	RoleID        string            `json:"role_id"`
	RoleName      string            `json:"role_name"`
	ApprovalType  role.ApprovalType `json:"approval_type"`
	FallbackRoles []string          `json:"fallback_roles"`
	// Mapping disambiguates scoped roles (Mentor/Teacher) with the
	// year/branch/section they cover.
	Mapping map[string]string `json:"mapping,omitempty"`
}

type RoleAssignments []RoleAssignment

// Admin is kept separate from faculty; it never submits passes.
type Admin struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"-"`
	ApplicantID string    `gorm:"size:36;uniqueIndex:ux_admins_applicant_id" json:"applicant_id"`
	Name        string    `gorm:"size:128" json:"name"`
	Email       string    `gorm:"size:128;index" json:"email"`
	IsMain      bool      `json:"is_main"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Admin) TableName() string { return "admins" }
