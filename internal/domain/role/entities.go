package role

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNotFound           = errors.New("role not found")
	ErrInvalidApprovalType = errors.New("invalid approval type")
	ErrFallbackCycle      = errors.New("fallback chain references itself")
	ErrNoEligibleApprover = errors.New("no eligible approver")
)

type ApprovalType string

const (
	TypeStudentPass  ApprovalType = "student_pass"
	TypeFacultyPass  ApprovalType = "faculty_pass"
	TypeHeadApproval ApprovalType = "head_approval"
)

func (t ApprovalType) Valid() bool {
	switch t {
	case TypeStudentPass, TypeFacultyPass, TypeHeadApproval:
		return true
	}
	return false
}

// Role is an administrator-managed approval role definition. Lower
// priority sorts earlier in any priority-ordered listing.
type Role struct {
	ID            uint64       `gorm:"primaryKey;column:id" json:"-"`
	RoleID        string       `gorm:"size:32;uniqueIndex:ux_roles_role_id" json:"role_id"`
	RoleName      string       `gorm:"size:128" json:"role_name"`
	ApprovalType  ApprovalType `gorm:"size:16" json:"approval_type"`
	Priority      int          `json:"priority"`
	FallbackRoles Fallbacks    `gorm:"serializer:json" json:"fallback_roles"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Role) TableName() string { return "roles" }

type Fallbacks []string

// ---- approval-step role references ----

type StepKind string

const (
	StepMentor   StepKind = "mentor"
	StepHead     StepKind = "hod"
	StepRegistry StepKind = "registry"
)

// StepRef is a typed reference to whoever holds one approval step.
// Mentor steps are keyed by the applicant's year/branch/section, head
// steps by branch, registry steps by a role id from the roles table.
type StepRef struct {
	Kind    StepKind
	Year    int
	Branch  string
	Section string
	RoleID  string
}

func Mentor(year int, branch, section string) StepRef {
	return StepRef{Kind: StepMentor, Year: year, Branch: branch, Section: section}
}

func HeadOfDept(branch string) StepRef {
	return StepRef{Kind: StepHead, Branch: branch}
}

func Registry(roleID string) StepRef {
	return StepRef{Kind: StepRegistry, RoleID: roleID}
}

// String renders the stored wire form: "mentor_2_CSE_A", "hod_CSE", or
// the raw role id for registry roles.
func (s StepRef) String() string {
	switch s.Kind {
	case StepMentor:
		return fmt.Sprintf("mentor_%d_%s_%s", s.Year, s.Branch, s.Section)
	case StepHead:
		return "hod_" + s.Branch
	default:
		return s.RoleID
	}
}

// ParseStepRef reverses String. Anything that is not a mentor or hod
// reference is a registry role id.
func ParseStepRef(raw string) (StepRef, error) {
	switch {
	case strings.HasPrefix(raw, "mentor_"):
		parts := strings.SplitN(strings.TrimPrefix(raw, "mentor_"), "_", 3)
		if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
			return StepRef{}, fmt.Errorf("malformed mentor role %q", raw)
		}
		year, err := strconv.Atoi(parts[0])
		if err != nil {
			return StepRef{}, fmt.Errorf("malformed mentor role %q: %w", raw, err)
		}
		return Mentor(year, parts[1], parts[2]), nil
	case strings.HasPrefix(raw, "hod_"):
		branch := strings.TrimPrefix(raw, "hod_")
		if branch == "" {
			return StepRef{}, fmt.Errorf("malformed hod role %q", raw)
		}
		return HeadOfDept(branch), nil
	case raw == "":
		return StepRef{}, errors.New("empty role reference")
	default:
		return Registry(raw), nil
	}
}
