package pass

import (
	"gatepass-backend/internal/domain/applicant"
	"gatepass-backend/internal/domain/pass"
	"gatepass-backend/internal/domain/role"
)

// StudentChain is always exactly two steps: the section mentor, then
// the head of the student's branch.
func StudentChain(s *applicant.Student) []role.StepRef {
	return []role.StepRef{
		role.Mentor(s.AcademicYear, s.Branch, s.Section),
		role.HeadOfDept(s.Branch),
	}
}

// FacultyChain derives the chain from the applicant's own assigned-role
// snapshots, keeping only faculty_pass roles, in assignment order.
// An empty result is ErrNoApprovalChain: a pass must never be created
// with zero steps.
func FacultyChain(f *applicant.Faculty) ([]role.StepRef, error) {
	var refs []role.StepRef
	for _, a := range f.AssignedRoles {
		if a.ApprovalType != role.TypeFacultyPass {
			continue
		}
		refs = append(refs, role.Registry(a.RoleID))
	}
	if len(refs) == 0 {
		return nil, pass.ErrNoApprovalChain
	}
	return refs, nil
}
