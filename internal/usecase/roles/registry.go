package roles

import (
	"context"
	"errors"
	"strconv"

	"gatepass-backend/internal/domain/applicant"
	"gatepass-backend/internal/domain/role"
)

// Registry resolves step references to the faculty allowed to act on
// them, walking fallback roles when the primary one has no holder.
type Registry struct {
	roles      role.Repository
	applicants applicant.Repository
}

func NewRegistry(roles role.Repository, applicants applicant.Repository) *Registry {
	return &Registry{roles: roles, applicants: applicants}
}

// scoped role names that carry a year/branch/section mapping
func isScopedRole(name string) bool { return name == "Mentor" || name == "Teacher" }

// Resolve implements role.Resolver. Unresolvable after exhausting
// fallbacks means role.ErrNoEligibleApprover: the pass stays pending
// until an administrator intervenes.
func (r *Registry) Resolve(ctx context.Context, ref role.StepRef) ([]string, error) {
	all, err := r.applicants.ListFaculty(ctx)
	if err != nil {
		return nil, err
	}
	switch ref.Kind {
	case role.StepMentor, role.StepHead:
		ids := holdersOf(all, ref)
		if len(ids) == 0 {
			return nil, role.ErrNoEligibleApprover
		}
		return ids, nil
	default:
		return r.resolveRegistry(ctx, all, ref.RoleID, map[string]bool{})
	}
}

func (r *Registry) resolveRegistry(ctx context.Context, all []applicant.Faculty, roleID string, seen map[string]bool) ([]string, error) {
	if seen[roleID] {
		return nil, role.ErrNoEligibleApprover
	}
	seen[roleID] = true

	ids := holdersOf(all, role.Registry(roleID))
	if len(ids) > 0 {
		return ids, nil
	}

	def, err := r.roles.GetByRoleID(ctx, roleID)
	if err != nil {
		if errors.Is(err, role.ErrNotFound) {
			return nil, role.ErrNoEligibleApprover
		}
		return nil, err
	}
	for _, fb := range def.FallbackRoles {
		got, err := r.resolveRegistry(ctx, all, fb, seen)
		if err == nil {
			return got, nil
		}
		if !errors.Is(err, role.ErrNoEligibleApprover) {
			return nil, err
		}
	}
	return nil, role.ErrNoEligibleApprover
}

// holdersOf returns faculty applicant ids whose assignment snapshots
// cover the given step.
func holdersOf(all []applicant.Faculty, ref role.StepRef) []string {
	var ids []string
	for i := range all {
		if facultyHolds(&all[i], ref) {
			ids = append(ids, all[i].ApplicantID)
		}
	}
	return ids
}

func facultyHolds(f *applicant.Faculty, ref role.StepRef) bool {
	for _, a := range f.AssignedRoles {
		switch ref.Kind {
		case role.StepMentor:
			if isScopedRole(a.RoleName) && mappingMatches(a.Mapping, ref) {
				return true
			}
		case role.StepHead:
			if a.ApprovalType == role.TypeHeadApproval && headBranch(f, a) == ref.Branch {
				return true
			}
		default:
			if a.RoleID == ref.RoleID {
				return true
			}
		}
	}
	return false
}

func mappingMatches(m map[string]string, ref role.StepRef) bool {
	if m == nil {
		return false
	}
	return m["year"] == strconv.Itoa(ref.Year) && m["branch"] == ref.Branch && m["section"] == ref.Section
}

// headBranch prefers an explicit branch mapping, falling back to the
// faculty member's own department.
func headBranch(f *applicant.Faculty, a applicant.RoleAssignment) string {
	if a.Mapping != nil && a.Mapping["branch"] != "" {
		return a.Mapping["branch"]
	}
	return f.Department
}

// StepStringsFor lists every role string the faculty member may act
// as, in the wire form stored on pass chains.
func (r *Registry) StepStringsFor(f *applicant.Faculty) []string {
	var out []string
	for _, a := range f.AssignedRoles {
		switch {
		case isScopedRole(a.RoleName) && a.Mapping != nil:
			out = append(out, "mentor_"+a.Mapping["year"]+"_"+a.Mapping["branch"]+"_"+a.Mapping["section"])
		case a.ApprovalType == role.TypeHeadApproval:
			out = append(out, role.HeadOfDept(headBranch(f, a)).String())
		}
		out = append(out, a.RoleID)
	}
	return out
}

// HoldsStep reports whether the faculty member may act on the given
// current_approver value.
func (r *Registry) HoldsStep(f *applicant.Faculty, step string) bool {
	for _, s := range r.StepStringsFor(f) {
		if s == step {
			return true
		}
	}
	return false
}

