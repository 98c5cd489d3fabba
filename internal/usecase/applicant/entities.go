package applicant

type StudentInput struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password"`
	RollNumber   string `json:"roll_number" validate:"required"`
	Branch       string `json:"branch" validate:"required"`
	Section      string `json:"section" validate:"required"`
	AcademicYear int    `json:"academic_year" validate:"required,gte=1"`
	PassOutYear  int    `json:"pass_out_year"`
	Gender       string `json:"gender"`
	Religion     string `json:"religion"`
	Phone        string `json:"phone"`
}

type FacultyInput struct {
	Name       string      `json:"name" validate:"required"`
	Email      string      `json:"email" validate:"required,email"`
	Password   string      `json:"password"`
	Phone      string      `json:"phone"`
	Department string      `json:"department" validate:"required"`
	FacultyID  string      `json:"faculty_id"`
	Gender     string      `json:"gender"`
	Religion   string      `json:"religion"`
	Roles      []RoleGrant `json:"roles"`
}

// RoleGrant names a registry role to assign, with the year/branch/
// section mapping scoped roles require.
type RoleGrant struct {
	RoleID  string            `json:"role_id" validate:"required"`
	Mapping map[string]string `json:"mapping,omitempty"`
}
