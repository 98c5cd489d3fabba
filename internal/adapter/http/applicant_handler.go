package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	applicantDomain "gatepass-backend/internal/domain/applicant"
	applicantuc "gatepass-backend/internal/usecase/applicant"
)

// ApplicantHandler is the admin surface for student/faculty accounts.
type ApplicantHandler struct{ uc *applicantuc.Usecase }

func NewApplicantHandler(uc *applicantuc.Usecase) *ApplicantHandler {
	return &ApplicantHandler{uc: uc}
}

func (h *ApplicantHandler) CreateStudent(c echo.Context) error {
	var req applicantuc.StudentInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	s, err := h.uc.RegisterStudent(c.Request().Context(), req)
	if err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *ApplicantHandler) UpdateStudent(c echo.Context) error {
	id := c.Param("applicant_id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing applicant_id path param"})
	}
	var req applicantuc.StudentInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	s, err := h.uc.UpdateStudent(c.Request().Context(), id, req)
	if err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *ApplicantHandler) DeleteStudent(c echo.Context) error {
	id := c.Param("applicant_id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing applicant_id path param"})
	}
	if err := h.uc.DeleteStudent(c.Request().Context(), id); err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ApplicantHandler) ListStudents(c echo.Context) error {
	list, err := h.uc.ListStudents(c.Request().Context())
	if err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]any{"students": list})
}

func (h *ApplicantHandler) CreateFaculty(c echo.Context) error {
	var req applicantuc.FacultyInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	f, err := h.uc.RegisterFaculty(c.Request().Context(), req)
	if err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *ApplicantHandler) UpdateFaculty(c echo.Context) error {
	id := c.Param("applicant_id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing applicant_id path param"})
	}
	var req applicantuc.FacultyInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	f, err := h.uc.UpdateFaculty(c.Request().Context(), id, req)
	if err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *ApplicantHandler) DeleteFaculty(c echo.Context) error {
	id := c.Param("applicant_id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing applicant_id path param"})
	}
	if err := h.uc.DeleteFaculty(c.Request().Context(), id); err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ApplicantHandler) ListFaculty(c echo.Context) error {
	list, err := h.uc.ListFaculty(c.Request().Context())
	if err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]any{"faculty": list})
}

// ResetPassword sets the account back to the default password and
// mails the applicant when possible.
func (h *ApplicantHandler) ResetPassword(c echo.Context) error {
	kind := c.Param("kind")
	id := c.Param("applicant_id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing applicant_id path param"})
	}

	var t applicantDomain.Type
	switch kind {
	case "students":
		t = applicantDomain.TypeStudent
	case "faculty":
		t = applicantDomain.TypeFaculty
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "kind must be students or faculty"})
	}

	if err := h.uc.ResetPassword(c.Request().Context(), t, id); err != nil {
		code, body := writeError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "password reset"})
}
