package pass

import (
	"time"

	"gatepass-backend/internal/domain/applicant"
	"gatepass-backend/internal/domain/pass"
)

// Actor identifies the authenticated submitter.
type Actor struct {
	ID   string
	Type applicant.Type
}

type SubmitInput struct {
	PassType string `json:"pass_type"`
	Reason   string `json:"reason"`
}

type StepDTO struct {
	Role       string     `json:"role"`
	Status     string     `json:"status"`
	ApprovedBy string     `json:"approved_by,omitempty"`
	Timestamp  *time.Time `json:"timestamp,omitempty"`
}

type PassDTO struct {
	PassID          string    `json:"pass_id"`
	ApplicantID     string    `json:"applicant_id"`
	ApplicantType   string    `json:"applicant_type"`
	ApplicantName   string    `json:"applicant_name"`
	RollNumber      string    `json:"roll_number,omitempty"`
	Department      string    `json:"department,omitempty"`
	PassType        string    `json:"pass_type"`
	Reason          string    `json:"reason"`
	Date            time.Time `json:"date"`
	OutTime         string    `json:"out_time"`
	InTime          string    `json:"in_time,omitempty"`
	Status          string    `json:"status"`
	Approvals       []StepDTO `json:"approvals"`
	CurrentApprover string    `json:"current_approver,omitempty"`
	IsAutomatic     bool      `json:"is_automatic"`
}

// ToDTO is shared with the approval usecase.
func ToDTO(p *pass.Pass) *PassDTO {
	steps := make([]StepDTO, 0, len(p.Approvals))
	for _, s := range p.Approvals {
		steps = append(steps, StepDTO{
			Role:       s.Role,
			Status:     string(s.Status),
			ApprovedBy: s.ApprovedBy,
			Timestamp:  s.Timestamp,
		})
	}
	return &PassDTO{
		PassID:          p.PassID,
		ApplicantID:     p.ApplicantID,
		ApplicantType:   p.ApplicantType,
		ApplicantName:   p.ApplicantName,
		RollNumber:      p.RollNumber,
		Department:      p.Department,
		PassType:        string(p.PassType),
		Reason:          p.Reason,
		Date:            p.Date,
		OutTime:         p.OutTime,
		InTime:          p.InTime,
		Status:          string(p.Status),
		Approvals:       steps,
		CurrentApprover: p.CurrentApprover,
		IsAutomatic:     p.IsAutomatic,
	}
}
