package pass

import (
	"errors"
	"time"

	"gatepass-backend/internal/domain/role"
)

var (
	ErrNotFound           = errors.New("pass not found")
	ErrAlreadyTerminal    = errors.New("pass already terminal")
	ErrNotCurrentApprover = errors.New("actor is not the current approver")
	ErrChainCorrupt       = errors.New("approval chain corrupt")
	ErrNoApprovalChain    = errors.New("no approval chain for applicant")
	ErrAlreadyApplied     = errors.New("applicant already has a pass today")
	ErrInvalidDecision    = errors.New("invalid decision")
	ErrInvalidPassType    = errors.New("invalid pass type")
)

// ClosedError reports a submission attempt outside the allowed window.
type ClosedError struct{ Reason string }

func (e *ClosedError) Error() string { return "submissions closed: " + e.Reason }

type Status string

const (
	StatusPending      Status = "pending"
	StatusApproved     Status = "approved"
	StatusRejected     Status = "rejected"
	StatusAutoApproved Status = "auto_approved"
)

// Terminal reports whether no further transition may occur.
// auto_approved is an entry-only terminal state, never reached via
// transition.
func (s Status) Terminal() bool { return s != StatusPending }

type StepStatus string

const (
	StepPending      StepStatus = "pending"
	StepApproved     StepStatus = "approved"
	StepRejected     StepStatus = "rejected"
	StepAutoApproved StepStatus = "auto_approved"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Step is one entry of the approval chain. Role holds the wire form of
// a role.StepRef (see role.ParseStepRef).
type Step struct {
	Role       string     `json:"role"`
	Status     StepStatus `json:"status"`
	ApprovedBy string     `json:"approved_by,omitempty"`
	Timestamp  *time.Time `json:"timestamp,omitempty"`
}

type Chain []Step

type Type string

const (
	TypeRegular Type = "regular"
	TypeJumma   Type = "jumma"
)

func (t Type) Valid() bool { return t == TypeRegular || t == TypeJumma }

// Pass snapshots the applicant's name/roll/department at submission
// time so later applicant edits don't rewrite history.
type Pass struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	PassID        string    `gorm:"size:36;uniqueIndex:ux_passes_pass_id" json:"pass_id"`
	ApplicantID   string    `gorm:"size:36;index:idx_passes_applicant;uniqueIndex:ux_passes_applicant_day" json:"applicant_id"`
	ApplicantType string    `gorm:"size:8" json:"applicant_type"`
	ApplicantName string    `gorm:"size:128" json:"applicant_name"`
	RollNumber    string    `gorm:"size:32" json:"roll_number"`
	Department    string    `gorm:"size:32" json:"department"`
	AcademicYear  int       `json:"academic_year"`
	PassType      Type      `gorm:"size:8" json:"pass_type"`
	Reason        string    `gorm:"type:text" json:"reason"`
	Date          time.Time `json:"date"`
	// PassDay is the day-bucket key (YYYY-MM-DD in the site timezone);
	// the unique index on (applicant_id, pass_day) is what makes batch
	// issuance create-if-absent.
	PassDay         string `gorm:"size:10;uniqueIndex:ux_passes_applicant_day" json:"pass_day"`
	OutTime         string `gorm:"size:5" json:"out_time"`
	InTime          string `gorm:"size:5" json:"in_time,omitempty"`
	Status          Status `gorm:"size:16;index" json:"status"`
	Approvals       Chain  `gorm:"serializer:json" json:"approvals"`
	CurrentApprover string `gorm:"size:64;index" json:"current_approver,omitempty"`
	IsAutomatic     bool   `json:"is_automatic"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Pass) TableName() string { return "passes" }

// NewChain builds a pending chain from ordered step refs. Empty input
// is rejected: a pass must never exist with zero steps.
func NewChain(refs []role.StepRef) (Chain, error) {
	if len(refs) == 0 {
		return nil, ErrNoApprovalChain
	}
	ch := make(Chain, 0, len(refs))
	for _, r := range refs {
		ch = append(ch, Step{Role: r.String(), Status: StepPending})
	}
	return ch, nil
}

// NewAutoApprovedChain builds a chain whose every step is already
// auto-approved, for batch-issued passes.
func NewAutoApprovedChain(refs []role.StepRef, at time.Time) (Chain, error) {
	ch, err := NewChain(refs)
	if err != nil {
		return nil, err
	}
	for i := range ch {
		ch[i].Status = StepAutoApproved
		ch[i].Timestamp = &at
	}
	return ch, nil
}

// currentStepIndex locates the chain entry the pass is waiting on.
func (p *Pass) currentStepIndex() int {
	for i, s := range p.Approvals {
		if s.Role == p.CurrentApprover && s.Status == StepPending {
			return i
		}
	}
	return -1
}

// ApplyDecision is the only transition operation. It marks the current
// step, then either terminates the pass (reject, or approve on the last
// step) or advances current_approver to the next step in order.
func (p *Pass) ApplyDecision(actorID string, d Decision, at time.Time) error {
	if d != DecisionApprove && d != DecisionReject {
		return ErrInvalidDecision
	}
	if p.Status.Terminal() {
		return ErrAlreadyTerminal
	}
	i := p.currentStepIndex()
	if i < 0 {
		return ErrChainCorrupt
	}

	step := &p.Approvals[i]
	step.ApprovedBy = actorID
	step.Timestamp = &at

	if d == DecisionReject {
		step.Status = StepRejected
		p.Status = StatusRejected
		p.CurrentApprover = ""
		return nil
	}

	step.Status = StepApproved
	if i == len(p.Approvals)-1 {
		p.Status = StatusApproved
		p.CurrentApprover = ""
		return nil
	}
	p.CurrentApprover = p.Approvals[i+1].Role
	return nil
}
