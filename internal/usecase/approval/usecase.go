package approval

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"gatepass-backend/internal/domain/applicant"
	"gatepass-backend/internal/domain/notify"
	domainPass "gatepass-backend/internal/domain/pass"
	"gatepass-backend/internal/domain/role"
	"gatepass-backend/internal/domain/uow"
	passuc "gatepass-backend/internal/usecase/pass"
)

// RoleChecker answers whether a faculty member may act on a given
// current_approver value and resolves a step to its eligible approvers;
// implemented by the role registry.
type RoleChecker interface {
	HoldsStep(f *applicant.Faculty, step string) bool
	Resolve(ctx context.Context, ref role.StepRef) ([]string, error)
}

type Usecase struct {
	uow     uow.UnitOfWork
	checker RoleChecker
	mailer  notify.Sender
	log     zerolog.Logger
	now     func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, checker RoleChecker, mailer notify.Sender, log zerolog.Logger) *Usecase {
	if mailer == nil {
		mailer = notify.Noop{}
	}
	return &Usecase{uow: tx, checker: checker, mailer: mailer, log: log, now: time.Now}
}

// WithClock overrides the time source; tests only.
func (u *Usecase) WithClock(now func() time.Time) *Usecase { u.now = now; return u }

// ApplyDecision marks the current step and advances or terminates the
// chain, all inside one row-locked transaction so a racing decision
// observes the terminal state instead of corrupting it.
func (u *Usecase) ApplyDecision(ctx context.Context, in DecisionInput) (*passuc.PassDTO, error) {
	var d domainPass.Decision
	switch in.Decision {
	case "approve":
		d = domainPass.DecisionApprove
	case "reject":
		d = domainPass.DecisionReject
	default:
		return nil, domainPass.ErrInvalidDecision
	}

	var (
		dto            *passuc.PassDTO
		applicantEmail string
		nextApprovers  []string
	)
	err := u.uow.WithinPassTx(ctx, in.PassID, func(r uow.Repos, p *domainPass.Pass) error {
		if p.Status.Terminal() {
			return domainPass.ErrAlreadyTerminal
		}

		actor, err := r.Applicants.GetFaculty(ctx, in.ActorID)
		if err != nil {
			if errors.Is(err, applicant.ErrNotFound) {
				return domainPass.ErrNotCurrentApprover
			}
			return err
		}
		if !u.checker.HoldsStep(actor, p.CurrentApprover) {
			return domainPass.ErrNotCurrentApprover
		}

		if err := p.ApplyDecision(in.ActorID, d, u.now().UTC()); err != nil {
			return err
		}
		if err := r.Passes.Save(ctx, p); err != nil {
			return err
		}

		applicantEmail = lookupApplicantEmail(ctx, r, p)
		if p.Status == domainPass.StatusPending {
			nextApprovers = lookupApproverEmails(ctx, u.checker, r, p.CurrentApprover)
		}
		dto = passuc.ToDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Info().Str("pass_id", in.PassID).Str("actor_id", in.ActorID).
		Str("decision", in.Decision).Str("status", dto.Status).Msg("decision applied")
	u.notifyApplicant(applicantEmail, dto)
	u.notifyNextApprovers(nextApprovers, dto)
	return dto, nil
}

// lookupApproverEmails resolves the new current step to the faculty who
// can act on it. Resolution failures leave the list empty; the pass
// simply waits in their inboxes.
func lookupApproverEmails(ctx context.Context, checker RoleChecker, r uow.Repos, step string) []string {
	ref, err := role.ParseStepRef(step)
	if err != nil {
		return nil
	}
	ids, err := checker.Resolve(ctx, ref)
	if err != nil {
		return nil
	}
	var emails []string
	for _, id := range ids {
		if f, err := r.Applicants.GetFaculty(ctx, id); err == nil && f.Email != "" {
			emails = append(emails, f.Email)
		}
	}
	return emails
}

func lookupApplicantEmail(ctx context.Context, r uow.Repos, p *domainPass.Pass) string {
	if p.ApplicantType == string(applicant.TypeFaculty) {
		if f, err := r.Applicants.GetFaculty(ctx, p.ApplicantID); err == nil {
			return f.Email
		}
		return ""
	}
	if s, err := r.Applicants.GetStudent(ctx, p.ApplicantID); err == nil {
		return s.Email
	}
	return ""
}

func (u *Usecase) notifyNextApprovers(emails []string, dto *passuc.PassDTO) {
	for _, email := range emails {
		email := email
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			subject := "Gate pass awaiting your approval"
			body := fmt.Sprintf("Gate pass %s from %s is waiting for your decision.", dto.PassID, dto.ApplicantName)
			if err := u.mailer.Send(ctx, email, subject, body); err != nil {
				u.log.Warn().Err(err).Str("pass_id", dto.PassID).Msg("approver mail failed")
			}
		}()
	}
}

// notifyApplicant is fire-and-forget: a failed send is logged, never
// surfaced.
func (u *Usecase) notifyApplicant(email string, dto *passuc.PassDTO) {
	if email == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		subject := fmt.Sprintf("Gate pass %s", dto.Status)
		body := fmt.Sprintf("Your gate pass %s is now %s.", dto.PassID, dto.Status)
		if err := u.mailer.Send(ctx, email, subject, body); err != nil {
			u.log.Warn().Err(err).Str("pass_id", dto.PassID).Msg("decision mail failed")
		}
	}()
}
