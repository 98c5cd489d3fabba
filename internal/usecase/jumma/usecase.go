package jumma

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"gatepass-backend/internal/domain/applicant"
	"gatepass-backend/internal/domain/pass"
	"gatepass-backend/internal/domain/settings"
	passuc "gatepass-backend/internal/usecase/pass"
)

const (
	StatusSuccess  = "success"
	StatusDisabled = "disabled"
	StatusError    = "error"

	autoReason     = "Jumma Prayer (Automatic)"
	defaultWorkers = 4
)

type Report struct {
	Status    string `json:"status"`
	Generated int    `json:"generated"`
	Failed    int    `json:"failed"`
}

// Usecase issues pre-approved jumma passes for the eligible student
// population. Safe to re-run within the same day: the per-applicant
// exclusion check plus the (applicant, day) unique key make duplicate
// runs no-ops.
type Usecase struct {
	passes     pass.Repository
	applicants applicant.Repository
	settings   settings.Repository
	filter     EligibilityFilter
	loc        *time.Location
	log        zerolog.Logger
	now        func() time.Time
	workers    int
}

func NewUsecase(passes pass.Repository, applicants applicant.Repository, st settings.Repository, loc *time.Location, log zerolog.Logger) *Usecase {
	if loc == nil {
		loc = time.Local
	}
	return &Usecase{
		passes:     passes,
		applicants: applicants,
		settings:   st,
		filter:     DefaultFilter(),
		loc:        loc,
		log:        log,
		now:        time.Now,
		workers:    defaultWorkers,
	}
}

// WithClock overrides the time source; tests only.
func (u *Usecase) WithClock(now func() time.Time) *Usecase { u.now = now; return u }

// Run executes one batch. Per-applicant failures are counted and
// logged; they never abort the batch.
func (u *Usecase) Run(ctx context.Context) Report {
	cfg, err := u.settings.Get(ctx)
	if err != nil {
		u.log.Error().Err(err).Msg("jumma: settings unavailable")
		return Report{Status: StatusError}
	}
	if !cfg.AutoJummaPassEnabled {
		u.log.Info().Msg("jumma: automatic issuance disabled")
		return Report{Status: StatusDisabled}
	}

	students, err := u.applicants.ListStudentsByGender(ctx, u.filter.Gender)
	if err != nil {
		u.log.Error().Err(err).Msg("jumma: listing students failed")
		return Report{Status: StatusError}
	}

	var eligible []applicant.Student
	for _, s := range students {
		if u.filter.Matches(&s) {
			eligible = append(eligible, s)
		}
	}

	now := u.now().In(u.loc)
	day := passuc.DayBucket(now)

	var generated, failed int64
	sem := make(chan struct{}, u.workers)
	var wg sync.WaitGroup
	for i := range eligible {
		s := eligible[i]
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			switch u.issueOne(ctx, &s, cfg, now, day) {
			case issueCreated:
				atomic.AddInt64(&generated, 1)
			case issueFailed:
				atomic.AddInt64(&failed, 1)
			}
		}()
	}
	wg.Wait()

	u.log.Info().Int64("generated", generated).Int64("failed", failed).
		Str("day", day).Msg("jumma: batch complete")
	return Report{Status: StatusSuccess, Generated: int(generated), Failed: int(failed)}
}

type issueOutcome int

const (
	issueCreated issueOutcome = iota
	issueSkipped
	issueFailed
)

// issueOne re-reads the exclusion check at issuance time (not cached
// from the start of the run) and treats a create conflict as "already
// issued", not an error.
func (u *Usecase) issueOne(ctx context.Context, s *applicant.Student, cfg *settings.Settings, now time.Time, day string) issueOutcome {
	exists, err := u.passes.ExistsForDay(ctx, s.ApplicantID, day)
	if err != nil {
		u.log.Error().Err(err).Str("applicant_id", s.ApplicantID).Msg("jumma: exclusion check failed")
		return issueFailed
	}
	if exists {
		return issueSkipped
	}

	chain, err := pass.NewAutoApprovedChain(passuc.StudentChain(s), now.UTC())
	if err != nil {
		u.log.Error().Err(err).Str("applicant_id", s.ApplicantID).Msg("jumma: chain build failed")
		return issueFailed
	}

	p := &pass.Pass{
		PassID:        uuid.NewString(),
		ApplicantID:   s.ApplicantID,
		ApplicantType: string(applicant.TypeStudent),
		ApplicantName: s.Name,
		RollNumber:    s.RollNumber,
		Department:    s.Branch,
		AcademicYear:  s.AcademicYear,
		PassType:      pass.TypeJumma,
		Reason:        autoReason,
		Date:          now,
		PassDay:       day,
		OutTime:       cfg.JummaPassStartTime,
		InTime:        cfg.JummaPassEndTime,
		Status:        pass.StatusAutoApproved,
		Approvals:     chain,
		IsAutomatic:   true,
	}
	if err := u.passes.Create(ctx, p); err != nil {
		if errors.Is(err, pass.ErrAlreadyApplied) {
			// concurrent run won the insert; success-equivalent
			return issueSkipped
		}
		u.log.Error().Err(err).Str("applicant_id", s.ApplicantID).Msg("jumma: create failed")
		return issueFailed
	}
	return issueCreated
}
