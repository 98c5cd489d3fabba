package sysconfig

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gatepass-backend/internal/domain/settings"
)

var ErrInvalidInput = errors.New("invalid settings")

var validWeekdays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

type UpdateInput struct {
	InstituteName        string   `json:"institute_name"`
	NotificationsEnabled bool     `json:"notifications_enabled"`
	EmailAlertsEnabled   bool     `json:"email_alerts_enabled"`
	AutoJummaPassEnabled bool     `json:"auto_jumma_pass_enabled"`
	StudentWorkingDays   []string `json:"student_working_days"`
	FacultyWorkingDays   []string `json:"faculty_working_days"`
	StudentPassStartTime string   `json:"student_pass_start_time" validate:"required,hhmm"`
	StudentPassEndTime   string   `json:"student_pass_end_time" validate:"required,hhmm"`
	FacultyPassStartTime string   `json:"faculty_pass_start_time" validate:"required,hhmm"`
	FacultyPassEndTime   string   `json:"faculty_pass_end_time" validate:"required,hhmm"`
	JummaPassStartTime   string   `json:"jumma_pass_start_time" validate:"required,hhmm"`
	JummaPassEndTime     string   `json:"jumma_pass_end_time" validate:"required,hhmm"`
}

type Usecase struct {
	settings settings.Repository
}

func NewUsecase(st settings.Repository) *Usecase { return &Usecase{settings: st} }

func (u *Usecase) Get(ctx context.Context) (*settings.Settings, error) {
	return u.settings.Get(ctx)
}

func (u *Usecase) Update(ctx context.Context, in UpdateInput) (*settings.Settings, error) {
	for _, days := range [][]string{in.StudentWorkingDays, in.FacultyWorkingDays} {
		for _, d := range days {
			if !validWeekdays[d] {
				return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, d)
			}
		}
	}
	for _, v := range []string{
		in.StudentPassStartTime, in.StudentPassEndTime,
		in.FacultyPassStartTime, in.FacultyPassEndTime,
		in.JummaPassStartTime, in.JummaPassEndTime,
	} {
		if _, err := time.Parse("15:04", v); err != nil {
			return nil, fmt.Errorf("%w: invalid time of day %q", ErrInvalidInput, v)
		}
	}

	cur, err := u.settings.Get(ctx)
	if err != nil {
		if !errors.Is(err, settings.ErrNotFound) {
			return nil, err
		}
		cur = settings.Defaults()
	}
	cur.InstituteName = in.InstituteName
	cur.NotificationsEnabled = in.NotificationsEnabled
	cur.EmailAlertsEnabled = in.EmailAlertsEnabled
	cur.AutoJummaPassEnabled = in.AutoJummaPassEnabled
	cur.StudentWorkingDays = in.StudentWorkingDays
	cur.FacultyWorkingDays = in.FacultyWorkingDays
	cur.StudentPassStartTime = in.StudentPassStartTime
	cur.StudentPassEndTime = in.StudentPassEndTime
	cur.FacultyPassStartTime = in.FacultyPassStartTime
	cur.FacultyPassEndTime = in.FacultyPassEndTime
	cur.JummaPassStartTime = in.JummaPassStartTime
	cur.JummaPassEndTime = in.JummaPassEndTime

	if err := u.settings.Save(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}
