package settings

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("system settings not found")

type Audience string

const (
	AudienceStudent Audience = "student"
	AudienceFaculty Audience = "faculty"
)

type Weekdays []string

// Settings is a singleton row (id=1), mutated only by administrators.
type Settings struct {
	ID                   uint64   `gorm:"primaryKey;column:id" json:"-"`
	InstituteName        string   `gorm:"size:128" json:"institute_name"`
	NotificationsEnabled bool     `json:"notifications_enabled"`
	EmailAlertsEnabled   bool     `json:"email_alerts_enabled"`
	AutoJummaPassEnabled bool     `json:"auto_jumma_pass_enabled"`
	StudentWorkingDays   Weekdays `gorm:"serializer:json" json:"student_working_days"`
	FacultyWorkingDays   Weekdays `gorm:"serializer:json" json:"faculty_working_days"`
	StudentPassStartTime string   `gorm:"size:5" json:"student_pass_start_time"`
	StudentPassEndTime   string   `gorm:"size:5" json:"student_pass_end_time"`
	FacultyPassStartTime string   `gorm:"size:5" json:"faculty_pass_start_time"`
	FacultyPassEndTime   string   `gorm:"size:5" json:"faculty_pass_end_time"`
	JummaPassStartTime   string   `gorm:"size:5" json:"jumma_pass_start_time"`
	JummaPassEndTime     string   `gorm:"size:5" json:"jumma_pass_end_time"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Settings) TableName() string { return "settings" }

// Defaults mirrors the values the system seeds on first start: the
// student window is wide open until an administrator narrows it, and
// automatic jumma issuance is off.
func Defaults() *Settings {
	days := Weekdays{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	return &Settings{
		ID:                   1,
		StudentWorkingDays:   days,
		FacultyWorkingDays:   days,
		StudentPassStartTime: "00:00",
		StudentPassEndTime:   "23:59",
		FacultyPassStartTime: "00:00",
		FacultyPassEndTime:   "23:59",
		JummaPassStartTime:   "12:00",
		JummaPassEndTime:     "14:00",
	}
}

// WindowFor returns the working days and submission window for one
// audience.
func (s *Settings) WindowFor(aud Audience) (days Weekdays, start, end string) {
	if aud == AudienceFaculty {
		return s.FacultyWorkingDays, s.FacultyPassStartTime, s.FacultyPassEndTime
	}
	return s.StudentWorkingDays, s.StudentPassStartTime, s.StudentPassEndTime
}
