package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "gatepass-backend/internal/domain/settings"
)

func openSettingsTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Settings{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestSettingsGet_EmptyTable(t *testing.T) {
	db := openSettingsTestDB(t)
	repo := NewSettingsRepository(db)

	_, err := repo.Get(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSettingsEnsure_SeedsDefaults(t *testing.T) {
	db := openSettingsTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	got, err := repo.Ensure(ctx)
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if got.StudentPassStartTime != "00:00" || got.JummaPassEndTime != "14:00" {
		t.Errorf("defaults not seeded: %+v", got)
	}
	if len(got.StudentWorkingDays) != 6 {
		t.Errorf("working days = %v", got.StudentWorkingDays)
	}

	// second Ensure must return the existing row, not reset it
	got.AutoJummaPassEnabled = true
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("Save: %v", err)
	}
	again, err := repo.Ensure(ctx)
	if err != nil {
		t.Fatalf("Ensure again: %v", err)
	}
	if !again.AutoJummaPassEnabled {
		t.Fatalf("Ensure overwrote existing settings: %+v", again)
	}
}

func TestSettingsSave_PinsSingletonID(t *testing.T) {
	db := openSettingsTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	s := domain.Defaults()
	s.ID = 0 // callers don't need to know the singleton id
	s.InstituteName = "Test Institute"
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != 1 || got.InstituteName != "Test Institute" {
		t.Fatalf("unexpected settings row: %+v", got)
	}
}
