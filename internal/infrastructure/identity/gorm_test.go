package identity

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	idDomain "gatepass-backend/internal/domain/identity"
)

func openIdentityTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Credential{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestCreateAndVerify(t *testing.T) {
	p := NewGormProvider(openIdentityTestDB(t))
	ctx := context.Background()

	uid, err := p.CreateIdentity(ctx, "a@example.edu", "s3cret", "A Student")
	if err != nil {
		t.Fatalf("CreateIdentity: %v", err)
	}
	if uid == "" {
		t.Fatal("empty uid")
	}

	got, err := p.VerifyCredentials(ctx, "a@example.edu", "s3cret")
	if err != nil {
		t.Fatalf("VerifyCredentials: %v", err)
	}
	if got != uid {
		t.Fatalf("uid mismatch: %q vs %q", got, uid)
	}

	if _, err := p.VerifyCredentials(ctx, "a@example.edu", "wrong"); !errors.Is(err, idDomain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: want ErrInvalidCredentials, got %v", err)
	}
	if _, err := p.VerifyCredentials(ctx, "nobody@example.edu", "s3cret"); !errors.Is(err, idDomain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: want ErrInvalidCredentials, got %v", err)
	}
}

func TestCreateIdentity_DuplicateEmail(t *testing.T) {
	p := NewGormProvider(openIdentityTestDB(t))
	ctx := context.Background()

	if _, err := p.CreateIdentity(ctx, "dup@example.edu", "x", "One"); err != nil {
		t.Fatalf("first CreateIdentity: %v", err)
	}
	_, err := p.CreateIdentity(ctx, "dup@example.edu", "y", "Two")
	if !errors.Is(err, idDomain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestUpdateIdentity(t *testing.T) {
	p := NewGormProvider(openIdentityTestDB(t))
	ctx := context.Background()

	uid, err := p.CreateIdentity(ctx, "u@example.edu", "old", "U")
	if err != nil {
		t.Fatalf("CreateIdentity: %v", err)
	}

	newMail := "u2@example.edu"
	newPass := "new"
	if err := p.UpdateIdentity(ctx, uid, idDomain.Update{Email: &newMail, Password: &newPass}); err != nil {
		t.Fatalf("UpdateIdentity: %v", err)
	}

	if _, err := p.VerifyCredentials(ctx, "u@example.edu", "old"); !errors.Is(err, idDomain.ErrInvalidCredentials) {
		t.Fatalf("old credentials should stop working, got %v", err)
	}
	got, err := p.VerifyCredentials(ctx, newMail, newPass)
	if err != nil || got != uid {
		t.Fatalf("new credentials: uid=%q err=%v", got, err)
	}

	if err := p.UpdateIdentity(ctx, "missing-uid", idDomain.Update{Email: &newMail}); !errors.Is(err, idDomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteIdentity(t *testing.T) {
	p := NewGormProvider(openIdentityTestDB(t))
	ctx := context.Background()

	uid, err := p.CreateIdentity(ctx, "d@example.edu", "pw", "D")
	if err != nil {
		t.Fatalf("CreateIdentity: %v", err)
	}
	if err := p.DeleteIdentity(ctx, uid); err != nil {
		t.Fatalf("DeleteIdentity: %v", err)
	}
	if err := p.DeleteIdentity(ctx, uid); !errors.Is(err, idDomain.ErrNotFound) {
		t.Fatalf("second delete: want ErrNotFound, got %v", err)
	}
	if _, err := p.VerifyCredentials(ctx, "d@example.edu", "pw"); !errors.Is(err, idDomain.ErrInvalidCredentials) {
		t.Fatalf("deleted identity should fail verify, got %v", err)
	}
}
