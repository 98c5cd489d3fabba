package http

import (
	"errors"
	"testing"
)

type hhmmProbe struct {
	Email string `validate:"required,email"`
	Start string `validate:"required,hhmm"`
}

func TestCustomValidator_HHMM(t *testing.T) {
	cv := NewValidator()

	if err := cv.Validate(&hhmmProbe{Email: "a@b.edu", Start: "09:30"}); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	err := cv.Validate(&hhmmProbe{Email: "a@b.edu", Start: "9:30pm"})
	if err == nil {
		t.Fatal("malformed time accepted")
	}
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "Start", "HH:MM") {
		t.Fatalf("field errors = %+v", fe)
	}
}

func TestToFieldErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&hhmmProbe{})
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "Email", "required") || !containsFieldMsg(fe, "Start", "required") {
		t.Fatalf("field errors = %+v", fe)
	}

	err = cv.Validate(&hhmmProbe{Email: "not-an-email", Start: "09:00"})
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "Email", "valid email") {
		t.Fatalf("field errors = %+v", fe)
	}

	// non-validator errors collapse into a single catch-all entry
	fe = ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 || fe[0].Field != "_" {
		t.Fatalf("field errors = %+v", fe)
	}
}
