package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestProcessValidationErrors(t *testing.T) {
	type payload struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}

	v := validator.New()
	err := v.Struct(payload{Email: "nope", Password: "short"})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	got := ProcessValidationErrors(err)
	if got["Email"] != "email" {
		t.Fatalf("Email rule = %q", got["Email"])
	}
	if got["Password"] != "min" {
		t.Fatalf("Password rule = %q", got["Password"])
	}
}

func TestProcessValidationErrorsNonValidator(t *testing.T) {
	got := ProcessValidationErrors(errors.New("unexpected EOF"))
	if got["body"] != "unexpected EOF" {
		t.Fatalf("got %v", got)
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	if err := ValidatePhoneNumber("+959421234567", "MM"); err != nil {
		t.Fatalf("valid number rejected: %v", err)
	}
	if err := ValidatePhoneNumber("12345", "MM"); err == nil {
		t.Fatal("junk number accepted")
	}
}
