package validate_test

import (
	"testing"

	"github.com/shalabia/storefront/pkg/validate"
)

type checkoutInput struct {
	Name    string `json:"name"    validate:"required,min=2,max=100"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required,phone_eg"`
	Area    string `json:"area"    validate:"required"`
	Address string `json:"address" validate:"required,min=5"`
	Notes   string `json:"notes"   validate:"nullable,max=500"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(checkoutInput{
		Name:    "Mariam Adel",
		Email:   "mariam@example.com",
		Phone:   "01012345678",
		Area:    "Stanley",
		Address: "12 El Geish Road, Apt 4",
		Notes:   "", // nullable — allowed to be empty
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(checkoutInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["phone"]; !ok {
		t.Error("expected phone to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestEgyptianMobileRule(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"01012345678", true},
		{"01112345678", true},
		{"01212345678", true},
		{"01512345678", true},
		{"010 1234 5678", true}, // spaces stripped
		{"010-1234-5678", true}, // dashes stripped
		{"0101234567", false},   // too short
		{"010123456789", false}, // too long
		{"01312345678", false},  // 013 is not a valid prefix
		{"01412345678", false},  // 014 is not a valid prefix
		{"0212345678", false},   // landline
		{"+12025550123", false}, // foreign number
		{"not a number", false},
	}
	for _, c := range cases {
		if got := validate.EgyptianMobile(c.phone); got != c.valid {
			t.Errorf("EgyptianMobile(%q) = %v, want %v", c.phone, got, c.valid)
		}
	}
}

func TestPhoneTagRule(t *testing.T) {
	type in struct {
		Phone string `json:"phone" validate:"required,phone_eg"`
	}
	if errs := validate.Struct(in{Phone: "0101234567"}); !validate.HasErrors(errs) {
		t.Error("expected 10-digit phone to fail")
	}
	if errs := validate.Struct(in{Phone: "01012345678"}); validate.HasErrors(errs) {
		t.Errorf("expected valid phone to pass, got: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Payment string `json:"payment" validate:"required,in=cod,card"`
	}
	if errs := validate.Struct(in{Payment: "paypal"}); !validate.HasErrors(errs) {
		t.Error("expected invalid payment method to fail")
	}
	if errs := validate.Struct(in{Payment: "cod"}); validate.HasErrors(errs) {
		t.Errorf("expected cod to pass: %v", errs)
	}
}

func TestMinMaxStringLength(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required,min=2,max=5"`
	}
	if errs := validate.Struct(in{Name: "a"}); !validate.HasErrors(errs) {
		t.Error("expected 1-char name to fail min=2")
	}
	if errs := validate.Struct(in{Name: "abcdef"}); !validate.HasErrors(errs) {
		t.Error("expected 6-char name to fail max=5")
	}
	if errs := validate.Struct(in{Name: "abc"}); validate.HasErrors(errs) {
		t.Errorf("expected 3-char name to pass: %v", errs)
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Notes string `json:"notes" validate:"nullable,min=10"`
	}
	if errs := validate.Struct(in{Notes: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable field to pass: %v", errs)
	}
	if errs := validate.Struct(in{Notes: "short"}); !validate.HasErrors(errs) {
		t.Error("expected non-empty nullable field to still honour min=10")
	}
}
