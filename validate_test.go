package readline

import (
	"strings"
	"testing"
)

func TestMatchingBracketValidator(t *testing.T) {
	v := &MatchingBracketValidator{}

	tests := []struct {
		name    string
		line    string
		status  ValidationStatus
		message string
	}{
		{name: "empty", line: "", status: ValidationValid},
		{name: "no_brackets", line: "echo hello", status: ValidationValid},
		{name: "balanced", line: "(a [b {c}])", status: ValidationValid},
		{name: "open_paren", line: "(foo", status: ValidationIncomplete},
		{name: "open_nested", line: "{[(", status: ValidationIncomplete},
		{name: "unmatched_close", line: ")", status: ValidationInvalid, message: "unmatched )"},
		{name: "mismatched_pair", line: "(]", status: ValidationInvalid, message: "mismatched ( closed by ]"},
		{name: "close_after_balanced", line: "()]", status: ValidationInvalid, message: "unmatched ]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.line)
			if res.Status != tt.status {
				t.Errorf("Validate(%q).Status = %v, want %v", tt.line, res.Status, tt.status)
			}
			if tt.message != "" && !strings.Contains(res.Message, tt.message) {
				t.Errorf("Validate(%q).Message = %q, want it to contain %q", tt.line, res.Message, tt.message)
			}
		})
	}
}

func TestMatchingBracketValidatorWhileTyping(t *testing.T) {
	v := &MatchingBracketValidator{}
	if v.ValidateWhileTyping() {
		t.Error("ValidateWhileTyping should default to false")
	}
	v.WhileTyping = true
	if !v.ValidateWhileTyping() {
		t.Error("ValidateWhileTyping should report the configured value")
	}
}

func TestValidatorFunc(t *testing.T) {
	v := ValidatorFunc(func(line string) ValidationResult {
		if line == "bad" {
			return ValidationResult{Status: ValidationInvalid, Message: "rejected"}
		}
		return ValidationResult{Status: ValidationValid}
	})

	if res := v.Validate("ok"); res.Status != ValidationValid {
		t.Errorf("want Valid, got %v", res.Status)
	}
	if res := v.Validate("bad"); res.Status != ValidationInvalid || res.Message != "rejected" {
		t.Errorf("want Invalid/rejected, got %v %q", res.Status, res.Message)
	}
	if v.ValidateWhileTyping() {
		t.Error("ValidatorFunc should never validate while typing")
	}
}
