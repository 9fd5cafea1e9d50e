package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidArity, "test message: %s", "value")

	if err.Code != ErrCodeInvalidArity {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidArity)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_ARITY: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("exit status 1")
	err := Wrap(ErrCodeProcess, cause, "line 0: invalid command")

	if err.Code != ErrCodeProcess {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeProcess)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInvalidInput, "test"), ErrCodeInvalidInput, true},
		{"non-matching code", New(ErrCodeInvalidInput, "test"), ErrCodeProcess, false},
		{"wrapped error", Wrap(ErrCodeProcess, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeProcess, true},
		{"non-Error type", errors.New("plain error"), ErrCodeInvalidInput, false},
		{"nil error", nil, ErrCodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
		want bool
	}{
		{"arity is validation", New(ErrCodeInvalidArity, "x"), KindValidation, true},
		{"missing file is resource", New(ErrCodeFileNotFound, "x"), KindResource, true},
		{"empty data is resource", New(ErrCodeEmptyData, "x"), KindResource, true},
		{"format is precondition", New(ErrCodeUnsupportedFormat, "x"), KindPrecondition, true},
		{"mode conflict is precondition", New(ErrCodeModeConflict, "x"), KindPrecondition, true},
		{"timeout is process", New(ErrCodeTimeout, "x"), KindProcess, true},
		{"process is not validation", New(ErrCodeProcess, "x"), KindValidation, false},
		{"plain error", errors.New("plain"), KindValidation, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKind(tt.err, tt.kind); got != tt.want {
				t.Errorf("IsKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnknownCodeIsInternal(t *testing.T) {
	if got := Code("SOMETHING_ELSE").Kind(); got != KindInternal {
		t.Errorf("Kind() = %v, want %v", got, KindInternal)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeNoSeries, "test"), ErrCodeNoSeries},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"process stderr verbatim", Wrap(ErrCodeProcess, errors.New("exit status 1"), "\nplot ;\n     ^\nline 0: invalid expression\n"), "\nplot ;\n     ^\nline 0: invalid expression\n"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	seen := make(map[Code]bool)
	for code := range codeKinds {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
	if len(seen) != 15 {
		t.Errorf("expected 15 registered codes, got %d", len(seen))
	}
}
