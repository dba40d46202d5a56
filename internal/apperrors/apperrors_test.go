package apperrors

import (
	"errors"
	"strings"
	"testing"
)

func TestCatalogCompleteness(t *testing.T) {
	for _, code := range Codes() {
		err := New(code)
		if err.Code != code {
			t.Fatalf("New(%s) returned code %s", code, err.Code)
		}
		if strings.TrimSpace(err.Title) == "" {
			t.Errorf("code %s has empty title", code)
		}
		if strings.TrimSpace(err.Message) == "" {
			t.Errorf("code %s has empty message", code)
		}
		if strings.TrimSpace(err.Remedy) == "" {
			t.Errorf("code %s has empty remedy", code)
		}
		if err.Phase() == "" {
			t.Errorf("code %s has no phase", code)
		}
		if HTTPStatus(code) == 0 {
			t.Errorf("code %s has no http status", code)
		}
	}
}

func TestUnknownCodeCollapsesToInternal(t *testing.T) {
	err := New(Code("NOT_A_REAL_CODE"))
	if err.Code != CodeInternal {
		t.Fatalf("expected %s, got %s", CodeInternal, err.Code)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeDimensionFailed, cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to be reachable via errors.Is")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected cause in error string, got %q", err.Error())
	}
}

func TestFrom(t *testing.T) {
	original := New(CodeEmptyContent)
	if got := From(original); got != original {
		t.Fatalf("From should pass through taxonomy errors unchanged")
	}
	wrapped := From(errors.New("raw failure"))
	if wrapped.Code != CodeInternal {
		t.Fatalf("expected raw error to become %s, got %s", CodeInternal, wrapped.Code)
	}
	if From(nil) != nil {
		t.Fatalf("From(nil) must be nil")
	}
}

func TestPhaseGrouping(t *testing.T) {
	cases := map[Code]Phase{
		CodeEmptyContent:     PhaseInput,
		CodeMissingResume:    PhaseValidation,
		CodeDimensionFailed:  PhaseScoring,
		CodeJobParsingFailed: PhaseScoring,
		CodeInternal:         PhaseSystem,
	}
	for code, want := range cases {
		if got := New(code).Phase(); got != want {
			t.Errorf("code %s: phase %s, want %s", code, got, want)
		}
	}
}
