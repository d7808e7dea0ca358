package errors

import (
	"errors"
	"testing"
)

func TestReadError_Error(t *testing.T) {
	err := New(NotFound, "method 'run' not found", nil)
	want := "[NOT_FOUND] method 'run' not found"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestReadError_ErrorWithCause(t *testing.T) {
	cause := errors.New("exit status 128")
	err := New(DiffUnavailable, "git diff failed", cause)
	got := err.Error()
	want := "[DIFF_UNAVAILABLE] git diff failed: exit status 128"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to match the cause")
	}
}

func TestReadError_SummaryHidesCause(t *testing.T) {
	cause := errors.New("open /etc/shadow: permission denied")
	err := New(InternalError, "cannot read file", cause)
	want := "[INTERNAL_ERROR] cannot read file"
	if got := err.Summary(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(RangeInvalid, "start line %d exceeds total lines (%d)", 50, 10)
	want := "[RANGE_INVALID] start line 50 exceeds total lines (10)"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestIsCode(t *testing.T) {
	err := New(ParseFailed, "syntax error", nil)
	if !IsCode(err, ParseFailed) {
		t.Error("expected IsCode to match PARSE_ERROR")
	}
	if IsCode(err, NotFound) {
		t.Error("expected IsCode not to match NOT_FOUND")
	}
	if IsCode(errors.New("plain"), ParseFailed) {
		t.Error("expected IsCode to reject non-ReadError values")
	}
}

func TestSuggestedFixes(t *testing.T) {
	err := New(NotFound, "missing", nil)
	if len(err.SuggestedFixes) == 0 {
		t.Fatal("expected suggested fixes for NOT_FOUND")
	}
	if err.SuggestedFixes[0].Type != RunCommand {
		t.Errorf("expected run-command fix, got %s", err.SuggestedFixes[0].Type)
	}

	err = New(InternalError, "boom", nil)
	if len(err.SuggestedFixes) != 0 {
		t.Errorf("expected no fixes for INTERNAL_ERROR, got %d", len(err.SuggestedFixes))
	}
}

func TestWithDetails(t *testing.T) {
	err := New(RangeInvalid, "inverted range", nil).WithDetails(map[string]int{"start": 5, "end": 3})
	if err.Details == nil {
		t.Error("expected details to be set")
	}
}
