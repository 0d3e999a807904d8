package usecase

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMatchesByKind(t *testing.T) {
	err := fmt.Errorf("handler: %w", &Error{Kind: KindAlreadyOpen, EmployeeID: "EMP001", RecordID: 7})

	if !errors.Is(err, ErrAlreadyOpen) {
		t.Error("wrapped error does not match its kind")
	}
	if errors.Is(err, ErrNoOpenPunch) {
		t.Error("error matched a different kind")
	}

	var e *Error
	if !errors.As(err, &e) || e.RecordID != 7 {
		t.Fatalf("errors.As = %#v", e)
	}
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Kind: KindNonMonotonicTime, EmployeeID: "EMP001", RecordID: 3, Detail: "punch_out must be after punch_in", Err: cause}

	want := "non_monotonic_time employee=EMP001 record=3: punch_out must be after punch_in: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable through Unwrap")
	}
}
