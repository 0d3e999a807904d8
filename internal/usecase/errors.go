package usecase

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindAlreadyOpen       Kind = "already_open"
	KindNoOpenPunch       Kind = "no_open_punch"
	KindNonMonotonicTime  Kind = "non_monotonic_time"
	KindUnknownEmployee   Kind = "unknown_employee"
	KindRateUnknown       Kind = "rate_unknown"
	KindInvalidWindow     Kind = "invalid_window"
	KindInvalidTitle      Kind = "invalid_title"
	KindInvalidReportType Kind = "invalid_report_type"
	KindForbidden         Kind = "forbidden"
	KindNotFound          Kind = "not_found"
	KindInvalidInput      Kind = "invalid_input"
	KindAggregationDefect Kind = "partial_aggregation_defect"
)

// Error is the structured error every engine operation returns. Compare with
// errors.Is against the Err* sentinels; only the Kind takes part.
type Error struct {
	Kind       Kind
	EmployeeID string
	RecordID   uint
	Detail     string
	Err        error
}

var (
	ErrAlreadyOpen       = &Error{Kind: KindAlreadyOpen}
	ErrNoOpenPunch       = &Error{Kind: KindNoOpenPunch}
	ErrNonMonotonicTime  = &Error{Kind: KindNonMonotonicTime}
	ErrUnknownEmployee   = &Error{Kind: KindUnknownEmployee}
	ErrRateUnknown       = &Error{Kind: KindRateUnknown}
	ErrInvalidWindow     = &Error{Kind: KindInvalidWindow}
	ErrInvalidTitle      = &Error{Kind: KindInvalidTitle}
	ErrInvalidReportType = &Error{Kind: KindInvalidReportType}
	ErrForbidden         = &Error{Kind: KindForbidden}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrInvalidInput      = &Error{Kind: KindInvalidInput}
	ErrAggregationDefect = &Error{Kind: KindAggregationDefect}
)

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.EmployeeID != "" {
		fmt.Fprintf(&b, " employee=%s", e.EmployeeID)
	}
	if e.RecordID != 0 {
		fmt.Fprintf(&b, " record=%d", e.RecordID)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, employeeID string, detail string) *Error {
	return &Error{Kind: kind, EmployeeID: employeeID, Detail: detail}
}
