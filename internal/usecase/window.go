package usecase

import (
	"time"

	"punchclock-backend/internal/model"
)

// Window is an inclusive range of calendar dates in YYYY-MM-DD form.
type Window struct {
	Start string
	End   string
}

func NewWindow(start, end string) (Window, error) {
	s, err := time.Parse(model.DateLayout, start)
	if err != nil {
		return Window{}, &Error{Kind: KindInvalidWindow, Detail: "start_date must be YYYY-MM-DD", Err: err}
	}
	e, err := time.Parse(model.DateLayout, end)
	if err != nil {
		return Window{}, &Error{Kind: KindInvalidWindow, Detail: "end_date must be YYYY-MM-DD", Err: err}
	}
	if e.Before(s) {
		return Window{}, newError(KindInvalidWindow, "", "start_date is after end_date")
	}
	return Window{Start: start, End: end}, nil
}

// LastDays returns the window of n calendar days ending on the date of now.
func LastDays(now time.Time, n int) Window {
	if n < 1 {
		n = 1
	}
	return Window{
		Start: now.AddDate(0, 0, -(n - 1)).Format(model.DateLayout),
		End:   now.Format(model.DateLayout),
	}
}

// Contains relies on the fixed-width layout ordering lexically like dates.
func (w Window) Contains(date string) bool {
	return date >= w.Start && date <= w.End
}
