package usecase

import (
	"errors"
	"testing"
	"time"
)

func TestNewWindow(t *testing.T) {
	tests := []struct {
		start, end string
		ok         bool
	}{
		{"2024-01-01", "2024-01-31", true},
		{"2024-01-01", "2024-01-01", true},
		{"2024-02-01", "2024-01-31", false},
		{"2024-1-1", "2024-01-31", false},
		{"", "2024-01-31", false},
		{"2024-01-01", "2024-02-30", false},
	}
	for _, tt := range tests {
		_, err := NewWindow(tt.start, tt.end)
		if tt.ok && err != nil {
			t.Errorf("NewWindow(%q, %q) = %v", tt.start, tt.end, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("NewWindow(%q, %q) err = %v, want InvalidWindow", tt.start, tt.end, err)
		}
	}
}

func TestWindowContainsIsInclusive(t *testing.T) {
	w, _ := NewWindow("2024-01-01", "2024-01-31")
	for date, want := range map[string]bool{
		"2023-12-31": false,
		"2024-01-01": true,
		"2024-01-15": true,
		"2024-01-31": true,
		"2024-02-01": false,
	} {
		if got := w.Contains(date); got != want {
			t.Errorf("Contains(%s) = %v", date, got)
		}
	}
}

func TestLastDays(t *testing.T) {
	now := time.Date(2024, 3, 2, 15, 0, 0, 0, time.UTC)
	w := LastDays(now, 7)
	if w.Start != "2024-02-25" || w.End != "2024-03-02" {
		t.Errorf("LastDays = %+v", w)
	}
	if one := LastDays(now, 0); one.Start != one.End {
		t.Errorf("LastDays(0) = %+v", one)
	}
}
