package usecase

import (
	"math/rand"
	"testing"

	"punchclock-backend/internal/model"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAggregate(t *testing.T) {
	week, _ := NewWindow("2024-01-01", "2024-01-07")

	open := closed("EMP001", "2024-01-04", "3", "30")
	open.PunchOut = nil
	open.TotalHours = decimal.NullDecimal{}
	open.DailySalary = decimal.NullDecimal{}

	tests := []struct {
		name    string
		records []model.PunchRecord
		days    int
		hours   string
		avg     string
		salary  string
	}{
		{
			name: "two days",
			records: []model.PunchRecord{
				closed("EMP001", "2024-01-01", "8", "80"),
				closed("EMP001", "2024-01-02", "6.5", "65"),
			},
			days: 2, hours: "14.5", avg: "7.25", salary: "145",
		},
		{
			name:    "no records",
			records: nil,
			days:    0, hours: "0", avg: "0", salary: "0",
		},
		{
			name: "open and out of window records ignored",
			records: []model.PunchRecord{
				closed("EMP001", "2024-01-02", "8", "80"),
				open,
				closed("EMP001", "2023-12-31", "8", "80"),
				closed("EMP001", "2024-01-08", "8", "80"),
			},
			days: 1, hours: "8", avg: "8", salary: "80",
		},
		{
			name: "split shift counts one day",
			records: []model.PunchRecord{
				closed("EMP001", "2024-01-03", "4", "40"),
				closed("EMP001", "2024-01-03", "3", "30"),
			},
			days: 1, hours: "7", avg: "7", salary: "70",
		},
		{
			name: "salary uses stamped values across rate changes",
			records: []model.PunchRecord{
				closed("EMP001", "2024-01-01", "2", "20"),
				closed("EMP001", "2024-01-02", "2", "24"),
			},
			days: 2, hours: "4", avg: "2", salary: "44",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.records, week)
			if got.DaysWorked != tt.days {
				t.Errorf("days_worked = %d, want %d", got.DaysWorked, tt.days)
			}
			if !got.TotalHours.Equal(dec(tt.hours)) {
				t.Errorf("total_hours = %s, want %s", got.TotalHours, tt.hours)
			}
			if !got.AvgHoursPerDay.Equal(dec(tt.avg)) {
				t.Errorf("avg_hours_per_day = %s, want %s", got.AvgHoursPerDay, tt.avg)
			}
			if !got.TotalSalary.Equal(dec(tt.salary)) {
				t.Errorf("total_salary = %s, want %s", got.TotalSalary, tt.salary)
			}
		})
	}
}

func TestAggregateIgnoresOrder(t *testing.T) {
	w, _ := NewWindow("2024-01-01", "2024-01-31")
	records := []model.PunchRecord{
		closed("EMP001", "2024-01-01", "8", "80"),
		closed("EMP001", "2024-01-02", "7.333333", "73.3333"),
		closed("EMP001", "2024-01-02", "1.25", "12.5"),
		closed("EMP001", "2024-01-09", "5.5", "55"),
		closed("EMP001", "2024-01-15", "9.1", "91"),
	}
	want := Aggregate(records, w)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]model.PunchRecord(nil), records...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Aggregate(shuffled, w)
		if got.DaysWorked != want.DaysWorked ||
			!got.TotalHours.Equal(want.TotalHours) ||
			!got.AvgHoursPerDay.Equal(want.AvgHoursPerDay) ||
			!got.TotalSalary.Equal(want.TotalSalary) {
			t.Fatalf("shuffle %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestStatsRounded(t *testing.T) {
	s := Stats{
		DaysWorked:     3,
		TotalHours:     dec("10.005"),
		AvgHoursPerDay: dec("3.335"),
		TotalSalary:    dec("100.0049"),
	}.Rounded()

	if s.TotalHours.String() != "10.01" {
		t.Errorf("total_hours = %s", s.TotalHours)
	}
	if s.AvgHoursPerDay.String() != "3.34" {
		t.Errorf("avg_hours_per_day = %s", s.AvgHoursPerDay)
	}
	if s.TotalSalary.String() != "100" {
		t.Errorf("total_salary = %s", s.TotalSalary)
	}
}

func TestCheckRecord(t *testing.T) {
	good := closed("EMP001", "2024-01-01", "8", "80")
	if err := checkRecord(good); err != nil {
		t.Fatalf("good record rejected: %v", err)
	}

	backwards := good
	in := *good.PunchOut
	backwards.PunchIn = in
	if err := checkRecord(backwards); err == nil {
		t.Error("record with punch_out == punch_in accepted")
	}

	noHours := good
	noHours.TotalHours = decimal.NullDecimal{}
	if err := checkRecord(noHours); err == nil {
		t.Error("record without total_hours accepted")
	}

	negativePay := good
	negativePay.DailySalary = decimal.NewNullDecimal(dec("-1"))
	if err := checkRecord(negativePay); err == nil {
		t.Error("record with negative daily_salary accepted")
	}
}
