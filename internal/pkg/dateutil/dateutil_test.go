package dateutil

import (
	"testing"
	"time"
)

func TestDay(t *testing.T) {
	in := time.Date(2025, 1, 6, 23, 45, 12, 999, time.UTC)
	got := Day(in)
	want := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Day(%v) = %v, want %v", in, got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"2025-01-01", "2025-01-01", 1},
		{"2025-01-01", "2025-01-28", 28},
		{"2025-01-06", "2025-01-12", 7},
		{"2025-01-12", "2025-01-06", 0},
	}
	for _, tt := range tests {
		start, err := ParseISO(tt.start)
		if err != nil {
			t.Fatal(err)
		}
		end, err := ParseISO(tt.end)
		if err != nil {
			t.Fatal(err)
		}
		if got := DaysBetween(start, end); got != tt.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestISORoundTrip(t *testing.T) {
	d, err := ParseISO("2025-01-06")
	if err != nil {
		t.Fatal(err)
	}
	if got := ISO(d); got != "2025-01-06" {
		t.Errorf("ISO = %q, want 2025-01-06", got)
	}
}

func TestISOList(t *testing.T) {
	a, _ := ParseISO("2025-01-06")
	b, _ := ParseISO("2025-01-07")
	got := ISOList([]time.Time{a, b})
	if len(got) != 2 || got[0] != "2025-01-06" || got[1] != "2025-01-07" {
		t.Errorf("ISOList = %v", got)
	}
}
