package dates

import (
	"testing"
	"time"
)

func TestDay_UsesLocation(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	instant := time.Date(2026, 10, 14, 23, 30, 0, 0, time.UTC)

	if got := Day(instant); got != "2026-10-14" {
		t.Fatalf("utc day = %q", got)
	}
	if got := Day(instant.In(paris)); got != "2026-10-15" {
		t.Fatalf("paris day = %q", got)
	}
}

func TestStringToDate_RoundTrip(t *testing.T) {
	d, err := StringToDate("2024-04-19", DateFormat)
	if err != nil {
		t.Fatalf("StringToDate: %v", err)
	}
	if got := DateToString(d, DateFormat); got != "2024-04-19" {
		t.Fatalf("DateToString = %q", got)
	}

	if _, err := StringToDate("19/04/2024", DateFormat); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestAddDays(t *testing.T) {
	start := time.Date(2026, 3, 28, 12, 0, 0, 0, time.UTC)
	got := AddDays(start, 30)
	if want := start.Add(720 * time.Hour); !got.Equal(want) {
		t.Fatalf("AddDays = %v, want %v", got, want)
	}
}
