package matching

import (
	"math"
	"testing"
	"time"

	"worklink/internal/domain/profile"
)

func date(y int, m time.Month) time.Time {
	return time.Date(y, m, 15, 0, 0, 0, 0, time.UTC)
}

func TestTotalExperienceYearsEmptyHistory(t *testing.T) {
	if got := TotalExperienceYears(nil); got != 0 {
		t.Fatalf("TotalExperienceYears(nil) = %v, want 0", got)
	}
}

func TestTotalExperienceYearsSumsEntries(t *testing.T) {
	end1 := date(2022, time.January)
	end2 := date(2024, time.July)
	history := []profile.Experience{
		{Start: date(2020, time.January), End: &end1}, // 24 months
		{Start: date(2023, time.January), End: &end2}, // 18 months
	}
	got := TotalExperienceYears(history)
	want := 42.0 / 12.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("TotalExperienceYears = %v, want %v", got, want)
	}
}

func TestTotalExperienceYearsMonthGranularity(t *testing.T) {
	// Day-of-month is ignored: Jan 15 to Mar 15 is exactly 2 months.
	end := date(2024, time.March)
	history := []profile.Experience{{Start: date(2024, time.January), End: &end}}
	got := TotalExperienceYears(history)
	want := 2.0 / 12.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("TotalExperienceYears = %v, want %v", got, want)
	}
}

func TestTotalExperienceYearsClampsInvertedRange(t *testing.T) {
	end := date(2020, time.January)
	history := []profile.Experience{
		{Start: date(2022, time.January), End: &end},
	}
	if got := TotalExperienceYears(history); got != 0 {
		t.Fatalf("TotalExperienceYears = %v, want 0 for an inverted range", got)
	}
}

func TestTotalExperienceYearsCurrentEntryRunsToNow(t *testing.T) {
	orig := nowFunc
	nowFunc = func() time.Time { return date(2025, time.June) }
	defer func() { nowFunc = orig }()

	history := []profile.Experience{
		{Start: date(2024, time.June), Current: true},
	}
	got := TotalExperienceYears(history)
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("TotalExperienceYears = %v, want 1.0", got)
	}
}

func TestTotalExperienceYearsNilEndRunsToNow(t *testing.T) {
	orig := nowFunc
	nowFunc = func() time.Time { return date(2025, time.June) }
	defer func() { nowFunc = orig }()

	history := []profile.Experience{
		{Start: date(2025, time.January)},
	}
	got := TotalExperienceYears(history)
	want := 5.0 / 12.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("TotalExperienceYears = %v, want %v", got, want)
	}
}

func TestTotalExperienceYearsIgnoresEndWhenCurrent(t *testing.T) {
	orig := nowFunc
	nowFunc = func() time.Time { return date(2026, time.January) }
	defer func() { nowFunc = orig }()

	staleEnd := date(2024, time.January)
	history := []profile.Experience{
		{Start: date(2023, time.January), End: &staleEnd, Current: true},
	}
	got := TotalExperienceYears(history)
	if math.Abs(got-3.0) > 1e-9 {
		t.Fatalf("TotalExperienceYears = %v, want 3.0: current entries run to now", got)
	}
}
