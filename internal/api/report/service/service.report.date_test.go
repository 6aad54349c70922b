package reportsvc

import (
	"errors"
	"testing"
	"time"

	"gotask_backend/internal/common"
)

func TestResolveDateRangeExplicitBounds(t *testing.T) {
	got, err := ResolveDateRange("2025-01-01", "2025-01-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Start != time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("Start = %v", got.Start)
	}
	if got.End != time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC) {
		t.Errorf("End = %v", got.End)
	}
}

func TestResolveDateRangeInvalidInput(t *testing.T) {
	_, err := ResolveDateRange("yesterday", "2025-01-31")
	if !errors.Is(err, common.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestResolveDateRangeDefaultsToToday(t *testing.T) {
	restore := timeNow
	defer func() { timeNow = restore }()
	timeNow = func() time.Time {
		return time.Date(2025, 6, 15, 13, 45, 12, 0, time.FixedZone("IST", 5*3600+1800))
	}

	got, err := ResolveDateRange("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantStart := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", got.Start, wantStart)
	}
	if !got.End.Equal(wantStart.AddDate(0, 0, 1)) {
		t.Errorf("End = %v, want next midnight", got.End)
	}
}

func TestResolveDateRangeSingleBoundFallsBack(t *testing.T) {
	restore := timeNow
	defer func() { timeNow = restore }()
	timeNow = func() time.Time {
		return time.Date(2025, 6, 15, 3, 0, 0, 0, time.UTC)
	}

	got, err := ResolveDateRange("2025-01-01", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Start.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("missing toDate should fall back to today, got %v", got.Start)
	}
}
