package reportsvc

import (
	"time"

	"gotask_backend/internal/common"
	"gotask_backend/internal/utility"
)

// timeNow is replaced in tests to pin the dashboard date window.
var timeNow = time.Now

// DateRange bounds a dashboard query window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ResolveDateRange returns the window for the supplied bounds, or the
// current UTC day [00:00 today, 00:00 tomorrow) when either is missing.
func ResolveDateRange(fromDate, toDate string) (DateRange, error) {
	if fromDate != "" && toDate != "" {
		start, okFrom := utility.ParseDate(fromDate)
		end, okTo := utility.ParseDate(toDate)
		if !okFrom || !okTo {
			return DateRange{}, common.ErrInvalidDate
		}
		return DateRange{Start: start, End: end}, nil
	}
	return todayRange(timeNow()), nil
}

func todayRange(now time.Time) DateRange {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(0, 0, 1)}
}
