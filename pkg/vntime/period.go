package vntime

import (
	"fmt"
	"strings"
)

// PeriodTime maps a named Vietnamese day period to its canonical clock time.
// The vocabulary is closed: sáng 07:00, trưa 12:00, chiều 15:00, tối 19:00.
func PeriodTime(period string) (hour, minute int, err error) {
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "sáng":
		return 7, 0, nil
	case "trưa":
		return 12, 0, nil
	case "chiều":
		return 15, 0, nil
	case "tối":
		return 19, 0, nil
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
}
