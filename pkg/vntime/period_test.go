package vntime_test

import (
	"errors"
	"testing"

	"task-reminder-bot/pkg/vntime"
)

func TestPeriodTime(t *testing.T) {
	tests := []struct {
		period   string
		wantHour int
		wantMin  int
	}{
		{"sáng", 7, 0},
		{"trưa", 12, 0},
		{"chiều", 15, 0},
		{"tối", 19, 0},
		{"Sáng", 7, 0},     // case-insensitive
		{"  tối  ", 19, 0}, // trimmed
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			h, m, err := vntime.PeriodTime(tt.period)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if h != tt.wantHour || m != tt.wantMin {
				t.Errorf("PeriodTime(%q) = %02d:%02d, want %02d:%02d", tt.period, h, m, tt.wantHour, tt.wantMin)
			}
		})
	}

	if _, _, err := vntime.PeriodTime("đêm"); !errors.Is(err, vntime.ErrUnknownPeriod) {
		t.Errorf("PeriodTime(\"đêm\") err = %v, want ErrUnknownPeriod", err)
	}
}
