package vntime

import "errors"

var (
	// ErrEmptyText is returned when resolution is asked for blank input.
	ErrEmptyText = errors.New("input text is empty")

	// ErrUnknownPeriod is returned for a day-period word outside the fixed
	// vocabulary. The rule patterns only capture known words, so this should
	// not surface through Resolve.
	ErrUnknownPeriod = errors.New("unknown day period")
)
