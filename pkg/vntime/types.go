package vntime

import "time"

// Rule identifies which pattern or parser produced a match.
type Rule string

const (
	RuleClockDate      Rule = "clock_date"       // HH:MM + DD/MM/YYYY
	RuleHourDate       Rule = "hour_date"        // HH giờ + DD/MM/YYYY
	RuleClockOnly      Rule = "clock_only"       // HH:MM, roll forward if passed
	RuleHourOnly       Rule = "hour_only"        // HH giờ, roll forward if passed
	RuleDayClock       Rule = "day_clock"        // hôm nay/ngày mai + HH[:MM]
	RulePeriodToday    Rule = "period_today"     // sáng/trưa/chiều/tối + hôm nay
	RulePeriodTomorrow Rule = "period_tomorrow"  // sáng/trưa/chiều/tối + ngày mai
	RuleAfterOffset    Rule = "after_offset"     // sau N phút/giờ
	RuleOffsetLater    Rule = "offset_later"     // N phút/giờ nữa
	RuleFallback       Rule = "fallback_parser"  // general free-text parser
	RuleDefault        Rule = "default_one_hour" // nothing matched: ref + 1h
)

// Match is the outcome of a successful pattern match: the resolved wall-clock
// time, the exact substring that matched, and the rule that fired.
type Match struct {
	Time time.Time
	Span string
	Rule Rule
}

// Resolution is the full result of resolving a task sentence: cleaned task
// content plus the due time. Produced by Parser.ResolveTask, which never
// fails on non-empty input.
type Resolution struct {
	Content string
	DueAt   time.Time
	Span    string
	Rule    Rule
}
