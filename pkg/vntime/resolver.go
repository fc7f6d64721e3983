package vntime

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves Vietnamese temporal expressions against a reference instant.
// It tries an ordered list of rule patterns, first match wins; ordering is
// policy and must not be reordered. A matched-but-rejected rule (a same-day
// period that has already passed) aborts the whole chain so the caller can
// try the general fallback parser.
type Parser struct {
	loc      *time.Location
	fallback fallbackParser
}

// NewParser creates a resolver whose wall-clock arithmetic happens in loc.
func NewParser(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{loc: loc, fallback: newFallback()}
}

type rulePattern struct {
	name  Rule
	re    *regexp.Regexp
	apply func(p *Parser, m []string, ref time.Time) (time.Time, bool)
}

// The rule chain, in firing order. Patterns are ported from the production
// regex list; submatch indexes below depend on them.
var rules = []rulePattern{
	{
		name: RuleClockDate,
		re:   regexp.MustCompile(`(?i)(\d{1,2})\s*[:h]\s*(\d{1,2})\s*(?:phút)?\s*(?:ngày|vào ngày)?\s*(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})`),
		apply: func(p *Parser, m []string, ref time.Time) (time.Time, bool) {
			hh, mm := atoi(m[1]), atoi(m[2])
			day, month, year := atoi(m[3]), atoi(m[4]), atoi(m[5])
			return time.Date(year, time.Month(month), day, hh, mm, 0, 0, p.loc), true
		},
	},
	{
		name: RuleHourDate,
		re:   regexp.MustCompile(`(?i)(\d{1,2})\s*(?:giờ|h)\s*(?:ngày|vào ngày)?\s*(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})`),
		apply: func(p *Parser, m []string, ref time.Time) (time.Time, bool) {
			hh := atoi(m[1])
			day, month, year := atoi(m[2]), atoi(m[3]), atoi(m[4])
			return time.Date(year, time.Month(month), day, hh, 0, 0, 0, p.loc), true
		},
	},
	{
		name: RuleClockOnly,
		re:   regexp.MustCompile(`(?i)(\d{1,2})\s*[:h]\s*(\d{1,2})\s*(?:phút)?`),
		apply: func(p *Parser, m []string, ref time.Time) (time.Time, bool) {
			return rollForward(p.atClock(ref, atoi(m[1]), atoi(m[2])), ref), true
		},
	},
	{
		name: RuleHourOnly,
		re:   regexp.MustCompile(`(?i)(\d{1,2})\s*(?:giờ|h)`),
		apply: func(p *Parser, m []string, ref time.Time) (time.Time, bool) {
			return rollForward(p.atClock(ref, atoi(m[1]), 0), ref), true
		},
	},
	{
		name: RuleDayClock,
		re:   regexp.MustCompile(`(?i)(hôm nay|ngày mai)\s*(?:lúc)?\s*(\d{1,2})\s*[:h]?\s*(\d{1,2})?\s*(?:phút|giờ)?`),
		apply: func(p *Parser, m []string, ref time.Time) (time.Time, bool) {
			day := ref
			if strings.EqualFold(m[1], "ngày mai") {
				day = day.AddDate(0, 0, 1)
			}
			minute := 0
			if m[3] != "" {
				minute = atoi(m[3])
			}
			// Explicit day word wins even if the instant is already past.
			return p.atClock(day, atoi(m[2]), minute), true
		},
	},
	{
		name: RulePeriodToday,
		re:   regexp.MustCompile(`(?i)(sáng|trưa|chiều|tối)\s*(hôm nay|nay)`),
		apply: func(p *Parser, m []string, ref time.Time) (time.Time, bool) {
			hh, mm, err := PeriodTime(m[1])
			if err != nil {
				return time.Time{}, false
			}
			t := p.atClock(ref, hh, mm)
			if !t.After(ref) {
				// The period already passed today; this rule never rolls
				// forward, so the match is rejected outright.
				return time.Time{}, false
			}
			return t, true
		},
	},
	{
		name: RulePeriodTomorrow,
		re:   regexp.MustCompile(`(?i)(sáng|trưa|chiều|tối)\s*(hôm sau|ngày mai|mai)`),
		apply: func(p *Parser, m []string, ref time.Time) (time.Time, bool) {
			hh, mm, err := PeriodTime(m[1])
			if err != nil {
				return time.Time{}, false
			}
			return p.atClock(ref.AddDate(0, 0, 1), hh, mm), true
		},
	},
	{
		name: RuleAfterOffset,
		re:   regexp.MustCompile(`(?i)sau\s*(\d+)\s*(phút|giờ)`),
		apply: func(p *Parser, m []string, ref time.Time) (time.Time, bool) {
			return ref.Add(offsetDuration(atoi(m[1]), m[2])), true
		},
	},
	{
		name: RuleOffsetLater,
		re:   regexp.MustCompile(`(?i)(\d+)\s*(phút|giờ)\s*nữa`),
		apply: func(p *Parser, m []string, ref time.Time) (time.Time, bool) {
			return ref.Add(offsetDuration(atoi(m[1]), m[2])), true
		},
	},
}

// Resolve runs the Vietnamese rule chain. The second return is false when no
// rule matched, or when a matched rule rejected the input (rule semantics
// above); either way the caller should fall back to the general parser.
func (p *Parser) Resolve(text string, ref time.Time) (Match, bool) {
	ref = ref.In(p.loc)
	for _, r := range rules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		t, ok := r.apply(p, m, ref)
		if !ok {
			return Match{}, false
		}
		return Match{Time: t, Span: m[0], Rule: r.name}, true
	}
	return Match{}, false
}

// ResolveTask is the full resolution pipeline: Vietnamese rules, then the
// general fallback parser, then the one-hour default. It never fails on
// non-empty input; the only error is ErrEmptyText.
func (p *Parser) ResolveTask(text string, ref time.Time) (Resolution, error) {
	if strings.TrimSpace(text) == "" {
		return Resolution{}, ErrEmptyText
	}
	ref = ref.In(p.loc)

	m, ok := p.Resolve(text, ref)
	if !ok {
		m, ok = p.resolveFallback(text, ref)
	}
	if !ok {
		m = Match{Time: ref.Add(time.Hour), Span: "", Rule: RuleDefault}
	}

	return Resolution{
		Content: Clean(text, m.Span),
		DueAt:   m.Time,
		Span:    m.Span,
		Rule:    m.Rule,
	}, nil
}

// atClock places hh:mm (seconds zeroed) on the calendar day of t.
func (p *Parser) atClock(t time.Time, hh, mm int) time.Time {
	y, m, d := t.In(p.loc).Date()
	return time.Date(y, m, d, hh, mm, 0, 0, p.loc)
}

// rollForward moves a bare clock time to the next day when it is not strictly
// after the reference ("this already happened today, so tomorrow is meant").
func rollForward(t, ref time.Time) time.Time {
	if !t.After(ref) {
		return t.AddDate(0, 0, 1)
	}
	return t
}

func offsetDuration(n int, unit string) time.Duration {
	if strings.EqualFold(unit, "giờ") {
		return time.Duration(n) * time.Hour
	}
	return time.Duration(n) * time.Minute
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
