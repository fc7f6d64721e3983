package vntime

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

type fallbackParser interface {
	Parse(text string, base time.Time) (*when.Result, error)
}

// newFallback builds the general free-text date parser used when no
// Vietnamese rule matches (English phrases, ISO-like dates, etc).
func newFallback() fallbackParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// resolveFallback runs the general parser and adapts its result into a Match.
func (p *Parser) resolveFallback(text string, ref time.Time) (Match, bool) {
	res, err := p.fallback.Parse(text, ref)
	if err != nil || res == nil {
		return Match{}, false
	}
	return Match{
		Time: res.Time.In(p.loc),
		Span: res.Text,
		Rule: RuleFallback,
	}, true
}
