package vntime

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Placeholder is returned when cleaning leaves no usable task content.
const Placeholder = "Công việc không có tiêu đề"

// cleanupPatterns are applied in order, each replacing matches with a single
// space. Order matters: the matched time span is removed before these run so
// the date-literal patterns cannot eat task content.
var cleanupPatterns = []*regexp.Regexp{
	// Leading filler phrases.
	regexp.MustCompile(`(?i)^(nhắc tôi|nhắc|reminder|remind me|hãy nhắc tôi|nhắcc tôi)\s*`),
	regexp.MustCompile(`(?i)^(task|việc|công việc)\s*`),

	// "lúc" and friends.
	regexp.MustCompile(`(?i)\s*lúc\s*`),
	regexp.MustCompile(`(?i)\s*vào lúc\s*`),
	regexp.MustCompile(`(?i)\s*vào\s*`),

	// Leftover time connector words.
	regexp.MustCompile(`(?i)\s*ngày\s*`),
	regexp.MustCompile(`(?i)\s*giờ\s*`),
	regexp.MustCompile(`(?i)\s*phút\s*`),

	// Residual numeric date/time literals.
	regexp.MustCompile(`\s*\d{1,2}[/\-]\d{1,2}[/\-]\d{4}\s*`),
	regexp.MustCompile(`\s*\d{1,2}:\d{1,2}\s*`),
	regexp.MustCompile(`(?i)\s*\d{1,2}h\d{1,2}\s*`),

	// Day and period words.
	regexp.MustCompile(`(?i)\s*(hôm nay|ngày mai|nay|mai)\s*`),
	regexp.MustCompile(`(?i)\s*(sau|nữa)\s*`),
	regexp.MustCompile(`(?i)\s*(sáng|trưa|chiều|tối)\s*`),
	regexp.MustCompile(`(?i)\s*(hôm sau)\s*`),
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// meaninglessWords are standalone tokens that carry no content on their own.
var meaninglessWords = map[string]struct{}{
	"h": {}, "và": {}, "của": {}, "trong": {}, "trên": {}, "dưới": {}, "với": {},
}

// Clean strips the matched time span and time-related filler from the raw
// sentence, leaving the task description. Lossy by design. Never returns an
// empty string: Placeholder is substituted when nothing survives.
func Clean(text, matchedSpan string) string {
	cleaned := text

	if matchedSpan != "" {
		cleaned = strings.TrimSpace(strings.Replace(cleaned, matchedSpan, "", 1))
	}

	for _, re := range cleanupPatterns {
		cleaned = strings.TrimSpace(re.ReplaceAllString(cleaned, " "))
	}

	cleaned = strings.TrimSpace(whitespaceRe.ReplaceAllString(cleaned, " "))

	words := strings.Split(cleaned, " ")
	kept := words[:0]
	for _, w := range words {
		if utf8.RuneCountInString(w) <= 1 {
			continue
		}
		if _, drop := meaninglessWords[strings.ToLower(w)]; drop {
			continue
		}
		kept = append(kept, w)
	}
	cleaned = strings.Join(kept, " ")

	if utf8.RuneCountInString(cleaned) < 2 {
		return Placeholder
	}
	return capitalize(cleaned)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
