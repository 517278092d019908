package parse

import (
	"regexp"
	"strconv"
	"strings"
)

const timeUnits = `(min|minute|mins|minutes|sec|second|secs|seconds|hr|hrs|hour|hours)\b`

var (
	rangeDurationRe  = regexp.MustCompile(`(?i)(\d+)\s*(?:[–\-]|to)\s*(\d+)\s*` + timeUnits)
	singleDurationRe = regexp.MustCompile(`(?i)(\d+)\s*` + timeUnits)
)

// ExtractDuration reads the first time phrase in text and returns it in
// seconds. Ranges such as "10–12 mins" are averaged. Returns 0 when the
// text has no time phrase.
func ExtractDuration(text string) int {
	if m := rangeDurationRe.FindStringSubmatch(text); m != nil {
		low, _ := strconv.Atoi(m[1])
		high, _ := strconv.Atoi(m[2])
		return (low + high) / 2 * unitSeconds(m[3])
	}
	if m := singleDurationRe.FindStringSubmatch(text); m != nil {
		v, _ := strconv.Atoi(m[1])
		return v * unitSeconds(m[2])
	}
	return 0
}

func unitSeconds(unit string) int {
	u := strings.ToLower(unit)
	switch {
	case strings.HasPrefix(u, "h"):
		return 3600
	case strings.HasPrefix(u, "min"):
		return 60
	default:
		return 1
	}
}
