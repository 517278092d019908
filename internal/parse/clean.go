package parse

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	numberPrefixRe = regexp.MustCompile(`(?i)^(step\s*)?\d+[.:)]\s*`)
	bulletRe       = regexp.MustCompile(`^[•\-*]\s*`)
	digitsOnlyRe   = regexp.MustCompile(`^\d+$`)
)

// noiseKeywords mark promotional lines pasted along with a recipe.
var noiseKeywords = []string{"visit", "website", "follow me", "subscribe", "page", "recipe from"}

// normalize folds text to NFC so decomposed accents match the tables.
func normalize(s string) string {
	return norm.NFC.String(s)
}

func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // pictographs, emoticons, food
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return true
	case r == 0x200D, r == 0x20E3: // ZWJ, keycap
		return true
	case r >= 0xE0020 && r <= 0xE007F: // tags
		return true
	}
	return false
}

// StripEmoji removes emoji and their joiners from s.
func StripEmoji(s string) string {
	return strings.Map(func(r rune) rune {
		if isEmoji(r) {
			return -1
		}
		return r
	}, s)
}

// stripPrefixes drops "Step 3:", "2)" style numbering and bullets. Bare
// quantities like "200g" are left alone.
func stripPrefixes(s string) string {
	s = numberPrefixRe.ReplaceAllString(s, "")
	s = bulletRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// CleanStepText strips emoji and numbering and capitalizes the first letter.
func CleanStepText(s string) string {
	s = stripPrefixes(strings.TrimSpace(StripEmoji(s)))
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// headerKey reduces a line to the form compared against header tables.
func headerKey(s string) string {
	s = strings.ToLower(stripPrefixes(strings.TrimSpace(StripEmoji(s))))
	s = strings.TrimFunc(s, unicode.IsPunct)
	return strings.TrimSpace(s)
}

// shouldInclude rejects bare numbers, promotional noise and fragments.
func shouldInclude(line string) bool {
	s := strings.TrimSpace(StripEmoji(line))
	if s == "" || digitsOnlyRe.MatchString(s) {
		return false
	}
	lower := strings.ToLower(s)
	for _, kw := range noiseKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return utf8.RuneCountInString(s) > 3
}

func words(s string) []string {
	return strings.Fields(s)
}

func firstWord(ws []string) string {
	if len(ws) == 0 {
		return ""
	}
	return ws[0]
}
