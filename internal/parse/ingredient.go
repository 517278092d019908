package parse

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hammamikhairi/stovetop/internal/catalog"
	"github.com/hammamikhairi/stovetop/internal/domain"
)

var (
	quantityLineRe = regexp.MustCompile(`(?i)^` + catalog.QuantityPattern + `\s+(.+)`)
	fractionLineRe = regexp.MustCompile(`(?i)^([½¼¾⅓⅔]\s*(?:cups?|tbsp|tsp)?)\s+(.+)`)
	bareCountRe    = regexp.MustCompile(`^\d+(?:[./]\d+)?$`)
)

// ParseIngredientLine splits "2 cups rice" into name and quantity. Lines
// without a leading quantity take the catalog default. A bare count such
// as "1 onion" borrows the unit of the catalog default ("1 medium").
func ParseIngredientLine(line string) (domain.Ingredient, bool) {
	text := strings.TrimSpace(StripEmoji(normalize(line)))
	if utf8.RuneCountInString(text) <= 1 {
		return domain.Ingredient{}, false
	}
	text = strings.TrimSpace(bulletRe.ReplaceAllString(text, ""))
	if text == "" {
		return domain.Ingredient{}, false
	}

	for _, re := range []*regexp.Regexp{quantityLineRe, fractionLineRe} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		qty := strings.TrimSpace(m[1])
		name := strings.TrimSpace(m[2])
		if bareCountRe.MatchString(qty) {
			if unit := catalog.DefaultUnit(name); unit != "" {
				qty += " " + unit
			}
		}
		return domain.Ingredient{Name: name, Quantity: qty}, true
	}

	return domain.Ingredient{Name: text, Quantity: catalog.DefaultQuantity(text)}, true
}
