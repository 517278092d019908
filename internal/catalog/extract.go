package catalog

import (
	"regexp"
	"sort"
	"strings"

	"github.com/hammamikhairi/stovetop/internal/domain"
)

// QuantityPattern matches a leading amount with an optional unit, e.g.
// "200g", "2 cups", "1.5 tbsp", "3 large". It has one capture group.
const QuantityPattern = `(\d+[./]?\d*\s*(?:cups?|tbsp|tsp|tablespoons?|teaspoons?|oz|ounces?|lbs?|pounds?|kg|g|grams?|ml|liters?|litres?|pieces?|cloves?|slices?|bunch|pinch|dash|large|medium|small|whole)?)`

// quantityCache avoids recompiling the per-keyword pattern on every call.
var quantityCache = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(known))
	for k := range known {
		m[k] = regexp.MustCompile(QuantityPattern + `\s*(?:of\s+)?` + regexp.QuoteMeta(k))
	}
	return m
}()

// ExtractIngredients scans step instructions for known ingredients.
// Longer keywords win ("olive oil" before "oil"); a display name is only
// reported once. Each hit takes the quantity written right before it, else
// the catalog default, else "As needed". Output is sorted by name.
func ExtractIngredients(instructions []string) []domain.Ingredient {
	text := strings.ToLower(strings.Join(instructions, " "))
	found := make(map[string]string)

	for _, key := range keywordsByLength {
		name := known[key]
		if _, seen := found[name]; seen {
			continue
		}
		if !strings.Contains(text, key) {
			continue
		}
		if qty := quantityBefore(key, text); qty != "" {
			found[name] = qty
			continue
		}
		found[name] = defaultFor(name)
	}

	out := make([]domain.Ingredient, 0, len(found))
	for name, qty := range found {
		out = append(out, domain.Ingredient{Name: name, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func quantityBefore(key, text string) string {
	re, ok := quantityCache[key]
	if !ok {
		return ""
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func defaultFor(name string) string {
	if q, ok := defaults[name]; ok {
		return q
	}
	return domain.AsNeeded
}

// Lookup finds the longest catalog keyword contained in text and returns
// its display name.
func Lookup(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, key := range keywordsByLength {
		if strings.Contains(lower, key) {
			return known[key], true
		}
	}
	return "", false
}

// DefaultQuantity returns the standard quantity for a free-text ingredient
// name, or "As needed" when the catalog has nothing.
func DefaultQuantity(text string) string {
	name, ok := Lookup(text)
	if !ok {
		return domain.AsNeeded
	}
	return defaultFor(name)
}

// DefaultUnit returns the unit part of the catalog default for text
// ("medium" for onions, "cloves" for garlic), or "".
func DefaultUnit(text string) string {
	q := DefaultQuantity(text)
	if q == domain.AsNeeded {
		return ""
	}
	if i := strings.IndexByte(q, ' '); i >= 0 {
		return q[i+1:]
	}
	return ""
}
