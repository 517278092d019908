package recipe

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/stovetop/internal/domain"
)

var quantityRe = regexp.MustCompile(`^(\d+\.?\d*)\s*(.*)`)

// ScaleQuantity multiplies the leading number of a quantity: "2 cups" x3
// is "6 cups", "500g" x2 is "1000 g". Whole results print without a
// decimal, others with one. Text without a leading number is unchanged.
func ScaleQuantity(quantity string, multiplier float64) string {
	if multiplier == 1 || quantity == domain.AsNeeded {
		return quantity
	}
	m := quantityRe.FindStringSubmatch(quantity)
	if m == nil {
		return quantity
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return quantity
	}

	scaled := value * multiplier
	var formatted string
	if scaled == float64(int64(scaled)) {
		formatted = strconv.FormatInt(int64(scaled), 10)
	} else {
		formatted = strconv.FormatFloat(scaled, 'f', 1, 64)
	}

	if unit := strings.TrimSpace(m[2]); unit != "" {
		return formatted + " " + unit
	}
	return formatted
}

// ParseFraction reads "1/2", "0.5" or "3" as a number.
func ParseFraction(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err1 := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, err2 := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err1 == nil && err2 == nil && d != 0 {
			return n / d, true
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Scale returns copies of the ingredients with scaled quantities.
func Scale(ingredients []domain.Ingredient, multiplier float64) []domain.Ingredient {
	out := make([]domain.Ingredient, len(ingredients))
	for i, ing := range ingredients {
		ing.Quantity = ScaleQuantity(ing.Quantity, multiplier)
		out[i] = ing
	}
	return out
}
