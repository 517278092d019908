package recipe

import "strings"

// Category groups recipes by how they are portioned.
type Category int

const (
	CategoryGeneral Category = iota
	CategoryCake
	CategoryBread
	CategoryRice
	CategoryPasta
	CategoryCurry
	CategorySalad
	CategorySoup
)

// Preset is a one-tap scale choice.
type Preset struct {
	Label      string
	Multiplier float64
}

type categoryInfo struct {
	name    string
	unit    string
	cues    []string
	presets []Preset
}

var servings = []Preset{{"1 serving", 1}, {"2 servings", 2}, {"4 servings", 4}, {"6 servings", 6}}

var categoryTable = [...]categoryInfo{
	CategoryGeneral: {"general", "serving", nil, []Preset{{"1×", 1}, {"2×", 2}, {"3×", 3}, {"4×", 4}}},
	CategoryCake: {"cake", "pound", []string{"cake", "brownie", "muffin", "cupcake"},
		[]Preset{{"½ lb", 0.5}, {"1 lb", 1}, {"2 lb", 2}, {"3 lb", 3}, {"5 lb", 5}}},
	CategoryBread: {"bread", "pound", []string{"bread", "loaf", "bun", "roll"},
		[]Preset{{"1 loaf", 1}, {"2 loaves", 2}, {"3 loaves", 3}}},
	CategoryRice: {"rice", "cup", []string{"rice", "biryani", "pulao"},
		[]Preset{{"1 cup", 1}, {"2 cups", 2}, {"3 cups", 3}, {"5 cups", 5}}},
	CategoryPasta: {"pasta", "serving", []string{"pasta", "spaghetti", "noodle", "macaroni"}, servings},
	CategoryCurry: {"curry", "serving", []string{"curry", "masala", "stew", "dal", "gravy"}, servings},
	CategorySalad: {"salad", "serving", []string{"salad"}, servings[:3]},
	CategorySoup:  {"soup", "serving", []string{"soup", "broth", "chowder"}, servings},
}

// detectOrder is the order categories are tried in; the first hit wins.
var detectOrder = []Category{
	CategoryCake, CategoryBread, CategoryRice, CategoryPasta,
	CategoryCurry, CategorySalad, CategorySoup,
}

func (c Category) info() categoryInfo {
	if c < 0 || int(c) >= len(categoryTable) {
		return categoryTable[CategoryGeneral]
	}
	return categoryTable[c]
}

// String returns the lowercase category name.
func (c Category) String() string { return c.info().name }

// UnitLabel is what one unit of scale means for the category.
func (c Category) UnitLabel() string { return c.info().unit }

// Presets lists the scale choices offered for the category.
func (c Category) Presets() []Preset { return c.info().presets }

// DetectCategory guesses the category from the recipe name and steps.
// Matching is by substring, so "roll" also catches "rolled".
func DetectCategory(name string, steps []string) Category {
	text := strings.ToLower(name + " " + strings.Join(steps, " "))
	for _, c := range detectOrder {
		for _, cue := range c.info().cues {
			if strings.Contains(text, cue) {
				return c
			}
		}
	}
	return CategoryGeneral
}

// ParseCategory maps a stored category name back to a Category.
func ParseCategory(name string) Category {
	for c := range categoryTable {
		if categoryTable[c].name == name {
			return Category(c)
		}
	}
	return CategoryGeneral
}
