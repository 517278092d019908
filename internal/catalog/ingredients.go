// Package catalog holds the static ingredient and cooking-action tables
// and the text heuristics that read them.
package catalog

import "sort"

// known maps a lowercase keyword to its display name.
var known = map[string]string{
	// Proteins
	"chicken": "Chicken", "beef": "Beef", "pork": "Pork", "lamb": "Lamb",
	"fish": "Fish", "shrimp": "Shrimp", "prawns": "Prawns", "salmon": "Salmon",
	"tuna": "Tuna", "turkey": "Turkey", "tofu": "Tofu", "paneer": "Paneer",
	"egg": "Eggs", "eggs": "Eggs", "bacon": "Bacon", "sausage": "Sausage",

	// Vegetables
	"onion": "Onions", "onions": "Onions", "garlic": "Garlic",
	"tomato": "Tomatoes", "tomatoes": "Tomatoes", "potato": "Potatoes", "potatoes": "Potatoes",
	"carrot": "Carrots", "carrots": "Carrots", "pepper": "Bell Pepper", "peppers": "Bell Peppers",
	"broccoli": "Broccoli", "spinach": "Spinach", "mushroom": "Mushrooms", "mushrooms": "Mushrooms",
	"celery": "Celery", "lettuce": "Lettuce", "cabbage": "Cabbage",
	"corn": "Corn", "peas": "Peas", "beans": "Beans", "lentils": "Lentils",
	"ginger": "Ginger", "cucumber": "Cucumber", "zucchini": "Zucchini",
	"eggplant": "Eggplant", "cauliflower": "Cauliflower", "kale": "Kale",
	"avocado": "Avocado", "asparagus": "Asparagus",

	// Fruits
	"lemon": "Lemon", "lime": "Lime", "orange": "Orange", "apple": "Apple",
	"banana": "Banana", "mango": "Mango", "coconut": "Coconut",

	// Dairy
	"butter": "Butter", "cream": "Cream", "cheese": "Cheese", "milk": "Milk",
	"yogurt": "Yogurt", "curd": "Curd", "ghee": "Ghee",

	// Grains and staples
	"rice": "Rice", "pasta": "Pasta", "noodles": "Noodles", "flour": "Flour",
	"bread": "Bread", "dough": "Dough", "tortilla": "Tortillas",
	"oats": "Oats", "quinoa": "Quinoa",

	// Oils and liquids
	"oil": "Oil", "olive oil": "Olive Oil", "vegetable oil": "Vegetable Oil",
	"water": "Water", "broth": "Broth", "stock": "Stock",
	"soy sauce": "Soy Sauce", "vinegar": "Vinegar", "wine": "Wine",

	// Spices and seasonings
	"salt": "Salt", "pepper powder": "Pepper", "cumin": "Cumin",
	"turmeric": "Turmeric", "paprika": "Paprika", "cinnamon": "Cinnamon",
	"oregano": "Oregano", "basil": "Basil", "thyme": "Thyme",
	"parsley": "Parsley", "cilantro": "Cilantro", "coriander": "Coriander",
	"chili": "Chili", "chilli": "Chili", "cayenne": "Cayenne",
	"rosemary": "Rosemary", "bay leaf": "Bay Leaves", "bay leaves": "Bay Leaves",
	"cloves": "Cloves", "cardamom": "Cardamom", "nutmeg": "Nutmeg",
	"garam masala": "Garam Masala", "curry powder": "Curry Powder",

	// Sweeteners and baking
	"sugar": "Sugar", "honey": "Honey", "maple syrup": "Maple Syrup",
	"baking powder": "Baking Powder", "baking soda": "Baking Soda",
	"vanilla": "Vanilla Extract", "yeast": "Yeast", "cocoa": "Cocoa Powder",
	"chocolate": "Chocolate", "syrup": "Syrup",

	// Nuts and seeds
	"almonds": "Almonds", "cashews": "Cashews", "peanuts": "Peanuts",
	"walnuts": "Walnuts", "sesame": "Sesame Seeds",

	// Sauces and condiments
	"ketchup": "Ketchup", "mustard": "Mustard", "mayonnaise": "Mayonnaise",
	"hot sauce": "Hot Sauce", "tomato sauce": "Tomato Sauce",
	"tomato paste": "Tomato Paste", "coconut milk": "Coconut Milk",
}

// defaults is the standard quantity per display name.
var defaults = map[string]string{
	"Chicken": "250 g", "Beef": "250 g", "Pork": "250 g", "Lamb": "250 g",
	"Fish": "200 g", "Shrimp": "150 g", "Prawns": "150 g", "Salmon": "200 g",
	"Tuna": "150 g", "Turkey": "250 g", "Tofu": "200 g", "Paneer": "200 g",
	"Eggs": "2 pieces", "Bacon": "4 slices", "Sausage": "2 pieces",

	"Onions": "2 medium", "Garlic": "4 cloves", "Tomatoes": "3 medium",
	"Potatoes": "2 medium", "Carrots": "2 medium", "Bell Pepper": "1 medium",
	"Bell Peppers": "2 medium", "Broccoli": "1 cup", "Spinach": "2 cups",
	"Mushrooms": "1 cup", "Celery": "2 stalks", "Lettuce": "4 leaves",
	"Cabbage": "2 cups", "Corn": "1 cup", "Peas": "1 cup", "Beans": "1 cup",
	"Lentils": "1 cup", "Ginger": "1 tbsp", "Cucumber": "1 medium",
	"Zucchini": "1 medium", "Eggplant": "1 medium", "Cauliflower": "2 cups",
	"Kale": "2 cups", "Avocado": "1 medium", "Asparagus": "6 spears",

	"Lemon": "1 piece", "Lime": "1 piece", "Orange": "1 piece",
	"Apple": "1 medium", "Banana": "1 medium", "Mango": "1 medium",
	"Coconut": "1 cup",

	"Butter": "4 tbsp", "Cream": "1 cup", "Cheese": "1 cup",
	"Milk": "1 cup", "Yogurt": "1 cup", "Curd": "1 cup", "Ghee": "2 tbsp",

	"Rice": "1 cup", "Pasta": "200 g", "Noodles": "200 g", "Flour": "2 cups",
	"Bread": "4 slices", "Dough": "2 cups", "Tortillas": "4 pieces",
	"Oats": "1 cup", "Quinoa": "1 cup",

	"Oil": "3 tbsp", "Olive Oil": "3 tbsp", "Vegetable Oil": "3 tbsp",
	"Water": "2 cups", "Broth": "2 cups", "Stock": "2 cups",
	"Soy Sauce": "2 tbsp", "Vinegar": "1 tbsp", "Wine": "0.5 cup",

	"Salt": "1 tsp", "Pepper": "0.5 tsp", "Cumin": "1 tsp",
	"Turmeric": "0.5 tsp", "Paprika": "1 tsp", "Cinnamon": "0.5 tsp",
	"Oregano": "1 tsp", "Basil": "1 tsp", "Thyme": "0.5 tsp",
	"Parsley": "2 tbsp", "Cilantro": "2 tbsp", "Coriander": "1 tsp",
	"Chili": "1 tsp", "Cayenne": "0.5 tsp",
	"Rosemary": "1 tsp", "Bay Leaves": "2 pieces", "Cloves": "4 pieces",
	"Cardamom": "3 pieces", "Nutmeg": "0.25 tsp",
	"Garam Masala": "1 tsp", "Curry Powder": "1 tbsp",

	"Sugar": "6 tbsp", "Honey": "2 tbsp", "Maple Syrup": "2 tbsp",
	"Baking Powder": "1 tsp", "Baking Soda": "0.5 tsp",
	"Vanilla Extract": "1 tsp", "Yeast": "1 tsp", "Cocoa Powder": "3 tbsp",
	"Chocolate": "100 g", "Syrup": "2 tbsp",

	"Almonds": "0.25 cup", "Cashews": "0.25 cup", "Peanuts": "0.25 cup",
	"Walnuts": "0.25 cup", "Sesame Seeds": "1 tbsp",

	"Ketchup": "2 tbsp", "Mustard": "1 tbsp", "Mayonnaise": "2 tbsp",
	"Hot Sauce": "1 tsp", "Tomato Sauce": "1 cup",
	"Tomato Paste": "2 tbsp", "Coconut Milk": "1 cup",
}

// keywordsByLength holds the keys of known, longest first, ties broken
// alphabetically so iteration is deterministic.
var keywordsByLength = func() []string {
	keys := make([]string, 0, len(known))
	for k := range known {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// DisplayName returns the catalog display name for a keyword.
func DisplayName(keyword string) (string, bool) {
	name, ok := known[keyword]
	return name, ok
}
