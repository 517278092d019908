package recipe

import "sort"

// Sample is a built-in recipe in pasted-text form, run through the same
// import path as anything the cook pastes in.
type Sample struct {
	Name string
	Text string
}

var samples = map[string]Sample{
	"alfredo": {
		Name: "Chicken Alfredo",
		Text: `Ingredients
250 g spaghetti
2 chicken breasts
1 cup creme fraiche
1 cup grated gruyere
3 tbsp margarine
4 cloves garlic
1 tbsp olive oil
Salt

Method
1. Bring a large pot of salted water to a boil for 8 minutes.
2. Season the chicken breasts with salt and pepper on both sides.
3. Heat olive oil in a skillet and sear the chicken for 12 minutes until golden. Set aside.
4. Boil the spaghetti until al dente, about 10 minutes. Reserve a cup of pasta water.
5. Melt margarine in the same skillet and cook minced garlic for 1 minute.
6. Stir in the creme fraiche and simmer for 3 minutes until it thickens.
7. Take the pan off the heat and stir in the gruyere until smooth.
8. Serve the pasta with sliced chicken on top.`,
	},
	"stirfry": {
		Name: "Vegetable Stir Fry",
		Text: `You will need
1 bell pepper
2 cups broccoli florets
1 carrot
3 cloves garlic
2 tbsp soy sauce
1 tbsp sesame oil
2 tbsp vegetable oil

Steps
Slice the bell pepper into strips and julienne the carrot.
Mix the soy sauce and sesame oil with 2 tablespoons of water. Set aside.
Stir-fry the broccoli and carrots for 2 minutes.
Add minced garlic and toss for 30 seconds until fragrant.
Pour the sauce over everything and cook for 1 minute until it thickens.
Serve immediately over rice.`,
	},
	"eggs": {
		Name: "Soft Boiled Eggs",
		Text: `Boil the eggs for 6 minutes.
Cool the eggs in cold water for 2 minutes.
Peel and serve with toast.`,
	},
}

// LookupSample returns a built-in recipe by key.
func LookupSample(key string) (Sample, bool) {
	s, ok := samples[key]
	return s, ok
}

// SampleKeys lists the built-in recipe keys in order.
func SampleKeys() []string {
	keys := make([]string, 0, len(samples))
	for k := range samples {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
