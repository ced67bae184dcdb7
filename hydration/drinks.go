package hydration

import "sort"

// Drink is one catalog entry with electrolyte content per serving.
type Drink struct {
	Name        string  `json:"name"`
	ServingOz   float64 `json:"serving_oz"`
	SodiumMG    float64 `json:"sodium_mg"`
	PotassiumMG float64 `json:"potassium_mg"`
	MagnesiumMG float64 `json:"magnesium_mg"`
}

// DefaultCatalog returns the built-in drink options. Plain water must stay
// first: it is the shortcut answer when no replenishment is needed. Values
// are approximate per-serving figures.
func DefaultCatalog() []Drink {
	return []Drink{
		{Name: "Plain water", ServingOz: 16, SodiumMG: 0, PotassiumMG: 0, MagnesiumMG: 0},
		{Name: "Sports drink (moderate sodium)", ServingOz: 20, SodiumMG: 250, PotassiumMG: 80, MagnesiumMG: 0},
		{Name: "Electrolyte mix (high sodium)", ServingOz: 16, SodiumMG: 1000, PotassiumMG: 200, MagnesiumMG: 60},
		{Name: "Oral rehydration solution (balanced)", ServingOz: 12, SodiumMG: 370, PotassiumMG: 280, MagnesiumMG: 0},
		{Name: "Coconut water + pinch of salt", ServingOz: 12, SodiumMG: 250, PotassiumMG: 600, MagnesiumMG: 60},
	}
}

// DrinkRecommender ranks a fixed catalog against an electrolyte deficit. The
// catalog is copied at construction so callers cannot mutate it afterwards.
type DrinkRecommender struct {
	catalog []Drink
}

func NewDrinkRecommender(catalog []Drink) *DrinkRecommender {
	c := make([]Drink, len(catalog))
	copy(c, catalog)
	return &DrinkRecommender{catalog: c}
}

// Recommend scores each catalog entry by how well it covers the target
// electrolytes and returns the top maxResults.
//
// Negative targets are floored at 0. When all three targets are 0 the answer
// is just the first catalog entry (plain water) with no scoring. Otherwise each
// electrolyte contributes a capped coverage ratio delivered/target, with a
// zero target counting as already satisfied, weighted 0.55 sodium / 0.30
// potassium / 0.15 magnesium. Ties keep catalog order.
func (r *DrinkRecommender) Recommend(targetSodiumMG, targetPotassiumMG, targetMagnesiumMG float64, maxResults int) []Drink {
	if len(r.catalog) == 0 {
		return nil
	}

	ts := max0(targetSodiumMG)
	tk := max0(targetPotassiumMG)
	tm := max0(targetMagnesiumMG)

	if ts == 0 && tk == 0 && tm == 0 {
		return []Drink{r.catalog[0]}
	}

	scored := make([]Drink, len(r.catalog))
	copy(scored, r.catalog)
	score := func(d Drink) float64 {
		return 0.55*coverage(d.SodiumMG, ts) +
			0.30*coverage(d.PotassiumMG, tk) +
			0.15*coverage(d.MagnesiumMG, tm)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return score(scored[i]) > score(scored[j])
	})

	if maxResults < 0 {
		maxResults = 0
	}
	if maxResults < len(scored) {
		scored = scored[:maxResults]
	}
	return scored
}

// coverage is delivered/target capped at 1.0; a non-positive target is
// treated as fully satisfied.
func coverage(delivered, target float64) float64 {
	if target <= 0 {
		return 1.0
	}
	ratio := delivered / target
	if ratio > 1.0 {
		return 1.0
	}
	return ratio
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
