package aci

// LoadCombination represents an ACI strength design load combination
// Based on ACI 318-14 Section 5.3 - Load Factors and Combinations
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// ACI 318-14 Table 5.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations for gravity-only loading
// These are the most frequently used combinations for column design
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// ServiceLoads holds unfactored load effects from different load types.
// The same structure factors axial forces and moments; the unit is
// whatever the caller supplies (tonf or tonf-m).
type ServiceLoads struct {
	Dead       float64 // D
	Live       float64 // L
	Roof       float64 // Lr
	Wind       float64 // W
	Earthquake float64 // E
	Rain       float64 // R
}

// IsZero reports whether no load effect was provided at all.
func (s ServiceLoads) IsZero() bool {
	return s.Dead == 0 && s.Live == 0 && s.Roof == 0 &&
		s.Wind == 0 && s.Earthquake == 0 && s.Rain == 0
}

// Factor calculates the factored load effect for a given load combination
func (lc LoadCombination) Factor(loads ServiceLoads) float64 {
	return lc.Dead*loads.Dead +
		lc.Live*loads.Live +
		lc.Roof*loads.Roof +
		lc.Wind*loads.Wind +
		lc.Earthquake*loads.Earthquake +
		lc.Rain*loads.Rain
}

// Governing finds the maximum factored load effect from all combinations
func Governing(loads ServiceLoads, combinations []LoadCombination) (float64, LoadCombination) {
	var maxValue float64
	var governing LoadCombination

	for _, combo := range combinations {
		u := combo.Factor(loads)
		if u > maxValue {
			maxValue = u
			governing = combo
		}
	}

	return maxValue, governing
}
