package column

import "math"

// RebarLine is one horizontal line of reinforcement bars
type RebarLine struct {
	Position float64 // Signed offset of the line from the section centroid (cm)
	Area     float64 // Total steel area of the line (cm²)
}

// Layout computes the bar line positions and areas from the bar counts and
// diameters. Lines are distributed uniformly over the reinforced span
// [-(h-2·rec)/2, +(h-2·rec)/2]; their order follows bars_per_line and is
// meaningful (the negative-moment sweep mirrors it).
func (s *Section) Layout() ([]RebarLine, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	span := (s.Height - 2*s.Cover) / 2
	positions := linspace(-span, span, len(s.BarsPerLine))

	lines := make([]RebarLine, len(s.BarsPerLine))
	for i, count := range s.BarsPerLine {
		dia := s.BarsDiameter[i]
		lines[i] = RebarLine{
			Position: positions[i],
			Area:     float64(count) * math.Pi / 4 * dia * dia,
		}
	}
	return lines, nil
}

// TotalSteelArea returns the combined steel area of all bar lines (cm²)
func TotalSteelArea(lines []RebarLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Area
	}
	return total
}

// linspace returns n values evenly spaced over [lo, hi], endpoints
// included. A single sample collapses to lo.
func linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
