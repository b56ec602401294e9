package column

import (
	"github.com/rcdesign/gorcc/internal/aci"
)

const (
	// DefaultSamples is the number of neutral axis depths sampled per
	// sweep direction. It is a resolution parameter; the degenerate
	// endpoints do not depend on it.
	DefaultSamples = 40

	// minDepth is the smallest neutral axis depth sampled. The sweep must
	// start strictly above zero or the curvature εcu/c blows up.
	minDepth = 1e-8

	// momentDivisor converts the moment sums from tonf-cm to tonf-m
	momentDivisor = 100.0
)

// CurvePoint is one sample of the interaction diagram: the nominal
// capacity (Mn, Pn) and its φ-factored design counterpart
type CurvePoint struct {
	Mn    float64 // Nominal moment (tonf-m)
	Pn    float64 // Nominal axial force (tonf), compression positive
	PhiMn float64 // Design moment (tonf-m)
	PhiPn float64 // Design axial force (tonf)
}

// Curve is the closed interaction polygon. Points are ordered: pure
// tension, positive-moment sweep (c increasing), pure compression,
// negative-moment sweep (c decreasing, mirrored section), closing pure
// tension. The three degenerate points plus the two sweeps give a length
// of 3 + 2*samples.
type Curve struct {
	Points []CurvePoint

	// Axial capacity caps applied to the points (ACI 318-14 22.4.2.1)
	PnCap    float64 // 0.80 * max nominal axial capacity
	PhiPnCap float64 // 0.65 * PnCap
}

// Nominal returns the nominal curve as parallel moment and axial slices
func (c *Curve) Nominal() (moments, axials []float64) {
	moments = make([]float64, len(c.Points))
	axials = make([]float64, len(c.Points))
	for i, pt := range c.Points {
		moments[i] = pt.Mn
		axials[i] = pt.Pn
	}
	return moments, axials
}

// Design returns the φ-factored curve as parallel moment and axial slices
func (c *Curve) Design() (moments, axials []float64) {
	moments = make([]float64, len(c.Points))
	axials = make([]float64, len(c.Points))
	for i, pt := range c.Points {
		moments[i] = pt.PhiMn
		axials[i] = pt.PhiPn
	}
	return moments, axials
}

// ComputeCurve builds the P-M interaction diagram of the section by strain
// compatibility, sweeping the neutral axis depth with `samples` stations
// per direction and capping the axial capacity afterwards.
//
// The traversal starts at pure tension, walks the positive-moment branch
// with increasing depth, passes through pure compression, walks the
// negative-moment branch with decreasing depth and the bar line areas
// mirrored, and closes back at pure tension.
func ComputeCurve(s *Section, samples int) (*Curve, error) {
	lines, err := s.Layout()
	if err != nil {
		return nil, err
	}
	if samples < 2 {
		return nil, &DomainError{"sweep needs at least 2 samples per direction"}
	}

	points := make([]CurvePoint, 0, 3+2*samples)

	// Pure tension: concrete cracked through, every line at the assumed
	// ultimate tension strain
	points = append(points, endpointAt(s, lines, -aci.EpsilonTensionControl, 0, false))

	// Positive-moment branch
	for _, c := range linspace(minDepth, s.Height, samples) {
		pt, err := sampleAt(s, lines, c, false)
		if err != nil {
			return nil, err
		}
		points = append(points, pt)
	}

	// Pure compression: full-depth block, every line yielded in compression
	po := s.Alpha * s.Fc * s.Width * s.Height
	points = append(points, endpointAt(s, lines, s.EpsilonCU, po, false))

	// Negative-moment branch: the section is flipped, which reverses the
	// bar line order while the line ordinates keep their sweep meaning
	mirrored := mirrorLines(lines)
	for _, c := range linspace(s.Height, minDepth, samples) {
		pt, err := sampleAt(s, mirrored, c, true)
		if err != nil {
			return nil, err
		}
		points = append(points, pt)
	}

	// Closing pure tension point
	points = append(points, endpointAt(s, mirrored, -aci.EpsilonTensionControl, 0, true))

	curve := &Curve{Points: points}
	curve.applyAxialCap()
	return curve, nil
}

// sampleAt evaluates one neutral axis depth c: linear strain profile with
// curvature εcu/c, rectangular concrete block of depth β·c, elastic-plastic
// steel per line. negate flips the moment sign for the mirrored branch.
func sampleAt(s *Section, lines []RebarLine, c float64, negate bool) (CurvePoint, error) {
	if c <= 0 {
		return CurvePoint{}, &DomainError{"neutral axis depth must be strictly positive"}
	}

	kappa := s.EpsilonCU / c
	ycc := (s.Height - s.Beta*c) / 2
	cc := s.Alpha * s.Beta * s.Fc * s.Width * c
	d := s.EffectiveDepth()

	var sumForce, sumMoment, phi float64
	for _, line := range lines {
		ys := s.Height/2 + line.Position - (d - c) - s.Cover
		eps := kappa * ys
		force := aci.SteelStress(eps, s.Fy, s.Es) * line.Area
		sumForce += force
		sumMoment += line.Position * force
		// φ follows the last line processed, matching the reference
		// sweep; see DESIGN.md for the open question on the governing
		// line.
		phi = aci.Phi(eps, s.Fy, s.Es)
	}

	pn := cc + sumForce
	mn := (cc*ycc + sumMoment) / momentDivisor
	if negate {
		mn = -mn
	}
	return CurvePoint{Mn: mn, Pn: pn, PhiMn: phi * mn, PhiPn: phi * pn}, nil
}

// endpointAt evaluates a degenerate end of the diagram where every bar
// line is forced to the same strain and the concrete block eccentricity
// is zero.
func endpointAt(s *Section, lines []RebarLine, eps, cc float64, negate bool) CurvePoint {
	var sumForce, sumMoment float64
	for _, line := range lines {
		force := aci.SteelStress(eps, s.Fy, s.Es) * line.Area
		sumForce += force
		sumMoment += line.Position * force
	}
	phi := aci.Phi(eps, s.Fy, s.Es)

	pn := cc + sumForce
	mn := sumMoment / momentDivisor
	if negate {
		mn = -mn
	}
	return CurvePoint{Mn: mn, Pn: pn, PhiMn: phi * mn, PhiPn: phi * pn}
}

// mirrorLines reverses the bar line areas while keeping the ordinates, the
// equivalent of flipping the section for the negative-moment branch.
func mirrorLines(lines []RebarLine) []RebarLine {
	out := make([]RebarLine, len(lines))
	for i := range lines {
		out[i] = RebarLine{
			Position: lines[i].Position,
			Area:     lines[len(lines)-1-i].Area,
		}
	}
	return out
}

// applyAxialCap clips the axial ordinates to the maximum compressive
// capacity of a tied column, Pn,max = 0.80·Po and φPn,max = 0.65·Pn,max.
// Moments are left untouched.
func (c *Curve) applyAxialCap() {
	var maxPn float64
	for i, pt := range c.Points {
		if i == 0 || pt.Pn > maxPn {
			maxPn = pt.Pn
		}
	}

	c.PnCap = aci.MaxAxialFactor * maxPn
	c.PhiPnCap = aci.PhiCompression * c.PnCap

	for i := range c.Points {
		if c.Points[i].Pn > c.PnCap {
			c.Points[i].Pn = c.PnCap
		}
		if c.Points[i].PhiPn > c.PhiPnCap {
			c.Points[i].PhiPn = c.PhiPnCap
		}
	}
}
