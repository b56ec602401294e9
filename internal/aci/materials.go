package aci

import "math"

// ACI 318-14 Material Constants

const (
	// Strain limits
	EpsilonTensionControl = 0.005 // Net tensile strain limit for tension-controlled sections (Table 21.2.2)

	// Strength reduction factors (Table 21.2.1)
	PhiTension     = 0.90 // Tension-controlled sections
	PhiCompression = 0.65 // Compression-controlled sections (tied reinforcement)

	// Maximum axial capacity factor for tied columns (Section 22.4.2.1)
	// Pn,max = 0.80 * Po
	MaxAxialFactor = 0.80
)

// YieldStrain returns the yield strain of the reinforcement, εy = fy/Es.
func YieldStrain(fy, es float64) float64 {
	return fy / es
}

// SteelStress calculates the reinforcement stress for a given strain using
// an elastic-plastic constitutive relation: linear up to yield, then
// saturated at ±fy with no hardening.
func SteelStress(eps, fy, es float64) float64 {
	epsY := YieldStrain(fy, es)
	if math.Abs(eps) <= epsY {
		return es * eps
	}
	if eps < 0 {
		return -fy
	}
	return fy
}

// Phi calculates the strength reduction factor based on the reinforcement
// strain, per ACI 318-14 Table 21.2.2 for tied sections.
//
// The sign of the strain is ignored; both boundaries are continuous
// (φ(εy) = 0.65 from either branch, φ(0.005) = 0.90 from either branch).
func Phi(eps, fy, es float64) float64 {
	e := math.Abs(eps)
	epsY := YieldStrain(fy, es)

	if e <= epsY {
		// Compression-controlled
		return PhiCompression
	}
	if e < EpsilonTensionControl {
		// Transition zone
		return PhiCompression + (PhiTension-PhiCompression)*(e-epsY)/(EpsilonTensionControl-epsY)
	}
	// Tension-controlled
	return PhiTension
}
