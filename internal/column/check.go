package column

import (
	"fmt"
	"math"
)

// CheckResult holds the outcome of a demand point check against the
// design interaction curve
type CheckResult struct {
	// Demand
	Mu float64 // Factored moment (tonf-m)
	Pu float64 // Factored axial force (tonf)

	// Capacity along the demand ray
	PhiMn float64 // Design moment at the curve crossing (tonf-m)
	PhiPn float64 // Design axial force at the curve crossing (tonf)

	// Demand over capacity along the ray from the origin
	Utilization float64

	IsAdequate bool
	Message    string
}

// CheckCapacity locates the demand point (Mu, Pu) relative to the design
// interaction polygon. The capacity along the load path is found by
// intersecting the ray from the origin through the demand point with the
// polygon edges; the demand is adequate when it falls inside the curve.
func CheckCapacity(curve *Curve, mu, pu float64) *CheckResult {
	result := &CheckResult{Mu: mu, Pu: pu}

	if mu == 0 && pu == 0 {
		result.IsAdequate = true
		result.Message = "No demand - section adequate"
		return result
	}

	moments, axials := curve.Design()

	// Furthest crossing of the ray t·(Mu, Pu), t > 0, with any edge
	tMax := 0.0
	for i := 0; i+1 < len(moments); i++ {
		t, ok := rayEdgeIntersection(mu, pu,
			moments[i], axials[i], moments[i+1], axials[i+1])
		if ok && t > tMax {
			tMax = t
		}
	}

	if tMax == 0 {
		// Demand direction never crosses the polygon
		result.IsAdequate = false
		result.Utilization = math.Inf(1)
		result.Message = "Demand falls outside the design interaction curve"
		return result
	}

	result.PhiMn = tMax * mu
	result.PhiPn = tMax * pu
	result.Utilization = 1 / tMax
	result.IsAdequate = tMax >= 1

	if result.IsAdequate {
		result.Message = "Demand point inside the design interaction curve"
	} else {
		result.Message = "Demand point outside the design interaction curve"
	}
	return result
}

// UtilizationString formats the utilization ratio as a percentage for
// reports. An unbounded ratio, meaning the demand direction never crosses
// the design curve, renders as a dash.
func (r *CheckResult) UtilizationString() string {
	if math.IsInf(r.Utilization, 1) {
		return "—"
	}
	return fmt.Sprintf("%.1f%%", r.Utilization*100)
}

// edgeTol widens the accepted edge parameter range slightly beyond
// [0, 1]. The closed polygon meets itself only to floating point
// precision (the closing point's moment carries the negated rounding
// residue of the opening point, ~1e-15 tonf-m) while the edges adjacent
// to the seam are themselves only ~1e-8 tonf-m long, so a ray aimed
// exactly at the seam lands up to ~1e-7 outside both edges' parameter
// range and would otherwise slip between them.
const edgeTol = 1e-6

// rayEdgeIntersection solves t·(dx, dy) = A + u·(B-A) for the ray scale t
// with the edge parameter u confined to [0, 1] up to edgeTol. Reports
// ok=false for a parallel edge or a crossing behind the origin.
func rayEdgeIntersection(dx, dy, ax, ay, bx, by float64) (float64, bool) {
	det := dx*(ay-by) - dy*(ax-bx)
	if math.Abs(det) < 1e-12 {
		return 0, false
	}

	t := (bx*ay - ax*by) / det
	u := (dx*ay - dy*ax) / det

	if u < -edgeTol || u > 1+edgeTol || t <= 0 {
		return 0, false
	}
	return t, true
}
