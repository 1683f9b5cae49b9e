package force

import (
	"math"
	"sort"

	"Archwire/internal/calc/curve"
	"Archwire/internal/calc/wire"
)

type BindingRisk string

const (
	RiskLow      BindingRisk = "Low"
	RiskModerate BindingRisk = "Moderate"
	RiskHigh     BindingRisk = "High"
)

type Status string

const (
	StatusSubOptimal  Status = "SubOptimal"
	StatusPhysiologic Status = "Physiologic"
	StatusTraumatic   Status = "Traumatic"
)

// Physiologic force window in grams.
const (
	PhysiologicMinG = 50.0
	PhysiologicMaxG = 150.0
)

type Result struct {
	ForceG      float64     `json:"force_g"`
	BindingRisk BindingRisk `json:"binding_risk"`
	ForceStatus Status      `json:"force_status"`
}

// Evaluate reads the force at deflection off c and classifies the setup.
func Evaluate(c curve.Curve, bracket wire.BracketConfig, spec wire.WireSpec, deflection float64) Result {
	f := Interpolate(c, deflection)
	return Result{
		ForceG:      f,
		BindingRisk: ClassifyBinding(bracket, spec),
		ForceStatus: ClassifyForce(f),
	}
}

// Calculate generates the curve for s and evaluates it.
func Calculate(cal curve.Calibration, s wire.Setup) (curve.Curve, Result) {
	c := cal.Generate(s.Wire.Material, s.Wire.Size, curve.MaxDeflectionMM)
	return c, Evaluate(c, s.Bracket, s.Wire, s.DeflectionMM)
}

// Interpolate returns the linearly interpolated force at d. Outside the
// sampled domain the nearest boundary value is returned; NaN reads as the
// unloaded end.
func Interpolate(c curve.Curve, d float64) float64 {
	switch {
	case len(c) == 0:
		return 0
	case math.IsNaN(d), d <= c[0].DeflectionMM:
		return c[0].ForceG
	case d >= c[len(c)-1].DeflectionMM:
		return c[len(c)-1].ForceG
	}
	i := sort.Search(len(c), func(i int) bool { return c[i].DeflectionMM >= d })
	hi := c[i]
	if hi.DeflectionMM == d {
		return hi.ForceG
	}
	lo := c[i-1]
	t := (d - lo.DeflectionMM) / (hi.DeflectionMM - lo.DeflectionMM)
	return lo.ForceG + t*(hi.ForceG-lo.ForceG)
}

// ClassifyBinding ranks wire-to-slot interference. The ligation system does
// not take part.
func ClassifyBinding(bracket wire.BracketConfig, spec wire.WireSpec) BindingRisk {
	if spec.CrossSection != wire.CrossRectangular {
		return RiskLow
	}
	switch {
	case bracket.SlotSize == wire.Slot022 && (spec.Size == "19x25" || spec.Size == "21x25"):
		return RiskHigh
	case bracket.SlotSize == wire.Slot018 && spec.Size == "17x25":
		return RiskHigh
	default:
		return RiskModerate
	}
}

func ClassifyForce(f float64) Status {
	switch {
	case f < PhysiologicMinG:
		return StatusSubOptimal
	case f > PhysiologicMaxG:
		return StatusTraumatic
	default:
		return StatusPhysiologic
	}
}
