package autodesign

import (
	"Archwire/internal/calc/curve"
	"Archwire/internal/calc/force"
	"Archwire/internal/calc/wire"
)

type WindowInput struct {
	SlotSize      string `json:"slot_size"`
	BracketSystem string `json:"bracket_system"`
	Material      string `json:"material"`
	CrossSection  string `json:"cross_section"`
	Size          string `json:"size"`
}

type WindowResult struct {
	Found       bool              `json:"found"`
	FromMM      float64           `json:"from_mm"`
	ToMM        float64           `json:"to_mm"`
	PeakForceG  float64           `json:"peak_force_g"`
	BindingRisk force.BindingRisk `json:"binding_risk"`
	Notes       string            `json:"notes"`
}

// Window finds the deflection range over which the wire stays within the
// physiologic force window. Curves are non-decreasing, so the range is a
// single interval bounded by the points where force crosses 50g and 150g.
func Window(cal curve.Calibration, in WindowInput) (WindowResult, error) {
	s, err := wire.NewSetup(in.SlotSize, in.BracketSystem, in.Material, in.CrossSection, in.Size, 0)
	if err != nil {
		return WindowResult{}, err
	}
	c := cal.Generate(s.Wire.Material, s.Wire.Size, curve.MaxDeflectionMM)
	res := WindowResult{
		PeakForceG:  c[len(c)-1].ForceG,
		BindingRisk: force.ClassifyBinding(s.Bracket, s.Wire),
	}

	from, ok := crossing(c, force.PhysiologicMinG, false)
	if !ok {
		res.Notes = "Wire never reaches 50g within the deflection range."
		return res, nil
	}
	to, ok := crossing(c, force.PhysiologicMaxG, true)
	if !ok {
		to = c[len(c)-1].DeflectionMM
	}
	res.Found = true
	res.FromMM, res.ToMM = from, to
	res.Notes = "Deflection range delivering 50-150g."
	return res, nil
}

// crossing returns the deflection at which the curve reaches target. With
// strict set it looks for the first sample above target instead of at it.
func crossing(c curve.Curve, target float64, strict bool) (float64, bool) {
	for i, p := range c {
		reached := p.ForceG >= target
		if strict {
			reached = p.ForceG > target
		}
		if !reached {
			continue
		}
		if i == 0 {
			return p.DeflectionMM, true
		}
		prev := c[i-1]
		t := (target - prev.ForceG) / (p.ForceG - prev.ForceG)
		return prev.DeflectionMM + t*(p.DeflectionMM-prev.DeflectionMM), true
	}
	return 0, false
}
