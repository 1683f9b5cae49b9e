package recommend

import (
	"math"
	"sort"

	"Archwire/internal/calc/curve"
	"Archwire/internal/calc/force"
	"Archwire/internal/calc/wire"
)

// DefaultTargetG sits mid-way through the physiologic window.
const DefaultTargetG = 100.0

type Input struct {
	SlotSize      string  `json:"slot_size"`
	BracketSystem string  `json:"bracket_system"`
	Material      string  `json:"material"` // optional filter
	DeflectionMM  float64 `json:"deflection_mm"`
	TargetG       float64 `json:"target_g"`
}

type Candidate struct {
	Wire      wire.WireSpec `json:"wire"`
	Result    force.Result  `json:"result"`
	Deviation float64       `json:"deviation_g"`
}

type Result struct {
	Candidates []Candidate `json:"candidates"`
	Notes      string      `json:"notes"`
}

var riskRank = map[force.BindingRisk]int{
	force.RiskLow:      0,
	force.RiskModerate: 1,
	force.RiskHigh:     2,
}

// Wires lists every catalog wire that stays physiologic at the requested
// deflection, least binding first, then closest to the target force.
func Wires(cal curve.Calibration, in Input) (Result, error) {
	slot, err := wire.ParseSlot(in.SlotSize)
	if err != nil {
		return Result{}, err
	}
	bracket, err := wire.ParseBracket(in.BracketSystem)
	if err != nil {
		return Result{}, err
	}
	materials := wire.Materials
	if in.Material != "" {
		m, err := wire.ParseMaterial(in.Material)
		if err != nil {
			return Result{}, err
		}
		materials = []wire.Material{m}
	}
	if in.TargetG <= 0 {
		in.TargetG = DefaultTargetG
	}

	cfg := wire.BracketConfig{SlotSize: slot, BracketSystem: bracket}
	out := make([]Candidate, 0)
	for _, m := range materials {
		for _, cross := range wire.CrossSections {
			for _, size := range wire.Sizes(cross, slot) {
				spec := wire.WireSpec{Material: m, CrossSection: cross, Size: size}
				c := cal.Generate(m, size, curve.MaxDeflectionMM)
				res := force.Evaluate(c, cfg, spec, in.DeflectionMM)
				if res.ForceStatus != force.StatusPhysiologic {
					continue
				}
				out = append(out, Candidate{Wire: spec, Result: res, Deviation: math.Abs(res.ForceG - in.TargetG)})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := riskRank[out[i].Result.BindingRisk], riskRank[out[j].Result.BindingRisk]
		if ri != rj {
			return ri < rj
		}
		return out[i].Deviation < out[j].Deviation
	})
	return Result{
		Candidates: out,
		Notes:      "Wires delivering 50-150g at the given deflection, least binding first.",
	}, nil
}
