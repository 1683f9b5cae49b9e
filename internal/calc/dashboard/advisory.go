package dashboard

import (
	"Archwire/internal/calc/force"
	"Archwire/internal/calc/wire"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// AdvisoryCode groups advisories: A1xx binding/friction, A2xx material,
// A3xx force level.
type AdvisoryCode string

const (
	AdviseHighBinding     AdvisoryCode = "A101"
	AdviseElasticFriction AdvisoryCode = "A102"
	AdviseLowFriction     AdvisoryCode = "A103"
	AdviseReducedPlay     AdvisoryCode = "A104"
	AdvisePlateau         AdvisoryCode = "A201"
	AdviseStiffSteel      AdvisoryCode = "A202"
	AdviseTMA             AdvisoryCode = "A203"
	AdviseTraumatic       AdvisoryCode = "A301"
	AdviseSubOptimal      AdvisoryCode = "A302"
)

type Advisory struct {
	Code    AdvisoryCode `json:"code"`
	Level   Level        `json:"level"`
	Message string       `json:"message"`
}

// Advise lists the notes for a setup and its evaluation, binding first.
func Advise(s wire.Setup, res force.Result) []Advisory {
	var out []Advisory

	switch {
	case res.BindingRisk == force.RiskHigh:
		out = append(out, Advisory{AdviseHighBinding, LevelError,
			"High Binding Risk: wire cross-section is near slot capacity. The critical contact angle will be reached quickly."})
	case s.Bracket.BracketSystem == wire.BracketConventional:
		out = append(out, Advisory{AdviseElasticFriction, LevelWarning,
			"Friction Note: elastic modules add 50-150g of normal force initially, decaying by ~50% in 3 weeks."})
	default:
		out = append(out, Advisory{AdviseLowFriction, LevelSuccess,
			"Low Friction: setup allows relatively unimpeded sliding mechanics."})
	}
	if res.BindingRisk == force.RiskModerate {
		out = append(out, Advisory{AdviseReducedPlay, LevelInfo,
			"Reduced Play: rectangular wire engages the slot walls; expect torque expression and some binding at larger angulations."})
	}

	switch m := s.Wire.Material; {
	case m.Superelastic():
		out = append(out, Advisory{AdvisePlateau, LevelInfo,
			"Superelastic Plateau: force levels off at higher deflections, so added activation adds little force."})
	case m == wire.MaterialSS:
		out = append(out, Advisory{AdviseStiffSteel, LevelInfo,
			"Stiff Wire: stainless steel force rises linearly with deflection; small activations already deliver high force."})
	case m == wire.MaterialTMA:
		out = append(out, Advisory{AdviseTMA, LevelInfo,
			"Intermediate Stiffness: TMA delivers lower force than steel at equal deflection and can be bent chairside."})
	}

	switch res.ForceStatus {
	case force.StatusTraumatic:
		out = append(out, Advisory{AdviseTraumatic, LevelError,
			"Traumatic Force: estimated force exceeds 150g; risk of PDL hyalinisation and root resorption."})
	case force.StatusSubOptimal:
		out = append(out, Advisory{AdviseSubOptimal, LevelInfo,
			"Sub-optimal Force: estimated force is below 50g; tooth movement may be slow."})
	}
	return out
}
