package curve

import (
	"errors"
	"math"

	"Archwire/internal/calc/wire"
)

const (
	// Samples is the fixed number of points in every generated curve.
	Samples = 100
	// MaxDeflectionMM is the default upper bound of the sampled domain.
	MaxDeflectionMM = 4.0
)

// Calibration holds the force multipliers of each material law. Shape, not
// the exact values, is what callers rely on.
type Calibration struct {
	SS      float64 `json:"ss" koanf:"ss"`
	NiTi    float64 `json:"niti" koanf:"niti"`
	Decay   float64 `json:"decay" koanf:"decay"`
	TMA     float64 `json:"tma" koanf:"tma"`
	Default float64 `json:"default" koanf:"default"`
}

func DefaultCalibration() Calibration {
	return Calibration{
		SS:      150,
		NiTi:    80,
		Decay:   2.5,
		TMA:     100,
		Default: 100,
	}
}

// OrDefault substitutes the default calibration for a zero value.
func (c Calibration) OrDefault() Calibration {
	if c == (Calibration{}) {
		return DefaultCalibration()
	}
	return c
}

func (c Calibration) Validate() error {
	if c.SS <= 0 || c.NiTi <= 0 || c.Decay <= 0 || c.TMA <= 0 || c.Default <= 0 {
		return errors.New("calibration constants must be positive")
	}
	return nil
}

type Point struct {
	DeflectionMM float64 `json:"deflection_mm"`
	ForceG       float64 `json:"force_g"`
}

// Curve is a load-deflection sample set ordered by deflection.
type Curve []Point

type Input struct {
	Material        wire.Material `json:"material"`
	Size            string        `json:"size"`
	MaxDeflectionMM float64       `json:"max_deflection_mm"`
}

type Result struct {
	Label  string  `json:"label"`
	Factor float64 `json:"stiffness_factor"`
	Points Curve   `json:"points"`
}

// Generate samples the force law of material over [0, maxDeflection] using
// the default calibration.
func Generate(material wire.Material, size string, maxDeflection float64) Curve {
	return DefaultCalibration().Generate(material, size, maxDeflection)
}

func (c Calibration) Generate(material wire.Material, size string, maxDeflection float64) Curve {
	if maxDeflection <= 0 {
		maxDeflection = MaxDeflectionMM
	}
	factor, _ := wire.StiffnessFactor(size)
	step := maxDeflection / float64(Samples-1)

	out := make(Curve, Samples)
	for i := range out {
		d := float64(i) * step
		if i == Samples-1 {
			d = maxDeflection
		}
		out[i] = Point{DeflectionMM: d, ForceG: c.Force(material, factor, d)}
	}
	return out
}

// Force evaluates the closed-form law for one deflection.
func (c Calibration) Force(material wire.Material, factor, d float64) float64 {
	switch material {
	case wire.MaterialSS:
		return c.SS * factor * d
	case wire.MaterialNiTi, wire.MaterialCuNiTi:
		return c.NiTi * factor * (1 - math.Exp(-c.Decay*d))
	case wire.MaterialTMA:
		return c.TMA * factor * d
	default:
		return c.Default * factor * d
	}
}

// Calculate is the request form of Generate.
func (c Calibration) Calculate(in Input) Result {
	factor, _ := wire.StiffnessFactor(in.Size)
	return Result{
		Label:  in.Size + " " + in.Material.Label(),
		Factor: factor,
		Points: c.Generate(in.Material, in.Size, in.MaxDeflectionMM),
	}
}
