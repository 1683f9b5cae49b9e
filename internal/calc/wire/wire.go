// Package wire holds the closed sets a force setup is built from: wire
// materials, cross-sections, bracket slots and ligation systems, plus the
// size catalog and stiffness table the curve generator reads.
package wire

import (
	"errors"
	"fmt"
	"strings"
)

type Material string

const (
	MaterialSS          Material = "SS"
	MaterialNiTi        Material = "NiTi"
	MaterialCuNiTi      Material = "CuNiTi"
	MaterialTMA         Material = "TMA"
	MaterialElgiloy     Material = "Elgiloy"
	MaterialMultiStrand Material = "MultiStrand"
)

type CrossSection string

const (
	CrossRound       CrossSection = "Round"
	CrossRectangular CrossSection = "Rectangular"
)

type SlotSize string

const (
	Slot018 SlotSize = "0.018"
	Slot022 SlotSize = "0.022"
)

type BracketSystem string

const (
	BracketConventional        BracketSystem = "Conventional"
	BracketPassiveSelfLigating BracketSystem = "PassiveSelfLigating"
	BracketActiveSelfLigating  BracketSystem = "ActiveSelfLigating"
)

var (
	ErrUnknownMaterial     = errors.New("unknown wire material")
	ErrUnknownCrossSection = errors.New("unknown cross-section")
	ErrUnknownSlot         = errors.New("unknown slot size")
	ErrUnknownBracket      = errors.New("unknown bracket system")
	ErrSizeNotOffered      = errors.New("wire size not offered for this cross-section and slot")
	ErrInvalidDeflection   = errors.New("deflection must be a finite number")
)

var Materials = []Material{
	MaterialNiTi, MaterialSS, MaterialCuNiTi, MaterialTMA, MaterialElgiloy, MaterialMultiStrand,
}

var CrossSections = []CrossSection{CrossRound, CrossRectangular}

var Slots = []SlotSize{Slot022, Slot018}

var BracketSystems = []BracketSystem{
	BracketConventional, BracketPassiveSelfLigating, BracketActiveSelfLigating,
}

var materialLabels = map[Material]string{
	MaterialSS:          "Stainless Steel (SS)",
	MaterialNiTi:        "NiTi",
	MaterialCuNiTi:      "CuNiTi",
	MaterialTMA:         "TMA",
	MaterialElgiloy:     "Elgiloy",
	MaterialMultiStrand: "Multi-Strand",
}

var bracketLabels = map[BracketSystem]string{
	BracketConventional:        "Conventional (Elastic)",
	BracketPassiveSelfLigating: "Passive Self-Ligating",
	BracketActiveSelfLigating:  "Active Self-Ligating",
}

// Label is the human readable name shown on the dashboard.
func (m Material) Label() string {
	if l, ok := materialLabels[m]; ok {
		return l
	}
	return string(m)
}

// Superelastic reports whether the alloy follows the plateau force law.
func (m Material) Superelastic() bool {
	return m == MaterialNiTi || m == MaterialCuNiTi
}

func (b BracketSystem) Label() string {
	if l, ok := bracketLabels[b]; ok {
		return l
	}
	return string(b)
}

// Thou returns the slot height in thousandths of an inch.
func (s SlotSize) Thou() int {
	switch s {
	case Slot018:
		return 18
	case Slot022:
		return 22
	default:
		return 0
	}
}

func ParseMaterial(s string) (Material, error) {
	v := strings.TrimSpace(s)
	for _, m := range Materials {
		if strings.EqualFold(v, string(m)) || strings.EqualFold(v, m.Label()) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMaterial, s)
}

func ParseCrossSection(s string) (CrossSection, error) {
	v := strings.TrimSpace(s)
	for _, c := range CrossSections {
		if strings.EqualFold(v, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCrossSection, s)
}

func ParseSlot(s string) (SlotSize, error) {
	v := strings.TrimSpace(s)
	for _, slot := range Slots {
		if v == string(slot) || "0"+v == string(slot) {
			return slot, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSlot, s)
}

func ParseBracket(s string) (BracketSystem, error) {
	v := strings.TrimSpace(s)
	for _, b := range BracketSystems {
		if strings.EqualFold(v, string(b)) || strings.EqualFold(v, b.Label()) {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBracket, s)
}
