package wire

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// DefaultStiffnessFactor applies to any size token missing from the table.
const DefaultStiffnessFactor = 1.0

// ClearanceNA is shown when a size token has no rectangular dimensions.
const ClearanceNA = "N/A"

var roundSizes = []string{"0.012", "0.014", "0.016", "0.018"}

var rectangularSizes = map[SlotSize][]string{
	Slot018: {"16x22", "17x25"},
	Slot022: {"16x22", "17x25", "19x25", "21x25"},
}

var stiffnessFactors = map[string]float64{
	"0.012": 0.5,
	"0.014": 0.8,
	"0.016": 1.2,
	"0.018": 1.8,
	"16x22": 2.5,
	"17x25": 3.0,
	"19x25": 4.5,
	"21x25": 6.0,
}

type WireSpec struct {
	Material     Material     `json:"material"`
	CrossSection CrossSection `json:"cross_section"`
	Size         string       `json:"size"`
}

type BracketConfig struct {
	SlotSize      SlotSize      `json:"slot_size"`
	BracketSystem BracketSystem `json:"bracket_system"`
}

// Setup is the full set of dashboard inputs for one evaluation.
type Setup struct {
	Wire         WireSpec      `json:"wire"`
	Bracket      BracketConfig `json:"bracket"`
	DeflectionMM float64       `json:"deflection_mm"`
}

// Sizes lists the wire sizes offered for a cross-section in a given slot.
// Round sizes do not depend on the slot.
func Sizes(cross CrossSection, slot SlotSize) []string {
	if cross == CrossRound {
		return slices.Clone(roundSizes)
	}
	return slices.Clone(rectangularSizes[slot])
}

// Offered reports whether size is in the catalog for cross and slot.
func Offered(cross CrossSection, slot SlotSize, size string) bool {
	return slices.Contains(Sizes(cross, slot), size)
}

// StiffnessFactor looks up the size multiplier. ok is false when the token is
// unknown and the default factor was used instead.
func StiffnessFactor(size string) (factor float64, ok bool) {
	factor, ok = stiffnessFactors[size]
	if !ok {
		return DefaultStiffnessFactor, false
	}
	return factor, true
}

// SlotClearance is the vertical play between a rectangular wire and the slot,
// formatted in inches. Tokens without AxB dimensions yield ClearanceNA.
func SlotClearance(slot SlotSize, size string) string {
	height, _, ok := rectangularDims(size)
	if !ok || slot.Thou() == 0 {
		return ClearanceNA
	}
	diff, sign := slot.Thou()-height, ""
	if diff < 0 {
		diff, sign = -diff, "-"
	}
	return fmt.Sprintf("%s0.%03d\"", sign, diff)
}

func rectangularDims(size string) (height, width int, ok bool) {
	parts := strings.Split(strings.ToLower(size), "x")
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return h, w, true
}

// NewSetup parses raw form values into a validated Setup.
func NewSetup(slot, bracket, material, cross, size string, deflectionMM float64) (Setup, error) {
	if math.IsNaN(deflectionMM) || math.IsInf(deflectionMM, 0) {
		return Setup{}, fmt.Errorf("%w: %v", ErrInvalidDeflection, deflectionMM)
	}
	s, err := ParseSlot(slot)
	if err != nil {
		return Setup{}, err
	}
	b, err := ParseBracket(bracket)
	if err != nil {
		return Setup{}, err
	}
	m, err := ParseMaterial(material)
	if err != nil {
		return Setup{}, err
	}
	c, err := ParseCrossSection(cross)
	if err != nil {
		return Setup{}, err
	}
	size = strings.TrimSpace(size)
	if !Offered(c, s, size) {
		return Setup{}, fmt.Errorf("%w: %s %s in %s slot", ErrSizeNotOffered, c, size, s)
	}
	return Setup{
		Wire:         WireSpec{Material: m, CrossSection: c, Size: size},
		Bracket:      BracketConfig{SlotSize: s, BracketSystem: b},
		DeflectionMM: deflectionMM,
	}, nil
}
