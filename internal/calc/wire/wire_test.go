package wire_test

import (
	"errors"
	"math"
	"testing"

	"Archwire/internal/calc/wire"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCatalog(t *testing.T) {
	Convey("Given the wire size catalog", t, func() {
		Convey("Round sizes are the same in both slots", func() {
			So(wire.Sizes(wire.CrossRound, wire.Slot018), ShouldResemble, []string{"0.012", "0.014", "0.016", "0.018"})
			So(wire.Sizes(wire.CrossRound, wire.Slot022), ShouldResemble, wire.Sizes(wire.CrossRound, wire.Slot018))
		})

		Convey("Rectangular sizes depend on the slot", func() {
			So(wire.Sizes(wire.CrossRectangular, wire.Slot018), ShouldResemble, []string{"16x22", "17x25"})
			So(wire.Sizes(wire.CrossRectangular, wire.Slot022), ShouldResemble, []string{"16x22", "17x25", "19x25", "21x25"})
			So(wire.Offered(wire.CrossRectangular, wire.Slot018, "19x25"), ShouldBeFalse)
		})

		Convey("Returned slices are copies", func() {
			sizes := wire.Sizes(wire.CrossRound, wire.Slot022)
			sizes[0] = "mutated"
			So(wire.Sizes(wire.CrossRound, wire.Slot022)[0], ShouldEqual, "0.012")
		})

		Convey("Every offered size has a stiffness factor", func() {
			for _, slot := range wire.Slots {
				for _, cross := range wire.CrossSections {
					for _, size := range wire.Sizes(cross, slot) {
						_, ok := wire.StiffnessFactor(size)
						So(ok, ShouldBeTrue)
					}
				}
			}
		})

		Convey("Factors ascend with gauge within each family", func() {
			prev := 0.0
			for _, size := range []string{"0.012", "0.014", "0.016", "0.018"} {
				f, _ := wire.StiffnessFactor(size)
				So(f, ShouldBeGreaterThan, prev)
				prev = f
			}
			prev = 0.0
			for _, size := range []string{"16x22", "17x25", "19x25", "21x25"} {
				f, _ := wire.StiffnessFactor(size)
				So(f, ShouldBeGreaterThan, prev)
				prev = f
			}
		})

		Convey("Unknown sizes fall back to the default factor", func() {
			f, ok := wire.StiffnessFactor("0.020")
			So(ok, ShouldBeFalse)
			So(f, ShouldEqual, wire.DefaultStiffnessFactor)
		})
	})
}

func TestSlotClearance(t *testing.T) {
	Convey("Given a slot clearance lookup", t, func() {
		So(wire.SlotClearance(wire.Slot022, "16x22"), ShouldEqual, `0.006"`)
		So(wire.SlotClearance(wire.Slot018, "16x22"), ShouldEqual, `0.002"`)
		So(wire.SlotClearance(wire.Slot022, "21x25"), ShouldEqual, `0.001"`)
		So(wire.SlotClearance(wire.Slot018, "21x25"), ShouldEqual, `-0.003"`)

		Convey("Round and malformed tokens yield the sentinel", func() {
			So(wire.SlotClearance(wire.Slot022, "0.016"), ShouldEqual, wire.ClearanceNA)
			So(wire.SlotClearance(wire.Slot022, "axb"), ShouldEqual, wire.ClearanceNA)
			So(wire.SlotClearance(wire.Slot022, "16x22x1"), ShouldEqual, wire.ClearanceNA)
			So(wire.SlotClearance(wire.SlotSize("0.030"), "16x22"), ShouldEqual, wire.ClearanceNA)
		})
	})
}

func TestNewSetup(t *testing.T) {
	Convey("Given raw dashboard values", t, func() {
		Convey("Labels and codes are both accepted", func() {
			s, err := wire.NewSetup("0.022", "Conventional (Elastic)", "Stainless Steel (SS)", "rectangular", "19x25", 1.5)
			So(err, ShouldBeNil)
			So(s.Wire.Material, ShouldEqual, wire.MaterialSS)
			So(s.Wire.CrossSection, ShouldEqual, wire.CrossRectangular)
			So(s.Bracket.SlotSize, ShouldEqual, wire.Slot022)
			So(s.Bracket.BracketSystem, ShouldEqual, wire.BracketConventional)
			So(s.DeflectionMM, ShouldEqual, 1.5)
		})

		Convey("A leading-dot slot is normalised", func() {
			s, err := wire.NewSetup(".018", "ActiveSelfLigating", "NiTi", "Round", "0.014", 0)
			So(err, ShouldBeNil)
			So(s.Bracket.SlotSize, ShouldEqual, wire.Slot018)
		})

		Convey("Unknown enums are rejected with sentinels", func() {
			_, err := wire.NewSetup("0.020", "Conventional", "NiTi", "Round", "0.014", 0)
			So(errors.Is(err, wire.ErrUnknownSlot), ShouldBeTrue)
			_, err = wire.NewSetup("0.022", "Lingual", "NiTi", "Round", "0.014", 0)
			So(errors.Is(err, wire.ErrUnknownBracket), ShouldBeTrue)
			_, err = wire.NewSetup("0.022", "Conventional", "Gold", "Round", "0.014", 0)
			So(errors.Is(err, wire.ErrUnknownMaterial), ShouldBeTrue)
			_, err = wire.NewSetup("0.022", "Conventional", "NiTi", "Square", "0.014", 0)
			So(errors.Is(err, wire.ErrUnknownCrossSection), ShouldBeTrue)
		})

		Convey("Sizes outside the conditioned catalog are rejected", func() {
			_, err := wire.NewSetup("0.018", "Conventional", "SS", "Rectangular", "21x25", 0)
			So(errors.Is(err, wire.ErrSizeNotOffered), ShouldBeTrue)
			_, err = wire.NewSetup("0.022", "Conventional", "SS", "Round", "16x22", 0)
			So(errors.Is(err, wire.ErrSizeNotOffered), ShouldBeTrue)
		})

		Convey("Non-finite deflections are rejected", func() {
			for _, d := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
				_, err := wire.NewSetup("0.022", "Conventional", "NiTi", "Round", "0.016", d)
				So(errors.Is(err, wire.ErrInvalidDeflection), ShouldBeTrue)
			}
		})
	})
}

func TestLabels(t *testing.T) {
	Convey("Materials and brackets have display labels", t, func() {
		So(wire.MaterialSS.Label(), ShouldEqual, "Stainless Steel (SS)")
		So(wire.Material("Unobtainium").Label(), ShouldEqual, "Unobtainium")
		So(wire.BracketPassiveSelfLigating.Label(), ShouldEqual, "Passive Self-Ligating")
		So(wire.MaterialCuNiTi.Superelastic(), ShouldBeTrue)
		So(wire.MaterialTMA.Superelastic(), ShouldBeFalse)
	})
}
