package force_test

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Archwire/internal/calc/curve"
	"Archwire/internal/calc/force"
	"Archwire/internal/calc/wire"
	"Archwire/pkg/metrics"

	. "github.com/smartystreets/goconvey/convey"
)

var (
	round016 = wire.WireSpec{Material: wire.MaterialNiTi, CrossSection: wire.CrossRound, Size: "0.016"}
	slot022  = wire.BracketConfig{SlotSize: wire.Slot022, BracketSystem: wire.BracketConventional}
	slot018  = wire.BracketConfig{SlotSize: wire.Slot018, BracketSystem: wire.BracketConventional}
)

func rect(size string) wire.WireSpec {
	return wire.WireSpec{Material: wire.MaterialSS, CrossSection: wire.CrossRectangular, Size: size}
}

func TestInterpolate(t *testing.T) {
	Convey("Given a generated curve", t, func() {
		c := curve.Generate(wire.MaterialNiTi, "0.016", curve.MaxDeflectionMM)

		Convey("Sample points are returned unchanged", func() {
			for _, p := range c {
				So(force.Interpolate(c, p.DeflectionMM), ShouldAlmostEqual, p.ForceG, 1e-9)
			}
		})

		Convey("Values outside the domain are clamped", func() {
			So(force.Interpolate(c, -1), ShouldEqual, force.Interpolate(c, 0))
			So(force.Interpolate(c, 10), ShouldEqual, force.Interpolate(c, 4.0))
		})

		Convey("NaN reads as the unloaded end", func() {
			So(force.Interpolate(c, math.NaN()), ShouldEqual, c[0].ForceG)
		})

		Convey("Midpoints lie on the chord", func() {
			a, b := c[10], c[11]
			mid := (a.DeflectionMM + b.DeflectionMM) / 2
			So(force.Interpolate(c, mid), ShouldAlmostEqual, (a.ForceG+b.ForceG)/2, 1e-9)
		})

		Convey("Force never decreases as deflection grows", func() {
			prev := -1.0
			for d := -0.5; d <= 4.5; d += 0.01 {
				f := force.Interpolate(c, d)
				So(f, ShouldBeGreaterThanOrEqualTo, prev)
				prev = f
			}
		})
	})

	Convey("Given degenerate curves", t, func() {
		So(force.Interpolate(nil, 1), ShouldEqual, 0)
		single := curve.Curve{{DeflectionMM: 1, ForceG: 42}}
		So(force.Interpolate(single, 0), ShouldEqual, 42)
		So(force.Interpolate(single, 3), ShouldEqual, 42)
	})
}

func TestEvaluate(t *testing.T) {
	Convey("Given NiTi 0.016 at 2.0 mm", t, func() {
		c := curve.Generate(wire.MaterialNiTi, "0.016", curve.MaxDeflectionMM)
		res := force.Evaluate(c, slot022, round016, 2.0)

		Convey("Force matches the closed-form law", func() {
			want := 80 * 1.2 * (1 - math.Exp(-2.5*2.0))
			So(res.ForceG, ShouldAlmostEqual, want, 1e-2)
		})

		Convey("Risk and status are classified", func() {
			So(res.BindingRisk, ShouldEqual, force.RiskLow)
			So(res.ForceStatus, ShouldEqual, force.StatusPhysiologic)
		})
	})

	Convey("Given identical inputs", t, func() {
		c := curve.Generate(wire.MaterialSS, "16x22", curve.MaxDeflectionMM)
		a := force.Evaluate(c, slot022, rect("16x22"), 0.3)
		b := force.Evaluate(c, slot022, rect("16x22"), 0.3)
		So(a, ShouldResemble, b)
	})

	Convey("Given a full setup", t, func() {
		s, err := wire.NewSetup("0.022", "Conventional", "SS", "Rectangular", "21x25", 1.5)
		So(err, ShouldBeNil)
		c, res := force.Calculate(curve.DefaultCalibration(), s)
		So(len(c), ShouldEqual, curve.Samples)
		So(res.ForceG, ShouldAlmostEqual, 150*6.0*1.5, 1e-6)
		So(res.BindingRisk, ShouldEqual, force.RiskHigh)
		So(res.ForceStatus, ShouldEqual, force.StatusTraumatic)
	})
}

func TestClassifyBinding(t *testing.T) {
	Convey("Given binding risk precedence", t, func() {
		Convey("Large wires in a 0.022 slot bind regardless of ligation", func() {
			for _, b := range wire.BracketSystems {
				cfg := wire.BracketConfig{SlotSize: wire.Slot022, BracketSystem: b}
				So(force.ClassifyBinding(cfg, rect("21x25")), ShouldEqual, force.RiskHigh)
				So(force.ClassifyBinding(cfg, rect("19x25")), ShouldEqual, force.RiskHigh)
			}
		})

		Convey("17x25 binds in a 0.018 slot but not in a 0.022 slot", func() {
			So(force.ClassifyBinding(slot018, rect("17x25")), ShouldEqual, force.RiskHigh)
			So(force.ClassifyBinding(slot022, rect("17x25")), ShouldEqual, force.RiskModerate)
		})

		Convey("Other rectangular wires are moderate", func() {
			So(force.ClassifyBinding(slot018, rect("16x22")), ShouldEqual, force.RiskModerate)
			So(force.ClassifyBinding(slot022, rect("16x22")), ShouldEqual, force.RiskModerate)
		})

		Convey("Round wires are low", func() {
			for _, size := range wire.Sizes(wire.CrossRound, wire.Slot018) {
				spec := wire.WireSpec{Material: wire.MaterialSS, CrossSection: wire.CrossRound, Size: size}
				So(force.ClassifyBinding(slot018, spec), ShouldEqual, force.RiskLow)
				So(force.ClassifyBinding(slot022, spec), ShouldEqual, force.RiskLow)
			}
			odd := wire.WireSpec{Material: wire.MaterialSS, CrossSection: wire.CrossRound, Size: "21x25"}
			So(force.ClassifyBinding(slot022, odd), ShouldEqual, force.RiskLow)
		})
	})
}

func TestClassifyForce(t *testing.T) {
	Convey("Given force status boundaries", t, func() {
		So(force.ClassifyForce(50), ShouldEqual, force.StatusPhysiologic)
		So(force.ClassifyForce(150), ShouldEqual, force.StatusPhysiologic)
		So(force.ClassifyForce(49.999), ShouldEqual, force.StatusSubOptimal)
		So(force.ClassifyForce(150.001), ShouldEqual, force.StatusTraumatic)
		So(force.ClassifyForce(0), ShouldEqual, force.StatusSubOptimal)
	})
}

// evaluations sums every series of the evaluation counter.
func evaluations() float64 {
	families, err := metrics.GetRegistry().Gather()
	if err != nil {
		return -1
	}
	total := 0.0
	for _, f := range families {
		if f.GetName() != "archwire_evaluations_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func TestHandler(t *testing.T) {
	Convey("Given the force handler", t, func() {
		h := &force.Handler{}

		Convey("A valid setup is evaluated", func() {
			body := `{"slot_size":"0.018","bracket_system":"PassiveSelfLigating","material":"TMA","cross_section":"Rectangular","size":"17x25","deflection_mm":0.2}`
			w := httptest.NewRecorder()
			h.Calc(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

			So(w.Code, ShouldEqual, http.StatusOK)
			var res force.Result
			So(json.Unmarshal(w.Body.Bytes(), &res), ShouldBeNil)
			So(res.BindingRisk, ShouldEqual, force.RiskHigh)
		})

		Convey("Each evaluation is counted", func() {
			before := evaluations()
			body := `{"slot_size":"0.022","bracket_system":"Conventional","material":"NiTi","cross_section":"Round","size":"0.014","deflection_mm":1}`
			h.Calc(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
			So(evaluations(), ShouldEqual, before+1)
		})

		Convey("A size not offered for the slot is rejected", func() {
			body := `{"slot_size":"0.018","bracket_system":"Conventional","material":"TMA","cross_section":"Rectangular","size":"21x25","deflection_mm":1}`
			w := httptest.NewRecorder()
			h.Calc(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}
