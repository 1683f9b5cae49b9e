package recommend_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Archwire/internal/calc/curve"
	"Archwire/internal/calc/force"
	"Archwire/internal/calc/premium/recommend"
	"Archwire/internal/calc/wire"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWires(t *testing.T) {
	cal := curve.DefaultCalibration()

	Convey("Given a 0.022 conventional bracket at 1.5mm", t, func() {
		res, err := recommend.Wires(cal, recommend.Input{
			SlotSize:      "0.022",
			BracketSystem: "Conventional",
			DeflectionMM:  1.5,
		})
		So(err, ShouldBeNil)
		So(len(res.Candidates), ShouldBeGreaterThan, 0)

		Convey("Every candidate is physiologic", func() {
			for _, c := range res.Candidates {
				So(c.Result.ForceStatus, ShouldEqual, force.StatusPhysiologic)
			}
		})

		Convey("Candidates are ordered by binding then by distance to 100g", func() {
			for i := 1; i < len(res.Candidates); i++ {
				a, b := res.Candidates[i-1], res.Candidates[i]
				if a.Result.BindingRisk == b.Result.BindingRisk {
					So(a.Deviation, ShouldBeLessThanOrEqualTo, b.Deviation)
				}
			}
			So(res.Candidates[0].Wire, ShouldResemble, wire.WireSpec{
				Material: wire.MaterialNiTi, CrossSection: wire.CrossRound, Size: "0.016",
			})
		})
	})

	Convey("Given a material filter", t, func() {
		res, err := recommend.Wires(cal, recommend.Input{
			SlotSize:      "0.022",
			BracketSystem: "Conventional",
			Material:      "TMA",
			DeflectionMM:  1.5,
		})
		So(err, ShouldBeNil)
		So(len(res.Candidates), ShouldEqual, 2)
		for _, c := range res.Candidates {
			So(c.Wire.Material, ShouldEqual, wire.MaterialTMA)
		}
	})

	Convey("Given a deflection no wire can serve", t, func() {
		res, err := recommend.Wires(cal, recommend.Input{
			SlotSize:      "0.018",
			BracketSystem: "PassiveSelfLigating",
			DeflectionMM:  0,
		})
		So(err, ShouldBeNil)
		So(res.Candidates, ShouldBeEmpty)
	})

	Convey("Given unknown controls", t, func() {
		_, err := recommend.Wires(cal, recommend.Input{SlotSize: "0.020", BracketSystem: "Conventional"})
		So(err, ShouldNotBeNil)
		_, err = recommend.Wires(cal, recommend.Input{SlotSize: "0.022", BracketSystem: "Conventional", Material: "Gold"})
		So(err, ShouldNotBeNil)
	})
}

func TestHandler(t *testing.T) {
	Convey("Given the recommend handler", t, func() {
		h := &recommend.Handler{}
		w := httptest.NewRecorder()
		body := `{"slot_size":"0.022","bracket_system":"Conventional","deflection_mm":1.5,"target_g":60}`
		h.Wire(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

		So(w.Code, ShouldEqual, http.StatusOK)
		var res recommend.Result
		So(json.Unmarshal(w.Body.Bytes(), &res), ShouldBeNil)
		So(res.Candidates[0].Deviation, ShouldBeLessThan, 10)
	})
}
