package dashboard

import (
	"net/http"

	"Archwire/internal/calc/curve"
	"Archwire/internal/calc/wire"
	"Archwire/internal/httpx"
	"Archwire/pkg/metrics"
)

// Deflection slider bounds, in millimetres.
const (
	SliderMin     = 0.0
	SliderMax     = curve.MaxDeflectionMM
	SliderStep    = 0.1
	SliderDefault = 1.5
)

type Handler struct {
	Cal curve.Calibration
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := httpx.Decode(r, &input); err != nil {
		httpx.BadRequest(w, err)
		return
	}
	view, err := Calculate(h.Cal.OrDefault(), input)
	if err != nil {
		httpx.BadRequest(w, err)
		return
	}
	metrics.RecordEvaluation(string(view.Result.ForceStatus), string(view.Result.BindingRisk))
	httpx.WriteJSON(w, http.StatusOK, view)
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Slider struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

type Catalog struct {
	Slots          []Option `json:"slot_sizes"`
	BracketSystems []Option `json:"bracket_systems"`
	Materials      []Option `json:"materials"`
	CrossSections  []Option `json:"cross_sections"`
	Sizes          []string `json:"sizes"`
	Deflection     Slider   `json:"deflection"`
}

// NewCatalog lists the control options. Sizes follow the chosen
// cross-section and slot.
func NewCatalog(cross wire.CrossSection, slot wire.SlotSize) Catalog {
	c := Catalog{
		Sizes:      wire.Sizes(cross, slot),
		Deflection: Slider{Min: SliderMin, Max: SliderMax, Step: SliderStep, Default: SliderDefault},
	}
	for _, s := range wire.Slots {
		c.Slots = append(c.Slots, Option{Value: string(s), Label: string(s)})
	}
	for _, b := range wire.BracketSystems {
		c.BracketSystems = append(c.BracketSystems, Option{Value: string(b), Label: b.Label()})
	}
	for _, m := range wire.Materials {
		c.Materials = append(c.Materials, Option{Value: string(m), Label: m.Label()})
	}
	for _, x := range wire.CrossSections {
		c.CrossSections = append(c.CrossSections, Option{Value: string(x), Label: string(x)})
	}
	return c
}

// Catalog answers GET /catalog?cross_section=&slot_size=. Missing values
// default to the first option of each control.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	cross, slot := wire.CrossSections[0], wire.Slots[0]
	if v := r.URL.Query().Get("cross_section"); v != "" {
		c, err := wire.ParseCrossSection(v)
		if err != nil {
			httpx.BadRequest(w, err)
			return
		}
		cross = c
	}
	if v := r.URL.Query().Get("slot_size"); v != "" {
		s, err := wire.ParseSlot(v)
		if err != nil {
			httpx.BadRequest(w, err)
			return
		}
		slot = s
	}
	httpx.WriteJSON(w, http.StatusOK, NewCatalog(cross, slot))
}
