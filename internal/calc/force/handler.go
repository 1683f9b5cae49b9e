package force

import (
	"net/http"

	"Archwire/internal/calc/curve"
	"Archwire/internal/calc/wire"
	"Archwire/internal/httpx"
	"Archwire/pkg/metrics"
)

// Input is the six dashboard controls as sent by a client.
type Input struct {
	SlotSize      string  `json:"slot_size"`
	BracketSystem string  `json:"bracket_system"`
	Material      string  `json:"material"`
	CrossSection  string  `json:"cross_section"`
	Size          string  `json:"size"`
	DeflectionMM  float64 `json:"deflection_mm"`
}

// Setup validates the raw controls.
func (in Input) Setup() (wire.Setup, error) {
	return wire.NewSetup(in.SlotSize, in.BracketSystem, in.Material, in.CrossSection, in.Size, in.DeflectionMM)
}

type Handler struct {
	Cal curve.Calibration
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := httpx.Decode(r, &input); err != nil {
		httpx.BadRequest(w, err)
		return
	}
	s, err := input.Setup()
	if err != nil {
		httpx.BadRequest(w, err)
		return
	}
	_, res := Calculate(h.Cal.OrDefault(), s)
	metrics.RecordEvaluation(string(res.ForceStatus), string(res.BindingRisk))
	httpx.WriteJSON(w, http.StatusOK, res)
}
