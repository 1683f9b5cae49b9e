package batch

import (
	"net/http"

	"Archwire/internal/calc/curve"
	"Archwire/internal/httpx"
	"Archwire/pkg/metrics"
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
	res, err := Calculate(h.Cal.OrDefault(), input)
	if err != nil {
		httpx.BadRequest(w, err)
		return
	}
	for _, v := range res.Results {
		metrics.RecordEvaluation(string(v.Result.ForceStatus), string(v.Result.BindingRisk))
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}
