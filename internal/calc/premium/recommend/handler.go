package recommend

import (
	"net/http"

	"Archwire/internal/calc/curve"
	"Archwire/internal/httpx"
)

type Handler struct {
	Cal curve.Calibration
}

func (h *Handler) Wire(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := httpx.Decode(r, &input); err != nil {
		httpx.BadRequest(w, err)
		return
	}
	res, err := Wires(h.Cal.OrDefault(), input)
	if err != nil {
		httpx.BadRequest(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}
