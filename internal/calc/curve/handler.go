package curve

import (
	"net/http"

	"Archwire/internal/calc/wire"
	"Archwire/internal/httpx"
)

type Handler struct {
	Cal Calibration
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := httpx.Decode(r, &input); err != nil {
		httpx.BadRequest(w, err)
		return
	}
	m, err := wire.ParseMaterial(string(input.Material))
	if err != nil {
		httpx.BadRequest(w, err)
		return
	}
	input.Material = m
	httpx.WriteJSON(w, http.StatusOK, h.Cal.OrDefault().Calculate(input))
}
