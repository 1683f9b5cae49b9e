package autodesign

import (
	"net/http"

	"Archwire/internal/calc/curve"
	"Archwire/internal/httpx"
)

type Handler struct {
	Cal curve.Calibration
}

func (h *Handler) Window(w http.ResponseWriter, r *http.Request) {
	var input WindowInput
	if err := httpx.Decode(r, &input); err != nil {
		httpx.BadRequest(w, err)
		return
	}
	res, err := Window(h.Cal.OrDefault(), input)
	if err != nil {
		httpx.BadRequest(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}
