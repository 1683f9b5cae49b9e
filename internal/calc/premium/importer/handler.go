package importer

import (
	"errors"
	"net/http"

	"Archwire/internal/calc/curve"
	"Archwire/internal/httpx"
	"Archwire/pkg/metrics"
)

type Handler struct {
	Cal curve.Calibration
}

func (h *Handler) Setups(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.WriteError(w, http.StatusRequestEntityTooLarge, "too_large", err)
			return
		}
		httpx.WriteError(w, http.StatusBadRequest, "file_required", err)
		return
	}
	defer file.Close()

	res, err := Read(h.Cal.OrDefault(), file)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_file", err)
		return
	}
	for _, row := range res.Rows {
		if row.View != nil {
			metrics.RecordEvaluation(string(row.View.Result.ForceStatus), string(row.View.Result.BindingRisk))
		}
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}
