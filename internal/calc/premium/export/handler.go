package export

import (
	"bytes"
	"net/http"

	"Archwire/internal/calc/curve"
	"Archwire/internal/calc/dashboard"
	"Archwire/internal/httpx"
	"Archwire/pkg/metrics"
)

type Handler struct {
	Cal curve.Calibration
}

func (h *Handler) Workbook(w http.ResponseWriter, r *http.Request) {
	var input dashboard.Input
	if err := httpx.Decode(r, &input); err != nil {
		httpx.BadRequest(w, err)
		return
	}
	view, err := dashboard.Calculate(h.Cal.OrDefault(), input)
	if err != nil {
		httpx.BadRequest(w, err)
		return
	}
	metrics.RecordEvaluation(string(view.Result.ForceStatus), string(view.Result.BindingRisk))

	var buf bytes.Buffer
	if err := Write(&buf, view); err != nil {
		http.Error(w, "Workbook generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"force-curve.xlsx\"")
	_, _ = w.Write(buf.Bytes())
}
