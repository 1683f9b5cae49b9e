package report

import (
	"bytes"
	"net/http"
	"time"

	"Archwire/internal/calc/curve"
	"Archwire/internal/calc/dashboard"
	"Archwire/internal/httpx"
	"Archwire/pkg/metrics"
)

type Handler struct {
	Cal curve.Calibration
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := httpx.Decode(r, &input); err != nil {
		httpx.BadRequest(w, err)
		return
	}
	view, err := dashboard.Calculate(h.Cal.OrDefault(), input.Setup)
	if err != nil {
		httpx.BadRequest(w, err)
		return
	}
	metrics.RecordEvaluation(string(view.Result.ForceStatus), string(view.Result.BindingRisk))

	var buf bytes.Buffer
	if err := Render(&buf, input, view, time.Now()); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"force-report.pdf\"")
	_, _ = w.Write(buf.Bytes())
}
