// Package dashboard turns one evaluation into everything the force dashboard
// shows: setup line, gauge, load-deflection chart and advisories.
package dashboard

import (
	"fmt"

	"Archwire/internal/calc/curve"
	"Archwire/internal/calc/force"
	"Archwire/internal/calc/wire"
)

type Input = force.Input

type View struct {
	Setup         wire.Setup   `json:"setup"`
	Summary       string       `json:"summary"`
	Result        force.Result `json:"result"`
	SlotClearance string       `json:"slot_clearance"`
	Gauge         Gauge        `json:"gauge"`
	Chart         Chart        `json:"chart"`
	Advisories    []Advisory   `json:"advisories"`
}

// Summary is the one-line description shown above the gauge.
func Summary(s wire.Setup) string {
	return fmt.Sprintf("%s %s in %s %s bracket",
		s.Wire.Size, s.Wire.Material.Label(), s.Bracket.SlotSize, s.Bracket.BracketSystem.Label())
}

// Build evaluates s and lays out the dashboard.
func Build(cal curve.Calibration, s wire.Setup) View {
	c, res := force.Calculate(cal, s)
	return View{
		Setup:         s,
		Summary:       Summary(s),
		Result:        res,
		SlotClearance: wire.SlotClearance(s.Bracket.SlotSize, s.Wire.Size),
		Gauge:         NewGauge(res.ForceG),
		Chart: NewChart(s.Wire.Size+" "+s.Wire.Material.Label(), c,
			curve.Point{DeflectionMM: s.DeflectionMM, ForceG: res.ForceG}),
		Advisories: Advise(s, res),
	}
}

// Calculate validates raw controls and builds the view.
func Calculate(cal curve.Calibration, in Input) (View, error) {
	s, err := in.Setup()
	if err != nil {
		return View{}, err
	}
	return Build(cal, s), nil
}
