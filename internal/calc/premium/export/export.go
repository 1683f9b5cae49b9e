package export

import (
	"fmt"
	"io"

	"Archwire/internal/calc/curve"
	"Archwire/internal/calc/dashboard"

	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "Summary"
	CurveSheet   = "Curve"
)

// Write renders a dashboard view as a workbook: a summary sheet with the
// setup and evaluation, and the sampled load-deflection curve.
func Write(w io.Writer, v dashboard.View) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return err
	}
	summary := [][]any{
		{"Setup", v.Summary},
		{"Slot size", string(v.Setup.Bracket.SlotSize)},
		{"Bracket system", v.Setup.Bracket.BracketSystem.Label()},
		{"Material", v.Setup.Wire.Material.Label()},
		{"Cross-section", string(v.Setup.Wire.CrossSection)},
		{"Size", v.Setup.Wire.Size},
		{"Deflection (mm)", v.Setup.DeflectionMM},
		{"Force (g)", v.Result.ForceG},
		{"Force status", string(v.Result.ForceStatus)},
		{"Binding risk", string(v.Result.BindingRisk)},
		{"Slot clearance", v.SlotClearance},
	}
	for i, row := range summary {
		if err := f.SetSheetRow(SummarySheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(CurveSheet); err != nil {
		return err
	}
	if err := writeCurve(f, v.Chart.Series); err != nil {
		return err
	}
	_, err := f.WriteTo(w)
	return err
}

func writeCurve(f *excelize.File, c curve.Curve) error {
	header := []any{"Deflection (mm)", "Force (g)"}
	if err := f.SetSheetRow(CurveSheet, "A1", &header); err != nil {
		return err
	}
	for i, p := range c {
		row := []any{p.DeflectionMM, p.ForceG}
		if err := f.SetSheetRow(CurveSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}
