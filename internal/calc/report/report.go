package report

import (
	"fmt"
	"io"
	"math"
	"time"

	"Archwire/internal/calc/dashboard"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string          `json:"project"`
	Author  string          `json:"author"`
	Title   string          `json:"title"`
	Notes   string          `json:"notes"`
	Setup   dashboard.Input `json:"setup"`
}

// encoded maps the free-text fields onto the cp1252 core fonts.
func (in Input) encoded(tr func(string) string) Input {
	in.Project = tr(in.Project)
	in.Author = tr(in.Author)
	in.Title = tr(in.Title)
	in.Notes = tr(in.Notes)
	return in
}

// chart frame on the page, mm
const (
	chartX = 25.0
	chartW = 160.0
	chartH = 80.0
)

var bandColors = map[dashboard.Zone][3]int{
	dashboard.ZoneSubOptimal:  {211, 211, 211},
	dashboard.ZonePhysiologic: {144, 238, 144},
	dashboard.ZoneWarning:     {255, 255, 0},
	dashboard.ZoneTraumatic:   {255, 0, 0},
}

var levelColors = map[dashboard.Level][3]int{
	dashboard.LevelSuccess: {0, 128, 0},
	dashboard.LevelInfo:    {0, 70, 140},
	dashboard.LevelWarning: {180, 120, 0},
	dashboard.LevelError:   {200, 0, 0},
}

// Render writes a one-page PDF report for v.
func Render(w io.Writer, in Input, v dashboard.View, now time.Time) error {
	if in.Title == "" {
		in.Title = "Orthodontic Force Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(in.Title, true)
	pdf.SetAuthor(in.Author, true)
	in = in.encoded(pdf.UnicodeTranslatorFromDescriptor(""))
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Setup: "+v.Summary)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	rows := [][2]string{
		{"Deflection", fmt.Sprintf("%.1f mm", v.Setup.DeflectionMM)},
		{"Active force", fmt.Sprintf("%.1f g", v.Result.ForceG)},
		{"Force status", string(v.Result.ForceStatus)},
		{"Binding risk", string(v.Result.BindingRisk)},
		{"Slot clearance", v.SlotClearance},
	}
	for _, r := range rows {
		pdf.CellFormat(45, 6, r[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, r[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	drawGauge(pdf, v.Gauge)
	pdf.Ln(6)
	drawChart(pdf, v.Chart)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Advisories")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, a := range v.Advisories {
		c := levelColors[a.Level]
		pdf.SetTextColor(c[0], c[1], c[2])
		pdf.MultiCell(0, 5, fmt.Sprintf("[%s] %s", a.Code, a.Message), "", "L", false)
	}
	pdf.SetTextColor(0, 0, 0)

	if in.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Notes")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, in.Notes, "", "L", false)
	}
	return pdf.Output(w)
}

// drawGauge renders the gauge as a horizontal banded bar with the
// threshold and current force marked.
func drawGauge(pdf *gofpdf.Fpdf, g dashboard.Gauge) {
	y := pdf.GetY()
	scale := chartW / (g.Max - g.Min)
	for _, b := range g.Bands {
		c := bandColors[b.Zone]
		pdf.SetFillColor(c[0], c[1], c[2])
		pdf.Rect(chartX+(b.From-g.Min)*scale, y, (b.To-b.From)*scale, 6, "F")
	}
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.8)
	tx := chartX + (g.Threshold-g.Min)*scale
	pdf.Line(tx, y-1, tx, y+7)

	vx := chartX + (math.Min(math.Max(g.Value, g.Min), g.Max)-g.Min)*scale
	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(vx, y-2, vx, y+8)
	pdf.SetLineWidth(0.2)

	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(chartX, y+11, fmt.Sprintf("%.0f g", g.Min))
	pdf.Text(chartX+chartW-12, y+11, fmt.Sprintf("%.0f g", g.Max))
	pdf.Text(vx+1, y-3, fmt.Sprintf("%.1f g", g.Value))
	pdf.SetY(y + 12)
}

// drawChart plots the load-deflection series and the current point.
func drawChart(pdf *gofpdf.Fpdf, ch dashboard.Chart) {
	top := pdf.GetY()
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(chartX, top+4, "Load-Deflection Curve: "+ch.Title)
	top += 8

	maxX, maxY := 0.0, 0.0
	for _, p := range ch.Series {
		maxX = math.Max(maxX, p.DeflectionMM)
		maxY = math.Max(maxY, p.ForceG)
	}
	maxY = math.Max(maxY, ch.Marker.ForceG)
	if maxX == 0 {
		maxX = 1
	}
	if maxY == 0 {
		maxY = 1
	}
	px := func(d float64) float64 { return chartX + math.Min(d, maxX)/maxX*chartW }
	py := func(f float64) float64 { return top + chartH - f/maxY*chartH }

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	pdf.Line(chartX, top, chartX, top+chartH)
	pdf.Line(chartX, top+chartH, chartX+chartW, top+chartH)

	pdf.SetDrawColor(0, 0, 255)
	pdf.SetLineWidth(0.6)
	for i := 1; i < len(ch.Series); i++ {
		a, b := ch.Series[i-1], ch.Series[i]
		pdf.Line(px(a.DeflectionMM), py(a.ForceG), px(b.DeflectionMM), py(b.ForceG))
	}
	pdf.SetFillColor(255, 0, 0)
	pdf.Circle(px(math.Max(ch.Marker.DeflectionMM, 0)), py(ch.Marker.ForceG), 1.5, "F")

	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(chartX+chartW/2-10, top+chartH+5, ch.XAxis)
	pdf.Text(chartX-12, top-1, ch.YAxis)
	pdf.Text(chartX-10, top+3, fmt.Sprintf("%.0f", maxY))
	pdf.Text(chartX+chartW-4, top+chartH+5, fmt.Sprintf("%.1f", maxX))
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.SetY(top + chartH + 10)
}
