package dashboard

import "Archwire/internal/calc/curve"

// Gauge display constants in grams.
const (
	GaugeMin       = 0.0
	GaugeMax       = 1000.0
	GaugeThreshold = 250.0
)

type Zone string

const (
	ZoneSubOptimal  Zone = "SubOptimal"
	ZonePhysiologic Zone = "Physiologic"
	ZoneWarning     Zone = "Warning"
	ZoneTraumatic   Zone = "Traumatic"
)

type Band struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Zone  Zone    `json:"zone"`
	Color string  `json:"color"`
}

type Gauge struct {
	Title     string  `json:"title"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Value     float64 `json:"value"`
	Zone      Zone    `json:"zone"`
	Threshold float64 `json:"threshold"`
	Bands     []Band  `json:"bands"`
}

// Bands returns the fixed gauge colouring.
func Bands() []Band {
	return []Band{
		{From: 0, To: 50, Zone: ZoneSubOptimal, Color: "lightgray"},
		{From: 50, To: 150, Zone: ZonePhysiologic, Color: "lightgreen"},
		{From: 150, To: 250, Zone: ZoneWarning, Color: "yellow"},
		{From: 250, To: GaugeMax, Zone: ZoneTraumatic, Color: "red"},
	}
}

// ZoneOf maps a force onto a band. Values past the dial stay in the last band.
func ZoneOf(forceG float64) Zone {
	bands := Bands()
	for _, b := range bands {
		if forceG < b.To {
			return b.Zone
		}
	}
	return bands[len(bands)-1].Zone
}

func NewGauge(forceG float64) Gauge {
	return Gauge{
		Title:     "Force on PDL (grams)",
		Min:       GaugeMin,
		Max:       GaugeMax,
		Value:     forceG,
		Zone:      ZoneOf(forceG),
		Threshold: GaugeThreshold,
		Bands:     Bands(),
	}
}

type Chart struct {
	Title  string      `json:"title"`
	XAxis  string      `json:"x_axis"`
	YAxis  string      `json:"y_axis"`
	Series curve.Curve `json:"series"`
	Marker curve.Point `json:"marker"`
}

func NewChart(label string, c curve.Curve, marker curve.Point) Chart {
	return Chart{
		Title:  label,
		XAxis:  "Deflection (mm)",
		YAxis:  "Force (grams)",
		Series: c,
		Marker: marker,
	}
}
