// Command forcecalc evaluates one wire setup from the terminal.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"Archwire/internal/calc/curve"
	"Archwire/internal/calc/dashboard"
	"Archwire/internal/config"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("forcecalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	slot := fs.String("slot", "0.022", "bracket slot size: 0.018 or 0.022")
	bracket := fs.String("bracket", "Conventional", "Conventional, PassiveSelfLigating or ActiveSelfLigating")
	material := fs.String("material", "NiTi", "SS, NiTi, CuNiTi, TMA, Elgiloy or MultiStrand")
	cross := fs.String("cross", "Round", "Round or Rectangular")
	size := fs.String("size", "0.012", "wire size token, e.g. 0.016 or 19x25")
	deflection := fs.Float64("deflection", dashboard.SliderDefault, "activation in mm")
	jsonOut := fs.Bool("json", false, "output as JSON instead of text")
	withCurve := fs.Bool("curve", false, "append the sampled load-deflection curve")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}

	view, err := dashboard.Calculate(cfg.Calibration, dashboard.Input{
		SlotSize:      *slot,
		BracketSystem: *bracket,
		Material:      *material,
		CrossSection:  *cross,
		Size:          *size,
		DeflectionMM:  *deflection,
	})
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if *jsonOut {
		if !*withCurve {
			view.Chart.Series = nil
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(view); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}
	printView(stdout, view, *withCurve)
	return 0
}

func printView(w io.Writer, v dashboard.View, withCurve bool) {
	fmt.Fprintf(w, "Current Setup: %s\n", v.Summary)
	fmt.Fprintf(w, "%-16s %.1f mm\n", "Deflection", v.Setup.DeflectionMM)
	fmt.Fprintf(w, "%-16s %.1f g\n", "Active force", v.Result.ForceG)
	fmt.Fprintf(w, "%-16s %s\n", "Force status", v.Result.ForceStatus)
	fmt.Fprintf(w, "%-16s %s\n", "Binding risk", v.Result.BindingRisk)
	fmt.Fprintf(w, "%-16s %s\n", "Slot clearance", v.SlotClearance)

	if len(v.Advisories) > 0 {
		fmt.Fprintln(w)
		for _, a := range v.Advisories {
			fmt.Fprintf(w, "[%s] %-7s %s\n", a.Code, a.Level, a.Message)
		}
	}
	if withCurve {
		printCurve(w, v.Chart.Series)
	}
}

func printCurve(w io.Writer, c curve.Curve) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%15s  %10s\n", "Deflection (mm)", "Force (g)")
	fmt.Fprintf(w, "%15s  %10s\n", "---------------", "----------")
	for _, p := range c {
		fmt.Fprintf(w, "%15.3f  %10.2f\n", p.DeflectionMM, p.ForceG)
	}
}
