package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"Archwire/internal/calc/curve"
	"Archwire/internal/calc/dashboard"

	"github.com/xuri/excelize/v2"
)

// Columns expected after the header row.
var Columns = []string{"slot_size", "bracket_system", "material", "cross_section", "size", "deflection_mm"}

var ErrEmptySheet = errors.New("sheet has no data rows")

type Row struct {
	Row   int             `json:"row"`
	View  *dashboard.View `json:"view,omitempty"`
	Error string          `json:"error,omitempty"`
}

type Result struct {
	Count  int   `json:"count"`
	Failed int   `json:"failed"`
	Rows   []Row `json:"rows"`
}

// Read evaluates every data row of the first sheet. Invalid rows are
// reported by spreadsheet row number and do not stop the import.
func Read(cal curve.Calibration, r io.Reader) (Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return Result{}, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return Result{}, ErrEmptySheet
	}

	var out Result
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		row := Row{Row: i + 1}
		input, err := parseRow(rows[i])
		if err == nil {
			var v dashboard.View
			if v, err = dashboard.Calculate(cal, input); err == nil {
				row.View = &v
				out.Count++
			}
		}
		if err != nil {
			row.Error = err.Error()
			out.Failed++
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

func parseRow(row []string) (dashboard.Input, error) {
	if len(row) < len(Columns) {
		return dashboard.Input{}, fmt.Errorf("expected %d columns, got %d", len(Columns), len(row))
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(row[5]), 64)
	if err != nil {
		return dashboard.Input{}, fmt.Errorf("deflection_mm: %w", err)
	}
	return dashboard.Input{
		SlotSize:      row[0],
		BracketSystem: row[1],
		Material:      row[2],
		CrossSection:  row[3],
		Size:          row[4],
		DeflectionMM:  d,
	}, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
