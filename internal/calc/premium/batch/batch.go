package batch

import (
	"errors"
	"fmt"

	"Archwire/internal/calc/curve"
	"Archwire/internal/calc/dashboard"
)

// MaxItems bounds one batch request.
const MaxItems = 200

var (
	ErrNoItems = errors.New("no items")
	ErrTooMany = fmt.Errorf("more than %d items", MaxItems)
)

type Input struct {
	Items []dashboard.Input `json:"items"`
}

type Result struct {
	Results []dashboard.View `json:"results"`
}

// Calculate evaluates every item, failing on the first invalid one.
func Calculate(cal curve.Calibration, in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, ErrNoItems
	}
	if len(in.Items) > MaxItems {
		return Result{}, ErrTooMany
	}
	out := Result{Results: make([]dashboard.View, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := dashboard.Calculate(cal, item)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
