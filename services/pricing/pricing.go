// Package pricing computes booking totals. All functions are pure.
package pricing

import (
	"math"

	"fieldserve/models"
)

// ComputeTotal returns the booking total: base price plus the sum of all
// extra task prices, rounded to the currency's minor unit.
func ComputeTotal(basePrice float64, extras []models.ExtraTask) float64 {
	total := basePrice
	for _, t := range extras {
		total += t.Price
	}
	return roundMinorUnit(total)
}

func roundMinorUnit(v float64) float64 {
	return math.Round(v*100) / 100
}
