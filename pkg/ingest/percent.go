package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hiddenvector/mkw-data-api/pkg/model"
)

// ParsePercent parses a raw percentage cell. Absent or empty cells count
// as 0. A trailing '%' is stripped and a decimal comma is accepted
// ("47,5%" -> 47.5) since parts of the sheet use the European convention.
func ParsePercent(cell string) (float64, error) {
	arg := strings.TrimSpace(cell)
	if arg == "" {
		return 0, nil
	}
	arg = strings.TrimSuffix(arg, "%")
	arg = strings.ReplaceAll(arg, ",", ".")
	val, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q: %w", cell, err)
	}
	return val, nil
}

// NormalizeTerrain rescales the adjusted road/rough/water percentages so
// they sum to 100, ignoring the neutral and off-road portions. Values are
// rounded half away from zero to two decimal places, so the result sums to
// 100 up to rounding error. An all-zero input yields an all-zero coverage.
func NormalizeTerrain(road, rough, water float64) model.TerrainCoverage {
	total := road + rough + water
	if total == 0 {
		return model.TerrainCoverage{}
	}
	scale := decimal.NewFromInt(100).Div(decimal.NewFromFloat(total))
	norm := func(v float64) float64 {
		ret, _ := decimal.NewFromFloat(v).Mul(scale).Round(2).Float64()
		return ret
	}
	return model.TerrainCoverage{
		Road:  norm(road),
		Rough: norm(rough),
		Water: norm(water),
	}
}
