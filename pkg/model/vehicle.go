package model

type VehicleCategory string

const (
	CategoryKart VehicleCategory = "kart"
	CategoryBike VehicleCategory = "bike"
	CategoryATV  VehicleCategory = "atv"
)

// Tag groups vehicles that share an identical StatBlock.
type Vehicle struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Tag      string          `json:"tag"`
	Category VehicleCategory `json:"category"`
	StatBlock
}
