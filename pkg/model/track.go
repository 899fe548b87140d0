package model

// CupUnknown is used when a track name is not present in the cup lookup table.
const CupUnknown = "unknown"

type Track struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Cup             string          `json:"cup"`
	SurfaceCoverage SurfaceCoverage `json:"surfaceCoverage"`
	TerrainCoverage TerrainCoverage `json:"terrainCoverage"`
}

// SurfaceCoverage holds the raw percentage split of a track.
// The five values should sum to roughly 100.
type SurfaceCoverage struct {
	Road    float64 `json:"road"`
	Rough   float64 `json:"rough"`
	Water   float64 `json:"water"`
	Neutral float64 `json:"neutral"`
	OffRoad float64 `json:"offRoad"`
}

// TerrainCoverage is the road/rough/water-only mix of a track,
// renormalized to sum to 100 (or all zero when undefined).
type TerrainCoverage struct {
	Road  float64 `json:"road"`
	Rough float64 `json:"rough"`
	Water float64 `json:"water"`
}
