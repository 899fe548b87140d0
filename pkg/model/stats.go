package model

// StatBlock holds the ten performance values of a character or vehicle.
// All values are integers on the 0-20 scale used by the source sheet.
type StatBlock struct {
	Speed        TerrainStats `json:"speed"`
	Handling     TerrainStats `json:"handling"`
	Acceleration int          `json:"acceleration"`
	MiniTurbo    int          `json:"miniTurbo"`
	Weight       int          `json:"weight"`
	CoinCurve    int          `json:"coinCurve"`
}

type TerrainStats struct {
	Road  int `json:"road"`
	Rough int `json:"rough"`
	Water int `json:"water"`
}

const (
	StatMin = 0
	StatMax = 20
)
