package basedata

import (
	"github.com/hiddenvector/mkw-data-api/pkg/dataset"
	"github.com/hiddenvector/mkw-data-api/pkg/model"
)

const SampleVersion = "2026-08-31"

func SampleStats() model.StatBlock {
	return model.StatBlock{
		Speed:        model.TerrainStats{Road: 8, Rough: 6, Water: 5},
		Handling:     model.TerrainStats{Road: 7, Rough: 6, Water: 6},
		Acceleration: 5,
		MiniTurbo:    4,
		Weight:       9,
		CoinCurve:    3,
	}
}

func SampleCharacter() model.Character {
	return model.Character{
		ID:        "mario",
		Name:      "Mario",
		StatBlock: SampleStats(),
	}
}

func SampleVehicle() model.Vehicle {
	return model.Vehicle{
		ID:        "standard-kart",
		Name:      "Standard Kart",
		Tag:       "all-rounder",
		Category:  model.CategoryKart,
		StatBlock: SampleStats(),
	}
}

func SampleTrack() model.Track {
	return model.Track{
		ID:   "mario-bros-circuit",
		Name: "Mario Bros. Circuit",
		Cup:  "Mushroom Cup",
		SurfaceCoverage: model.SurfaceCoverage{
			Road:    80,
			Rough:   5,
			Water:   0,
			Neutral: 10,
			OffRoad: 5,
		},
		TerrainCoverage: model.TerrainCoverage{
			Road:  94.12,
			Rough: 5.88,
			Water: 0,
		},
	}
}

func SampleDataset() *dataset.Dataset {
	return dataset.Assemble(
		SampleVersion,
		[]model.Character{SampleCharacter()},
		[]model.Vehicle{SampleVehicle()},
		[]model.Track{SampleTrack()},
	)
}
