package dataset

import (
	"time"

	"github.com/hiddenvector/mkw-data-api/pkg/model"
)

// VersionLayout is the calendar-date format of the dataVersion stamp.
const VersionLayout = "2006-01-02"

// Dataset bundles the three record collections under one shared
// dataVersion stamp. Immutable after assembly.
type Dataset struct {
	Version    string
	Characters []model.Character
	Vehicles   []model.Vehicle
	Tracks     []model.Track
}

// Assemble stamps version onto the parsed collections.
func Assemble(
	version string,
	characters []model.Character,
	vehicles []model.Vehicle,
	tracks []model.Track,
) *Dataset {
	return &Dataset{
		Version:    version,
		Characters: characters,
		Vehicles:   vehicles,
		Tracks:     tracks,
	}
}

// TodayVersion returns the default dataVersion stamp for a build run.
func TodayVersion() string {
	return time.Now().UTC().Format(VersionLayout)
}
