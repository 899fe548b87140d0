package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiddenvector/mkw-data-api/pkg/config"
	"github.com/hiddenvector/mkw-data-api/pkg/dataset"
	"github.com/hiddenvector/mkw-data-api/pkg/service"
	"github.com/hiddenvector/mkw-data-api/pkg/validate"
)

func configureRun(t *testing.T) string {
	t.Helper()
	outDir := t.TempDir()
	config.CharactersFile = "testdata/characters.csv"
	config.VehiclesFile = "testdata/vehicles.csv"
	config.TracksFile = "testdata/tracks.csv"
	config.OutputDir = outDir
	config.DataVersion = "2026-08-31"
	config.TablesFile = ""
	t.Cleanup(func() {
		config.CharactersFile = ""
		config.VehiclesFile = ""
		config.TracksFile = ""
		config.OutputDir = ""
		config.DataVersion = ""
	})
	return outDir
}

// full pipeline: ingest run, validation gate, lookup
func TestRunIngest(t *testing.T) {
	outDir := configureRun(t)
	require.NoError(t, runIngest())

	store := dataset.NewStore(outDir)
	ds, err := validate.NewGate(store).Run()
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", ds.Version)
	assert.Len(t, ds.Characters, 7)
	assert.Len(t, ds.Vehicles, 4)
	assert.Len(t, ds.Tracks, 3)

	lookup := service.NewLookup(ds)
	character, err := lookup.CharacterByID("donkey-kong")
	require.NoError(t, err)
	assert.Equal(t, "Donkey Kong", character.Name)

	vehicle, err := lookup.VehicleByID("rob-hog")
	require.NoError(t, err)
	assert.Equal(t, "standard-bike", vehicle.Tag)

	track, err := lookup.TrackByID("great-question-block-ruins")
	require.NoError(t, err)
	assert.Equal(t, "Banana Cup", track.Cup)
	assert.Equal(t, 47.5, track.SurfaceCoverage.Road)

	factory, err := lookup.TrackByID("toads-factory")
	require.NoError(t, err)
	assert.Equal(t, 50.0, factory.TerrainCoverage.Road)
	assert.Equal(t, 12.5, factory.TerrainCoverage.Rough)
	assert.Equal(t, 37.5, factory.TerrainCoverage.Water)
}

func TestRunIngest_InvalidDataVersion(t *testing.T) {
	configureRun(t)
	config.DataVersion = "today"
	assert.Error(t, runIngest())
}

func TestRunIngest_MissingSource(t *testing.T) {
	configureRun(t)
	config.CharactersFile = "testdata/missing.csv"
	assert.Error(t, runIngest())
}
