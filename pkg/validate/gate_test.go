//nolint:funlen // table driven tests
package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiddenvector/mkw-data-api/pkg/dataset"
	"github.com/hiddenvector/mkw-data-api/pkg/model"
	"github.com/hiddenvector/mkw-data-api/testsupport/basedata"
)

func writtenStore(t *testing.T, ds *dataset.Dataset) *dataset.Store {
	t.Helper()
	store := dataset.NewStore(t.TempDir())
	require.NoError(t, store.Write(ds))
	return store
}

func TestGate_AcceptsValidDataset(t *testing.T) {
	store := writtenStore(t, basedata.SampleDataset())
	ds, err := NewGate(store).Run()
	require.NoError(t, err)
	require.NotNil(t, ds)
	assert.Equal(t, basedata.SampleVersion, ds.Version)
	assert.Len(t, ds.Characters, 1)
	assert.Len(t, ds.Vehicles, 1)
	assert.Len(t, ds.Tracks, 1)
}

func TestGate_RejectsInvalidSlug(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "uppercase", id: "Mario"},
		{name: "space", id: "baby mario"},
		{name: "leading hyphen", id: "-mario"},
		{name: "empty", id: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := basedata.SampleDataset()
			ds.Characters[0].ID = tt.id
			store := writtenStore(t, ds)

			got, err := NewGate(store).Run()
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorContains(t, err, "not a valid slug")
		})
	}
}

func TestGate_RejectsVersionMismatch(t *testing.T) {
	ds := basedata.SampleDataset()
	store := writtenStore(t, ds)

	got, err := NewGate(store, WithExpectedVersion("2026-01-01")).Run()
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorContains(t, err, "characters")
	assert.ErrorContains(t, err, `"2026-08-31"`)
	assert.ErrorContains(t, err, `"2026-01-01"`)
}

func TestGate_RejectsStatOutOfRange(t *testing.T) {
	ds := basedata.SampleDataset()
	ds.Characters[0].Speed.Road = 25
	ds.Vehicles[0].Acceleration = -1
	store := writtenStore(t, ds)

	_, err := NewGate(store).Run()
	require.Error(t, err)
	assert.ErrorContains(t, err, "speed.road 25 out of range")
	assert.ErrorContains(t, err, "acceleration -1 out of range")
}

func TestGate_RejectsDuplicateIDs(t *testing.T) {
	ds := basedata.SampleDataset()
	ds.Tracks = append(ds.Tracks, ds.Tracks[0])
	store := writtenStore(t, ds)

	_, err := NewGate(store).Run()
	require.Error(t, err)
	assert.ErrorContains(t, err, `duplicate id "mario-bros-circuit"`)
}

func TestGate_RejectsVehicleTagAndCategory(t *testing.T) {
	ds := basedata.SampleDataset()
	ds.Vehicles[0].Tag = "Not A Slug"
	ds.Vehicles[0].Category = "hovercraft"
	store := writtenStore(t, ds)

	_, err := NewGate(store).Run()
	require.Error(t, err)
	assert.ErrorContains(t, err, `tag "Not A Slug" is not a valid slug`)
	assert.ErrorContains(t, err, `invalid category "hovercraft"`)
}

func TestGate_RejectsCoverageOutOfRange(t *testing.T) {
	ds := basedata.SampleDataset()
	ds.Tracks[0].SurfaceCoverage.Road = 120
	ds.Tracks[0].TerrainCoverage.Water = -3
	store := writtenStore(t, ds)

	_, err := NewGate(store).Run()
	require.Error(t, err)
	assert.ErrorContains(t, err, "surfaceCoverage.road 120 out of range")
	assert.ErrorContains(t, err, "terrainCoverage.water -3 out of range")
}

// every violation must surface in one pass, not just the first
func TestGate_CollectsAllViolations(t *testing.T) {
	ds := basedata.SampleDataset()
	ds.Characters[0].ID = "Bad ID"
	ds.Characters[0].Weight = 99
	ds.Vehicles[0].Tag = ""
	ds.Tracks[0].SurfaceCoverage.OffRoad = -1
	store := writtenStore(t, ds)

	_, err := NewGate(store).Run()
	require.Error(t, err)
	assert.ErrorContains(t, err, "4 violation(s)")
	assert.ErrorContains(t, err, `id "Bad ID"`)
	assert.ErrorContains(t, err, "weight 99")
	assert.ErrorContains(t, err, `tag ""`)
	assert.ErrorContains(t, err, "surfaceCoverage.offRoad -1")
}

func TestGate_MissingDocuments(t *testing.T) {
	store := dataset.NewStore(t.TempDir())
	_, err := NewGate(store).Run()
	assert.Error(t, err)
}

func TestGate_EmptyCollectionsAreValid(t *testing.T) {
	ds := dataset.Assemble(basedata.SampleVersion,
		[]model.Character{}, []model.Vehicle{}, []model.Track{})
	store := writtenStore(t, ds)

	got, err := NewGate(store).Run()
	require.NoError(t, err)
	assert.Empty(t, got.Characters)
}
