package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiddenvector/mkw-data-api/pkg/model"
)

func sampleDataset() *Dataset {
	return Assemble("2026-08-31",
		[]model.Character{{ID: "mario", Name: "Mario"}},
		[]model.Vehicle{{
			ID: "standard-kart", Name: "Standard Kart",
			Tag: "all-rounder", Category: model.CategoryKart,
		}},
		[]model.Track{{ID: "rainbow-road", Name: "Rainbow Road", Cup: "Special Cup"}},
	)
}

func TestStore_WriteAndLoad(t *testing.T) {
	dir := t.TempDir()
	ds := sampleDataset()
	store := NewStore(dir)
	require.NoError(t, store.Write(ds))

	for _, file := range []string{
		"characters.json", "vehicles.json", "tracks.json", "dataversion.json",
	} {
		_, err := os.Stat(filepath.Join(dir, file))
		assert.NoError(t, err, file)
	}

	characters, err := store.LoadCharacters()
	require.NoError(t, err)
	assert.Equal(t, ds.Version, characters.DataVersion)
	assert.Empty(t, cmp.Diff(ds.Characters, characters.Characters))

	vehicles, err := store.LoadVehicles()
	require.NoError(t, err)
	assert.Equal(t, ds.Version, vehicles.DataVersion)
	assert.Empty(t, cmp.Diff(ds.Vehicles, vehicles.Vehicles))

	tracks, err := store.LoadTracks()
	require.NoError(t, err)
	assert.Equal(t, ds.Version, tracks.DataVersion)
	assert.Empty(t, cmp.Diff(ds.Tracks, tracks.Tracks))

	version, err := store.LoadVersion()
	require.NoError(t, err)
	assert.Equal(t, ds.Version, version)
}

func TestStore_LoadMissingDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope"))
	_, err := store.LoadCharacters()
	assert.Error(t, err)
	_, err = store.LoadVersion()
	assert.Error(t, err)
}

func TestTodayVersion(t *testing.T) {
	version := TodayVersion()
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, version)
}
