package service

import (
	"errors"

	"github.com/samber/lo"

	"github.com/hiddenvector/mkw-data-api/pkg/dataset"
	"github.com/hiddenvector/mkw-data-api/pkg/model"
)

var ErrNotFound = errors.New("record not found")

// Lookup is the read-only query surface over a gate-validated dataset.
// It assumes all dataset invariants already hold and never mutates its
// tables; build it once at process start and share it for the process
// lifetime.
type Lookup struct {
	version        string
	characters     []model.Character
	vehicles       []model.Vehicle
	tracks         []model.Track
	charactersByID map[string]model.Character
	vehiclesByID   map[string]model.Vehicle
	vehiclesByTag  map[string][]model.Vehicle
	tracksByID     map[string]model.Track
	tracksByCup    map[string][]model.Track
}

func NewLookup(ds *dataset.Dataset) *Lookup {
	return &Lookup{
		version:    ds.Version,
		characters: ds.Characters,
		vehicles:   ds.Vehicles,
		tracks:     ds.Tracks,
		charactersByID: lo.KeyBy(ds.Characters,
			func(c model.Character) string { return c.ID }),
		vehiclesByID: lo.KeyBy(ds.Vehicles,
			func(v model.Vehicle) string { return v.ID }),
		vehiclesByTag: lo.GroupBy(ds.Vehicles,
			func(v model.Vehicle) string { return v.Tag }),
		tracksByID: lo.KeyBy(ds.Tracks,
			func(t model.Track) string { return t.ID }),
		tracksByCup: lo.GroupBy(ds.Tracks,
			func(t model.Track) string { return t.Cup }),
	}
}

func (l *Lookup) DataVersion() string { return l.version }

func (l *Lookup) Characters() []model.Character { return l.characters }
func (l *Lookup) Vehicles() []model.Vehicle     { return l.vehicles }
func (l *Lookup) Tracks() []model.Track         { return l.tracks }

func (l *Lookup) CharacterByID(id string) (model.Character, error) {
	ret, ok := l.charactersByID[id]
	if !ok {
		return model.Character{}, ErrNotFound
	}
	return ret, nil
}

func (l *Lookup) VehicleByID(id string) (model.Vehicle, error) {
	ret, ok := l.vehiclesByID[id]
	if !ok {
		return model.Vehicle{}, ErrNotFound
	}
	return ret, nil
}

// VehiclesByTag returns all vehicles sharing a stat tag.
func (l *Lookup) VehiclesByTag(tag string) []model.Vehicle {
	return l.vehiclesByTag[tag]
}

func (l *Lookup) TrackByID(id string) (model.Track, error) {
	ret, ok := l.tracksByID[id]
	if !ok {
		return model.Track{}, ErrNotFound
	}
	return ret, nil
}

// TracksByCup returns all tracks of a cup.
func (l *Lookup) TracksByCup(cup string) []model.Track {
	return l.tracksByCup[cup]
}
