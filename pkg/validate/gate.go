package validate

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/hiddenvector/mkw-data-api/log"
	"github.com/hiddenvector/mkw-data-api/pkg/dataset"
	"github.com/hiddenvector/mkw-data-api/pkg/model"
)

// Gate is the startup validation boundary. It reloads the persisted
// collections and enforces every structural, range, uniqueness and version
// invariant before a Dataset becomes visible to lookup code. Violations
// are collected, not short-circuited, so a failing run reports everything
// that needs fixing in one pass.
type Gate struct {
	store    *dataset.Store
	expected string
	l        *log.Logger
}

type Option func(*Gate)

func WithLogger(l *log.Logger) Option {
	return func(g *Gate) { g.l = l }
}

// WithExpectedVersion overrides the expected dataVersion. Without it the
// gate reads the standalone version artifact from the store.
func WithExpectedVersion(version string) Option {
	return func(g *Gate) { g.expected = version }
}

func NewGate(store *dataset.Store, opts ...Option) *Gate {
	ret := &Gate{store: store, l: log.Default().Named("validate")}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Run loads and validates all three collections. Only a dataset without a
// single violation is returned; any failure yields an error joining every
// violation found.
func (g *Gate) Run() (*dataset.Dataset, error) {
	expected := g.expected
	if expected == "" {
		var err error
		if expected, err = g.store.LoadVersion(); err != nil {
			return nil, fmt.Errorf("loading expected data version: %w", err)
		}
	}

	characters, err := g.store.LoadCharacters()
	if err != nil {
		return nil, err
	}
	vehicles, err := g.store.LoadVehicles()
	if err != nil {
		return nil, err
	}
	tracks, err := g.store.LoadTracks()
	if err != nil {
		return nil, err
	}

	var violations []error
	violations = append(violations, checkVersion("characters", characters.DataVersion, expected)...)
	violations = append(violations, checkVersion("vehicles", vehicles.DataVersion, expected)...)
	violations = append(violations, checkVersion("tracks", tracks.DataVersion, expected)...)
	violations = append(violations, checkCharacters(characters.Characters)...)
	violations = append(violations, checkVehicles(vehicles.Vehicles)...)
	violations = append(violations, checkTracks(tracks.Tracks)...)

	if len(violations) > 0 {
		return nil, fmt.Errorf("dataset validation failed with %d violation(s): %w",
			len(violations), errors.Join(violations...))
	}
	g.l.Info("dataset validated",
		log.String("dataVersion", expected),
		log.Int("characters", len(characters.Characters)),
		log.Int("vehicles", len(vehicles.Vehicles)),
		log.Int("tracks", len(tracks.Tracks)))
	return &dataset.Dataset{
		Version:    expected,
		Characters: characters.Characters,
		Vehicles:   vehicles.Vehicles,
		Tracks:     tracks.Tracks,
	}, nil
}

func checkVersion(collection, found, expected string) []error {
	if found != expected {
		return []error{fmt.Errorf("%s: dataVersion %q does not match expected %q",
			collection, found, expected)}
	}
	return nil
}

func checkCharacters(characters []model.Character) []error {
	var ret []error
	for i, c := range characters {
		ref := recordRef("characters", i, c.ID)
		ret = append(ret, checkSlug(ref, "id", c.ID)...)
		if c.Name == "" {
			ret = append(ret, fmt.Errorf("%s: empty name", ref))
		}
		ret = append(ret, checkStats(ref, c.StatBlock)...)
	}
	ret = append(ret, checkUnique("characters", lo.Map(characters,
		func(c model.Character, _ int) string { return c.ID }))...)
	return ret
}

func checkVehicles(vehicles []model.Vehicle) []error {
	var ret []error
	for i, v := range vehicles {
		ref := recordRef("vehicles", i, v.ID)
		ret = append(ret, checkSlug(ref, "id", v.ID)...)
		ret = append(ret, checkSlug(ref, "tag", v.Tag)...)
		if v.Name == "" {
			ret = append(ret, fmt.Errorf("%s: empty name", ref))
		}
		switch v.Category {
		case model.CategoryKart, model.CategoryBike, model.CategoryATV:
		default:
			ret = append(ret, fmt.Errorf("%s: invalid category %q", ref, v.Category))
		}
		ret = append(ret, checkStats(ref, v.StatBlock)...)
	}
	ret = append(ret, checkUnique("vehicles", lo.Map(vehicles,
		func(v model.Vehicle, _ int) string { return v.ID }))...)
	return ret
}

func checkTracks(tracks []model.Track) []error {
	var ret []error
	for i, t := range tracks {
		ref := recordRef("tracks", i, t.ID)
		ret = append(ret, checkSlug(ref, "id", t.ID)...)
		if t.Name == "" {
			ret = append(ret, fmt.Errorf("%s: empty name", ref))
		}
		if t.Cup == "" {
			ret = append(ret, fmt.Errorf("%s: empty cup", ref))
		}
		surface := t.SurfaceCoverage
		for _, pct := range []struct {
			field string
			value float64
		}{
			{"surfaceCoverage.road", surface.Road},
			{"surfaceCoverage.rough", surface.Rough},
			{"surfaceCoverage.water", surface.Water},
			{"surfaceCoverage.neutral", surface.Neutral},
			{"surfaceCoverage.offRoad", surface.OffRoad},
			{"terrainCoverage.road", t.TerrainCoverage.Road},
			{"terrainCoverage.rough", t.TerrainCoverage.Rough},
			{"terrainCoverage.water", t.TerrainCoverage.Water},
		} {
			if pct.value < 0 || pct.value > 100 {
				ret = append(ret, fmt.Errorf("%s: %s %v out of range [0,100]",
					ref, pct.field, pct.value))
			}
		}
	}
	ret = append(ret, checkUnique("tracks", lo.Map(tracks,
		func(t model.Track, _ int) string { return t.ID }))...)
	return ret
}

func checkStats(ref string, stats model.StatBlock) []error {
	var ret []error
	for _, stat := range []struct {
		field string
		value int
	}{
		{"speed.road", stats.Speed.Road},
		{"speed.rough", stats.Speed.Rough},
		{"speed.water", stats.Speed.Water},
		{"handling.road", stats.Handling.Road},
		{"handling.rough", stats.Handling.Rough},
		{"handling.water", stats.Handling.Water},
		{"acceleration", stats.Acceleration},
		{"miniTurbo", stats.MiniTurbo},
		{"weight", stats.Weight},
		{"coinCurve", stats.CoinCurve},
	} {
		if stat.value < model.StatMin || stat.value > model.StatMax {
			ret = append(ret, fmt.Errorf("%s: %s %d out of range [%d,%d]",
				ref, stat.field, stat.value, model.StatMin, model.StatMax))
		}
	}
	return ret
}

func checkSlug(ref, field, value string) []error {
	if !model.IsSlug(value) {
		return []error{fmt.Errorf("%s: %s %q is not a valid slug", ref, field, value)}
	}
	return nil
}

func checkUnique(collection string, ids []string) []error {
	var ret []error
	for _, dup := range lo.FindDuplicates(ids) {
		ret = append(ret, fmt.Errorf("%s: duplicate id %q", collection, dup))
	}
	return ret
}

func recordRef(collection string, index int, id string) string {
	if id == "" {
		return fmt.Sprintf("%s: record %d", collection, index)
	}
	return fmt.Sprintf("%s: record %d (%s)", collection, index, id)
}
