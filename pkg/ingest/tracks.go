package ingest

import (
	"strings"

	"github.com/hiddenvector/mkw-data-api/log"
	"github.com/hiddenvector/mkw-data-api/pkg/model"
)

// TrackLayout describes the delimited coverage region of the track sheet.
type TrackLayout struct {
	Name    int
	Road    int
	Rough   int
	Water   int
	Neutral int
	OffRoad int
	// adjusted road/rough/water columns feeding the terrain renormalization
	AdjRoad  int
	AdjRough int
	AdjWater int
	// markers in the name column delimiting the coverage section
	SectionStart string
	SectionStop  string
}

func DefaultTrackLayout() TrackLayout {
	return TrackLayout{
		Name:         1,
		Road:         2,
		Rough:        3,
		Water:        4,
		Neutral:      5,
		OffRoad:      6,
		AdjRoad:      7,
		AdjRough:     8,
		AdjWater:     9,
		SectionStart: "Track Coverage",
		SectionStop:  "End Track Coverage",
	}
}

// header rows repeated inside the section
var trackHeaderTokens = []string{"track", "name", "track name"}

// summary/informational rows inside the section, matched case-insensitive
// as substrings
var trackSkipPatterns = []string{
	"average",
	"→",
	"the following",
	"surface coverage",
	"info:",
	"summary",
}

// coverage sums outside this window are logged, not rejected
const (
	coverageSumMin = 95.0
	coverageSumMax = 105.0
)

// TrackParser extracts track records from the marker-delimited region of
// the coverage sheet.
type TrackParser struct {
	layout TrackLayout
	tables *Tables
	l      *log.Logger
}

type TrackOption func(*TrackParser)

func WithTrackLayout(layout TrackLayout) TrackOption {
	return func(p *TrackParser) { p.layout = layout }
}

func WithTrackLogger(l *log.Logger) TrackOption {
	return func(p *TrackParser) { p.l = l }
}

func NewTrackParser(tables *Tables, opts ...TrackOption) *TrackParser {
	ret := &TrackParser{
		layout: DefaultTrackLayout(),
		tables: tables,
		l:      log.Default().Named("ingest.tracks"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

//nolint:cyclop // scanner is clearer as one loop
func (p *TrackParser) Parse(rows []RawRow) ([]model.Track, error) {
	var ret []model.Track
	inSection := false
	for i, row := range rows {
		name := strings.TrimSpace(row.Cell(p.layout.Name))
		if !inSection {
			if name == p.layout.SectionStart {
				inSection = true
			}
			continue
		}
		if name == p.layout.SectionStop {
			break
		}
		if name == "" || isTrackHeader(name) || matchesSkipPattern(name) {
			continue
		}
		track, err := p.parseTrack(row, i, name)
		if err != nil {
			return nil, err
		}
		ret = append(ret, track)
	}
	return ret, nil
}

func (p *TrackParser) parseTrack(row RawRow, rowIdx int, name string) (model.Track, error) {
	surface := model.SurfaceCoverage{}
	for _, pct := range []struct {
		col int
		dst *float64
	}{
		{p.layout.Road, &surface.Road},
		{p.layout.Rough, &surface.Rough},
		{p.layout.Water, &surface.Water},
		{p.layout.Neutral, &surface.Neutral},
		{p.layout.OffRoad, &surface.OffRoad},
	} {
		val, err := ParsePercent(row.Cell(pct.col))
		if err != nil {
			return model.Track{}, newCellError(row, rowIdx, pct.col)
		}
		*pct.dst = val
	}
	sum := surface.Road + surface.Rough + surface.Water + surface.Neutral + surface.OffRoad
	if sum < coverageSumMin || sum > coverageSumMax {
		p.l.Warn("surface coverage sum outside tolerance",
			log.String("track", name),
			log.Float64("sum", sum))
	}

	adjusted := [3]float64{}
	for n, col := range []int{p.layout.AdjRoad, p.layout.AdjRough, p.layout.AdjWater} {
		val, err := ParsePercent(row.Cell(col))
		if err != nil {
			return model.Track{}, newCellError(row, rowIdx, col)
		}
		adjusted[n] = val
	}

	cup, ok := p.tables.CupFor(name)
	if !ok {
		cup = model.CupUnknown
		p.l.Warn("track not found in cup table",
			log.String("track", name))
	}

	display := p.tables.DisplayName(name)
	return model.Track{
		ID:              ToID(display),
		Name:            display,
		Cup:             cup,
		SurfaceCoverage: surface,
		TerrainCoverage: NormalizeTerrain(adjusted[0], adjusted[1], adjusted[2]),
	}, nil
}

func isTrackHeader(name string) bool {
	for _, token := range trackHeaderTokens {
		if strings.EqualFold(name, token) {
			return true
		}
	}
	return false
}

func matchesSkipPattern(name string) bool {
	arg := strings.ToLower(name)
	for _, pattern := range trackSkipPatterns {
		if strings.Contains(arg, pattern) {
			return true
		}
	}
	return false
}
