package ingest

import (
	"strconv"
	"strings"

	"github.com/hiddenvector/mkw-data-api/log"
	"github.com/hiddenvector/mkw-data-api/pkg/model"
)

// StatLayout describes the fixed column offsets of a stat/name sheet.
type StatLayout struct {
	SpeedRoad     int
	SpeedRough    int
	SpeedWater    int
	HandlingRoad  int
	HandlingRough int
	HandlingWater int
	Acceleration  int
	MiniTurbo     int
	Weight        int
	CoinCurve     int
	// NameColumns are read from the row following a stat row.
	NameColumns []int
	// ClassColumn holds the vehicle class label on the stat row; -1 for
	// sheets without one.
	ClassColumn int
}

func CharacterLayout() StatLayout {
	ret := VehicleLayout()
	ret.ClassColumn = -1
	return ret
}

func VehicleLayout() StatLayout {
	return StatLayout{
		SpeedRoad:     2,
		SpeedRough:    3,
		SpeedWater:    4,
		HandlingRoad:  5,
		HandlingRough: 6,
		HandlingWater: 7,
		Acceleration:  8,
		MiniTurbo:     9,
		Weight:        10,
		CoinCurve:     11,
		NameColumns:   []int{2, 3, 4, 5},
		ClassColumn:   1,
	}
}

// classHeaderToken marks a repeated header row on the vehicles sheet.
const classHeaderToken = "class"

type scanState int

const (
	seekingStatRow scanState = iota
	seekingNameRow
)

// rowPair is one stat row together with the names row below it.
type rowPair struct {
	row        int
	stats      model.StatBlock
	names      []string
	classLabel string
}

type parserConfig struct {
	layout StatLayout
	l      *log.Logger
}

type ParserOption func(*parserConfig)

func WithLayout(layout StatLayout) ParserOption {
	return func(cfg *parserConfig) { cfg.layout = layout }
}

func WithLogger(l *log.Logger) ParserOption {
	return func(cfg *parserConfig) { cfg.l = l }
}

// scanPairs walks the rows with an explicit two-state scanner. A row is a
// stat row when the speed-road column holds a parseable integer; the row
// immediately after it is the names row. A stat row without any usable
// name is dropped with a warning.
func scanPairs(rows []RawRow, cfg *parserConfig) ([]rowPair, error) {
	var (
		pairs []rowPair
		cur   rowPair
	)
	state := seekingStatRow
	finishPair := func(names []string) {
		if len(names) == 0 {
			cfg.l.Warn("stat row without usable names, skipping",
				log.Int("row", cur.row))
			return
		}
		cur.names = names
		pairs = append(pairs, cur)
	}
	for i, row := range rows {
		switch state {
		case seekingStatRow:
			if cfg.layout.ClassColumn >= 0 {
				label := strings.TrimSpace(row.Cell(cfg.layout.ClassColumn))
				if strings.EqualFold(label, classHeaderToken) {
					continue
				}
			}
			if _, err := strconv.Atoi(strings.TrimSpace(row.Cell(cfg.layout.SpeedRoad))); err != nil {
				continue
			}
			stats, err := parseStats(row, i, cfg.layout)
			if err != nil {
				return nil, err
			}
			cur = rowPair{row: i, stats: stats}
			if cfg.layout.ClassColumn >= 0 {
				cur.classLabel = strings.TrimSpace(row.Cell(cfg.layout.ClassColumn))
			}
			state = seekingNameRow
		case seekingNameRow:
			finishPair(readNames(row, cfg.layout))
			state = seekingStatRow
		}
	}
	if state == seekingNameRow {
		// stat row on the last line, no names row can follow
		finishPair(nil)
	}
	return pairs, nil
}

func parseStats(row RawRow, rowIdx int, layout StatLayout) (model.StatBlock, error) {
	var ret model.StatBlock
	for _, stat := range []struct {
		col int
		dst *int
	}{
		{layout.SpeedRoad, &ret.Speed.Road},
		{layout.SpeedRough, &ret.Speed.Rough},
		{layout.SpeedWater, &ret.Speed.Water},
		{layout.HandlingRoad, &ret.Handling.Road},
		{layout.HandlingRough, &ret.Handling.Rough},
		{layout.HandlingWater, &ret.Handling.Water},
		{layout.Acceleration, &ret.Acceleration},
		{layout.MiniTurbo, &ret.MiniTurbo},
		{layout.Weight, &ret.Weight},
		{layout.CoinCurve, &ret.CoinCurve},
	} {
		val, err := strconv.Atoi(strings.TrimSpace(row.Cell(stat.col)))
		if err != nil {
			return model.StatBlock{}, newCellError(row, rowIdx, stat.col)
		}
		*stat.dst = val
	}
	return ret, nil
}

func readNames(row RawRow, layout StatLayout) []string {
	var ret []string
	for _, col := range layout.NameColumns {
		if name := strings.TrimSpace(row.Cell(col)); name != "" {
			ret = append(ret, name)
		}
	}
	return ret
}

// CharacterParser turns stat/name row pairs into character records.
type CharacterParser struct {
	cfg    parserConfig
	tables *Tables
}

func NewCharacterParser(tables *Tables, opts ...ParserOption) *CharacterParser {
	ret := &CharacterParser{
		cfg:    parserConfig{layout: CharacterLayout(), l: log.Default().Named("ingest.characters")},
		tables: tables,
	}
	for _, opt := range opts {
		opt(&ret.cfg)
	}
	return ret
}

func (p *CharacterParser) Parse(rows []RawRow) ([]model.Character, error) {
	pairs, err := scanPairs(rows, &p.cfg)
	if err != nil {
		return nil, err
	}
	ret := make([]model.Character, 0, len(pairs))
	for _, pair := range pairs {
		for _, name := range pair.names {
			display := p.tables.DisplayName(name)
			ret = append(ret, model.Character{
				ID:        ToID(display),
				Name:      display,
				StatBlock: pair.stats,
			})
		}
	}
	return ret, nil
}

// VehicleParser turns stat/name row pairs into vehicle records. The class
// label on the stat row supplies the shared tag and the category.
type VehicleParser struct {
	cfg    parserConfig
	tables *Tables
}

func NewVehicleParser(tables *Tables, opts ...ParserOption) *VehicleParser {
	ret := &VehicleParser{
		cfg:    parserConfig{layout: VehicleLayout(), l: log.Default().Named("ingest.vehicles")},
		tables: tables,
	}
	for _, opt := range opts {
		opt(&ret.cfg)
	}
	return ret
}

func (p *VehicleParser) Parse(rows []RawRow) ([]model.Vehicle, error) {
	pairs, err := scanPairs(rows, &p.cfg)
	if err != nil {
		return nil, err
	}
	var ret []model.Vehicle
	for _, pair := range pairs {
		tag := ""
		if pair.classLabel == "" {
			p.cfg.l.Warn("vehicle stat row without class label",
				log.Int("row", pair.row))
		} else {
			tag = ToID(pair.classLabel)
		}
		category := classifyVehicle(pair.classLabel, pair.names[0])
		for _, name := range pair.names {
			display := p.tables.DisplayName(name)
			ret = append(ret, model.Vehicle{
				ID:        ToID(display),
				Name:      display,
				Tag:       tag,
				Category:  category,
				StatBlock: pair.stats,
			})
		}
	}
	return ret, nil
}

// classifyVehicle checks the class label for a bike/atv marker, then the
// first vehicle name, and falls back to kart.
func classifyVehicle(classLabel, firstName string) model.VehicleCategory {
	for _, arg := range []string{classLabel, firstName} {
		arg = strings.ToLower(arg)
		switch {
		case strings.Contains(arg, "bike"):
			return model.CategoryBike
		case strings.Contains(arg, "atv"):
			return model.CategoryATV
		}
	}
	return model.CategoryKart
}
