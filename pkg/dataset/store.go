package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hiddenvector/mkw-data-api/log"
	"github.com/hiddenvector/mkw-data-api/pkg/model"
)

const (
	charactersFile = "characters.json"
	vehiclesFile   = "vehicles.json"
	tracksFile     = "tracks.json"
	versionFile    = "dataversion.json"
)

// persisted document shapes

type CharactersDocument struct {
	DataVersion string            `json:"dataVersion"`
	Characters  []model.Character `json:"characters"`
}

type VehiclesDocument struct {
	DataVersion string          `json:"dataVersion"`
	Vehicles    []model.Vehicle `json:"vehicles"`
}

type TracksDocument struct {
	DataVersion string        `json:"dataVersion"`
	Tracks      []model.Track `json:"tracks"`
}

// VersionDocument is the standalone dataVersion artifact the validation
// gate uses as the expected value.
type VersionDocument struct {
	DataVersion string `json:"dataVersion"`
}

// Store persists and loads the dataset documents in a directory.
type Store struct {
	dir string
	l   *log.Logger
}

type StoreOption func(*Store)

func WithStoreLogger(l *log.Logger) StoreOption {
	return func(s *Store) { s.l = l }
}

func NewStore(dir string, opts ...StoreOption) *Store {
	ret := &Store{dir: dir, l: log.Default().Named("dataset.store")}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Write persists all three collections plus the standalone version
// artifact.
func (s *Store) Write(ds *Dataset) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	docs := []struct {
		file string
		data any
	}{
		{charactersFile, &CharactersDocument{DataVersion: ds.Version, Characters: ds.Characters}},
		{vehiclesFile, &VehiclesDocument{DataVersion: ds.Version, Vehicles: ds.Vehicles}},
		{tracksFile, &TracksDocument{DataVersion: ds.Version, Tracks: ds.Tracks}},
		{versionFile, &VersionDocument{DataVersion: ds.Version}},
	}
	for _, doc := range docs {
		if err := s.writeJSON(doc.file, doc.data); err != nil {
			return err
		}
	}
	s.l.Info("dataset written",
		log.String("dir", s.dir),
		log.String("dataVersion", ds.Version))
	return nil
}

func (s *Store) writeJSON(file string, data any) error {
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling %s: %w", file, err)
	}
	buf = append(buf, '\n')
	if err := os.WriteFile(filepath.Join(s.dir, file), buf, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", file, err)
	}
	return nil
}

func (s *Store) LoadCharacters() (*CharactersDocument, error) {
	ret := &CharactersDocument{}
	if err := s.readJSON(charactersFile, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *Store) LoadVehicles() (*VehiclesDocument, error) {
	ret := &VehiclesDocument{}
	if err := s.readJSON(vehiclesFile, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *Store) LoadTracks() (*TracksDocument, error) {
	ret := &TracksDocument{}
	if err := s.readJSON(tracksFile, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// LoadVersion reads the expected dataVersion constant.
func (s *Store) LoadVersion() (string, error) {
	ret := &VersionDocument{}
	if err := s.readJSON(versionFile, ret); err != nil {
		return "", err
	}
	return ret.DataVersion, nil
}

func (s *Store) readJSON(file string, data any) error {
	buf, err := os.ReadFile(filepath.Join(s.dir, file))
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}
	if err := json.Unmarshal(buf, data); err != nil {
		return fmt.Errorf("parsing %s: %w", file, err)
	}
	return nil
}
