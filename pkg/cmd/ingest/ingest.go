package ingest

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hiddenvector/mkw-data-api/log"
	"github.com/hiddenvector/mkw-data-api/pkg/config"
	"github.com/hiddenvector/mkw-data-api/pkg/dataset"
	"github.com/hiddenvector/mkw-data-api/pkg/ingest"
)

func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "builds the dataset documents from the exported source sheets",
		Long: `Reads the three exported Statpedia sheets, transforms them into the
character, vehicle and track collections and writes the versioned dataset
documents. One-shot batch run; any fatal parse error aborts the whole run
without writing output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest()
		},
	}
	cmd.Flags().StringVar(&config.CharactersFile,
		"characters",
		"data/source/characters.csv",
		"exported characters sheet")
	cmd.Flags().StringVar(&config.VehiclesFile,
		"vehicles",
		"data/source/vehicles.csv",
		"exported vehicles sheet")
	cmd.Flags().StringVar(&config.TracksFile,
		"tracks",
		"data/source/tracks.csv",
		"exported track coverage sheet")
	cmd.Flags().StringVar(&config.OutputDir,
		"out",
		"data/dataset",
		"output directory for the dataset documents")
	cmd.Flags().StringVar(&config.DataVersion,
		"data-version",
		"",
		"dataVersion stamp (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&config.TablesFile,
		"tables",
		"",
		"yaml file overriding the built-in lookup tables")
	return cmd
}

func runIngest() error {
	setupLogger()

	tables := ingest.DefaultTables()
	if config.TablesFile != "" {
		var err error
		if tables, err = ingest.LoadTables(config.TablesFile); err != nil {
			return err
		}
		log.Info("using lookup tables from file",
			log.String("file", config.TablesFile))
	}

	version := config.DataVersion
	if version == "" {
		version = dataset.TodayVersion()
	} else if _, err := time.Parse(dataset.VersionLayout, version); err != nil {
		return fmt.Errorf("invalid data-version %q: %w", version, err)
	}

	characterRows, err := ingest.ReadRows(config.CharactersFile)
	if err != nil {
		return err
	}
	characters, err := ingest.NewCharacterParser(tables).Parse(characterRows)
	if err != nil {
		return fmt.Errorf("parsing characters sheet: %w", err)
	}

	vehicleRows, err := ingest.ReadRows(config.VehiclesFile)
	if err != nil {
		return err
	}
	vehicles, err := ingest.NewVehicleParser(tables).Parse(vehicleRows)
	if err != nil {
		return fmt.Errorf("parsing vehicles sheet: %w", err)
	}

	trackRows, err := ingest.ReadRows(config.TracksFile)
	if err != nil {
		return err
	}
	tracks, err := ingest.NewTrackParser(tables).Parse(trackRows)
	if err != nil {
		return fmt.Errorf("parsing tracks sheet: %w", err)
	}

	ds := dataset.Assemble(version, characters, vehicles, tracks)
	if err := dataset.NewStore(config.OutputDir).Write(ds); err != nil {
		return err
	}
	log.Info("ingestion finished",
		log.String("dataVersion", ds.Version),
		log.Int("characters", len(ds.Characters)),
		log.Int("vehicles", len(ds.Vehicles)),
		log.Int("tracks", len(ds.Tracks)))
	return nil
}

func setupLogger() {
	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(os.Stderr, parseLogLevel(config.LogLevel, log.InfoLevel))
	default:
		logger = log.DevLogger(os.Stderr, parseLogLevel(config.LogLevel, log.InfoLevel))
	}
	log.ResetDefault(logger)
}

func parseLogLevel(arg string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(arg)
	if err != nil {
		return defaultVal
	}
	return level
}
