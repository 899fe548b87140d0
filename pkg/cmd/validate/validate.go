package validate

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hiddenvector/mkw-data-api/log"
	"github.com/hiddenvector/mkw-data-api/pkg/config"
	"github.com/hiddenvector/mkw-data-api/pkg/dataset"
	"github.com/hiddenvector/mkw-data-api/pkg/validate"
)

func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "runs the startup validation gate against persisted dataset documents",
		Long: `Reloads the persisted collections and enforces every structural, range,
uniqueness and version invariant. This is the same gate the query service
runs at startup; a non-zero exit means the dataset must not be served.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate()
		},
	}
	cmd.Flags().StringVar(&config.DataDir,
		"data-dir",
		"data/dataset",
		"directory holding the dataset documents")
	return cmd
}

func runValidate() error {
	setupLogger()

	store := dataset.NewStore(config.DataDir)
	ds, err := validate.NewGate(store).Run()
	if err != nil {
		log.Error("dataset rejected", log.ErrorField(err))
		return err
	}
	log.Info("dataset accepted",
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
