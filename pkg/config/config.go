package config

// this holds the resolved configuration values from CLI
var (
	CharactersFile string // path to the exported characters sheet (csv)
	VehiclesFile   string // path to the exported vehicles sheet (csv)
	TracksFile     string // path to the exported track coverage sheet (csv)
	OutputDir      string // directory for the generated dataset documents
	DataDir        string // directory holding dataset documents to validate
	DataVersion    string // version stamp for the generated dataset (YYYY-MM-DD)
	TablesFile     string // optional yaml file overriding the built-in lookup tables
	LogLevel       string // sets the log level (zap log level values)
	LogFormat      string // text vs json
)
