package defs

// Common file names used across the project.
const (
	// ConfigYAML is the default configuration file, looked up in the
	// working directory.
	ConfigYAML = ".sniglet.yaml"

	// OutputDir is the default directory the CSV datasets are written to.
	OutputDir = "datasets"
)

// Dataset CSV file names.
const (
	TrainCSV        = "dtrain.csv"
	TestCSV         = "dtest.csv"
	TrainPredictCSV = "dtrain_predict.csv"
	TestPredictCSV  = "dtest_predict.csv"
)

// File system permissions.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)
