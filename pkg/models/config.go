package models

// DatasetConfig represents the dataset configuration section.
type DatasetConfig struct {
	// Limit is the hard target length. Zero means "use the mean length of
	// the admissible words".
	Limit              int     `yaml:"limit" json:"limit"`
	OutputDir          string  `yaml:"output_dir" json:"output_dir"`
	MinWordLength      int     `yaml:"min_word_length" json:"min_word_length"`
	TrainRatio         float64 `yaml:"train_ratio" json:"train_ratio"`
	Filler             string  `yaml:"filler" json:"filler"`
	ShuffleMin         int     `yaml:"shuffle_min" json:"shuffle_min"`
	ShuffleMax         int     `yaml:"shuffle_max" json:"shuffle_max"`
	LabelColumn        string  `yaml:"label_column" json:"label_column"`
	PredictLabelColumn string  `yaml:"predict_label_column" json:"predict_label_column"`
	Seed               uint64  `yaml:"seed" json:"seed"`
}

// SystemConfig represents the system configuration section.
type SystemConfig struct {
	LogLevel  string `yaml:"log_level" json:"log_level"`
	LogFormat string `yaml:"log_format" json:"log_format"`
}
