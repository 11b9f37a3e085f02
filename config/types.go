package config

// InputConfig locates the schedule snapshot.
type InputConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// LoggingConfig controls the diagnostic log written to stderr.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Input   InputConfig   `yaml:"input"`
	Logging LoggingConfig `yaml:"logging"`
}
