package config

// DefaultConfigFile is the config file read when --config is not given.
const DefaultConfigFile = ".slidejet.yml"

// DefaultAppDir is the directory, relative to the repository root, that
// holds the *_SJconfig.yaml files.
const DefaultAppDir = "SlideJet_Presentations"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:     8501,
		RepoRoot: ".",
		AppDir:   DefaultAppDir,
		LogLevel: LogInfo,
	}
}
