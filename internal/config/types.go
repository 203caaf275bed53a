package config

// LogLevel is the minimum level written by the hub logger.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config is the top-level hub configuration, corresponding to .slidejet.yml.
type Config struct {
	Port            int      `yaml:"port" koanf:"port"`
	RepoRoot        string   `yaml:"repo_root" koanf:"repo_root"`
	AppDir          string   `yaml:"app_dir" koanf:"app_dir"`
	BaseURL         string   `yaml:"base_url" koanf:"base_url"`
	Watch           bool     `yaml:"watch" koanf:"watch"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	LogLevel        LogLevel `yaml:"log_level" koanf:"log_level"`
}
