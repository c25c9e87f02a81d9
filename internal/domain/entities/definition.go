package entities

// Config is the tool configuration loaded from gettor.yaml
type Config struct {
	UploadDir    string
	Keyring      string
	ManifestName string
	Log          LogConfig
	Coverage     CoverageConfig
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level string // debug, info, warn, error
	File  string // optional log file, in addition to stderr
}

// CoverageConfig lists the platforms and locales a release must ship
type CoverageConfig struct {
	Platforms []string
	Locales   []string
}

// DefaultManifestName is the checksum manifest written next to the bundles
const DefaultManifestName = "sha256sums-unsigned-build.txt"

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		UploadDir:    ".",
		ManifestName: DefaultManifestName,
		Log: LogConfig{
			Level: "info",
		},
		Coverage: CoverageConfig{
			Platforms: []string{OSWindows, OSLinux, OSMacOS},
		},
	}
}
