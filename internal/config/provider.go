package config

// Paths captures resolved locations for the target configuration.
type Paths struct {
	InstallDir string // application install directory
	ConfigFile string // path to <InstallDir>/config.yaml
}
