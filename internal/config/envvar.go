package config

// Environment variable names for scalpel configuration.
const (
	EnvInstallDir = "INSTALL_DIR" // Path to the application install directory
)
