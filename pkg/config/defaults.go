package config

// File Permissions
const (
	// PermDirectory is the file permission for the config directory
	PermDirectory = 0755

	// PermConfigFile is the file permission for the config file
	PermConfigFile = 0644
)

// Local Paths
const (
	// LocalConfigDir is the per-user directory holding shipscout state
	LocalConfigDir = ".shipscout"

	// LocalConfigFile is the config file name inside LocalConfigDir
	LocalConfigFile = "config.json"
)
