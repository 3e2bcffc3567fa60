// Package config persists detection results and per-project command overrides
// as a JSON file under the user's home directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"shipscout/pkg/detector"
)

// CommandOverrides replace resolved commands for a project. Empty fields keep
// the detected value.
type CommandOverrides struct {
	InstallCommand string `json:"install_command,omitempty"`
	BuildCommand   string `json:"build_command,omitempty"`
	DevCommand     string `json:"dev_command,omitempty"`
}

// TargetConfig is the saved detection state for one project path.
type TargetConfig struct {
	ProjectPath string              `json:"project_path"`
	Detection   *detector.Detection `json:"detection,omitempty"`
	Overrides   *CommandOverrides   `json:"overrides,omitempty"`
}

// Apply folds the overrides into a detection result.
func (t *TargetConfig) Apply(d detector.Detection) detector.Detection {
	if t.Overrides == nil {
		return d
	}
	if t.Overrides.InstallCommand != "" {
		d.InstallCommand = t.Overrides.InstallCommand
	}
	if t.Overrides.BuildCommand != "" {
		d.BuildCommand = t.Overrides.BuildCommand
	}
	if t.Overrides.DevCommand != "" {
		d.DevCommand = t.Overrides.DevCommand
	}
	return d
}

type Config struct {
	Targets map[string]TargetConfig `json:"targets"`
}

func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(LocalConfigDir, LocalConfigFile)
	}
	return filepath.Join(homeDir, LocalConfigDir, LocalConfigFile)
}

func LoadConfig() (*Config, error) {
	configPath := GetConfigPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{Targets: make(map[string]TargetConfig)}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Targets == nil {
		config.Targets = make(map[string]TargetConfig)
	}
	return &config, nil
}

func (c *Config) SaveConfig() error {
	configPath := GetConfigPath()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, PermDirectory); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, PermConfigFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetTarget retrieves the saved configuration for a project path.
func (c *Config) GetTarget(projectPath string) (TargetConfig, bool) {
	target, exists := c.Targets[projectPath]
	return target, exists
}

// SetTarget stores the configuration for a project path.
func (c *Config) SetTarget(projectPath string, target TargetConfig) {
	c.Targets[projectPath] = target
}
