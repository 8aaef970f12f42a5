// Package config handles scene-server configuration loading and management.
package config

import "time"

// Config holds all scene-server settings.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds the WebSocket endpoint settings.
type ServerConfig struct {
	ListenAddr       string        `yaml:"listen_addr"`
	SnapshotInterval time.Duration `yaml:"snapshot_interval"`
}

// SceneConfig holds scene-source settings.
type SceneConfig struct {
	// ShapesFile is the JSON shape dump the server converts when no live
	// simulator is attached.
	ShapesFile string `yaml:"shapes_file"`
	// MaterialColorsFromMTL makes renderers take mesh colors from material
	// files shipped with the meshes instead of the simulator records.
	MaterialColorsFromMTL bool `yaml:"material_colors_from_mtl"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:       ":8090",
			SnapshotInterval: 50 * time.Millisecond,
		},
		Scene: SceneConfig{
			ShapesFile:            "scene.json",
			MaterialColorsFromMTL: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
