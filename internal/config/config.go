// Package config handles loader configuration and management.
package config

// Config holds all settings.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Room    RoomConfig    `yaml:"room"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig holds scene data file paths.
type DataConfig struct {
	ScenePath string `yaml:"scene_path"` // Path to the exported scene
}

// StartConfig is the fallback start position on the integer grid.
type StartConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`
}

// RoomConfig holds room-loading policy.
type RoomConfig struct {
	// SkipBadDirectives drops spawn directives whose name fails to parse
	// instead of failing the whole room load.
	SkipBadDirectives bool        `yaml:"skip_bad_directives"`
	Start             StartConfig `yaml:"start"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			ScenePath: "scene.obj",
		},
		Room: RoomConfig{
			SkipBadDirectives: false,
			Start:             StartConfig{X: 0, Y: 0, Z: 2},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
