// Package config handles tool configuration loading and management.
package config

// Config holds all planegen settings.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Export  ExportConfig  `yaml:"export"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// GridConfig holds the plane subdivision parameters.
type GridConfig struct {
	SubdivideX int `yaml:"subdivide_x"`
	SubdivideY int `yaml:"subdivide_y"`
}

// ExportConfig holds mesh export settings.
type ExportConfig struct {
	Format string `yaml:"format"` // "obj" or "json"
	Output string `yaml:"output"` // output path, "-" for stdout
	Name   string `yaml:"name"`   // object name written into OBJ output
}

// ViewerConfig holds preview window settings.
type ViewerConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	VSync     bool `yaml:"vsync"`
	Wireframe bool `yaml:"wireframe"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			SubdivideX: 1,
			SubdivideY: 1,
		},
		Export: ExportConfig{
			Format: "obj",
			Output: "-",
			Name:   "plane",
		},
		Viewer: ViewerConfig{
			Width:     1024,
			Height:    768,
			VSync:     true,
			Wireframe: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
