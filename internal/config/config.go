// Package config handles editor configuration loading and management.
package config

// Config holds all editor settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Curve   CurveConfig   `yaml:"curve"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds the perspective camera parameters.
type CameraConfig struct {
	FieldOfView float32    `yaml:"field_of_view"` // degrees
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	Position    [3]float32 `yaml:"position"`
	At          [3]float32 `yaml:"at"`
	PanSpeed    float32    `yaml:"pan_speed"` // world units per second
}

// CurveConfig holds curve and control point settings.
type CurveConfig struct {
	Shape        string     `yaml:"shape"` // "bezier" or "polyline"
	Iterations   int        `yaml:"iterations"`
	Capacity     int        `yaml:"capacity"` // control points
	PickEpsilon  float32    `yaml:"pick_epsilon"`
	Color        [3]float32 `yaml:"color"`
	ControlColor [3]float32 `yaml:"control_color"`
	ControlSize  float32    `yaml:"control_size"` // pixels
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Curve Board",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			FieldOfView: 70,
			Near:        0.1,
			Far:         1000,
			Position:    [3]float32{0, 0, -3},
			At:          [3]float32{0, 0, 0},
			PanSpeed:    2,
		},
		Curve: CurveConfig{
			Shape:        "bezier",
			Iterations:   20,
			Capacity:     20,
			PickEpsilon:  0.01,
			Color:        [3]float32{1, 1, 1},
			ControlColor: [3]float32{0.5, 0.5, 0},
			ControlSize:  5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
