// Package config handles application configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Sculpt   SculptConfig   `yaml:"sculpt"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Wireframe  bool `yaml:"wireframe"`
	DrawOctree bool `yaml:"draw_octree"`
}

// SculptConfig holds the initial model and spatial index settings.
type SculptConfig struct {
	OctreeRootWidth float32 `yaml:"octree_root_width"`
	SphereRadius    float32 `yaml:"sphere_radius"`
	Subdivisions    int     `yaml:"subdivisions"`
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	Distance        float32 `yaml:"distance"`
	FOV             float32 `yaml:"fov"`
	DragSensitivity float32 `yaml:"drag_sensitivity"`
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Wireframe:  false,
			DrawOctree: false,
		},
		Sculpt: SculptConfig{
			OctreeRootWidth: 8,
			SphereRadius:    1,
			Subdivisions:    3,
		},
		Camera: CameraConfig{
			Distance:        6,
			FOV:             45,
			DragSensitivity: 0.005,
			ZoomSensitivity: 0.1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
