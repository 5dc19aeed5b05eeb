package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vec3 is a yaml-friendly float triple. Converted to mgl32.Vec3 at the call
// sites that need math on it.
type Vec3 [3]float32

// Config carries every visually tuned constant in the demo. The values in
// Default are the scene as composed; a YAML file can overlay individual
// fields for experimentation without rebuilding.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Camera     CameraConfig     `yaml:"camera"`
	Projection ProjectionConfig `yaml:"projection"`
	Scene      SceneConfig      `yaml:"scene"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraConfig struct {
	Position    Vec3    `yaml:"position"`
	Front       Vec3    `yaml:"front"` // normalized on use
	Up          Vec3    `yaml:"up"`
	FOV         float32 `yaml:"fov"` // degrees
	Yaw         float32 `yaml:"yaw"`
	Pitch       float32 `yaml:"pitch"`
	Sensitivity float32 `yaml:"sensitivity"`
	BaseSpeed   float32 `yaml:"base_speed"`
}

type ProjectionConfig struct {
	OrthoScale  float32 `yaml:"ortho_scale"` // half-height of the ortho box
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	OrthoTarget Vec3    `yaml:"ortho_target"` // fixed look-at point in ortho mode
	OrthoOffset Vec3    `yaml:"ortho_offset"` // camera offset from the target
}

type TextureFile struct {
	Path string `yaml:"path"`
	Tag  string `yaml:"tag"`
}

type SceneConfig struct {
	Textures []TextureFile `yaml:"textures"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1000,
			Height: 800,
			Title:  "Tabletop",
		},
		Camera: CameraConfig{
			Position:    Vec3{0, 5, 12},
			Front:       Vec3{0, -0.25, -1},
			Up:          Vec3{0, 1, 0},
			FOV:         80,
			Yaw:         -90,
			Pitch:       0,
			Sensitivity: 0.35,
			BaseSpeed:   3.5,
		},
		Projection: ProjectionConfig{
			OrthoScale:  3.5,
			Near:        0.1,
			Far:         100,
			OrthoTarget: Vec3{0, 0.85, -2.8},
			OrthoOffset: Vec3{0, 1.5, 6},
		},
		Scene: SceneConfig{
			Textures: []TextureFile{
				{Path: "resources/textures/wood.png", Tag: "wood"},
				{Path: "resources/textures/ceramic.png", Tag: "ceramic"},
			},
		},
	}
}

// Load returns Default overlaid with the YAML file at path. A missing file
// is not an error; a present but unparsable one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
