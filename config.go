// config.go - Render parameters loaded from an optional TOML file,
// grounded on the same BurntSushi/toml decode-or-fatal pattern used
// for on-disk config elsewhere in the ecosystem.

package main

import (
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

// RenderConfig is every tunable of a render: output size, sampling
// budget, and camera placement. LoadConfig starts from
// DefaultRenderConfig and overrides only the keys present in the file;
// a key present with a zero value is kept as zero.
type RenderConfig struct {
	Width        int
	Samples      int
	MaxDepth     int
	VFov         float64
	LookFrom     Point3
	LookAt       Point3
	VUp          Vec3
	DefocusAngle float64
	FocusDist    float64
	Workers      int
	Seed         int64
	OutputPath   string
}

// DefaultRenderConfig mirrors the book-cover scene's reference
// parameters.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:        1200,
		Samples:      10,
		MaxDepth:     50,
		VFov:         20,
		LookFrom:     Point3{X: 13, Y: 2, Z: 3},
		LookAt:       Point3{X: 0, Y: 0, Z: 0},
		VUp:          Vec3{X: 0, Y: 1, Z: 0},
		DefocusAngle: 0.6,
		FocusDist:    10.0,
		Workers:      0,
		Seed:         1,
		OutputPath:   "render.jpg",
	}
}

// tomlRenderConfig is the on-disk shape. Every field is a pointer so
// an absent key leaves the corresponding default untouched rather
// than zeroing it out.
type tomlRenderConfig struct {
	Width        *int     `toml:"width"`
	Samples      *int     `toml:"samples"`
	MaxDepth     *int     `toml:"max_depth"`
	VFov         *float64 `toml:"vfov"`
	LookFromX    *float64 `toml:"lookfrom_x"`
	LookFromY    *float64 `toml:"lookfrom_y"`
	LookFromZ    *float64 `toml:"lookfrom_z"`
	LookAtX      *float64 `toml:"lookat_x"`
	LookAtY      *float64 `toml:"lookat_y"`
	LookAtZ      *float64 `toml:"lookat_z"`
	DefocusAngle *float64 `toml:"defocus_angle"`
	FocusDist    *float64 `toml:"focus_dist"`
	Workers      *int     `toml:"workers"`
	Seed         *int64   `toml:"seed"`
	OutputPath   *string  `toml:"output_path"`
}

// LoadConfig returns DefaultRenderConfig unchanged when path does not
// exist, since an absent config file is normal operation, not an
// error. A present-but-malformed file is fatal: a render the user
// asked to customize should not silently fall back to defaults.
func LoadConfig(path string) RenderConfig {
	cfg := DefaultRenderConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg
	}

	var raw tomlRenderConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		log.Fatalf("couldn't read config file %q: %v", path, err)
	}

	if raw.Width != nil {
		cfg.Width = *raw.Width
	}
	if raw.Samples != nil {
		cfg.Samples = *raw.Samples
	}
	if raw.MaxDepth != nil {
		cfg.MaxDepth = *raw.MaxDepth
	}
	if raw.VFov != nil {
		cfg.VFov = *raw.VFov
	}
	if raw.LookFromX != nil {
		cfg.LookFrom.X = *raw.LookFromX
	}
	if raw.LookFromY != nil {
		cfg.LookFrom.Y = *raw.LookFromY
	}
	if raw.LookFromZ != nil {
		cfg.LookFrom.Z = *raw.LookFromZ
	}
	if raw.LookAtX != nil {
		cfg.LookAt.X = *raw.LookAtX
	}
	if raw.LookAtY != nil {
		cfg.LookAt.Y = *raw.LookAtY
	}
	if raw.LookAtZ != nil {
		cfg.LookAt.Z = *raw.LookAtZ
	}
	if raw.DefocusAngle != nil {
		cfg.DefocusAngle = *raw.DefocusAngle
	}
	if raw.FocusDist != nil {
		cfg.FocusDist = *raw.FocusDist
	}
	if raw.Workers != nil {
		cfg.Workers = *raw.Workers
	}
	if raw.Seed != nil {
		cfg.Seed = *raw.Seed
	}
	if raw.OutputPath != nil {
		cfg.OutputPath = *raw.OutputPath
	}

	return cfg
}
