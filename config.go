package cadence

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings a Director and its host are built from. The
// cutscene timeline itself is code, not configuration.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Debug  bool   `yaml:"debug"`

	// TweenPoolSize and CameraPoolSize are the number of pooled slots
	// allocated up front. Pools grow past them on demand.
	TweenPoolSize  int `yaml:"tween_pool_size"`
	CameraPoolSize int `yaml:"camera_pool_size"`

	Parallax  ParallaxConfig  `yaml:"parallax"`
	Crossfade CrossfadeConfig `yaml:"crossfade"`
}

// ParallaxConfig tunes Parallax. Zero key strengths mean half the viewport
// extent on that axis.
type ParallaxConfig struct {
	KeyStrengthX float64 `yaml:"key_strength_x"`
	KeyStrengthY float64 `yaml:"key_strength_y"`
}

// CrossfadeConfig tunes every Crossfade added to a Director.
type CrossfadeConfig struct {
	Curve Curve `yaml:"curve"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Title:          "cadence",
		Width:          1280,
		Height:         720,
		TPS:            60,
		TweenPoolSize:  64,
		CameraPoolSize: 4,
		Crossfade:      CrossfadeConfig{Curve: InQuad},
	}
}

// LoadConfig parses YAML over DefaultConfig. Keys absent from data keep
// their defaults; unknown keys are an error.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("cadence: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cadence: read config: %w", err)
	}
	return LoadConfig(data)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("cadence: invalid viewport %dx%d", c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("cadence: invalid tps %d", c.TPS)
	case c.TweenPoolSize < 0:
		return fmt.Errorf("cadence: invalid tween_pool_size %d", c.TweenPoolSize)
	case c.CameraPoolSize < 0:
		return fmt.Errorf("cadence: invalid camera_pool_size %d", c.CameraPoolSize)
	case c.Parallax.KeyStrengthX < 0 || c.Parallax.KeyStrengthY < 0:
		return errors.New("cadence: parallax key strengths must be >= 0")
	}
	return nil
}

// Viewport returns the screen rectangle described by Width and Height.
func (c Config) Viewport() Rect {
	return Rect{Width: float64(c.Width), Height: float64(c.Height)}
}

// keyStrength resolves the parallax key strengths against the viewport.
func (c Config) keyStrength() (x, y float64) {
	x, y = c.Parallax.KeyStrengthX, c.Parallax.KeyStrengthY
	if x == 0 {
		x = float64(c.Width) / 2
	}
	if y == 0 {
		y = float64(c.Height) / 2
	}
	return x, y
}
