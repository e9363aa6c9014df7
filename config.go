package pegdrop

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config controls scene construction.
type Config struct {
	// Width and Height are the scene size in world units.
	Width, Height float64
	// TPS is the fixed simulation rate; each Update advances physics by 1/TPS.
	TPS int
	// ScrollStep is how far the camera and edit label move per tick.
	ScrollStep float64
	// BackgroundBaseY is the background's Y before any external offset.
	BackgroundBaseY float64
	// Gravity is the downward acceleration in world units per second squared.
	Gravity float64
	// Seed seeds the spawn random source. Zero picks a time-based seed.
	Seed uint64
	// Debug enables debug diagnostics on stderr.
	Debug bool
	// AssetDir is read by LoadConfig callers that serve assets from disk.
	AssetDir string
	// ScreenshotDir receives PNGs queued with Scene.Screenshot.
	ScreenshotDir string
}

// DefaultConfig returns the landscape layout the scene was designed for.
func DefaultConfig() Config {
	return Config{
		Width:           1024,
		Height:          768,
		TPS:             60,
		ScrollStep:      1.0,
		BackgroundBaseY: 256,
		Gravity:         980,
		AssetDir:        "assets",
		ScreenshotDir:   "screenshots",
	}
}

// configKeys maps environment keys to setters.
var configKeys = map[string]func(*Config, string) error{
	"PEGDROP_WIDTH":       func(c *Config, v string) error { return parseFloat(v, &c.Width) },
	"PEGDROP_HEIGHT":      func(c *Config, v string) error { return parseFloat(v, &c.Height) },
	"PEGDROP_SCROLL_STEP": func(c *Config, v string) error { return parseFloat(v, &c.ScrollStep) },
	"PEGDROP_GRAVITY":     func(c *Config, v string) error { return parseFloat(v, &c.Gravity) },
	"PEGDROP_TPS": func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.TPS = n
		return nil
	},
	"PEGDROP_SEED": func(c *Config, v string) error {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return err
		}
		c.Seed = n
		return nil
	},
	"PEGDROP_DEBUG": func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.Debug = b
		return nil
	},
	"PEGDROP_ASSET_DIR": func(c *Config, v string) error {
		c.AssetDir = v
		return nil
	},
	"PEGDROP_SCREENSHOT_DIR": func(c *Config, v string) error {
		c.ScreenshotDir = v
		return nil
	},
}

func parseFloat(v string, dst *float64) error {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	*dst = f
	return nil
}

// LoadConfig starts from DefaultConfig, applies PEGDROP_* keys found in the
// given .env files (missing files are skipped), then applies the process
// environment, which wins over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	cfg := DefaultConfig()
	values := make(map[string]string)
	for _, path := range envFiles {
		m, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return cfg, fmt.Errorf("read %s: %w", path, err)
		}
		for k, v := range m {
			values[k] = v
		}
	}
	for k := range configKeys {
		if v, ok := os.LookupEnv(k); ok {
			values[k] = v
		}
	}
	for k, v := range values {
		set, ok := configKeys[k]
		if !ok {
			continue
		}
		if err := set(&cfg, v); err != nil {
			return cfg, fmt.Errorf("config %s=%q: %w", k, v, err)
		}
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: scene size %gx%g must be positive", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("config: TPS %d must be positive", c.TPS)
	}
	return nil
}
