// Package config loads the game settings from an optional TOML file.
package config

import (
	"bytes"
	"os"

	"color-snake/game/types"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	MinGridSide = 8 // a wall plus some room to steer around it
	MaxTickRate = 120
	MinCellSize = 4
)

type Grid struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type Window struct {
	CellSize int  `toml:"cell_size"`
	FPS      int  `toml:"fps"`
	Sound    bool `toml:"sound"`
}

type Files struct {
	Stats  string `toml:"stats"`
	QTable string `toml:"qtable"`
}

type Config struct {
	Grid      Grid   `toml:"grid"`
	TickRate  int    `toml:"tick_rate"` // simulation steps per second
	Seed      uint64 `toml:"seed"`      // 0 seeds from the clock
	Autopilot bool   `toml:"autopilot"`
	LogLevel  string `toml:"log_level"`
	Window    Window `toml:"window"`
	Files     Files  `toml:"files"`
}

func Default() Config {
	return Config{
		Grid:     Grid{Width: types.DefaultGridWidth, Height: types.DefaultGridHeight},
		TickRate: 8,
		LogLevel: "info",
		Window: Window{
			CellSize: 20,
			FPS:      60,
			Sound:    true,
		},
		Files: Files{
			Stats:  "data/stats.json",
			QTable: "data/qtable.json",
		},
	}
}

// Load overlays the TOML file at path on the defaults. A missing file is not
// an error. Unknown keys are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "decoding config %s", path)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Grid.Width < MinGridSide || c.Grid.Height < MinGridSide {
		return errors.Errorf("grid %dx%d is smaller than %dx%d", c.Grid.Width, c.Grid.Height, MinGridSide, MinGridSide)
	}
	if c.TickRate < 1 || c.TickRate > MaxTickRate {
		return errors.Errorf("tick_rate %d outside 1..%d", c.TickRate, MaxTickRate)
	}
	if c.Window.CellSize < MinCellSize {
		return errors.Errorf("window.cell_size %d below %d", c.Window.CellSize, MinCellSize)
	}
	if c.Window.FPS < c.TickRate {
		return errors.Errorf("window.fps %d below tick_rate %d", c.Window.FPS, c.TickRate)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "log_level %q", c.LogLevel)
	}
	return nil
}

// GameGrid converts the configured size to the simulation's grid type.
func (c Config) GameGrid() types.Grid {
	return types.Grid{Width: c.Grid.Width, Height: c.Grid.Height}
}
