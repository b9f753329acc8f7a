package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"color-snake/ai"
	"color-snake/config"
	"color-snake/game"
	"color-snake/game/manager"
	"color-snake/game/rng"
	"color-snake/game/types"
	"color-snake/logging"
	"color-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "snake.toml", "Path to the TOML config file")
	seed := flag.Uint64("seed", 0, "RNG seed (0 keeps the config value)")
	speed := flag.Int("speed", 0, "Ticks per second (0 keeps the config value)")
	autopilot := flag.Bool("autopilot", false, "Let the Q-learning agent play")
	train := flag.Int("train", 0, "Train the agent headless for N episodes and exit")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLogger.Fatal().Err(err).Str("path", *configPath).Msg("loading config")
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *speed != 0 {
		cfg.TickRate = *speed
	}
	if *autopilot {
		cfg.Autopilot = true
	}
	if *mute {
		cfg.Window.Sound = false
	}

	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		logger.Warn().Err(err).Msg("falling back to default log level")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	if *train > 0 {
		runTraining(cfg, *train, logger)
		return
	}
	run(cfg, logger)
}

func runTraining(cfg config.Config, episodes int, logger zerolog.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	q := ai.NewQLearning(rng.New(cfg.Seed))
	if err := q.Load(cfg.Files.QTable); err != nil {
		logger.Info().Err(err).Msg("starting with an empty q-table")
	}

	start := time.Now()
	report, err := ai.Train(ctx, ai.TrainConfig{
		Grid:     cfg.GameGrid(),
		Seed:     cfg.Seed,
		Episodes: episodes,
	}, q, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("training stopped early")
	}

	logger.Info().
		Int("episodes", report.Episodes).
		Int64("best", report.Best).
		Float64("average", report.Average).
		Int("states", len(q.QTable)).
		Dur("elapsed", time.Since(start)).
		Msg("training finished")

	if err := q.Save(cfg.Files.QTable); err != nil {
		logger.Error().Err(err).Msg("saving q-table")
	}
}

func run(cfg config.Config, logger zerolog.Logger) {
	grid := cfg.GameGrid()
	src := rng.New(cfg.Seed)
	g := game.NewGame(grid, src, logger)

	stats := manager.NewStateManager(cfg.Files.Stats, logger)
	if err := stats.Load(); err != nil {
		logger.Warn().Err(err).Msg("ignoring unreadable stats file")
	}

	var (
		q     *ai.QLearning
		pilot *ai.Pilot
	)
	if cfg.Autopilot {
		q = ai.NewQLearning(src)
		if err := q.Load(cfg.Files.QTable); err != nil {
			logger.Info().Err(err).Msg("autopilot starting with an empty q-table")
		}
		pilot = ai.NewPilot(q)
	}

	sound, err := ui.NewSound(!cfg.Window.Sound)
	if err != nil {
		logger.Warn().Err(err).Msg("sound disabled")
	}
	defer sound.Close()

	width, height := ui.WindowSize(grid, cfg.Window.CellSize)
	rl.InitWindow(width, height, "Color Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.FPS))

	renderer := ui.NewRenderer()
	lastUpdate := time.Now()
	updateInterval := time.Second / time.Duration(cfg.TickRate)
	recorded := false
	var res game.TickResult

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		if dir := readDirection(); dir != types.None && pilot == nil {
			g.SetDirection(dir)
		}
		if rl.IsKeyPressed(rl.KeyP) {
			g.TogglePause()
		}
		if rl.IsKeyPressed(rl.KeyR) && g.GameOver() {
			g.Reset()
			res = game.TickResult{}
			recorded = false
		}

		if time.Since(lastUpdate) >= updateInterval && !g.Paused() {
			if pilot != nil {
				pilot.Step(g, res)
			}
			res = g.Tick()
			sound.Play(res)
			lastUpdate = time.Now()

			if g.GameOver() && !recorded {
				if pilot != nil {
					// let the agent see the terminal transition
					pilot.Step(g, res)
				}
				recordSession(g, stats, logger)
				recorded = true
			}
		}

		renderer.Draw(g.Snapshot(), ui.HUD{HighScore: stats.HighScore(), Autopilot: pilot != nil})
	}

	if !g.GameOver() && g.Ticks() > 0 {
		recordSession(g, stats, logger)
	}
	if q != nil {
		if err := q.Save(cfg.Files.QTable); err != nil {
			logger.Error().Err(err).Msg("saving q-table")
		}
	}
}

func readDirection() types.Direction {
	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		return types.Up
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		return types.Right
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		return types.Down
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		return types.Left
	}
	return types.None
}

func recordSession(g *game.Game, stats *manager.StateManager, logger zerolog.Logger) {
	stats.Record(g.SessionRecord(time.Now()))
	if err := stats.Save(); err != nil {
		logger.Error().Err(err).Msg("saving stats")
	}
}
