package game

import (
	"time"

	"color-snake/game/entity"
	"color-snake/game/manager"
	"color-snake/game/rng"
	"color-snake/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrAmbiguousFood means the head sits on zero or two food cells after a food
// outcome. Respawns keep the two food cells apart, so this is a broken
// invariant rather than a game situation.
var ErrAmbiguousFood = errors.New("eaten food slot is ambiguous")

// EndReason records why a round stopped.
type EndReason int

const (
	EndNone EndReason = iota
	EndItself
	EndWall
	EndBoardFull
)

var endReasonNames = [...]string{"none", "itself", "wall", "board_full"}

func (r EndReason) String() string {
	if r < EndNone || r > EndBoardFull {
		return "unknown"
	}
	return endReasonNames[r]
}

// TickResult summarizes what happened during one Tick.
type TickResult struct {
	Tick        uint64
	Ate         entity.Ate
	Scored      bool
	WallAdded   bool
	WallRemoved bool
	GameOver    bool
}

// Game is the whole simulation state. It is not safe for concurrent use; the
// driver calls Tick and SetDirection from a single loop.
type Game struct {
	grid   types.Grid
	src    rng.Source
	logger zerolog.Logger

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	wallMgr      *manager.WallManager

	snake     *entity.Snake
	food      [types.FoodSlots]entity.Food
	allowed   types.Color
	score     int64
	ticks     uint64
	gameOver  bool
	endReason EndReason
	paused    bool

	sessionID string
	startTime time.Time
}

// NewGame sets up a round on grid, drawing every random choice from src.
func NewGame(grid types.Grid, src rng.Source, logger zerolog.Logger) *Game {
	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		grid:         grid,
		src:          src,
		logger:       logger,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, src, collisionMgr),
		wallMgr:      manager.NewWallManager(grid, src, logger),
	}
	g.Reset()
	return g
}

// Reset starts a fresh round on the same grid and generator.
func (g *Game) Reset() {
	g.snake = entity.NewSnake(types.Point{X: g.grid.Width / 4, Y: g.grid.Height / 2}, g.grid)
	g.wallMgr.Reset()
	g.allowed = types.DefaultColor
	g.score = 0
	g.ticks = 0
	g.gameOver = false
	g.endReason = EndNone
	g.paused = false
	g.sessionID = uuid.New().String()
	g.startTime = time.Now()

	food, err := g.foodMgr.InitialFood(g.snake)
	if err != nil {
		// Only a grid too small to hold the snake and two food items gets here.
		g.end(EndBoardFull)
		g.logger.Error().Err(err).Msg("cannot place initial food")
	}
	g.food = food

	g.logger.Debug().
		Str("session", g.sessionID).
		Int("width", g.grid.Width).
		Int("height", g.grid.Height).
		Msg("round started")
}

// SetDirection forwards a direction request to the snake.
func (g *Game) SetDirection(dir types.Direction) {
	if g.gameOver {
		return
	}
	g.snake.SetDirection(dir)
}

// TogglePause flips the paused flag; ticks do nothing while paused.
func (g *Game) TogglePause() {
	if g.gameOver {
		return
	}
	g.paused = !g.paused
}

// Tick advances the simulation one step. After game over, or while paused,
// it changes nothing.
func (g *Game) Tick() TickResult {
	if g.gameOver || g.paused {
		return TickResult{Tick: g.ticks, Ate: entity.AteNone, GameOver: g.gameOver}
	}

	g.ticks++
	g.snake.Update(&g.food, g.wallMgr.Walls())
	res := TickResult{Tick: g.ticks, Ate: g.snake.Ate}

	switch g.snake.Ate {
	case entity.AteFood:
		g.eat(&res)
	case entity.AteItself:
		g.end(EndItself)
	case entity.AteWall:
		g.end(EndWall)
	}

	res.GameOver = g.gameOver
	return res
}

func (g *Game) eat(res *TickResult) {
	index, err := g.EatenFoodIndex()
	if err != nil {
		g.logger.Error().Err(err).Stringer("head", g.snake.Head.Pos).Msg("food outcome without a single food match")
		return
	}
	eaten := g.food[index]

	if eaten.Color == g.allowed {
		g.score++
		res.Scored = true
		res.WallRemoved = g.wallMgr.RemoveLast()
	} else {
		other := g.food[(index+1)%types.FoodSlots].Pos
		if _, err := g.wallMgr.Add(g.snake, other); err != nil {
			g.logger.Warn().Err(err).Msg("no wall placed")
		} else {
			res.WallAdded = true
		}
	}

	if err := g.foodMgr.Respawn(&g.food, index, g.snake, g.wallMgr.Walls()); err != nil {
		g.logger.Info().Err(err).Msg("board is full")
		g.end(EndBoardFull)
		return
	}

	g.allowed = g.food[g.src.Intn(types.FoodSlots)].Color

	g.logger.Debug().
		Int("slot", index).
		Stringer("eaten", eaten.Color).
		Stringer("allowed", g.allowed).
		Int64("score", g.score).
		Int("walls", g.wallMgr.Len()).
		Msg("food eaten")
}

// EatenFoodIndex returns the food slot under the snake's head. It fails with
// ErrAmbiguousFood unless exactly one slot matches.
func (g *Game) EatenFoodIndex() (int, error) {
	index, ok := g.collisionMgr.CheckFoodCollisions(g.snake.Head.Pos, &g.food)
	if !ok {
		return -1, errors.Wrapf(ErrAmbiguousFood, "head at %v", g.snake.Head.Pos)
	}
	return index, nil
}

func (g *Game) end(reason EndReason) {
	g.gameOver = true
	g.endReason = reason
	g.paused = false
	g.logger.Info().
		Str("session", g.sessionID).
		Stringer("reason", reason).
		Int64("score", g.score).
		Uint64("ticks", g.ticks).
		Msg("game over")
}

func (g *Game) Grid() types.Grid { return g.grid }
func (g *Game) Snake() *entity.Snake { return g.snake }
func (g *Game) Walls() []*entity.Wall { return g.wallMgr.Walls() }
func (g *Game) Food() [types.FoodSlots]entity.Food { return g.food }
func (g *Game) AllowedColor() types.Color { return g.allowed }
func (g *Game) Score() int64 { return g.score }
func (g *Game) Ticks() uint64 { return g.ticks }
func (g *Game) GameOver() bool { return g.gameOver }
func (g *Game) EndReason() EndReason { return g.endReason }
func (g *Game) Paused() bool { return g.paused }
func (g *Game) SessionID() string { return g.sessionID }
func (g *Game) StartTime() time.Time { return g.startTime }

// SessionRecord summarizes the round for the stats store.
func (g *Game) SessionRecord(end time.Time) manager.SessionRecord {
	return manager.SessionRecord{
		ID:        g.sessionID,
		Score:     g.score,
		Ticks:     g.ticks,
		Walls:     g.wallMgr.Len(),
		EndReason: g.endReason.String(),
		StartTime: g.startTime,
		EndTime:   end,
	}
}
