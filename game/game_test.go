package game

import (
	"reflect"
	"testing"

	"color-snake/game/entity"
	"color-snake/game/rng"
	"color-snake/game/types"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// swappable lets a test replace the draws mid-game without rebuilding the
// managers that hold the source.
type swappable struct {
	inner rng.Source
}

func (s *swappable) Intn(n int) int { return s.inner.Intn(n) }

type scripted struct {
	vals []int
	i    int
}

func (s *scripted) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func pt(x, y int) types.Point { return types.Point{X: x, Y: y} }

func newTestGame(t *testing.T, seed uint64) (*Game, *swappable) {
	t.Helper()
	src := &swappable{inner: rng.New(seed)}
	return NewGame(types.DefaultGrid(), src, zerolog.Nop()), src
}

// centered puts the snake in the middle of the grid heading right, with food
// slot 0 one cell ahead.
func centered(g *Game, color types.Color) {
	center := pt(g.grid.Width/2, g.grid.Height/2)
	g.snake = entity.NewSnake(center, g.grid)
	g.food[0] = entity.Food{Pos: center.Move(types.Right, g.grid), Color: color}
	g.food[1] = entity.Food{Pos: pt(0, 0), Color: types.Red}
	g.allowed = types.Blue
}

func TestNewGameInitialState(t *testing.T) {
	g, _ := newTestGame(t, 1)

	if g.Snake().Head.Pos != pt(12, 15) {
		t.Errorf("head = %v, want (12,15)", g.Snake().Head.Pos)
	}
	if g.Score() != 0 || g.GameOver() || len(g.Walls()) != 0 {
		t.Errorf("unexpected initial state: score=%d over=%v walls=%d", g.Score(), g.GameOver(), len(g.Walls()))
	}
	if g.AllowedColor() != types.DefaultColor {
		t.Errorf("allowed = %v", g.AllowedColor())
	}
	food := g.Food()
	if food[0].Pos == food[1].Pos {
		t.Error("initial food overlaps")
	}
	for _, f := range food {
		if g.Snake().Occupies(f.Pos) {
			t.Errorf("food on snake at %v", f.Pos)
		}
		if f.Color != types.DefaultColor {
			t.Errorf("food color = %v", f.Color)
		}
	}
	if g.SessionID() == "" {
		t.Error("empty session id")
	}
}

func TestEatAllowedColorScores(t *testing.T) {
	g, _ := newTestGame(t, 7)
	centered(g, types.Blue)

	res := g.Tick()

	if res.Ate != entity.AteFood || !res.Scored {
		t.Fatalf("result = %+v", res)
	}
	if g.Score() != 1 {
		t.Errorf("score = %d, want 1", g.Score())
	}
	if len(g.Walls()) != 0 || res.WallRemoved {
		t.Errorf("walls = %d, removed = %v", len(g.Walls()), res.WallRemoved)
	}

	food := g.Food()
	if food[0].Pos == g.Snake().Head.Pos {
		t.Error("eaten food was not respawned")
	}
	if g.Occupied(food[0].Pos) {
		t.Errorf("respawned food on occupied cell %v", food[0].Pos)
	}
	if g.AllowedColor() != food[0].Color && g.AllowedColor() != food[1].Color {
		t.Errorf("allowed %v is not a food color (%v, %v)", g.AllowedColor(), food[0].Color, food[1].Color)
	}
	if g.Snake().Len() != 3 {
		t.Errorf("snake len = %d, want 3", g.Snake().Len())
	}
}

func TestEatWrongColorSpawnsWall(t *testing.T) {
	g, _ := newTestGame(t, 8)
	centered(g, types.Red)

	res := g.Tick()

	if res.Scored || !res.WallAdded {
		t.Fatalf("result = %+v", res)
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, want 0", g.Score())
	}
	if len(g.Walls()) != 1 {
		t.Fatalf("walls = %d, want 1", len(g.Walls()))
	}
	wall := g.Walls()[0]
	if wall.Body.Len() != types.WallLength {
		t.Errorf("wall has %d cells", wall.Body.Len())
	}
	for _, f := range g.Food() {
		if wall.Contains(f.Pos) {
			t.Errorf("food at %v inside new wall %v", f.Pos, wall.Positions())
		}
	}
	for _, p := range wall.Positions() {
		if g.Snake().Occupies(p) {
			t.Errorf("wall cell %v on snake", p)
		}
	}
}

func TestEatAllowedRemovesNewestWall(t *testing.T) {
	g, _ := newTestGame(t, 9)
	centered(g, types.Blue)
	if _, err := g.wallMgr.Add(g.snake, g.food[0].Pos); err != nil {
		t.Fatal(err)
	}
	if _, err := g.wallMgr.Add(g.snake, g.food[0].Pos); err != nil {
		t.Fatal(err)
	}
	oldest := g.Walls()[0]

	res := g.Tick()

	if !res.Scored || !res.WallRemoved {
		t.Fatalf("result = %+v", res)
	}
	if len(g.Walls()) != 1 || g.Walls()[0] != oldest {
		t.Error("newest wall should have been removed")
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g, _ := newTestGame(t, 3)
	g.snake.Head = entity.NewSegment(pt(5, 5))
	g.snake.Body = entity.NewBody(
		entity.NewSegment(pt(4, 5)),
		entity.NewSegment(pt(4, 6)),
		entity.NewSegment(pt(5, 6)),
		entity.NewSegment(pt(6, 6)),
	)
	g.snake.Dir = types.Down
	g.snake.LastUpdateDir = types.Down
	g.food[0].Pos, g.food[1].Pos = pt(40, 1), pt(41, 1)

	res := g.Tick()

	if res.Ate != entity.AteItself || !res.GameOver {
		t.Fatalf("result = %+v", res)
	}
	if !g.GameOver() || g.EndReason() != EndItself {
		t.Errorf("over=%v reason=%v", g.GameOver(), g.EndReason())
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	g, src := newTestGame(t, 4)
	centered(g, types.Blue)
	g.food[0].Pos = pt(40, 1)

	src.inner = &scripted{vals: []int{27, 15, 1}}
	if _, err := g.wallMgr.Add(g.snake); err != nil {
		t.Fatal(err)
	}
	src.inner = rng.New(4)

	if res := g.Tick(); res.GameOver {
		t.Fatalf("first step should be clear: %+v", res)
	}
	res := g.Tick()
	if res.Ate != entity.AteWall || !res.GameOver {
		t.Fatalf("result = %+v", res)
	}
	if g.EndReason() != EndWall {
		t.Errorf("reason = %v", g.EndReason())
	}
}

func TestTicksAfterGameOverChangeNothing(t *testing.T) {
	g, _ := newTestGame(t, 5)
	centered(g, types.Red)
	g.Tick()
	g.end(EndWall)

	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.SetDirection(types.Up)
		g.TogglePause()
		if res := g.Tick(); !res.GameOver || res.Ate != entity.AteNone {
			t.Fatalf("tick after game over returned %+v", res)
		}
	}
	if after := g.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Errorf("state changed after game over:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestPauseFreezesTicks(t *testing.T) {
	g, _ := newTestGame(t, 6)
	g.TogglePause()
	before := g.Snapshot()
	g.Tick()
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("paused tick changed state")
	}
	g.TogglePause()
	g.Tick()
	if g.Ticks() != 1 {
		t.Errorf("ticks = %d, want 1", g.Ticks())
	}
}

func TestAmbiguousFoodIsReported(t *testing.T) {
	g, _ := newTestGame(t, 10)
	centered(g, types.Blue)
	g.food[1] = g.food[0]

	res := g.Tick()

	if _, err := g.EatenFoodIndex(); !errors.Is(err, ErrAmbiguousFood) {
		t.Errorf("err = %v, want ErrAmbiguousFood", err)
	}
	if res.Scored || res.WallAdded || g.Score() != 0 {
		t.Errorf("ambiguous eat should not resolve: %+v", res)
	}
}

func TestBoardFullEndsGame(t *testing.T) {
	grid := types.Grid{Width: 8, Height: 8}
	g := NewGame(grid, rng.New(11), zerolog.Nop())

	g.snake = entity.NewSnake(pt(0, 0), grid)
	var segs []entity.Segment
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := pt(x, y)
			if p == pt(0, 0) || p == pt(1, 0) || p == pt(7, 7) {
				continue
			}
			segs = append(segs, entity.NewSegment(p))
		}
	}
	g.snake.Body = entity.NewBody(segs...)
	g.food[0] = entity.Food{Pos: pt(1, 0), Color: types.Blue}
	g.food[1] = entity.Food{Pos: pt(7, 7), Color: types.Red}
	g.allowed = types.Blue

	res := g.Tick()

	if !res.Scored || !res.GameOver {
		t.Fatalf("result = %+v", res)
	}
	if g.EndReason() != EndBoardFull {
		t.Errorf("reason = %v", g.EndReason())
	}
}

func TestResetStartsFreshRound(t *testing.T) {
	g, _ := newTestGame(t, 12)
	centered(g, types.Red)
	g.Tick()
	g.end(EndWall)
	oldSession := g.SessionID()

	g.Reset()

	if g.GameOver() || g.Score() != 0 || len(g.Walls()) != 0 || g.Ticks() != 0 {
		t.Errorf("reset left state behind: %+v", g.Snapshot())
	}
	if g.SessionID() == oldSession {
		t.Error("reset kept the session id")
	}
}

func TestSameSeedSameGame(t *testing.T) {
	play := func() Snapshot {
		g := NewGame(types.DefaultGrid(), rng.New(31337), zerolog.Nop())
		inputs := rng.New(5)
		for i := 0; i < 500 && !g.GameOver(); i++ {
			if i%3 == 0 {
				g.SetDirection(types.Directions()[inputs.Intn(4)])
			}
			g.Tick()
		}
		return g.Snapshot()
	}
	if a, b := play(), play(); !reflect.DeepEqual(a, b) {
		t.Errorf("same seed diverged:\n%+v\n%+v", a, b)
	}
}

// TestRandomPlayInvariants drives many seeded games with random input and
// checks the per-tick bookkeeping rules.
func TestRandomPlayInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 40; seed++ {
		g := NewGame(types.DefaultGrid(), rng.New(seed), zerolog.Nop())
		inputs := rng.New(seed * 101)

		for i := 0; i < 2000 && !g.GameOver(); i++ {
			if inputs.Intn(4) == 0 {
				g.SetDirection(types.Directions()[inputs.Intn(4)])
			}
			// Steer onto food now and then so the food paths get exercised.
			if inputs.Intn(10) == 0 {
				ahead := g.snake.Head.Pos.Move(g.snake.Dir, g.grid)
				if ahead != g.food[1].Pos && !g.Occupied(ahead) {
					g.food[0].Pos = ahead
				}
			}

			score, walls, length := g.Score(), len(g.Walls()), g.Snake().Len()
			res := g.Tick()

			food := g.Food()
			if len(food) != types.FoodSlots {
				t.Fatalf("seed %d: %d food slots", seed, len(food))
			}
			switch {
			case res.Scored:
				if g.Score() != score+1 {
					t.Fatalf("seed %d: score %d -> %d", seed, score, g.Score())
				}
				wantWalls := walls - 1
				if walls == 0 {
					wantWalls = 0
				}
				if len(g.Walls()) != wantWalls {
					t.Fatalf("seed %d: walls %d -> %d on score", seed, walls, len(g.Walls()))
				}
			case res.Ate == entity.AteFood:
				if g.Score() != score {
					t.Fatalf("seed %d: score changed on wrong color", seed)
				}
				if res.WallAdded && len(g.Walls()) != walls+1 {
					t.Fatalf("seed %d: walls %d -> %d on wrong color", seed, walls, len(g.Walls()))
				}
			case res.Ate == entity.AteNone:
				if g.Snake().Len() != length {
					t.Fatalf("seed %d: length %d -> %d without eating", seed, length, g.Snake().Len())
				}
			}
			if res.Ate == entity.AteFood && !g.GameOver() {
				if g.Snake().Len() != length+1 {
					t.Fatalf("seed %d: length %d -> %d after eating", seed, length, g.Snake().Len())
				}
				if food[0].Pos == food[1].Pos {
					t.Fatalf("seed %d: foods share %v", seed, food[0].Pos)
				}
				if g.AllowedColor() != food[0].Color && g.AllowedColor() != food[1].Color {
					t.Fatalf("seed %d: allowed color %v not on the board", seed, g.AllowedColor())
				}
			}
		}
	}
}
