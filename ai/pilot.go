package ai

import (
	"color-snake/game"
	"color-snake/game/entity"
	"color-snake/game/types"
)

// Rewards for one transition.
const (
	RewardScore     = 1.0
	RewardWrongFood = -0.5
	RewardDeath     = -1.0
	RewardCloser    = 0.1
	RewardFarther   = -0.1
)

// Pilot steers a game with a QLearning agent, one decision per tick.
type Pilot struct {
	q *QLearning

	last       State
	lastAction types.Direction
	hasLast    bool
}

func NewPilot(q *QLearning) *Pilot {
	return &Pilot{q: q}
}

// Reward scores the transition that produced res.
func Reward(res game.TickResult, before, after State) float64 {
	switch {
	case res.Ate == entity.AteItself || res.Ate == entity.AteWall:
		return RewardDeath
	case res.Scored:
		return RewardScore
	case res.Ate == entity.AteFood:
		return RewardWrongFood
	case after.FoodDistance < before.FoodDistance:
		return RewardCloser
	case after.FoodDistance > before.FoodDistance:
		return RewardFarther
	}
	return 0
}

// Step learns from res, the result of the tick that followed the previous
// decision, then chooses the next direction and applies it to g. It returns
// types.None once the game is over.
func (p *Pilot) Step(g *game.Game, res game.TickResult) types.Direction {
	state := Sense(g)

	if p.hasLast {
		p.q.Update(p.last, p.lastAction, Reward(res, p.last, state), state, res.GameOver)
	}

	if g.GameOver() {
		if p.hasLast {
			p.q.GamesPlayed++
		}
		p.hasLast = false
		return types.None
	}

	action := p.q.GetAction(state, g.Snake().LastUpdateDir.Inverse())
	g.SetDirection(action)

	p.last = state
	p.lastAction = action
	p.hasLast = true
	return action
}
