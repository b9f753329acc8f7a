package ai

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"color-snake/game/types"

	"github.com/pkg/errors"
)

// Rand is what the agent needs from a generator; *rand.Rand from
// golang.org/x/exp/rand provides both.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// QTable maps a state key to one value per action, indexed by actionIndex.
type QTable map[string][4]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int

	src Rand
}

func NewQLearning(src Rand) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		src:          src,
	}
}

func actionIndex(d types.Direction) int {
	return int(d - types.Up)
}

// GetAction picks an epsilon-greedy action. forbidden (usually the reverse of
// the current heading) is never returned; pass types.None to allow all four.
func (q *QLearning) GetAction(state State, forbidden types.Direction) types.Direction {
	if q.src.Float64() < q.Epsilon {
		options := make([]types.Direction, 0, 4)
		for _, d := range types.Directions() {
			if d != forbidden {
				options = append(options, d)
			}
		}
		return options[q.src.Intn(len(options))]
	}
	return q.BestAction(state, forbidden)
}

// BestAction returns the highest valued action. Ties go to the earlier
// direction in clockwise order starting from Up.
func (q *QLearning) BestAction(state State, forbidden types.Direction) types.Direction {
	values := q.QTable[state.Key()]
	best := types.None
	bestValue := math.Inf(-1)
	for _, d := range types.Directions() {
		if d == forbidden {
			continue
		}
		if v := values[actionIndex(d)]; v > bestValue {
			bestValue = v
			best = d
		}
	}
	return best
}

// Update applies the Q-learning rule for one transition. When terminal is
// true the next state contributes nothing.
func (q *QLearning) Update(state State, action types.Direction, reward float64, next State, terminal bool) {
	key := state.Key()
	values := q.QTable[key]

	maxNext := 0.0
	if !terminal {
		nextValues := q.QTable[next.Key()]
		maxNext = math.Inf(-1)
		for _, v := range nextValues {
			if v > maxNext {
				maxNext = v
			}
		}
	}

	i := actionIndex(action)
	values[i] += q.LearningRate * (reward + q.Discount*maxNext - values[i])
	q.QTable[key] = values
	q.TotalReward += reward
}

// Save writes the table as JSON. Values already in the file are averaged
// with ours so several runs can share one table.
func (q *QLearning) Save(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return errors.Wrap(err, "creating q-table dir")
	}

	existing := make(QTable)
	if data, err := os.ReadFile(filename); err == nil {
		if err := json.Unmarshal(data, &existing); err == nil {
			q.merge(existing)
		}
	}

	data, err := json.MarshalIndent(q.QTable, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding q-table")
	}
	return errors.Wrapf(os.WriteFile(filename, data, 0644), "writing q-table %s", filename)
}

// Load replaces the table with the one stored in filename.
func (q *QLearning) Load(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "reading q-table %s", filename)
	}
	table := make(QTable)
	if err := json.Unmarshal(data, &table); err != nil {
		return errors.Wrapf(err, "decoding q-table %s", filename)
	}
	q.QTable = table
	return nil
}

func (q *QLearning) merge(other QTable) {
	for key, values := range other {
		current, ok := q.QTable[key]
		if !ok {
			q.QTable[key] = values
			continue
		}
		for i := range current {
			current[i] = (current[i] + values[i]) / 2
		}
		q.QTable[key] = current
	}
}
