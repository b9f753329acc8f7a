package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// MaxSessions caps the stored history; older sessions are dropped first.
const MaxSessions = 200

// SessionRecord describes one finished round.
type SessionRecord struct {
	ID        string    `json:"id"`
	Score     int64     `json:"score"`
	Ticks     uint64    `json:"ticks"`
	Walls     int       `json:"walls"`
	EndReason string    `json:"endReason"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

type GameStats struct {
	HighScore int64           `json:"highScore"`
	Sessions  []SessionRecord `json:"sessions"`
}

// StateManager keeps the high score and recent session history on disk.
type StateManager struct {
	path   string
	stats  GameStats
	logger zerolog.Logger
}

func NewStateManager(path string, logger zerolog.Logger) *StateManager {
	return &StateManager{
		path:   path,
		stats:  GameStats{Sessions: make([]SessionRecord, 0)},
		logger: logger,
	}
}

// Load reads the stats file. A missing file leaves the stats empty.
func (sm *StateManager) Load() error {
	data, err := os.ReadFile(sm.path)
	if errors.Is(err, os.ErrNotExist) {
		sm.logger.Debug().Str("path", sm.path).Msg("no stats file yet")
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "reading stats %s", sm.path)
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return errors.Wrapf(err, "decoding stats %s", sm.path)
	}
	if stats.Sessions == nil {
		stats.Sessions = make([]SessionRecord, 0)
	}
	sm.stats = stats
	return nil
}

// Save writes the stats file, creating its directory if needed.
func (sm *StateManager) Save() error {
	if dir := filepath.Dir(sm.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "creating stats dir %s", dir)
		}
	}

	data, err := json.MarshalIndent(sm.stats, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding stats")
	}

	if err := os.WriteFile(sm.path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing stats %s", sm.path)
	}
	return nil
}

// Record adds a finished session and reports whether it set a new high score.
func (sm *StateManager) Record(rec SessionRecord) bool {
	sm.stats.Sessions = append(sm.stats.Sessions, rec)
	if over := len(sm.stats.Sessions) - MaxSessions; over > 0 {
		sm.stats.Sessions = append(sm.stats.Sessions[:0:0], sm.stats.Sessions[over:]...)
	}

	if rec.Score > sm.stats.HighScore {
		sm.stats.HighScore = rec.Score
		sm.logger.Info().Int64("score", rec.Score).Msg("new high score")
		return true
	}
	return false
}

func (sm *StateManager) HighScore() int64 {
	return sm.stats.HighScore
}

// History returns a copy of the stored sessions, oldest first.
func (sm *StateManager) History() []SessionRecord {
	out := make([]SessionRecord, len(sm.stats.Sessions))
	copy(out, sm.stats.Sessions)
	return out
}

func (sm *StateManager) AverageScore() float64 {
	if len(sm.stats.Sessions) == 0 {
		return 0
	}
	var total int64
	for _, s := range sm.stats.Sessions {
		total += s.Score
	}
	return float64(total) / float64(len(sm.stats.Sessions))
}
