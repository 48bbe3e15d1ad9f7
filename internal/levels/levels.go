// internal/levels/levels.go
//
// Level definitions for the game.
//
// Responsibilities:
//   - Load the ordered level list from a YAML file or the embedded default.
//   - Lint each level's placements and log content problems.
//   - Supply lookups (All, Get) to the shells and controllers.
//
// Initialization behavior (LoadFile):
//   1. If a path is given (config LEVELS_FILE), read levels from that file.
//   2. Otherwise use the embedded assets/levels.yaml.
//
// Levels are immutable once loaded. Content problems (crossing letters
// that disagree, words running off the grid) are logged as warnings only;
// the engine tolerates them at play time.

package levels

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/crossword/assets"
	"github.com/robalobadob/crossword/internal/puzzle"
)

// Level is one authored puzzle.
type Level struct {
	ID         int                `yaml:"id" json:"id"`
	Name       string             `yaml:"name" json:"name"`
	Title      string             `yaml:"title" json:"title"`
	Difficulty string             `yaml:"difficulty" json:"difficulty"`
	Note       string             `yaml:"note,omitempty" json:"note,omitempty"`
	Rows       int                `yaml:"rows" json:"rows"`
	Cols       int                `yaml:"cols" json:"cols"`
	Words      []puzzle.Placement `yaml:"words" json:"words"`
}

// Tier is the hint tier for the level's difficulty label.
func (l Level) Tier() puzzle.Tier { return puzzle.TierFor(l.Difficulty) }

var (
	initOnce   sync.Once
	loaded     []Level
	initialErr error
)

// Load reads the embedded level list exactly once.
func Load() error { return LoadFile("") }

// LoadFile reads the level list from path, or the embedded default when
// path is empty. Only the first call of Load or LoadFile has any effect.
// Returns an error if no levels could be read.
func LoadFile(path string) error {
	initOnce.Do(func() {
		loaded, initialErr = readLevels(path)
		for _, l := range loaded {
			for _, p := range puzzle.Check(l.Rows, l.Cols, l.Words) {
				log.Warn().Int("level", l.ID).Str("problem", p.String()).Msg("level content")
			}
		}
	})
	return initialErr
}

func readLevels(path string) ([]Level, error) {
	var (
		data []byte
		err  error
	)
	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = assets.LevelsYAML()
	}
	if err != nil {
		return nil, fmt.Errorf("read levels: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML level list.
func Parse(data []byte) ([]Level, error) {
	var out []Level
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse levels: %w", err)
	}
	if len(out) == 0 {
		return nil, errors.New("levels: list is empty")
	}
	for i, l := range out {
		if l.Rows <= 0 || l.Cols <= 0 {
			return nil, fmt.Errorf("levels: level %d has no grid size", l.ID)
		}
		if len(l.Words) == 0 {
			return nil, fmt.Errorf("levels: level %d has no words", l.ID)
		}
		if l.ID == 0 {
			out[i].ID = i + 1
		}
	}
	return out, nil
}

// All returns the loaded levels in play order, loading them if needed.
// The slice is shared; callers must not modify it.
func All() []Level {
	if err := Load(); err != nil {
		return nil
	}
	return loaded
}

// Get returns the level at index i (0-based).
func Get(i int) (Level, bool) {
	all := All()
	if i < 0 || i >= len(all) {
		return Level{}, false
	}
	return all[i], true
}
