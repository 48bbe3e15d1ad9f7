// internal/puzzle/hints.go
//
// Random hint cells for a play session.
// Responsibilities:
//   - Map a level's difficulty label to a hint tier.
//   - Pick hint cells with a per-tier count and a letter-position bias.
//   - Apply hints to a grid as locked, pre-filled cells.
//
// Hints are randomized per session. The generator takes its random source
// as an argument so callers decide between fresh and fixed seeds.

package puzzle

import (
	"math/rand/v2"
	"strings"

	"github.com/robalobadob/crossword/internal/grid"
)

// Tier groups difficulty labels for hint balancing.
type Tier int

const (
	TierEasy Tier = iota
	TierMedium
	TierHard
)

// TierFor maps an authored difficulty label to a tier.
// Unknown labels are treated as medium.
func TierFor(label string) Tier {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "easy":
		return TierEasy
	case "hard":
		return TierHard
	default:
		return TierMedium
	}
}

// HintRange returns the inclusive bounds for the number of hints.
func (t Tier) HintRange() (lo, hi int) {
	if t == TierEasy {
		return 1, 3
	}
	return 3, 6
}

// attemptsPerHint bounds the generator's retries.
const attemptsPerHint = 3

// GenerateHints picks hint cells from the placements.
//
// Rules:
//   - The target count is drawn from the tier's range.
//   - Words are visited in a shuffled order.
//   - Words of up to 3 letters pick a letter uniformly; 4–5 letters avoid
//     the first letter 70% of the time; longer words pick from the middle
//     60% of the word.
//   - A coordinate is never hinted twice, and letters outside the
//     rows×cols grid are never picked. After 3× target attempts the
//     generator stops, possibly with fewer hints than targeted.
func GenerateHints(rows, cols int, placements []Placement, tier Tier, rng *rand.Rand) []Hint {
	words := make([]Placement, 0, len(placements))
	for _, p := range placements {
		if p.Len() > 0 {
			words = append(words, p)
		}
	}
	if len(words) == 0 || rng == nil {
		return nil
	}
	rng.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })

	lo, hi := tier.HintRange()
	target := lo + rng.IntN(hi-lo+1)

	type coord struct{ row, col int }
	seen := make(map[coord]struct{}, target)
	hints := make([]Hint, 0, target)

	for attempt := 0; attempt < target*attemptsPerHint && len(hints) < target; attempt++ {
		w := words[attempt%len(words)]
		i := pickIndex(w.Len(), rng)
		row, col := w.Position(i)
		if row < 0 || col < 0 || row >= rows || col >= cols {
			continue
		}
		key := coord{row, col}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		hints = append(hints, Hint{Row: row, Col: col, Letter: w.Letters()[i]})
	}
	return hints
}

// pickIndex chooses a letter index for a word of length n.
func pickIndex(n int, rng *rand.Rand) int {
	switch {
	case n <= 3:
		return rng.IntN(n)
	case n <= 5:
		if rng.Float64() < 0.7 {
			return 1 + rng.IntN(n-1)
		}
		return rng.IntN(n)
	default:
		start := n / 5
		end := n - n/5 // exclusive
		return start + rng.IntN(end-start)
	}
}

// ApplyHints pre-fills and locks the hinted cells. Blocked or out-of-range
// coordinates are skipped; the cell's own solution letter is used.
func ApplyHints(g *grid.Grid, hints []Hint) {
	for _, h := range hints {
		cell := g.CellAt(h.Row, h.Col)
		if cell == nil || cell.Blocked() {
			continue
		}
		cell.Input = cell.Solution
		cell.HintLocked = true
	}
}
