package progress

// Rank is the final tier shown after the last level.
type Rank string

const (
	RankSuperOG   Rank = "superOG"   // all levels solved, fast
	RankOG        Rank = "og"        // all levels solved, steady
	RankRealHuman Rank = "realHuman" // some levels solved, or all solved slowly
	RankNiceTry   Rank = "niceTry"   // every level revealed
)

// Time thresholds, in seconds, for the all-solved ranks.
const (
	SuperOGSeconds = 60
	OGSeconds      = 120
)

// Title is the display name of the rank.
func (r Rank) Title() string {
	switch r {
	case RankSuperOG:
		return "SUPER OG"
	case RankOG:
		return "OG"
	case RankRealHuman:
		return "REAL HUMAN"
	default:
		return "NICE TRY"
	}
}

// Message is the flavor line shown under the title.
func (r Rank) Message() string {
	switch r {
	case RankSuperOG:
		return "You crushed it in record time."
	case RankOG:
		return "You know your stuff!"
	case RankRealHuman:
		return "You proved you're not a bot."
	default:
		return "You viewed the solutions for all levels. Try again without giving up to earn a rank!"
	}
}

// ComputeRank evaluates the rank rules top to bottom:
//  1. no legitimate completion → NiceTry
//  2. some levels given up → RealHuman
//  3. all legitimate: by total time → SuperOG, OG, else RealHuman.
//
// Give-ups dominate time: a slow all-solved run never drops to NiceTry.
func ComputeRank(totalSeconds, legitimate, total int) Rank {
	switch {
	case legitimate <= 0:
		return RankNiceTry
	case legitimate < total:
		return RankRealHuman
	case totalSeconds <= SuperOGSeconds:
		return RankSuperOG
	case totalSeconds <= OGSeconds:
		return RankOG
	default:
		return RankRealHuman
	}
}
