// internal/store/sweep.go
//
// Background expiry for the play registry.
// A play is only reachable through its token, so once the token TTL has
// passed nobody can drive it again. The sweeper removes such plays on a
// fixed interval and stops their clocks.

package store

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// RunSweeper removes plays older than ttl every interval until ctx is
// done. It blocks; run it in its own goroutine.
func RunSweeper(ctx context.Context, st Store, ttl, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := st.Sweep(ctx, now.Add(-ttl)); n > 0 {
				log.Debug().Int("removed", n).Int("live", st.Len()).Msg("expired plays swept")
			}
		}
	}
}
