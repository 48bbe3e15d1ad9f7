// Package daily derives the shared hint seed for "daily" plays: every
// player starting a level on the same UTC date gets the same hint cells.
package daily

import (
	"encoding/binary"
	"math/rand/v2"
	"strconv"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a PCG seed pair from BLAKE2b-MAC(salt, date:levelID).
func Seed(date, salt string, levelID int) (uint64, uint64) {
	key := blake2b.Sum256([]byte(salt))
	h, err := blake2b.New256(key[:])
	if err != nil {
		// Only fails for keys over 64 bytes.
		panic(err)
	}
	h.Write([]byte(date + ":" + strconv.Itoa(levelID)))
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8]), binary.BigEndian.Uint64(sum[8:16])
}

// RNG returns the seeded generator for a level on the given date.
func RNG(t time.Time, salt string, levelID int) *rand.Rand {
	a, b := Seed(DateKey(t), salt, levelID)
	return rand.New(rand.NewPCG(a, b))
}
