package mapgen

import (
	"encoding/binary"
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

// Pipeline stages draw from separate streams so a change in one stage's
// draw count cannot shift the randomness of another. Per-sector room
// streams use the sector index directly; stage streams start well above
// any plausible sector count.
const (
	streamGraph uint64 = 1<<32 + iota
	streamMerge
	streamHallway
	streamAssemble
)

// forkSeed derives a child seed from the level seed and a stream index.
// The derivation is a pure function of its inputs, so per-sector streams
// stay deterministic regardless of goroutine scheduling.
func forkSeed(seed int64, stream uint64) int64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(seed))
	binary.LittleEndian.PutUint64(buf[8:], stream)
	return int64(xxhash.Sum64(buf[:]))
}

// forkRand returns a generator seeded for the given stream.
func forkRand(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(forkSeed(seed, stream)))
}
