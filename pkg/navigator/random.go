package navigator

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

func seededRNG(seed int64) *rand.Rand {
	// Draws only need to be uniform and reproducible, not secret.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

func timeSeed() int64 {
	return time.Now().UnixNano()
}
