package cloze

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// Seed derives a stable RNG seed from sentence text so regenerating the
// workbook keeps every exercise set, and any printed answer key, identical.
func Seed(text string) int64 {
	digest := sha256.Sum256([]byte(text))
	return int64(binary.BigEndian.Uint64(digest[:8]))
}

// Sample draws n distinct items from pool, seeded by text. Pools of at most
// n items are returned unchanged, in pool order; larger pools yield items in
// generator draw order. Selection depends only on text and n.
func Sample(pool []string, n int, text string) []string {
	if len(pool) <= n {
		return pool
	}
	rng := rand.New(rand.NewSource(Seed(text)))
	picks := rng.Perm(len(pool))[:n]
	out := make([]string, 0, n)
	for _, i := range picks {
		out = append(out, pool[i])
	}
	return out
}
