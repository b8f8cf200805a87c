/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"hash/fnv"
	"math/rand"

	"github.com/google/uuid"
)

// derivedSeed hashes the config seed together with a purpose string and
// any identifying arguments into a single int64 seed. The same
// (configSeed, purpose, args...) tuple always yields the same seed,
// regardless of call order — spec.md §9's "per-call PRNG derived from
// an explicit seed" design note.
func derivedSeed(configSeed int64, purpose string, args ...any) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%s", configSeed, purpose)
	for _, a := range args {
		fmt.Fprintf(h, "|%v", a)
	}
	return int64(h.Sum64())
}

// newDerivedRNG returns a *rand.Rand seeded deterministically from
// configSeed, purpose, and args.
func newDerivedRNG(configSeed int64, purpose string, args ...any) *rand.Rand {
	return rand.New(rand.NewSource(derivedSeed(configSeed, purpose, args...)))
}

// randomTiebreakerValue implements the "random" tiebreaker: a value in
// [0,1) keyed by (seed, roundNumber, playerID) so the same inputs always
// yield the same value. seed is SwissConfig.Seed, which is scoped to a
// single tournament — the role spec.md §4.B assigns to tournament_id.
func randomTiebreakerValue(seed int64, roundNumber int, playerID uuid.UUID) float64 {
	rng := newDerivedRNG(seed, "tiebreaker:random", roundNumber, playerID)
	return rng.Float64()
}
