/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// ByeAssignmentPolicy selects how the bye recipient is chosen among tied
// candidates.
type ByeAssignmentPolicy int

const (
	ByeAssignmentRandom ByeAssignmentPolicy = iota
	ByeAssignmentLowestTiebreaker
)

// Round1Mode selects how the very first round is paired.
type Round1Mode int

const (
	// Round1Random permutes active registrations with the seeded PRNG,
	// then pairs index 0-1, 2-3, ... The odd leftover (if any) gets the
	// bye.
	Round1Random Round1Mode = iota
	// Round1Seeded sorts by ascending SequenceID and pairs 1-vs-2,
	// 3-vs-4, ...; the odd leftover is the highest sequence number —
	// "lowest seed gets the bye".
	Round1Seeded
)

// BuchholzVariant selects which opponent-score entries are dropped before
// summing for the Buchholz tiebreaker.
type BuchholzVariant int

const (
	BuchholzStandard BuchholzVariant = iota
	BuchholzMedian
	BuchholzModified
)

// ByePoints is the score credited to a bye recipient.
type ByePoints struct {
	Wins  int
	Draws int
}

// SwissConfig is the immutable configuration governing tiebreaker
// chains, bye policy, floors, minimum-games, and pairing options. Build
// one with NewSwissConfig (or start from a preset) and call Validate
// before passing it to the engine; the engine itself never mutates a
// SwissConfig.
type SwissConfig struct {
	// Rounds is the total number of Swiss rounds planned, 1..20.
	Rounds int

	// PairingTiebreakers is the chain used to order players within a
	// bracket during pairing.
	PairingTiebreakers []TiebreakerName
	// StandingsTiebreakers is the chain used for final rankings.
	StandingsTiebreakers []TiebreakerName

	// AvoidRepeatPairings disables the no-rematch constraint when false.
	AvoidRepeatPairings bool
	// TrackPairDowns disables pair-down-count tracking when false.
	TrackPairDowns bool

	// MaxByesPerPlayer caps bye eligibility. 0 disables byes entirely;
	// negative values mean unlimited.
	MaxByesPerPlayer int
	ByeAssignment    ByeAssignmentPolicy
	ByePointsValue   ByePoints

	OMWFloor      float64
	GWFloor       float64
	MinGamesForGW int

	BuchholzVariant BuchholzVariant

	// Round1Mode selects how the first round is paired. Defaults to
	// Round1Random.
	Round1Mode Round1Mode

	// Seed drives every derived PRNG used by this config (round-1
	// shuffling, the random tiebreaker, random bye assignment).
	Seed int64
}

// unlimitedByes is the sentinel MaxByesPerPlayer value meaning "no cap".
const unlimitedByes = -1

// NewSwissConfig returns a SwissConfig populated with every default from
// spec.md §6, with the given number of rounds and seed.
func NewSwissConfig(rounds int, seed int64) SwissConfig {
	return SwissConfig{
		Rounds:               rounds,
		PairingTiebreakers:   []TiebreakerName{TiebreakOpponentMW, TiebreakGameWin, TiebreakOpponentGW, TiebreakRandom},
		StandingsTiebreakers: []TiebreakerName{TiebreakOpponentMW, TiebreakGameWin, TiebreakOpponentGW, TiebreakRandom},
		AvoidRepeatPairings:  true,
		TrackPairDowns:       true,
		MaxByesPerPlayer:     1,
		ByeAssignment:        ByeAssignmentRandom,
		ByePointsValue:       ByePoints{Wins: 2, Draws: 0},
		OMWFloor:             0.33,
		GWFloor:              0.33,
		MinGamesForGW:        1,
		BuchholzVariant:      BuchholzStandard,
		Seed:                 seed,
	}
}

// MTGStandard is the preset documented in spec.md's GLOSSARY: OMW/GW/OGW
// chain, floor 0.33, bye scored 2-0, at most one bye per player.
func MTGStandard(rounds int, seed int64) SwissConfig {
	return NewSwissConfig(rounds, seed)
}

// PokemonStandard drops GW from the chain and uses a 0.25 floor.
func PokemonStandard(rounds int, seed int64) SwissConfig {
	cfg := NewSwissConfig(rounds, seed)
	cfg.PairingTiebreakers = []TiebreakerName{TiebreakOpponentMW, TiebreakOpponentGW, TiebreakRandom}
	cfg.StandingsTiebreakers = []TiebreakerName{TiebreakOpponentMW, TiebreakOpponentGW, TiebreakRandom}
	cfg.OMWFloor = 0.25
	cfg.GWFloor = 0.25
	return cfg
}

// ChessStyle uses Buchholz, then Sonneborn-Berger, then player number as
// a total tiebreak-of-last-resort; byes score 1-0 and go to the lowest
// tiebreaker rather than at random.
func ChessStyle(rounds int, seed int64) SwissConfig {
	cfg := NewSwissConfig(rounds, seed)
	cfg.PairingTiebreakers = []TiebreakerName{TiebreakBuchholz, TiebreakSonnebornBerger, TiebreakPlayerNumber}
	cfg.StandingsTiebreakers = []TiebreakerName{TiebreakBuchholz, TiebreakSonnebornBerger, TiebreakPlayerNumber}
	cfg.ByePointsValue = ByePoints{Wins: 1, Draws: 0}
	cfg.ByeAssignment = ByeAssignmentLowestTiebreaker
	return cfg
}

// SimpleRandom pairs purely by a random chain; standings are unaffected.
func SimpleRandom(rounds int, seed int64) SwissConfig {
	cfg := NewSwissConfig(rounds, seed)
	cfg.PairingTiebreakers = []TiebreakerName{TiebreakRandom}
	return cfg
}

// Validate rejects an unknown tiebreaker name, an out-of-range Rounds,
// or a floor outside [0,1] at construction time rather than at first
// use, per spec.md §9's design note on the tiebreaker registration
// table.
func (c SwissConfig) Validate() error {
	if c.Rounds < 1 || c.Rounds > 20 {
		return newError(ErrInvalidConfig, "rounds must be between 1 and 20, got %d", c.Rounds)
	}
	if c.OMWFloor < 0 || c.OMWFloor > 1 {
		return newError(ErrInvalidConfig, "omw_floor must be in [0,1], got %v", c.OMWFloor)
	}
	if c.GWFloor < 0 || c.GWFloor > 1 {
		return newError(ErrInvalidConfig, "gw_floor must be in [0,1], got %v", c.GWFloor)
	}
	if c.MinGamesForGW < 0 {
		return newError(ErrInvalidConfig, "min_games_for_gw must be >= 0, got %d", c.MinGamesForGW)
	}
	for _, chain := range [][]TiebreakerName{c.PairingTiebreakers, c.StandingsTiebreakers} {
		for _, name := range chain {
			if _, ok := tiebreakerRegistry[name]; !ok {
				return newError(ErrInvalidConfig, "unknown tiebreaker %q", string(name))
			}
		}
	}
	return nil
}

// byeCapReached reports whether count byes already equals or exceeds the
// configured cap. Unlimited (negative MaxByesPerPlayer) never reaches.
func (c SwissConfig) byeCapReached(count int) bool {
	if c.MaxByesPerPlayer < 0 {
		return false
	}
	return count >= c.MaxByesPerPlayer
}
