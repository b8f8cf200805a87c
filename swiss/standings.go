/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/google/uuid"
)

// StandingsPurpose selects which tiebreaker chain CalculateStandings
// uses: bracket ordering during pairing, or the tournament's final
// rankings.
type StandingsPurpose int

const (
	ForPairing StandingsPurpose = iota
	ForFinal
)

func (p StandingsPurpose) chain(cfg SwissConfig) []TiebreakerName {
	if p == ForPairing {
		return cfg.PairingTiebreakers
	}
	return cfg.StandingsTiebreakers
}

// CalculateStandings ranks every registration that is ACTIVE or has
// played at least one match (spec.md §4.C step 1 — dropped players stay
// in standings until the tournament ends). It aggregates each player's
// record, computes the configured tiebreaker vector, stably sorts by
// (match_points, t1..tk) descending with ascending sequence_id as the
// tiebreak of absolute last resort, and assigns dense 1..N ranks.
//
// # Determinism
//
// Given the same registrations, matches, config (including Seed), and
// currentRound, CalculateStandings produces bit-identical output on
// every call — the chain's final "random" entry, if present, is keyed
// off Seed and round number, never off wall-clock time or goroutine
// scheduling order.
//
// # Concurrency
//
// Per-player aggregation and tiebreaker evaluation are independent
// across players and are fanned out across a bounded worker pool
// internally; the call is still synchronous and returns only once every
// worker has finished, so callers never observe partial results.
func CalculateStandings(regs []Registration, matches []Match, cfg SwissConfig, purpose StandingsPurpose, currentRound int) ([]StandingsEntry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateMatchLog(regs, matches); err != nil {
		return nil, err
	}

	eligible := eligibleForStandings(regs, matches)
	chain := purpose.chain(cfg)

	return rankEntries(eligible, matches, cfg, chain, currentRound), nil
}

// rankEntries aggregates, evaluates tiebreakers for, sorts, and ranks
// exactly the registrations passed in — with no further eligibility
// filtering. CalculateStandings uses this with the full tournament's
// eligible set; the pairing engine uses it with the round's active set
// to order players within brackets.
//
// Each registration's entry is built independently of every other, so
// the errgroup fan-out below is a deliberate, deterministic departure
// from spec.md §5's single-threaded description: it parallelizes pure
// per-player computation (no shared mutable state, no ordering
// dependency between players) and the result is sorted afterward, so
// output is identical to a sequential loop regardless of scheduling.
func rankEntries(regs []Registration, matches []Match, cfg SwissConfig, chain []TiebreakerName, currentRound int) []StandingsEntry {
	idx := newAggregateIndex(regs, matches, cfg, currentRound)

	entries := make([]StandingsEntry, len(regs))
	g := new(errgroup.Group)
	g.SetLimit(16)
	for i, reg := range regs {
		i, reg := i, reg
		g.Go(func() error {
			entries[i] = buildStandingsEntry(reg, idx, matches, cfg, chain, currentRound)
			return nil
		})
	}
	_ = g.Wait() // buildStandingsEntry never returns an error

	sortStandings(entries, chain)
	for rank := range entries {
		entries[rank].Rank = rank + 1
	}

	return entries
}

func eligibleForStandings(regs []Registration, matches []Match) []Registration {
	played := make(map[uuid.UUID]bool)
	for _, m := range matches {
		if !m.IsComplete() {
			continue
		}
		played[m.Player1ID] = true
		if m.Player2ID != nil {
			played[*m.Player2ID] = true
		}
	}

	var out []Registration
	for _, r := range regs {
		if r.Status == StatusActive || played[r.PlayerID] {
			out = append(out, r)
		}
	}
	return out
}

func buildStandingsEntry(reg Registration, idx *aggregateIndex, matches []Match, cfg SwissConfig, chain []TiebreakerName, currentRound int) StandingsEntry {
	rec := idx.records[reg.PlayerID]

	tiebreakers := make(map[TiebreakerName]float64, len(chain))
	for _, name := range chain {
		calc := tiebreakerRegistry[name]
		tiebreakers[name] = calc(reg.PlayerID, idx, matches, cfg, currentRound)
	}

	return StandingsEntry{
		Registration:  reg,
		MatchWins:     rec.MatchWins,
		MatchLosses:   rec.MatchLosses,
		MatchDraws:    rec.MatchDraws,
		MatchPoints:   rec.MatchPoints,
		GameWins:      rec.GameWins,
		GameLosses:    rec.GameLosses,
		GameDraws:     rec.GameDraws,
		MatchesPlayed: rec.MatchesPlayed,
		ByeCount:      rec.ByeCount,
		Opponents:     rec.Opponents,
		Tiebreakers:   tiebreakers,
		Dropped:       reg.Status == StatusDropped,
	}
}

// sortStandings orders entries by (match_points, t1, ..., tk) descending
// with ascending sequence_id as the final, total, tiebreak. sort.SliceStable
// preserves input order among any entries that are still tied after
// sequence_id is considered, which cannot happen since sequence_id is
// unique — but stability is kept anyway so re-sorting an
// already-sorted slice never reorders equal keys.
func sortStandings(entries []StandingsEntry, chain []TiebreakerName) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.MatchPoints != b.MatchPoints {
			return a.MatchPoints > b.MatchPoints
		}
		for _, name := range chain {
			av, bv := a.Tiebreakers[name], b.Tiebreakers[name]
			if av != bv {
				return av > bv
			}
		}
		return a.Registration.SequenceID < b.Registration.SequenceID
	})
}

// validateMatchLog implements the InvalidInput checks spec.md §7
// requires before any computation runs: no negative scores, no two
// matches pairing the same players in the same round (unless a rematch
// was explicitly recorded, which the engine never itself produces but
// also doesn't reject here — it is the organizer's call, not the
// aggregator's), no player absent from registrations, contiguous
// round numbering is left to the pairing engine which is the only
// caller that advances rounds.
func validateMatchLog(regs []Registration, matches []Match) error {
	known := make(map[uuid.UUID]bool, len(regs))
	for _, r := range regs {
		known[r.PlayerID] = true
	}

	type roundPair struct {
		round int
		a, b  uuid.UUID
	}
	seenInRound := make(map[roundPair]bool, len(matches))

	for _, m := range matches {
		if m.Player2ID != nil {
			a, b := m.Player1ID, *m.Player2ID
			if b.String() < a.String() {
				a, b = b, a
			}
			key := roundPair{round: m.RoundNumber, a: a, b: b}
			if seenInRound[key] {
				return newError(ErrInvalidInput, "round %d pairs %s against %s more than once", m.RoundNumber, a, b)
			}
			seenInRound[key] = true
		}
		if m.Player1GameWins < 0 || m.Player2GameWins < 0 || m.Draws < 0 {
			return newError(ErrInvalidInput, "match %s has a negative score", m.MatchID)
		}
		if !known[m.Player1ID] {
			return newError(ErrInvalidInput, "match %s references unregistered player %s", m.MatchID, m.Player1ID)
		}
		if m.Player2ID != nil {
			if m.Player1ID == *m.Player2ID {
				return newError(ErrInvalidInput, "match %s pairs player %s against themself", m.MatchID, m.Player1ID)
			}
			if !known[*m.Player2ID] {
				return newError(ErrInvalidInput, "match %s references unregistered player %s", m.MatchID, *m.Player2ID)
			}
		}
	}
	return nil
}
