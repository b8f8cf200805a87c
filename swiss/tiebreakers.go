/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"sort"

	"github.com/google/uuid"
)

// aggregateIndex is computed once per standings call and shared across
// every tiebreaker calculator, so OMW%/OGW%/Buchholz/Sonneborn-Berger
// don't each re-aggregate every player's match history from scratch.
type aggregateIndex struct {
	records    map[uuid.UUID]PlayerRecord
	sequenceID map[uuid.UUID]int
	cfg        SwissConfig
}

func newAggregateIndex(regs []Registration, matches []Match, cfg SwissConfig, currentRound int) *aggregateIndex {
	idx := &aggregateIndex{
		records:    make(map[uuid.UUID]PlayerRecord, len(regs)),
		sequenceID: make(map[uuid.UUID]int, len(regs)),
	}
	idx.cfg = cfg
	for _, r := range regs {
		idx.records[r.PlayerID] = AggregatePlayer(r.PlayerID, matches, cfg, currentRound)
		idx.sequenceID[r.PlayerID] = r.SequenceID
	}
	return idx
}

type tiebreakerFunc func(playerID uuid.UUID, idx *aggregateIndex, matches []Match, cfg SwissConfig, roundNumber int) float64

// tiebreakerRegistry is the fixed name -> calculator table spec.md §9
// calls for ("a named variant set with a fixed registration table");
// SwissConfig.Validate rejects unknown names before the engine ever
// looks one up.
var tiebreakerRegistry = map[TiebreakerName]tiebreakerFunc{
	TiebreakMatchWin:        matchWinPercentage,
	TiebreakGameWin:         gameWinPercentage,
	TiebreakOpponentMW:      opponentMatchWinPercentage,
	TiebreakOpponentGW:      opponentGameWinPercentage,
	TiebreakMatchWinsRaw:    rawMatchWins,
	TiebreakGameWinsRaw:     rawGameWins,
	TiebreakBuchholz:        buchholzScore,
	TiebreakSonnebornBerger: sonnebornBergerScore,
	TiebreakRandom:          randomTiebreaker,
	TiebreakPlayerNumber:    playerNumberTiebreaker,
}

// matchWinPercentage implements spec.md §4.B MW%: max(match_points /
// (3 * matches_played_excluding_byes), floor); if the denominator is 0,
// returns the floor directly.
func matchWinPercentage(playerID uuid.UUID, idx *aggregateIndex, _ []Match, cfg SwissConfig, _ int) float64 {
	rec := idx.records[playerID]
	nonByeMatches := rec.MatchesPlayed - rec.ByeCount
	if nonByeMatches <= 0 {
		return cfg.OMWFloor
	}
	pct := float64(rec.MatchPoints) / float64(3*nonByeMatches)
	return max(pct, cfg.OMWFloor)
}

// gameWinPercentage implements spec.md §4.B GW%: max(game_wins /
// total_games, floor); bye games count toward both numerator and
// denominator per MTG DCI rules; below min_games_for_gw the result is
// 0, not the floor.
func gameWinPercentage(playerID uuid.UUID, idx *aggregateIndex, matches []Match, cfg SwissConfig, _ int) float64 {
	gamesPlayed, totalGames := 0, 0
	for _, m := range matches {
		if !m.IsComplete() || !m.Involves(playerID) {
			continue
		}
		played, total := totalGamesFor(playerID, m, cfg)
		gamesPlayed += played
		totalGames += total
	}
	if totalGames < cfg.MinGamesForGW {
		return 0
	}
	if totalGames == 0 {
		return cfg.GWFloor
	}
	pct := float64(gamesPlayed) / float64(totalGames)
	return max(pct, cfg.GWFloor)
}

// opponentMatchWinPercentage implements OMW%: the arithmetic mean over
// non-bye opponents of each opponent's floored MW%. Zero non-bye
// opponents (e.g. a player whose entire history is byes) yields 0, not
// the floor — this is the bye-exclusion rule spec.md §4.B and §8's
// property 6 require.
func opponentMatchWinPercentage(playerID uuid.UUID, idx *aggregateIndex, matches []Match, cfg SwissConfig, roundNumber int) float64 {
	rec := idx.records[playerID]
	if len(rec.Opponents) == 0 {
		return 0
	}
	sum := 0.0
	for _, opp := range rec.Opponents {
		sum += matchWinPercentage(opp, idx, matches, cfg, roundNumber)
	}
	return sum / float64(len(rec.Opponents))
}

// opponentGameWinPercentage implements OGW%: the arithmetic mean of
// non-bye opponents' floored GW%. Zero opponents yields 0.
func opponentGameWinPercentage(playerID uuid.UUID, idx *aggregateIndex, matches []Match, cfg SwissConfig, roundNumber int) float64 {
	rec := idx.records[playerID]
	if len(rec.Opponents) == 0 {
		return 0
	}
	sum := 0.0
	for _, opp := range rec.Opponents {
		sum += gameWinPercentage(opp, idx, matches, cfg, roundNumber)
	}
	return sum / float64(len(rec.Opponents))
}

func rawMatchWins(playerID uuid.UUID, idx *aggregateIndex, _ []Match, _ SwissConfig, _ int) float64 {
	return float64(idx.records[playerID].MatchWins)
}

func rawGameWins(playerID uuid.UUID, idx *aggregateIndex, _ []Match, _ SwissConfig, _ int) float64 {
	return float64(idx.records[playerID].GameWins)
}

// buchholzScore sums opponents' match points, one term per encounter
// (so a permitted rematch contributes twice). The standard variant sums
// everything; median drops the single highest and lowest term (needs >=
// 3 opponents); modified drops only the lowest (needs >= 2). Below the
// minimum opponent count, the variant falls back to standard rather
// than erroring, since a short early-round history shouldn't crash
// ranking.
func buchholzScore(playerID uuid.UUID, idx *aggregateIndex, _ []Match, cfg SwissConfig, _ int) float64 {
	rec := idx.records[playerID]
	terms := make([]float64, 0, len(rec.Opponents))
	for _, opp := range rec.Opponents {
		terms = append(terms, float64(idx.records[opp].MatchPoints))
	}
	sort.Float64s(terms)

	switch cfg.BuchholzVariant {
	case BuchholzMedian:
		if len(terms) >= 3 {
			terms = terms[1 : len(terms)-1]
		}
	case BuchholzModified:
		if len(terms) >= 2 {
			terms = terms[1:]
		}
	}

	sum := 0.0
	for _, t := range terms {
		sum += t
	}
	return sum
}

// sonnebornBergerScore sums, over every non-bye encounter, the
// opponent's match points weighted by the result against them (1 for a
// win, 0.5 for a draw, 0 for a loss).
func sonnebornBergerScore(playerID uuid.UUID, idx *aggregateIndex, matches []Match, _ SwissConfig, _ int) float64 {
	sum := 0.0
	for _, m := range matches {
		if !m.IsComplete() || !m.Involves(playerID) || m.IsBye() || m.IsLossForfeit {
			continue
		}
		opp := m.OpponentOf(playerID)
		if opp == nil {
			continue
		}
		playerWins, opponentWins := gameWinsFor(playerID, m)
		var result float64
		switch {
		case playerWins > opponentWins:
			result = 1.0
		case playerWins == opponentWins:
			result = 0.5
		default:
			result = 0.0
		}
		sum += float64(idx.records[*opp].MatchPoints) * result
	}
	return sum
}

func randomTiebreaker(playerID uuid.UUID, _ *aggregateIndex, _ []Match, cfg SwissConfig, roundNumber int) float64 {
	return randomTiebreakerValue(cfg.Seed, roundNumber, playerID)
}

// playerNumberTiebreaker returns 1/sequence_id so a lower sequence
// number ranks higher under "greater is better".
func playerNumberTiebreaker(playerID uuid.UUID, idx *aggregateIndex, _ []Match, _ SwissConfig, _ int) float64 {
	seq := idx.sequenceID[playerID]
	if seq <= 0 {
		return 0
	}
	return 1.0 / float64(seq)
}
