/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "github.com/google/uuid"

// PlayerRecord holds everything AggregatePlayer derives from the match
// log for one player: the fields of a StandingsEntry except the
// tiebreaker vector and rank.
type PlayerRecord struct {
	MatchWins     int
	MatchLosses   int
	MatchDraws    int
	MatchPoints   int
	GameWins      int
	GameLosses    int
	GameDraws     int
	MatchesPlayed int
	ByeCount      int
	Opponents     []uuid.UUID
}

// AggregatePlayer derives wins/losses/draws, per-game tallies,
// match-points, and the opponent set for playerID from matches, per
// spec.md §4.A. Only matches with EndTime set and RoundNumber <=
// currentRound are aggregated; currentRound of 0 or negative means "no
// limit" (used when computing final standings across an entire
// completed tournament).
func AggregatePlayer(playerID uuid.UUID, matches []Match, cfg SwissConfig, currentRound int) PlayerRecord {
	var rec PlayerRecord

	for _, m := range matches {
		if !m.IsComplete() {
			continue
		}
		if currentRound > 0 && m.RoundNumber > currentRound {
			continue
		}
		if !m.Involves(playerID) {
			continue
		}

		rec.MatchesPlayed++

		if m.IsBye() {
			rec.ByeCount++
			rec.MatchWins++
			rec.GameWins += cfg.ByePointsValue.Wins
			rec.GameDraws += cfg.ByePointsValue.Draws
			// a bye has no opponent; it never appears in Opponents.
			continue
		}

		if m.IsLossForfeit {
			// late-entry phantom loss: counts as a played match with no
			// opponent and no game tally contribution.
			rec.MatchLosses++
			continue
		}

		playerWins, opponentWins := gameWinsFor(playerID, m)
		switch {
		case playerWins > opponentWins:
			rec.MatchWins++
		case playerWins < opponentWins:
			rec.MatchLosses++
		default:
			rec.MatchDraws++
		}
		rec.GameWins += playerWins
		rec.GameLosses += opponentWins
		rec.GameDraws += m.Draws

		if opp := m.OpponentOf(playerID); opp != nil {
			rec.Opponents = append(rec.Opponents, *opp)
		}
	}

	rec.MatchPoints = rec.MatchWins*3 + rec.MatchDraws*1

	return rec
}

// gameWinsFor returns (playerID's game wins, the other side's game
// wins) for a non-bye, non-forfeit match.
func gameWinsFor(playerID uuid.UUID, m Match) (int, int) {
	if m.Player1ID == playerID {
		return m.Player1GameWins, m.Player2GameWins
	}
	return m.Player2GameWins, m.Player1GameWins
}

// totalGamesFor returns playerID's game wins and the total games played
// in a match, counting a bye as its configured score (used by GW% which
// counts bye games per MTG DCI rules).
func totalGamesFor(playerID uuid.UUID, m Match, cfg SwissConfig) (played, total int) {
	if m.IsBye() {
		return cfg.ByePointsValue.Wins, cfg.ByePointsValue.Wins + cfg.ByePointsValue.Draws
	}
	if m.IsLossForfeit {
		return 0, 0
	}
	playerWins, opponentWins := gameWinsFor(playerID, m)
	return playerWins, playerWins + opponentWins + m.Draws
}
