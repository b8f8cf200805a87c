/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"time"

	"github.com/google/uuid"
)

// RoundStatus is a round's position in the Pending -> Active -> Completed
// state machine spec.md §4.D describes.
type RoundStatus int

const (
	RoundPending RoundStatus = iota
	RoundActive
	RoundCompleted
)

func (s RoundStatus) String() string {
	switch s {
	case RoundPending:
		return "pending"
	case RoundActive:
		return "active"
	case RoundCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// RoundStatusOf derives a round's status from its match log: Pending if
// no match for the round exists yet, Active if at least one match
// exists but at least one lacks an EndTime, Completed once every match
// for the round has an EndTime.
func RoundStatusOf(matches []Match, roundNumber int) RoundStatus {
	found := false
	for _, m := range matches {
		if m.RoundNumber != roundNumber {
			continue
		}
		found = true
		if !m.IsComplete() {
			return RoundActive
		}
	}
	if !found {
		return RoundPending
	}
	return RoundCompleted
}

// CanAdvanceRound reports whether roundNumber has finished and pairing
// round roundNumber+1 may proceed: roundNumber must be Completed and
// roundNumber+1 must not exceed configuredRounds.
func CanAdvanceRound(matches []Match, roundNumber, configuredRounds int) bool {
	return roundNumber+1 <= configuredRounds && RoundStatusOf(matches, roundNumber) == RoundCompleted
}

// CloseDroppedPlayerMatch implements spec.md §4.D's drop handling: an
// unfinished match belonging to a player who has just dropped is closed
// as a win for the opponent, scored at the configured bye-equivalent
// value, rather than left pending forever. Returns the original match
// unchanged if it is already complete, is a bye, or does not involve
// droppedPlayerID.
func CloseDroppedPlayerMatch(m Match, droppedPlayerID uuid.UUID, cfg SwissConfig, endTime time.Time) Match {
	if m.IsComplete() || m.IsBye() || !m.Involves(droppedPlayerID) {
		return m
	}

	closed := m
	closed.EndTime = &endTime
	if m.Player1ID == droppedPlayerID {
		closed.Player1GameWins = 0
		closed.Player2GameWins = cfg.ByePointsValue.Wins
		closed.Draws = cfg.ByePointsValue.Draws
	} else {
		closed.Player2GameWins = 0
		closed.Player1GameWins = cfg.ByePointsValue.Wins
		closed.Draws = cfg.ByePointsValue.Draws
	}
	return closed
}

// GenerateLateEntryForfeits returns one IsLossForfeit match per round
// from 1 to reg.EntryRound-1, per spec.md §4.D's "Drops and late
// entries": a LATE_ENTRY registration is recorded as having lost every
// round it missed, without an opponent, so those rounds don't
// contribute to anyone else's O_W% denominators. Returns nil if reg is
// not a LATE_ENTRY registration or EntryRound is 1 or earlier.
func GenerateLateEntryForfeits(reg Registration, idFn func() uuid.UUID, entryTime time.Time) []Match {
	if reg.Status != StatusLateEntry || reg.EntryRound == nil || *reg.EntryRound <= 1 {
		return nil
	}

	forfeits := make([]Match, 0, *reg.EntryRound-1)
	for round := 1; round < *reg.EntryRound; round++ {
		forfeits = append(forfeits, Match{
			MatchID:         idFn(),
			RoundNumber:     round,
			Player1ID:       reg.PlayerID,
			Player2ID:       nil,
			Player1GameWins: 0,
			Player2GameWins: 0,
			Draws:           0,
			EndTime:         &entryTime,
			IsLossForfeit:   true,
		})
	}
	return forfeits
}
