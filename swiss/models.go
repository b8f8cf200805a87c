/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package swiss implements the Swiss-system pairing and standings engine:
// a pure, deterministic (given a seed) set of algorithms that turn match
// history into the next round's pairings and the current ranked
// standings. The package does no I/O; callers supply registrations and
// matches by value and get fresh Pairing/StandingsEntry values back.
package swiss

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationStatus is the lifecycle state of a player's registration
// within a single tournament.
type RegistrationStatus int

const (
	StatusActive RegistrationStatus = iota
	StatusDropped
	StatusLateEntry
)

func (s RegistrationStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusDropped:
		return "dropped"
	case StatusLateEntry:
		return "late_entry"
	default:
		return "unknown"
	}
}

// Registration identifies a player within one tournament.
type Registration struct {
	RegistrationID uuid.UUID
	PlayerID       uuid.UUID
	// SequenceID is the 1-based registration order, unique within the
	// tournament.
	SequenceID int
	Status     RegistrationStatus
	// DropRound is the first round after which the registration no
	// longer appears in pairings. Nil while ACTIVE.
	DropRound *int
	// EntryRound is the first round in which a LATE_ENTRY registration
	// actually plays. Nil unless Status == StatusLateEntry.
	EntryRound *int
}

// IsEligibleForRound reports whether this registration should appear in
// pairings for roundNumber.
func (r Registration) IsEligibleForRound(roundNumber int) bool {
	switch r.Status {
	case StatusDropped:
		return r.DropRound == nil || roundNumber <= *r.DropRound
	case StatusLateEntry:
		return r.EntryRound != nil && roundNumber >= *r.EntryRound
	default:
		return true
	}
}

// Match is one head-to-head or bye result.
type Match struct {
	MatchID         uuid.UUID
	RoundNumber     int
	Player1ID       uuid.UUID
	Player2ID       *uuid.UUID // nil => bye
	Player1GameWins int
	Player2GameWins int
	Draws           int
	TableNumber     *int
	EndTime         *time.Time
	// IsLossForfeit marks a late-entry's phantom loss for a round it
	// missed (spec.md §4.D "Drops and late entries"). Such matches carry
	// no opponent and never contribute to O_W% denominators.
	IsLossForfeit bool
}

// IsBye reports whether this match is a bye (no opponent).
func (m Match) IsBye() bool {
	return m.Player2ID == nil && !m.IsLossForfeit
}

// IsComplete reports whether the match has a recorded result.
func (m Match) IsComplete() bool {
	return m.EndTime != nil
}

// Involves reports whether playerID appears on either side of the match.
func (m Match) Involves(playerID uuid.UUID) bool {
	return m.Player1ID == playerID || (m.Player2ID != nil && *m.Player2ID == playerID)
}

// OpponentOf returns the opponent of playerID in this match, or nil for
// a bye or forfeit or if playerID did not play in this match.
func (m Match) OpponentOf(playerID uuid.UUID) *uuid.UUID {
	if m.IsBye() || m.IsLossForfeit {
		return nil
	}
	if m.Player1ID == playerID {
		return m.Player2ID
	}
	if m.Player2ID != nil && *m.Player2ID == playerID {
		return &m.Player1ID
	}
	return nil
}

// TiebreakerName identifies a calculator in the fixed registration
// table (see tiebreakers.go).
type TiebreakerName string

const (
	TiebreakMatchWin        TiebreakerName = "mw"
	TiebreakGameWin         TiebreakerName = "gw"
	TiebreakOpponentMW      TiebreakerName = "omw"
	TiebreakOpponentGW      TiebreakerName = "ogw"
	TiebreakMatchWinsRaw    TiebreakerName = "match_wins"
	TiebreakGameWinsRaw     TiebreakerName = "game_wins"
	TiebreakBuchholz        TiebreakerName = "buchholz"
	TiebreakSonnebornBerger TiebreakerName = "sonneborn_berger"
	TiebreakRandom          TiebreakerName = "random"
	TiebreakPlayerNumber    TiebreakerName = "player_number"
)

// StandingsEntry is one player's position in a ranked standings list.
type StandingsEntry struct {
	Registration Registration
	Rank         int
	MatchWins    int
	MatchLosses  int
	MatchDraws   int
	MatchPoints  int
	GameWins     int
	GameLosses   int
	GameDraws    int
	// MatchesPlayed counts both byes and head-to-head matches.
	MatchesPlayed int
	ByeCount      int
	// Opponents lists opponent player IDs in encounter order; byes and
	// forfeits are excluded.
	Opponents   []uuid.UUID
	Tiebreakers map[TiebreakerName]float64
	// Dropped mirrors Registration.Status == StatusDropped, kept as a
	// first-class field so callers don't need to know the registration
	// model to render a "DROPPED" flag next to a final standing.
	Dropped bool
}

// Pairing is one round's head-to-head or bye assignment.
type Pairing struct {
	RoundNumber int
	// TableNumber is nil for a bye — byes carry no table assignment.
	TableNumber *int
	Player1ID   uuid.UUID
	Player2ID   *uuid.UUID // nil => bye
	// IsPairDown is true when the two players originated in different
	// match-point brackets at the start of this round's pairing pass.
	IsPairDown bool
	IsBye      bool
}
