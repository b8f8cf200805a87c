/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"testing"

	"github.com/google/uuid"
)

func TestCalculateStandingsMonotoneRank(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	regs := []Registration{reg(1, a), reg(2, b), reg(3, c)}
	matches := []Match{
		completedMatch(1, a, &b, 2, 0, 0), // a beats b
		completedMatch(1, c, &a, 0, 2, 0), // a beats c too -> a has 2 wins
	}
	cfg := MTGStandard(3, 7)

	standings, err := CalculateStandings(regs, matches, cfg, ForFinal, 1)
	if err != nil {
		t.Fatalf("CalculateStandings: %v", err)
	}

	for i := range standings {
		for j := range standings {
			if standings[i].MatchPoints > standings[j].MatchPoints && standings[i].Rank >= standings[j].Rank {
				t.Errorf("monotone rank violated: %v has more points than %v but rank %d >= %d",
					standings[i].Registration.PlayerID, standings[j].Registration.PlayerID,
					standings[i].Rank, standings[j].Rank)
			}
		}
	}
}

func TestCalculateStandingsTotalOrder(t *testing.T) {
	// Five players who never play each other: identical match points and
	// tiebreakers except for the final random/player_number entry, which
	// must break every remaining tie.
	var regs []Registration
	for i := 1; i <= 5; i++ {
		regs = append(regs, reg(i, uuid.New()))
	}
	cfg := MTGStandard(3, 99)

	standings, err := CalculateStandings(regs, nil, cfg, ForFinal, 1)
	if err != nil {
		t.Fatalf("CalculateStandings: %v", err)
	}

	seen := make(map[int]bool)
	for _, e := range standings {
		if seen[e.Rank] {
			t.Fatalf("duplicate rank %d in standings", e.Rank)
		}
		seen[e.Rank] = true
	}
	if len(seen) != len(regs) {
		t.Fatalf("got %d distinct ranks, want %d", len(seen), len(regs))
	}
}

func TestCalculateStandingsDeterministic(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	regs := []Registration{reg(1, a), reg(2, b), reg(3, c)}
	matches := []Match{
		completedMatch(1, a, &b, 2, 0, 0),
		completedMatch(1, b, &c, 2, 0, 0),
		completedMatch(1, c, &a, 2, 0, 0),
	}
	cfg := MTGStandard(3, 42)

	s1, err := CalculateStandings(regs, matches, cfg, ForFinal, 1)
	if err != nil {
		t.Fatalf("CalculateStandings: %v", err)
	}
	s2, err := CalculateStandings(regs, matches, cfg, ForFinal, 1)
	if err != nil {
		t.Fatalf("CalculateStandings: %v", err)
	}

	if len(s1) != len(s2) {
		t.Fatalf("length mismatch between repeated calls")
	}
	for i := range s1 {
		if s1[i].Registration.PlayerID != s2[i].Registration.PlayerID || s1[i].Rank != s2[i].Rank {
			t.Fatalf("non-deterministic standings at index %d: %+v vs %+v", i, s1[i], s2[i])
		}
	}
}

func TestCalculateStandingsKeepsDroppedPlayersFlagged(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	dropRound := 2
	regs := []Registration{
		reg(1, a),
		{RegistrationID: uuid.New(), PlayerID: b, SequenceID: 2, Status: StatusDropped, DropRound: &dropRound},
	}
	matches := []Match{completedMatch(1, a, &b, 2, 0, 0)}
	cfg := MTGStandard(3, 1)

	standings, err := CalculateStandings(regs, matches, cfg, ForFinal, 2)
	if err != nil {
		t.Fatalf("CalculateStandings: %v", err)
	}

	var found bool
	for _, e := range standings {
		if e.Registration.PlayerID == b {
			found = true
			if !e.Dropped {
				t.Errorf("dropped player missing Dropped flag in standings entry")
			}
		}
	}
	if !found {
		t.Fatalf("dropped player who played a match should remain in standings")
	}
}

func TestValidateMatchLogRejectsDuplicatePairingInRound(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	regs := []Registration{reg(1, a), reg(2, b)}
	matches := []Match{
		completedMatch(1, a, &b, 2, 0, 0),
		completedMatch(1, b, &a, 0, 2, 0), // same pair, same round, reversed order
	}

	_, err := CalculateStandings(regs, matches, MTGStandard(3, 1), ForFinal, 1)
	if err == nil {
		t.Fatal("expected an error for a duplicate in-round pairing")
	}
	var swissErr *Error
	if !castError(err, &swissErr) || swissErr.Kind != ErrInvalidInput {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestValidateMatchLogRejectsUnregisteredPlayer(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	regs := []Registration{reg(1, a)}
	matches := []Match{completedMatch(1, a, &b, 2, 0, 0)}

	_, err := CalculateStandings(regs, matches, MTGStandard(3, 1), ForFinal, 1)
	if err == nil {
		t.Fatal("expected an error for an unregistered opponent")
	}
}

func castError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
