/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func completedMatch(round int, p1 uuid.UUID, p2 *uuid.UUID, p1w, p2w, draws int) Match {
	now := time.Now()
	return Match{
		MatchID:         uuid.New(),
		RoundNumber:     round,
		Player1ID:       p1,
		Player2ID:       p2,
		Player1GameWins: p1w,
		Player2GameWins: p2w,
		Draws:           draws,
		EndTime:         &now,
	}
}

func byeMatch(round int, p1 uuid.UUID, cfg SwissConfig) Match {
	now := time.Now()
	return Match{
		MatchID:     uuid.New(),
		RoundNumber: round,
		Player1ID:   p1,
		EndTime:     &now,
	}
}

func TestAggregatePlayerWinLossDraw(t *testing.T) {
	cfg := NewSwissConfig(3, 1)
	a, b := uuid.New(), uuid.New()

	matches := []Match{
		completedMatch(1, a, &b, 2, 0, 0), // a wins
	}

	rec := AggregatePlayer(a, matches, cfg, 0)
	if rec.MatchWins != 1 || rec.MatchLosses != 0 || rec.MatchDraws != 0 {
		t.Fatalf("winner record = %+v", rec)
	}
	if rec.MatchPoints != 3 {
		t.Fatalf("winner match points = %d, want 3", rec.MatchPoints)
	}

	recB := AggregatePlayer(b, matches, cfg, 0)
	if recB.MatchWins != 0 || recB.MatchLosses != 1 {
		t.Fatalf("loser record = %+v", recB)
	}

	draw := []Match{completedMatch(1, a, &b, 1, 1, 0)}
	recDraw := AggregatePlayer(a, draw, cfg, 0)
	if recDraw.MatchDraws != 1 || recDraw.MatchPoints != 1 {
		t.Fatalf("draw record = %+v", recDraw)
	}
}

func TestAggregatePlayerByeCreditsConfiguredPoints(t *testing.T) {
	cfg := ChessStyle(3, 1) // bye 1-0
	a := uuid.New()
	rec := AggregatePlayer(a, []Match{byeMatch(1, a, cfg)}, cfg, 0)

	if rec.ByeCount != 1 {
		t.Fatalf("ByeCount = %d, want 1", rec.ByeCount)
	}
	if rec.MatchWins != 1 || rec.MatchPoints != 3 {
		t.Fatalf("bye record = %+v", rec)
	}
	if rec.GameWins != 1 {
		t.Fatalf("chess bye GameWins = %d, want 1 (configured 1-0)", rec.GameWins)
	}
	if len(rec.Opponents) != 0 {
		t.Fatalf("bye added an opponent: %+v", rec.Opponents)
	}
}

// TestAggregatePlayerByeIsExactlyOneMatchWin guards against crediting a
// bye's game score (e.g. MTG's 2-0) as match wins: a bye is always
// exactly one match win regardless of how many games its configured
// score spans.
func TestAggregatePlayerByeIsExactlyOneMatchWin(t *testing.T) {
	cfg := MTGStandard(3, 1) // bye 2-0
	a := uuid.New()
	rec := AggregatePlayer(a, []Match{byeMatch(1, a, cfg)}, cfg, 0)

	if rec.MatchWins != 1 {
		t.Fatalf("MTG bye MatchWins = %d, want 1", rec.MatchWins)
	}
	if rec.MatchPoints != 3 {
		t.Fatalf("MTG bye MatchPoints = %d, want 3", rec.MatchPoints)
	}
	if rec.GameWins != 2 {
		t.Fatalf("MTG bye GameWins = %d, want 2", rec.GameWins)
	}
}

func TestAggregatePlayerIgnoresFutureRounds(t *testing.T) {
	cfg := NewSwissConfig(3, 1)
	a, b := uuid.New(), uuid.New()
	matches := []Match{
		completedMatch(1, a, &b, 2, 0, 0),
		completedMatch(2, a, &b, 2, 0, 0),
	}

	rec := AggregatePlayer(a, matches, cfg, 1)
	if rec.MatchesPlayed != 1 {
		t.Fatalf("MatchesPlayed = %d, want 1 when capped at round 1", rec.MatchesPlayed)
	}
}

func TestAggregatePlayerIgnoresIncompleteMatches(t *testing.T) {
	cfg := NewSwissConfig(3, 1)
	a, b := uuid.New(), uuid.New()
	pending := Match{MatchID: uuid.New(), RoundNumber: 1, Player1ID: a, Player2ID: &b}

	rec := AggregatePlayer(a, []Match{pending}, cfg, 0)
	if rec.MatchesPlayed != 0 {
		t.Fatalf("incomplete match counted: %+v", rec)
	}
}

func TestAggregatePlayerForfeitCountsAsLossWithNoOpponent(t *testing.T) {
	cfg := NewSwissConfig(3, 1)
	a := uuid.New()
	now := time.Now()
	forfeit := Match{MatchID: uuid.New(), RoundNumber: 1, Player1ID: a, IsLossForfeit: true, EndTime: &now}

	rec := AggregatePlayer(a, []Match{forfeit}, cfg, 0)
	if rec.MatchLosses != 1 || rec.MatchesPlayed != 1 {
		t.Fatalf("forfeit record = %+v", rec)
	}
	if len(rec.Opponents) != 0 {
		t.Fatalf("forfeit added an opponent: %+v", rec.Opponents)
	}
}
