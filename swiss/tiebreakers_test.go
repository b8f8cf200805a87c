/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"testing"

	"github.com/google/uuid"
)

func reg(seq int, id uuid.UUID) Registration {
	return Registration{RegistrationID: uuid.New(), PlayerID: id, SequenceID: seq, Status: StatusActive}
}

// TestTiebreakerTriangle implements spec scenario S1: three players in
// a 2-0 cycle all sit at 1-1-0, 3 points, and OMW% = max(0.5, 0.33) for
// every one of them under MTGStandard.
func TestTiebreakerTriangle(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	regs := []Registration{reg(1, a), reg(2, b), reg(3, c)}
	matches := []Match{
		completedMatch(1, a, &b, 2, 0, 0),
		completedMatch(1, b, &c, 2, 0, 0),
		completedMatch(1, c, &a, 2, 0, 0),
	}
	cfg := MTGStandard(3, 42)

	idx := newAggregateIndex(regs, matches, cfg, 1)
	for _, p := range []uuid.UUID{a, b, c} {
		omw := opponentMatchWinPercentage(p, idx, matches, cfg, 1)
		if omw != 0.5 {
			t.Errorf("player %v OMW%% = %v, want 0.5", p, omw)
		}
	}
}

func TestOGWBelowThresholdContributesZero(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	regs := []Registration{reg(1, a), reg(2, b)}
	matches := []Match{completedMatch(1, a, &b, 1, 0, 0)} // single game, below threshold
	cfg := NewSwissConfig(3, 1)
	cfg.MinGamesForGW = 2

	idx := newAggregateIndex(regs, matches, cfg, 1)
	ogw := opponentGameWinPercentage(a, idx, matches, cfg, 1)
	if ogw != 0 {
		t.Errorf("OGW%% with an under-threshold opponent = %v, want 0", ogw)
	}
}

func TestOMWAndOGWExcludeByeOnlyHistory(t *testing.T) {
	cfg := MTGStandard(3, 1)
	a := uuid.New()
	regs := []Registration{reg(1, a)}
	matches := []Match{byeMatch(1, a, cfg)}

	idx := newAggregateIndex(regs, matches, cfg, 1)
	if v := opponentMatchWinPercentage(a, idx, matches, cfg, 1); v != 0 {
		t.Errorf("OMW%% for bye-only history = %v, want 0", v)
	}
	if v := opponentGameWinPercentage(a, idx, matches, cfg, 1); v != 0 {
		t.Errorf("OGW%% for bye-only history = %v, want 0", v)
	}
}

func TestMatchWinPercentageFloorAndZeroDenominator(t *testing.T) {
	cfg := NewSwissConfig(3, 1)
	a := uuid.New()
	regs := []Registration{reg(1, a)}

	idx := newAggregateIndex(regs, nil, cfg, 1)
	if v := matchWinPercentage(a, idx, nil, cfg, 1); v != cfg.OMWFloor {
		t.Errorf("MW%% with no matches = %v, want floor %v", v, cfg.OMWFloor)
	}
}

func TestBuchholzVariantsDropCorrectTerms(t *testing.T) {
	a, o1, o2, o3 := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	regs := []Registration{reg(1, a), reg(2, o1), reg(3, o2), reg(4, o3)}
	matches := []Match{
		completedMatch(1, a, &o1, 2, 0, 0),
		completedMatch(2, a, &o2, 2, 0, 0),
		completedMatch(3, a, &o3, 2, 0, 0),
		// opponents end on o1=0, o2=0, o3=6 (o3 wins both extra matches)
		completedMatch(1, o2, &o3, 0, 2, 0),
		completedMatch(2, o3, &o1, 2, 0, 0),
	}

	standard := NewSwissConfig(3, 1)
	standard.BuchholzVariant = BuchholzStandard
	idxStd := newAggregateIndex(regs, matches, standard, 3)
	sum := buchholzScore(a, idxStd, matches, standard, 3)

	median := standard
	median.BuchholzVariant = BuchholzMedian
	idxMed := newAggregateIndex(regs, matches, median, 3)
	medSum := buchholzScore(a, idxMed, matches, median, 3)

	if medSum >= sum {
		t.Errorf("median buchholz %v should be less than standard %v after dropping extremes", medSum, sum)
	}
}

func TestSonnebornBergerWeightsByResult(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	regs := []Registration{reg(1, a), reg(2, b)}
	cfg := ChessStyle(3, 1)
	matches := []Match{completedMatch(1, a, &b, 1, 0, 0)} // a wins
	idx := newAggregateIndex(regs, matches, cfg, 1)

	sb := sonnebornBergerScore(a, idx, matches, cfg, 1)
	// b has 0 match points (a loss), so a's SB contribution is 0*1.0 = 0.
	if sb != 0 {
		t.Errorf("sonneborn-berger = %v, want 0 when the only opponent has 0 points", sb)
	}
}

func TestRandomTiebreakerDeterministic(t *testing.T) {
	p := uuid.New()
	v1 := randomTiebreakerValue(42, 3, p)
	v2 := randomTiebreakerValue(42, 3, p)
	if v1 != v2 {
		t.Fatalf("random tiebreaker not deterministic: %v != %v", v1, v2)
	}

	v3 := randomTiebreakerValue(43, 3, p)
	if v1 == v3 {
		t.Errorf("random tiebreaker identical across different seeds: suspiciously equal")
	}
}

func TestPlayerNumberTiebreakerFavorsLowerSequence(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	regs := []Registration{reg(1, a), reg(5, b)}
	idx := newAggregateIndex(regs, nil, NewSwissConfig(1, 1), 1)

	va := playerNumberTiebreaker(a, idx, nil, SwissConfig{}, 1)
	vb := playerNumberTiebreaker(b, idx, nil, SwissConfig{}, 1)
	if va <= vb {
		t.Errorf("player_number(seq=1)=%v should exceed player_number(seq=5)=%v", va, vb)
	}
}
