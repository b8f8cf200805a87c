/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"slices"
	"sort"

	"github.com/google/uuid"
)

// PairingResult is the outcome of PairRound. On success, Pairings holds
// every eligible registration's assignment for the round, in table-
// numbering order. PairRound never returns a partially-populated
// PairingResult alongside a non-nil error.
type PairingResult struct {
	Pairings []Pairing
}

// PairRound1 pairs the first round of a Swiss tournament: a random
// shuffle (default) or a seeded sort by SequenceID, per cfg.Round1Mode.
// The odd leftover, if any, receives the bye.
func PairRound1(regs []Registration, cfg SwissConfig) ([]Pairing, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var active []Registration
	for _, r := range regs {
		if r.Status == StatusActive {
			active = append(active, r)
		}
	}
	if len(active) < 2 {
		return nil, newError(ErrTooFewPlayers, "need at least 2 active registrations, got %d", len(active))
	}

	var ordered []Registration
	switch cfg.Round1Mode {
	case Round1Seeded:
		ordered = append([]Registration{}, active...)
		sort.Slice(ordered, func(i, j int) bool { return ordered[i].SequenceID < ordered[j].SequenceID })
	default:
		ordered = append([]Registration{}, active...)
		rng := newDerivedRNG(cfg.Seed, "round1:shuffle")
		rng.Shuffle(len(ordered), func(i, j int) { ordered[i], ordered[j] = ordered[j], ordered[i] })
	}

	var pairings []Pairing
	table := 1
	i := 0
	for ; i+1 < len(ordered); i += 2 {
		t := table
		table++
		p2 := ordered[i+1].PlayerID
		pairings = append(pairings, Pairing{
			RoundNumber: 1,
			TableNumber: &t,
			Player1ID:   ordered[i].PlayerID,
			Player2ID:   &p2,
		})
	}
	if i < len(ordered) {
		pairings = append(pairings, Pairing{
			RoundNumber: 1,
			Player1ID:   ordered[i].PlayerID,
			IsBye:       true,
		})
	}

	return pairings, nil
}

// PairRound pairs round roundNumber (>= 2) using standings-based
// bracket pairing: no-rematch enforcement, pair-down accounting, and
// bye-cap enforcement, per spec.md §4.D.
//
// # Ordering
//
// Returned pairings are in table-numbering order: top bracket first,
// top of bracket first. A bye, if any, is always last and carries no
// table number.
//
// # Errors
//
// Returns a *Error with Kind ErrRoundNotReady if round roundNumber-1
// has any match without an EndTime, ErrTooFewPlayers if fewer than two
// registrations are eligible for roundNumber, or ErrImpossiblePairing
// if no legal pairing exists even after the recovery ladder in §4.D
// runs.
func PairRound(regs []Registration, matches []Match, cfg SwissConfig, roundNumber int) (PairingResult, error) {
	if err := cfg.Validate(); err != nil {
		return PairingResult{}, err
	}
	if roundNumber < 2 {
		return PairingResult{}, newError(ErrInvalidInput, "PairRound requires roundNumber >= 2, got %d", roundNumber)
	}
	if err := checkRoundReady(matches, roundNumber); err != nil {
		return PairingResult{}, err
	}

	var active []Registration
	for _, r := range regs {
		if r.IsEligibleForRound(roundNumber) {
			active = append(active, r)
		}
	}
	if len(active) < 2 {
		return PairingResult{}, newError(ErrTooFewPlayers, "need at least 2 eligible registrations for round %d, got %d", roundNumber, len(active))
	}

	history := buildHistory(matches, cfg.AvoidRepeatPairings)
	byeCount := buildByeCounts(matches)
	pairDownCount := buildPairDownCounts(active, matches, cfg, roundNumber)

	standings := rankEntries(active, matches, cfg, cfg.PairingTiebreakers, roundNumber-1)
	brackets := groupBrackets(standings)

	pairs, leftover := pairAllBrackets(brackets, history, cfg.AvoidRepeatPairings)

	if len(leftover) > 1 {
		recoveredPairs, recoveredLeftover, ok := attemptRecovery(brackets, pairs, leftover, history, cfg, pairDownCount)
		if !ok {
			return PairingResult{}, buildImpossiblePairingError(leftover)
		}
		pairs, leftover = recoveredPairs, recoveredLeftover
	}

	var byePlayer *bracketPlayer
	switch len(leftover) {
	case 0:
		// even total; nothing further to do.
	case 1:
		bp := leftover[0]
		if len(brackets) > 0 {
			bp = selectByeRecipient(&pairs, bp, brackets[len(brackets)-1], byeCount, cfg, roundNumber)
		}
		byePlayer = &bp
	default:
		return PairingResult{}, buildImpossiblePairingError(leftover)
	}

	if byePlayer != nil && cfg.byeCapReached(byeCount[byePlayer.entry.Registration.PlayerID]) {
		shifted, ok := shiftByeUpward(&pairs, *byePlayer, byeCount, cfg, pairDownCount)
		if !ok {
			return PairingResult{}, impossiblePairing(
				"every bye-eligible candidate is exhausted; no player can take the bye without exceeding max_byes_per_player",
				Remediation{Action: "drop_player", Detail: "drop the bye candidate or another player to change the parity"},
				Remediation{Action: "allow_rematch", Detail: "permit a specific rematch so the bye candidate can instead be paired"},
				Remediation{Action: "end_swiss_early", Detail: "end the Swiss portion of the tournament before this round"},
			)
		}
		byePlayer = &shifted
	}

	pairings := renderPairings(pairs, byePlayer, roundNumber)

	if err := validatePairingInvariants(pairings, active, history, byeCount, cfg); err != nil {
		return PairingResult{}, err
	}

	return PairingResult{Pairings: pairings}, nil
}

// validatePairingInvariants re-checks the no-rematch, bye-cap, and
// completeness invariants against the pairings PairRound is about to
// return, per spec.md §7: a violation here is an engine bug, not a
// tournament-state problem (genuinely impossible pairings are caught
// earlier and reported as ErrImpossiblePairing instead).
func validatePairingInvariants(pairings []Pairing, active []Registration, history map[uuid.UUID]map[uuid.UUID]struct{}, byeCount map[uuid.UUID]int, cfg SwissConfig) error {
	seen := make(map[uuid.UUID]int, len(active))
	for _, p := range pairings {
		seen[p.Player1ID]++
		if p.Player2ID != nil {
			seen[*p.Player2ID]++
			if cfg.AvoidRepeatPairings && hasPlayed(history, p.Player1ID, *p.Player2ID) {
				return wrapError(ErrInternalConsistency,
					fmt.Errorf("players %s and %s have already played", p.Player1ID, *p.Player2ID),
					"pairing produced a rematch under avoid_repeat_pairings")
			}
		}
		if p.IsBye && cfg.byeCapReached(byeCount[p.Player1ID]) {
			return wrapError(ErrInternalConsistency,
				fmt.Errorf("player %s has already reached max_byes_per_player", p.Player1ID),
				"pairing assigned a bye exceeding the configured cap")
		}
	}

	for _, r := range active {
		if seen[r.PlayerID] != 1 {
			return wrapError(ErrInternalConsistency,
				fmt.Errorf("player %s appears %d times in round pairings, want 1", r.PlayerID, seen[r.PlayerID]),
				"pairing result is not a complete one-to-one assignment of eligible players")
		}
	}

	return nil
}

// bracketPlayer is a standings entry annotated with the match-point
// value of the bracket it was native to before any carry-down. origin
// differs from entry.MatchPoints only after the player has been carried
// into a lower bracket.
type bracketPlayer struct {
	entry  StandingsEntry
	origin int
}

type pairedMatch struct {
	p1, p2     bracketPlayer
	isPairDown bool
}

type bracket struct {
	points  int
	players []bracketPlayer
}

func groupBrackets(standings []StandingsEntry) []bracket {
	var brackets []bracket
	for _, e := range standings {
		if len(brackets) == 0 || brackets[len(brackets)-1].points != e.MatchPoints {
			brackets = append(brackets, bracket{points: e.MatchPoints})
		}
		b := &brackets[len(brackets)-1]
		b.players = append(b.players, bracketPlayer{entry: e, origin: e.MatchPoints})
	}
	return brackets
}

func pairAllBrackets(brackets []bracket, history map[uuid.UUID]map[uuid.UUID]struct{}, avoidRepeat bool) ([]pairedMatch, []bracketPlayer) {
	var pairs []pairedMatch
	var carry []bracketPlayer

	for _, br := range brackets {
		pool := append(append([]bracketPlayer{}, carry...), br.players...)
		bracketPairs, leftover := pairBracketGreedy(pool, history, avoidRepeat)
		pairs = append(pairs, bracketPairs...)
		carry = leftover
	}

	return pairs, carry
}

// pairBracketGreedy implements spec.md §4.D's within-bracket loop:
// repeatedly take the highest-ranked unpaired player and scan the
// remaining unpaired players in rank order for the first compatible
// opponent. A player for whom no compatible opponent remains is
// returned in leftover (a carry-down candidate).
func pairBracketGreedy(pool []bracketPlayer, history map[uuid.UUID]map[uuid.UUID]struct{}, avoidRepeat bool) ([]pairedMatch, []bracketPlayer) {
	available := append([]bracketPlayer{}, pool...)
	var pairs []pairedMatch
	var leftover []bracketPlayer

	for len(available) > 0 {
		p := available[0]
		available = available[1:]

		idx := -1
		for i, q := range available {
			if !avoidRepeat || !hasPlayed(history, p.entry.Registration.PlayerID, q.entry.Registration.PlayerID) {
				idx = i
				break
			}
		}

		if idx == -1 {
			leftover = append(leftover, p)
			continue
		}

		q := available[idx]
		available = append(available[:idx], available[idx+1:]...)
		pairs = append(pairs, pairedMatch{p1: p, p2: q, isPairDown: p.origin != q.origin})
	}

	return pairs, leftover
}

func hasPlayed(history map[uuid.UUID]map[uuid.UUID]struct{}, a, b uuid.UUID) bool {
	opps, ok := history[a]
	if !ok {
		return false
	}
	_, played := opps[b]
	return played
}

func buildHistory(matches []Match, enabled bool) map[uuid.UUID]map[uuid.UUID]struct{} {
	history := make(map[uuid.UUID]map[uuid.UUID]struct{})
	if !enabled {
		return history
	}
	for _, m := range matches {
		if !m.IsComplete() || m.IsBye() || m.IsLossForfeit || m.Player2ID == nil {
			continue
		}
		a, b := m.Player1ID, *m.Player2ID
		if history[a] == nil {
			history[a] = make(map[uuid.UUID]struct{})
		}
		if history[b] == nil {
			history[b] = make(map[uuid.UUID]struct{})
		}
		history[a][b] = struct{}{}
		history[b][a] = struct{}{}
	}
	return history
}

func buildByeCounts(matches []Match) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int)
	for _, m := range matches {
		if m.IsComplete() && m.IsBye() {
			counts[m.Player1ID]++
		}
	}
	return counts
}

// buildPairDownCounts replays every completed round up to roundNumber-1,
// recomputing the pairing standings as they stood immediately before
// each round, to count how many times each player has previously been
// carried into a strictly lower bracket. spec.md §9 leaves whether
// pair-down counts persist across tournaments unspecified; this
// implementation treats them as derived entirely from the supplied
// match log, scoped to one tournament, rather than as separately
// persisted state (see DESIGN.md).
func buildPairDownCounts(active []Registration, matches []Match, cfg SwissConfig, roundNumber int) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int)
	if !cfg.TrackPairDowns {
		return counts
	}

	for r := 2; r < roundNumber; r++ {
		before := rankEntries(active, matches, cfg, cfg.PairingTiebreakers, r-1)
		points := make(map[uuid.UUID]int, len(before))
		for _, e := range before {
			points[e.Registration.PlayerID] = e.MatchPoints
		}

		for _, m := range matches {
			if m.RoundNumber != r || !m.IsComplete() || m.IsBye() || m.IsLossForfeit || m.Player2ID == nil {
				continue
			}
			p1, p2 := points[m.Player1ID], points[*m.Player2ID]
			switch {
			case p1 > p2:
				counts[m.Player1ID]++
			case p2 > p1:
				counts[*m.Player2ID]++
			}
		}
	}

	return counts
}

// attemptRecovery implements the two recoveries spec.md §4.D lists
// before giving up: (1) break one already-emitted pair, scanning every
// bracket from the top down (not only the last bracket), to free a
// compatible opponent for each of exactly two stuck players; (2)
// allow one carry-down across two brackets rather than one, by
// re-running the greedy pass over the stuck leftover merged with the
// bracket two levels up. Returns ok=false if neither recovers a legal
// pairing, leaving the caller to report ImpossiblePairing.
func attemptRecovery(brackets []bracket, pairs []pairedMatch, leftover []bracketPlayer, history map[uuid.UUID]map[uuid.UUID]struct{}, cfg SwissConfig, pairDownCount map[uuid.UUID]int) ([]pairedMatch, []bracketPlayer, bool) {
	if !cfg.AvoidRepeatPairings {
		// rematches are allowed; the caller should never have reached
		// here, but if it did there is nothing to recover from.
		return pairs, leftover, false
	}

	if newPairs, ok := trySwapRecovery(pairs, leftover, history); ok {
		return newPairs, nil, true
	}

	if newPairs, newLeftover, ok := tryExtraCarryRecovery(brackets, pairs, leftover, history, cfg); ok {
		return newPairs, newLeftover, true
	}

	return pairs, leftover, false
}

// trySwapRecovery implements spec.md §4.D's first recovery step for
// the exactly-two-stuck-players case: find an already-emitted pair
// (X, Y) such that X can legally pair with one stuck player and Y can
// legally pair with the other. Breaking that pair in two — (X, L1) and
// (Y, L2) — resolves both leftovers without disturbing any other pair.
// Larger stuck sets (more than two leftover players) have no single
// pair whose break can resolve everyone at once and fall through to
// the cross-bracket carry recovery instead.
func trySwapRecovery(pairs []pairedMatch, leftover []bracketPlayer, history map[uuid.UUID]map[uuid.UUID]struct{}) ([]pairedMatch, bool) {
	if len(leftover) != 2 {
		return nil, false
	}
	l1, l2 := leftover[0], leftover[1]

	for i, pm := range pairs {
		if swapFrees(pm.p1, pm.p2, l1, l2, history) {
			return spliceSwap(pairs, i, pm.p1, l1, pm.p2, l2), true
		}
		if swapFrees(pm.p2, pm.p1, l1, l2, history) {
			return spliceSwap(pairs, i, pm.p2, l1, pm.p1, l2), true
		}
	}
	return nil, false
}

// swapFrees reports whether breaking a pair (a, b) to re-pair a with l1
// and b with l2 is legal under the no-rematch constraint.
func swapFrees(a, b, l1, l2 bracketPlayer, history map[uuid.UUID]map[uuid.UUID]struct{}) bool {
	return !hasPlayed(history, a.entry.Registration.PlayerID, l1.entry.Registration.PlayerID) &&
		!hasPlayed(history, b.entry.Registration.PlayerID, l2.entry.Registration.PlayerID)
}

// spliceSwap removes the pair at idx and puts (a, l1) and (b, l2) in
// its place.
func spliceSwap(pairs []pairedMatch, idx int, a, l1, b, l2 bracketPlayer) []pairedMatch {
	out := make([]pairedMatch, 0, len(pairs)+1)
	for i, pm := range pairs {
		if i == idx {
			out = append(out, pairedMatch{p1: a, p2: l1, isPairDown: a.origin != l1.origin})
			out = append(out, pairedMatch{p1: b, p2: l2, isPairDown: b.origin != l2.origin})
			continue
		}
		out = append(out, pm)
	}
	return out
}

// tryExtraCarryRecovery merges the stuck leftover with the bracket two
// levels above the one it fell out of and reruns the greedy pass over
// that merged pool, implementing "allow one carry-down across two
// brackets rather than one."
func tryExtraCarryRecovery(brackets []bracket, pairs []pairedMatch, leftover []bracketPlayer, history map[uuid.UUID]map[uuid.UUID]struct{}, cfg SwissConfig) ([]pairedMatch, []bracketPlayer, bool) {
	if len(brackets) < 2 {
		return nil, nil, false
	}

	// Remove the pairs that came from the lowest bracket (the one that
	// produced the stuck leftover) and retry with one extra level of
	// carry allowed: merge leftover into the second-to-last bracket's
	// own player pool and re-pair from there down through the bottom.
	lastIdx := len(brackets) - 1
	secondLastIdx := lastIdx - 1

	// Everything paired strictly above secondLastIdx stays untouched.
	keepCount := 0
	for _, br := range brackets[:secondLastIdx] {
		keepCount += len(br.players) / 2
	}
	untouched := pairs[:keepCount]

	mergedPool := append(append([]bracketPlayer{}, brackets[secondLastIdx].players...), leftover...)
	retryPairs, retryLeftover := pairBracketGreedy(mergedPool, history, cfg.AvoidRepeatPairings)
	if len(retryLeftover) > 0 {
		// still stuck even with the extra level — try folding the very
		// bottom bracket in too before giving up.
		mergedPool = append(mergedPool, brackets[lastIdx].players...)
		retryPairs, retryLeftover = pairBracketGreedy(mergedPool, history, cfg.AvoidRepeatPairings)
		if len(retryLeftover) > 1 {
			return nil, nil, false
		}
		return append(append([]pairedMatch{}, untouched...), retryPairs...), retryLeftover, true
	}

	bottomPairs, bottomLeftover := pairBracketGreedy(brackets[lastIdx].players, history, cfg.AvoidRepeatPairings)
	if len(bottomLeftover) > 1 {
		return nil, nil, false
	}
	all := append(append([]pairedMatch{}, untouched...), retryPairs...)
	all = append(all, bottomPairs...)
	return all, bottomLeftover, true
}

// selectByeRecipient applies cfg.ByeAssignment among the bottom
// bracket's bye-eligible candidates, per spec.md §4.D: natural is the
// greedy algorithm's own leftover, which is already the lowest-ranked
// player in the bottom bracket — exactly what ByeAssignmentLowestTiebreaker
// wants, so that policy returns natural unchanged. ByeAssignmentRandom
// instead picks uniformly, via the seeded PRNG, among every bye-eligible
// player who shares the bottom bracket's match-point total (whether or
// not the greedy pass happened to pair them off), swapping the pick
// into the bye slot and re-pairing the player it displaces against
// natural. Under AvoidRepeatPairings, a paired player is not a candidate
// when the partner it would leave behind has already played natural.
func selectByeRecipient(pairs *[]pairedMatch, natural bracketPlayer, bottom bracket, byeCount map[uuid.UUID]int, cfg SwissConfig, roundNumber int) bracketPlayer {
	if cfg.ByeAssignment != ByeAssignmentRandom {
		return natural
	}

	type candidate struct {
		player    bracketPlayer
		pairIndex int // -1 marks natural itself, which isn't in *pairs
	}
	var candidates []candidate
	if !cfg.byeCapReached(byeCount[natural.entry.Registration.PlayerID]) {
		candidates = append(candidates, candidate{player: natural, pairIndex: -1})
	}
	for i, pm := range *pairs {
		for _, side := range [][2]bracketPlayer{{pm.p1, pm.p2}, {pm.p2, pm.p1}} {
			p, partner := side[0], side[1]
			if p.entry.MatchPoints != bottom.points || p.entry.Registration.PlayerID == natural.entry.Registration.PlayerID {
				continue
			}
			if cfg.byeCapReached(byeCount[p.entry.Registration.PlayerID]) {
				continue
			}
			if cfg.AvoidRepeatPairings && slices.Contains(natural.entry.Opponents, partner.entry.Registration.PlayerID) {
				continue
			}
			candidates = append(candidates, candidate{player: p, pairIndex: i})
		}
	}
	if len(candidates) <= 1 {
		return natural
	}

	rng := newDerivedRNG(cfg.Seed, "bye:random", roundNumber)
	pick := candidates[rng.Intn(len(candidates))]
	if pick.pairIndex == -1 {
		return natural
	}

	pm := (*pairs)[pick.pairIndex]
	freed := pm.p2
	if pm.p2.entry.Registration.PlayerID == pick.player.entry.Registration.PlayerID {
		freed = pm.p1
	}
	(*pairs)[pick.pairIndex] = pairedMatch{p1: freed, p2: natural, isPairDown: freed.origin != natural.origin}

	return pick.player
}

// shiftByeUpward implements the ineligible-bye recovery: a bye-eligible
// player from an already-emitted pair swaps in as the bye recipient (p2
// when eligible, else p1), and the partner it leaves behind is re-paired
// against the original (ineligible) bye candidate. Under
// AvoidRepeatPairings, pairs whose left-behind partner has already
// played the ineligible candidate are skipped. Candidate pairs come from
// every bracket of the round, not only the same or next-higher bracket;
// they are ordered by the pair-down count of the pair's lower-ranked
// player (fewest first), then by that player's rank (lowest first).
func shiftByeUpward(pairs *[]pairedMatch, ineligible bracketPlayer, byeCount map[uuid.UUID]int, cfg SwissConfig, pairDownCount map[uuid.UUID]int) (bracketPlayer, bool) {
	candidates := make([]int, 0) // indices into *pairs whose p1 or p2 is bye-eligible
	for i, pm := range *pairs {
		freed := pm.p1
		if cfg.byeCapReached(byeCount[pm.p2.entry.Registration.PlayerID]) {
			if cfg.byeCapReached(byeCount[pm.p1.entry.Registration.PlayerID]) {
				continue
			}
			freed = pm.p2
		}
		if cfg.AvoidRepeatPairings && slices.Contains(ineligible.entry.Opponents, freed.entry.Registration.PlayerID) {
			continue
		}
		candidates = append(candidates, i)
	}
	if len(candidates) == 0 {
		return bracketPlayer{}, false
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		ia, ib := candidates[a], candidates[b]
		pa := lowerRanked((*pairs)[ia])
		pb := lowerRanked((*pairs)[ib])
		cntA, cntB := pairDownCount[pa.entry.Registration.PlayerID], pairDownCount[pb.entry.Registration.PlayerID]
		if cntA != cntB {
			return cntA < cntB
		}
		return pa.entry.Rank > pb.entry.Rank
	})

	pick := candidates[0]
	pm := (*pairs)[pick]

	var newByeRecipient, freedOpponent bracketPlayer
	if !cfg.byeCapReached(byeCount[pm.p2.entry.Registration.PlayerID]) {
		newByeRecipient, freedOpponent = pm.p2, pm.p1
	} else {
		newByeRecipient, freedOpponent = pm.p1, pm.p2
	}

	(*pairs)[pick] = pairedMatch{p1: freedOpponent, p2: ineligible, isPairDown: freedOpponent.origin != ineligible.origin}

	return newByeRecipient, true
}

func lowerRanked(pm pairedMatch) bracketPlayer {
	if pm.p1.entry.Rank > pm.p2.entry.Rank {
		return pm.p1
	}
	return pm.p2
}

func buildImpossiblePairingError(leftover []bracketPlayer) *Error {
	names := make([]string, 0, len(leftover))
	for _, lo := range leftover {
		names = append(names, lo.entry.Registration.PlayerID.String())
	}
	return impossiblePairing(
		"no legal pairing without a rematch exists for every remaining player",
		Remediation{Action: "drop_player", Detail: "drop one of the stuck players: " + joinStrings(names)},
		Remediation{Action: "allow_rematch", Detail: "explicitly permit a rematch for one of the stuck players this round"},
		Remediation{Action: "end_swiss_early", Detail: "end the Swiss portion of the tournament before this round"},
	)
}

func joinStrings(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}

func renderPairings(pairs []pairedMatch, bye *bracketPlayer, roundNumber int) []Pairing {
	pairings := make([]Pairing, 0, len(pairs)+1)
	table := 1
	for _, pm := range pairs {
		t := table
		table++
		p2 := pm.p2.entry.Registration.PlayerID
		pairings = append(pairings, Pairing{
			RoundNumber: roundNumber,
			TableNumber: &t,
			Player1ID:   pm.p1.entry.Registration.PlayerID,
			Player2ID:   &p2,
			IsPairDown:  pm.isPairDown,
		})
	}
	if bye != nil {
		pairings = append(pairings, Pairing{
			RoundNumber: roundNumber,
			Player1ID:   bye.entry.Registration.PlayerID,
			IsBye:       true,
		})
	}
	return pairings
}

func checkRoundReady(matches []Match, roundNumber int) error {
	if roundNumber <= 1 {
		return nil
	}
	prior := roundNumber - 1
	found := false
	for _, m := range matches {
		if m.RoundNumber != prior {
			continue
		}
		found = true
		if !m.IsComplete() {
			return newError(ErrRoundNotReady, "round %d has at least one match without an end time", prior)
		}
	}
	if !found {
		return newError(ErrRoundNotReady, "round %d has not been played yet", prior)
	}
	return nil
}
