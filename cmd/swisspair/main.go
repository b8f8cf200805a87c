/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Command swisspair runs a complete Swiss tournament end to end against
// an in-memory repository, pairing round by round, reporting simulated
// results, and printing standings after each round — a Go mirror of
// the reference Python example this engine's design is grounded on.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mikeb26/swisspair/repository/memory"
	"github.com/mikeb26/swisspair/swiss"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: failed to init logger: %v\n", os.Args[0], err)
		os.Exit(1)
	}
	defer logger.Sync()

	configPath := "tournament.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	def, err := loadTournamentDef(configPath)
	if err != nil {
		logger.Warn("falling back to built-in defaults", zap.String("path", configPath), zap.Error(err))
		def = tournamentDef{Preset: "mtg_standard", Rounds: 3, PlayerCount: 8}
	}

	cfg, err := def.buildConfig()
	if err != nil {
		logger.Fatal("invalid tournament definition", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid swiss config", zap.Error(err))
	}

	if err := run(context.Background(), logger, def, cfg); err != nil {
		logger.Fatal("tournament run failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger, def tournamentDef, cfg swiss.SwissConfig) error {
	tournamentID := uuid.New()
	store := memory.New()

	regs := make([]swiss.Registration, def.PlayerCount)
	for i := range regs {
		regs[i] = swiss.Registration{
			RegistrationID: uuid.New(),
			PlayerID:       uuid.New(),
			SequenceID:     i + 1,
			Status:         swiss.StatusActive,
		}
	}
	store.PutRegistrations(tournamentID, regs)

	names := make(map[uuid.UUID]string, len(regs))
	for i, r := range regs {
		names[r.PlayerID] = fmt.Sprintf("Player %d", i+1)
	}

	resultRNG := rand.New(rand.NewSource(cfg.Seed))

	logger.Info("tournament started",
		zap.String("tournament_id", tournamentID.String()),
		zap.Int("players", def.PlayerCount),
		zap.Int("rounds", cfg.Rounds),
		zap.String("preset", def.Preset))

	var allMatches []swiss.Match
	for round := 1; round <= cfg.Rounds; round++ {
		var pairings []swiss.Pairing
		if round == 1 {
			p, err := pairFirstRound(regs, cfg)
			if err != nil {
				return err
			}
			pairings = p
		} else {
			matches, err := store.ListMatches(ctx, tournamentID, round-1)
			if err != nil {
				return fmt.Errorf("list matches: %w", err)
			}
			result, err := swiss.PairRound(regs, matches, cfg, round)
			if err != nil {
				return fmt.Errorf("pair round %d: %w", round, err)
			}
			pairings = result.Pairings
		}

		printPairings(round, pairings, names)
		simulated := simulateResults(pairings, resultRNG)
		allMatches = append(allMatches, simulated...)
		store.AppendMatches(tournamentID, simulated)

		matchesSoFar, err := store.ListMatches(ctx, tournamentID, round)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		standings, err := swiss.CalculateStandings(regs, matchesSoFar, cfg, swiss.ForFinal, round)
		if err != nil {
			return fmt.Errorf("calculate standings after round %d: %w", round, err)
		}
		printStandings(round, standings, names)
	}

	logger.Info("tournament complete", zap.Int("total_matches", len(allMatches)))
	return nil
}

func pairFirstRound(regs []swiss.Registration, cfg swiss.SwissConfig) ([]swiss.Pairing, error) {
	pairings, err := swiss.PairRound1(regs, cfg)
	if err != nil {
		return nil, fmt.Errorf("pair round 1: %w", err)
	}
	return pairings, nil
}

// simulateResults turns pairings into completed matches with plausible
// random scores, standing in for real results being reported.
func simulateResults(pairings []swiss.Pairing, rng *rand.Rand) []swiss.Match {
	now := time.Now()
	matches := make([]swiss.Match, len(pairings))
	for i, p := range pairings {
		m := swiss.Match{
			MatchID:     uuid.New(),
			RoundNumber: p.RoundNumber,
			Player1ID:   p.Player1ID,
			Player2ID:   p.Player2ID,
			TableNumber: p.TableNumber,
			EndTime:     &now,
		}
		if !p.IsBye {
			if rng.Intn(2) == 0 {
				m.Player1GameWins, m.Player2GameWins = 2, rng.Intn(2)
			} else {
				m.Player1GameWins, m.Player2GameWins = rng.Intn(2), 2
			}
		}
		matches[i] = m
	}
	return matches
}

func printPairings(round int, pairings []swiss.Pairing, names map[uuid.UUID]string) {
	fmt.Printf("\n== Round %d pairings ==\n", round)
	for _, p := range pairings {
		if p.IsBye {
			fmt.Printf("  BYE: %s\n", names[p.Player1ID])
			continue
		}
		table := "?"
		if p.TableNumber != nil {
			table = fmt.Sprintf("%d", *p.TableNumber)
		}
		fmt.Printf("  Table %s: %s vs %s\n", table, names[p.Player1ID], names[*p.Player2ID])
	}
}

func printStandings(round int, standings []swiss.StandingsEntry, names map[uuid.UUID]string) {
	fmt.Printf("\n== Standings after round %d ==\n", round)
	for _, e := range standings {
		flag := ""
		if e.Dropped {
			flag = " (DROPPED)"
		}
		fmt.Printf("  %2d. %-12s %d-%d-%d  pts=%d  omw=%.2f%s\n",
			e.Rank, names[e.Registration.PlayerID], e.MatchWins, e.MatchLosses, e.MatchDraws,
			e.MatchPoints, e.Tiebreakers[swiss.TiebreakOpponentMW], flag)
	}
}
