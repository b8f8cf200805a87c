/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package memory is an in-process repository.Repository implementation
// backed by mutex-guarded slices. It is the default store for tests and
// the example binary — nothing here survives process exit.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mikeb26/swisspair/swiss"
)

// Store is a repository.Repository backed by in-memory slices, safe for
// concurrent use.
type Store struct {
	mu            sync.RWMutex
	registrations map[uuid.UUID][]swiss.Registration
	matches       map[uuid.UUID][]swiss.Match
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		registrations: make(map[uuid.UUID][]swiss.Registration),
		matches:       make(map[uuid.UUID][]swiss.Match),
	}
}

// PutRegistrations replaces the registration list for tournamentID.
func (s *Store) PutRegistrations(tournamentID uuid.UUID, regs []swiss.Registration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registrations[tournamentID] = append([]swiss.Registration{}, regs...)
}

// AppendMatches appends matches to tournamentID's match log, e.g. after
// a round is paired and results start coming in.
func (s *Store) AppendMatches(tournamentID uuid.UUID, matches []swiss.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[tournamentID] = append(s.matches[tournamentID], matches...)
}

// ReplaceMatch overwrites the match in tournamentID's log sharing
// updated.MatchID, e.g. when a result is reported or corrected. It is a
// no-op if no match with that ID exists.
func (s *Store) ReplaceMatch(tournamentID uuid.UUID, updated swiss.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.matches[tournamentID] {
		if m.MatchID == updated.MatchID {
			s.matches[tournamentID][i] = updated
			return
		}
	}
}

func (s *Store) ListRegistrations(_ context.Context, tournamentID uuid.UUID) ([]swiss.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]swiss.Registration{}, s.registrations[tournamentID]...), nil
}

func (s *Store) ListMatches(_ context.Context, tournamentID uuid.UUID, upToRound int) ([]swiss.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.matches[tournamentID]
	if upToRound <= 0 {
		return append([]swiss.Match{}, all...), nil
	}

	out := make([]swiss.Match, 0, len(all))
	for _, m := range all {
		if m.RoundNumber <= upToRound {
			out = append(out, m)
		}
	}
	return out, nil
}
