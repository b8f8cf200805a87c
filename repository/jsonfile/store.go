/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package jsonfile is a repository.Repository backed by one
// registrations.json and one matches.json per tournament directory.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mikeb26/swisspair/swiss"
)

// Store roots every tournament's JSON files under a single base
// directory, one subdirectory per tournament ID.
type Store struct {
	baseDir string
}

// New returns a Store rooted at baseDir. baseDir is created if it does
// not already exist.
func New(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("jsonfile: create base dir %s: %w", baseDir, err)
	}
	return &Store{baseDir: baseDir}, nil
}

func (s *Store) tournamentDir(tournamentID uuid.UUID) string {
	return filepath.Join(s.baseDir, tournamentID.String())
}

func (s *Store) ListRegistrations(_ context.Context, tournamentID uuid.UUID) ([]swiss.Registration, error) {
	var regs []swiss.Registration
	if err := readJSON(filepath.Join(s.tournamentDir(tournamentID), "registrations.json"), &regs); err != nil {
		return nil, fmt.Errorf("jsonfile: list registrations for %s: %w", tournamentID, err)
	}
	return regs, nil
}

func (s *Store) ListMatches(_ context.Context, tournamentID uuid.UUID, upToRound int) ([]swiss.Match, error) {
	var matches []swiss.Match
	if err := readJSON(filepath.Join(s.tournamentDir(tournamentID), "matches.json"), &matches); err != nil {
		return nil, fmt.Errorf("jsonfile: list matches for %s: %w", tournamentID, err)
	}
	if upToRound <= 0 {
		return matches, nil
	}
	out := make([]swiss.Match, 0, len(matches))
	for _, m := range matches {
		if m.RoundNumber <= upToRound {
			out = append(out, m)
		}
	}
	return out, nil
}

// PutRegistrations writes tournamentID's registrations.json, replacing
// any existing content.
func (s *Store) PutRegistrations(tournamentID uuid.UUID, regs []swiss.Registration) error {
	dir := s.tournamentDir(tournamentID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("jsonfile: create tournament dir %s: %w", dir, err)
	}
	if err := writeJSONAtomic(filepath.Join(dir, "registrations.json"), regs); err != nil {
		return fmt.Errorf("jsonfile: put registrations for %s: %w", tournamentID, err)
	}
	return nil
}

// PutMatches writes tournamentID's matches.json, replacing any existing
// content. Callers pass the full match log; the pairing engine's output
// for a newly-paired round gets appended to whatever ListMatches
// already returned before being written back.
func (s *Store) PutMatches(tournamentID uuid.UUID, matches []swiss.Match) error {
	dir := s.tournamentDir(tournamentID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("jsonfile: create tournament dir %s: %w", dir, err)
	}
	if err := writeJSONAtomic(filepath.Join(dir, "matches.json"), matches); err != nil {
		return fmt.Errorf("jsonfile: put matches for %s: %w", tournamentID, err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// writeJSONAtomic writes v to path via a temp file in the same
// directory followed by os.Rename, so a crash mid-write never leaves a
// half-written registrations.json or matches.json behind.
func writeJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}
