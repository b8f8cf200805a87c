/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package repository defines the read-only persistence contract the
// swiss package's callers implement against, plus reference backends.
// The swiss package never imports this package — it is strictly a
// collaborator, dependency-injected into whatever drives the engine.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mikeb26/swisspair/swiss"
)

// Repository is the read-only contract a tournament store must satisfy
// for the swiss engine to consume it. Implementations never mutate the
// slices they return to separate callers.
type Repository interface {
	// ListRegistrations returns every registration for tournamentID, in
	// no particular order; callers that care about order sort by
	// SequenceID themselves.
	ListRegistrations(ctx context.Context, tournamentID uuid.UUID) ([]swiss.Registration, error)

	// ListMatches returns every match for tournamentID with RoundNumber
	// <= upToRound. upToRound <= 0 means "no limit" — return the entire
	// match log, matching swiss.AggregatePlayer's own currentRound
	// convention.
	ListMatches(ctx context.Context, tournamentID uuid.UUID, upToRound int) ([]swiss.Match, error)
}
