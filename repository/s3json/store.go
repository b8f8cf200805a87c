/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package s3json is a repository.Repository backed by the same
// registrations.json/matches.json encoding as repository/jsonfile, but
// with the objects living under a prefix in an S3 bucket instead of on
// the local filesystem. It is built directly on the teacher's s3cache
// package, generalized from an httpcache.Cache adapter (get/set/delete
// keyed by an opaque cache key) into a general-purpose blob get/put
// store keyed by tournament ID and file name.
package s3json

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/mikeb26/swisspair/swiss"
)

// Store persists tournament JSON blobs in an S3 bucket, one
// registrations.json and one matches.json object per tournament ID,
// under a fixed key prefix.
type Store struct {
	client     *s3.Client
	bucketName string
	prefix     string
}

// New returns a Store targeting bucketName, loading AWS credentials
// from the default credential chain (environment variables, shared
// config/credentials files), the same sources s3cache.Cache.Init uses.
func New(ctx context.Context, bucketName string) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3json: load AWS config: %w", err)
	}

	s := &Store{
		client:     s3.NewFromConfig(cfg),
		bucketName: bucketName,
		prefix:     "swisspair",
	}

	if _, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucketName)}); err != nil {
		return nil, fmt.Errorf("s3json: head bucket %s: %w", bucketName, err)
	}

	return s, nil
}

func (s *Store) objectKey(tournamentID uuid.UUID, file string) string {
	return fmt.Sprintf("%s/%s/%s", s.prefix, tournamentID, file)
}

func (s *Store) getObject(ctx context.Context, key string, v any) error {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		// treat a missing object as "nothing stored yet" rather than an error,
		// matching jsonfile's treatment of a missing file.
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil
		}
		return err
	}
	defer out.Body.Close()

	return json.NewDecoder(out.Body).Decode(v)
}

func (s *Store) putObject(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	return err
}

func (s *Store) ListRegistrations(ctx context.Context, tournamentID uuid.UUID) ([]swiss.Registration, error) {
	var regs []swiss.Registration
	if err := s.getObject(ctx, s.objectKey(tournamentID, "registrations.json"), &regs); err != nil {
		return nil, fmt.Errorf("s3json: list registrations for %s: %w", tournamentID, err)
	}
	return regs, nil
}

func (s *Store) ListMatches(ctx context.Context, tournamentID uuid.UUID, upToRound int) ([]swiss.Match, error) {
	var matches []swiss.Match
	if err := s.getObject(ctx, s.objectKey(tournamentID, "matches.json"), &matches); err != nil {
		return nil, fmt.Errorf("s3json: list matches for %s: %w", tournamentID, err)
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

// PutRegistrations writes tournamentID's registrations object, replacing
// any existing content.
func (s *Store) PutRegistrations(ctx context.Context, tournamentID uuid.UUID, regs []swiss.Registration) error {
	if err := s.putObject(ctx, s.objectKey(tournamentID, "registrations.json"), regs); err != nil {
		return fmt.Errorf("s3json: put registrations for %s: %w", tournamentID, err)
	}
	return nil
}

// PutMatches writes tournamentID's matches object, replacing any
// existing content.
func (s *Store) PutMatches(ctx context.Context, tournamentID uuid.UUID, matches []swiss.Match) error {
	if err := s.putObject(ctx, s.objectKey(tournamentID, "matches.json"), matches); err != nil {
		return fmt.Errorf("s3json: put matches for %s: %w", tournamentID, err)
	}
	return nil
}
