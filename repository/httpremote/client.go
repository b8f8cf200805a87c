/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package httpremote is a read-only repository.Repository that fetches
// registrations and matches from a remote tournament service over HTTP,
// through an httpcache-wrapped client exactly like the teacher's own
// uschess.Client, so recomputing standings mid-round doesn't refetch an
// unchanged match log every time.
package httpremote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gregjones/httpcache"

	"github.com/mikeb26/swisspair/swiss"
)

// Client fetches a remote tournament service's registrations/matches
// endpoints through an in-memory response cache, so repeated standings
// recomputation during a round reuses the prior fetch until the
// origin's Cache-Control says otherwise.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Client targeting baseURL (no trailing slash), caching
// responses in-process via httpcache.NewMemoryCacheTransport — the same
// gregjones/httpcache library the teacher backs with S3 instead, here
// used with its plain in-memory cache since a remote read-through client
// has no need for cross-process cache durability.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpcache.NewMemoryCacheTransport().Client(),
	}
}

func (c *Client) ListRegistrations(ctx context.Context, tournamentID uuid.UUID) ([]swiss.Registration, error) {
	var regs []swiss.Registration
	url := fmt.Sprintf("%s/tournaments/%s/registrations", c.baseURL, tournamentID)
	if err := c.getJSON(ctx, url, &regs); err != nil {
		return nil, fmt.Errorf("httpremote: list registrations for %s: %w", tournamentID, err)
	}
	return regs, nil
}

func (c *Client) ListMatches(ctx context.Context, tournamentID uuid.UUID, upToRound int) ([]swiss.Match, error) {
	var matches []swiss.Match
	url := fmt.Sprintf("%s/tournaments/%s/matches?upTo=%d", c.baseURL, tournamentID, upToRound)
	if err := c.getJSON(ctx, url, &matches); err != nil {
		return nil, fmt.Errorf("httpremote: list matches for %s: %w", tournamentID, err)
	}
	return matches, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d fetching %s", resp.StatusCode, url)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}
