/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/mikeb26/swisspair/internal"
	"github.com/mikeb26/swisspair/swiss"
)

// ImportCrossTableHTML parses a round-by-round cross-table export: an
// HTML table with id "crosstable" and columns Round, Seq1, Seq2 (Seq2
// blank means a bye), P1Wins, P2Wins, Draws, Table, Completed. Seq1/Seq2
// are registration sequence numbers, resolved against regs, matching
// the way legacy club software refers to players by entry number rather
// than an opaque ID. Completed is parsed with whatever date format the
// export happens to use, via the same best-effort date parser the
// teacher relies on for its own legacy exports.
func ImportCrossTableHTML(r io.Reader, regs []swiss.Registration) ([]swiss.Match, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("importer: parse cross-table html: %w", err)
	}

	table := doc.Find("table#crosstable")
	if table.Length() == 0 {
		return nil, fmt.Errorf("importer: no table#crosstable found in cross-table export")
	}

	bySeq := make(map[int]uuid.UUID, len(regs))
	for _, r := range regs {
		bySeq[r.SequenceID] = r.PlayerID
	}

	cols := headerIndex(table)
	var matches []swiss.Match
	var rowErr error
	table.Find("tbody tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		m, err := parseCrossTableRow(row, cols, bySeq)
		if err != nil {
			rowErr = err
			return false
		}
		matches = append(matches, m)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return matches, nil
}

func parseCrossTableRow(row *goquery.Selection, cols map[string]int, bySeq map[int]uuid.UUID) (swiss.Match, error) {
	cells := row.Find("td")

	roundIdx, ok := cols["round"]
	if !ok {
		return swiss.Match{}, fmt.Errorf("importer: cross-table missing a Round column")
	}
	seq1Idx, ok := cols["seq1"]
	if !ok {
		return swiss.Match{}, fmt.Errorf("importer: cross-table missing a Seq1 column")
	}

	round, err := strconv.Atoi(cellText(cells, roundIdx))
	if err != nil {
		return swiss.Match{}, fmt.Errorf("importer: row has non-numeric Round: %w", err)
	}

	seq1, err := strconv.Atoi(cellText(cells, seq1Idx))
	if err != nil {
		return swiss.Match{}, fmt.Errorf("importer: row has non-numeric Seq1: %w", err)
	}
	player1, ok := bySeq[seq1]
	if !ok {
		return swiss.Match{}, fmt.Errorf("importer: Seq1 %d has no matching registration", seq1)
	}

	m := swiss.Match{
		MatchID:     uuid.New(),
		RoundNumber: round,
		Player1ID:   player1,
	}

	if idx, ok := cols["seq2"]; ok {
		seq2Text := cellText(cells, idx)
		if seq2Text != "" {
			seq2, err := strconv.Atoi(seq2Text)
			if err != nil {
				return swiss.Match{}, fmt.Errorf("importer: row has non-numeric Seq2: %w", err)
			}
			player2, ok := bySeq[seq2]
			if !ok {
				return swiss.Match{}, fmt.Errorf("importer: Seq2 %d has no matching registration", seq2)
			}
			m.Player2ID = &player2
		}
	}

	if idx, ok := cols["p1wins"]; ok {
		m.Player1GameWins, _ = strconv.Atoi(cellText(cells, idx))
	}
	if idx, ok := cols["p2wins"]; ok {
		m.Player2GameWins, _ = strconv.Atoi(cellText(cells, idx))
	}
	if idx, ok := cols["draws"]; ok {
		m.Draws, _ = strconv.Atoi(cellText(cells, idx))
	}
	if idx, ok := cols["table"]; ok {
		if v, err := strconv.Atoi(cellText(cells, idx)); err == nil {
			m.TableNumber = &v
		}
	}
	if idx, ok := cols["completed"]; ok {
		text := strings.TrimSpace(cellText(cells, idx))
		t, err := internal.ParseDateOrZero(text)
		if err != nil {
			return swiss.Match{}, fmt.Errorf("importer: row has unparseable Completed value %q: %w", text, err)
		}
		if !t.IsZero() {
			m.EndTime = &t
		}
	}

	return m, nil
}
