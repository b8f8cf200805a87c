/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package importer parses the HTML table exports legacy tournament
// software produces — a registration roster and a round-by-round
// cross-table — into the swiss package's data model, so a tournament
// already in progress on older software can be picked up without
// hand-entering every player and result.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/mikeb26/swisspair/swiss"
)

// ImportRosterHTML parses a roster export: an HTML table with id
// "members" and header columns Seq, PlayerID, Status, and optionally
// DropRound/EntryRound, into registrations. Column order is irrelevant;
// columns are located by header text, matching the teacher's own
// members-table parsing in its registration importer.
func ImportRosterHTML(r io.Reader) ([]swiss.Registration, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("importer: parse roster html: %w", err)
	}

	table := doc.Find("table#members")
	if table.Length() == 0 {
		return nil, fmt.Errorf("importer: no table#members found in roster export")
	}

	cols := headerIndex(table)
	var regs []swiss.Registration
	var rowErr error
	table.Find("tbody tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		reg, err := parseRosterRow(row, cols)
		if err != nil {
			rowErr = err
			return false
		}
		regs = append(regs, reg)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return regs, nil
}

func headerIndex(table *goquery.Selection) map[string]int {
	cols := make(map[string]int)
	table.Find("thead th").Each(func(i int, th *goquery.Selection) {
		cols[strings.ToLower(strings.TrimSpace(th.Text()))] = i
	})
	return cols
}

func parseRosterRow(row *goquery.Selection, cols map[string]int) (swiss.Registration, error) {
	cells := row.Find("td")

	seqIdx, ok := cols["seq"]
	if !ok {
		return swiss.Registration{}, fmt.Errorf("importer: roster table missing a Seq column")
	}
	idIdx, ok := cols["playerid"]
	if !ok {
		return swiss.Registration{}, fmt.Errorf("importer: roster table missing a PlayerID column")
	}

	seqText := cellText(cells, seqIdx)
	seq, err := strconv.Atoi(seqText)
	if err != nil {
		return swiss.Registration{}, fmt.Errorf("importer: row has non-numeric Seq %q: %w", seqText, err)
	}

	idText := cellText(cells, idIdx)
	playerID, err := uuid.Parse(idText)
	if err != nil {
		return swiss.Registration{}, fmt.Errorf("importer: row has invalid PlayerID %q: %w", idText, err)
	}

	reg := swiss.Registration{
		RegistrationID: uuid.New(),
		PlayerID:       playerID,
		SequenceID:     seq,
		Status:         swiss.StatusActive,
	}

	if idx, ok := cols["status"]; ok {
		switch strings.ToLower(strings.TrimSpace(cellText(cells, idx))) {
		case "dropped":
			reg.Status = swiss.StatusDropped
		case "late_entry", "late entry":
			reg.Status = swiss.StatusLateEntry
		}
	}

	if idx, ok := cols["dropround"]; ok {
		if v, err := strconv.Atoi(cellText(cells, idx)); err == nil {
			reg.DropRound = &v
		}
	}
	if idx, ok := cols["entryround"]; ok {
		if v, err := strconv.Atoi(cellText(cells, idx)); err == nil {
			reg.EntryRound = &v
		}
	}

	return reg, nil
}

func cellText(cells *goquery.Selection, idx int) string {
	if idx >= cells.Length() {
		return ""
	}
	return strings.TrimSpace(cells.Eq(idx).Text())
}
