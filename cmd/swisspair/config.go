/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mikeb26/swisspair/swiss"
)

// tournamentDef is the YAML-loaded definition of which preset, seed,
// and player count to run the demonstration tournament with.
type tournamentDef struct {
	Preset      string `yaml:"preset"`
	Rounds      int    `yaml:"rounds"`
	Seed        int64  `yaml:"seed"`
	PlayerCount int    `yaml:"player_count"`
}

func loadTournamentDef(path string) (tournamentDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tournamentDef{}, fmt.Errorf("read config %s: %w", path, err)
	}

	def := tournamentDef{Preset: "mtg_standard", Rounds: 3, PlayerCount: 8}
	if err := yaml.Unmarshal(data, &def); err != nil {
		return tournamentDef{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return def, nil
}

func (d tournamentDef) buildConfig() (swiss.SwissConfig, error) {
	switch d.Preset {
	case "mtg_standard", "":
		return swiss.MTGStandard(d.Rounds, d.Seed), nil
	case "pokemon_standard":
		return swiss.PokemonStandard(d.Rounds, d.Seed), nil
	case "chess_style":
		return swiss.ChessStyle(d.Rounds, d.Seed), nil
	case "simple_random":
		return swiss.SimpleRandom(d.Rounds, d.Seed), nil
	default:
		return swiss.SwissConfig{}, fmt.Errorf("unknown preset %q", d.Preset)
	}
}
