// Package config implements the read-only configuration store for the
// cartridge pipeline: per-game configurations loaded from JSON, the built-in
// board layout definitions, and the board label lookup table.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// Game is the static configuration of one cataloged game.
type Game struct {
	Name     string   `json:"name"`
	Platform string   `json:"platform"`
	Layouts  []string `json:"layouts"`
}

// Store holds the game configurations for one run. It is read-only after Load
// and safe to share across concurrent readers.
type Store struct {
	games map[string]Game
}

// Load reads game configurations from a JSON file keyed by game identifier.
func Load(path string) (*Store, error) {
	slog.Debug("Loading game configurations", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}

	var games map[string]Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("failed to parse game config file %s: %w", path, err)
	}

	for id, game := range games {
		if game.Name == "" {
			return nil, fmt.Errorf("game config %q has no name", id)
		}
		for _, layout := range game.Layouts {
			if _, ok := layouts[layout]; !ok {
				return nil, fmt.Errorf("game config %q references unknown layout %q", id, layout)
			}
		}
	}

	slog.Debug("Game configurations loaded", "games", len(games))

	return &Store{games: games}, nil
}

// NewStore builds a store from an in-memory game map. Used by tests and tools
// that synthesize configurations instead of reading them from disk.
func NewStore(games map[string]Game) *Store {
	return &Store{games: games}
}

// Game returns the configuration for the given game identifier.
func (s *Store) Game(id string) (Game, bool) {
	game, ok := s.games[id]
	return game, ok
}

// Layout returns the layout definition for the given layout identifier.
func (s *Store) Layout(id string) (Layout, bool) {
	layout, ok := layouts[id]
	return layout, ok
}

// Len returns the number of configured games.
func (s *Store) Len() int {
	return len(s.games)
}
