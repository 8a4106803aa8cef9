package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the declarative script the demo runs: the roster, the scoring
// events in order, and the enforcement level for every action involved.
type Scenario struct {
	// Enforcement is the level name (NONE, WARNING or ERROR). Empty selects
	// ERROR.
	Enforcement string `yaml:"enforcement"`
	// Players is the roster, in join order. The first player starts as
	// leader.
	Players []string `yaml:"players"`
	// Events are applied in order.
	Events []ScoreEvent `yaml:"events"`
}

// ScoreEvent awards points to one player.
type ScoreEvent struct {
	Player string `yaml:"player"`
	Points int    `yaml:"points"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks the roster and that every event refers to a known player.
func (s *Scenario) Validate() error {
	if len(s.Players) == 0 {
		return fmt.Errorf("needs at least one player")
	}
	seen := make(map[string]bool, len(s.Players))
	for _, name := range s.Players {
		if name == "" {
			return fmt.Errorf("player names must not be empty")
		}
		if seen[name] {
			return fmt.Errorf("duplicate player %q", name)
		}
		seen[name] = true
	}
	for i, ev := range s.Events {
		if !seen[ev.Player] {
			return fmt.Errorf("event %d refers to unknown player %q", i, ev.Player)
		}
	}
	return nil
}

// DefaultScenario is the built-in script used when no file is given.
func DefaultScenario() *Scenario {
	return &Scenario{
		Players: []string{"Player 1", "Player 2", "Player 3", "Player 4"},
		Events: []ScoreEvent{
			{Player: "Player 2", Points: 10},
			{Player: "Player 3", Points: 11},
			{Player: "Player 2", Points: 5},
			{Player: "Player 1", Points: 1},
			{Player: "Player 1", Points: 5},
			{Player: "Player 1", Points: 20},
			{Player: "Player 4", Points: 30},
			{Player: "Player 1", Points: 100},
		},
	}
}
