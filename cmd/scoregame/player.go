package main

import (
	"github.com/google/uuid"

	"github.com/funvibe/funact/pkg/action"
)

// Player is a participant with a score. Every score change fires
// ScoreUpdated with (player, new score).
type Player struct {
	ID    uuid.UUID
	Name  string
	Score int

	ScoreUpdated *action.Action
}

// NewPlayer creates a player whose ScoreUpdated action runs under the given
// enforcement level.
func NewPlayer(name string, policy action.Enforcement) *Player {
	return &Player{
		ID:           uuid.New(),
		Name:         name,
		ScoreUpdated: action.NewWithPolicy(policy, action.Of[*Player](), action.Of[int]()),
	}
}

// AddPoints raises the score and fires ScoreUpdated. A handler failure
// surfaces here.
func (p *Player) AddPoints(points int) error {
	p.Score += points
	return p.ScoreUpdated.Invoke(p, p.Score)
}
