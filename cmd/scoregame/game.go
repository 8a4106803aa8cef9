package main

import (
	"fmt"

	"github.com/funvibe/funact/pkg/action"
)

// Game watches every player's score and fires LeaderChanged when the lead
// moves to another player. Ties keep the current leader.
type Game struct {
	Players []*Player
	Leader  *Player

	LeaderChanged *action.Action
}

// NewGame subscribes to all players. The first player starts as leader.
func NewGame(players []*Player, policy action.Enforcement) (*Game, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("game needs at least one player")
	}
	g := &Game{
		Players:       players,
		Leader:        players[0],
		LeaderChanged: action.NewWithPolicy(policy, action.Of[*Player]()),
	}
	for _, p := range players {
		if err := p.ScoreUpdated.Connect(g.onPlayerScoreChanged); err != nil {
			return nil, fmt.Errorf("subscribe to %s: %w", p.Name, err)
		}
	}
	return g, nil
}

func (g *Game) onPlayerScoreChanged(p *Player, score int) error {
	if p.Score > g.Leader.Score {
		g.Leader = p
		return g.LeaderChanged.Invoke(p)
	}
	return nil
}
