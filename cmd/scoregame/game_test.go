package main

import (
	"strings"
	"testing"

	"github.com/funvibe/funact/pkg/action"
)

func TestGameLeaderChanges(t *testing.T) {
	players := []*Player{
		NewPlayer("a", action.Fail),
		NewPlayer("b", action.Fail),
	}
	game, err := NewGame(players, action.Fail)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}

	var leaders []string
	if err := game.LeaderChanged.Connect(func(p *Player) { leaders = append(leaders, p.Name) }); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	steps := []struct {
		player *Player
		points int
	}{
		{players[1], 10}, // b takes the lead
		{players[0], 5},  // no change
		{players[0], 5},  // tie keeps the leader
		{players[0], 20}, // a takes the lead
	}
	for _, s := range steps {
		if err := s.player.AddPoints(s.points); err != nil {
			t.Fatalf("AddPoints() error = %v", err)
		}
	}

	if got := strings.Join(leaders, ","); got != "b,a" {
		t.Errorf("leader sequence = %q, want %q", got, "b,a")
	}
	if game.Leader != players[0] {
		t.Errorf("leader = %s, want a", game.Leader.Name)
	}
}

func TestNewGameNeedsPlayers(t *testing.T) {
	if _, err := NewGame(nil, action.Fail); err == nil {
		t.Errorf("NewGame(nil) should fail")
	}
}

func TestPlayerScoreUpdates(t *testing.T) {
	p := NewPlayer("solo", action.Fail)

	var scores []int
	if err := p.ScoreUpdated.Connect(func(_ *Player, score int) { scores = append(scores, score) }); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	p.AddPoints(3)
	p.AddPoints(4)

	if len(scores) != 2 || scores[0] != 3 || scores[1] != 7 {
		t.Errorf("scores = %v, want [3 7]", scores)
	}
	if p.ID == (NewPlayer("other", action.Fail)).ID {
		t.Errorf("players should get distinct ids")
	}
}
