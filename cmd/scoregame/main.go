package main

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/funvibe/funact/pkg/action"
)

func main() {
	setupLogging()

	if err := newRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("Command execution failed")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		delay       time.Duration
		enforcement string
	)

	cmd := &cobra.Command{
		Use:   "scoregame [scenario.yaml]",
		Short: "Run a scored game over typed actions",
		Long: `scoregame wires players, a leaderboard and a score logger together with
typed actions, then replays a scoring scenario through them.

Without arguments it runs a built-in scenario; pass a YAML file to run your
own roster and events.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       action.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario := DefaultScenario()
			if len(args) == 1 {
				loaded, err := LoadScenario(args[0])
				if err != nil {
					return err
				}
				scenario = loaded
			}
			if enforcement != "" {
				scenario.Enforcement = enforcement
			}

			policy, err := action.ParseEnforcement(scenario.Enforcement)
			if err != nil {
				return err
			}

			log.Info().
				Stringer("enforcement", policy).
				Int("players", len(scenario.Players)).
				Int("events", len(scenario.Events)).
				Msg("Starting game")

			return run(scenario, policy, delay)
		},
	}

	cmd.Flags().DurationVar(&delay, "delay", 0, "pause between scoring events")
	cmd.Flags().StringVar(&enforcement, "enforcement", "", "override the scenario's enforcement level (NONE, WARNING, ERROR)")

	return cmd
}

func run(scenario *Scenario, policy action.Enforcement, delay time.Duration) error {
	players := make([]*Player, len(scenario.Players))
	roster := make(map[string]*Player, len(scenario.Players))
	for i, name := range scenario.Players {
		players[i] = NewPlayer(name, policy)
		roster[name] = players[i]
	}

	if _, err := NewPlayerLogger(players); err != nil {
		return err
	}

	game, err := NewGame(players, policy)
	if err != nil {
		return err
	}
	if err := game.LeaderChanged.Connect(printLeader); err != nil {
		return err
	}

	for _, ev := range scenario.Events {
		if delay > 0 {
			time.Sleep(delay)
		}
		if err := roster[ev.Player].AddPoints(ev.Points); err != nil {
			return err
		}
	}

	log.Info().Str("leader", game.Leader.Name).Int("score", game.Leader.Score).Msg("Game over")
	for _, p := range players {
		log.Info().Str("player", p.Name).Stringer("id", p.ID).Int("score", p.Score).Msg("Final score")
	}
	return nil
}

// PlayerLogger echoes every score update of the players it watches.
type PlayerLogger struct {
	logger zerolog.Logger
}

// NewPlayerLogger subscribes to every player's ScoreUpdated action.
func NewPlayerLogger(players []*Player) (*PlayerLogger, error) {
	pl := &PlayerLogger{logger: log.Logger}
	for _, p := range players {
		if err := p.ScoreUpdated.Connect(pl.OnPlayerScoreUpdated); err != nil {
			return nil, err
		}
	}
	return pl, nil
}

// OnPlayerScoreUpdated handles one player's score change.
func (l *PlayerLogger) OnPlayerScoreUpdated(p *Player, score int) {
	l.logger.Info().Str("player", p.Name).Int("score", score).Msg("Player score updated")
}

func printLeader(p *Player) {
	log.Info().Str("player", p.Name).Int("score", p.Score).Msg("Leader changed")
}

// setupLogging configures zerolog for structured logging. Terminals get the
// console writer, everything else keeps JSON lines.
func setupLogging() {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
