package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/maxviazov/matchday/internal/app"
	"github.com/maxviazov/matchday/internal/config"
	"github.com/maxviazov/matchday/internal/logger"
	"github.com/maxviazov/matchday/internal/model"
)

const usage = `usage: matchday [-config file] <command> [arg]

commands:
  players          list players with career stats
  player <id>      show one player and their games
  search <name>    search players by name
  games            list games, most recent first
  game <id>        show one game with score and rosters
  stadiums         list stadiums
`

func main() {
	configPath := flag.String("config", "", "path to config.yaml (defaults + APP_* env when empty)")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	// Load application config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := app.New(cfg, appLogger)
	appLogger.Debug().Str("base_url", a.Client.BaseURL()).Msg("client ready")

	if err := run(ctx, a, flag.Args(), os.Stdout); err != nil {
		appLogger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command\n%s", usage)
	}
	arg := strings.TrimSpace(strings.Join(args[1:], " "))
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch args[0] {
	case "players":
		players, err := a.Players.FetchPlayers(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tNAME\tGP\tG\tA\tW\tG/GP")
		for _, p := range players {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%.2f\n", p.ID, displayName(p.Name, p.Nickname), p.GamesPlayed, p.TotalGoals, p.TotalAssists, p.Wins, p.GoalsPerGame)
		}
	case "player":
		p, err := a.Players.FetchPlayer(ctx, arg)
		if err != nil {
			return err
		}
		games, err := a.Players.FetchPlayerGames(ctx, arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\tgames %d\tgoals %d\tassists %d\twins %d\n", displayName(p.Name, p.Nickname), p.GamesPlayed, p.TotalGoals, p.TotalAssists, p.Wins)
		for _, g := range games {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%dG %dA\n", a.Zone.FormatDate(g.Date.Time), g.Stadium, g.Team, g.Score, g.Result, g.Goals, g.Assists)
		}
	case "search":
		for _, p := range a.Players.SearchPlayers(ctx, arg) {
			fmt.Fprintf(w, "%s\t%s\n", p.ID, displayName(p.Name, p.Nickname))
		}
		if msg := a.Players.Status().Err; msg != "" {
			return fmt.Errorf("%s", msg)
		}
	case "games":
		games, err := a.Games.FetchGames(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tWHEN\tSTATUS")
		for _, g := range games {
			fmt.Fprintf(w, "%s\t%s\t%s\n", g.ID, a.Zone.FormatDateTime(g.Date.Time), g.Status)
		}
	case "game":
		return printGame(ctx, a, arg, w)
	case "stadiums":
		stadiums, err := a.Stadiums.FetchStadiums(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tNAME\tADDRESS")
		for _, s := range stadiums {
			addr := ""
			if s.Address != nil {
				addr = *s.Address
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.Name, addr)
		}
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
	return nil
}

func printGame(ctx context.Context, a *app.App, id string, w io.Writer) error {
	g, err := a.Games.FetchGame(ctx, id)
	if err != nil {
		return err
	}
	stadium := "-"
	if g.Stadium != nil {
		stadium = g.Stadium.Name
	}
	fmt.Fprintf(w, "%s\t%s\t%s\n", a.Zone.FormatDateTime(g.Date.Time), stadium, g.Status)
	fmt.Fprintf(w, "%s\t%d - %d\t%s\n", teamName(g.HomeTeam), g.Score.HomeTeam, g.Score.AwayTeam, teamName(g.AwayTeam))
	for _, gl := range g.Goals {
		when := ""
		if gl.Minute != nil {
			when = a.Zone.FormatTime(gl.Minute.Time)
		}
		line := fmt.Sprintf("%s\t%s", when, gl.Scorer.Name)
		if gl.Assister != nil {
			line += " (" + gl.Assister.Name + ")"
		}
		side := teamName(g.HomeTeam)
		if gl.TeamID == g.AwayTeam.ID {
			side = teamName(g.AwayTeam)
		}
		fmt.Fprintf(w, "%s\t%s\n", line, side)
	}
	return nil
}

func displayName(name string, nickname *string) string {
	if nickname != nil && *nickname != "" {
		return fmt.Sprintf("%s (%s)", name, *nickname)
	}
	return name
}

func teamName(t model.GameTeam) string {
	if t.Name != nil && *t.Name != "" {
		return *t.Name
	}
	return t.ID
}
