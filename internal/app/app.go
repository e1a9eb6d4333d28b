// Package app wires configuration into a resource client, the entity stores and
// the display zone. Each App owns its stores; nothing here is global.
package app

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/matchday/internal/api"
	"github.com/maxviazov/matchday/internal/config"
	"github.com/maxviazov/matchday/internal/localtime"
	"github.com/maxviazov/matchday/internal/store"
)

type App struct {
	Client   *api.Client
	Players  *store.PlayerStore
	Games    *store.GameStore
	Stadiums *store.StadiumStore
	Zone     *localtime.Zone
}

func New(cfg *config.Config, logger zerolog.Logger) *App {
	client := api.New(api.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		UserAgent: cfg.API.UserAgent,
	}, logger)

	offset := localtime.FixedOffset(time.Duration(cfg.Time.OffsetMinutes) * time.Minute)

	return &App{
		Client:   client,
		Players:  store.NewPlayerStore(client.Players(), logger, store.WithPage(api.Page{Limit: cfg.Paging.Players})),
		Games:    store.NewGameStore(client.Games(), logger, store.WithPage(api.Page{Limit: cfg.Paging.Games})),
		Stadiums: store.NewStadiumStore(client.Stadiums(), logger, store.WithPage(api.Page{Limit: cfg.Paging.Stadiums})),
		Zone:     localtime.New(offset, nil),
	}
}
