package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/maxviazov/matchday/internal/model"
)

const playersPath = "/players"

// Players maps player operations onto /players endpoints.
type Players struct{ c *Client }

func (p *Players) Create(ctx context.Context, in model.PlayerCreate) (model.Player, error) {
	if err := p.c.validatePayload(in); err != nil {
		return model.Player{}, err
	}
	var out model.Player
	if err := p.c.do(ctx, http.MethodPost, playersPath, nil, in, &out); err != nil {
		return model.Player{}, err
	}
	return out, nil
}

// GetByID returns the stats-enriched record.
func (p *Players) GetByID(ctx context.Context, id string) (model.PlayerStats, error) {
	if err := NewInvalidInputError(idError("id", id)); err != nil {
		return model.PlayerStats{}, err
	}
	var out model.PlayerStats
	if err := p.c.do(ctx, http.MethodGet, resourcePath(playersPath, id), nil, nil, &out); err != nil {
		return model.PlayerStats{}, err
	}
	return out, nil
}

func (p *Players) List(ctx context.Context, page Page) ([]model.PlayerStats, error) {
	pg, err := page.normalize(DefaultPlayersLimit)
	if err != nil {
		return nil, err
	}
	var out []model.PlayerStats
	if err := p.c.do(ctx, http.MethodGet, playersPath, pg.query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Players) Update(ctx context.Context, id string, in model.PlayerUpdate) (model.PlayerStats, error) {
	if err := p.c.validatePayload(in, idError("id", id)...); err != nil {
		return model.PlayerStats{}, err
	}
	var out model.PlayerStats
	if err := p.c.do(ctx, http.MethodPut, resourcePath(playersPath, id), nil, in, &out); err != nil {
		return model.PlayerStats{}, err
	}
	return out, nil
}

func (p *Players) Delete(ctx context.Context, id string) error {
	if err := NewInvalidInputError(idError("id", id)); err != nil {
		return err
	}
	return p.c.do(ctx, http.MethodDelete, resourcePath(playersPath, id), nil, nil, nil)
}

// Games lists the per-game stat rows of a player.
func (p *Players) Games(ctx context.Context, id string) ([]model.PlayerGame, error) {
	if err := NewInvalidInputError(idError("id", id)); err != nil {
		return nil, err
	}
	var out []model.PlayerGame
	if err := p.c.do(ctx, http.MethodGet, resourcePath(playersPath, id, "games"), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats fetches career aggregates only.
func (p *Players) Stats(ctx context.Context, id string) (model.PlayerStats, error) {
	if err := NewInvalidInputError(idError("id", id)); err != nil {
		return model.PlayerStats{}, err
	}
	var out model.PlayerStats
	if err := p.c.do(ctx, http.MethodGet, resourcePath(playersPath, id, "stats"), nil, nil, &out); err != nil {
		return model.PlayerStats{}, err
	}
	return out, nil
}

// SearchByName does a case-insensitive partial match on the server.
func (p *Players) SearchByName(ctx context.Context, name string) ([]model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewInvalidInputError([]FieldError{{Field: "name", Message: "must not be empty"}})
	}
	var out []model.Player
	if err := p.c.do(ctx, http.MethodGet, playersPath+"/search/by-name", url.Values{"name": {name}}, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
