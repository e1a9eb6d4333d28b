package api

import (
	"context"
	"net/http"

	"github.com/maxviazov/matchday/internal/model"
)

const gamesPath = "/games"

// Games maps game operations onto /games endpoints.
type Games struct{ c *Client }

func (g *Games) Create(ctx context.Context, in model.GameCreate) (model.GameSummary, error) {
	if err := g.c.validatePayload(in); err != nil {
		return model.GameSummary{}, err
	}
	var out model.GameSummary
	if err := g.c.do(ctx, http.MethodPost, gamesPath, nil, in, &out); err != nil {
		return model.GameSummary{}, err
	}
	return out, nil
}

// GetByID returns the detailed game with nested teams and goals.
func (g *Games) GetByID(ctx context.Context, id string) (model.Game, error) {
	if err := NewInvalidInputError(idError("id", id)); err != nil {
		return model.Game{}, err
	}
	var out model.Game
	if err := g.c.do(ctx, http.MethodGet, resourcePath(gamesPath, id), nil, nil, &out); err != nil {
		return model.Game{}, err
	}
	return out, nil
}

func (g *Games) List(ctx context.Context, page Page) ([]model.GameSummary, error) {
	pg, err := page.normalize(DefaultGamesLimit)
	if err != nil {
		return nil, err
	}
	var out []model.GameSummary
	if err := g.c.do(ctx, http.MethodGet, gamesPath, pg.query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Games) Delete(ctx context.Context, id string) error {
	if err := NewInvalidInputError(idError("id", id)); err != nil {
		return err
	}
	return g.c.do(ctx, http.MethodDelete, resourcePath(gamesPath, id), nil, nil, nil)
}

func (g *Games) AddPlayer(ctx context.Context, gameID string, in model.AddPlayerToGame) error {
	if err := g.c.validatePayload(in, idError("game_id", gameID)...); err != nil {
		return err
	}
	return g.c.do(ctx, http.MethodPost, resourcePath(gamesPath, gameID, "players"), nil, in, nil)
}

func (g *Games) RecordGoal(ctx context.Context, gameID string, in model.GoalCreate) error {
	if err := g.c.validatePayload(in, idError("game_id", gameID)...); err != nil {
		return err
	}
	return g.c.do(ctx, http.MethodPost, resourcePath(gamesPath, gameID, "goals"), nil, in, nil)
}

func (g *Games) Start(ctx context.Context, id string) (model.Game, error) {
	return g.transition(ctx, id, "start")
}

func (g *Games) End(ctx context.Context, id string) (model.Game, error) {
	return g.transition(ctx, id, "end")
}

func (g *Games) transition(ctx context.Context, id, action string) (model.Game, error) {
	if err := NewInvalidInputError(idError("id", id)); err != nil {
		return model.Game{}, err
	}
	var out model.Game
	if err := g.c.do(ctx, http.MethodPut, resourcePath(gamesPath, id, action), nil, nil, &out); err != nil {
		return model.Game{}, err
	}
	return out, nil
}

func (g *Games) Score(ctx context.Context, id string) (model.GameScore, error) {
	if err := NewInvalidInputError(idError("id", id)); err != nil {
		return model.GameScore{}, err
	}
	var out model.GameScore
	if err := g.c.do(ctx, http.MethodGet, resourcePath(gamesPath, id, "score"), nil, nil, &out); err != nil {
		return model.GameScore{}, err
	}
	return out, nil
}

// Players returns both rosters with per-game goals and assists.
func (g *Games) Players(ctx context.Context, id string) (model.GamePlayers, error) {
	if err := NewInvalidInputError(idError("id", id)); err != nil {
		return model.GamePlayers{}, err
	}
	var out model.GamePlayers
	if err := g.c.do(ctx, http.MethodGet, resourcePath(gamesPath, id, "players"), nil, nil, &out); err != nil {
		return model.GamePlayers{}, err
	}
	return out, nil
}
