package api

import (
	"context"
	"net/http"

	"github.com/maxviazov/matchday/internal/model"
)

const stadiumsPath = "/stadiums"

// Stadiums maps stadium operations onto /stadiums endpoints.
type Stadiums struct{ c *Client }

func (s *Stadiums) Create(ctx context.Context, in model.StadiumCreate) (model.Stadium, error) {
	if err := s.c.validatePayload(in); err != nil {
		return model.Stadium{}, err
	}
	var out model.Stadium
	if err := s.c.do(ctx, http.MethodPost, stadiumsPath, nil, in, &out); err != nil {
		return model.Stadium{}, err
	}
	return out, nil
}

func (s *Stadiums) GetByID(ctx context.Context, id string) (model.Stadium, error) {
	if err := NewInvalidInputError(idError("id", id)); err != nil {
		return model.Stadium{}, err
	}
	var out model.Stadium
	if err := s.c.do(ctx, http.MethodGet, resourcePath(stadiumsPath, id), nil, nil, &out); err != nil {
		return model.Stadium{}, err
	}
	return out, nil
}

func (s *Stadiums) List(ctx context.Context, page Page) ([]model.Stadium, error) {
	pg, err := page.normalize(DefaultStadiumsLimit)
	if err != nil {
		return nil, err
	}
	var out []model.Stadium
	if err := s.c.do(ctx, http.MethodGet, stadiumsPath, pg.query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update sends name and address as a JSON body, like player update. Older
// deployments read them from the query string instead.
func (s *Stadiums) Update(ctx context.Context, id string, in model.StadiumUpdate) (model.Stadium, error) {
	if err := s.c.validatePayload(in, idError("id", id)...); err != nil {
		return model.Stadium{}, err
	}
	var out model.Stadium
	if err := s.c.do(ctx, http.MethodPut, resourcePath(stadiumsPath, id), nil, in, &out); err != nil {
		return model.Stadium{}, err
	}
	return out, nil
}

// Delete is rejected by the service while the stadium still has games.
func (s *Stadiums) Delete(ctx context.Context, id string) error {
	if err := NewInvalidInputError(idError("id", id)); err != nil {
		return err
	}
	return s.c.do(ctx, http.MethodDelete, resourcePath(stadiumsPath, id), nil, nil, nil)
}

func (s *Stadiums) Games(ctx context.Context, id string) (model.StadiumGames, error) {
	if err := NewInvalidInputError(idError("id", id)); err != nil {
		return model.StadiumGames{}, err
	}
	var out model.StadiumGames
	if err := s.c.do(ctx, http.MethodGet, resourcePath(stadiumsPath, id, "games"), nil, nil, &out); err != nil {
		return model.StadiumGames{}, err
	}
	return out, nil
}
