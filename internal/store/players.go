package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/maxviazov/matchday/internal/api"
	"github.com/maxviazov/matchday/internal/model"
)

// PlayersAPI is the slice of the resource client the player store needs.
type PlayersAPI interface {
	Create(ctx context.Context, in model.PlayerCreate) (model.Player, error)
	GetByID(ctx context.Context, id string) (model.PlayerStats, error)
	List(ctx context.Context, page api.Page) ([]model.PlayerStats, error)
	Update(ctx context.Context, id string, in model.PlayerUpdate) (model.PlayerStats, error)
	Delete(ctx context.Context, id string) error
	Games(ctx context.Context, id string) ([]model.PlayerGame, error)
	Stats(ctx context.Context, id string) (model.PlayerStats, error)
	SearchByName(ctx context.Context, name string) ([]model.Player, error)
}

var _ PlayersAPI = (*api.Players)(nil)

func playerID(p model.PlayerStats) string { return p.ID }

// PlayerStore caches the player list, the player being viewed and that player's
// game history. New players are appended.
type PlayerStore struct {
	base
	client       PlayersAPI
	players      []model.PlayerStats
	current      *model.PlayerStats
	currentGames []model.PlayerGame
}

func NewPlayerStore(client PlayersAPI, logger zerolog.Logger, opts ...Option) *PlayerStore {
	return &PlayerStore{base: newBase(logger, "players", opts), client: client}
}

func (s *PlayerStore) Players() []model.PlayerStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.players)
}

func (s *PlayerStore) CurrentPlayer() (model.PlayerStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ptrCopy(s.current)
}

func (s *PlayerStore) CurrentPlayerGames() []model.PlayerGame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.currentGames)
}

func (s *PlayerStore) FetchPlayers(ctx context.Context) ([]model.PlayerStats, error) {
	s.begin()
	defer s.end()

	list, err := s.client.List(ctx, s.page)
	if err != nil {
		return nil, s.fail(opFetchPlayers, err, "")
	}
	list = snapshot(list)

	s.mu.Lock()
	s.players = list
	s.mu.Unlock()
	return snapshot(list), nil
}

func (s *PlayerStore) FetchPlayer(ctx context.Context, id string) (model.PlayerStats, error) {
	s.begin()
	defer s.end()

	p, err := s.client.GetByID(ctx, id)
	if err != nil {
		return model.PlayerStats{}, s.fail(opFetchPlayer, err, id)
	}

	s.mu.Lock()
	s.current = &p
	s.mu.Unlock()
	return p, nil
}

func (s *PlayerStore) FetchPlayerGames(ctx context.Context, id string) ([]model.PlayerGame, error) {
	s.begin()
	defer s.end()

	games, err := s.client.Games(ctx, id)
	if err != nil {
		return nil, s.fail(opFetchPlayerGames, err, id)
	}
	games = snapshot(games)

	s.mu.Lock()
	s.currentGames = games
	s.mu.Unlock()
	return snapshot(games), nil
}

// FetchPlayerStats refreshes one player's aggregates wherever that player is cached.
func (s *PlayerStore) FetchPlayerStats(ctx context.Context, id string) (model.PlayerStats, error) {
	s.begin()
	defer s.end()

	st, err := s.client.Stats(ctx, id)
	if err != nil {
		return model.PlayerStats{}, s.fail(opFetchPlayerStats, err, id)
	}

	s.mu.Lock()
	s.players, _ = replace(s.players, st, playerID)
	if s.current != nil && s.current.ID == st.ID {
		s.current = &st
	}
	s.mu.Unlock()
	return st, nil
}

func (s *PlayerStore) CreatePlayer(ctx context.Context, in model.PlayerCreate) (model.Player, error) {
	s.begin()
	defer s.end()

	p, err := s.client.Create(ctx, in)
	if err != nil {
		return model.Player{}, s.fail(opCreatePlayer, err, "")
	}

	s.mu.Lock()
	s.players = upsert(s.players, model.StatsFromPlayer(p), playerID, false)
	s.mu.Unlock()
	return p, nil
}

// UpdatePlayer replaces the list entry and the current player when they carry id.
// A player that is not cached is simply not touched.
func (s *PlayerStore) UpdatePlayer(ctx context.Context, id string, in model.PlayerUpdate) (model.PlayerStats, error) {
	s.begin()
	defer s.end()

	p, err := s.client.Update(ctx, id, in)
	if err != nil {
		return model.PlayerStats{}, s.fail(opUpdatePlayer, err, id)
	}

	s.mu.Lock()
	s.players, _ = replace(s.players, p, playerID)
	if s.current != nil && s.current.ID == id {
		cur := p
		s.current = &cur
	}
	s.mu.Unlock()
	return p, nil
}

func (s *PlayerStore) DeletePlayer(ctx context.Context, id string) error {
	s.begin()
	defer s.end()

	if err := s.client.Delete(ctx, id); err != nil {
		return s.fail(opDeletePlayer, err, id)
	}

	s.mu.Lock()
	s.players = remove(s.players, id, playerID)
	s.mu.Unlock()
	return nil
}

// SearchPlayers never touches the cache. On failure it records the error and
// degrades to an empty result.
func (s *PlayerStore) SearchPlayers(ctx context.Context, name string) []model.Player {
	s.begin()
	defer s.end()

	found, err := s.client.SearchByName(ctx, name)
	if err != nil {
		s.fail(opSearchPlayers, err, "")
		return []model.Player{}
	}
	return snapshot(found)
}
