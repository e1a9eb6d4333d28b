package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/maxviazov/matchday/internal/api"
	"github.com/maxviazov/matchday/internal/model"
)

// StadiumsAPI is the slice of the resource client the stadium store needs.
type StadiumsAPI interface {
	Create(ctx context.Context, in model.StadiumCreate) (model.Stadium, error)
	GetByID(ctx context.Context, id string) (model.Stadium, error)
	List(ctx context.Context, page api.Page) ([]model.Stadium, error)
	Update(ctx context.Context, id string, in model.StadiumUpdate) (model.Stadium, error)
	Delete(ctx context.Context, id string) error
	Games(ctx context.Context, id string) (model.StadiumGames, error)
}

var _ StadiumsAPI = (*api.Stadiums)(nil)

func stadiumID(s model.Stadium) string { return s.ID }

// StadiumStore caches stadiums in creation order plus the one being viewed.
type StadiumStore struct {
	base
	client       StadiumsAPI
	stadiums     []model.Stadium
	current      *model.Stadium
	currentGames *model.StadiumGames
}

func NewStadiumStore(client StadiumsAPI, logger zerolog.Logger, opts ...Option) *StadiumStore {
	return &StadiumStore{base: newBase(logger, "stadiums", opts), client: client}
}

func (s *StadiumStore) Stadiums() []model.Stadium {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.stadiums)
}

func (s *StadiumStore) CurrentStadium() (model.Stadium, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ptrCopy(s.current)
}

func (s *StadiumStore) CurrentStadiumGames() (model.StadiumGames, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ptrCopy(s.currentGames)
}

func (s *StadiumStore) FetchStadiums(ctx context.Context) ([]model.Stadium, error) {
	s.begin()
	defer s.end()

	list, err := s.client.List(ctx, s.page)
	if err != nil {
		return nil, s.fail(opFetchStadiums, err, "")
	}
	list = snapshot(list)

	s.mu.Lock()
	s.stadiums = list
	s.mu.Unlock()
	return snapshot(list), nil
}

func (s *StadiumStore) FetchStadium(ctx context.Context, id string) (model.Stadium, error) {
	s.begin()
	defer s.end()

	st, err := s.client.GetByID(ctx, id)
	if err != nil {
		return model.Stadium{}, s.fail(opFetchStadium, err, id)
	}

	s.mu.Lock()
	s.current = &st
	s.mu.Unlock()
	return st, nil
}

func (s *StadiumStore) FetchStadiumGames(ctx context.Context, id string) (model.StadiumGames, error) {
	s.begin()
	defer s.end()

	sg, err := s.client.Games(ctx, id)
	if err != nil {
		return model.StadiumGames{}, s.fail(opFetchStadiumGames, err, id)
	}

	s.mu.Lock()
	s.currentGames = &sg
	s.mu.Unlock()
	return sg, nil
}

func (s *StadiumStore) CreateStadium(ctx context.Context, in model.StadiumCreate) (model.Stadium, error) {
	s.begin()
	defer s.end()

	st, err := s.client.Create(ctx, in)
	if err != nil {
		return model.Stadium{}, s.fail(opCreateStadium, err, "")
	}

	s.mu.Lock()
	s.stadiums = upsert(s.stadiums, st, stadiumID, false)
	s.mu.Unlock()
	return st, nil
}

func (s *StadiumStore) UpdateStadium(ctx context.Context, id string, in model.StadiumUpdate) (model.Stadium, error) {
	s.begin()
	defer s.end()

	st, err := s.client.Update(ctx, id, in)
	if err != nil {
		return model.Stadium{}, s.fail(opUpdateStadium, err, id)
	}

	s.mu.Lock()
	s.stadiums, _ = replace(s.stadiums, st, stadiumID)
	if s.current != nil && s.current.ID == id {
		cur := st
		s.current = &cur
	}
	s.mu.Unlock()
	return st, nil
}

func (s *StadiumStore) DeleteStadium(ctx context.Context, id string) error {
	s.begin()
	defer s.end()

	if err := s.client.Delete(ctx, id); err != nil {
		return s.fail(opDeleteStadium, err, id)
	}

	s.mu.Lock()
	s.stadiums = remove(s.stadiums, id, stadiumID)
	s.mu.Unlock()
	return nil
}
