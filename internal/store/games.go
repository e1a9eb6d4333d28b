package store

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/maxviazov/matchday/internal/api"
	"github.com/maxviazov/matchday/internal/model"
)

// GamesAPI is the slice of the resource client the game store needs.
type GamesAPI interface {
	Create(ctx context.Context, in model.GameCreate) (model.GameSummary, error)
	GetByID(ctx context.Context, id string) (model.Game, error)
	List(ctx context.Context, page api.Page) ([]model.GameSummary, error)
	Delete(ctx context.Context, id string) error
	AddPlayer(ctx context.Context, gameID string, in model.AddPlayerToGame) error
	RecordGoal(ctx context.Context, gameID string, in model.GoalCreate) error
	Start(ctx context.Context, id string) (model.Game, error)
	End(ctx context.Context, id string) (model.Game, error)
	Score(ctx context.Context, id string) (model.GameScore, error)
	Players(ctx context.Context, id string) (model.GamePlayers, error)
}

var _ GamesAPI = (*api.Games)(nil)

func summaryID(g model.GameSummary) string { return g.ID }

// GameStore caches the game list (most recent first) and the views of the game
// being followed: detail, score and rosters. Nested state such as goals is never
// patched locally; the authoritative views are re-fetched instead.
type GameStore struct {
	base
	client         GamesAPI
	games          []model.GameSummary
	current        *model.Game
	currentScore   *model.GameScore
	currentPlayers *model.GamePlayers
}

func NewGameStore(client GamesAPI, logger zerolog.Logger, opts ...Option) *GameStore {
	return &GameStore{base: newBase(logger, "games", opts), client: client}
}

func (s *GameStore) Games() []model.GameSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.games)
}

func (s *GameStore) CurrentGame() (model.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ptrCopy(s.current)
}

func (s *GameStore) CurrentGameScore() (model.GameScore, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ptrCopy(s.currentScore)
}

func (s *GameStore) CurrentGamePlayers() (model.GamePlayers, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ptrCopy(s.currentPlayers)
}

func (s *GameStore) FetchGames(ctx context.Context) ([]model.GameSummary, error) {
	s.begin()
	defer s.end()

	list, err := s.client.List(ctx, s.page)
	if err != nil {
		return nil, s.fail(opFetchGames, err, "")
	}
	list = snapshot(list)

	s.mu.Lock()
	s.games = list
	s.mu.Unlock()
	return snapshot(list), nil
}

func (s *GameStore) FetchGame(ctx context.Context, id string) (model.Game, error) {
	s.begin()
	defer s.end()

	g, err := s.client.GetByID(ctx, id)
	if err != nil {
		return model.Game{}, s.fail(opFetchGame, err, id)
	}

	s.mu.Lock()
	s.current = &g
	s.mu.Unlock()
	return g, nil
}

func (s *GameStore) FetchGameScore(ctx context.Context, id string) (model.GameScore, error) {
	s.begin()
	defer s.end()

	sc, err := s.client.Score(ctx, id)
	if err != nil {
		return model.GameScore{}, s.fail(opFetchGameScore, err, id)
	}

	s.mu.Lock()
	s.currentScore = &sc
	s.mu.Unlock()
	return sc, nil
}

func (s *GameStore) FetchGamePlayers(ctx context.Context, id string) (model.GamePlayers, error) {
	s.begin()
	defer s.end()

	gp, err := s.client.Players(ctx, id)
	if err != nil {
		return model.GamePlayers{}, s.fail(opFetchGamePlayers, err, id)
	}

	s.mu.Lock()
	s.currentPlayers = &gp
	s.mu.Unlock()
	return gp, nil
}

func (s *GameStore) CreateGame(ctx context.Context, in model.GameCreate) (model.GameSummary, error) {
	s.begin()
	defer s.end()

	g, err := s.client.Create(ctx, in)
	if err != nil {
		return model.GameSummary{}, s.fail(opCreateGame, err, "")
	}

	s.mu.Lock()
	s.games = upsert(s.games, g, summaryID, true)
	s.mu.Unlock()
	return g, nil
}

// AddPlayerToGame adds the player and then re-fetches the rosters. A failed
// refresh fails the whole operation.
func (s *GameStore) AddPlayerToGame(ctx context.Context, gameID string, in model.AddPlayerToGame) error {
	s.begin()
	defer s.end()

	if err := s.client.AddPlayer(ctx, gameID, in); err != nil {
		return s.fail(opAddPlayerToGame, err, gameID)
	}
	gp, err := s.client.Players(ctx, gameID)
	if err != nil {
		return s.fail(opAddPlayerToGame, err, gameID)
	}

	s.mu.Lock()
	s.currentPlayers = &gp
	s.mu.Unlock()
	return nil
}

// RecordGoal records the goal, then refreshes score, rosters and detail
// concurrently. The three cached views are replaced together, and only when
// every refresh succeeded.
func (s *GameStore) RecordGoal(ctx context.Context, gameID string, in model.GoalCreate) error {
	s.begin()
	defer s.end()

	if err := s.client.RecordGoal(ctx, gameID, in); err != nil {
		return s.fail(opRecordGoal, err, gameID)
	}

	var (
		score   model.GameScore
		players model.GamePlayers
		game    model.Game
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		score, err = s.client.Score(gctx, gameID)
		return err
	})
	g.Go(func() (err error) {
		players, err = s.client.Players(gctx, gameID)
		return err
	})
	g.Go(func() (err error) {
		game, err = s.client.GetByID(gctx, gameID)
		return err
	})
	if err := g.Wait(); err != nil {
		return s.fail(opRecordGoal, err, gameID)
	}

	s.mu.Lock()
	s.currentScore = &score
	s.currentPlayers = &players
	s.current = &game
	s.mu.Unlock()
	return nil
}

func (s *GameStore) DeleteGame(ctx context.Context, id string) error {
	s.begin()
	defer s.end()

	if err := s.client.Delete(ctx, id); err != nil {
		return s.fail(opDeleteGame, err, id)
	}

	s.mu.Lock()
	s.games = remove(s.games, id, summaryID)
	s.mu.Unlock()
	return nil
}

func (s *GameStore) StartGame(ctx context.Context, id string) (model.Game, error) {
	return s.transition(ctx, id, opStartGame, s.client.Start)
}

func (s *GameStore) EndGame(ctx context.Context, id string) (model.Game, error) {
	return s.transition(ctx, id, opEndGame, s.client.End)
}

// transition applies a lifecycle change and reconciles the list row and the
// current game, skipping whichever does not hold id.
func (s *GameStore) transition(ctx context.Context, id string, o op, call func(context.Context, string) (model.Game, error)) (model.Game, error) {
	s.begin()
	defer s.end()

	g, err := call(ctx, id)
	if err != nil {
		return model.Game{}, s.fail(o, err, id)
	}

	s.mu.Lock()
	s.games, _ = replace(s.games, g.Summary(), summaryID)
	if s.current != nil && s.current.ID == id {
		cur := g
		s.current = &cur
	}
	s.mu.Unlock()
	return g, nil
}
