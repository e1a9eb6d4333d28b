package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/matchday/internal/api"
	"github.com/maxviazov/matchday/internal/apitest"
	"github.com/maxviazov/matchday/internal/model"
)

func newClient(t *testing.T) (*apitest.Server, *api.Client) {
	t.Helper()
	srv := apitest.NewT(t)
	return srv, api.New(api.Config{BaseURL: srv.BaseURL()}, zerolog.Nop())
}

func strPtr(s string) *string { return &s }

func TestClient_RoutesOneRequestPerCall(t *testing.T) {
	srv, c := newClient(t)
	ctx := context.Background()
	alice := srv.SeedPlayer("Alice")
	st := srv.SeedStadium("Olympic")
	game := srv.SeedGame(st.ID, time.Date(2025, 10, 19, 14, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		call func() error
		want string
	}{
		{"players list", func() error { _, err := c.Players().List(ctx, api.Page{}); return err }, "GET /api/players"},
		{"player get", func() error { _, err := c.Players().GetByID(ctx, alice.ID); return err }, "GET /api/players/" + alice.ID},
		{"player games", func() error { _, err := c.Players().Games(ctx, alice.ID); return err }, "GET /api/players/" + alice.ID + "/games"},
		{"player stats", func() error { _, err := c.Players().Stats(ctx, alice.ID); return err }, "GET /api/players/" + alice.ID + "/stats"},
		{"player search", func() error { _, err := c.Players().SearchByName(ctx, " ali "); return err }, "GET /api/players/search/by-name"},
		{"player update", func() error {
			_, err := c.Players().Update(ctx, alice.ID, model.PlayerUpdate{Nickname: strPtr("Al")})
			return err
		}, "PUT /api/players/" + alice.ID},
		{"games list", func() error { _, err := c.Games().List(ctx, api.Page{}); return err }, "GET /api/games"},
		{"game get", func() error { _, err := c.Games().GetByID(ctx, game.ID); return err }, "GET /api/games/" + game.ID},
		{"game score", func() error { _, err := c.Games().Score(ctx, game.ID); return err }, "GET /api/games/" + game.ID + "/score"},
		{"game players", func() error { _, err := c.Games().Players(ctx, game.ID); return err }, "GET /api/games/" + game.ID + "/players"},
		{"game add player", func() error {
			return c.Games().AddPlayer(ctx, game.ID, model.AddPlayerToGame{PlayerID: alice.ID, TeamID: game.HomeTeam.ID})
		}, "POST /api/games/" + game.ID + "/players"},
		{"game goal", func() error {
			return c.Games().RecordGoal(ctx, game.ID, model.GoalCreate{ScorerID: alice.ID, TeamID: game.HomeTeam.ID})
		}, "POST /api/games/" + game.ID + "/goals"},
		{"game start", func() error { _, err := c.Games().Start(ctx, game.ID); return err }, "PUT /api/games/" + game.ID + "/start"},
		{"game end", func() error { _, err := c.Games().End(ctx, game.ID); return err }, "PUT /api/games/" + game.ID + "/end"},
		{"stadiums list", func() error { _, err := c.Stadiums().List(ctx, api.Page{}); return err }, "GET /api/stadiums"},
		{"stadium get", func() error { _, err := c.Stadiums().GetByID(ctx, st.ID); return err }, "GET /api/stadiums/" + st.ID},
		{"stadium games", func() error { _, err := c.Stadiums().Games(ctx, st.ID); return err }, "GET /api/stadiums/" + st.ID + "/games"},
		{"stadium update", func() error {
			_, err := c.Stadiums().Update(ctx, st.ID, model.StadiumUpdate{Address: strPtr("Main st 1")})
			return err
		}, "PUT /api/stadiums/" + st.ID},
		{"game delete", func() error { return c.Games().Delete(ctx, game.ID) }, "DELETE /api/games/" + game.ID},
		{"stadium delete", func() error { return c.Stadiums().Delete(ctx, st.ID) }, "DELETE /api/stadiums/" + st.ID},
		{"player delete", func() error { return c.Players().Delete(ctx, alice.ID) }, "DELETE /api/players/" + alice.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(srv.Requests())
			require.NoError(t, tt.call())
			reqs := srv.Requests()
			require.Len(t, reqs, before+1)
			assert.Equal(t, tt.want, reqs[before])
		})
	}
}

func TestClient_CreateReturnsRecords(t *testing.T) {
	srv, c := newClient(t)
	ctx := context.Background()

	p, err := c.Players().Create(ctx, model.PlayerCreate{Name: "Alice", Nickname: strPtr("Ace")})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Ace", *p.Nickname)

	st, err := c.Stadiums().Create(ctx, model.StadiumCreate{Name: "Olympic"})
	require.NoError(t, err)
	assert.Nil(t, st.Address)

	date := time.Date(2025, 10, 19, 14, 0, 0, 0, time.UTC)
	g, err := c.Games().Create(ctx, model.GameCreate{StadiumID: st.ID, Date: date})
	require.NoError(t, err)
	assert.True(t, g.Date.Equal(date))
	assert.Equal(t, st.ID, g.StadiumID)
	assert.Equal(t, model.StatusNotStarted, g.Status)

	assert.Equal(t, []string{"POST /api/players", "POST /api/stadiums", "POST /api/games"}, srv.Requests())
}

func TestClient_ValidationSendsNothing(t *testing.T) {
	srv, c := newClient(t)
	ctx := context.Background()
	same := "p1"

	tests := []struct {
		name   string
		call   func() error
		fields []string
	}{
		{"player without name", func() error {
			_, err := c.Players().Create(ctx, model.PlayerCreate{})
			return err
		}, []string{"name"}},
		{"blank player id", func() error {
			_, err := c.Players().GetByID(ctx, "  ")
			return err
		}, []string{"id"}},
		{"blank search", func() error {
			_, err := c.Players().SearchByName(ctx, "")
			return err
		}, []string{"name"}},
		{"game without stadium and date", func() error {
			_, err := c.Games().Create(ctx, model.GameCreate{})
			return err
		}, []string{"stadium_id", "date"}},
		{"goal assisted by scorer", func() error {
			return c.Games().RecordGoal(ctx, "g1", model.GoalCreate{ScorerID: "p1", TeamID: "t1", AssisterID: &same})
		}, []string{"assister_id"}},
		{"add player without ids", func() error {
			return c.Games().AddPlayer(ctx, "", model.AddPlayerToGame{})
		}, []string{"game_id", "player_id", "team_id"}},
		{"negative page", func() error {
			_, err := c.Games().List(ctx, api.Page{Offset: -1, Limit: -5})
			return err
		}, []string{"skip", "limit"}},
		{"stadium name too long", func() error {
			long := make([]byte, 101)
			for i := range long {
				long[i] = 'x'
			}
			_, err := c.Stadiums().Create(ctx, model.StadiumCreate{Name: string(long)})
			return err
		}, []string{"name"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.ErrorIs(t, err, api.ErrInvalidInput)
			var got []string
			for _, fe := range api.FieldErrors(err) {
				got = append(got, fe.Field)
			}
			assert.ElementsMatch(t, tt.fields, got)
		})
	}
	assert.Empty(t, srv.Requests())
}

func TestClient_RejectedRequest(t *testing.T) {
	srv, c := newClient(t)

	_, err := c.Games().GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrRequestRejected)
	assert.False(t, errors.Is(err, api.ErrTransport))
	assert.Equal(t, http.StatusNotFound, api.StatusCode(err))

	var re *api.RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.MethodGet, re.Method)
	assert.Equal(t, "/games/missing", re.Path)
	assert.Contains(t, re.Body, "not_found")

	p := srv.SeedPlayer("Alice")
	srv.FailNext(http.MethodDelete, "/players/"+p.ID, http.StatusConflict)
	err = c.Players().Delete(context.Background(), p.ID)
	assert.Equal(t, http.StatusConflict, api.StatusCode(err))
	// one-shot
	require.NoError(t, c.Players().Delete(context.Background(), p.ID))
}

func TestClient_TransportFailures(t *testing.T) {
	t.Run("server unreachable", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		dead.Close()
		c := api.New(api.Config{BaseURL: dead.URL}, zerolog.Nop())

		_, err := c.Players().List(context.Background(), api.Page{})
		assert.ErrorIs(t, err, api.ErrTransport)
		assert.Zero(t, api.StatusCode(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		_, c := newClient(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.Stadiums().List(ctx, api.Page{})
		assert.ErrorIs(t, err, api.ErrTransport)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("undecodable body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": 12`))
		}))
		t.Cleanup(srv.Close)
		c := api.New(api.Config{BaseURL: srv.URL}, zerolog.Nop())

		_, err := c.Stadiums().GetByID(context.Background(), "s1")
		assert.ErrorIs(t, err, api.ErrTransport)
	})
}

func TestClient_PageQueryAndHeaders(t *testing.T) {
	var (
		gotQuery string
		gotAgent string
		gotPath  string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotAgent = r.Header.Get("User-Agent")
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)
	c := api.New(api.Config{BaseURL: srv.URL + "/api/", UserAgent: "matchday-test"}, zerolog.Nop())
	ctx := context.Background()

	assert.Equal(t, srv.URL+"/api", c.BaseURL())

	tests := []struct {
		name  string
		call  func() error
		query string
	}{
		{"players default", func() error { _, err := c.Players().List(ctx, api.Page{}); return err }, "limit=50&skip=0"},
		{"games default", func() error { _, err := c.Games().List(ctx, api.Page{}); return err }, "limit=20&skip=0"},
		{"stadiums window", func() error { _, err := c.Stadiums().List(ctx, api.Page{Offset: 10, Limit: 5}); return err }, "limit=5&skip=10"},
		{"search", func() error { _, err := c.Players().SearchByName(ctx, "van dijk"); return err }, "name=van+dijk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call())
			assert.Equal(t, tt.query, gotQuery)
			assert.Equal(t, "matchday-test", gotAgent)
		})
	}

	_, err := c.Players().Games(ctx, "a/b")
	require.NoError(t, err)
	assert.Equal(t, "/api/players/a%2Fb/games", gotPath)
}

func TestClient_EmptyBodyIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)
	c := api.New(api.Config{BaseURL: srv.URL}, zerolog.Nop())

	require.NoError(t, c.Games().Delete(context.Background(), "g1"))
	out, err := c.Games().List(context.Background(), api.Page{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestClient_DecodesZonelessTimestamps(t *testing.T) {
	srv, c := newClient(t)
	ctx := context.Background()
	kickoff := time.Date(2025, 10, 19, 14, 40, 51, 562000000, time.UTC)

	srv.RespondNext(http.MethodGet, "/games", http.StatusOK,
		`[{"id":"g1","date":"2025-10-19T14:40:51.562000","stadium_id":"s1","started_at":null,"status":"not_started"}]`)
	srv.RespondNext(http.MethodGet, "/games/g1", http.StatusOK,
		`{"id":"g1","date":"2025-10-19T14:40:51.562000","started_at":"2025-10-19T14:45:00","home_team":{"id":"h","players":[]},"away_team":{"id":"a","players":[]},"goals":[{"id":"x","team_id":"h","minute":"2025-10-19T14:50:00","scorer":{"id":"p1","name":"Alice"}}],"status":"started","score":{"home_team":1,"away_team":0}}`)
	srv.RespondNext(http.MethodGet, "/players/p1/games", http.StatusOK,
		`[{"game_id":"g1","date":"2025-10-19T14:40:51.562000","stadium":"Olympic","team":"home","score":"1 - 0","result":"win","goals":1,"assists":0}]`)
	srv.RespondNext(http.MethodGet, "/stadiums/s1/games", http.StatusOK,
		`{"stadium_id":"s1","stadium_name":"Olympic","total_games":1,"games":[{"game_id":"g1","date":"2025-10-19T14:40:51.562000","score":"1 - 0","winner":"Home"}]}`)

	list, err := c.Games().List(ctx, api.Page{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Date.Equal(kickoff))
	assert.Nil(t, list[0].StartedAt)

	g, err := c.Games().GetByID(ctx, "g1")
	require.NoError(t, err)
	assert.True(t, g.Date.Equal(kickoff))
	require.NotNil(t, g.StartedAt)
	assert.Equal(t, "14:45", g.StartedAt.Format("15:04"))
	require.Len(t, g.Goals, 1)
	require.NotNil(t, g.Goals[0].Minute)
	assert.Equal(t, "14:50", g.Goals[0].Minute.Format("15:04"))

	history, err := c.Players().Games(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].Date.Equal(kickoff))

	sg, err := c.Stadiums().Games(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, sg.Games, 1)
	assert.True(t, sg.Games[0].Date.Equal(kickoff))
}

func TestClient_ValidationMessagesUseWireNames(t *testing.T) {
	_, c := newClient(t)
	scorer := "p1"

	err := c.Games().RecordGoal(context.Background(), "g1", model.GoalCreate{ScorerID: scorer, TeamID: "t1", AssisterID: &scorer})
	require.ErrorIs(t, err, api.ErrInvalidInput)
	assert.Equal(t, []api.FieldError{{Field: "assister_id", Message: "must differ from scorer_id"}}, api.FieldErrors(err))
}
