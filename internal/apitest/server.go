// Package apitest runs an in-memory stand-in for the football tracker REST service.
// Tests point the resource client at it to exercise real HTTP round trips,
// inject failures, and count requests.
package apitest

import (
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/maxviazov/matchday/internal/model"
)

// APIPrefix is where the service mounts its routes.
const APIPrefix = "/api"

type rosterEntry struct {
	playerID string
	teamID   string
}

type goalRecord struct {
	id         string
	teamID     string
	scorerID   string
	assisterID *string
	minute     *model.Timestamp
}

type gameRecord struct {
	id        string
	date      model.Timestamp
	stadiumID string
	startedAt *model.Timestamp
	endedAt   *model.Timestamp
	home      model.GameTeam
	away      model.GameTeam
	roster    []rosterEntry
	goals     []goalRecord
	notes     *string
}

type cannedResponse struct {
	status int
	body   string
}

// Server is a fake REST service backed by maps. All methods are safe for concurrent use.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	players  map[string]model.Player
	stadiums map[string]model.Stadium
	games    map[string]*gameRecord
	canned   map[string][]cannedResponse
	requests []string
	now      func() time.Time
}

// New starts a server. Callers must Close it; NewT does that through t.Cleanup.
func New() *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		players:  map[string]model.Player{},
		stadiums: map[string]model.Stadium{},
		games:    map[string]*gameRecord{},
		canned:   map[string][]cannedResponse{},
		now:      func() time.Time { return time.Now().UTC() },
	}
	r := gin.New()
	r.Use(s.record, s.serveCanned)
	s.register(r.Group(APIPrefix))
	s.Server = httptest.NewServer(r)
	return s
}

// Cleaner is the part of testing.TB that NewT needs.
type Cleaner interface {
	Cleanup(func())
}

func NewT(t Cleaner) *Server {
	s := New()
	t.Cleanup(s.Close)
	return s
}

// BaseURL is what the resource client should be configured with.
func (s *Server) BaseURL() string { return s.URL + APIPrefix }

// FailNext makes the next request matching method and path (without the /api
// prefix, e.g. "/games/g1") answer with status. Multiple calls queue up.
func (s *Server) FailNext(method, path string, status int) {
	s.RespondNext(method, path, status, `{"error":"injected"}`)
}

// RespondNext makes the next matching request answer with status and a raw
// JSON body instead of reaching the handler. It shares FailNext's queue.
func (s *Server) RespondNext(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + APIPrefix + path
	s.canned[key] = append(s.canned[key], cannedResponse{status: status, body: body})
}

// Requests returns "METHOD /path" for every request received so far, in order.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// RequestCount counts received requests whose "METHOD /path" starts with prefix.
func (s *Server) RequestCount(prefix string) int {
	n := 0
	for _, r := range s.Requests() {
		if strings.HasPrefix(r, prefix) {
			n++
		}
	}
	return n
}

// SeedPlayer inserts a player directly, bypassing the HTTP surface.
func (s *Server) SeedPlayer(name string) model.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := model.Player{ID: uuid.NewString(), Name: name}
	s.players[p.ID] = p
	return p
}

func (s *Server) SeedStadium(name string) model.Stadium {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := model.Stadium{ID: uuid.NewString(), Name: name}
	s.stadiums[st.ID] = st
	return st
}

// SeedGame schedules a game at stadiumID and returns its detail view.
func (s *Server) SeedGame(stadiumID string, date time.Time) model.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.newGame(stadiumID, date)
	return s.gameView(g)
}

func (s *Server) record(c *gin.Context) {
	s.mu.Lock()
	s.requests = append(s.requests, c.Request.Method+" "+c.Request.URL.Path)
	s.mu.Unlock()
	c.Next()
}

func (s *Server) serveCanned(c *gin.Context) {
	key := c.Request.Method + " " + c.Request.URL.Path
	s.mu.Lock()
	queue := s.canned[key]
	var f cannedResponse
	hit := len(queue) > 0
	if hit {
		f = queue[0]
		s.canned[key] = queue[1:]
	}
	s.mu.Unlock()
	if hit {
		c.Data(f.status, "application/json", []byte(f.body))
		c.Abort()
		return
	}
	c.Next()
}

func (s *Server) newGame(stadiumID string, date time.Time) *gameRecord {
	home, away := "Team 1", "Team 2"
	g := &gameRecord{
		id:        uuid.NewString(),
		date:      model.NewTimestamp(date),
		stadiumID: stadiumID,
		home:      model.GameTeam{ID: uuid.NewString(), Name: &home, Players: []model.GameTeamPlayer{}},
		away:      model.GameTeam{ID: uuid.NewString(), Name: &away, Players: []model.GameTeamPlayer{}},
	}
	s.games[g.id] = g
	return g
}
