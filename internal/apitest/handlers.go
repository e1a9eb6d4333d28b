package apitest

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/maxviazov/matchday/internal/model"
	"github.com/maxviazov/matchday/pkg/response"
)

func pageParams(c *gin.Context, defaultLimit int) (skip, limit int) {
	// Atoi errors fall back to defaults, same as the real service
	skip, _ = strconv.Atoi(c.Query("skip"))
	limit, _ = strconv.Atoi(c.Query("limit"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return skip, limit
}

func window[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

func (s *Server) register(r *gin.RouterGroup) {
	p := r.Group("/players")
	{
		p.POST("", s.createPlayer)
		p.GET("", s.listPlayers)
		p.GET("/search/by-name", s.searchPlayers)
		p.GET("/:id", s.getPlayer)
		p.GET("/:id/stats", s.getPlayer)
		p.GET("/:id/games", s.getPlayerGames)
		p.PUT("/:id", s.updatePlayer)
		p.DELETE("/:id", s.deletePlayer)
	}
	g := r.Group("/games")
	{
		g.POST("", s.createGame)
		g.GET("", s.listGames)
		g.GET("/:id", s.getGame)
		g.DELETE("/:id", s.deleteGame)
		g.POST("/:id/players", s.addPlayerToGame)
		g.POST("/:id/goals", s.recordGoal)
		g.GET("/:id/score", s.getScore)
		g.GET("/:id/players", s.getGamePlayers)
		g.PUT("/:id/start", s.startGame)
		g.PUT("/:id/end", s.endGame)
	}
	st := r.Group("/stadiums")
	{
		st.POST("", s.createStadium)
		st.GET("", s.listStadiums)
		st.GET("/:id", s.getStadium)
		st.GET("/:id/games", s.getStadiumGames)
		st.PUT("/:id", s.updateStadium)
		st.DELETE("/:id", s.deleteStadium)
	}
}

// Players

func (s *Server) createPlayer(c *gin.Context) {
	var req model.PlayerCreate
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		response.WriteError(c, fmt.Errorf("%w: name is required", response.ErrBadRequest))
		return
	}
	s.mu.Lock()
	p := model.Player{ID: uuid.NewString(), Name: req.Name, Nickname: req.Nickname, Profile: req.Profile}
	s.players[p.ID] = p
	s.mu.Unlock()
	response.WriteData(c, p)
}

func (s *Server) listPlayers(c *gin.Context) {
	skip, limit := pageParams(c, 50)
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]model.PlayerStats, 0, len(s.players))
	for _, p := range s.players {
		all = append(all, s.playerStats(p))
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	response.WriteData(c, window(all, skip, limit))
}

func (s *Server) searchPlayers(c *gin.Context) {
	needle := strings.ToLower(c.Query("name"))
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Player{}
	for _, p := range s.players {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	response.WriteData(c, out)
}

func (s *Server) getPlayer(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[c.Param("id")]
	if !ok {
		response.WriteError(c, fmt.Errorf("player %w", response.ErrNotFound))
		return
	}
	response.WriteData(c, s.playerStats(p))
}

func (s *Server) getPlayerGames(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := c.Param("id")
	if _, ok := s.players[id]; !ok {
		response.WriteError(c, fmt.Errorf("player %w", response.ErrNotFound))
		return
	}
	response.WriteData(c, s.playerGames(id))
}

func (s *Server) updatePlayer(c *gin.Context) {
	var req model.PlayerUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, fmt.Errorf("%w: %v", response.ErrBadRequest, err))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[c.Param("id")]
	if !ok {
		response.WriteError(c, fmt.Errorf("player %w", response.ErrNotFound))
		return
	}
	if req.Name != nil && *req.Name != "" {
		p.Name = *req.Name
	}
	if req.Nickname != nil {
		p.Nickname = req.Nickname
	}
	s.players[p.ID] = p
	response.WriteData(c, s.playerStats(p))
}

func (s *Server) deletePlayer(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := c.Param("id")
	if _, ok := s.players[id]; !ok {
		response.WriteError(c, fmt.Errorf("player %w", response.ErrNotFound))
		return
	}
	delete(s.players, id)
	response.WriteData(c, model.Ack{Message: "Player deleted"})
}

// Games

func (s *Server) createGame(c *gin.Context) {
	var req model.GameCreate
	if err := c.ShouldBindJSON(&req); err != nil || req.StadiumID == "" || req.Date.IsZero() {
		response.WriteError(c, fmt.Errorf("%w: stadium_id and date are required", response.ErrBadRequest))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stadiums[req.StadiumID]; !ok {
		response.WriteError(c, fmt.Errorf("stadium %w", response.ErrNotFound))
		return
	}
	g := s.newGame(req.StadiumID, req.Date)
	response.WriteData(c, s.gameView(g).Summary())
}

func (s *Server) listGames(c *gin.Context) {
	skip, limit := pageParams(c, 20)
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]model.GameSummary, 0, len(s.games))
	for _, g := range s.games {
		all = append(all, s.gameView(g).Summary())
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Date.After(all[j].Date.Time) })
	response.WriteData(c, window(all, skip, limit))
}

// lookupGame must be called with s.mu held.
func (s *Server) lookupGame(c *gin.Context) (*gameRecord, bool) {
	g, ok := s.games[c.Param("id")]
	if !ok {
		response.WriteError(c, fmt.Errorf("game %w", response.ErrNotFound))
	}
	return g, ok
}

func (s *Server) getGame(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.lookupGame(c); ok {
		response.WriteData(c, s.gameView(g))
	}
}

func (s *Server) deleteGame(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.lookupGame(c); ok {
		delete(s.games, g.id)
		response.WriteData(c, model.Ack{Message: "Game deleted"})
	}
}

func (s *Server) addPlayerToGame(c *gin.Context) {
	var req model.AddPlayerToGame
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, fmt.Errorf("%w: %v", response.ErrBadRequest, err))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.lookupGame(c)
	if !ok {
		return
	}
	p, ok := s.players[req.PlayerID]
	if !ok {
		response.WriteError(c, fmt.Errorf("player %w", response.ErrNotFound))
		return
	}
	if req.TeamID != g.home.ID && req.TeamID != g.away.ID {
		response.WriteError(c, fmt.Errorf("%w: team is not part of this game", response.ErrBadRequest))
		return
	}
	g.roster = append(g.roster, rosterEntry{playerID: p.ID, teamID: req.TeamID})
	response.WriteData(c, model.Ack{Message: fmt.Sprintf("%s added to team", p.Name)})
}

func (s *Server) recordGoal(c *gin.Context) {
	var req model.GoalCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, fmt.Errorf("%w: %v", response.ErrBadRequest, err))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.lookupGame(c)
	if !ok {
		return
	}
	scorer, ok := s.players[req.ScorerID]
	if !ok {
		response.WriteError(c, fmt.Errorf("player %w", response.ErrNotFound))
		return
	}
	if req.TeamID != g.home.ID && req.TeamID != g.away.ID {
		response.WriteError(c, fmt.Errorf("%w: team is not part of this game", response.ErrBadRequest))
		return
	}
	var minute *model.Timestamp
	if req.Minute != nil {
		m := model.NewTimestamp(*req.Minute)
		minute = &m
	}
	g.goals = append(g.goals, goalRecord{
		id:         uuid.NewString(),
		teamID:     req.TeamID,
		scorerID:   req.ScorerID,
		assisterID: req.AssisterID,
		minute:     minute,
	})
	response.WriteData(c, model.Ack{Message: "Goal recorded for " + scorer.Name})
}

func (s *Server) getScore(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.lookupGame(c); ok {
		response.WriteData(c, s.score(g))
	}
}

func (s *Server) getGamePlayers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.lookupGame(c); ok {
		response.WriteData(c, model.GamePlayers{HomeTeam: s.teamView(g, g.home), AwayTeam: s.teamView(g, g.away)})
	}
}

func (s *Server) startGame(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.lookupGame(c)
	if !ok {
		return
	}
	if g.startedAt != nil {
		response.WriteError(c, fmt.Errorf("%w: game has already started", response.ErrBadRequest))
		return
	}
	now := model.NewTimestamp(s.now())
	g.startedAt = &now
	response.WriteData(c, s.gameView(g))
}

func (s *Server) endGame(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.lookupGame(c)
	if !ok {
		return
	}
	switch {
	case g.startedAt == nil:
		response.WriteError(c, fmt.Errorf("%w: game has not started yet", response.ErrBadRequest))
		return
	case g.endedAt != nil:
		response.WriteError(c, fmt.Errorf("%w: game has already ended", response.ErrBadRequest))
		return
	}
	now := model.NewTimestamp(s.now())
	g.endedAt = &now
	response.WriteData(c, s.gameView(g))
}

// Stadiums

func (s *Server) createStadium(c *gin.Context) {
	var req model.StadiumCreate
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		response.WriteError(c, fmt.Errorf("%w: name is required", response.ErrBadRequest))
		return
	}
	s.mu.Lock()
	st := model.Stadium{ID: uuid.NewString(), Name: req.Name, Address: req.Address}
	s.stadiums[st.ID] = st
	s.mu.Unlock()
	response.WriteData(c, st)
}

func (s *Server) listStadiums(c *gin.Context) {
	skip, limit := pageParams(c, 50)
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]model.Stadium, 0, len(s.stadiums))
	for _, st := range s.stadiums {
		all = append(all, st)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	response.WriteData(c, window(all, skip, limit))
}

func (s *Server) getStadium(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stadiums[c.Param("id")]
	if !ok {
		response.WriteError(c, fmt.Errorf("stadium %w", response.ErrNotFound))
		return
	}
	response.WriteData(c, st)
}

func (s *Server) getStadiumGames(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stadiums[c.Param("id")]
	if !ok {
		response.WriteError(c, fmt.Errorf("stadium %w", response.ErrNotFound))
		return
	}
	out := model.StadiumGames{StadiumID: st.ID, StadiumName: st.Name, Games: []model.StadiumGame{}}
	for _, g := range s.gamesAt(st.ID) {
		sc := s.score(g)
		winner := "Draw"
		switch {
		case sc.HomeTeam > sc.AwayTeam:
			winner = "Home"
		case sc.AwayTeam > sc.HomeTeam:
			winner = "Away"
		}
		out.Games = append(out.Games, model.StadiumGame{
			GameID: g.id, Date: g.date, Score: fmt.Sprintf("%d - %d", sc.HomeTeam, sc.AwayTeam), Winner: winner, Notes: g.notes,
		})
	}
	out.TotalGames = len(out.Games)
	response.WriteData(c, out)
}

func (s *Server) updateStadium(c *gin.Context) {
	var req model.StadiumUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, fmt.Errorf("%w: %v", response.ErrBadRequest, err))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stadiums[c.Param("id")]
	if !ok {
		response.WriteError(c, fmt.Errorf("stadium %w", response.ErrNotFound))
		return
	}
	if req.Name != nil && *req.Name != "" {
		st.Name = *req.Name
	}
	if req.Address != nil {
		st.Address = req.Address
	}
	s.stadiums[st.ID] = st
	response.WriteData(c, st)
}

func (s *Server) deleteStadium(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := c.Param("id")
	if _, ok := s.stadiums[id]; !ok {
		response.WriteError(c, fmt.Errorf("stadium %w", response.ErrNotFound))
		return
	}
	if len(s.gamesAt(id)) > 0 {
		response.WriteError(c, fmt.Errorf("%w: cannot delete stadium with existing games", response.ErrBadRequest))
		return
	}
	delete(s.stadiums, id)
	response.WriteData(c, model.Ack{Message: "Stadium deleted"})
}

// Views. Everything below expects s.mu to be held.

func (s *Server) gamesAt(stadiumID string) []*gameRecord {
	var out []*gameRecord
	for _, g := range s.games {
		if g.stadiumID == stadiumID {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].date.Before(out[j].date.Time) })
	return out
}

func (s *Server) score(g *gameRecord) model.GameScore {
	var sc model.GameScore
	for _, gl := range g.goals {
		switch gl.teamID {
		case g.home.ID:
			sc.HomeTeam++
		case g.away.ID:
			sc.AwayTeam++
		}
	}
	return sc
}

func (s *Server) playerRef(id string) model.Player {
	if p, ok := s.players[id]; ok {
		return p
	}
	return model.Player{ID: id}
}

func (s *Server) teamView(g *gameRecord, team model.GameTeam) model.GameTeam {
	out := model.GameTeam{ID: team.ID, Name: team.Name, Players: []model.GameTeamPlayer{}}
	for _, re := range g.roster {
		if re.teamID != team.ID {
			continue
		}
		p := s.playerRef(re.playerID)
		row := model.GameTeamPlayer{ID: p.ID, Name: p.Name, Nickname: p.Nickname, Profile: p.Profile}
		for _, gl := range g.goals {
			if gl.scorerID == p.ID {
				row.Goals++
			}
			if gl.assisterID != nil && *gl.assisterID == p.ID {
				row.Assists++
			}
		}
		out.Players = append(out.Players, row)
	}
	return out
}

func (s *Server) gameView(g *gameRecord) model.Game {
	out := model.Game{
		ID:        g.id,
		Date:      g.date,
		StartedAt: g.startedAt,
		EndedAt:   g.endedAt,
		HomeTeam:  s.teamView(g, g.home),
		AwayTeam:  s.teamView(g, g.away),
		Goals:     []model.Goal{},
		Score:     s.score(g),
	}
	if st, ok := s.stadiums[g.stadiumID]; ok {
		out.Stadium = &st
	}
	switch {
	case g.startedAt == nil:
		out.Status = model.StatusNotStarted
	case g.endedAt == nil:
		out.Status = model.StatusStarted
	default:
		out.Status = model.StatusEnded
	}
	for _, gl := range g.goals {
		goal := model.Goal{ID: gl.id, TeamID: gl.teamID, Minute: gl.minute, Scorer: s.playerRef(gl.scorerID)}
		if gl.assisterID != nil {
			a := s.playerRef(*gl.assisterID)
			goal.Assister = &a
		}
		out.Goals = append(out.Goals, goal)
	}
	return out
}

func (s *Server) playerStats(p model.Player) model.PlayerStats {
	st := model.StatsFromPlayer(p)
	for _, g := range s.games {
		sc := s.score(g)
		for _, re := range g.roster {
			if re.playerID != p.ID {
				continue
			}
			st.GamesPlayed++
			if (re.teamID == g.home.ID && sc.HomeTeam > sc.AwayTeam) || (re.teamID == g.away.ID && sc.AwayTeam > sc.HomeTeam) {
				st.Wins++
			}
		}
		for _, gl := range g.goals {
			if gl.scorerID == p.ID {
				st.TotalGoals++
			}
			if gl.assisterID != nil && *gl.assisterID == p.ID {
				st.TotalAssists++
			}
		}
	}
	if st.GamesPlayed > 0 {
		st.GoalsPerGame = math.Round(float64(st.TotalGoals)/float64(st.GamesPlayed)*100) / 100
	}
	return st
}

func (s *Server) playerGames(playerID string) []model.PlayerGame {
	out := []model.PlayerGame{}
	for _, g := range s.games {
		for _, re := range g.roster {
			if re.playerID != playerID {
				continue
			}
			sc := s.score(g)
			side, mine, theirs := model.SideHome, sc.HomeTeam, sc.AwayTeam
			if re.teamID == g.away.ID {
				side, mine, theirs = model.SideAway, sc.AwayTeam, sc.HomeTeam
			}
			result := model.ResultDraw
			switch {
			case mine > theirs:
				result = model.ResultWin
			case mine < theirs:
				result = model.ResultLoss
			}
			row := model.PlayerGame{
				GameID: g.id, Date: g.date, Team: side, Result: result,
				Score: fmt.Sprintf("%d - %d", sc.HomeTeam, sc.AwayTeam),
			}
			if st, ok := s.stadiums[g.stadiumID]; ok {
				row.Stadium = st.Name
			}
			for _, gl := range g.goals {
				if gl.scorerID == playerID {
					row.Goals++
				}
				if gl.assisterID != nil && *gl.assisterID == playerID {
					row.Assists++
				}
			}
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date.Time) })
	return out
}
