// Package model contains the view models exchanged with the football tracker API.
// I keep it lean and focused on data shapes; the only behavior is projection helpers.
package model

import "time"

// Player is the plain player record returned by create and search.
type Player struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Nickname *string `json:"nickname,omitempty"`
	Profile  *string `json:"profile,omitempty"`
}

// PlayerStats is a player enriched with career aggregates computed server-side.
// Read-only from the client's perspective: it is only ever replaced wholesale.
type PlayerStats struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Nickname     *string `json:"nickname,omitempty"`
	Profile      *string `json:"profile,omitempty"`
	GamesPlayed  int     `json:"games_played"`
	TotalGoals   int     `json:"total_goals"`
	TotalAssists int     `json:"total_assists"`
	Wins         int     `json:"wins"`
	GoalsPerGame float64 `json:"goals_per_game"`
}

// StatsFromPlayer lifts a freshly created player into a stats row with zero aggregates.
func StatsFromPlayer(p Player) PlayerStats {
	return PlayerStats{ID: p.ID, Name: p.Name, Nickname: p.Nickname, Profile: p.Profile}
}

// TeamSide says which side of a game a player was on.
type TeamSide string

const (
	SideHome TeamSide = "home"
	SideAway TeamSide = "away"
)

// GameResult is a game outcome from one player's point of view.
type GameResult string

const (
	ResultWin  GameResult = "win"
	ResultLoss GameResult = "loss"
	ResultDraw GameResult = "draw"
)

// PlayerGame is one row of a player's game history.
type PlayerGame struct {
	GameID  string     `json:"game_id"`
	Date    Timestamp  `json:"date"`
	Stadium string     `json:"stadium"`
	Team    TeamSide   `json:"team"`
	Score   string     `json:"score"`
	Result  GameResult `json:"result"`
	Goals   int        `json:"goals"`
	Assists int        `json:"assists"`
}

// Stadium is a venue games are played at.
type Stadium struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
}

// StadiumGame is one row of a stadium's game history.
type StadiumGame struct {
	GameID string    `json:"game_id"`
	Date   Timestamp `json:"date"`
	Score  string    `json:"score"`
	Winner string    `json:"winner"`
	Notes  *string   `json:"notes,omitempty"`
}

// StadiumGames lists every game played at a stadium.
type StadiumGames struct {
	StadiumID   string        `json:"stadium_id"`
	StadiumName string        `json:"stadium_name"`
	TotalGames  int           `json:"total_games"`
	Games       []StadiumGame `json:"games"`
}

// GameStatus is derived by the server from started_at / ended_at.
type GameStatus string

const (
	StatusNotStarted GameStatus = "not_started"
	StatusStarted    GameStatus = "started"
	StatusEnded      GameStatus = "ended"
)

// GameScore is the number of goals per side.
type GameScore struct {
	HomeTeam int `json:"home_team"`
	AwayTeam int `json:"away_team"`
}

// GameTeamPlayer is a roster entry with the player's contribution in that game.
type GameTeamPlayer struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Nickname *string `json:"nickname,omitempty"`
	Profile  *string `json:"profile,omitempty"`
	Goals    int     `json:"goals"`
	Assists  int     `json:"assists"`
}

// GameTeam is one side of a game.
type GameTeam struct {
	ID      string           `json:"id"`
	Name    *string          `json:"name,omitempty"`
	Players []GameTeamPlayer `json:"players"`
}

// GamePlayers holds both rosters of a game.
type GamePlayers struct {
	HomeTeam GameTeam `json:"home_team"`
	AwayTeam GameTeam `json:"away_team"`
}

// Goal is immutable once recorded. Assister may be absent.
type Goal struct {
	ID       string     `json:"id"`
	TeamID   string     `json:"team_id"`
	Minute   *Timestamp `json:"minute,omitempty"`
	Scorer   Player     `json:"scorer"`
	Assister *Player    `json:"assister,omitempty"`
}

// Game is the detailed view with nested teams and goals.
type Game struct {
	ID        string     `json:"id"`
	Date      Timestamp  `json:"date"`
	StartedAt *Timestamp `json:"started_at,omitempty"`
	EndedAt   *Timestamp `json:"ended_at,omitempty"`
	Stadium   *Stadium   `json:"stadium,omitempty"`
	HomeTeam  GameTeam   `json:"home_team"`
	AwayTeam  GameTeam   `json:"away_team"`
	Goals     []Goal     `json:"goals"`
	Status    GameStatus `json:"status"`
	Score     GameScore  `json:"score"`
}

// GameSummary is the list row for a game.
type GameSummary struct {
	ID        string     `json:"id"`
	Date      Timestamp  `json:"date"`
	StadiumID string     `json:"stadium_id"`
	StartedAt *Timestamp `json:"started_at,omitempty"`
	EndedAt   *Timestamp `json:"ended_at,omitempty"`
	Status    GameStatus `json:"status"`
}

// Summary projects a detailed game onto its list row.
func (g Game) Summary() GameSummary {
	s := GameSummary{ID: g.ID, Date: g.Date, StartedAt: g.StartedAt, EndedAt: g.EndedAt, Status: g.Status}
	if g.Stadium != nil {
		s.StadiumID = g.Stadium.ID
	}
	return s
}

// HasSide reports whether teamID is one of the game's two sides.
func (g Game) HasSide(teamID string) bool {
	return teamID != "" && (teamID == g.HomeTeam.ID || teamID == g.AwayTeam.ID)
}

// PlayerCreate is the payload for creating a player.
type PlayerCreate struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Nickname *string `json:"nickname,omitempty" validate:"omitempty,max=50"`
	Profile  *string `json:"profile,omitempty"`
}

// PlayerUpdate only sends the fields that are set.
type PlayerUpdate struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Nickname *string `json:"nickname,omitempty" validate:"omitempty,max=50"`
}

// StadiumCreate is the payload for creating a stadium.
type StadiumCreate struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Address *string `json:"address,omitempty"`
}

// StadiumUpdate only sends the fields that are set.
type StadiumUpdate struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Address *string `json:"address,omitempty"`
}

// GameCreate schedules a game at a stadium.
type GameCreate struct {
	StadiumID string    `json:"stadium_id" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
}

// AddPlayerToGame puts a player on one side of a game.
type AddPlayerToGame struct {
	PlayerID string `json:"player_id" validate:"required"`
	TeamID   string `json:"team_id" validate:"required"`
}

// GoalCreate records a goal. Scorer and assister must differ; the server does not check it.
type GoalCreate struct {
	ScorerID   string     `json:"scorer_id" validate:"required"`
	TeamID     string     `json:"team_id" validate:"required"`
	AssisterID *string    `json:"assister_id,omitempty" validate:"omitempty,min=1,nefield=ScorerID"`
	Minute     *time.Time `json:"minute,omitempty"`
}

// Ack is the message body returned by action endpoints that carry no record.
type Ack struct {
	Message string `json:"message"`
}
