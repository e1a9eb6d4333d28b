package store

// Operation table: name for logs, fixed user-facing message, failure policy.
var (
	opFetchPlayers     = op{"fetch_players", "Failed to fetch players", Absorb}
	opFetchPlayer      = op{"fetch_player", "Failed to fetch player", Absorb}
	opFetchPlayerGames = op{"fetch_player_games", "Failed to fetch player games", Absorb}
	opFetchPlayerStats = op{"fetch_player_stats", "Failed to fetch player stats", Absorb}
	opCreatePlayer     = op{"create_player", "Failed to create player", Propagate}
	opUpdatePlayer     = op{"update_player", "Failed to update player", Propagate}
	opDeletePlayer     = op{"delete_player", "Failed to delete player", Propagate}
	opSearchPlayers    = op{"search_players", "Failed to search players", DegradeToEmpty}

	opFetchGames        = op{"fetch_games", "Failed to fetch games", Absorb}
	opFetchGame         = op{"fetch_game", "Failed to fetch game", Absorb}
	opFetchGameScore    = op{"fetch_game_score", "Failed to fetch game score", Absorb}
	opFetchGamePlayers  = op{"fetch_game_players", "Failed to fetch game players", Absorb}
	opCreateGame        = op{"create_game", "Failed to create game", Propagate}
	opAddPlayerToGame   = op{"add_player_to_game", "Failed to add player to game", Propagate}
	opRecordGoal        = op{"record_goal", "Failed to record goal", Propagate}
	opDeleteGame        = op{"delete_game", "Failed to delete game", Propagate}
	opStartGame         = op{"start_game", "Failed to start game", Propagate}
	opEndGame           = op{"end_game", "Failed to end game", Propagate}
	opFetchStadiums     = op{"fetch_stadiums", "Failed to fetch stadiums", Absorb}
	opFetchStadium      = op{"fetch_stadium", "Failed to fetch stadium", Absorb}
	opFetchStadiumGames = op{"fetch_stadium_games", "Failed to fetch stadium games", Absorb}
	opCreateStadium     = op{"create_stadium", "Failed to create stadium", Propagate}
	opUpdateStadium     = op{"update_stadium", "Failed to update stadium", Propagate}
	opDeleteStadium     = op{"delete_stadium", "Failed to delete stadium", Propagate}
)
