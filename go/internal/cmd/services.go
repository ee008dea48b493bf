package main

import (
	"database/sql"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/draftboard/go/internal/board"
	"github.com/mcdev12/draftboard/go/internal/gateway"
	"github.com/mcdev12/draftboard/go/internal/leagues"
)

type Services struct {
	Gateway *gateway.Handler
}

func setupServices(database *sql.DB, config *Config) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Handler layer

	// Board
	boardRepo := board.NewRepository(database, config.Board.PageSize)
	boardCache := board.NewCache(boardRepo, time.Duration(config.Board.CacheTTLSec)*time.Second, clockwork.NewRealClock())
	boardApp := board.NewApp(boardCache)

	// Leagues
	leagueRepo := leagues.NewRepository(database)
	leagueApp := leagues.NewApp(leagueRepo)

	return &Services{
		Gateway: gateway.NewHandler(boardApp, leagueApp),
	}
}
