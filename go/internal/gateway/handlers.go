package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/mcdev12/draftboard/go/internal/board"
	"github.com/mcdev12/draftboard/go/internal/leagues"
	"github.com/mcdev12/draftboard/go/internal/models"
	"github.com/rs/zerolog/log"
)

// BoardProvider defines what the gateway needs from the board app
type BoardProvider interface {
	GetBoard(ctx context.Context, leagueID uuid.UUID) (*models.Board, error)
}

// LeagueProvider defines what the gateway needs from the leagues app
type LeagueProvider interface {
	ListYears(ctx context.Context) ([]int, error)
	ListLeagueOptions(ctx context.Context, year int) ([]leagues.Option, error)
}

// Handler serves the draft board HTTP surface: JSON endpoints for the year
// and league pickers plus the board itself, and an HTML board page.
type Handler struct {
	boards  BoardProvider
	leagues LeagueProvider
}

// NewHandler creates a new gateway handler
func NewHandler(boards BoardProvider, lgs LeagueProvider) *Handler {
	return &Handler{
		boards:  boards,
		leagues: lgs,
	}
}

// RegisterRoutes registers all gateway routes on the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/years", h.handleYears)
	mux.HandleFunc("GET /api/leagues", h.handleLeagues)
	mux.HandleFunc("GET /api/leagues/{id}/board", h.handleBoardJSON)
	mux.HandleFunc("GET /leagues/{id}/board", h.handleBoardPage)
}

// handleYears handles GET /api/years
func (h *Handler) handleYears(w http.ResponseWriter, r *http.Request) {
	years, err := h.leagues.ListYears(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list years")
		http.Error(w, "Failed to list years", http.StatusInternalServerError)
		return
	}

	writeJSON(w, struct {
		Years []int `json:"years"`
	}{Years: years})
}

// handleLeagues handles GET /api/leagues?year=YYYY
func (h *Handler) handleLeagues(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "Valid year query parameter is required", http.StatusBadRequest)
		return
	}

	options, err := h.leagues.ListLeagueOptions(r.Context(), year)
	if err != nil {
		log.Error().Err(err).Int("year", year).Msg("failed to list leagues")
		http.Error(w, "Failed to list leagues", http.StatusInternalServerError)
		return
	}

	writeJSON(w, struct {
		Year    int              `json:"year"`
		Leagues []leagues.Option `json:"leagues"`
	}{Year: year, Leagues: options})
}

// boardResponse is the JSON shape of a rendered board. Header colors and the
// position palette ride along so clients only treat them as lookup keys.
type boardResponse struct {
	LeagueID   string            `json:"league_id"`
	MaxRound   int               `json:"max_round"`
	NumSlots   int               `json:"num_slots"`
	Text       [][]string        `json:"text"`
	Positions  [][]string        `json:"positions"`
	Headers    []headerInfo      `json:"headers"`
	Palette    map[string]string `json:"position_colors"`
	Collisions int               `json:"collisions,omitempty"`
}

type headerInfo struct {
	Label      string `json:"label"`
	Rank       *int   `json:"rank,omitempty"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// handleBoardJSON handles GET /api/leagues/{id}/board
func (h *Handler) handleBoardJSON(w http.ResponseWriter, r *http.Request) {
	leagueID, b, ok := h.loadBoard(w, r)
	if !ok {
		return
	}

	headers := make([]headerInfo, len(b.Headers))
	for i, hd := range b.Headers {
		bg, fg := board.RankColor(hd.Rank, b.NumSlots)
		headers[i] = headerInfo{
			Label:      hd.Label,
			Rank:       hd.Rank,
			Background: bg,
			Foreground: fg,
		}
	}

	writeJSON(w, boardResponse{
		LeagueID:   leagueID.String(),
		MaxRound:   b.MaxRound,
		NumSlots:   b.NumSlots,
		Text:       b.Text,
		Positions:  b.Positions,
		Headers:    headers,
		Palette:    board.PositionColors,
		Collisions: b.Collisions,
	})
}

// handleBoardPage handles GET /leagues/{id}/board
func (h *Handler) handleBoardPage(w http.ResponseWriter, r *http.Request) {
	leagueID, b, ok := h.loadBoard(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderBoardPage(w, leagueID, b); err != nil {
		log.Error().Err(err).Str("league_id", leagueID.String()).Msg("failed to render board page")
	}
}

// loadBoard parses the league id, fetches the board, and maps build errors
// onto responses. Returns ok=false after writing an error response.
func (h *Handler) loadBoard(w http.ResponseWriter, r *http.Request) (uuid.UUID, *models.Board, bool) {
	leagueID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid league ID format", http.StatusBadRequest)
		return uuid.Nil, nil, false
	}

	b, err := h.boards.GetBoard(r.Context(), leagueID)
	switch {
	case errors.Is(err, board.ErrNoPicks):
		http.Error(w, "No draft data found for this league", http.StatusNotFound)
		return uuid.Nil, nil, false
	case errors.Is(err, board.ErrMalformedDraftOrder):
		log.Error().Err(err).Str("league_id", leagueID.String()).Msg("unusable draft order data")
		http.Error(w, "Draft order data for this league is unusable", http.StatusUnprocessableEntity)
		return uuid.Nil, nil, false
	case err != nil:
		log.Error().Err(err).Str("league_id", leagueID.String()).Msg("failed to get board")
		http.Error(w, "Failed to load draft board", http.StatusInternalServerError)
		return uuid.Nil, nil, false
	}

	return leagueID, b, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
