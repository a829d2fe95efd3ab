package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	appdepthchart "github.com/preston-bernstein/depth-chart-service/internal/app/depthchart"
	appplayers "github.com/preston-bernstein/depth-chart-service/internal/app/players"
	appteams "github.com/preston-bernstein/depth-chart-service/internal/app/teams"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/players"
	"github.com/preston-bernstein/depth-chart-service/internal/http/requestutil"
	"github.com/preston-bernstein/depth-chart-service/internal/logging"
)

// Route parameter names.
const (
	ParamTeamID       = "teamId"
	ParamPosition     = "position"
	ParamPlayerNumber = "playerNumber"
)

// ReadyFunc reports whether storage can serve traffic.
type ReadyFunc func(ctx context.Context) error

// Handler wires HTTP routes to the application services.
type Handler struct {
	depth  *appdepthchart.Service
	teams  *appteams.Service
	roster *appplayers.Service
	ready  ReadyFunc
	logger *slog.Logger
}

// NewHandler constructs a Handler. ready may be nil.
func NewHandler(depth *appdepthchart.Service, teams *appteams.Service, roster *appplayers.Service, ready ReadyFunc, logger *slog.Logger) *Handler {
	return &Handler{
		depth:  depth,
		teams:  teams,
		roster: roster,
		ready:  ready,
		logger: logger,
	}
}

// Register mounts every route on r.
func (h *Handler) Register(r chi.Router) {
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/teams", h.Teams)
	r.Get("/teams/{"+ParamTeamID+"}/players", h.Roster)

	r.Route("/depthchart/{"+ParamTeamID+"}", func(r chi.Router) {
		r.Get("/", h.FullChart)
		r.Post("/players", h.AddPlayer)
		r.Put("/players/{"+ParamPlayerNumber+"}", h.UpsertPlayer)
		r.Delete("/positions/{"+ParamPosition+"}/players/{"+ParamPlayerNumber+"}", h.RemovePlayer)
		r.Get("/positions/{"+ParamPosition+"}/players/{"+ParamPlayerNumber+"}/backups", h.Backups)
	})
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether storage answers.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil {
		if err := h.ready(r.Context()); err != nil {
			logging.Warn(loggerFromContext(r, h.logger), "readiness check failed", "err", err)
			writeError(w, r, http.StatusServiceUnavailable, "storage unavailable", h.logger)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Teams lists reference teams.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.teams.Teams(), h.logger)
}

// Roster lists a team's player directory.
func (h *Handler) Roster(w http.ResponseWriter, r *http.Request) {
	roster, err := h.roster.Roster(r.Context(), chi.URLParam(r, ParamTeamID))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, roster, h.logger)
}

type addPlayerRequest struct {
	Position string `json:"position"`
	Player   struct {
		Number *int   `json:"number"`
		Name   string `json:"name"`
	} `json:"player"`
	PositionDepth *int `json:"positionDepth"`
}

// AddPlayer ranks a player at a position.
func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req addPlayerRequest
	if err := requestutil.DecodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if req.Player.Number == nil {
		writeServiceError(w, r, &appdepthchart.ValidationError{Field: "player.Number", Message: "cannot be empty"}, h.logger)
		return
	}

	teamID := chi.URLParam(r, ParamTeamID)
	player := players.Player{Number: *req.Player.Number, Name: req.Player.Name}
	if err := h.depth.AddPlayer(r.Context(), teamID, req.Position, player, req.PositionDepth); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "player added"}, h.logger)
}

type upsertPlayerRequest struct {
	Name string `json:"name"`
}

// UpsertPlayer creates or renames a roster record.
func (h *Handler) UpsertPlayer(w http.ResponseWriter, r *http.Request) {
	number, err := requestutil.PathInt(r, ParamPlayerNumber)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	var req upsertPlayerRequest
	if err := requestutil.DecodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	stored, err := h.depth.UpsertPlayer(r.Context(), players.Player{
		TeamID: chi.URLParam(r, ParamTeamID),
		Number: number,
		Name:   req.Name,
	})
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, stored, h.logger)
}

// RemovePlayer unranks a player; 404 when not ranked at the position.
func (h *Handler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	number, err := requestutil.PathInt(r, ParamPlayerNumber)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	removed, ok, err := h.depth.RemovePlayer(r.Context(), chi.URLParam(r, ParamTeamID), chi.URLParam(r, ParamPosition), number)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "player not found in depth chart at this position", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, removed, h.logger)
}

// Backups lists players ranked behind the given player.
func (h *Handler) Backups(w http.ResponseWriter, r *http.Request) {
	number, err := requestutil.PathInt(r, ParamPlayerNumber)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	backups, err := h.depth.Backups(r.Context(), chi.URLParam(r, ParamTeamID), chi.URLParam(r, ParamPosition), number)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, backups, h.logger)
}

// FullChart returns the grouped chart for a team.
func (h *Handler) FullChart(w http.ResponseWriter, r *http.Request) {
	chart, err := h.depth.FullChart(r.Context(), chi.URLParam(r, ParamTeamID), r.URL.Query().Get("league"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, chart, h.logger)
}

// NotFound answers unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known paths hit with the wrong verb.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}
