package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"svw.info/cheryl/internal/domain"
	"svw.info/cheryl/internal/usecase"
)

// Handler exposes the solver and finder as a small JSON API. Logical
// outcomes (contradiction, underdetermined, search exhaustion) are expected
// results and map to 200 responses with a status field; configuration
// mistakes map to 400.
type Handler struct {
	UC     *usecase.Service
	Logger *slog.Logger
}

func New(uc *usecase.Service, logger *slog.Logger) *Handler {
	return &Handler{UC: uc, Logger: logger}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/api/solve", h.handleSolve)
	r.Post("/api/find", h.handleFind)
	r.Get("/healthz", h.handleHealth)
	return r
}

// ---- Solve ----

type solveReq struct {
	Players    []string           `json:"players"`
	Candidates []domain.Candidate `json:"candidates"`
	Statements []domain.Statement `json:"statements"`
	Trace      bool               `json:"trace,omitempty"`
}

type solveResp struct {
	Status     string             `json:"status"`
	Solution   domain.Candidate   `json:"solution,omitempty"`
	Remaining  []domain.Candidate `json:"remaining,omitempty"`
	Statement  int                `json:"statement,omitempty"`
	Trace      domain.Trace       `json:"trace,omitempty"`
	DurationMs int64              `json:"durationMs"`
	Error      string             `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	space, err := domain.NewSpace(req.Candidates, req.Players)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sol, stats, err := h.UC.Solve(r.Context(), space, req.Statements, req.Trace)
	resp := solveResp{DurationMs: stats.Duration.Milliseconds()}
	switch {
	case err == nil:
		resp.Status = "solved"
		resp.Solution = sol.Candidate
		resp.Trace = sol.Trace
	default:
		var under *domain.UnderdeterminedError
		var contra *domain.ContradictionError
		switch {
		case errors.As(err, &under):
			resp.Status = "underdetermined"
			resp.Remaining = under.Remaining
		case errors.As(err, &contra):
			resp.Status = "contradiction"
			resp.Statement = contra.Statement
		default:
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---- Find ----

type findResp struct {
	Status     string         `json:"status"`
	Puzzle     *domain.Puzzle `json:"puzzle,omitempty"`
	Trials     int            `json:"trials"`
	Histogram  map[int]int    `json:"histogram,omitempty"`
	DurationMs int64          `json:"durationMs"`
	Error      string         `json:"error,omitempty"`
}

func (h *Handler) handleFind(w http.ResponseWriter, r *http.Request) {
	var search domain.Search
	if err := json.NewDecoder(r.Body).Decode(&search); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	puzzle, stats, err := h.UC.Find(r.Context(), search)
	resp := findResp{Trials: stats.Trials, DurationMs: stats.Duration.Milliseconds()}
	switch {
	case err == nil:
		resp.Status = "found"
		resp.Puzzle = puzzle
	default:
		var noGame *domain.NoGameFoundError
		if !errors.As(err, &noGame) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		resp.Status = "exhausted"
		resp.Histogram = noGame.Histogram
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
