package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/blade-dss/blade/internal/engine"
	"github.com/blade-dss/blade/internal/events"
	"github.com/blade-dss/blade/internal/store"
)

type DecisionsHandler struct {
	store  store.Store
	events events.Client
	solver *engine.Solver
}

func NewDecisionsHandler(s store.Store, ec events.Client, logger *slog.Logger) *DecisionsHandler {
	return &DecisionsHandler{
		store:  s,
		events: ec,
		solver: engine.NewSolver(logger),
	}
}

type CreateDecisionRequest struct {
	Weights      []float64           `json:"weights"`
	Requirements []store.Requirement `json:"requirements"`
}

type DecisionResponse struct {
	DecisionID   string               `json:"decision_id"`
	Outcome      engine.Outcome       `json:"outcome"`
	Considered   []*store.Alternative `json:"considered"`
	Disqualified []*store.Alternative `json:"disqualified"`
	Scores       []float64            `json:"scores,omitempty"`
	OptimumIndex *int                 `json:"optimum_index,omitempty"`
	Optimum      *store.Alternative   `json:"optimum,omitempty"`
	Error        string               `json:"error,omitempty"`
}

func (h *DecisionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CreateDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	// Length validation lives in LoadSession, which knows the catalog size.
	sess, err := engine.LoadSession(r.Context(), h.store, req.Weights, req.Requirements)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result := h.solver.Solve(sess)

	rec := result.Record(sess)
	if err := h.store.SaveDecision(r.Context(), rec); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	decisionsTotal.WithLabelValues(string(result.Outcome)).Inc()
	decisionDuration.Observe(time.Since(start).Seconds())

	resp := DecisionResponse{
		DecisionID:   rec.ID.String(),
		Outcome:      result.Outcome,
		Considered:   result.Considered,
		Disqualified: result.Disqualified,
		Scores:       result.Scores,
		OptimumIndex: result.OptimumIndex,
		Optimum:      result.Optimum(),
	}

	if result.Outcome == engine.OutcomeFaulted {
		resp.Error = result.Err.Error()
		if h.events != nil {
			_ = h.events.Publish(events.SubjectDecisionFaulted(rec.ID.String()), events.DecisionFaultedEvent{
				DecisionID: rec.ID.String(),
				Error:      result.Err.Error(),
			})
		}
		writeJSON(w, http.StatusInternalServerError, resp)
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectDecisionCompleted(rec.ID.String()), events.DecisionCompletedEvent{
			DecisionID:   rec.ID.String(),
			Outcome:      string(result.Outcome),
			Considered:   len(result.Considered),
			Disqualified: len(result.Disqualified),
			OptimumName:  rec.OptimumName,
			Scores:       result.Scores,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *DecisionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid decision id"})
		return
	}

	rec, err := h.store.GetDecision(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if rec == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "decision not found"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *DecisionsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.DecisionFilter{}
	if s := r.URL.Query().Get("outcome"); s != "" {
		outcome := store.DecisionOutcome(s)
		filter.Outcome = &outcome
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be an integer"})
			return
		}
		filter.Limit = n
	}
	if s := r.URL.Query().Get("offset"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "offset must be an integer"})
			return
		}
		filter.Offset = n
	}

	recs, err := h.store.ListDecisions(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if recs == nil {
		recs = []*store.DecisionRecord{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
