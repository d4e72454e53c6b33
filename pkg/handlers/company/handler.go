package company

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/zyphery/cfo-core/pkg/adapters"
	"github.com/zyphery/cfo-core/pkg/models/api"
	modelstore "github.com/zyphery/cfo-core/pkg/models/store"
	"github.com/zyphery/cfo-core/pkg/services/company"
	"github.com/zyphery/cfo-core/pkg/services/credit"
	"github.com/zyphery/cfo-core/pkg/services/readiness"
	"github.com/zyphery/cfo-core/pkg/services/session"
	"github.com/zyphery/cfo-core/pkg/store/duckdb/scenarios"
)

const (
	defaultRankLimit = 50
	maxRankLimit     = 200

	defaultHistoryLimit = 20
	maxHistoryLimit     = 200
)

type Handler struct {
	registry  *company.Registry
	sessions  *session.Manager
	credit    *credit.Service
	scenarios scenarios.Store
}

func NewHandler(
	registry *company.Registry,
	sessions *session.Manager,
	creditSvc *credit.Service,
	scenarioStore scenarios.Store,
) *Handler {
	return &Handler{
		registry:  registry,
		sessions:  sessions,
		credit:    creditSvc,
		scenarios: scenarioStore,
	}
}

func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	response := make([]api.Company, 0)
	for _, c := range h.registry.List() {
		response = append(response, adapters.MapCompanyDomainToApi(c))
	}
	writeJSON(r.Context(), w, response)
}

func (h *Handler) GetBaseline(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(r.Context(), w, adapters.MapSnapshotDomainToApi(s.Baseline()))
}

func (h *Handler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(r.Context(), w, adapters.MapSnapshotDomainToApi(s.Current()))
}

func (h *Handler) Forecast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var body api.ScenarioParams
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	params := adapters.MapParamsApiToDomain(body)
	projected, err := s.Project(params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	run := modelstore.ScenarioRun{
		Company:          s.Company().ID,
		RequestedAt:      time.Now().UTC(),
		SpendChangePct:   params.SpendChangePct,
		HiringRate:       params.HiringRate,
		RevenueGrowthPct: params.RevenueGrowthPct,
		Burn:             projected.Burn,
		Runway:           projected.Runway,
	}
	if err := h.scenarios.Add(ctx, run); err != nil {
		logger.Error().
			Err(err).
			Str("company", s.Company().ID).
			Msg("failed to record scenario run")
	}

	writeJSON(ctx, w, api.Forecast{
		Company:   s.Company().ID,
		Inputs:    body,
		Baseline:  adapters.MapSnapshotDomainToApi(s.Baseline()),
		Projected: adapters.MapSnapshotDomainToApi(projected),
	})
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Reset()
	writeJSON(r.Context(), w, adapters.MapSnapshotDomainToApi(s.Baseline()))
}

func (h *Handler) GetCreditScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "company")

	if _, err := h.registry.Get(id); err != nil {
		http.Error(w, "company not found", http.StatusNotFound)
		return
	}

	record, err := h.credit.Latest(ctx, id)
	if err != nil {
		http.Error(w, "failed to load credit score", http.StatusInternalServerError)
		return
	}
	if record == nil {
		http.Error(w, "no credit score computed yet", http.StatusNotFound)
		return
	}
	writeJSON(ctx, w, adapters.MapScoreRecordStoreToApi(*record))
}

func (h *Handler) RecalculateCreditScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var seed *int64
	if raw := r.URL.Query().Get("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid 'seed' value, expected an integer", http.StatusBadRequest)
			return
		}
		seed = &parsed
	}

	score, err := h.credit.Recalculate(ctx, s.Company(), s.Current(), seed)
	if err != nil {
		logger.Error().
			Err(err).
			Str("company", s.Company().ID).
			Msg("credit score recalculation failed")
		http.Error(w, "recalculation failed", http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, api.RecalcResponse{
		Message:  "Recalculation completed",
		Company:  s.Company().ID,
		NewScore: score.Total,
	})
}

func (h *Handler) GetScoreHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "company")

	if _, err := h.registry.Get(id); err != nil {
		http.Error(w, "company not found", http.StatusNotFound)
		return
	}

	limit, ok := historyLimit(w, r)
	if !ok {
		return
	}

	entries, err := h.credit.History(ctx, id, limit)
	if err != nil {
		http.Error(w, "failed to load score history", http.StatusInternalServerError)
		return
	}

	response := make([]api.FactorHistoryEntry, 0, len(entries))
	for _, entry := range entries {
		response = append(response, adapters.MapFactorHistoryStoreToApi(entry))
	}
	writeJSON(ctx, w, response)
}

func (h *Handler) GetScenarioRuns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "company")

	if _, err := h.registry.Get(id); err != nil {
		http.Error(w, "company not found", http.StatusNotFound)
		return
	}

	limit, ok := historyLimit(w, r)
	if !ok {
		return
	}

	runs, err := h.scenarios.GetRuns(ctx, id, limit)
	if err != nil {
		http.Error(w, "failed to load scenario runs", http.StatusInternalServerError)
		return
	}

	response := make([]api.ScenarioRun, 0, len(runs))
	for _, run := range runs {
		response = append(response, adapters.MapScenarioRunStoreToApi(run))
	}
	writeJSON(ctx, w, response)
}

func (h *Handler) GetFundingReadiness(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	assessment := readiness.Assess(s.Current())
	writeJSON(r.Context(), w, adapters.MapReadinessDomainToApi(s.Company().ID, assessment))
}

func (h *Handler) GetProfitAndLoss(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(r.Context(), w, adapters.MapSnapshotToProfitAndLoss(s.Company().ID, s.Current()))
}

func (h *Handler) GetRankedCompanies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	minScore := 0
	if raw := r.URL.Query().Get("min_score"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "invalid 'min_score' value, expected a non-negative integer", http.StatusBadRequest)
			return
		}
		minScore = parsed
	}

	limit := defaultRankLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxRankLimit {
			http.Error(w, "invalid 'limit' value", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	ranked, err := h.credit.Ranked(ctx, minScore, r.URL.Query().Get("industry"), limit)
	if err != nil {
		http.Error(w, "failed to load ranking", http.StatusInternalServerError)
		return
	}

	response := make([]api.RankedCompany, 0, len(ranked))
	for _, c := range ranked {
		response = append(response, adapters.MapRankedCompanyDomainToApi(c))
	}
	writeJSON(ctx, w, response)
}

// historyLimit parses the optional 'limit' query parameter for history
// endpoints, writing a 400 on out-of-range values.
func historyLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxHistoryLimit {
			http.Error(w, "invalid 'limit' value", http.StatusBadRequest)
			return 0, false
		}
		limit = parsed
	}
	return limit, true
}

// session resolves the {company} URL param to its scenario session, writing
// a 404 when the company is unknown.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "company")
	s, err := h.sessions.Get(id)
	if err != nil {
		if errors.Is(err, company.ErrUnknownCompany) {
			http.Error(w, "company not found", http.StatusNotFound)
			return nil, false
		}
		http.Error(w, "failed to open session", http.StatusInternalServerError)
		return nil, false
	}
	return s, true
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v interface{}) {
	logger := zerolog.Ctx(ctx)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode response")
	}
}
