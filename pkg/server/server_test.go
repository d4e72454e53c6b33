package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zyphery/cfo-core/pkg/models/api"
	modelstore "github.com/zyphery/cfo-core/pkg/models/store"
	"github.com/zyphery/cfo-core/pkg/services/company"
	"github.com/zyphery/cfo-core/pkg/services/credit"
	"github.com/zyphery/cfo-core/pkg/services/readiness"
	"github.com/zyphery/cfo-core/pkg/services/scoring"
	"github.com/zyphery/cfo-core/pkg/services/session"
	"github.com/zyphery/cfo-core/pkg/store/duckdb"
)

type mockScoreStore struct {
	mock.Mock
}

func (m *mockScoreStore) Upsert(ctx context.Context, record modelstore.ScoreRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockScoreStore) Get(ctx context.Context, companyID string) (*modelstore.ScoreRecord, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*modelstore.ScoreRecord), args.Error(1)
}

func (m *mockScoreStore) AddHistory(
	ctx context.Context,
	companyID string,
	factors map[string]float64,
	recordedAt time.Time,
) error {
	args := m.Called(ctx, companyID, factors, recordedAt)
	return args.Error(0)
}

func (m *mockScoreStore) GetHistory(
	ctx context.Context,
	companyID string,
	limit int,
) ([]modelstore.FactorHistory, error) {
	args := m.Called(ctx, companyID, limit)
	return args.Get(0).([]modelstore.FactorHistory), args.Error(1)
}

func (m *mockScoreStore) Ranked(
	ctx context.Context,
	minScore int,
	industry string,
	limit int,
) ([]modelstore.ScoreRecord, error) {
	args := m.Called(ctx, minScore, industry, limit)
	return args.Get(0).([]modelstore.ScoreRecord), args.Error(1)
}

type mockScenarioStore struct {
	mock.Mock
}

func (m *mockScenarioStore) Add(ctx context.Context, run modelstore.ScenarioRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *mockScenarioStore) GetRuns(
	ctx context.Context,
	companyID string,
	limit int,
) ([]modelstore.ScenarioRun, error) {
	args := m.Called(ctx, companyID, limit)
	return args.Get(0).([]modelstore.ScenarioRun), args.Error(1)
}

func newTestConfig(t *testing.T) (Config, *mockScoreStore, *mockScenarioStore) {
	registry, err := company.NewRegistry(nil)
	require.NoError(t, err)

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	mockScores := new(mockScoreStore)
	mockScenarios := new(mockScenarioStore)

	return Config{
		Addr:            ":8005",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Registry:  registry,
			Sessions:  session.NewManager(registry),
			Credit:    credit.NewService(scoring.NewScorer(scoring.DefaultFactors()), mockScores, db),
			Scenarios: mockScenarios,
			Logger:    zerolog.Nop(),
		},
	}, mockScores, mockScenarios
}

func baselineSnapshot() api.FinancialSnapshot {
	return api.FinancialSnapshot{
		MRR:     45000,
		Revenue: 45000,
		Burn:    85000,
		Runway:  6.2,
		Cash:    527000,
		Growth:  12.5,
		Expenses: api.ExpenseBreakdown{
			Engineering:    45000,
			Marketing:      18000,
			Sales:          12000,
			Operations:     7000,
			Infrastructure: 3000,
		},
	}
}

func TestWebAPI_Endpoints(t *testing.T) {
	config, mockScores, mockScenarios := newTestConfig(t)
	testServer := httptest.NewServer(ConfigureRouter(config))
	defer testServer.Close()

	lastUpdated := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		path           string
		setupMocks     func()
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name:           "ListCompanies",
			path:           "/api/v1/companies",
			setupMocks:     func() {},
			expectedStatus: http.StatusOK,
			expected: []api.Company{
				{ID: "acme", Name: "Acme Analytics", Industry: "saas"},
				{ID: "bytecorp", Name: "ByteCorp Metrics", Industry: "saas"},
				{ID: "datavue", Name: "DataVue Labs", Industry: "saas"},
				{ID: "zyphery", Name: "Zyphery", Industry: "fintech"},
			},
			parseResponse: unmarshalResponse[[]api.Company](),
		},
		{
			name:           "GetBaseline",
			path:           "/api/v1/companies/zyphery/baseline",
			setupMocks:     func() {},
			expectedStatus: http.StatusOK,
			expected:       baselineSnapshot(),
			parseResponse:  unmarshalResponse[api.FinancialSnapshot](),
		},
		{
			name:           "GetBaseline_UnknownCompany",
			path:           "/api/v1/companies/globex/baseline",
			setupMocks:     func() {},
			expectedStatus: http.StatusNotFound,
			expected:       "company not found\n",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
		{
			name:           "GetCurrent_NoScenarioApplied",
			path:           "/api/v1/companies/zyphery/current",
			setupMocks:     func() {},
			expectedStatus: http.StatusOK,
			expected:       baselineSnapshot(),
			parseResponse:  unmarshalResponse[api.FinancialSnapshot](),
		},
		{
			name: "GetCreditScore",
			path: "/api/v1/companies/zyphery/credit-score",
			setupMocks: func() {
				mockScores.On("Get", mock.Anything, "zyphery").
					Return(&modelstore.ScoreRecord{
						Company:     "zyphery",
						Name:        "Zyphery",
						Industry:    "fintech",
						Score:       634,
						LastUpdated: lastUpdated,
						Breakdown: map[string]modelstore.FactorPoints{
							"revenue_growth": {Value: 0.42, Points: 104},
							"cash_runway":    {Value: 0.52, Points: 103},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: api.CreditScore{
				Company:     "zyphery",
				Score:       634,
				LastUpdated: lastUpdated,
				Breakdown: []api.FactorScore{
					{Name: "cash_runway", Value: 0.52, Points: 103},
					{Name: "revenue_growth", Value: 0.42, Points: 104},
				},
			},
			parseResponse: unmarshalResponse[api.CreditScore](),
		},
		{
			name: "GetCreditScore_NeverComputed",
			path: "/api/v1/companies/acme/credit-score",
			setupMocks: func() {
				mockScores.On("Get", mock.Anything, "acme").
					Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			expected:       "no credit score computed yet\n",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
		{
			name: "GetScoreHistory",
			path: "/api/v1/companies/zyphery/credit-score/history",
			setupMocks: func() {
				mockScores.On("GetHistory", mock.Anything, "zyphery", 20).
					Return([]modelstore.FactorHistory{
						{
							ID:         "h1",
							Company:    "zyphery",
							RecordedAt: lastUpdated,
							Factors:    map[string]float64{"revenue_growth": 0.42},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: []api.FactorHistoryEntry{
				{RecordedAt: lastUpdated, Factors: map[string]float64{"revenue_growth": 0.42}},
			},
			parseResponse: unmarshalResponse[[]api.FactorHistoryEntry](),
		},
		{
			name:           "GetScoreHistory_InvalidLimit",
			path:           "/api/v1/companies/zyphery/credit-score/history?limit=0",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expected:       "invalid 'limit' value\n",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
		{
			name: "GetScenarioRuns",
			path: "/api/v1/companies/zyphery/forecast/history",
			setupMocks: func() {
				mockScenarios.On("GetRuns", mock.Anything, "zyphery", 20).
					Return([]modelstore.ScenarioRun{
						{
							ID:             "r1",
							Company:        "zyphery",
							RequestedAt:    lastUpdated,
							SpendChangePct: 100,
							Burn:           123500,
							Runway:         527000.0 / 123500.0,
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: []api.ScenarioRun{
				{
					ID:             "r1",
					RequestedAt:    lastUpdated,
					SpendChangePct: 100,
					Burn:           123500,
					Runway:         527000.0 / 123500.0,
				},
			},
			parseResponse: unmarshalResponse[[]api.ScenarioRun](),
		},
		{
			name:           "GetFundingReadiness",
			path:           "/api/v1/companies/zyphery/funding-readiness",
			setupMocks:     func() {},
			expectedStatus: http.StatusOK,
			expected: api.FundingReadiness{
				Company: "zyphery",
				Score:   70,
				Factors: []api.ReadinessFactor{
					{Name: readiness.FactorValuation, Score: 72, Status: "good"},
					{Name: readiness.FactorGrowth, Score: 63, Status: "warning"},
					{Name: readiness.FactorCompliance, Score: 95, Status: "good"},
					{Name: readiness.FactorTeam, Score: 68, Status: "warning"},
					{Name: readiness.FactorRunway, Score: 52, Status: "warning"},
				},
				Recommendation: readiness.RecommendReady,
			},
			parseResponse: unmarshalResponse[api.FundingReadiness](),
		},
		{
			name:           "GetProfitAndLoss",
			path:           "/api/v1/companies/zyphery/pnl",
			setupMocks:     func() {},
			expectedStatus: http.StatusOK,
			expected: api.ProfitAndLoss{
				Company:         "zyphery",
				TotalRevenue:    45000,
				TotalExpenses:   85000,
				NetProfit:       -40000,
				ProfitMarginPct: -40000.0 / 45000.0 * 100,
				ExpenseBreakdown: api.ExpenseBreakdown{
					Engineering:    45000,
					Marketing:      18000,
					Sales:          12000,
					Operations:     7000,
					Infrastructure: 3000,
				},
			},
			parseResponse: unmarshalResponse[api.ProfitAndLoss](),
		},
		{
			name: "GetRankedCompanies",
			path: "/api/v1/investor/ranked?min_score=500",
			setupMocks: func() {
				mockScores.On("Ranked", mock.Anything, 500, "", 50).
					Return([]modelstore.ScoreRecord{
						{
							Company:  "bytecorp",
							Name:     "ByteCorp Metrics",
							Industry: "saas",
							Score:    812,
							Breakdown: map[string]modelstore.FactorPoints{
								scoring.FactorRevenueGrowth: {Value: 0.75, Points: 188},
							},
						},
						{
							Company:  "acme",
							Name:     "Acme Analytics",
							Industry: "saas",
							Score:    640,
							Breakdown: map[string]modelstore.FactorPoints{
								scoring.FactorRevenueGrowth: {Value: 0.62, Points: 155},
							},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: []api.RankedCompany{
				{ID: "bytecorp", Name: "ByteCorp Metrics", Industry: "saas", Score: 812, GrowthRate: 0.75},
				{ID: "acme", Name: "Acme Analytics", Industry: "saas", Score: 640, GrowthRate: 0.62},
			},
			parseResponse: unmarshalResponse[[]api.RankedCompany](),
		},
		{
			name:           "GetRankedCompanies_InvalidMinScore",
			path:           "/api/v1/investor/ranked?min_score=high",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expected:       "invalid 'min_score' value, expected a non-negative integer\n",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
		{
			name:           "GetRankedCompanies_LimitOutOfRange",
			path:           "/api/v1/investor/ranked?limit=5000",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expected:       "invalid 'limit' value\n",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			actual, err := tc.parseResponse(body)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestWebAPI_Forecast(t *testing.T) {
	config, _, mockScenarios := newTestConfig(t)
	testServer := httptest.NewServer(ConfigureRouter(config))
	defer testServer.Close()

	mockScenarios.On("Add", mock.Anything, mock.AnythingOfType("store.ScenarioRun")).
		Return(nil)

	t.Run("projects a spend increase", func(t *testing.T) {
		resp, err := http.Post(
			testServer.URL+"/api/v1/companies/zyphery/forecast",
			"application/json",
			strings.NewReader(`{"spend_change_pct": 100}`),
		)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var forecast api.Forecast
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&forecast))

		assert.Equal(t, "zyphery", forecast.Company)
		assert.Equal(t, api.ScenarioParams{SpendChangePct: 100}, forecast.Inputs)
		assert.Equal(t, baselineSnapshot(), forecast.Baseline)
		assert.Equal(t, api.FinancialSnapshot{
			MRR:     45000,
			Revenue: 45000,
			Burn:    123500,
			Runway:  527000.0 / 123500.0,
			Cash:    527000,
			Growth:  12.5,
			Expenses: api.ExpenseBreakdown{
				Engineering:    90000,
				Marketing:      36000,
				Sales:          24000,
				Operations:     14000,
				Infrastructure: 4500,
			},
		}, forecast.Projected)

		mockScenarios.AssertCalled(t, "Add", mock.Anything, mock.AnythingOfType("store.ScenarioRun"))
	})

	t.Run("current reflects the last forecast", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/companies/zyphery/current")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var current api.FinancialSnapshot
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&current))
		assert.Equal(t, 123500.0, current.Burn)
	})

	t.Run("reset restores the baseline", func(t *testing.T) {
		resp, err := http.Post(testServer.URL+"/api/v1/companies/zyphery/reset", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var snapshot api.FinancialSnapshot
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&snapshot))
		assert.Equal(t, baselineSnapshot(), snapshot)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		resp, err := http.Post(
			testServer.URL+"/api/v1/companies/zyphery/forecast",
			"application/json",
			strings.NewReader(`not json`),
		)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects a negative hiring rate", func(t *testing.T) {
		resp, err := http.Post(
			testServer.URL+"/api/v1/companies/zyphery/forecast",
			"application/json",
			strings.NewReader(`{"hiring_rate": -1}`),
		)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestWebAPI_RecalculateCreditScore(t *testing.T) {
	config, mockScores, _ := newTestConfig(t)
	testServer := httptest.NewServer(ConfigureRouter(config))
	defer testServer.Close()

	t.Run("persists and returns the new score", func(t *testing.T) {
		mockScores.On("Upsert", mock.Anything, mock.AnythingOfType("store.ScoreRecord")).
			Return(nil)
		mockScores.On("AddHistory", mock.Anything, "zyphery", mock.Anything, mock.Anything).
			Return(nil)

		resp, err := http.Post(
			testServer.URL+"/api/v1/companies/zyphery/credit-score/recalculate",
			"application/json",
			nil,
		)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var recalc api.RecalcResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&recalc))

		registry := config.Dependencies.Registry
		zyphery, err := registry.Get("zyphery")
		require.NoError(t, err)

		scorer := scoring.NewScorer(scoring.DefaultFactors())
		expected := scorer.Score(zyphery.Baseline, zyphery.Baseline)

		assert.Equal(t, "Recalculation completed", recalc.Message)
		assert.Equal(t, "zyphery", recalc.Company)
		assert.Equal(t, expected.Total, recalc.NewScore)

		mockScores.AssertCalled(t, "Upsert", mock.Anything, mock.AnythingOfType("store.ScoreRecord"))
	})

	t.Run("rejects a non integer seed", func(t *testing.T) {
		resp, err := http.Post(
			testServer.URL+"/api/v1/companies/zyphery/credit-score/recalculate?seed=soon",
			"application/json",
			nil,
		)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}
