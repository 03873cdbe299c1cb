package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/oreforge/steelrank/external"
	"github.com/oreforge/steelrank/internal"
	"github.com/oreforge/steelrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner plays back a canned collaborator response.
type stubRunner struct {
	response []byte
	err      error
}

func (s *stubRunner) Run(_ context.Context, _ string, _ []byte) ([]byte, error) {
	return s.response, s.err
}

func newTestRouter(runner external.Runner) *mux.Router {
	cfg := &internal.Config{
		Quantity: internal.DefaultQuantity,
		Weights: schema.CalculationWeights{
			Cost:   internal.DefaultWeightCost,
			Carbon: internal.DefaultWeightCarbon,
			Risk:   internal.DefaultWeightRisk,
		},
	}
	handler := NewRankingHandler(cfg, external.NewForecastClient(runner), external.NewCostClient(runner))
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRankEndpoint(t *testing.T) {
	router := newTestRouter(&stubRunner{})

	rec := doJSON(t, router, http.MethodPost, "/api/rank", RankRequest{
		Suppliers: schema.DemoSuppliers(),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp RankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1000.0, resp.Quantity)
	assert.Equal(t, 3, resp.Count)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, "us-1", resp.Results[0].Supplier.ID)
	assert.Equal(t, "china-1", resp.Results[2].Supplier.ID)
}

func TestRankEndpointWeightsNormalized(t *testing.T) {
	router := newTestRouter(&stubRunner{})

	rec := doJSON(t, router, http.MethodPost, "/api/rank", RankRequest{
		Suppliers: schema.DemoSuppliers(),
		Weights:   &schema.CalculationWeights{Cost: 4, Carbon: 3, Risk: 3},
		Quantity:  500,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 500.0, resp.Quantity)
	assert.InDelta(t, 0.4, resp.Weights.Cost, 1e-9)
	assert.InDelta(t, 1.0, resp.Weights.Sum(), 1e-9)
}

func TestRankEndpointRejections(t *testing.T) {
	router := newTestRouter(&stubRunner{})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/rank", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid request body")
	})

	t.Run("unknown country", func(t *testing.T) {
		bad := schema.DemoSuppliers()
		bad[0].Country = "Atlantis"
		rec := doJSON(t, router, http.MethodPost, "/api/rank", RankRequest{Suppliers: bad})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown country")
	})

	t.Run("negative quantity", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/rank", RankRequest{
			Suppliers: schema.DemoSuppliers(),
			Quantity:  -10,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "quantity must be greater than 0")
	})

	t.Run("bad weights", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/rank", RankRequest{
			Suppliers: schema.DemoSuppliers(),
			Weights:   &schema.CalculationWeights{Cost: -1, Carbon: 1, Risk: 1},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "weights cannot be negative")
	})
}

func TestPolicyEndpoint(t *testing.T) {
	router := newTestRouter(&stubRunner{})

	t.Run("known country", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/policy/China", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var policy schema.TradePolicy
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &policy))
		assert.Equal(t, schema.CountryChina, policy.Country)
		assert.Equal(t, 50.0, policy.TariffRate)
	})

	t.Run("route forcing", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/policy/US?route=BF-BOF", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var policy schema.TradePolicy
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &policy))
		assert.Equal(t, 25.0, policy.DomesticTaxCredits)
		assert.Zero(t, policy.GreenSteelSubsidies)
	})

	t.Run("unknown country", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/policy/Atlantis", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestForecastEndpoint(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		router := newTestRouter(&stubRunner{
			response: []byte(`{"success": true, "bf_cost_per_ton": 612.5, "eaf_cost_per_ton": 498.0}`),
		})
		rec := doJSON(t, router, http.MethodPost, "/api/forecast-price", external.ForecastRequest{
			SteelRoute: schema.RouteScrapEAF,
			FutureYear: 2030,
			Country:    schema.CountryUS,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var result external.ForecastResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 612.5, result.BFCostPerTon)
	})

	t.Run("collaborator failure is a bad gateway", func(t *testing.T) {
		router := newTestRouter(&stubRunner{err: fmt.Errorf("script blew up")})
		rec := doJSON(t, router, http.MethodPost, "/api/forecast-price", external.ForecastRequest{
			SteelRoute: schema.RouteBFBOF,
			FutureYear: 2030,
			Country:    schema.CountryUS,
		})
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("invalid request", func(t *testing.T) {
		router := newTestRouter(&stubRunner{})
		rec := doJSON(t, router, http.MethodPost, "/api/forecast-price", external.ForecastRequest{
			SteelRoute: "H2-DRI",
			FutureYear: 2030,
			Country:    schema.CountryUS,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCalculateCostEndpoint(t *testing.T) {
	router := newTestRouter(&stubRunner{
		response: []byte(`{"success": true, "total_tons": 1000, "results": {"US": {"landed_per_ton": 930.0}}}`),
	})
	rec := doJSON(t, router, http.MethodPost, "/api/calculate-cost", external.CostRequest{
		BasePrices: map[schema.Country]float64{schema.CountryUS: 880},
		TotalTons:  1000,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result external.CostResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 930.0, result.Results[schema.CountryUS].LandedPerTon)
}
