package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/oreforge/steelrank/core"
	"github.com/oreforge/steelrank/external"
	"github.com/oreforge/steelrank/internal"
	"github.com/oreforge/steelrank/schema"
)

// RankingHandler serves the ranking endpoint and the collaborator proxies.
type RankingHandler struct {
	cfg      *internal.Config
	forecast *external.ForecastClient
	costcalc *external.CostClient
}

// NewRankingHandler builds a handler around the config and the two
// collaborator clients.
func NewRankingHandler(cfg *internal.Config, forecast *external.ForecastClient, costcalc *external.CostClient) *RankingHandler {
	return &RankingHandler{cfg: cfg, forecast: forecast, costcalc: costcalc}
}

// RegisterRoutes attaches all API routes to the router.
func (h *RankingHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/rank", h.Rank).Methods("POST")
	router.HandleFunc("/api/forecast-price", h.ForecastPrice).Methods("POST")
	router.HandleFunc("/api/calculate-cost", h.CalculateCost).Methods("POST")
	router.HandleFunc("/api/policy/{country}", h.Policy).Methods("GET")
}

// RankRequest is the /api/rank request body. Quantity and weights are
// optional and fall back to the server's configured defaults.
type RankRequest struct {
	Suppliers      []schema.Supplier          `json:"suppliers"`
	Weights        *schema.CalculationWeights `json:"weights,omitempty"`
	Quantity       float64                    `json:"quantity,omitempty"`
	Transportation *schema.Transportation     `json:"transportation,omitempty"`
}

// RankResponse is the /api/rank response body.
type RankResponse struct {
	Quantity float64                   `json:"quantity"`
	Weights  schema.CalculationWeights `json:"weights"`
	Results  []schema.SupplierResult   `json:"results"`
	Count    int                       `json:"count"`
}

// Rank validates the batch, normalizes the weights and runs the engine.
func (h *RankingHandler) Rank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	for i := range req.Suppliers {
		if err := req.Suppliers[i].Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = h.cfg.Quantity
	}
	if quantity <= 0 {
		writeError(w, http.StatusBadRequest, "quantity must be greater than 0")
		return
	}

	// Weights are normalized here, at the edge. The engine applies them
	// literally.
	weights := h.cfg.Weights
	if req.Weights != nil {
		if err := req.Weights.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		weights = req.Weights.Normalize()
	}

	fallback := req.Transportation
	if fallback == nil {
		fallback = schema.DefaultTransportation()
	}

	results, err := core.RankSuppliers(req.Suppliers, weights, quantity, fallback)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, RankResponse{
		Quantity: quantity,
		Weights:  weights,
		Results:  results,
		Count:    len(results),
	})
}

// ForecastPrice proxies to the price forecasting collaborator.
func (h *RankingHandler) ForecastPrice(w http.ResponseWriter, r *http.Request) {
	var req external.ForecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.forecast.Forecast(r.Context(), req)
	if err != nil {
		internal.Sugar.Errorw("forecast collaborator failed", "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// CalculateCost proxies to the landed-cost calculator collaborator.
func (h *RankingHandler) CalculateCost(w http.ResponseWriter, r *http.Request) {
	var req external.CostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.costcalc.Calculate(r.Context(), req)
	if err != nil {
		internal.Sugar.Errorw("cost collaborator failed", "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Policy returns the trade-policy defaults for a country. An optional route
// query parameter applies the per-route forcing rules.
func (h *RankingHandler) Policy(w http.ResponseWriter, r *http.Request) {
	country := schema.Country(mux.Vars(r)["country"])

	if route := r.URL.Query().Get("route"); route != "" {
		policy, err := schema.DefaultTradePolicy(country, schema.SteelRoute(route))
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, policy)
		return
	}

	policy, err := schema.LookupTradePolicy(country)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, policy)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
