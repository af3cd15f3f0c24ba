package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/service"
)

// mockMarketServiceRouter implements service.MarketService for testing router wiring
type mockMarketServiceRouter struct {
	hist *service.History
}

func (m *mockMarketServiceRouter) GetHistory(_ context.Context, _, _, _, _ string) (*service.History, error) {
	return m.hist, nil
}
func (m *mockMarketServiceRouter) GetInsights(_ context.Context, _, _, _, _ string) (*service.Insights, error) {
	return &service.Insights{History: *m.hist, Stats: &models.Analytics{}}, nil
}
func (m *mockMarketServiceRouter) GetQuote(_ context.Context, symbol string) (*models.Quote, error) {
	return &models.Quote{Symbol: symbol}, nil
}
func (m *mockMarketServiceRouter) GetProfile(_ context.Context, symbol string) (*models.CompanyProfile, error) {
	return &models.CompanyProfile{Symbol: symbol}, nil
}

var _ service.MarketService = (*mockMarketServiceRouter)(nil)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	window, _ := models.NewDateRange("2023-01-01", "2023-01-31", "1d")
	svc := &mockMarketServiceRouter{hist: &service.History{
		Symbol: "AAPL",
		Window: window,
		Series: models.PriceSeries{
			{Date: time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC), Close: 10.5},
		},
	}}
	h := NewHandler(svc)
	r := NewRouter(h)

	// Hit the historical route through the router created by NewRouter
	body := `{"symbol":"AAPL","start_date":"2023-01-01","end_date":"2023-01-31"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/historical-data", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body=%s)", w.Code, w.Body.String())
	}

	// Ensure RequestID middleware injected header
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	// Ensure JSON body has the expected fields
	var out struct {
		Symbol string `json:"symbol"`
		Bars   []any  `json:"bars"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Symbol != "AAPL" || len(out.Bars) != 1 {
		t.Fatalf("unexpected body: %+v", out)
	}

	// GET endpoints are wired too
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/api/v1/stock-data/AAPL", nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("stock-data expected 200, got %d", w2.Code)
	}
}
