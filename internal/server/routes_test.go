package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/middleware"
	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/models"
	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/portfolio"
	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/services"
	"github.com/gin-gonic/gin"
)

type fakeCoinGecko struct {
	historyCalls atomic.Int32
}

func (f *fakeCoinGecko) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/coins/markets":
		w.Write([]byte(`[
		  {"id":"bitcoin","symbol":"btc","current_price":3000000,"market_cap":5.9e13,"total_volume":2.1e12,"last_updated":"2024-05-01T12:00:00.000Z"},
		  {"id":"ethereum","symbol":"eth","current_price":200000,"market_cap":3e13,"total_volume":1e12,"last_updated":"2024-05-01T12:00:00.000Z"}
		]`))
	case "/coins/bitcoin/market_chart":
		f.historyCalls.Add(1)
		w.Write([]byte(`{"prices":[[1,2900000],[2,2950000],[3,3000000]]}`))
	case "/coins/dogecoin/market_chart":
		f.historyCalls.Add(1)
		w.Write([]byte(`{"prices":[[1,10.5],[2,11]]}`))
	default:
		f.historyCalls.Add(1)
		http.Error(w, `{"error":"unavailable"}`, http.StatusBadGateway)
	}
}

func setupRouter(t *testing.T) (*gin.Engine, *fakeCoinGecko) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fake := &fakeCoinGecko{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client := services.NewCoinGeckoClient(srv.URL, "inr", 2*time.Second)
	store := services.NewSnapshotStore(client, 10, 2*time.Second)
	if err := store.Reload(context.Background()); err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	dashboard := portfolio.NewDashboard(store, services.NewHistoricalFetcher(client, 15), "inr", 15)
	middleware.InitDashboard(store, dashboard, middleware.PageSettings{Currency: "inr", HistoryDays: 15})

	return NewRouter([]string{"http://localhost:3000"}), fake
}

func postDashboard(t *testing.T, router *gin.Engine, body string) models.DashboardOutput {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/dashboard", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", resp.Code, resp.Body.String())
	}

	var out models.DashboardOutput
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	return out
}

func TestDashboardEndpointValuesPortfolio(t *testing.T) {
	router, _ := setupRouter(t)

	out := postDashboard(t, router, `{"portfolio":"bitcoin:0.5","n_clicks":1}`)

	if out.Summary != "Total Portfolio Value: ₹1,500,000.00" {
		t.Fatalf("unexpected summary: %q", out.Summary)
	}
	if len(out.PieChart.Data) != 1 || out.PieChart.Data[0].Labels[0] != "Bitcoin" {
		t.Fatalf("unexpected pie chart: %+v", out.PieChart)
	}
	if len(out.LineChart.Data) != 1 || len(out.LineChart.Data[0].Y) != 3 {
		t.Fatalf("unexpected line chart: %+v", out.LineChart)
	}
}

func TestDashboardEndpointUnmatchedAsset(t *testing.T) {
	router, fake := setupRouter(t)

	out := postDashboard(t, router, `{"portfolio":"dogecoin:10","n_clicks":1}`)

	if out.Summary != "Total Portfolio Value: ₹0.00" {
		t.Fatalf("unexpected summary: %q", out.Summary)
	}
	if !out.PieChart.IsEmpty() {
		t.Fatalf("expected empty pie chart, got %+v", out.PieChart)
	}
	if fake.historyCalls.Load() != 1 {
		t.Fatalf("expected historical fetch for dogecoin, got %d calls", fake.historyCalls.Load())
	}
	if len(out.LineChart.Data) != 1 || out.LineChart.Data[0].Name != "Dogecoin" {
		t.Fatalf("unexpected line chart: %+v", out.LineChart)
	}
}

func TestDashboardEndpointInvalidFormat(t *testing.T) {
	router, _ := setupRouter(t)

	out := postDashboard(t, router, `{"portfolio":"bitcoin 0.5","n_clicks":1}`)

	if out.Summary != models.InvalidPortfolioMessage {
		t.Fatalf("unexpected summary: %q", out.Summary)
	}
	if !out.PieChart.IsEmpty() || !out.LineChart.IsEmpty() {
		t.Fatalf("expected empty charts: %+v", out)
	}
}

func TestDashboardEndpointNoOp(t *testing.T) {
	router, fake := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/dashboard", strings.NewReader(`{"portfolio":"","n_clicks":0}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != `{"summary":"","pie_chart":{},"line_chart":{}}` {
		t.Fatalf("unexpected no-op body: %s", got)
	}
	if fake.historyCalls.Load() != 0 {
		t.Fatalf("no-op must not fetch history")
	}
}

func TestDashboardEndpointHistoricalFailureHidden(t *testing.T) {
	router, _ := setupRouter(t)

	out := postDashboard(t, router, `{"portfolio":"bitcoin:1, ethereum:2","n_clicks":4}`)

	if out.Summary != "Total Portfolio Value: ₹3,400,000.00" {
		t.Fatalf("unexpected summary: %q", out.Summary)
	}
	if len(out.PieChart.Data[0].Labels) != 2 {
		t.Fatalf("expected two slices, got %+v", out.PieChart)
	}
	if len(out.LineChart.Data) != 1 || out.LineChart.Data[0].Name != "Bitcoin" {
		t.Fatalf("expected only the bitcoin series, got %+v", out.LineChart)
	}
}

func TestDashboardEndpointBadBody(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/dashboard", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestSnapshotAndHealthEndpoints(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/snapshot", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var snapshot models.MarketSnapshot
	if err := json.Unmarshal(resp.Body.Bytes(), &snapshot); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if len(snapshot.Coins) != 2 || snapshot.Coins[0].ID != "bitcoin" || snapshot.Currency != "inr" {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), `"snapshot_size":2`) {
		t.Fatalf("unexpected health response: %d %s", resp.Code, resp.Body.String())
	}
}

func TestIndexPage(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, want := range []string{"portfolio-input", "submit-button", "Prices in INR"} {
		if !strings.Contains(body, want) {
			t.Fatalf("index page missing %q", want)
		}
	}
}
