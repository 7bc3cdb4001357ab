package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"OptionPulse/internal/data"
	"OptionPulse/internal/services/montecarlo"
	"OptionPulse/internal/services/pricing"
	"OptionPulse/internal/services/regime"
	"OptionPulse/internal/services/strategy"
	"OptionPulse/internal/usecase"
	xlogger "OptionPulse/pkg/logger"
)

type noopMetrics struct{}

func (noopMetrics) RecordAnalysis(regime, strategy string)       {}
func (noopMetrics) RecordError(errType string)                   {}
func (noopMetrics) RecordLastPrice(symbol string, price float64) {}
func (noopMetrics) RecordLatency(operation string, secs float64) {}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	log, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	kernel := pricing.NewKernel(0.05)
	h := NewAnalysisHandler(
		log,
		usecase.NewAnalyzer(regime.NewClassifier(), strategy.NewSelector()),
		kernel,
		pricing.NewSpreadPricer(kernel),
		montecarlo.NewEngine(2),
		data.NewSyntheticProvider(50000, 42),
		noopMetrics{},
		"BTCUSDT",
	)

	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return env
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestPriceEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/price",
		`{"spot":50000,"strike":52000,"expiry_days":30,"volatility":0.8,"side":"call"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	env := decode(t, rec)
	if env.Status != http.StatusOK {
		t.Fatalf("envelope status = %d", env.Status)
	}

	var quote struct {
		Price          float64 `json:"price"`
		ProbabilityITM float64 `json:"probability_itm"`
		BreakEven      float64 `json:"break_even"`
	}
	if err := json.Unmarshal(env.Data, &quote); err != nil {
		t.Fatalf("decode quote: %v", err)
	}
	if quote.Price <= 0 {
		t.Fatalf("price = %v, want positive", quote.Price)
	}
	if quote.BreakEven != 52000+quote.Price {
		t.Fatalf("break even = %v", quote.BreakEven)
	}
}

func TestPriceEndpointRejectsBadSide(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/price",
		`{"spot":50000,"strike":52000,"expiry_days":30,"volatility":0.8,"side":"strangle"}`)
	env := decode(t, rec)
	if env.Status != http.StatusBadRequest {
		t.Fatalf("envelope status = %d, want 400", env.Status)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	e := newTestServer(t)

	var bars []string
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		c := 49900.0
		if i%2 == 1 {
			c = 50100
		}
		bars = append(bars, fmt.Sprintf(
			`{"timestamp":%q,"open":%g,"high":%g,"low":%g,"close":%g,"volume":1000}`,
			base.AddDate(0, 0, i).Format(time.RFC3339), c, c+150, c-150, c))
	}
	body := fmt.Sprintf(`{"bars":[%s],"volatility":0.7,"capital":5000}`, strings.Join(bars, ","))

	rec := doJSON(e, http.MethodPost, "/api/analyze", body)
	env := decode(t, rec)
	if env.Status != http.StatusOK {
		t.Fatalf("envelope status = %d, body = %s", env.Status, rec.Body.String())
	}

	var res struct {
		MarketAnalysis struct {
			Regime string `json:"regime"`
		} `json:"market_analysis"`
		Recommendation struct {
			RecommendedStrategy string `json:"recommended_strategy"`
		} `json:"strategy_recommendation"`
	}
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if res.MarketAnalysis.Regime != "ranging" {
		t.Fatalf("regime = %s", res.MarketAnalysis.Regime)
	}
	if res.Recommendation.RecommendedStrategy != "iron_condor" {
		t.Fatalf("strategy = %s", res.Recommendation.RecommendedStrategy)
	}
}

func TestAnalyzeEndpointRequiresBars(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/analyze", `{"volatility":0.7,"capital":5000}`)
	env := decode(t, rec)
	if env.Status != http.StatusBadRequest {
		t.Fatalf("envelope status = %d, want 400", env.Status)
	}
}

func TestSimulateEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/simulate",
		`{"spot":50000,"strike":52000,"expiry_days":30,"volatility":0.8,"side":"call","num_paths":2000,"seed":42}`)
	env := decode(t, rec)
	if env.Status != http.StatusOK {
		t.Fatalf("envelope status = %d, body = %s", env.Status, rec.Body.String())
	}

	var res struct {
		Price    float64 `json:"price"`
		NumPaths int     `json:"num_paths"`
	}
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if res.Price <= 0 || res.NumPaths != 2000 {
		t.Fatalf("result = %+v", res)
	}
}

func TestSpreadEndpoints(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/spread/iron-condor",
		`{"spot":50000,"call_short_strike":55000,"call_long_strike":57500,
		  "put_short_strike":45000,"put_long_strike":42500,
		  "expiry_days":30,"volatility":0.8}`)
	env := decode(t, rec)
	if env.Status != http.StatusOK {
		t.Fatalf("iron condor status = %d, body = %s", env.Status, rec.Body.String())
	}

	rec = doJSON(e, http.MethodPost, "/api/spread/butterfly",
		`{"spot":50000,"lower_strike":47500,"middle_strike":50000,"upper_strike":52500,
		  "expiry_days":30,"volatility":0.8,"side":"call"}`)
	env = decode(t, rec)
	if env.Status != http.StatusOK {
		t.Fatalf("butterfly status = %d, body = %s", env.Status, rec.Body.String())
	}

	var bf struct {
		ProbabilityOfProfit float64 `json:"probability_of_profit"`
	}
	if err := json.Unmarshal(env.Data, &bf); err != nil {
		t.Fatalf("decode butterfly: %v", err)
	}
	if bf.ProbabilityOfProfit != 0.5 {
		t.Fatalf("butterfly pop = %v, want 0.5", bf.ProbabilityOfProfit)
	}
}

func TestSampleAnalyzeEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/analyze/sample", "")
	env := decode(t, rec)
	if env.Status != http.StatusOK {
		t.Fatalf("envelope status = %d, body = %s", env.Status, rec.Body.String())
	}
	if !strings.Contains(string(env.Data), "market_analysis") {
		t.Fatalf("data = %s", env.Data)
	}
}
