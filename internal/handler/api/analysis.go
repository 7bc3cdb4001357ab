package api

import (
	"net/http"
	"time"

	"OptionPulse/internal/domain/models"
	domrepo "OptionPulse/internal/domain/repository"
	domsvc "OptionPulse/internal/domain/service"
	"OptionPulse/internal/services/features"
	"OptionPulse/internal/services/pricing"
	xhttp "OptionPulse/pkg/http"
	xlogger "OptionPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler exposes the decision engine over HTTP.
type AnalysisHandler struct {
	logger   *xlogger.Logger
	analyzer domsvc.Analyzer
	kernel   *pricing.Kernel
	spreads  *pricing.SpreadPricer
	sim      domsvc.Simulator
	market   domrepo.MarketData
	metrics  domrepo.Metrics
	symbol   string
}

func NewAnalysisHandler(
	logger *xlogger.Logger,
	analyzer domsvc.Analyzer,
	kernel *pricing.Kernel,
	spreads *pricing.SpreadPricer,
	sim domsvc.Simulator,
	market domrepo.MarketData,
	metrics domrepo.Metrics,
	symbol string,
) *AnalysisHandler {
	return &AnalysisHandler{
		logger:   logger,
		analyzer: analyzer,
		kernel:   kernel,
		spreads:  spreads,
		sim:      sim,
		market:   market,
		metrics:  metrics,
		symbol:   symbol,
	}
}

func (h *AnalysisHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	g := e.Group("/api")
	g.POST("/analyze", h.Analyze)
	g.POST("/price", h.Price)
	g.POST("/iv", h.ImpliedVol)
	g.POST("/simulate", h.Simulate)
	g.POST("/spread/iron-condor", h.IronCondor)
	g.POST("/spread/butterfly", h.Butterfly)
	g.GET("/analyze/sample", h.SampleAnalyze)
}

func (h *AnalysisHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Analyze runs the full pipeline. A volatility of zero falls back to the
// annualized historical volatility of the supplied bars.
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	start := time.Now()
	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	series := models.PriceSeries(req.Bars)
	vol := req.Volatility
	if vol == 0 {
		vol = features.HistoricalVolatility(series.Closes(), 365)
	}

	res, err := h.analyzer.Analyze(c.Request().Context(), series, vol, req.Capital, time.Now().UTC())
	if err != nil {
		h.metrics.RecordError("analyze")
		h.logger.Error("analyze usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
	}

	h.metrics.RecordLatency("analyze", time.Since(start).Seconds())
	h.metrics.RecordLastPrice(h.symbol, res.MarketAnalysis.CurrentPrice)
	if res.Recommendation != nil {
		h.metrics.RecordAnalysis(string(res.MarketAnalysis.Regime), string(res.Recommendation.RecommendedStrategy))
	} else {
		h.metrics.RecordAnalysis(string(res.MarketAnalysis.Regime), "none")
	}

	return xhttp.SuccessResponse(c, res)
}

// SampleAnalyze runs the pipeline against generated market data. Handy
// for smoke-testing a deployment without a feed attached.
func (h *AnalysisHandler) SampleAnalyze(c echo.Context) error {
	ctx := c.Request().Context()

	series, err := h.market.Bars(ctx, h.symbol, 100)
	if err != nil {
		h.metrics.RecordError("sample_bars")
		return xhttp.AppErrorResponse(c, xhttp.InternalErrorf("sample bars: %v", err))
	}

	vol := features.HistoricalVolatility(series.Closes(), 365)
	res, err := h.analyzer.Analyze(ctx, series, vol, 5000, time.Now().UTC())
	if err != nil {
		h.metrics.RecordError("analyze")
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) Price(c echo.Context) error {
	req := &models.PriceRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	t := req.ExpiryDays / 365
	quote := h.kernel.Quote(req.Spot, req.Strike, t, req.Rate, req.Volatility, models.OptionSide(req.Side))
	return xhttp.SuccessResponse(c, quote)
}

func (h *AnalysisHandler) ImpliedVol(c echo.Context) error {
	req := &models.ImpliedVolRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	t := req.ExpiryDays / 365
	iv := h.kernel.ImpliedVolatility(req.Spot, req.Strike, t, req.Rate, req.MarketPrice, models.OptionSide(req.Side))
	return xhttp.SuccessResponse(c, map[string]float64{"implied_volatility": iv})
}

func (h *AnalysisHandler) Simulate(c echo.Context) error {
	start := time.Now()
	req := &models.SimulateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	t := req.ExpiryDays / 365
	res, err := h.sim.Simulate(c.Request().Context(), req.Spot, req.Strike, t, req.Rate, req.Volatility,
		models.OptionSide(req.Side), req.NumPaths, seed)
	if err != nil {
		h.metrics.RecordError("simulate")
		h.logger.Error("simulation error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
	}

	h.metrics.RecordLatency("simulate", time.Since(start).Seconds())
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) IronCondor(c echo.Context) error {
	req := &models.IronCondorRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	t := req.ExpiryDays / 365
	metrics := h.spreads.IronCondor(req.Spot, req.CallShort, req.CallLong, req.PutShort, req.PutLong,
		t, req.Rate, req.Volatility)
	return xhttp.SuccessResponse(c, metrics)
}

func (h *AnalysisHandler) Butterfly(c echo.Context) error {
	req := &models.ButterflyRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	t := req.ExpiryDays / 365
	metrics := h.spreads.Butterfly(req.Spot, req.Lower, req.Middle, req.Upper,
		t, req.Rate, req.Volatility, models.OptionSide(req.Side))
	return xhttp.SuccessResponse(c, metrics)
}
