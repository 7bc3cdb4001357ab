package di

import (
	"fmt"

	"OptionPulse/internal/data"
	"OptionPulse/internal/domain/repository"
	domsvc "OptionPulse/internal/domain/service"
	"OptionPulse/internal/handler/api"
	"OptionPulse/internal/services/montecarlo"
	"OptionPulse/internal/services/pricing"
	"OptionPulse/internal/services/regime"
	"OptionPulse/internal/services/strategy"
	"OptionPulse/internal/usecase"
	"OptionPulse/pkg/config"
	xhttp "OptionPulse/pkg/http"
	"OptionPulse/pkg/logger"
	"OptionPulse/pkg/metrics"
	"OptionPulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideMarketData creates the synthetic market data provider.
func ProvideMarketData(cfg *config.Config) repository.MarketData {
	return data.NewSyntheticProvider(cfg.Market.BasePrice, cfg.MonteCarlo.Seed)
}

// ProvidePricingKernel creates the option pricing kernel.
func ProvidePricingKernel(cfg *config.Config) *pricing.Kernel {
	return pricing.NewKernel(cfg.Pricing.RiskFreeRate)
}

// ProvideSpreadPricer creates the multi-leg spread pricer.
func ProvideSpreadPricer(kernel *pricing.Kernel) *pricing.SpreadPricer {
	return pricing.NewSpreadPricer(kernel)
}

// ProvideMonteCarloEngine creates the path simulation engine.
func ProvideMonteCarloEngine(cfg *config.Config) domsvc.Simulator {
	return montecarlo.NewEngine(cfg.MonteCarlo.Workers)
}

// ProvideRegimeClassifier creates the market regime classifier.
func ProvideRegimeClassifier() domsvc.RegimeClassifier {
	return regime.NewClassifier()
}

// ProvideStrategySelector creates the strategy selector.
func ProvideStrategySelector() domsvc.StrategySelector {
	return strategy.NewSelector()
}

// ProvideAnalyzer creates the analysis orchestrator.
func ProvideAnalyzer(classifier domsvc.RegimeClassifier, selector domsvc.StrategySelector) domsvc.Analyzer {
	return usecase.NewAnalyzer(classifier, selector)
}

// ProvideAnalysisHandler creates the HTTP handler for the engine.
func ProvideAnalysisHandler(
	cfg *config.Config,
	l *logger.Logger,
	analyzer domsvc.Analyzer,
	kernel *pricing.Kernel,
	spreads *pricing.SpreadPricer,
	sim domsvc.Simulator,
	market repository.MarketData,
	m repository.Metrics,
) xhttp.Handler {
	return api.NewAnalysisHandler(l, analyzer, kernel, spreads, sim, market, m, cfg.Market.Symbol)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *logger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, l, handler)
}
