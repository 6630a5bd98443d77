package main

import (
	"log"

	"github.com/collectorlens/collectorlens/internal/analysis"
	"github.com/collectorlens/collectorlens/internal/config"
	"github.com/collectorlens/collectorlens/internal/logging"
	"github.com/collectorlens/collectorlens/internal/service"
	openaivision "github.com/collectorlens/collectorlens/internal/vision/openai"
	"github.com/collectorlens/collectorlens/internal/web"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	if cfg.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set; analysis requests will fail")
	}

	analyzer := openaivision.NewAnalyzer(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	logger.Info("using OpenAI vision backend", "model", cfg.OpenAIModel)

	svc := service.NewAnalysisService(analyzer, analysis.ROIConfig{
		FeeRate:         cfg.EbayFeeRate,
		GradingAllInUSD: cfg.GradingAllInUSD,
	}, logger)
	server := web.NewServer(svc, cfg, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
