package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/qqlabs/market-intel/internal/config"
	"github.com/qqlabs/market-intel/internal/infra/acp"
	"github.com/qqlabs/market-intel/internal/infra/dexscreener"
	"github.com/qqlabs/market-intel/internal/infra/goplus"
	"github.com/qqlabs/market-intel/internal/service"
	transport "github.com/qqlabs/market-intel/internal/transport/http"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "cfg/config.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		logger.Fatal().Err(err).Msg("config.Load")
	}

	payments := acp.NewClient(cfg.ACPAPIURL, cfg.AgentKey, cfg.OutboundTimeout)
	pairs := dexscreener.NewClient(cfg.PairSourceURL, cfg.OutboundTimeout)
	security := goplus.NewClient(cfg.SecuritySourceURL, cfg.SecurityChainID, cfg.OutboundTimeout)

	svc := service.NewAnalyzerService(payments, pairs, security, cfg.ChainID, logger)

	srv, err := transport.NewServer(svc, &cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("transport.NewServer")
	}

	if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Fatal().Err(err).Msg("srv.ListenAndServe")
	}
}
