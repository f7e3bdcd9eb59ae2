package main

import (
	"os"

	"github.com/riskibarqy/afcon-dashboard/internal/config"
	"github.com/riskibarqy/afcon-dashboard/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSONTo(os.Stderr, cfg.LogLevel)
	if err := newRootCmd(cfg, logger).Execute(); err != nil {
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
