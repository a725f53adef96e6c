package main

import (
	"os"

	"emissioni/internal/chart"
	"emissioni/internal/cli"
	"emissioni/internal/ingest"
	applog "emissioni/internal/log"
	"emissioni/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	// The input path may be given as the first argument, overriding the
	// configured default.
	inputPath := cfg.InputPath
	if len(os.Args) > 1 {
		inputPath = os.Args[1]
	}

	loader := ingest.NewLoader(logger)
	renderer := chart.NewRenderer(logger, cfg.ChartWidthIn, cfg.ChartHeightIn)
	session := services.NewSession(logger, loader, renderer)

	// Each stage reports its own failure and the run carries on; a fault is
	// terminal for that call only.
	if err := session.Load(inputPath); err != nil {
		logger.Error("Load failed", applog.FieldError, err, applog.FieldPath, inputPath)
	}

	summary, err := session.Aggregate()
	if err != nil {
		logger.Error("Aggregation failed", applog.FieldError, err)
	} else {
		if err := services.WriteSummary(os.Stdout, summary); err != nil {
			logger.Error("Summary print failed", applog.FieldError, err)
		}
	}

	if err := session.Visualize(cfg.ChartPath); err != nil {
		logger.Error("Visualization failed", applog.FieldError, err)
	}
}
