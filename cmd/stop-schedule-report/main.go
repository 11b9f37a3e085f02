package main

import (
	"flag"
	"os"

	lib "github.com/theoremus-urban-solutions/stop-schedule-report"
	"github.com/theoremus-urban-solutions/stop-schedule-report/config"
	"github.com/theoremus-urban-solutions/stop-schedule-report/internal"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default: ./config.yml when present)")
	input := flag.String("input", "", "stop-schedule snapshot, plain or gzipped JSON (overrides config)")
	logLevel := flag.String("log-level", "", "debug|info|warn|error (overrides config)")
	logFormat := flag.String("log-format", "", "text|json (overrides config)")
	flag.Parse()

	if err := lib.LoadAppConfig(*configPath, func(cfg *config.AppConfig) {
		if *input != "" {
			cfg.Input.Path = *input
		}
		if *logLevel != "" {
			cfg.Logging.Level = *logLevel
		}
		if *logFormat != "" {
			cfg.Logging.Format = *logFormat
		}
	}); err != nil {
		panic(err)
	}

	logger := lib.InitLogging(os.Stderr, lib.Config.Logging)

	if err := lib.NewReporter(lib.Config, logger).Run(os.Stdout); err != nil {
		internal.LogError(logger, "report failed", err)
		panic(err)
	}
}
