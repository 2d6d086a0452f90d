package main

import (
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/ruralpay/settlement-engine/internal/config"
	"github.com/ruralpay/settlement-engine/internal/ingest"
	"github.com/ruralpay/settlement-engine/internal/report"
	"github.com/ruralpay/settlement-engine/internal/services"
	"github.com/ruralpay/settlement-engine/internal/store"
)

func main() {
	// Initialize config
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.BindEnv("engine.input", "ENGINE_INPUT")
	viper.BindEnv("engine.read_buffer", "ENGINE_READ_BUFFER")
	viper.BindEnv("report.precision", "REPORT_PRECISION")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
	}

	cfg := config.LoadEngineConfig()

	// A path on the command line takes precedence over config.
	if len(os.Args) > 1 {
		cfg.InputPath = os.Args[1]
	}
	if cfg.InputPath == "" {
		log.Fatal("[ENGINE] no input file given")
	}

	input, err := os.Open(cfg.InputPath)
	if err != nil {
		log.Fatalf("[ENGINE] failed to open input: %v", err)
	}
	defer input.Close()

	accounts := store.NewAccountStore()
	ledger := store.NewLedgerStore()
	engine := services.NewEngineService(accounts, ledger)

	engine.Run(ingest.NewReader(input, cfg.ReadBufferSize))

	// Rejections go to the log; the report owns stdout.
	writer := report.NewWriter(os.Stdout, cfg.ReportPrecision)
	if err := writer.WriteAccounts(accounts.Snapshot()); err != nil {
		log.Fatalf("[ENGINE] failed to write report: %v", err)
	}
}
