// Command import_csv loads draw result sheets exported as CSV into the configured MongoDB.
//
//	go run ./cmd/scripts [-date 2024-05-01] [-slot Morning] results.csv...
//
// Date and slot flags apply to files that do not carry their own Date/Draw lines.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ArowuTest/ticket-ledger/internal/config"
	"github.com/ArowuTest/ticket-ledger/internal/logger"
	mongorepo "github.com/ArowuTest/ticket-ledger/internal/repositories/mongodb"
	"github.com/ArowuTest/ticket-ledger/internal/services"
	"github.com/ArowuTest/ticket-ledger/pkg/mongodb"
)

func main() {
	date := flag.String("date", "", "draw date (YYYY-MM-DD) for files without a Date line")
	slot := flag.String("slot", "", "draw slot (Morning, Noon, Evening or 1PM, 6PM, 8PM) for files without a Draw line")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if flag.NArg() == 0 {
		log.Fatal("At least one CSV file path is required")
	}
	if cfg.Storage.Driver != config.StorageMongo {
		log.Fatalf("Import needs the %s storage driver, configured driver is %q", config.StorageMongo, cfg.Storage.Driver)
	}

	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB.Database)
	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
	resultService := services.NewResultService(mongorepo.NewResultRepository(db))

	failed := 0
	for _, path := range flag.Args() {
		if err := importFile(ctx, resultService, path, *date, *slot); err != nil {
			log.WithFields(log.Fields{"file": path, "error": err}).Error("Import failed")
			failed++
		}
	}
	log.WithFields(log.Fields{"files": flag.NArg(), "failed": failed}).Info("Import finished")
	if failed > 0 {
		_ = client.Disconnect(context.Background())
		os.Exit(1)
	}
}

func importFile(ctx context.Context, resultService services.ResultService, path, date, slot string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	result, err := resultService.ImportCSV(ctx, f, date, slot)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"file": path,
		"date": result.Date,
		"slot": result.Slot,
	}).Info("Result imported")
	return nil
}
