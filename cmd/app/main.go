package main

import (
	"context"
	"log"
	"os"

	"invoiceease/internal/adapters/cli"
	"invoiceease/internal/app"
	"invoiceease/internal/export"
	"invoiceease/internal/storage"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	store, err := storage.Open(ctx)
	if err != nil {
		log.Fatalf("Unable to open storage: %v", err)
	}

	outDir := os.Getenv("EXPORT_DIR")
	if outDir == "" {
		outDir = "exports"
	}
	exporter := export.NewExporter(export.TextRenderer{}, outDir)

	svc := app.NewAppService(store, exporter, logger)
	cli.Run(ctx, svc, os.Args[1:])
}
