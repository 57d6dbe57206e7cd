package main

import (
	"context"
	"flag"
	stdlog "log"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/mediscan/mediscan/internal/adapters/catalog"
	"github.com/mediscan/mediscan/internal/infrastructure/observability"
)

// qrgen writes printable QR code images for catalog codes, so the scan flow
// can be exercised with a real camera. Decoding stays with the scanner.
func main() {
	var (
		outDir = flag.String("out", "qrcodes", "directory to write PNG files to")
		code   = flag.String("code", "", "generate a single code instead of the whole catalog")
		size   = flag.Int("size", 256, "image size in pixels")
	)
	flag.Parse()

	observability.InitLogger("mediscan-qrgen", os.Getenv("MEDISCAN_ENV"))
	logger := observability.GetLogger()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		stdlog.Fatalf("Failed to create output dir: %v", err)
	}

	codes := []string{*code}
	if *code == "" {
		records, err := catalog.NewStaticCatalog().List(context.Background())
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to list catalog")
		}
		codes = codes[:0]
		for _, rec := range records {
			codes = append(codes, rec.Code)
		}
	}

	for _, c := range codes {
		path := filepath.Join(*outDir, c+".png")
		if err := qrcode.WriteFile(c, qrcode.Medium, *size, path); err != nil {
			logger.Fatal().Err(err).Str("code", c).Msg("failed to write QR code")
		}
		logger.Info().Str("code", c).Str("path", path).Msg("wrote QR code")
	}
}
