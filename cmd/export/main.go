// Command export writes every stored application to
// <dir>/applications-export-<unix-millis>.csv. The directory defaults to
// storage.export_dir and can be overridden with -dir. An empty store is
// reported and no file is written.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/iciso/iciso-z6/internal/app"
	"github.com/iciso/iciso-z6/internal/config"
	"github.com/iciso/iciso-z6/internal/service/applications"
)

func main() {
	dir := flag.String("dir", "", "output directory (default: storage.export_dir)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store, closeStore, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("open record store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	outDir := cfg.Storage.ExportDir
	if *dir != "" {
		outDir = *dir
	}

	svc := applications.NewService(logger, store)
	if err := runExport(ctx, svc, outDir, os.Stdout); err != nil {
		logger.Error("export failed", slog.String("error", err.Error()))
		closeStore()
		os.Exit(1)
	}
}

type fileExporter interface {
	ExportFile(ctx context.Context, dir string) (string, int, error)
}

func runExport(ctx context.Context, svc fileExporter, dir string, out io.Writer) error {
	path, n, err := svc.ExportFile(ctx, dir)
	if errors.Is(err, applications.ErrNothingToExport) {
		_, err = fmt.Fprintln(out, "No applications to export.")
		return err
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Exported %d applications to: %s\n", n, path)
	return err
}
