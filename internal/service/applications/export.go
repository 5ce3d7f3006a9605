package applications

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/iciso/iciso-z6/internal/domain"
)

// TimestampLayout renders creation instants in exports: ISO 8601 in UTC
// with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrNothingToExport is returned by ExportFile when the store holds no
// applications. No file is written in that case.
var ErrNothingToExport = errors.New("no applications to export")

// CSVHeader is the fixed first row of every export.
var CSVHeader = []string{
	"ID", "Timestamp", "Applicant Name", "Email", "Organization", "Opportunity",
	"Type", "Location", "Focus Area", "Start Date", "End Date", "Duration", "Status",
}

// ExportCSV writes every application in store order as CSV. Fields holding
// delimiters, quotes or newlines are quoted so the export parses back
// losslessly.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	apps, err := s.store.ReadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("export applications: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}
	for _, app := range apps {
		if err := cw.Write(csvRow(app)); err != nil {
			return 0, fmt.Errorf("write csv row %s: %w", app.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flush csv: %w", err)
	}

	s.log.InfoContext(ctx, "applications exported", slog.Int("count", len(apps)))
	return len(apps), nil
}

// ExportFile writes the CSV export to dir/applications-export-<unix-millis>.csv
// and returns the path and row count. An empty store yields ErrNothingToExport.
func (s *Service) ExportFile(ctx context.Context, dir string) (string, int, error) {
	var buf bytes.Buffer
	n, err := s.ExportCSV(ctx, &buf)
	if err != nil {
		return "", 0, err
	}
	if n == 0 {
		return "", 0, ErrNothingToExport
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, ExportFileName(s.now()))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", 0, fmt.Errorf("write export file: %w", err)
	}
	return path, n, nil
}

// ExportFileName names an export produced at t.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("applications-export-%d.csv", t.UnixMilli())
}

func csvRow(app domain.Application) []string {
	return []string{
		app.ID,
		app.Timestamp.UTC().Format(TimestampLayout),
		app.ApplicantName,
		app.ApplicantEmail,
		app.OrganizationName,
		app.OpportunityTitle,
		app.OpportunityType.String(),
		app.Location,
		app.FocusArea,
		app.StartDate,
		app.EndDate,
		app.Duration,
		app.Status.String(),
	}
}
