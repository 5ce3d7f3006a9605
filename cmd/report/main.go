// Command report prints an administrative summary of stored applications:
// totals by status and organization, and the most recent submissions.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/iciso/iciso-z6/internal/app"
	"github.com/iciso/iciso-z6/internal/config"
	"github.com/iciso/iciso-z6/internal/service/applications"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, closeStore, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("open record store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	sum, err := applications.NewService(logger, store).Summary(ctx)
	if err != nil {
		logger.Error("build summary", slog.String("error", err.Error()))
		closeStore()
		os.Exit(1)
	}

	if err := printSummary(os.Stdout, sum); err != nil {
		logger.Error("print summary", slog.String("error", err.Error()))
		closeStore()
		os.Exit(1)
	}
}

func printSummary(out io.Writer, sum applications.Summary) error {
	if sum.Total == 0 {
		_, err := fmt.Fprintln(out, "No applications found.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "Total applications:\t%d\n\n", sum.Total)

	fmt.Fprintln(w, "STATUS\tCOUNT")
	for _, s := range sum.ByStatus {
		fmt.Fprintf(w, "%s\t%d\n", s.Status, s.Count)
	}

	fmt.Fprintln(w, "\nORGANIZATION\tCOUNT")
	for _, o := range sum.ByOrganization {
		fmt.Fprintf(w, "%s\t%d\n", o.Organization, o.Count)
	}

	fmt.Fprintln(w, "\nRECENT\tAPPLICANT\tORGANIZATION\tOPPORTUNITY\tSTATUS")
	for _, a := range sum.Recent {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			a.Timestamp.UTC().Format(applications.TimestampLayout),
			a.ApplicantName, a.OrganizationName, a.OpportunityTitle, a.Status)
	}

	return w.Flush()
}
