package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iciso/iciso-z6/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedApplication inserts a pending application with unique id and applicant
// details. mutate, if non-nil, adjusts the record before insertion.
func SeedApplication(t *testing.T, pool *pgxpool.Pool, mutate func(*domain.Application)) domain.Application {
	t.Helper()

	suffix := uniqueSuffix()
	app := domain.Application{
		ID:               "app_seed_" + suffix,
		Timestamp:        time.Now().UTC().Truncate(time.Microsecond),
		ApplicantName:    "Seed Applicant " + suffix,
		ApplicantEmail:   "seed-" + suffix + "@example.com",
		OrganizationName: "Islamic Online University (IOU)",
		OpportunityTitle: "Quran Memorization Assistant",
		OpportunityType:  domain.OpportunityVolunteer,
		Status:           domain.StatusPending,
	}
	if mutate != nil {
		mutate(&app)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO applications (id, created_at, applicant_name, applicant_email,
			organization_name, opportunity_title, opportunity_type, location,
			focus_area, start_date, end_date, duration, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		app.ID, app.Timestamp, app.ApplicantName, app.ApplicantEmail,
		app.OrganizationName, app.OpportunityTitle, string(app.OpportunityType), app.Location,
		app.FocusArea, app.StartDate, app.EndDate, app.Duration, string(app.Status),
	)
	if err != nil {
		t.Fatalf("testhelper: seed application: %v", err)
	}
	return app
}
