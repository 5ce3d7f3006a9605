// Package application implements the application record store on PostgreSQL.
package application

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/iciso/iciso-z6/internal/adapter/postgres"
	"github.com/iciso/iciso-z6/internal/domain"
)

const (
	table  = "applications"
	entity = "application"
)

var columns = []string{
	"id", "created_at", "applicant_name", "applicant_email",
	"organization_name", "opportunity_title", "opportunity_type",
	"location", "focus_area", "start_date", "end_date", "duration", "status",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	postgres.Querier
	postgres.Beginner
	Ping(ctx context.Context) error
}

// Repo provides application persistence backed by PostgreSQL.
type Repo struct {
	db DB
	tx *postgres.TxManager
}

// New creates a new application repository.
func New(db DB) *Repo {
	return &Repo{db: db, tx: postgres.NewTxManager(db)}
}

// Append inserts one application. A single INSERT is atomic, so a failure
// leaves the table unchanged.
func (r *Repo) Append(ctx context.Context, app domain.Application) error {
	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(
			app.ID, app.Timestamp.UTC(), app.ApplicantName, app.ApplicantEmail,
			app.OrganizationName, app.OpportunityTitle, string(app.OpportunityType),
			app.Location, app.FocusArea, app.StartDate, app.EndDate, app.Duration,
			string(app.Status),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.Persistence("append application", postgres.MapError(err, entity, app.ID))
	}
	return nil
}

// ReadAll returns every application in insertion order.
func (r *Repo) ReadAll(ctx context.Context) ([]domain.Application, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.Unavailable("read applications", err)
	}
	defer rows.Close()

	apps := make([]domain.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, domain.Unavailable("read applications", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Unavailable("read applications", err)
	}
	return apps, nil
}

// UpdateStatus locks the row, sets its status and returns the updated record.
func (r *Repo) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Application, error) {
	var updated domain.Application

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)

		query, args, err := psql.Select(columns...).
			From(table).
			Where(sq.Eq{"id": id}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf("build select: %w", err)
		}

		app, err := scanApplication(q.QueryRow(ctx, query, args...))
		if err != nil {
			return postgres.MapError(err, entity, id)
		}

		query, args, err = psql.Update(table).
			Set("status", string(status)).
			Where(sq.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build update: %w", err)
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, entity, id)
		}

		app.Status = status
		updated = app
		return nil
	})
	if err != nil {
		return domain.Application{}, postgres.Persistence("update application status", err)
	}
	return updated, nil
}

// Ping checks database connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return domain.Unavailable("ping database", err)
	}
	return nil
}

func scanApplication(row pgx.Row) (domain.Application, error) {
	var (
		app       domain.Application
		createdAt time.Time
		oppType   string
		status    string
	)
	err := row.Scan(
		&app.ID, &createdAt, &app.ApplicantName, &app.ApplicantEmail,
		&app.OrganizationName, &app.OpportunityTitle, &oppType,
		&app.Location, &app.FocusArea, &app.StartDate, &app.EndDate, &app.Duration,
		&status,
	)
	if err != nil {
		return domain.Application{}, err
	}
	app.Timestamp = createdAt.UTC()
	app.OpportunityType = domain.OpportunityType(oppType)
	app.Status = domain.Status(status)
	return app, nil
}
