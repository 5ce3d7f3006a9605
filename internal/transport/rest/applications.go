package rest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iciso/iciso-z6/internal/domain"
	"github.com/iciso/iciso-z6/internal/metrics"
	"github.com/iciso/iciso-z6/internal/service/applications"
	"github.com/iciso/iciso-z6/internal/service/intake"
)

// Messages shown to applicants.
const (
	SubmitSuccessMessage = "Application submitted successfully! Thank you for your interest in volunteering."
	SubmitFailureMessage = "Failed to submit application. Please try again."
)

type intakeService interface {
	Submit(ctx context.Context, in intake.SubmitInput) (domain.Application, error)
}

type applicationsService interface {
	List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error)
	ExportCSV(ctx context.Context, w io.Writer) (int, error)
	Summary(ctx context.Context) (applications.Summary, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Application, error)
}

type submissionRecorder interface {
	Submission(outcome string)
}

type noopRecorder struct{}

func (noopRecorder) Submission(string) {}

// ApplicationHandler serves the public submission endpoint and the admin
// views over submitted applications.
type ApplicationHandler struct {
	intake   intakeService
	apps     applicationsService
	recorder submissionRecorder
	now      func() time.Time
	log      *slog.Logger
}

// NewApplicationHandler creates an ApplicationHandler. recorder may be nil.
func NewApplicationHandler(intake intakeService, apps applicationsService, recorder submissionRecorder, logger *slog.Logger) *ApplicationHandler {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &ApplicationHandler{
		intake:   intake,
		apps:     apps,
		recorder: recorder,
		now:      time.Now,
		log:      logger.With("handler", "applications"),
	}
}

type submitRequest struct {
	ApplicantName    string `json:"applicantName"`
	ApplicantEmail   string `json:"applicantEmail"`
	OrganizationName string `json:"organizationName"`
	OpportunityTitle string `json:"opportunityTitle"`
	OpportunityType  string `json:"opportunityType"`
	Location         string `json:"location"`
	FocusArea        string `json:"focusArea"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	Duration         string `json:"duration"`
}

type submitResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID string `json:"applicationId"`
}

// Submit handles POST /api/applications.
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.recorder.Submission(metrics.OutcomeInvalid)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	app, err := h.intake.Submit(r.Context(), intake.SubmitInput{
		ApplicantName:    req.ApplicantName,
		ApplicantEmail:   req.ApplicantEmail,
		OrganizationName: req.OrganizationName,
		OpportunityTitle: req.OpportunityTitle,
		OpportunityType:  req.OpportunityType,
		Location:         req.Location,
		FocusArea:        req.FocusArea,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Duration:         req.Duration,
	})
	if err != nil {
		h.handleSubmitError(w, r, err)
		return
	}

	h.recorder.Submission(metrics.OutcomeAccepted)
	writeJSON(w, http.StatusOK, submitResponse{
		Success:       true,
		Message:       SubmitSuccessMessage,
		ApplicationID: app.ID,
	})
}

func (h *ApplicationHandler) handleSubmitError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		h.recorder.Submission(metrics.OutcomeInvalid)
		writeError(w, http.StatusBadRequest, ve.Error())
		return
	}

	h.recorder.Submission(metrics.OutcomeUnavailable)
	h.log.ErrorContext(r.Context(), "submit application", slog.String("error", err.Error()))
	status, kind := persistenceStatus(err)
	writeJSON(w, status, failure{
		Success: false,
		Message: SubmitFailureMessage,
		Error:   kind,
	})
}

type listResponse struct {
	Success      bool                 `json:"success"`
	Applications []domain.Application `json:"applications"`
	Count        int                  `json:"count"`
}

// List handles GET /api/applications?status=&search=.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ApplicationFilter{Search: q.Get("search")}
	if s := strings.TrimSpace(q.Get("status")); s != "" {
		st := domain.Status(strings.ToLower(s))
		filter.Status = &st
	}

	apps, err := h.apps.List(r.Context(), filter)
	if err != nil {
		h.handleAdminError(w, r, "list applications", err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{Success: true, Applications: apps, Count: len(apps)})
}

// Export handles GET /api/applications/export.
func (h *ApplicationHandler) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if _, err := h.apps.ExportCSV(r.Context(), &buf); err != nil {
		h.handleAdminError(w, r, "export applications", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+applications.ExportFileName(h.now())+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

type summaryResponse struct {
	Success bool                 `json:"success"`
	Summary applications.Summary `json:"summary"`
}

// Summary handles GET /api/applications/summary.
func (h *ApplicationHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.apps.Summary(r.Context())
	if err != nil {
		h.handleAdminError(w, r, "summarize applications", err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{Success: true, Summary: sum})
}

type statusRequest struct {
	Status string `json:"status"`
}

type statusResponse struct {
	Success     bool               `json:"success"`
	Application domain.Application `json:"application"`
}

// UpdateStatus handles PATCH /api/applications/{id}/status.
func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	status := domain.Status(strings.ToLower(strings.TrimSpace(req.Status)))
	app, err := h.apps.UpdateStatus(r.Context(), chi.URLParam(r, "id"), status)
	if err != nil {
		h.handleAdminError(w, r, "update application status", err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Success: true, Application: app})
}

func (h *ApplicationHandler) handleAdminError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "application not found")
	default:
		h.log.ErrorContext(r.Context(), op, slog.String("error", err.Error()))
		status, kind := persistenceStatus(err)
		writeJSON(w, status, failure{Success: false, Message: "Failed to " + op + ".", Error: kind})
	}
}

// persistenceStatus maps a store failure to an HTTP status and a coarse,
// non-sensitive error kind for the response body.
func persistenceStatus(err error) (int, string) {
	var pe *domain.PersistenceError
	if errors.As(err, &pe) && pe.Kind == domain.PersistenceUnavailable {
		return http.StatusServiceUnavailable, string(pe.Kind)
	}
	if pe != nil {
		return http.StatusInternalServerError, string(pe.Kind)
	}
	return http.StatusInternalServerError, "internal"
}
