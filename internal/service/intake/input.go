package intake

import (
	"net/mail"
	"strings"

	"github.com/iciso/iciso-z6/internal/domain"
)

// Field names as they appear on the wire and in validation errors.
const (
	FieldApplicantName    = "applicantName"
	FieldApplicantEmail   = "applicantEmail"
	FieldOrganizationName = "organizationName"
	FieldOpportunityTitle = "opportunityTitle"
	FieldOpportunityType  = "opportunityType"
	FieldStartDate        = "startDate"
	FieldEndDate          = "endDate"
)

// SubmitInput is an application as submitted by an applicant, before
// validation. Identity, timestamp and status are never caller-supplied.
type SubmitInput struct {
	ApplicantName    string
	ApplicantEmail   string
	OrganizationName string
	OpportunityTitle string
	OpportunityType  string
	Location         string
	FocusArea        string
	StartDate        string
	EndDate          string
	Duration         string
}

// Validate checks the required fields in fixed order and reports the first
// one that is absent or blank.
func (i SubmitInput) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{FieldApplicantName, i.ApplicantName},
		{FieldApplicantEmail, i.ApplicantEmail},
		{FieldOrganizationName, i.OrganizationName},
		{FieldOpportunityTitle, i.OpportunityTitle},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return domain.NewMissingFieldError(f.name)
		}
	}
	return nil
}

// Validator turns a SubmitInput into a normalized application draft.
// It has no side effects.
type Validator struct {
	// StrictEmail additionally requires applicantEmail to parse as an
	// RFC 5322 address.
	StrictEmail bool
}

// Validate checks in and returns the normalized application with ID,
// Timestamp and Status left zero. Required-field errors come first; the
// remaining field errors are collected together.
func (v Validator) Validate(in SubmitInput) (domain.Application, error) {
	if err := in.Validate(); err != nil {
		return domain.Application{}, err
	}

	app := domain.Application{
		ApplicantName:    strings.TrimSpace(in.ApplicantName),
		ApplicantEmail:   strings.TrimSpace(in.ApplicantEmail),
		OrganizationName: strings.TrimSpace(in.OrganizationName),
		OpportunityTitle: strings.TrimSpace(in.OpportunityTitle),
		Location:         strings.TrimSpace(in.Location),
		FocusArea:        strings.TrimSpace(in.FocusArea),
		Duration:         strings.TrimSpace(in.Duration),
		OpportunityType:  domain.OpportunityVolunteer,
	}

	var errs []domain.FieldError

	if v.StrictEmail {
		if _, err := mail.ParseAddress(app.ApplicantEmail); err != nil {
			errs = append(errs, domain.FieldError{
				Field: FieldApplicantEmail, Code: domain.FieldInvalid, Message: "must be a valid email address",
			})
		}
	}

	if raw := strings.ToLower(strings.TrimSpace(in.OpportunityType)); raw != "" {
		typ := domain.OpportunityType(raw)
		if typ.IsValid() {
			app.OpportunityType = typ
		} else {
			errs = append(errs, domain.FieldError{
				Field: FieldOpportunityType, Code: domain.FieldInvalid, Message: "must be volunteer or internship",
			})
		}
	}

	start, startOK, fe := parseOptionalDate(FieldStartDate, in.StartDate)
	if fe != nil {
		errs = append(errs, *fe)
	}
	end, endOK, fe := parseOptionalDate(FieldEndDate, in.EndDate)
	if fe != nil {
		errs = append(errs, *fe)
	}
	if startOK {
		app.StartDate = start.Format(domain.DateLayout)
	}
	if endOK {
		app.EndDate = end.Format(domain.DateLayout)
	}
	if startOK && endOK {
		if end.Before(start) {
			errs = append(errs, domain.FieldError{
				Field: FieldEndDate, Code: domain.FieldInvalid, Message: "must not be before startDate",
			})
		} else if app.Duration == "" {
			app.Duration = domain.DescribeDuration(start, end)
		}
	}

	if len(errs) > 0 {
		return domain.Application{}, &domain.ValidationError{Errors: errs}
	}
	return app, nil
}
