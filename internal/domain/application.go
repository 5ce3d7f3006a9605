package domain

import (
	"fmt"
	"time"
)

// DateLayout is the storage format of StartDate and EndDate.
const DateLayout = "2006-01-02"

// Application is one submitted request to volunteer or intern.
// ID, Timestamp and Status are owned by the intake service.
type Application struct {
	ID               string          `json:"id"`
	Timestamp        time.Time       `json:"timestamp"`
	ApplicantName    string          `json:"applicantName"`
	ApplicantEmail   string          `json:"applicantEmail"`
	OrganizationName string          `json:"organizationName"`
	OpportunityTitle string          `json:"opportunityTitle"`
	OpportunityType  OpportunityType `json:"opportunityType"`
	Location         string          `json:"location"`
	FocusArea        string          `json:"focusArea"`
	StartDate        string          `json:"startDate"`
	EndDate          string          `json:"endDate"`
	Duration         string          `json:"duration"`
	Status           Status          `json:"status"`
}

// ApplicationFilter narrows a listing of applications.
type ApplicationFilter struct {
	Status *Status
	Search string
}

// ParseDate accepts a calendar date as YYYY-MM-DD or an RFC 3339 timestamp
// and returns it truncated to the day in UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: expected YYYY-MM-DD", s)
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
