package domain

// Status is the review state of an application.
type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Statuses lists every status in review order.
var Statuses = []Status{StatusPending, StatusReviewed, StatusAccepted, StatusRejected}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// OpportunityType distinguishes volunteer positions from internships.
type OpportunityType string

const (
	OpportunityVolunteer  OpportunityType = "volunteer"
	OpportunityInternship OpportunityType = "internship"
)

func (t OpportunityType) String() string { return string(t) }

func (t OpportunityType) IsValid() bool {
	switch t {
	case OpportunityVolunteer, OpportunityInternship:
		return true
	}
	return false
}
