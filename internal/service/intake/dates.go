package intake

import (
	"strings"
	"time"

	"github.com/iciso/iciso-z6/internal/domain"
)

// parseOptionalDate parses a calendar date field. ok is false when the field
// is blank or malformed; a malformed value also yields a FieldError.
func parseOptionalDate(field, raw string) (t time.Time, ok bool, fe *domain.FieldError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false, nil
	}
	t, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, false, &domain.FieldError{
			Field: field, Code: domain.FieldInvalid, Message: "must be a date in YYYY-MM-DD format",
		}
	}
	return t, true, nil
}
