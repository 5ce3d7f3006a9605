package domain

import (
	"fmt"
	"time"
)

// DescribeDuration renders the span between two calendar dates the way the
// application form shows it. Both ends count, so equal dates are "1 days".
func DescribeDuration(start, end time.Time) string {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := int((diff+24*time.Hour-1)/(24*time.Hour)) + 1

	switch {
	case days < 7:
		return fmt.Sprintf("%d days", days)
	case days < 30:
		return fmt.Sprintf("%d weeks", ceilDiv(days, 7))
	default:
		return fmt.Sprintf("%d months", ceilDiv(days, 30))
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
