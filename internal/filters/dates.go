package filters

import (
	"regexp"
	"time"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
)

var (
	reYear      = regexp.MustCompile(`^\d{4}$`)
	reYearMonth = regexp.MustCompile(`^\d{4}-\d{2}$`)
	reFullDate  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidateDate accepts YYYY, YYYY-MM, or YYYY-MM-DD and rejects anything
// else, per spec §4.F.
func ValidateDate(value string) error {
	if value == "" {
		return nil
	}
	switch {
	case reFullDate.MatchString(value):
		_, err := time.Parse("2006-01-02", value)
		if err != nil {
			return bmerrors.NewInvalidArgument("invalid date %q: %v", value, err)
		}
	case reYearMonth.MatchString(value):
		_, err := time.Parse("2006-01", value)
		if err != nil {
			return bmerrors.NewInvalidArgument("invalid date %q: %v", value, err)
		}
	case reYear.MatchString(value):
		// year-only is accepted as-is
	default:
		return bmerrors.NewInvalidArgument("invalid date %q; expected YYYY, YYYY-MM, or YYYY-MM-DD", value)
	}
	return nil
}

// ValidateDateRange enforces date_from <= date_to after validating both
// are individually well-formed. Comparison is lexicographic, which is
// correct for the three accepted formats since they are all left-padded
// and share a common prefix ordering.
func ValidateDateRange(from, to string) error {
	if err := ValidateDate(from); err != nil {
		return err
	}
	if err := ValidateDate(to); err != nil {
		return err
	}
	if from != "" && to != "" && from > to {
		return bmerrors.NewInvalidArgument("date_from %q must be <= date_to %q", from, to)
	}
	return nil
}
