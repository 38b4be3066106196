package checkout

import (
	"fmt"
	"github.com/nikolayk812/luxe-storefront/internal/domain"
	"maps"
	"slices"
	"strings"
)

const reasonRequired = "Required"

// FieldErrors maps a failing address field to its rejection reason.
type FieldErrors map[string]string

// ValidationError wraps the per-field failures of a rejected address.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("address is not valid: %s", strings.Join(slices.Sorted(maps.Keys(e.Fields)), ", "))
}

// Validate requires every address field except line2 to be non-blank.
func Validate(addr domain.Address) FieldErrors {
	errs := FieldErrors{}

	required := []struct {
		field string
		value string
	}{
		{"fullName", addr.FullName},
		{"phone", addr.Phone},
		{"email", addr.Email},
		{"line1", addr.Line1},
		{"city", addr.City},
		{"state", addr.State},
		{"pinCode", addr.PinCode},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs[r.field] = reasonRequired
		}
	}

	return errs
}
