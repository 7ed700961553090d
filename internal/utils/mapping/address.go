package mapping

import (
	"strings"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
)

// NormalizeAddress converts whatever shape a collaborator API delivers for an
// address into the canonical 5-field Address. Accepted inputs:
//   - nil            -> zero Address
//   - string         -> the whole value becomes Street
//   - domain.Address -> returned as-is
//   - map[string]any -> field-by-field extraction with common key aliases
//
// Anything else normalizes to the zero Address. The core tax/allocation
// functions never see a raw payload; this guard lives firmly outside them.
func NormalizeAddress(input any) domain.Address {
	switch v := input.(type) {
	case nil:
		return domain.Address{}
	case string:
		return domain.Address{Street: strings.TrimSpace(v)}
	case domain.Address:
		return v
	case *domain.Address:
		if v == nil {
			return domain.Address{}
		}
		return *v
	case map[string]any:
		return domain.Address{
			Street:     stringField(v, "street", "address", "line1", "addressLine1"),
			City:       stringField(v, "city"),
			State:      stringField(v, "state"),
			Country:    stringField(v, "country"),
			PostalCode: stringField(v, "postalCode", "postal_code", "zip", "pincode", "zipCode"),
		}
	default:
		return domain.Address{}
	}
}

// stringField returns the first present key coerced to a trimmed string.
func stringField(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if raw, ok := m[key]; ok {
			if s, ok := raw.(string); ok {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}
