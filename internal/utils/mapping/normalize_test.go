package mapping_test

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vyaparbooks/billing_app/internal/core/domain"
	"github.com/vyaparbooks/billing_app/internal/utils/mapping"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  domain.Address
	}{
		{
			name:  "nil input",
			input: nil,
			want:  domain.Address{},
		},
		{
			name:  "bare string becomes street",
			input: "  221B Baker Street, Mumbai  ",
			want:  domain.Address{Street: "221B Baker Street, Mumbai"},
		},
		{
			name: "structured object",
			input: map[string]any{
				"street":     "MG Road",
				"city":       "Pune",
				"state":      "Maharashtra",
				"country":    "India",
				"postalCode": "411001",
			},
			want: domain.Address{
				Street: "MG Road", City: "Pune", State: "Maharashtra",
				Country: "India", PostalCode: "411001",
			},
		},
		{
			name: "alias keys",
			input: map[string]any{
				"address": "MG Road",
				"zip":     "560001",
			},
			want: domain.Address{Street: "MG Road", PostalCode: "560001"},
		},
		{
			name:  "unsupported type degrades to empty",
			input: 42,
			want:  domain.Address{},
		},
		{
			name: "non-string field values are ignored",
			input: map[string]any{
				"street": 10,
				"city":   "Pune",
			},
			want: domain.Address{City: "Pune"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapping.NormalizeAddress(tt.input))
		})
	}
}

func TestCustomerSnapshotFromPayload(t *testing.T) {
	at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("nil payload yields taxable defaults", func(t *testing.T) {
		snapshot := mapping.CustomerSnapshotFromPayload(nil, at)
		assert.Equal(t, domain.Taxable, snapshot.TaxPreference)
		assert.Equal(t, at, snapshot.SnapshotDate)
		assert.Empty(t, snapshot.GSTIN)
	})

	t.Run("full payload", func(t *testing.T) {
		snapshot := mapping.CustomerSnapshotFromPayload(map[string]any{
			"id":             "cust-1",
			"name":           "Acme Traders",
			"gstTreatment":   "Registered Business - Regular",
			"taxPreference":  "tax_exempt",
			"gstin":          "27AAGCA4900Q1ZE",
			"placeOfSupply":  "27 - Maharashtra",
			"billingAddress": "Fort, Mumbai",
			"shippingAddress": map[string]any{
				"city":  "Mumbai",
				"state": "Maharashtra",
			},
		}, at)

		assert.Equal(t, "cust-1", snapshot.CustomerID)
		assert.Equal(t, "Acme Traders", snapshot.CustomerName)
		assert.Equal(t, "Acme Traders", snapshot.DisplayName) // Defaults from name
		assert.Equal(t, domain.TaxExempt, snapshot.TaxPreference)
		assert.Equal(t, "Fort, Mumbai", snapshot.BillingAddress.Street)
		assert.Equal(t, "Mumbai", snapshot.ShippingAddress.City)
		assert.Equal(t, at, snapshot.SnapshotDate)
	})

	t.Run("unknown tax preference defaults to taxable", func(t *testing.T) {
		snapshot := mapping.CustomerSnapshotFromPayload(map[string]any{
			"taxPreference": "whatever",
		}, at)
		assert.Equal(t, domain.Taxable, snapshot.TaxPreference)
	})
}

func TestBillFromPayload(t *testing.T) {
	t.Run("balanceDue naming", func(t *testing.T) {
		bill := mapping.BillFromPayload(map[string]any{
			"id":         "bill-1",
			"billNumber": "B-001",
			"date":       "2024-01-05",
			"total":      float64(100),
			"balanceDue": float64(40),
		})
		assert.Equal(t, "bill-1", bill.BillID)
		assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), bill.Date)
		assert.True(t, bill.Total.Equal(decimal.NewFromInt(100)))
		assert.True(t, bill.AmountDue().Equal(decimal.NewFromInt(40)), "amount due: got %s", bill.AmountDue())
	})

	t.Run("amountDue and billDate naming", func(t *testing.T) {
		bill := mapping.BillFromPayload(map[string]any{
			"id":        "bill-2",
			"billDate":  "2024-02-01T00:00:00Z",
			"total":     "250.50",
			"amountDue": "250.50",
		})
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), bill.Date)
		assert.True(t, bill.AmountDue().Equal(decimal.NewFromFloat(250.50)))
	})

	t.Run("no due field means fully outstanding", func(t *testing.T) {
		bill := mapping.BillFromPayload(map[string]any{
			"id":         "bill-5",
			"total":      float64(80),
			"amountPaid": float64(30),
		})
		assert.True(t, bill.AmountDue().Equal(decimal.NewFromInt(50)), "amount due: got %s", bill.AmountDue())
	})

	t.Run("unparsable date is left zero", func(t *testing.T) {
		bill := mapping.BillFromPayload(map[string]any{
			"id":   "bill-3",
			"date": "next tuesday",
		})
		assert.True(t, bill.Date.IsZero())
	})

	t.Run("NaN amounts are treated as absent", func(t *testing.T) {
		bill := mapping.BillFromPayload(map[string]any{
			"id":    "bill-4",
			"total": math.NaN(),
		})
		assert.True(t, bill.Total.IsZero())
	})
}
