package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cooltechhq/hvac-ops-api/internal/domain/billing"
)

func TestNextNumber(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		prefix   string
		year     int
		want     string
	}{
		{
			name:     "increments the highest sequence, not the count",
			existing: []string{"INV-2024-0001", "INV-2024-0003"},
			prefix:   "INV",
			year:     2024,
			want:     "INV-2024-0004",
		},
		{
			name:     "empty history starts at 0001",
			existing: nil,
			prefix:   "INV",
			year:     2025,
			want:     "INV-2025-0001",
		},
		{
			name:     "other years do not contribute",
			existing: []string{"EST-2023-0099", "EST-2024-0002"},
			prefix:   "EST",
			year:     2024,
			want:     "EST-2024-0003",
		},
		{
			name:     "other kinds do not contribute",
			existing: []string{"INV-2024-0042", "EST-2024-0001"},
			prefix:   "EST",
			year:     2024,
			want:     "EST-2024-0002",
		},
		{
			name:     "unparseable suffixes are ignored",
			existing: []string{"INV-2024-XXXX", "INV-2024-0002", "INV-2024-"},
			prefix:   "INV",
			year:     2024,
			want:     "INV-2024-0003",
		},
		{
			name:     "max wins even when history is unsorted",
			existing: []string{"INV-2024-0005", "INV-2024-0011", "INV-2024-0002"},
			prefix:   "INV",
			year:     2024,
			want:     "INV-2024-0012",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := billing.NextNumber(tt.existing, tt.prefix, tt.year)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatNumber_PadsToFourDigits(t *testing.T) {
	assert.Equal(t, "EST-2024-0007", billing.FormatNumber("EST", 2024, 7))
	assert.Equal(t, "INV-2024-0100", billing.FormatNumber("INV", 2024, 100))
	// Past 9999 the number widens instead of wrapping.
	assert.Equal(t, "INV-2024-10000", billing.FormatNumber("INV", 2024, 10000))
}

func TestMaxSequence(t *testing.T) {
	existing := []string{"INV-2024-0001", "INV-2024-0009", "INV-2023-0044", "garbage"}
	assert.Equal(t, 9, billing.MaxSequence(existing, "INV", 2024))
	assert.Equal(t, 44, billing.MaxSequence(existing, "INV", 2023))
	assert.Equal(t, 0, billing.MaxSequence(existing, "INV", 2022))
}

func TestPrefixFor(t *testing.T) {
	assert.Equal(t, "EST", billing.PrefixFor(billing.KindEstimate))
	assert.Equal(t, "INV", billing.PrefixFor(billing.KindInvoice))
}
