package kernel_test

import (
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestMonthsBefore(t *testing.T) {
	testCases := []struct {
		name     string
		from     time.Time
		expected time.Time
	}{
		{
			name:     "mid month",
			from:     time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC),
			expected: time.Date(2025, time.May, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "crosses year boundary",
			from:     time.Date(2025, time.January, 20, 8, 0, 0, 0, time.UTC),
			expected: time.Date(2024, time.December, 20, 8, 0, 0, 0, time.UTC),
		},
		{
			name:     "clamps to end of february",
			from:     time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC),
			expected: time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC),
		},
		{
			name:     "clamps to leap day",
			from:     time.Date(2024, time.March, 30, 12, 0, 0, 0, time.UTC),
			expected: time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "clamps to thirty day month",
			from:     time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, kernel.MonthsBefore(tc.from, 1))
		})
	}
}
