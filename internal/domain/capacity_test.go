package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredCapacity(t *testing.T) {
	tests := []struct {
		name   string
		guests int
		want   int
	}{
		{"single guest", 1, 2},
		{"couple", 2, 2},
		{"three guests", 3, 4},
		{"four guests", 4, 4},
		{"five guests", 5, 8},
		{"eight guests", 8, 8},
		{"nine guests", 9, 10},
		{"max party", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequiredCapacity(tt.guests)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiredCapacity_PartyTooLarge(t *testing.T) {
	_, err := RequiredCapacity(11)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	_, err = RequiredCapacity(50)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestDiningTable_Fits(t *testing.T) {
	table := &DiningTable{ID: 1, Name: "T1", Capacity: 4, Status: TableStatusOpen}

	// Точное совпадение тира: компания 3-4 человека садится за столик на 4
	fits, err := table.Fits(3)
	require.NoError(t, err)
	assert.True(t, fits)

	fits, err = table.Fits(4)
	require.NoError(t, err)
	assert.True(t, fits)

	// Компания на 2 требует столик на 2, а не на 4
	fits, err = table.Fits(2)
	require.NoError(t, err)
	assert.False(t, fits)

	// Компания на 5 требует столик на 8
	fits, err = table.Fits(5)
	require.NoError(t, err)
	assert.False(t, fits)

	_, err = table.Fits(11)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}
