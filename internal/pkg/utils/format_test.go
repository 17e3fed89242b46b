package utils_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/pkg/utils"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "00:00:00"},
		{1000, "00:00:01"},
		{1999, "00:00:01"},
		{61000, "00:01:01"},
		{3661000, "01:01:01"},
		{162000000, "45:00:00"},
		{-5000, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatDuration(tt.ms))
		})
	}

	t.Run("hours are not wrapped", func(t *testing.T) {
		got := utils.FormatDuration(90000000)
		hours, err := strconv.Atoi(strings.SplitN(got, ":", 2)[0])
		require.NoError(t, err)
		assert.Greater(t, hours, 23)
		assert.Equal(t, "25:00:00", got)
	})
}

func TestFormatDurationSeconds(t *testing.T) {
	assert.Equal(t, "00:01:01", utils.FormatDurationSeconds(61.9))
	assert.Equal(t, "45:00:00", utils.FormatDurationSeconds(162000))
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "1.00 km", utils.FormatDistance(1000, domain.UnitKm))
	assert.Equal(t, "5.50 km", utils.FormatDistance(5500, domain.UnitKm))
	assert.Equal(t, "0.00 km", utils.FormatDistance(0, domain.UnitKm))

	t.Run("miles", func(t *testing.T) {
		got := utils.FormatDistance(1000, domain.UnitMiles)
		require.True(t, strings.HasSuffix(got, "miles"))

		value, err := strconv.ParseFloat(strings.TrimSuffix(got, " miles"), 64)
		require.NoError(t, err)
		assert.Greater(t, value, 0.5)
		assert.Less(t, value, 1.0)
		assert.Equal(t, "0.62 miles", got)
	})
}

func TestFormatStepDistance(t *testing.T) {
	assert.Equal(t, "1.61 km / 1.00 mi", utils.FormatStepDistance(1610))
}

func TestFormatFlightHours(t *testing.T) {
	assert.Equal(t, "2.50 hrs", utils.FormatFlightHours(9000))
	assert.Equal(t, "0.00 hrs", utils.FormatFlightHours(0))
}
