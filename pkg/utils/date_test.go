package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		date, err := ParseDate("2024-05-09")
		require.NoError(t, err)
		assert.True(t, time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC).Equal(*date))
	})

	t.Run("empty string is the zero time", func(t *testing.T) {
		date, err := ParseDate("")
		require.NoError(t, err)
		assert.True(t, date.IsZero())
	})

	t.Run("malformed date errors", func(t *testing.T) {
		_, err := ParseDate("09/05/2024")
		require.Error(t, err)
	})
}

func TestYesterday(t *testing.T) {
	now := time.Date(2024, 5, 10, 18, 30, 45, 0, time.UTC)
	assert.True(t, time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC).Equal(Yesterday(now)))
}
