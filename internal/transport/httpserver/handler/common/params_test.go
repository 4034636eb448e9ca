package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeParam(t *testing.T) {
	value, err := ParseTimeParam("")
	require.NoError(t, err)
	assert.Nil(t, value)

	value, err = ParseTimeParam("2026-10-01T08:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 1, 8, 30, 0, 0, time.UTC), *value)

	value, err = ParseTimeParam("2026-10-01")
	require.NoError(t, err)
	assert.Equal(t, 1, value.Day())

	_, err = ParseTimeParam("yesterday")
	assert.Error(t, err)
}

func TestParseIntParam(t *testing.T) {
	value, err := ParseIntParam("", 20)
	require.NoError(t, err)
	assert.Equal(t, 20, value)

	_, err = ParseIntParam("-1", 20)
	assert.Error(t, err)
}
