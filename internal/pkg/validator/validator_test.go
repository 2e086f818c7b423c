package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPIN(t *testing.T) {
	assert.True(t, IsValidPIN("1234"))
	assert.True(t, IsValidPIN("0000"))
	assert.False(t, IsValidPIN("123"))
	assert.False(t, IsValidPIN("12345"))
	assert.False(t, IsValidPIN("12a4"))
	assert.False(t, IsValidPIN(""))
}

func TestIsValidTimeOfDay(t *testing.T) {
	assert.True(t, IsValidTimeOfDay("06:30"))
	assert.True(t, IsValidTimeOfDay("22:00"))
	assert.False(t, IsValidTimeOfDay("24:00"))
	assert.False(t, IsValidTimeOfDay("8:3"))
	assert.False(t, IsValidTimeOfDay("abc"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-02-28")
	assert.True(t, ok)
	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("today")
	assert.False(t, ok)
}

func TestCoordinateRanges(t *testing.T) {
	assert.True(t, IsValidLatitude(21.03))
	assert.False(t, IsValidLatitude(91))
	assert.True(t, IsValidLongitude(105.8))
	assert.False(t, IsValidLongitude(-181))
}
