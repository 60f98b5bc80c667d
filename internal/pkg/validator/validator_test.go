package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty("  x  "))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0190b1f0-1234-7abc-8def-0123456789ab"))
	assert.True(t, IsValidUUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
	assert.False(t, IsValidUUID("0190b1f0-1234-7abc-0def-0123456789ab"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-01-31")
	assert.True(t, ok)

	_, ok = IsValidDate("31-01-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	_, ok := IsValidClockTime("08:00")
	assert.True(t, ok)

	_, ok = IsValidClockTime("23:59")
	assert.True(t, ok)

	_, ok = IsValidClockTime("24:00")
	assert.False(t, ok)

	_, ok = IsValidClockTime("8am")
	assert.False(t, ok)
}

func TestIsValidLatitudeLongitude(t *testing.T) {
	assert.True(t, IsValidLatitude(0))
	assert.True(t, IsValidLatitude(-90))
	assert.False(t, IsValidLatitude(90.1))
	assert.True(t, IsValidLongitude(180))
	assert.False(t, IsValidLongitude(-180.5))
}

func TestIsInSlice(t *testing.T) {
	assert.True(t, IsInSlice("excused", []string{"excused", "absent"}))
	assert.False(t, IsInSlice("present", []string{"excused", "absent"}))
}
