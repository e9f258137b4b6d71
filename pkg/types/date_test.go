package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateString(t *testing.T) {
	ts := time.Date(2025, 10, 15, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, DateString("2025-10-15"), NewDateString(ts))
}

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2025-10-15")
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-10-15"), d)

	_, err = NewDateStringFromString("15/10/2025")
	assert.Error(t, err)

	_, err = NewDateStringFromString("")
	assert.Error(t, err)
}

func TestDateString_ToTime(t *testing.T) {
	d := DateString("2025-10-15")
	ts, err := d.ToTime()
	require.NoError(t, err)

	assert.Equal(t, 2025, ts.Year())
	assert.Equal(t, time.October, ts.Month())
	assert.Equal(t, 15, ts.Day())
	assert.Equal(t, 0, ts.Hour())

	_, err = DateString("garbage").ToTime()
	assert.Error(t, err)
}

func TestDateString_Before(t *testing.T) {
	assert.True(t, DateString("2025-10-15").Before("2025-10-16"))
	assert.False(t, DateString("2025-10-16").Before("2025-10-15"))
	assert.False(t, DateString("2025-10-15").Before("2025-10-15"))
}

func TestDateString_Scan(t *testing.T) {
	var d DateString

	require.NoError(t, d.Scan(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, DateString("2025-10-15"), d)

	require.NoError(t, d.Scan([]byte("2025-10-16")))
	assert.Equal(t, DateString("2025-10-16"), d)

	require.NoError(t, d.Scan("2025-10-17"))
	assert.Equal(t, DateString("2025-10-17"), d)

	assert.Error(t, d.Scan(42))
}

func TestDateString_Value(t *testing.T) {
	v, err := DateString("2025-10-15").Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-10-15", v)

	_, err = DateString("not-a-date").Value()
	assert.Error(t, err)
}
