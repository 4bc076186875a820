package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayOf(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)
	at := time.Date(2024, 3, 10, 15, 30, 0, 0, loc)

	day := DayOf(at)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, loc), day.Start)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, loc), day.End)
}

func TestDay_Contains_HalfOpen(t *testing.T) {
	day := DayOf(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	assert.True(t, day.Contains(day.Start))
	assert.True(t, day.Contains(day.End.Add(-time.Nanosecond)))
	assert.False(t, day.Contains(day.End))
	assert.False(t, day.Contains(day.Start.Add(-time.Nanosecond)))
}

func TestDay_Contains_OtherLocation(t *testing.T) {
	loc := time.FixedZone("plus5", 5*60*60)
	day := DayOf(time.Date(2024, 3, 10, 1, 0, 0, 0, loc))

	// 2024-03-09 20:00 UTC is 2024-03-10 01:00 in plus5
	assert.True(t, day.Contains(time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC)))
	assert.False(t, day.Contains(time.Date(2024, 3, 9, 18, 59, 0, 0, time.UTC)))
}
