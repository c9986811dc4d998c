package care

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/plantparent/internal/models"
)

func TestStatusOf_NeverCaredIsOverdue(t *testing.T) {
	for _, freq := range []int{1, 7, 30, 365} {
		assert.Equal(t, StatusOverdue, StatusOf(nil, freq, now), "freq %d", freq)
	}
}

func TestStatusOf_Thresholds(t *testing.T) {
	tests := []struct {
		name string
		days int
		freq int
		want Status
	}{
		{"fresh", 0, 7, StatusOK},
		{"below 80%", 5, 7, StatusOK},
		{"at 80%", 8, 10, StatusDueSoon},
		{"just under", 6, 7, StatusDueSoon},
		{"exactly due", 7, 7, StatusOverdue},
		{"past due", 20, 7, StatusOverdue},
		{"monthly", 23, 30, StatusOK},
		{"monthly due soon", 24, 30, StatusDueSoon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last := ago(time.Duration(tt.days) * day)
			assert.Equal(t, tt.want, StatusOf(&last, tt.freq, now))
		})
	}
}

func TestSummarize(t *testing.T) {
	p := models.Plant{
		ID:                   "p1",
		Name:                 "Fern",
		WateringFrequency:    "7",
		FertilizingFrequency: "30",
		LastWatered:          ptr(ago(2 * day)),
	}

	s := Summarize(p, now)

	assert.Equal(t, StatusOK, s.Water.Status)
	assert.True(t, s.Water.Known)
	assert.Equal(t, 2, s.Water.DaysSince)
	assert.Equal(t, "2 days ago", s.Water.Elapsed)
	assert.False(t, s.NeedsWater())

	assert.Equal(t, StatusOverdue, s.Fertilize.Status)
	assert.False(t, s.Fertilize.Known)
	assert.Equal(t, "never", s.Fertilize.Elapsed)
	assert.Equal(t, 30, s.Fertilize.FrequencyDays)
	assert.True(t, s.NeedsFertilizer())
}
