package care

import (
	"time"

	"github.com/dmitrijs2005/plantparent/internal/models"
)

// Status is the traffic-light state of one care type.
type Status string

const (
	StatusOverdue Status = "overdue"
	StatusDueSoon Status = "due-soon"
	StatusOK      Status = "ok"
)

// dueSoonRatio is the share of the interval after which care is due soon.
const dueSoonRatio = 0.8

// StatusOf classifies the care state: never cared for or at least
// frequencyDays elapsed is overdue, at least 80% of it is due soon.
func StatusOf(last *time.Time, frequencyDays int, now time.Time) Status {
	days, ok := DaysSince(last, now)
	if !ok {
		return StatusOverdue
	}
	if days >= frequencyDays {
		return StatusOverdue
	}
	if float64(days) >= float64(frequencyDays)*dueSoonRatio {
		return StatusDueSoon
	}
	return StatusOK
}

// CareState is what the detail view shows for one care type.
type CareState struct {
	Type          models.CareType
	Last          *time.Time
	DaysSince     int
	Known         bool
	FrequencyDays int
	Status        Status
	Elapsed       string
}

// Needed reports whether the care action is due now.
func (c CareState) Needed() bool {
	return c.Status == StatusOverdue
}

// Summary is the derived care state of a plant.
type Summary struct {
	Water     CareState
	Fertilize CareState
}

func Summarize(p models.Plant, now time.Time) Summary {
	return Summary{
		Water:     stateOf(p, models.CareWater, now),
		Fertilize: stateOf(p, models.CareFertilize, now),
	}
}

func stateOf(p models.Plant, c models.CareType, now time.Time) CareState {
	last := p.LastCare(c)
	freq := p.FrequencyDays(c)
	days, ok := DaysSince(last, now)
	return CareState{
		Type:          c,
		Last:          last,
		DaysSince:     days,
		Known:         ok,
		FrequencyDays: freq,
		Status:        StatusOf(last, freq, now),
		Elapsed:       HumanizeElapsed(last, now),
	}
}

func (s Summary) NeedsWater() bool      { return s.Water.Needed() }
func (s Summary) NeedsFertilizer() bool { return s.Fertilize.Needed() }
