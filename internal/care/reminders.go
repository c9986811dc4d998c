package care

import (
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/plantparent/internal/models"
)

// Urgency ranks how overdue a reminder is.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

func (u Urgency) Rank() int {
	switch u {
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 1
	default:
		return 0
	}
}

// NeverDays stands in for the elapsed days of a plant never cared for.
const NeverDays = 999

// Days past the interval after which a reminder becomes high urgency.
const (
	waterGraceDays     = 2
	fertilizeGraceDays = 7
)

// Reminder is one overdue care action.
type Reminder struct {
	ID            string
	PlantID       string
	PlantName     string
	Type          models.CareType
	Urgency       Urgency
	DaysSince     int
	Never         bool
	FrequencyDays int
}

func (r Reminder) Title() string {
	if r.Type == models.CareFertilize {
		return "Fertilize " + r.PlantName
	}
	return "Water " + r.PlantName
}

func (r Reminder) Description() string {
	verb := "watered"
	if r.Type == models.CareFertilize {
		verb = "fertilized"
	}
	if r.Never {
		return "Never been " + verb
	}
	return fmt.Sprintf("Last %s %d days ago", verb, r.DaysSince)
}

// Reminders lists every overdue care action, water before fertilize per
// plant, ordered by urgency. Equal urgencies keep their encounter order.
func Reminders(plants []models.Plant, now time.Time) []Reminder {
	out := make([]Reminder, 0)
	for _, p := range plants {
		for _, c := range models.CareTypes {
			if r, ok := reminderFor(p, c, now); ok {
				out = append(out, r)
			}
		}
	}

	slices.SortStableFunc(out, func(a, b Reminder) int {
		return b.Urgency.Rank() - a.Urgency.Rank()
	})
	return out
}

// reminderFor treats a plant with no usable frequency as using the edit-form
// defaults (7 days water, 30 days fertilize).
func reminderFor(p models.Plant, c models.CareType, now time.Time) (Reminder, bool) {
	freq := p.FrequencyDays(c)
	days, ok := DaysSince(p.LastCare(c), now)
	if !ok {
		days = NeverDays
	}
	if days < freq {
		return Reminder{}, false
	}

	var urgency Urgency
	switch c {
	case models.CareFertilize:
		urgency = UrgencyLow
		if days > freq+fertilizeGraceDays {
			urgency = UrgencyHigh
		}
	default:
		urgency = UrgencyMedium
		if days > freq+waterGraceDays {
			urgency = UrgencyHigh
		}
	}

	return Reminder{
		ID:            string(c) + "-" + p.ID,
		PlantID:       p.ID,
		PlantName:     p.Name,
		Type:          c,
		Urgency:       urgency,
		DaysSince:     days,
		Never:         !ok,
		FrequencyDays: freq,
	}, true
}
