package i18n

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrijs2005/plantparent/internal/care"
	"github.com/dmitrijs2005/plantparent/internal/models"
)

// Translator renders care state in one language.
type Translator struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a Translator for the supported language closest to locale.
func New(locale string) *Translator {
	tag := Match(locale)
	return &Translator{tag: tag, p: message.NewPrinter(tag, message.Catalog(appCatalog))}
}

// Language returns the two-letter code of the chosen language.
func (t *Translator) Language() string {
	return Code(t.tag)
}

func (t *Translator) Sprintf(key string, args ...any) string {
	return t.p.Sprintf(key, args...)
}

func (t *Translator) Span(s care.Span) string {
	switch s.Unit {
	case care.UnitJustNow:
		return t.p.Sprintf(keyJustNow)
	case care.UnitToday:
		return t.p.Sprintf(keyToday)
	case care.UnitMinute:
		return t.p.Sprintf(keyMinutesAgo, s.Count)
	case care.UnitHour:
		return t.p.Sprintf(keyHoursAgo, s.Count)
	case care.UnitDay:
		return t.p.Sprintf(keyDaysAgo, s.Count)
	case care.UnitWeek:
		return t.p.Sprintf(keyWeeksAgo, s.Count)
	case care.UnitMonth:
		return t.p.Sprintf(keyMonthsAgo, s.Count)
	default:
		return s.String()
	}
}

// Elapsed is the localized care.HumanizeElapsed.
func (t *Translator) Elapsed(last *time.Time, now time.Time) string {
	if last == nil {
		return t.p.Sprintf(keyNever)
	}
	return t.Span(care.Elapsed(*last, now))
}

func (t *Translator) Status(s care.Status) string {
	switch s {
	case care.StatusOverdue:
		return t.p.Sprintf(keyOverdue)
	case care.StatusDueSoon:
		return t.p.Sprintf(keyDueSoon)
	default:
		return t.p.Sprintf(keyOK)
	}
}

func (t *Translator) Urgency(u care.Urgency) string {
	switch u {
	case care.UrgencyHigh:
		return t.p.Sprintf(keyHigh)
	case care.UrgencyMedium:
		return t.p.Sprintf(keyMedium)
	default:
		return t.p.Sprintf(keyLow)
	}
}

func (t *Translator) ReminderTitle(r care.Reminder) string {
	if r.Type == models.CareFertilize {
		return t.p.Sprintf(keyFertTitle, r.PlantName)
	}
	return t.p.Sprintf(keyWaterTitle, r.PlantName)
}

func (t *Translator) ReminderDescription(r care.Reminder) string {
	fert := r.Type == models.CareFertilize
	switch {
	case r.Never && fert:
		return t.p.Sprintf(keyNeverFert)
	case r.Never:
		return t.p.Sprintf(keyNeverWatered)
	case fert:
		return t.p.Sprintf(keyLastFert, r.DaysSince)
	default:
		return t.p.Sprintf(keyLastWatered, r.DaysSince)
	}
}

// ReminderCount renders "N reminders" with the right plural form, or the
// all-caught-up message for zero.
func (t *Translator) ReminderCount(n int) string {
	if n == 0 {
		return t.p.Sprintf(keyAllCaughtUp)
	}
	return t.p.Sprintf(keyReminderCount, n)
}
