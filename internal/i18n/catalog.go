package i18n

import (
	"fmt"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	keyNever         = "never"
	keyJustNow       = "just now"
	keyToday         = "today"
	keyMinutesAgo    = "%d minutes ago"
	keyHoursAgo      = "%d hours ago"
	keyDaysAgo       = "%d days ago"
	keyWeeksAgo      = "%d weeks ago"
	keyMonthsAgo     = "%d months ago"
	keyOverdue       = "Overdue"
	keyDueSoon       = "Due soon"
	keyOK            = "Good"
	keyHigh          = "high"
	keyMedium        = "medium"
	keyLow           = "low"
	keyWaterTitle    = "Water %s"
	keyFertTitle     = "Fertilize %s"
	keyNeverWatered  = "Never been watered"
	keyNeverFert     = "Never been fertilized"
	keyLastWatered   = "Last watered %d days ago"
	keyLastFert      = "Last fertilized %d days ago"
	keyAllCaughtUp   = "All caught up! Your plants are happy."
	keyReminderCount = "%d reminders"
)

type forms struct{ one, other string }

// plurals holds count-dependent messages per language.
var plurals = map[string]map[language.Tag]forms{
	keyMinutesAgo: {
		language.English: {"%[1]d minute ago", "%d minutes ago"},
		language.French:  {"il y a %d minute", "il y a %d minutes"},
		language.Dutch:   {"%[1]d minuut geleden", "%d minuten geleden"},
		language.Spanish: {"hace %[1]d minuto", "hace %d minutos"},
	},
	keyHoursAgo: {
		language.English: {"%[1]d hour ago", "%d hours ago"},
		language.French:  {"il y a %d heure", "il y a %d heures"},
		language.Dutch:   {"%[1]d uur geleden", "%d uur geleden"},
		language.Spanish: {"hace %[1]d hora", "hace %d horas"},
	},
	keyDaysAgo: {
		language.English: {"%[1]d day ago", "%d days ago"},
		language.French:  {"il y a %d jour", "il y a %d jours"},
		language.Dutch:   {"%[1]d dag geleden", "%d dagen geleden"},
		language.Spanish: {"hace %[1]d día", "hace %d días"},
	},
	keyWeeksAgo: {
		language.English: {"%[1]d week ago", "%d weeks ago"},
		language.French:  {"il y a %d semaine", "il y a %d semaines"},
		language.Dutch:   {"%[1]d week geleden", "%d weken geleden"},
		language.Spanish: {"hace %[1]d semana", "hace %d semanas"},
	},
	keyMonthsAgo: {
		language.English: {"%[1]d month ago", "%d months ago"},
		language.French:  {"il y a %d mois", "il y a %d mois"},
		language.Dutch:   {"%[1]d maand geleden", "%d maanden geleden"},
		language.Spanish: {"hace %[1]d mes", "hace %d meses"},
	},
	keyLastWatered: {
		language.English: {"Last watered %[1]d day ago", "Last watered %d days ago"},
		language.French:  {"Arrosée il y a %d jour", "Arrosée il y a %d jours"},
		language.Dutch:   {"%[1]d dag geleden water gegeven", "%d dagen geleden water gegeven"},
		language.Spanish: {"Regada hace %[1]d día", "Regada hace %d días"},
	},
	keyLastFert: {
		language.English: {"Last fertilized %[1]d day ago", "Last fertilized %d days ago"},
		language.French:  {"Fertilisée il y a %d jour", "Fertilisée il y a %d jours"},
		language.Dutch:   {"%[1]d dag geleden bemest", "%d dagen geleden bemest"},
		language.Spanish: {"Fertilizada hace %[1]d día", "Fertilizada hace %d días"},
	},
	keyReminderCount: {
		language.English: {"%[1]d reminder", "%d reminders"},
		language.French:  {"%d rappel", "%d rappels"},
		language.Dutch:   {"%[1]d herinnering", "%d herinneringen"},
		language.Spanish: {"%[1]d recordatorio", "%d recordatorios"},
	},
}

// texts holds fixed messages for the non-English languages.
var texts = map[string]map[language.Tag]string{
	keyNever:        {language.French: "jamais", language.Dutch: "nooit", language.Spanish: "nunca"},
	keyJustNow:      {language.French: "à l'instant", language.Dutch: "zojuist", language.Spanish: "justo ahora"},
	keyToday:        {language.French: "aujourd'hui", language.Dutch: "vandaag", language.Spanish: "hoy"},
	keyOverdue:      {language.French: "En retard", language.Dutch: "Te laat", language.Spanish: "Atrasado"},
	keyDueSoon:      {language.French: "Bientôt", language.Dutch: "Binnenkort", language.Spanish: "Pronto"},
	keyOK:           {language.French: "Bien", language.Dutch: "Goed", language.Spanish: "Bien"},
	keyHigh:         {language.French: "haute", language.Dutch: "hoog", language.Spanish: "alta"},
	keyMedium:       {language.French: "moyenne", language.Dutch: "gemiddeld", language.Spanish: "media"},
	keyLow:          {language.French: "basse", language.Dutch: "laag", language.Spanish: "baja"},
	keyWaterTitle:   {language.French: "Arroser %s", language.Dutch: "%s water geven", language.Spanish: "Regar %s"},
	keyFertTitle:    {language.French: "Fertiliser %s", language.Dutch: "%s bemesten", language.Spanish: "Fertilizar %s"},
	keyNeverWatered: {language.French: "Jamais arrosée", language.Dutch: "Nog nooit water gegeven", language.Spanish: "Nunca regada"},
	keyNeverFert:    {language.French: "Jamais fertilisée", language.Dutch: "Nog nooit bemest", language.Spanish: "Nunca fertilizada"},
	keyAllCaughtUp: {
		language.French:  "Tout est à jour ! Vos plantes sont heureuses.",
		language.Dutch:   "Alles bijgewerkt! Je planten zijn blij.",
		language.Spanish: "¡Todo al día! Tus plantas están felices.",
	},
}

var appCatalog = mustBuildCatalog()

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(Supported[0]))

	for key, byLang := range plurals {
		for tag, f := range byLang {
			msg := plural.Selectf(1, "%d", plural.One, f.one, plural.Other, f.other)
			if err := b.Set(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: %s/%s: %v", tag, key, err))
			}
		}
	}

	for key, byLang := range texts {
		if err := b.SetString(Supported[0], key, key); err != nil {
			panic(fmt.Sprintf("i18n: en/%s: %v", key, err))
		}
		for tag, s := range byLang {
			if err := b.SetString(tag, key, s); err != nil {
				panic(fmt.Sprintf("i18n: %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
}
