package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/plantparent/internal/buildinfo"
	"github.com/dmitrijs2005/plantparent/internal/i18n"
	"github.com/dmitrijs2005/plantparent/internal/settings"
)

// sampleDate is rendered next to each date format in the picker.
var sampleDate = time.Date(2025, time.September, 23, 0, 0, 0, 0, time.UTC)

func (a *App) Settings(context.Context) error {
	cur := a.settings.Current()

	a.println("Settings")
	a.printf("  Language:     %s (%s)\n", i18n.LanguageName(cur.Language), cur.Language)
	a.printf("  Date format:  %s\n", formatLabel(cur.DateFormat))
	a.println("  Export data:  coming soon")
	a.printf("  Version:      %s\n", buildinfo.Version())
	return nil
}

func formatLabel(f settings.DateFormat) string {
	for _, o := range settings.DateFormats {
		if o.Format == f {
			return fmt.Sprintf("%s (%s)", f.Format(sampleDate), o.Region)
		}
	}
	return string(f)
}

func (a *App) SetLanguage(ctx context.Context, code string) error {
	if code == "" {
		var b strings.Builder
		b.WriteString("Select language:")
		for i, l := range i18n.Languages {
			fmt.Fprintf(&b, " %d) %s", i+1, l.Name)
		}

		v, err := GetSimpleText(a.reader, b.String(), a.out)
		if err != nil {
			return err
		}
		code = v
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= len(i18n.Languages) {
			code = i18n.Languages[n-1].Code
		}
	}

	if err := a.settings.SetLanguage(ctx, strings.ToLower(code)); err != nil {
		return err
	}
	a.printf("Language set to %s.\n", i18n.LanguageName(strings.ToLower(code)))
	return nil
}

func (a *App) SetDateFormat(ctx context.Context, format string) error {
	if format == "" {
		var b strings.Builder
		b.WriteString("Select date format:")
		for i, o := range settings.DateFormats {
			fmt.Fprintf(&b, "\n  %d) %s", i+1, formatLabel(o.Format))
		}

		v, err := GetSimpleText(a.reader, b.String(), a.out)
		if err != nil {
			return err
		}
		format = v
	}

	if n, err := strconv.Atoi(format); err == nil && n >= 1 && n <= len(settings.DateFormats) {
		format = string(settings.DateFormats[n-1].Format)
	}

	f := settings.DateFormat(strings.ToUpper(format))
	if err := a.settings.SetDateFormat(ctx, f); err != nil {
		return err
	}
	a.printf("Date format set to %s.\n", formatLabel(f))
	return nil
}

func (a *App) Export(ctx context.Context) error {
	return a.settings.Export(ctx)
}
