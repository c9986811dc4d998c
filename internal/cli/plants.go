package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/plantparent/internal/care"
	"github.com/dmitrijs2005/plantparent/internal/models"
	"github.com/dmitrijs2005/plantparent/internal/plants"
)

// resolve finds the plant ref points at: a 1-based list number, an id or
// a unique id prefix. An empty ref is asked for.
func (a *App) resolve(ctx context.Context, ref string) (models.Plant, error) {
	if ref == "" {
		var err error
		if ref, err = GetSimpleText(a.reader, "Enter plant number or id", a.out); err != nil {
			return models.Plant{}, err
		}
	}

	list, err := a.plants.List(ctx)
	if err != nil {
		return models.Plant{}, err
	}

	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(list) {
		return list[n-1], nil
	}

	var match []models.Plant
	for _, p := range list {
		if p.ID == ref {
			return p, nil
		}
		if ref != "" && strings.HasPrefix(p.ID, ref) {
			match = append(match, p)
		}
	}
	if len(match) == 1 {
		return match[0], nil
	}
	return models.Plant{}, fmt.Errorf("%w: no single plant matches %q", plants.ErrNotFound, ref)
}

func (a *App) List(ctx context.Context) error {
	list, err := a.plants.List(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		a.println("No plants yet. Type 'add' to start tracking one.")
		return nil
	}

	tr := a.translator()
	now := a.now()
	a.printf("My Plants (%d)\n", len(list))
	for i, p := range list {
		a.printf("%2d. %s", i+1, p.Name)
		if p.Species != "" {
			a.printf(" (%s)", p.Species)
		}
		if p.Location != "" {
			a.printf(" - %s", models.LocationLabel(p.Location))
		}
		a.println()

		s := care.Summarize(p, now)
		a.printf("    water: %s, %s   fertilize: %s, %s\n",
			tr.Status(s.Water.Status), tr.Elapsed(s.Water.Last, now),
			tr.Status(s.Fertilize.Status), tr.Elapsed(s.Fertilize.Last, now))
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Plant name", a.out)
	if err != nil {
		return err
	}
	species, err := GetSimpleText(a.reader, "Species (optional)", a.out)
	if err != nil {
		return err
	}
	location, err := GetSimpleText(a.reader, locationPrompt(), a.out)
	if err != nil {
		return err
	}
	water, err := GetSimpleText(a.reader, frequencyPrompt(models.CareWater)+fmt.Sprintf(" [%d]", models.DefaultWateringDays), a.out)
	if err != nil {
		return err
	}
	fert, err := GetSimpleText(a.reader, frequencyPrompt(models.CareFertilize)+fmt.Sprintf(" [%d]", models.DefaultFertilizingDays), a.out)
	if err != nil {
		return err
	}
	notes, err := GetMultiline(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return err
	}

	d := models.PlantDraft{
		Name:                 name,
		Species:              species,
		Location:             parseLocation(location),
		Notes:                notes,
		WateringFrequency:    orDefault(water, models.DefaultWateringDays),
		FertilizingFrequency: orDefault(fert, models.DefaultFertilizingDays),
	}

	p, err := a.plants.Add(ctx, d)
	if err != nil {
		return err
	}
	a.printf("%s has been added!\n", p.Name)
	return nil
}

func orDefault(v string, days int) models.Frequency {
	if v == "" {
		return models.FrequencyOf(days)
	}
	return models.Frequency(v)
}

func (a *App) Show(ctx context.Context, ref string) error {
	p, err := a.resolve(ctx, ref)
	if err != nil {
		return err
	}

	tr := a.translator()
	now := a.now()
	s := care.Summarize(p, now)

	a.println(p.Name)
	if p.Species != "" {
		a.printf("  Species:    %s\n", p.Species)
	}
	if p.Location != "" {
		a.printf("  Location:   %s\n", models.LocationLabel(p.Location))
	}
	a.printf("  Added:      %s\n", a.settings.FormatDate(p.CreatedAt))
	for _, st := range []care.CareState{s.Water, s.Fertilize} {
		label := "Watering:   "
		if st.Type == models.CareFertilize {
			label = "Fertilizing:"
		}
		a.printf("  %s %s, last %s [%s]\n", label,
			models.FrequencyLabel(st.Type, models.FrequencyOf(st.FrequencyDays)),
			tr.Elapsed(st.Last, now), tr.Status(st.Status))
	}
	a.printf("  Photos:     %d", len(p.Photos))
	if ph, ok := p.LatestPhoto(); ok {
		a.printf(" (latest %s)", tr.Span(care.TimelineSpan(ph.Timestamp, now)))
	}
	a.println()
	if p.Notes != "" {
		a.printf("  Notes:      %s\n", strings.ReplaceAll(p.Notes, "\n", "\n              "))
	}
	if n := len(p.CareLog); n > 0 {
		a.println("  Recent care:")
		for i := n - 1; i >= 0 && i >= n-5; i-- {
			e := p.CareLog[i]
			a.printf("    %s  %s\n", a.settings.FormatDate(e.Timestamp), e.Type)
		}
	}
	a.printf("  ID:         %s\n", p.ID)
	return nil
}

func (a *App) Edit(ctx context.Context, ref string) error {
	p, err := a.resolve(ctx, ref)
	if err != nil {
		return err
	}

	a.printf("Editing %s (Enter keeps a value, '%s' clears it)\n", p.Name, clearValue)

	var patch models.PlantPatch
	if patch.Name, err = GetOptional(a.reader, "Plant name", p.Name, a.out); err != nil {
		return err
	}
	if patch.Species, err = GetOptional(a.reader, "Species", p.Species, a.out); err != nil {
		return err
	}
	loc, err := GetOptional(a.reader, locationPrompt(), models.LocationLabel(p.Location), a.out)
	if err != nil {
		return err
	}
	if loc != nil {
		v := parseLocation(*loc)
		patch.Location = &v
	}
	if patch.WateringFrequency, err = a.getFrequency(models.CareWater, p.WateringFrequency); err != nil {
		return err
	}
	if patch.FertilizingFrequency, err = a.getFrequency(models.CareFertilize, p.FertilizingFrequency); err != nil {
		return err
	}
	if patch.Notes, err = GetOptional(a.reader, "Notes", p.Notes, a.out); err != nil {
		return err
	}

	if patch.IsEmpty() {
		a.println("Nothing changed.")
		return nil
	}
	if err := a.plants.Update(ctx, p.ID, patch); err != nil {
		return err
	}
	a.println("Plant updated successfully!")
	return nil
}

func (a *App) getFrequency(c models.CareType, current models.Frequency) (*models.Frequency, error) {
	v, err := GetOptional(a.reader, frequencyPrompt(c), string(current), a.out)
	if err != nil || v == nil {
		return nil, err
	}
	f := models.Frequency(*v)
	return &f, nil
}

func (a *App) Delete(ctx context.Context, ref string) error {
	p, err := a.resolve(ctx, ref)
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %s? This cannot be undone.", p.Name), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.plants.Delete(ctx, p.ID); err != nil {
		return err
	}
	a.printf("%s deleted.\n", p.Name)
	return nil
}

func (a *App) LogCare(ctx context.Context, ref string, c models.CareType) error {
	p, err := a.resolve(ctx, ref)
	if err != nil {
		return err
	}

	verb, done := "water", "watered"
	if c == models.CareFertilize {
		verb, done = "fertilize", "fertilized"
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Did you %s %s?", verb, p.Name), a.out)
	if err != nil || !ok {
		return err
	}
	if _, err := a.plants.LogCare(ctx, p.ID, c); err != nil {
		return err
	}
	a.printf("%s has been marked as %s!\n", p.Name, done)
	return nil
}

func (a *App) AddPhoto(ctx context.Context, ref, uri string) error {
	p, err := a.resolve(ctx, ref)
	if err != nil {
		return err
	}

	if uri == "" {
		if uri, err = GetSimpleText(a.reader, "Photo file path or URI", a.out); err != nil {
			return err
		}
	}

	if _, err := a.plants.AddPhoto(ctx, p.ID, uri); err != nil {
		return err
	}
	a.printf("Photo added to %s's timeline.\n", p.Name)
	return nil
}

func (a *App) Timeline(ctx context.Context, ref string) error {
	p, err := a.resolve(ctx, ref)
	if err != nil {
		return err
	}

	photos := p.SortedPhotos()
	if len(photos) == 0 {
		a.printf("No photos yet. Start documenting %s's growth with 'photo'.\n", p.Name)
		return nil
	}

	tr := a.translator()
	now := a.now()
	oldest := photos[len(photos)-1]
	a.printf("%s's growth timeline: %d photos, first %s\n", p.Name, len(photos), tr.Span(care.TimelineSpan(oldest.Timestamp, now)))
	for i, ph := range photos {
		marker := "        "
		if i == 0 {
			marker = "[latest]"
		}
		a.printf("  %s %s  %-14s %s\n", marker, a.settings.FormatDate(ph.Timestamp), tr.Span(care.TimelineSpan(ph.Timestamp, now)), ph.URI)
	}
	return nil
}
