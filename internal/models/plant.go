package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/plantparent/internal/common"
)

// Defaults used when a plant has no usable frequency.
const (
	DefaultWateringDays    = 7
	DefaultFertilizingDays = 30
)

// Plant is one tracked houseplant and its care metadata.
//
// LastWatered and LastFertilized cache the newest care-log entry of their
// type. Normalize repairs them when a stored document disagrees with its log.
type Plant struct {
	ID                   string      `json:"id"`
	Name                 string      `json:"name"`
	Species              string      `json:"species"`
	Location             string      `json:"location"`
	Notes                string      `json:"notes"`
	WateringFrequency    Frequency   `json:"wateringFrequency"`
	FertilizingFrequency Frequency   `json:"fertilizingFrequency"`
	CreatedAt            time.Time   `json:"createdAt"`
	Photos               []Photo     `json:"photos"`
	CareLog              []CareEntry `json:"careLog"`
	LastWatered          *time.Time  `json:"lastWatered,omitempty"`
	LastFertilized       *time.Time  `json:"lastFertilized,omitempty"`
}

// PlantDraft holds the user-supplied fields of a new plant.
type PlantDraft struct {
	Name                 string
	Species              string
	Location             string
	Notes                string
	WateringFrequency    Frequency
	FertilizingFrequency Frequency
}

func (d PlantDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: plant name is required", common.ErrValidation)
	}
	if err := d.WateringFrequency.validate("watering frequency"); err != nil {
		return err
	}
	return d.FertilizingFrequency.validate("fertilizing frequency")
}

// NewPlant builds a plant from d with empty photo and care sequences.
func NewPlant(id string, d PlantDraft, createdAt time.Time) Plant {
	return Plant{
		ID:                   id,
		Name:                 strings.TrimSpace(d.Name),
		Species:              d.Species,
		Location:             d.Location,
		Notes:                d.Notes,
		WateringFrequency:    d.WateringFrequency,
		FertilizingFrequency: d.FertilizingFrequency,
		CreatedAt:            createdAt,
		Photos:               []Photo{},
		CareLog:              []CareEntry{},
	}
}

// PlantPatch lists fields to change; nil fields are left alone.
type PlantPatch struct {
	Name                 *string
	Species              *string
	Location             *string
	Notes                *string
	WateringFrequency    *Frequency
	FertilizingFrequency *Frequency
}

func (p PlantPatch) IsEmpty() bool {
	return p.Name == nil && p.Species == nil && p.Location == nil && p.Notes == nil &&
		p.WateringFrequency == nil && p.FertilizingFrequency == nil
}

func (p PlantPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: plant name is required", common.ErrValidation)
	}
	if p.WateringFrequency != nil {
		if err := p.WateringFrequency.validate("watering frequency"); err != nil {
			return err
		}
	}
	if p.FertilizingFrequency != nil {
		if err := p.FertilizingFrequency.validate("fertilizing frequency"); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges the patch into pl.
func (p PlantPatch) Apply(pl *Plant) {
	if p.Name != nil {
		pl.Name = strings.TrimSpace(*p.Name)
	}
	if p.Species != nil {
		pl.Species = *p.Species
	}
	if p.Location != nil {
		pl.Location = *p.Location
	}
	if p.Notes != nil {
		pl.Notes = *p.Notes
	}
	if p.WateringFrequency != nil {
		pl.WateringFrequency = *p.WateringFrequency
	}
	if p.FertilizingFrequency != nil {
		pl.FertilizingFrequency = *p.FertilizingFrequency
	}
}

// WateringDays returns the watering interval, or DefaultWateringDays when
// the stored value is missing or unusable.
func (pl Plant) WateringDays() int {
	if n, ok := pl.WateringFrequency.Days(); ok && n > 0 {
		return n
	}
	return DefaultWateringDays
}

// FertilizingDays returns the fertilizing interval, or DefaultFertilizingDays.
func (pl Plant) FertilizingDays() int {
	if n, ok := pl.FertilizingFrequency.Days(); ok && n > 0 {
		return n
	}
	return DefaultFertilizingDays
}

// FrequencyDays returns the interval configured for care type c.
func (pl Plant) FrequencyDays(c CareType) int {
	if c == CareFertilize {
		return pl.FertilizingDays()
	}
	return pl.WateringDays()
}

// LastCare returns the cached timestamp of the last care of type c.
func (pl Plant) LastCare(c CareType) *time.Time {
	if c == CareFertilize {
		return pl.LastFertilized
	}
	return pl.LastWatered
}

// RecordCare appends e to the care log and moves the matching cached
// timestamp in the same step.
func (pl *Plant) RecordCare(e CareEntry) {
	pl.CareLog = append(pl.CareLog, e)
	ts := e.Timestamp
	switch e.Type {
	case CareWater:
		pl.LastWatered = &ts
	case CareFertilize:
		pl.LastFertilized = &ts
	}
}

// AddPhoto appends ph to the timeline.
func (pl *Plant) AddPhoto(ph Photo) {
	pl.Photos = append(pl.Photos, ph)
}

// LatestPhoto returns the most recently added photo.
func (pl Plant) LatestPhoto() (Photo, bool) {
	if len(pl.Photos) == 0 {
		return Photo{}, false
	}
	return pl.Photos[len(pl.Photos)-1], true
}

// SortedPhotos returns the photos newest first without touching pl.
func (pl Plant) SortedPhotos() []Photo {
	out := slices.Clone(pl.Photos)
	slices.SortStableFunc(out, func(a, b Photo) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return out
}

// Normalize applies read-time defaults: nil sequences become empty and the
// cached last-care timestamps are moved forward to the newest log entry.
func (pl *Plant) Normalize() {
	if pl.Photos == nil {
		pl.Photos = []Photo{}
	}
	if pl.CareLog == nil {
		pl.CareLog = []CareEntry{}
	}
	for _, e := range pl.CareLog {
		switch e.Type {
		case CareWater:
			pl.LastWatered = later(pl.LastWatered, e.Timestamp)
		case CareFertilize:
			pl.LastFertilized = later(pl.LastFertilized, e.Timestamp)
		}
	}
}

func later(cached *time.Time, t time.Time) *time.Time {
	if cached == nil || t.After(*cached) {
		return &t
	}
	return cached
}

// Clone returns a deep copy of pl.
func (pl Plant) Clone() Plant {
	out := pl
	out.Photos = slices.Clone(pl.Photos)
	out.CareLog = slices.Clone(pl.CareLog)
	if out.Photos == nil {
		out.Photos = []Photo{}
	}
	if out.CareLog == nil {
		out.CareLog = []CareEntry{}
	}
	if pl.LastWatered != nil {
		t := *pl.LastWatered
		out.LastWatered = &t
	}
	if pl.LastFertilized != nil {
		t := *pl.LastFertilized
		out.LastFertilized = &t
	}
	return out
}
