package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/plantparent/internal/common"
)

// CareType classifies a care action.
type CareType string

const (
	CareWater     CareType = "water"
	CareFertilize CareType = "fertilize"
)

// CareTypes lists every care type in the order reminders evaluate them.
var CareTypes = []CareType{CareWater, CareFertilize}

func (c CareType) Validate() error {
	switch c {
	case CareWater, CareFertilize:
		return nil
	default:
		return fmt.Errorf("%w: unknown care type %q", common.ErrValidation, string(c))
	}
}

func ParseCareType(s string) (CareType, error) {
	c := CareType(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Validate()
}

// CareEntry is an immutable record of one watering or fertilizing event.
type CareEntry struct {
	ID        string    `json:"id"`
	Type      CareType  `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// Photo is one picture in a plant's growth timeline. URI points at a file
// owned by the platform image picker.
type Photo struct {
	ID        string    `json:"id"`
	URI       string    `json:"uri"`
	Timestamp time.Time `json:"timestamp"`
}

// Frequency is a care interval in whole days. It is stored as a decimal
// string; numbers are accepted when reading.
type Frequency string

func (f *Frequency) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case nil:
		*f = ""
	case string:
		*f = Frequency(value)
	case float64:
		*f = Frequency(strconv.FormatInt(int64(value), 10))
	default:
		return fmt.Errorf("frequency must be a string or number, got %T", v)
	}
	return nil
}

// Days parses the frequency. ok is false for empty or non-numeric values.
func (f Frequency) Days() (days int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(string(f)))
	if err != nil {
		return 0, false
	}
	return n, true
}

func (f Frequency) validate(field string) error {
	if strings.TrimSpace(string(f)) == "" {
		return nil
	}
	n, ok := f.Days()
	if !ok || n <= 0 {
		return fmt.Errorf("%w: %s must be a positive number of days, got %q", common.ErrValidation, field, string(f))
	}
	return nil
}

// FrequencyOf converts a day count into a Frequency.
func FrequencyOf(days int) Frequency {
	return Frequency(strconv.Itoa(days))
}
