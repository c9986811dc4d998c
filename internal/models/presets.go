package models

// Option is a selectable value with its display label.
type Option struct {
	Value string
	Label string
}

// Locations are the suggested plant locations. Any other string is allowed.
var Locations = []Option{
	{Value: "living-room", Label: "Living Room"},
	{Value: "bedroom", Label: "Bedroom"},
	{Value: "kitchen", Label: "Kitchen"},
	{Value: "bathroom", Label: "Bathroom"},
	{Value: "office", Label: "Office"},
	{Value: "balcony", Label: "Balcony"},
	{Value: "garden", Label: "Garden"},
	{Value: "other", Label: "Other"},
}

var WateringPresets = []Option{
	{Value: "1", Label: "Every day"},
	{Value: "3", Label: "Every 2-3 days"},
	{Value: "7", Label: "Weekly"},
	{Value: "14", Label: "Every 2 weeks"},
	{Value: "30", Label: "Monthly"},
}

var FertilizingPresets = []Option{
	{Value: "14", Label: "Every 2 weeks"},
	{Value: "30", Label: "Monthly"},
	{Value: "60", Label: "Every 2 months"},
	{Value: "90", Label: "Seasonally"},
	{Value: "365", Label: "Never"},
}

// LocationLabel returns the display label of a location key, or the key
// itself for free-form locations.
func LocationLabel(key string) string {
	return labelOf(Locations, key)
}

// FrequencyLabel returns the preset label for f, or "Every N days".
func FrequencyLabel(c CareType, f Frequency) string {
	presets := WateringPresets
	if c == CareFertilize {
		presets = FertilizingPresets
	}
	for _, o := range presets {
		if o.Value == string(f) {
			return o.Label
		}
	}
	if n, ok := f.Days(); ok {
		if n == 1 {
			return "Every day"
		}
		return "Every " + string(FrequencyOf(n)) + " days"
	}
	return string(f)
}

func labelOf(opts []Option, key string) string {
	for _, o := range opts {
		if o.Value == key {
			return o.Label
		}
	}
	return key
}
