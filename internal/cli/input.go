package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/plantparent/internal/models"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// clearValue entered at an optional prompt empties the field.
const clearValue = "-"

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetMultiline prints a prompt to w and reads multiple lines until an empty
// line is entered (i.e., the user presses Enter twice). The trailing newline
// on each line is trimmed and the collected text is joined with '\n'.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// GetOptional shows current in the prompt and returns nil when the user
// keeps it (empty input). Entering clearValue returns an empty string.
func GetOptional(reader *bufio.Reader, prompt, current string, w io.Writer) (*string, error) {
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, current)
	}
	v, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return nil, err
	}
	switch v {
	case "":
		return nil, nil
	case clearValue:
		v = ""
	}
	return &v, nil
}

// Confirm asks a yes/no question; anything but y/yes is no.
func Confirm(reader *bufio.Reader, question string, w io.Writer) (bool, error) {
	v, err := GetSimpleText(reader, question+" [y/N]", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(v) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// parseLocation accepts a preset number, a preset key or free text.
func parseLocation(v string) string {
	if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= len(models.Locations) {
		return models.Locations[n-1].Value
	}
	for _, o := range models.Locations {
		if strings.EqualFold(v, o.Value) || strings.EqualFold(v, o.Label) {
			return o.Value
		}
	}
	return v
}

func locationPrompt() string {
	var b strings.Builder
	b.WriteString("Location:")
	for i, o := range models.Locations {
		fmt.Fprintf(&b, " %d) %s", i+1, o.Label)
	}
	return b.String()
}

func frequencyPrompt(c models.CareType) string {
	opts := models.WateringPresets
	name := "Watering"
	if c == models.CareFertilize {
		opts = models.FertilizingPresets
		name = "Fertilizing"
	}
	keys := make([]string, 0, len(opts))
	for _, o := range opts {
		keys = append(keys, o.Value)
	}
	return fmt.Sprintf("%s frequency in days (%s)", name, strings.Join(keys, ", "))
}
