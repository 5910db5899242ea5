package processing

import (
	"os"
	"strings"
)

// FullWidthComma joins the lines of one text unit (U+FF0C). Half-width commas
// inside the text are left alone.
const FullWidthComma = "，"

// ExtractUnits groups raw copy lines into text units.
//
// A blank line ends the current unit; the line breaks inside a unit become
// full-width commas. Consecutive blank lines act as a single separator, so
// no unit is ever empty. Each content line keeps its internal whitespace but
// loses leading and trailing whitespace.
func ExtractUnits(lines []string) []string {
	var units []string
	var current []string

	for _, raw := range lines {
		// Byte order marks show up as line-prefix artifacts in exported copy
		// documents; strip them wherever they appear.
		line := strings.ReplaceAll(strings.TrimRight(raw, "\r\n"), "\uFEFF", "")

		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				units = append(units, strings.Join(current, FullWidthComma))
				current = nil
			}
			continue
		}

		current = append(current, strings.TrimSpace(line))
	}

	if len(current) > 0 {
		units = append(units, strings.Join(current, FullWidthComma))
	}

	return units
}

// ReadLines reads the file at path as UTF-8 text and splits it into lines.
// The whole document is held in memory; ExtractUnits strips whatever line
// terminators survive the split.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return strings.Split(string(data), "\n"), nil
}
