package processing

import (
	"fmt"
	"os"

	"txt_to_excel/internal/config"
	"txt_to_excel/internal/sheets"

	"github.com/rs/zerolog/log"
)

// Converter runs the copy-document pipeline: read, segment, write, persist
type Converter struct {
	workbooks WorkbookClientInterface
}

// NewConverter creates a converter backed by the given template client
func NewConverter(workbooks WorkbookClientInterface) *Converter {
	return &Converter{workbooks: workbooks}
}

// Convert reads the copy document at txtPath, segments it into text units,
// writes them into column 1 of the template's active sheet starting at
// startRow, and persists the result to outputPath. Returns the number of
// units written.
//
// The template is mutated in memory only; outputPath is not touched unless
// every earlier stage succeeds.
func (c *Converter) Convert(txtPath, templatePath, outputPath string, startRow int) (int, error) {
	if err := requireRegularFile(txtPath); err != nil {
		return 0, err
	}
	if err := requireRegularFile(templatePath); err != nil {
		return 0, err
	}
	if startRow < config.MinStartRow {
		return 0, fmt.Errorf("%w: got %d", sheets.ErrInvalidStartRow, startRow)
	}

	lines, err := ReadLines(txtPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", txtPath, err)
	}

	units := ExtractUnits(lines)
	log.Debug().
		Int("lines", len(lines)).
		Int("units", len(units)).
		Str("txt", txtPath).
		Msg("Segmented copy document")

	wb, err := c.workbooks.OpenTemplate(templatePath)
	if err != nil {
		return 0, err
	}
	defer wb.Close()

	count, err := wb.WriteUnits(units, startRow)
	if err != nil {
		return 0, err
	}

	if err := wb.Save(outputPath); err != nil {
		return 0, err
	}

	log.Info().
		Int("units", count).
		Str("output", outputPath).
		Msg("Conversion complete")

	return count, nil
}

// requireRegularFile fails with ErrFileNotFound unless path names an existing
// regular file
func requireRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", sheets.ErrFileNotFound, path)
	}
	return nil
}
