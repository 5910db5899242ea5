package sheets

import (
	"fmt"
	"os"
	"path/filepath"

	"txt_to_excel/internal/config"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// Client opens Excel templates using excelize
type Client struct{}

// NewClient creates a new template client
func NewClient() *Client {
	return &Client{}
}

// OpenTemplate loads the template at path into memory and selects its active
// sheet. The file on disk is opened read-only; only the in-memory copy is
// mutated by later writes.
func (c *Client) OpenTemplate(path string) (WorkbookAPI, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTemplate, path, err)
	}

	sheetName := f.GetSheetName(f.GetActiveSheetIndex())
	if sheetName == "" {
		f.Close()
		return nil, fmt.Errorf("%w: %s has no active sheet", ErrInvalidTemplate, path)
	}

	log.Debug().
		Str("template", path).
		Str("sheet", sheetName).
		Msg("Opened template workbook")

	return &Workbook{file: f, sheet: sheetName}, nil
}

// Workbook is an opened template plus its active sheet
type Workbook struct {
	file  *excelize.File
	sheet string
}

// WriteUnits writes each unit into column 1 of successive rows starting at
// startRow. Existing cell values are overwritten; cells outside column 1 rows
// startRow..startRow+len(units)-1 are left untouched.
func (w *Workbook) WriteUnits(units []string, startRow int) (int, error) {
	if startRow < config.MinStartRow {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidStartRow, startRow)
	}

	for i, unit := range units {
		row := startRow + i
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return 0, fmt.Errorf("failed to address row %d: %w", row, err)
		}
		if err := w.file.SetCellValue(w.sheet, cell, unit); err != nil {
			return 0, fmt.Errorf("failed to write row %d: %w", row, err)
		}
	}

	log.Debug().
		Int("units", len(units)).
		Int("start_row", startRow).
		Str("sheet", w.sheet).
		Msg("Wrote text units into workbook")

	return len(units), nil
}

// Save persists the workbook to outputPath. The workbook is saved to a
// temporary file in the destination directory and renamed into place, so a
// failed save never leaves a partial file at outputPath.
func (w *Workbook) Save(outputPath string) error {
	tmp, err := os.CreateTemp(filepath.Dir(outputPath), config.TempFilePattern)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := w.file.SaveAs(tmpPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := os.Chmod(tmpPath, config.OutputFileMode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	log.Debug().Str("output", outputPath).Msg("Workbook persisted")
	return nil
}

// Close releases the resources held by the underlying excelize file
func (w *Workbook) Close() error {
	return w.file.Close()
}
