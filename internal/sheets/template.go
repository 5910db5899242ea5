package sheets

import (
	"fmt"
	"os"
	"path/filepath"

	"txt_to_excel/internal/config"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// DefaultTemplatePath returns the conventional location of the bundled
// template, relative to the working directory.
func DefaultTemplatePath() string {
	return config.DefaultTemplateFilename
}

// EnsureDefaultTemplate materializes the bundled minimal template at path if
// nothing exists there yet, and returns the path. An empty path selects the
// conventional location.
//
// The template is a single empty worksheet, built lazily so conversions
// always have a starting workbook even when the user supplies no template of
// their own. An existing file at path is never overwritten.
func EnsureDefaultTemplate(path string) (string, error) {
	if path == "" {
		path = DefaultTemplatePath()
	}

	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to check template %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create template directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	log.Info().Str("template", path).Msg("Materialized bundled default template")
	return path, nil
}
