package processing

import "txt_to_excel/internal/sheets"

// WorkbookClientInterface defines the template operations used by Converter
type WorkbookClientInterface interface {
	OpenTemplate(path string) (sheets.WorkbookAPI, error)
}
