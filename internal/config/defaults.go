package config

import "io/fs"

// Conversion default constants
const (
	// MinStartRow is the smallest row a conversion may write into (rows are 1-based)
	MinStartRow = 1

	// DefaultStartRow is the row writing starts at when none is configured
	DefaultStartRow = 1

	// DefaultTemplateFilename is where the bundled template is materialized
	DefaultTemplateFilename = "txt_to_excel_template.xlsx"

	// DefaultTemplateSheet is the sheet name excelize gives a fresh workbook
	DefaultTemplateSheet = "Sheet1"

	// TempFilePattern names the scratch file used for atomic workbook saves
	TempFilePattern = ".txt_to_excel-*.xlsx"
)

// OutputFileMode is the permission set for generated workbooks
const OutputFileMode fs.FileMode = 0o644

// ConversionDefaults defines the fallback behavior of a conversion
type ConversionDefaults struct {
	StartRow         int
	TemplateFilename string
	SheetName        string
}

// DefaultConversion provides sensible defaults
var DefaultConversion = ConversionDefaults{
	StartRow:         DefaultStartRow,
	TemplateFilename: DefaultTemplateFilename,
	SheetName:        DefaultTemplateSheet,
}
