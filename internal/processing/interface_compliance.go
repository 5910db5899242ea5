package processing

import "txt_to_excel/internal/sheets"

// Compile-time interface compliance checks
// These will cause compilation errors if the types don't implement the interfaces

var (
	_ WorkbookClientInterface = (*sheets.Client)(nil)
	_ sheets.WorkbookAPI      = (*sheets.Workbook)(nil)
)
