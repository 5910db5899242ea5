package sheets

// WorkbookAPI defines the operations a conversion performs on an opened
// workbook. This separates infrastructure concerns from business logic.
//
// Note on cell addressing:
// excelize addresses cells by name ("A3"); everything above this layer
// addresses them by 1-based (row, column) pairs. The translation happens
// inside this package and nowhere else.
type WorkbookAPI interface {
	// WriteUnits writes each unit into column 1 of the active sheet, one row
	// per unit starting at startRow, and returns how many were written.
	// The start row is validated before any cell is touched.
	WriteUnits(units []string, startRow int) (int, error)

	// Save persists the in-memory workbook to outputPath. A failed save never
	// leaves a partial file at outputPath.
	Save(outputPath string) error

	// Close releases the resources held by the opened template.
	Close() error
}
