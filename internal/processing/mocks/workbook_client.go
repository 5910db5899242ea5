package mocks

import "txt_to_excel/internal/sheets"

// MockWorkbookClient is a test double for the sheets.Client template opener
type MockWorkbookClient struct {
	// Responses to return
	OpenTemplateResponse sheets.WorkbookAPI

	// Errors to return
	OpenTemplateError error

	// Call tracking
	OpenTemplateCalls []string
}

func (m *MockWorkbookClient) OpenTemplate(path string) (sheets.WorkbookAPI, error) {
	m.OpenTemplateCalls = append(m.OpenTemplateCalls, path)
	if m.OpenTemplateError != nil {
		return nil, m.OpenTemplateError
	}
	return m.OpenTemplateResponse, nil
}

// MockWorkbook is a test double for an opened workbook
type MockWorkbook struct {
	// Errors to return
	WriteUnitsError error
	SaveError       error

	// Call tracking
	WrittenUnits    []string
	WrittenStartRow int
	SavedPath       string
	Closed          bool
}

func (m *MockWorkbook) WriteUnits(units []string, startRow int) (int, error) {
	if m.WriteUnitsError != nil {
		return 0, m.WriteUnitsError
	}
	m.WrittenUnits = append([]string(nil), units...)
	m.WrittenStartRow = startRow
	return len(units), nil
}

func (m *MockWorkbook) Save(outputPath string) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.SavedPath = outputPath
	return nil
}

func (m *MockWorkbook) Close() error {
	m.Closed = true
	return nil
}
