package processing

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestExtractUnits(t *testing.T) {
	testCases := []struct {
		name     string
		lines    []string
		expected []string
	}{
		{
			name:     "EmptyInput",
			lines:    []string{},
			expected: nil,
		},
		{
			name:     "OnlyBlankLines",
			lines:    []string{"", "", ""},
			expected: nil,
		},
		{
			name:     "WhitespaceOnlyLinesCountAsBlank",
			lines:    []string{"   ", "\t", " \t "},
			expected: nil,
		},
		{
			name:     "SingleRunJoinsWithFullWidthComma",
			lines:    []string{"a", "b", "", "c"},
			expected: []string{"a，b", "c"},
		},
		{
			name:     "ConsecutiveBlanksCollapse",
			lines:    []string{"a", "", "", "b"},
			expected: []string{"a", "b"},
		},
		{
			name:     "LeadingBlanksIgnored",
			lines:    []string{"", "", "a", "b"},
			expected: []string{"a，b"},
		},
		{
			name:     "TrailingBlanksIgnored",
			lines:    []string{"a", "", ""},
			expected: []string{"a"},
		},
		{
			name:     "NoBlankLinesYieldsOneUnit",
			lines:    []string{"a", "b", "c"},
			expected: []string{"a，b，c"},
		},
		{
			name:     "NoTrailingBlankStillFlushes",
			lines:    []string{"a", "", "b"},
			expected: []string{"a", "b"},
		},
		{
			name:     "LineTerminatorsStripped",
			lines:    []string{"a\r\n", "b\n", "", "c\r"},
			expected: []string{"a，b", "c"},
		},
		{
			name:     "BomStrippedAnywhereInLine",
			lines:    []string{"\uFEFFa", "b\uFEFFc"},
			expected: []string{"a，bc"},
		},
		{
			name:     "BomOnlyLineIsBlank",
			lines:    []string{"\uFEFF", "a"},
			expected: []string{"a"},
		},
		{
			name:     "HalfWidthCommasUntouched",
			lines:    []string{"a,b", "c,d"},
			expected: []string{"a,b，c,d"},
		},
		{
			name:     "EdgeWhitespaceTrimmedInternalPreserved",
			lines:    []string{"  hello  world  ", "\tfoo bar"},
			expected: []string{"hello  world，foo bar"},
		},
		{
			name:     "ChineseCopyDocument",
			lines:    []string{"第一句文案", "第二句文案", "", "另一条文案"},
			expected: []string{"第一句文案，第二句文案", "另一条文案"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractUnits(tc.lines)

			if len(tc.expected) == 0 {
				if len(got) != 0 {
					t.Errorf("Expected no units, got %v", got)
				}
				return
			}

			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	t.Run("SplitsOnNewlines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "copy.txt")
		content := "\uFEFF第一行\r\n第二行\n\n第三行\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}

		lines, err := ReadLines(path)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		units := ExtractUnits(lines)
		expected := []string{"第一行，第二行", "第三行"}
		if !reflect.DeepEqual(units, expected) {
			t.Errorf("Expected %v, got %v", expected, units)
		}
	})

	t.Run("EmptyFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}

		lines, err := ReadLines(path)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if units := ExtractUnits(lines); len(units) != 0 {
			t.Errorf("Expected no units from empty file, got %v", units)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := ReadLines(filepath.Join(t.TempDir(), "nope.txt"))
		if err == nil {
			t.Fatal("Expected error for missing file, got nil")
		}
	})
}
