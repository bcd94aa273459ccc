package config

import (
	"reflect"
	"testing"
)

func TestNewFilterExtensions(t *testing.T) {
	testCases := []struct {
		name        string
		includeCode bool
		expected    []string
	}{
		{
			name:        "baseline_only",
			includeCode: false,
			expected:    []string{".csv", ".ini", ".json", ".log", ".md", ".txt", ".xml", ".yaml", ".yml"},
		},
		{
			name:        "with_code",
			includeCode: true,
			expected:    []string{".css", ".csv", ".html", ".ini", ".js", ".json", ".log", ".md", ".py", ".txt", ".xml", ".yaml", ".yml"},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			filter := NewFilter(testCase.includeCode, "")
			if actual := filter.Extensions(); !reflect.DeepEqual(actual, testCase.expected) {
				t.Fatalf("unexpected extensions: got %v want %v", actual, testCase.expected)
			}
		})
	}
}

func TestFilterExtensionsReturnsCopy(t *testing.T) {
	filter := NewFilter(false, "")
	extensions := filter.Extensions()
	extensions[0] = ".exe"
	if filter.Qualifies("tool.exe") {
		t.Fatalf("mutating the returned slice changed the filter")
	}
}

func TestFilterQualifies(t *testing.T) {
	filter := NewFilter(false, "")
	codeFilter := NewFilter(true, "")
	testCases := []struct {
		name           string
		fileName       string
		expected       bool
		expectedInCode bool
	}{
		{name: "markdown", fileName: "README.md", expected: true, expectedInCode: true},
		{name: "upper case extension", fileName: "NOTES.TXT", expected: true, expectedInCode: true},
		{name: "mixed case yaml", fileName: "config.YmL", expected: true, expectedInCode: true},
		{name: "python", fileName: "app.py", expected: false, expectedInCode: true},
		{name: "stylesheet", fileName: "site.css", expected: false, expectedInCode: true},
		{name: "go source", fileName: "main.go", expected: false, expectedInCode: false},
		{name: "no extension", fileName: "Makefile", expected: false, expectedInCode: false},
		{name: "suffix without dot", fileName: "notmd", expected: false, expectedInCode: false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if actual := filter.Qualifies(testCase.fileName); actual != testCase.expected {
				t.Fatalf("baseline: expected %t for %s, got %t", testCase.expected, testCase.fileName, actual)
			}
			if actual := codeFilter.Qualifies(testCase.fileName); actual != testCase.expectedInCode {
				t.Fatalf("code: expected %t for %s, got %t", testCase.expectedInCode, testCase.fileName, actual)
			}
		})
	}
}

func TestFilterExclusion(t *testing.T) {
	filter := NewFilter(false, "merged", "merged_output.md", "merged_output.pdf", "merged_output.zip")
	testCases := []struct {
		name         string
		relativePath string
		isDirectory  bool
		expected     bool
	}{
		{name: "hidden file", relativePath: ".env", expected: true},
		{name: "apple double", relativePath: "docs/._README.md", expected: true},
		{name: "git directory", relativePath: ".git", isDirectory: true, expected: true},
		{name: "node modules", relativePath: "node_modules", isDirectory: true, expected: true},
		{name: "nested node modules", relativePath: "a/b/c/node_modules", isDirectory: true, expected: true},
		{name: "regular directory", relativePath: "src", isDirectory: true, expected: false},
		{name: "output directory itself", relativePath: "merged", isDirectory: true, expected: false},
		{name: "previous markdown artifact", relativePath: "merged/merged_output.md", expected: true},
		{name: "previous zip artifact", relativePath: "merged/merged_output.zip", expected: true},
		{name: "user file in output directory", relativePath: "merged/notes.md", expected: false},
		{name: "artifact name in nested directory", relativePath: "docs/merged/merged_output.md", expected: false},
		{name: "artifact name at root", relativePath: "merged_output.md", expected: false},
		{name: "directory named like artifact", relativePath: "merged/merged_output.md", isDirectory: true, expected: false},
		{name: "dot inside name", relativePath: "a.b.c", expected: false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := filter.IsExcludedEntry(testCase.relativePath, testCase.isDirectory)
			if actual != testCase.expected {
				t.Fatalf("expected %t for %s, got %t", testCase.expected, testCase.relativePath, actual)
			}
		})
	}
}

func TestFilterIsOutputDirectory(t *testing.T) {
	filter := NewFilter(false, "merged")
	if !filter.IsOutputDirectory("merged") {
		t.Fatalf("expected merged to be the output directory")
	}
	if filter.IsOutputDirectory("docs/merged") {
		t.Fatalf("nested merged directory must not be the output directory")
	}
	if NewFilter(false, "").IsOutputDirectory("") {
		t.Fatalf("filter without output directory reported one")
	}
}
