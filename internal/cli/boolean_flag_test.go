package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestToggleFlagParsesValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		arguments    []string
		expected     bool
		expectedArgs []string
		expectError  bool
	}{
		{
			name:      "defaults_to_false",
			arguments: []string{},
			expected:  false,
		},
		{
			name:      "sets_true_without_value",
			arguments: []string{"--pdf"},
			expected:  true,
		},
		{
			name:      "sets_false_with_equals",
			arguments: []string{"--pdf=false"},
			expected:  false,
		},
		{
			name:         "sets_false_with_no_literal",
			arguments:    []string{"--pdf", "no", "project"},
			expected:     false,
			expectedArgs: []string{"project"},
		},
		{
			name:         "sets_true_with_on_literal",
			arguments:    []string{"--pdf", "on", "project"},
			expected:     true,
			expectedArgs: []string{"project"},
		},
		{
			name:         "literal_before_value_flag_and_folder",
			arguments:    []string{"--pdf", "off", "--model", "gpt-4", "project"},
			expected:     false,
			expectedArgs: []string{"project"},
		},
		{
			name:         "keeps_literal_named_folder",
			arguments:    []string{"--pdf", "1"},
			expected:     true,
			expectedArgs: []string{"1"},
		},
		{
			name:         "keeps_literal_folder_after_value_flag",
			arguments:    []string{"--pdf", "no", "--model", "gpt-4"},
			expected:     true,
			expectedArgs: []string{"no"},
		},
		{
			name:         "keeps_folder_argument",
			arguments:    []string{"--pdf", "project"},
			expected:     true,
			expectedArgs: []string{"project"},
		},
		{
			name:         "stops_at_double_dash",
			arguments:    []string{"--pdf", "--", "yes"},
			expected:     true,
			expectedArgs: []string{"yes"},
		},
		{
			name:        "rejects_invalid_literal",
			arguments:   []string{"--pdf=maybe"},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			flagSet := pflag.NewFlagSet("toggle-test", pflag.ContinueOnError)
			var flagValue bool
			registerToggleFlag(flagSet, &flagValue, "pdf", "export a PDF")
			flagSet.String("model", "gpt-4o", "tokenizer model")
			parseErr := flagSet.Parse(normalizeToggleFlagArguments(flagSet, testCase.arguments))
			if testCase.expectError {
				if parseErr == nil {
					t.Fatalf("expected parse error for arguments %v", testCase.arguments)
				}
				return
			}
			if parseErr != nil {
				t.Fatalf("unexpected parse error: %v", parseErr)
			}
			if flagValue != testCase.expected {
				t.Fatalf("expected %t, got %t", testCase.expected, flagValue)
			}
			remaining := flagSet.Args()
			if len(remaining) != len(testCase.expectedArgs) {
				t.Fatalf("expected positional arguments %v, got %v", testCase.expectedArgs, remaining)
			}
			for index := range remaining {
				if remaining[index] != testCase.expectedArgs[index] {
					t.Fatalf("expected positional arguments %v, got %v", testCase.expectedArgs, remaining)
				}
			}
		})
	}
}
