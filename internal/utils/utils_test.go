package utils

import (
	"errors"
	"runtime/debug"
	"testing"
)

func TestDecodeUTF8Text(t *testing.T) {
	testCases := []struct {
		name          string
		input         []byte
		expected      string
		expectedError error
	}{
		{name: "empty", input: nil, expected: ""},
		{name: "ascii", input: []byte("print(1)"), expected: "print(1)"},
		{name: "multibyte", input: []byte("héllo │ 世界"), expected: "héllo │ 世界"},
		{name: "nul bytes are valid text", input: []byte("a\x00b"), expected: "a\x00b"},
		{name: "invalid sequence", input: []byte{0xff, 0xfe, 0x41}, expectedError: ErrInvalidUTF8},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			decoded, decodeError := DecodeUTF8Text(testCase.input)
			if testCase.expectedError != nil {
				if !errors.Is(decodeError, testCase.expectedError) {
					t.Fatalf("expected error %v, got %v", testCase.expectedError, decodeError)
				}
				return
			}
			if decodeError != nil {
				t.Fatalf("unexpected error: %v", decodeError)
			}
			if decoded != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, decoded)
			}
		})
	}
}

func TestVersionFromBuildInfo(t *testing.T) {
	testCases := []struct {
		name     string
		info     debug.BuildInfo
		expected string
	}{
		{
			name:     "tagged module version",
			info:     debug.BuildInfo{Main: debug.Module{Version: "v1.2.3"}},
			expected: "v1.2.3",
		},
		{
			name: "development build with revision",
			info: debug.BuildInfo{
				Main:     debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef0123"}},
			},
			expected: "0123456789ab",
		},
		{
			name: "dirty development build",
			info: debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			expected: "abc123-dirty",
		},
		{
			name:     "no version information",
			info:     debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			expected: "unknown",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			info := testCase.info
			if actual := versionFromBuildInfo(&info); actual != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, actual)
			}
		})
	}
}
