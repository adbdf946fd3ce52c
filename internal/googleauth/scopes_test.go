package googleauth

import (
	"reflect"
	"testing"

	drive "google.golang.org/api/drive/v3"
	sheets "google.golang.org/api/sheets/v4"
)

func TestResolveScopes(t *testing.T) {
	testCases := []struct {
		name     string
		scopes   []string
		expected []string
	}{
		{
			name:     "EmptyDefaultsToSheets",
			scopes:   nil,
			expected: []string{sheets.SpreadsheetsScope},
		},
		{
			name:     "SheetsAlias",
			scopes:   []string{"sheets"},
			expected: []string{sheets.SpreadsheetsScope},
		},
		{
			name:     "DriveReadonlyAlias",
			scopes:   []string{"drive.readonly"},
			expected: []string{drive.DriveReadonlyScope},
		},
		{
			name:     "FullURLPassesThrough",
			scopes:   []string{"https://www.googleapis.com/auth/spreadsheets.readonly"},
			expected: []string{"https://www.googleapis.com/auth/spreadsheets.readonly"},
		},
		{
			name:     "MixedAliasesAndURLs",
			scopes:   []string{"sheets", "drive.file"},
			expected: []string{sheets.SpreadsheetsScope, drive.DriveFileScope},
		},
		{
			name:     "BlanksDropped",
			scopes:   []string{"", "  "},
			expected: []string{sheets.SpreadsheetsScope},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveScopes(tc.scopes...)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Expected scopes %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestBearerHeader(t *testing.T) {
	if got := BearerHeader("abc"); got != "Bearer abc" {
		t.Errorf("Expected 'Bearer abc', got %q", got)
	}
}
