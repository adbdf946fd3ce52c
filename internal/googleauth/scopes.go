package googleauth

import (
	"strings"

	drive "google.golang.org/api/drive/v3"
	sheets "google.golang.org/api/sheets/v4"
)

// scopeAliases maps short scope names to full OAuth scope URLs.
// The constants come from the generated API packages so they track upstream.
var scopeAliases = map[string]string{
	"sheets":          sheets.SpreadsheetsScope,
	"sheets.readonly": sheets.SpreadsheetsReadonlyScope,
	"drive":           drive.DriveScope,
	"drive.file":      drive.DriveFileScope,
	"drive.readonly":  drive.DriveReadonlyScope,
}

// ResolveScopes expands scope aliases to full URLs. Unknown values are
// passed through untouched so full scope URLs keep working. An empty list
// defaults to the spreadsheets scope.
func ResolveScopes(scopes ...string) []string {
	if len(scopes) == 0 {
		return []string{sheets.SpreadsheetsScope}
	}

	resolved := make([]string, 0, len(scopes))
	for _, s := range scopes {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if full, ok := scopeAliases[s]; ok {
			resolved = append(resolved, full)
		} else {
			resolved = append(resolved, s)
		}
	}
	if len(resolved) == 0 {
		return []string{sheets.SpreadsheetsScope}
	}
	return resolved
}
