package gsheet

import "regexp"

// Shareable link patterns:
//   https://docs.google.com/spreadsheets/d/{spreadsheetId}/edit#gid={sheetTabId}
var (
	spreadsheetLinkRe = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)
	gidRe             = regexp.MustCompile(`[?#&]gid=([0-9]+)`)
)

// SpreadsheetRef identifies a spreadsheet parsed from a shareable link.
// GID names a sheet tab within the spreadsheet; it is carried for callers
// that want to resolve a tab via metadata, no operation here consumes it.
type SpreadsheetRef struct {
	SpreadsheetID string
	GID           string
}

// ParseLink extracts the spreadsheet ID and optional gid from a shareable
// URL. It is total: any input, including empty or malformed strings, yields
// a well-formed ref with empty fields for whatever did not match.
func ParseLink(link string) SpreadsheetRef {
	ref := SpreadsheetRef{}
	if m := spreadsheetLinkRe.FindStringSubmatch(link); m != nil {
		ref.SpreadsheetID = m[1]
	}
	if m := gidRe.FindStringSubmatch(link); m != nil {
		ref.GID = m[1]
	}
	return ref
}

// BuildRange resolves a sheet name and an A1 range into a single range
// string: sheet alone, "sheet!range" when both are given, the range alone,
// or the default "A1" when neither is given.
func BuildRange(sheetName, rangeA1 string) string {
	switch {
	case sheetName != "" && rangeA1 != "":
		return sheetName + "!" + rangeA1
	case sheetName != "":
		return sheetName
	case rangeA1 != "":
		return rangeA1
	default:
		return "A1"
	}
}

// Ref locates a spreadsheet either by explicit ID or by shareable link.
// The explicit ID wins when both are set.
type Ref struct {
	SpreadsheetID string
	Link          string
}

// ResolveID returns the spreadsheet ID, or "" when neither field yields one
func (r Ref) ResolveID() string {
	if r.SpreadsheetID != "" {
		return r.SpreadsheetID
	}
	return ParseLink(r.Link).SpreadsheetID
}
