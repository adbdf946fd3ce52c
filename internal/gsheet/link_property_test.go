package gsheet

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestParseLinkProperties uses property-based testing
func TestParseLinkProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: ParseLink is total and never invents an ID
	properties.Property("inputs without a sheet path yield an empty ref", prop.ForAll(
		func(s string) bool {
			if strings.Contains(s, "/spreadsheets/d/") {
				return true // only checking non-matching inputs here
			}
			ref := ParseLink(s)
			return ref.SpreadsheetID == ""
		},
		gen.AnyString(),
	))

	// Property: shareable links round-trip their ID and gid
	properties.Property("shareable links round-trip", prop.ForAll(
		func(id string, gid uint32) bool {
			link := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit#gid=%d", id, gid)
			ref := ParseLink(link)
			return ref.SpreadsheetID == id && ref.GID == fmt.Sprintf("%d", gid)
		},
		gen.AlphaString().SuchThat(func(s string) bool { return s != "" }),
		gen.UInt32(),
	))

	// Property: the gid capture only ever holds digits
	properties.Property("gid is empty or numeric", prop.ForAll(
		func(s string) bool {
			ref := ParseLink(s)
			if ref.GID == "" {
				return true
			}
			for _, r := range ref.GID {
				if r < '0' || r > '9' {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// TestBuildRangeProperties covers the resolution order over arbitrary names
func TestBuildRangeProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("result is never empty", prop.ForAll(
		func(sheet, rangeA1 string) bool {
			return BuildRange(sheet, rangeA1) != ""
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("separator appears exactly when both parts are given", prop.ForAll(
		func(sheet, rangeA1 string) bool {
			got := BuildRange(sheet, rangeA1)
			if sheet != "" && rangeA1 != "" {
				return got == sheet+"!"+rangeA1
			}
			return !strings.Contains(got, "!")
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
