// Package codepoint classifies code points for IDNA compatibility
// processing as defined by UTS #46.
//
// A code point's status is derived at lookup time from full case folding,
// width folding and NFKC (the bulk of the UTS #46 mapping is exactly that
// composition), with generated override tables for the cases the
// derivation cannot express: deviation characters, ignored characters, the
// dot-equivalent separators, and the rows where the IdnaMappingTable status
// disagrees with the derivation (symbols the table keeps valid, letters it
// disallows, mappings whose target differs from the fold). See internal/gen
// for the override data pipeline.
package codepoint

import (
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Status is the UTS #46 classification of a code point.
type Status uint8

const (
	// Valid code points pass through unchanged.
	Valid Status = iota
	// Mapped code points are replaced with their mapping.
	Mapped
	// Deviation code points map under transitional processing and pass
	// through under nontransitional processing.
	Deviation
	// Disallowed code points make the label invalid.
	Disallowed
	// DisallowedSTD3Valid behaves as Valid unless STD3 rules apply.
	DisallowedSTD3Valid
	// DisallowedSTD3Mapped behaves as Mapped unless STD3 rules apply.
	DisallowedSTD3Mapped
	// Ignored code points are dropped from the output.
	Ignored
)

// Table resolves code points to their status and replacement text. It is
// immutable after construction and safe for concurrent use.
type Table struct {
	deviations map[rune]string
	ignored    map[rune]struct{}
	separators map[rune]string
	mapped     map[rune]string
	valid      *unicode.RangeTable
	disallowed *unicode.RangeTable
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// DefaultTable returns the shared process-wide table. It is built on first
// use and read-only afterwards.
func DefaultTable() *Table {
	defaultOnce.Do(func() {
		defaultTable = &Table{
			deviations: deviationMappings,
			ignored:    ignoredRunes,
			separators: separatorMappings,
			mapped:     mappedOverrides,
			valid:      validOverrides,
			disallowed: disallowedOverrides,
		}
	})
	return defaultTable
}

// Lookup returns the status of r and, for Mapped, Deviation and
// DisallowedSTD3Mapped statuses, the replacement text. The replacement may
// be empty (deviation joiners map to nothing under transitional
// processing).
func (t *Table) Lookup(r rune) (Status, string) {
	if r < 0x80 {
		return asciiStatus(r)
	}
	if rep, ok := t.deviations[r]; ok {
		return Deviation, rep
	}
	if _, ok := t.ignored[r]; ok {
		return Ignored, ""
	}
	if rep, ok := t.separators[r]; ok {
		return Mapped, rep
	}
	if rep, ok := t.mapped[r]; ok {
		return Mapped, rep
	}
	if unicode.Is(t.valid, r) {
		return Valid, ""
	}
	if unicode.Is(t.disallowed, r) {
		return Disallowed, ""
	}

	folded := foldRune(r)
	if folded != string(r) {
		for _, fr := range folded {
			if !allowedRune(fr) {
				return Disallowed, ""
			}
		}
		return Mapped, folded
	}
	if !allowedRune(r) {
		return Disallowed, ""
	}
	return Valid, ""
}

// asciiStatus follows the UTS #46 ASCII rows: LDH and full stop are valid,
// uppercase letters map to lowercase, every other ASCII code point is
// disallowed_STD3_valid.
func asciiStatus(r rune) (Status, string) {
	switch {
	case 'a' <= r && r <= 'z', '0' <= r && r <= '9', r == '-', r == '.':
		return Valid, ""
	case 'A' <= r && r <= 'Z':
		return Mapped, string(r + ('a' - 'A'))
	}
	return DisallowedSTD3Valid, ""
}

// foldRune composes the derivable part of the UTS #46 mapping: full case
// folding, width folding and NFKC, with a second case fold because
// compatibility decomposition can surface new cased characters.
func foldRune(r rune) string {
	s := cases.Fold().String(string(r))
	s = width.Fold.String(s)
	s = norm.NFKC.String(s)
	if hasUpper(s) {
		s = cases.Fold().String(s)
	}
	return s
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return true
		}
	}
	return false
}

// allowedRune reports whether a non-mapping code point may appear in a
// processed label: letters, marks and numbers outside ASCII, LDH plus full
// stop inside it.
func allowedRune(r rune) bool {
	if r < 0x80 {
		return 'a' <= r && r <= 'z' || '0' <= r && r <= '9' || r == '-' || r == '.'
	}
	return unicode.In(r, unicode.L, unicode.M, unicode.N)
}
