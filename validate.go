package idnakit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/secure/bidirule"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"

	"idnakit/internal/joining"
)

const (
	zwnj = '\u200c'
	zwj  = '\u200d'
)

// validateLabel runs the structural checks on a single non-empty label.
// Every check is evaluated; none short-circuits, so one pass reports all
// applicable errors.
func (e *Engine) validateLabel(l *label, s string) {
	if s[0] == '-' {
		l.errs |= ErrLeadingHyphen
	}
	if s[len(s)-1] == '-' {
		l.errs |= ErrTrailingHyphen
	}
	if len(s) >= 4 && s[2] == '-' && s[3] == '-' {
		l.errs |= ErrHyphen34
	}
	if first, _ := utf8.DecodeRuneInString(s); unicode.In(first, unicode.M) {
		l.errs |= ErrLeadingCombiningMark
	}
	if strings.ContainsRune(s, '.') {
		l.errs |= ErrLabelHasDot
	}
	if e.opts&CheckBiDi != 0 && containsRTL(s) && !bidirule.ValidString(s) {
		l.errs |= ErrBiDi
	}
	if e.opts&CheckContextJ != 0 && containsJoiner(s) && !validContextJ(s) {
		l.errs |= ErrContextJ
	}
}

// containsRTL reports whether s contains a right-to-left code point. The
// Bidi rule only constrains labels of bidi domain names; purely
// left-to-right labels (including ones starting with digits) are exempt.
func containsRTL(s string) bool {
	for i := 0; i < len(s); {
		p, sz := bidi.LookupString(s[i:])
		if sz == 0 {
			return false
		}
		switch p.Class() {
		case bidi.R, bidi.AL, bidi.AN:
			return true
		}
		i += sz
	}
	return false
}

func containsJoiner(s string) bool {
	return strings.ContainsRune(s, zwnj) || strings.ContainsRune(s, zwj)
}

// validContextJ checks the RFC 5892 Appendix A rules for ZWNJ and ZWJ: a
// preceding virama permits either joiner; ZWNJ is additionally permitted
// between cursively connecting runs, (L|D)(T)* before and (T)*(R|D) after.
func validContextJ(s string) bool {
	runes := []rune(s)
	for i, r := range runes {
		if r != zwnj && r != zwj {
			continue
		}
		if i == 0 {
			return false
		}
		if combiningClass(runes[i-1]) == 9 {
			continue
		}
		if r == zwj {
			return false
		}
		if !joinsBefore(runes, i) || !joinsAfter(runes, i) {
			return false
		}
	}
	return true
}

func joinsBefore(runes []rune, i int) bool {
	for j := i - 1; j >= 0; j-- {
		switch joining.Lookup(runes[j]) {
		case joining.Transparent:
			continue
		case joining.Left, joining.Dual:
			return true
		default:
			return false
		}
	}
	return false
}

func joinsAfter(runes []rune, i int) bool {
	for j := i + 1; j < len(runes); j++ {
		switch joining.Lookup(runes[j]) {
		case joining.Transparent:
			continue
		case joining.Right, joining.Dual:
			return true
		default:
			return false
		}
	}
	return false
}

// combiningClass returns the canonical combining class of r. Class 9 is
// virama.
func combiningClass(r rune) uint8 {
	return norm.NFC.PropertiesString(string(r)).CCC()
}
