package idnakit

import "strings"

// Errors is a bit set of IDNA processing errors. Processing never stops at
// the first problem; every applicable bit is accumulated so one call
// surfaces everything wrong with a name. A zero value means the result is
// valid.
type Errors uint32

const (
	// ErrEmptyLabel: a non-final label (or the whole name) is empty.
	ErrEmptyLabel Errors = 1 << iota
	// ErrLabelTooLong: a label exceeds 63 bytes in its ASCII form. Checked
	// only in ToASCII operations and only under UseSTD3Rules.
	ErrLabelTooLong
	// ErrDomainNameTooLong: the name exceeds 255 bytes in DNS storage
	// form. Checked only in ToASCII operations and only under
	// UseSTD3Rules.
	ErrDomainNameTooLong
	// ErrLeadingHyphen: a label starts with '-'.
	ErrLeadingHyphen
	// ErrTrailingHyphen: a label ends with '-'.
	ErrTrailingHyphen
	// ErrHyphen34: a label that is not a valid ACE label has '-' in both
	// the third and fourth positions.
	ErrHyphen34
	// ErrLeadingCombiningMark: a label starts with a combining mark.
	ErrLeadingCombiningMark
	// ErrDisallowed: the input contains a disallowed code point.
	ErrDisallowed
	// ErrPunycode: a label starts with "xn--" but does not hold valid
	// Punycode.
	ErrPunycode
	// ErrLabelHasDot: a full stop survived inside a single label, for
	// example in a decoded ACE label or a single-label operation.
	ErrLabelHasDot
	// ErrInvalidACELabel: an ACE label decoded, but its decoded form is
	// not a normalized, re-encodable Unicode label.
	ErrInvalidACELabel
	// ErrBiDi: a label violates the RFC 5893 Bidi rule.
	ErrBiDi
	// ErrContextJ: a zero-width joiner appears outside the contexts
	// permitted by RFC 5892.
	ErrContextJ
)

var errorNames = []string{
	"EmptyLabel",
	"LabelTooLong",
	"DomainNameTooLong",
	"LeadingHyphen",
	"TrailingHyphen",
	"Hyphen34",
	"LeadingCombiningMark",
	"Disallowed",
	"Punycode",
	"LabelHasDot",
	"InvalidACELabel",
	"BiDi",
	"ContextJ",
}

// HasErrors reports whether any error bit is set.
func (e Errors) HasErrors() bool { return e != 0 }

// String lists the set bits joined by '|', or "<none>" for the zero value.
func (e Errors) String() string {
	if e == 0 {
		return "<none>"
	}
	var names []string
	for i, name := range errorNames {
		if e&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	if rest := e >> len(errorNames); rest != 0 {
		names = append(names, "unknown")
	}
	return strings.Join(names, "|")
}
