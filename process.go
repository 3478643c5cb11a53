package idnakit

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"idnakit/internal/codepoint"
	"idnakit/internal/punycode"
)

// acePrefix marks an ASCII-compatible-encoded label.
const acePrefix = "xn--"

// label is one dot-separated component of a name during processing. The
// [start,end) offsets point into the mapped string the splitter ran over;
// text starts as that slice and is replaced when the label is decoded or
// encoded.
type label struct {
	text       string
	start, end int
	errs       Errors
}

func (e *Engine) transitional(toASCII bool) bool {
	return toASCII && e.opts&NontransitionalToASCII == 0
}

func (e *Engine) processName(name string, toASCII bool) (string, Errors) {
	mapped, errs := e.mapString(name, e.transitional(toASCII))
	mapped = norm.NFC.String(mapped)

	labels := splitLabels(mapped)
	for i := range labels {
		l := &labels[i]
		if l.text == "" {
			// A single trailing empty label is the conventional root
			// terminator; any other empty label is an error.
			if i != len(labels)-1 || len(labels) == 1 {
				l.errs |= ErrEmptyLabel
			}
			continue
		}
		e.convertLabel(l, toASCII)
	}

	out := joinLabels(mapped, labels)
	for i := range labels {
		errs |= labels[i].errs
	}
	if toASCII && e.opts&UseSTD3Rules != 0 && storageLength(out) > 255 {
		errs |= ErrDomainNameTooLong
	}
	return out, errs
}

func (e *Engine) processLabelOp(input string, toASCII bool) (string, Errors) {
	mapped, errs := e.mapString(input, e.transitional(toASCII))
	mapped = norm.NFC.String(mapped)

	if mapped == "" {
		return mapped, errs | ErrEmptyLabel
	}

	l := label{text: mapped, end: len(mapped)}
	e.convertLabel(&l, toASCII)
	errs |= l.errs

	// ToUnicode of a broken ACE label yields the untouched input.
	if !toASCII && errs&(ErrPunycode|ErrInvalidACELabel) != 0 {
		return input, errs
	}
	return l.text, errs
}

// mapString applies the per-code-point mapping step. Disallowed code
// points are flagged but kept in place so offsets stay consistent for the
// splitter.
func (e *Engine) mapString(s string, transitional bool) (string, Errors) {
	var errs Errors
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		st, rep := e.table.Lookup(r)
		switch e.resolveSTD3(st) {
		case codepoint.Valid:
			b.WriteRune(r)
		case codepoint.Mapped:
			b.WriteString(rep)
		case codepoint.Deviation:
			if transitional {
				b.WriteString(rep)
			} else {
				b.WriteRune(r)
			}
		case codepoint.Ignored:
			// dropped
		case codepoint.Disallowed:
			errs |= ErrDisallowed
			b.WriteRune(r)
		}
	}
	return b.String(), errs
}

// resolveSTD3 collapses the STD3 statuses according to the engine options.
func (e *Engine) resolveSTD3(st codepoint.Status) codepoint.Status {
	switch st {
	case codepoint.DisallowedSTD3Valid:
		if e.opts&UseSTD3Rules != 0 {
			return codepoint.Disallowed
		}
		return codepoint.Valid
	case codepoint.DisallowedSTD3Mapped:
		if e.opts&UseSTD3Rules != 0 {
			return codepoint.Disallowed
		}
		return codepoint.Mapped
	}
	return st
}

// convertLabel runs ACE decoding, validation and (for ToASCII) re-encoding
// on a single non-empty label.
func (e *Engine) convertLabel(l *label, toASCII bool) {
	text := l.text
	if len(text) >= len(acePrefix) && strings.EqualFold(text[:len(acePrefix)], acePrefix) {
		e.convertACELabel(l, toASCII)
	} else {
		e.validateLabel(l, text)
		if toASCII && !isASCII(text) {
			enc, err := punycode.Encode(text)
			if err != nil {
				l.errs |= ErrPunycode
			} else {
				l.text = acePrefix + enc
			}
		}
	}
	if toASCII && e.opts&UseSTD3Rules != 0 && len(l.text) > 63 {
		l.errs |= ErrLabelTooLong
	}
}

// convertACELabel decodes an "xn--" label and validates the decoded form
// against its own encoding. On any decode failure, or when the payload
// decodes to nothing (such as "xn---"), the original text is kept and
// validated as a plain label, so an ACE-looking label still collects the
// structural errors (hyphens in positions 3 and 4 included).
func (e *Engine) convertACELabel(l *label, toASCII bool) {
	payload := l.text[len(acePrefix):]
	decoded, err := punycode.Decode(payload)
	if err != nil || decoded == "" {
		l.errs |= ErrPunycode | ErrInvalidACELabel
		e.validateLabel(l, l.text)
		return
	}

	if !norm.NFC.IsNormalString(decoded) {
		l.errs |= ErrInvalidACELabel
	}
	if isASCII(decoded) {
		// An ACE label must encode at least one non-ASCII code point.
		l.errs |= ErrInvalidACELabel
	}
	if enc, err := punycode.Encode(decoded); err != nil || !strings.EqualFold(enc, payload) {
		l.errs |= ErrInvalidACELabel
	}
	e.validateDecodedRunes(l, decoded)
	e.validateLabel(l, decoded)

	if !toASCII {
		l.text = decoded
	}
}

// validateDecodedRunes checks that a decoded ACE label contains only code
// points that are valid under nontransitional processing. Anything mapped,
// ignored or disallowed means the label was not produced from a properly
// processed Unicode form.
func (e *Engine) validateDecodedRunes(l *label, s string) {
	for _, r := range s {
		st, _ := e.table.Lookup(r)
		switch e.resolveSTD3(st) {
		case codepoint.Valid, codepoint.Deviation:
			// deviation characters pass through nontransitionally
		case codepoint.Disallowed:
			l.errs |= ErrDisallowed | ErrInvalidACELabel
		default:
			l.errs |= ErrInvalidACELabel
		}
	}
}

// splitLabels partitions s into labels on '.', which is the only separator
// left after mapping. Offsets are disjoint, ordered and cover s.
func splitLabels(s string) []label {
	labels := make([]label, 0, strings.Count(s, ".")+1)
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '.' {
			labels = append(labels, label{text: s[start:i], start: start, end: i})
			start = i + 1
		}
	}
	return labels
}

// joinLabels reassembles the name. The offsets identify labels the
// conversion left alone; when every label is untouched the mapped string is
// returned as is instead of being rebuilt.
func joinLabels(mapped string, labels []label) string {
	touched := false
	for i := range labels {
		l := &labels[i]
		if l.text != mapped[l.start:l.end] {
			touched = true
			break
		}
	}
	if !touched {
		return mapped
	}
	var b strings.Builder
	for i := range labels {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(labels[i].text)
	}
	return b.String()
}

// storageLength is the length of the name in DNS storage form: one length
// octet per label plus the terminating root octet.
func storageLength(name string) int {
	name = strings.TrimSuffix(name, ".")
	if name == "" {
		return 1
	}
	return len(name) + 2
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
