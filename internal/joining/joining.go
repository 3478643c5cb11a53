// Package joining classifies code points by their Unicode Joining_Type,
// as needed by the RFC 5892 ContextJ rules for zero-width joiners.
//
// The explicit right/dual/left/causing sets come from ArabicShaping.txt
// (see internal/gen); transparent is derived from the general categories
// Mn, Me and Cf per UAX #9, and everything else is non-joining, which is
// correct for every script without cursive shaping.
package joining

import "unicode"

// Class is a Unicode Joining_Type value.
type Class uint8

const (
	// NonJoining is Joining_Type U.
	NonJoining Class = iota
	// Transparent is Joining_Type T.
	Transparent
	// Right is Joining_Type R.
	Right
	// Left is Joining_Type L.
	Left
	// Dual is Joining_Type D.
	Dual
	// Causing is Joining_Type C.
	Causing
)

// Lookup returns the Joining_Type of r.
func Lookup(r rune) Class {
	// ZWNJ and ZWJ carry explicit joining types that override the
	// transparent derivation for format characters.
	switch r {
	case 0x200C:
		return NonJoining
	case 0x200D:
		return Causing
	}
	switch {
	case unicode.Is(joinCausing, r):
		return Causing
	case unicode.Is(rightJoining, r):
		return Right
	case unicode.Is(dualJoining, r):
		return Dual
	case unicode.Is(leftJoining, r):
		return Left
	case unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf):
		return Transparent
	}
	return NonJoining
}
