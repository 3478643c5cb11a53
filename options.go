package idnakit

// Options is a bit set fixed at engine construction. It selects which
// validation rules run and whether deviation characters use their
// transitional mappings in ToASCII operations.
type Options uint32

const (
	// AllowUnassigned is accepted for source compatibility with older
	// IDNA APIs and ignored by this engine.
	AllowUnassigned Options = 1 << iota
	// UseSTD3Rules restricts ASCII characters to letters, digits and
	// hyphen, and enables the label and name length checks in ToASCII
	// operations.
	UseSTD3Rules
	// CheckBiDi enables the RFC 5893 Bidi rule for labels containing
	// right-to-left characters.
	CheckBiDi
	// CheckContextJ enables the RFC 5892 ContextJ rules for zero-width
	// joiners.
	CheckContextJ
	// NontransitionalToASCII makes ToASCII operations pass deviation
	// characters through unchanged instead of mapping them. ToUnicode
	// operations are always nontransitional.
	NontransitionalToASCII
)
