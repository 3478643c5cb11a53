package joining

import "testing"

func TestLookup(t *testing.T) {
	cases := []struct {
		r    rune
		want Class
	}{
		{'a', NonJoining},
		{'ا', Right},      // ARABIC LETTER ALEF
		{'د', Right},      // ARABIC LETTER DAL
		{'ب', Dual},       // ARABIC LETTER BEH
		{'س', Dual},       // ARABIC LETTER SEEN
		{0x0640, Causing}, // ARABIC TATWEEL
		{0x200D, Causing}, // ZWJ
		{0x200C, NonJoining},
		{0x064B, Transparent}, // ARABIC FATHATAN (Mn)
		{0x0621, NonJoining},  // ARABIC LETTER HAMZA
		{'א', NonJoining},     // Hebrew has no cursive shaping
	}
	for _, c := range cases {
		if got := Lookup(c.r); got != c.want {
			t.Errorf("Lookup(%#U) = %v, want %v", c.r, got, c.want)
		}
	}
}
