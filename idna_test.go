package idnakit

import (
	"strings"
	"sync"
	"testing"
)

func TestLabelToASCIIPassThrough(t *testing.T) {
	e := New(UseSTD3Rules)
	for _, s := range []string{"example", "a", "a-b", "ab1", "x2-y3", strings.Repeat("a", 63)} {
		got, errs := e.LabelToASCII(s)
		if errs.HasErrors() {
			t.Errorf("LabelToASCII(%q) errors: %v", s, errs)
		}
		if got != s {
			t.Errorf("LabelToASCII(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestLabelToASCIIEncodes(t *testing.T) {
	e := New(0)
	cases := []struct{ in, want string }{
		{"bücher", "xn--bcher-kva"},
		{"münchen", "xn--mnchen-3ya"},
		{"日本語", "xn--wgv71a119e"},
		{"Bücher", "xn--bcher-kva"}, // case mapping before encoding
	}
	for _, c := range cases {
		got, errs := e.LabelToASCII(c.in)
		if errs.HasErrors() {
			t.Errorf("LabelToASCII(%q) errors: %v", c.in, errs)
		}
		if got != c.want {
			t.Errorf("LabelToASCII(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLabelRoundTrip(t *testing.T) {
	e := New(NontransitionalToASCII)
	for _, s := range []string{"bücher", "日本語", "пример", "βόλοσ"} {
		ascii, errs := e.LabelToASCII(s)
		if errs.HasErrors() {
			t.Fatalf("LabelToASCII(%q) errors: %v", s, errs)
		}
		back, errs := e.LabelToUnicode(ascii)
		if errs.HasErrors() {
			t.Fatalf("LabelToUnicode(%q) errors: %v", ascii, errs)
		}
		if back != s {
			t.Errorf("round trip of %q = %q", s, back)
		}
	}
}

func TestLabelToUnicodeACE(t *testing.T) {
	e := New(0)
	got, errs := e.LabelToUnicode("xn--nxasmq6b")
	if errs.HasErrors() {
		t.Errorf("LabelToUnicode(xn--nxasmq6b) errors: %v", errs)
	}
	if got != "βόλοσ" {
		t.Errorf("LabelToUnicode(xn--nxasmq6b) = %q, want βόλοσ", got)
	}
}

func TestLabelToUnicodeBrokenACE(t *testing.T) {
	e := New(0)
	got, errs := e.LabelToUnicode("xn--")
	if errs&ErrPunycode == 0 || errs&ErrInvalidACELabel == 0 {
		t.Errorf("LabelToUnicode(xn--) errors = %v, want Punycode and InvalidACELabel", errs)
	}
	if got != "xn--" {
		t.Errorf("LabelToUnicode(xn--) = %q, want original text", got)
	}
	// A failed ACE label is still checked as a plain label, so the
	// hyphens in positions 3 and 4 are reported too.
	if errs&ErrHyphen34 == 0 {
		t.Errorf("LabelToUnicode(xn--) errors = %v, want Hyphen34", errs)
	}
}

func TestLabelToUnicodeEmptyACEPayload(t *testing.T) {
	// "xn---" holds a payload that decodes to the empty string.
	e := New(0)
	got, errs := e.LabelToUnicode("xn---")
	if errs&ErrPunycode == 0 || errs&ErrInvalidACELabel == 0 {
		t.Errorf("LabelToUnicode(xn---) errors = %v, want Punycode and InvalidACELabel", errs)
	}
	if got != "xn---" {
		t.Errorf("LabelToUnicode(xn---) = %q, want original text", got)
	}
	if errs&ErrHyphen34 == 0 || errs&ErrTrailingHyphen == 0 {
		t.Errorf("LabelToUnicode(xn---) errors = %v, want plain-label checks too", errs)
	}

	got, errs = e.NameToASCII("xn---.example")
	if errs&ErrPunycode == 0 {
		t.Errorf("NameToASCII(xn---.example) errors = %v, want Punycode", errs)
	}
	if got != "xn---.example" {
		t.Errorf("NameToASCII(xn---.example) = %q, want text kept", got)
	}
}

func TestLabelToUnicodeACEEncodesASCII(t *testing.T) {
	e := New(0)
	// "xn--abc-" decodes to plain ASCII "abc", which a real ACE label
	// never encodes.
	got, errs := e.LabelToUnicode("xn--abc-")
	if errs&ErrInvalidACELabel == 0 {
		t.Errorf("errors = %v, want InvalidACELabel", errs)
	}
	if got != "xn--abc-" {
		t.Errorf("got %q, want original text", got)
	}
}

func TestHyphenErrors(t *testing.T) {
	e := New(0)
	cases := []struct {
		in   string
		want Errors
	}{
		{"-abc", ErrLeadingHyphen},
		{"abc-", ErrTrailingHyphen},
		{"ab--cd", ErrHyphen34},
		{"xx--xx-", ErrTrailingHyphen | ErrHyphen34},
	}
	for _, c := range cases {
		_, errs := e.LabelToASCII(c.in)
		if errs != c.want {
			t.Errorf("LabelToASCII(%q) errors = %v, want %v", c.in, errs, c.want)
		}
	}
}

func TestLabelHasDot(t *testing.T) {
	e := New(0)
	_, errs := e.LabelToASCII("a.b")
	if errs != ErrLabelHasDot {
		t.Errorf("LabelToASCII(\"a.b\") errors = %v, want LabelHasDot", errs)
	}
}

func TestLeadingCombiningMark(t *testing.T) {
	e := New(0)
	_, errs := e.LabelToASCII("\u0301abc") // COMBINING ACUTE ACCENT
	if errs&ErrLeadingCombiningMark == 0 {
		t.Errorf("errors = %v, want LeadingCombiningMark", errs)
	}
}

func TestLabelTooLong(t *testing.T) {
	long := strings.Repeat("a", 64)

	e := New(UseSTD3Rules)
	if _, errs := e.LabelToASCII(long); errs != ErrLabelTooLong {
		t.Errorf("LabelToASCII errors = %v, want LabelTooLong", errs)
	}
	if _, errs := e.LabelToUnicode(long); errs.HasErrors() {
		t.Errorf("LabelToUnicode errors = %v, want none (length is a ToASCII check)", errs)
	}
	if _, errs := New(0).LabelToASCII(long); errs.HasErrors() {
		t.Errorf("without STD3 errors = %v, want none", errs)
	}
}

func TestNameToASCII(t *testing.T) {
	e := New(0)
	got, errs := e.NameToASCII("bücher.example.com")
	if errs.HasErrors() {
		t.Fatalf("errors: %v", errs)
	}
	if got != "xn--bcher-kva.example.com" {
		t.Errorf("got %q", got)
	}
}

func TestNameToUnicode(t *testing.T) {
	e := New(0)
	got, errs := e.NameToUnicode("xn--bcher-kva.example.com")
	if errs.HasErrors() {
		t.Fatalf("errors: %v", errs)
	}
	if got != "bücher.example.com" {
		t.Errorf("got %q", got)
	}
}

func TestEmptyLabels(t *testing.T) {
	e := New(0)

	if _, errs := e.NameToASCII("a..b"); errs&ErrEmptyLabel == 0 {
		t.Errorf("NameToASCII(a..b) errors = %v, want EmptyLabel", errs)
	}
	if got, errs := e.NameToASCII("a.b."); errs.HasErrors() || got != "a.b." {
		t.Errorf("NameToASCII(a.b.) = %q errors %v, want trailing root label accepted", got, errs)
	}
	if _, errs := e.NameToASCII(""); errs&ErrEmptyLabel == 0 {
		t.Errorf("NameToASCII(\"\") errors = %v, want EmptyLabel", errs)
	}
	if _, errs := e.NameToASCII("."); errs&ErrEmptyLabel == 0 {
		t.Errorf("NameToASCII(.) errors = %v, want EmptyLabel", errs)
	}
}

func TestDotEquivalents(t *testing.T) {
	e := New(0)
	want, _ := e.NameToASCII("a.b")
	for _, name := range []string{"a。b", "a．b", "a｡b"} {
		got, errs := e.NameToASCII(name)
		if errs.HasErrors() {
			t.Errorf("NameToASCII(%q) errors: %v", name, errs)
		}
		if got != want {
			t.Errorf("NameToASCII(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestDomainNameTooLong(t *testing.T) {
	label := strings.Repeat("a", 63)
	name := strings.Join([]string{label, label, label, label}, ".") // 255 chars

	if _, errs := New(UseSTD3Rules).NameToASCII(name); errs != ErrDomainNameTooLong {
		t.Errorf("errors = %v, want DomainNameTooLong", errs)
	}
	if _, errs := New(0).NameToASCII(name); errs.HasErrors() {
		t.Errorf("without STD3 errors = %v, want none", errs)
	}
}

func TestTransitionalProcessing(t *testing.T) {
	if got, errs := New(0).NameToASCII("faß.de"); errs.HasErrors() || got != "fass.de" {
		t.Errorf("transitional = %q errors %v, want fass.de", got, errs)
	}
	if got, errs := New(NontransitionalToASCII).NameToASCII("faß.de"); errs.HasErrors() || got != "xn--fa-hia.de" {
		t.Errorf("nontransitional = %q errors %v, want xn--fa-hia.de", got, errs)
	}
	// ToUnicode is always nontransitional.
	if got, errs := New(0).LabelToUnicode("faß"); errs.HasErrors() || got != "faß" {
		t.Errorf("LabelToUnicode(faß) = %q errors %v, want deviation preserved", got, errs)
	}
}

func TestSTD3Rules(t *testing.T) {
	if got, errs := New(0).LabelToASCII("a_b"); errs.HasErrors() || got != "a_b" {
		t.Errorf("without STD3 = %q errors %v, want a_b accepted", got, errs)
	}
	if _, errs := New(UseSTD3Rules).LabelToASCII("a_b"); errs&ErrDisallowed == 0 {
		t.Errorf("with STD3 errors = %v, want Disallowed", errs)
	}
}

func TestDisallowedKeepsCodePoint(t *testing.T) {
	e := New(0)
	got, errs := e.LabelToUnicode("ab\u2028cd") // LINE SEPARATOR
	if errs&ErrDisallowed == 0 {
		t.Errorf("errors = %v, want Disallowed", errs)
	}
	if got != "ab\u2028cd" {
		t.Errorf("got %q, want disallowed code point kept in place", got)
	}
}

func TestBiDiRule(t *testing.T) {
	e := New(CheckBiDi)

	if _, errs := e.LabelToASCII("aא"); errs != ErrBiDi {
		t.Errorf("mixed-direction label errors = %v, want BiDi", errs)
	}
	if _, errs := e.LabelToASCII("אב"); errs.HasErrors() {
		t.Errorf("valid RTL label errors = %v, want none", errs)
	}
	if _, errs := e.LabelToASCII("123"); errs.HasErrors() {
		t.Errorf("numeric LTR label errors = %v, want none", errs)
	}
	if _, errs := New(0).LabelToASCII("aא"); errs.HasErrors() {
		t.Errorf("without CheckBiDi errors = %v, want none", errs)
	}
}

func TestContextJ(t *testing.T) {
	e := New(CheckContextJ)

	// ZWNJ between dual-joining Arabic letters is permitted.
	if _, errs := e.LabelToUnicode("\u0628\u200c\u0628"); errs.HasErrors() {
		t.Errorf("joining context errors = %v, want none", errs)
	}
	// ZWNJ between non-joining letters is not.
	if _, errs := e.LabelToUnicode("a\u200cb"); errs != ErrContextJ {
		t.Errorf("non-joining context errors = %v, want ContextJ", errs)
	}
	// ZWJ is only permitted after a virama.
	if _, errs := e.LabelToUnicode("क\u094d\u200dष"); errs.HasErrors() {
		t.Errorf("ZWJ after virama errors = %v, want none", errs)
	}
	if _, errs := e.LabelToUnicode("क\u200dष"); errs != ErrContextJ {
		t.Errorf("ZWJ without virama errors = %v, want ContextJ", errs)
	}
	// Transitional ToASCII maps the joiners away before validation.
	if got, errs := e.LabelToASCII("a\u200cb"); errs.HasErrors() || got != "ab" {
		t.Errorf("transitional ToASCII = %q errors %v, want joiner dropped", got, errs)
	}
}

func TestIgnoredCodePoints(t *testing.T) {
	e := New(0)
	got, errs := e.LabelToASCII("exam\u00adple") // SOFT HYPHEN
	if errs.HasErrors() || got != "example" {
		t.Errorf("got %q errors %v, want soft hyphen dropped", got, errs)
	}
}

func TestCaseAndWidthMapping(t *testing.T) {
	e := New(0)
	cases := []struct{ in, want string }{
		{"EXAMPLE", "example"},
		{"ＡＢＣ", "abc"},
		{"ΒΌΛΟΣ", "βόλοσ"}, // final sigma folds to sigma
	}
	for _, c := range cases {
		got, errs := e.LabelToASCII(c.in)
		if errs.HasErrors() {
			t.Errorf("LabelToASCII(%q) errors: %v", c.in, errs)
			continue
		}
		back, _ := e.LabelToUnicode(got)
		if back != c.want {
			t.Errorf("LabelToASCII(%q) decodes to %q, want %q", c.in, back, c.want)
		}
	}
}

func TestCapitalSharpS(t *testing.T) {
	// U+1E9E maps to ß under both processing modes; only a literal ß in
	// the input is subject to the transitional mapping.
	for _, opts := range []Options{0, NontransitionalToASCII} {
		e := New(opts)
		if got, errs := e.LabelToASCII("ẞ"); errs.HasErrors() || got != "xn--zca" {
			t.Errorf("opts %#x: LabelToASCII(U+1E9E) = %q errors %v, want xn--zca", uint32(opts), got, errs)
		}
	}
	if got, errs := New(0).LabelToUnicode("ẞ"); errs.HasErrors() || got != "ß" {
		t.Errorf("LabelToUnicode(U+1E9E) = %q errors %v, want ß", got, errs)
	}
}

func TestSymbolLabels(t *testing.T) {
	e := New(UseSTD3Rules)

	got, errs := e.LabelToASCII("☃") // SNOWMAN
	if errs.HasErrors() || got != "xn--n3h" {
		t.Errorf("LabelToASCII(snowman) = %q errors %v, want xn--n3h", got, errs)
	}
	back, errs := e.LabelToUnicode("xn--n3h")
	if errs.HasErrors() || back != "☃" {
		t.Errorf("LabelToUnicode(xn--n3h) = %q errors %v, want snowman", back, errs)
	}
}

func TestErrorsAreFreshPerCall(t *testing.T) {
	e := New(0)
	if _, errs := e.LabelToASCII("-bad-"); !errs.HasErrors() {
		t.Fatal("expected errors for -bad-")
	}
	if _, errs := e.LabelToASCII("good"); errs.HasErrors() {
		t.Errorf("second call errors = %v, want accumulation to start empty", errs)
	}
}

func TestDefaultEngineConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, errs := ToASCII("bücher.example")
			if errs.HasErrors() || got != "xn--bcher-kva.example" {
				t.Errorf("ToASCII = %q errors %v", got, errs)
			}
			back, errs := ToUnicode(got)
			if errs.HasErrors() || back != "bücher.example" {
				t.Errorf("ToUnicode = %q errors %v", back, errs)
			}
		}()
	}
	wg.Wait()
}
