// Package main regenerates the override and joining tables from the
// Unicode data files. It writes internal/codepoint/tables.go and
// internal/joining/tables.go; runtime code never touches the network.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

const (
	defaultMappingURL = "https://www.unicode.org/Public/idna/latest/IdnaMappingTable.txt"
	defaultShapingURL = "https://www.unicode.org/Public/UCD/latest/ucd/ArabicShaping.txt"

	codepointOutput = "../codepoint/tables.go"
	joiningOutput   = "../joining/tables.go"
	cacheDir        = "cache"
)

func main() {
	var mappingPath, mappingURL string
	var shapingPath, shapingURL string
	var refresh bool

	flag.StringVar(&mappingPath, "mapping", "", "path to local IdnaMappingTable.txt (optional)")
	flag.StringVar(&mappingURL, "mapping-url", defaultMappingURL, "IdnaMappingTable.txt URL")
	flag.StringVar(&shapingPath, "shaping", "", "path to local ArabicShaping.txt (optional)")
	flag.StringVar(&shapingURL, "shaping-url", defaultShapingURL, "ArabicShaping.txt URL")
	flag.BoolVar(&refresh, "refresh", false, "refresh local cache from network")
	flag.Parse()

	mapping, mappingLabel, err := loadData(mappingPath, mappingURL, filepath.Join(cacheDir, "IdnaMappingTable.txt"), refresh)
	if err != nil {
		fail(err)
	}
	overrides, err := parseMappingTable(mapping)
	if err != nil {
		fail(err)
	}
	if err := writeFormatted(codepointOutput, generateCodepointTables(overrides, mappingLabel)); err != nil {
		fail(err)
	}

	shaping, shapingLabel, err := loadData(shapingPath, shapingURL, filepath.Join(cacheDir, "ArabicShaping.txt"), refresh)
	if err != nil {
		fail(err)
	}
	classes, err := parseArabicShaping(shaping)
	if err != nil {
		fail(err)
	}
	if err := writeFormatted(joiningOutput, generateJoiningTables(classes, shapingLabel)); err != nil {
		fail(err)
	}
}

func loadData(inputPath, sourceURL, cachedPath string, refresh bool) ([]byte, string, error) {
	if inputPath != "" {
		b, err := os.ReadFile(inputPath)
		if err != nil {
			return nil, "", fmt.Errorf("read input file: %w", err)
		}
		return b, inputPath, nil
	}

	if !refresh {
		b, err := os.ReadFile(cachedPath)
		if err == nil {
			return b, sourceURL, nil
		}
		if !os.IsNotExist(err) {
			return nil, "", fmt.Errorf("read cache %s: %w", cachedPath, err)
		}
	}

	resp, err := http.Get(sourceURL)
	if err != nil {
		return nil, "", fmt.Errorf("download %s: %w", sourceURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("download %s: status %s", sourceURL, resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read response body: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cachedPath), 0o755); err != nil {
		return nil, "", fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.WriteFile(cachedPath, b, 0o644); err != nil {
		return nil, "", fmt.Errorf("write cache %s: %w", cachedPath, err)
	}
	return b, sourceURL, nil
}

type overrideTables struct {
	deviations map[rune][]rune
	ignored    []rune
	separators []rune
	mapped     map[rune][]rune
	valid      []rune
	disallowed []rune
	names      map[rune]string
}

// parseMappingTable extracts the rows the runtime derivation cannot
// express: deviation and ignored statuses, the mapped rows whose target is
// FULL STOP, and every row whose table status or mapping disagrees with
// the fold derivation the runtime falls back to.
func parseMappingTable(content []byte) (*overrideTables, error) {
	out := &overrideTables{
		deviations: map[rune][]rune{},
		mapped:     map[rune][]rune{},
		names:      map[rune]string{},
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 1024), 1024*1024)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var comment string
		if i := strings.IndexByte(line, '#'); i >= 0 {
			comment = strings.TrimSpace(line[i+1:])
			line = strings.TrimSpace(line[:i])
		}

		fields := strings.Split(line, ";")
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: malformed entry", lineNo)
		}
		lo, hi, err := parseRange(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		status := strings.TrimSpace(fields[1])

		switch status {
		case "deviation":
			var mapping []rune
			if len(fields) > 2 {
				mapping, err = parseRuneList(fields[2])
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
			}
			out.recordNames(lo, hi, comment)
			for r := lo; r <= hi; r++ {
				out.deviations[r] = mapping
			}
		case "ignored":
			out.recordNames(lo, hi, comment)
			for r := lo; r <= hi; r++ {
				out.ignored = append(out.ignored, r)
			}
		case "mapped":
			if len(fields) > 2 {
				mapping, err := parseRuneList(fields[2])
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				if len(mapping) == 1 && mapping[0] == '.' {
					out.recordNames(lo, hi, comment)
					for r := lo; r <= hi; r++ {
						out.separators = append(out.separators, r)
					}
					continue
				}
				for r := lo; r <= hi; r++ {
					if r >= 0x80 && deriveFold(r) != string(mapping) {
						out.mapped[r] = mapping
						out.recordNames(r, r, comment)
					}
				}
			}
		case "valid":
			for r := lo; r <= hi; r++ {
				if r >= 0x80 && deriveStatus(r) != derivedValid {
					out.valid = append(out.valid, r)
				}
			}
		case "disallowed":
			for r := lo; r <= hi; r++ {
				if r >= 0x80 && deriveStatus(r) != derivedDisallowed {
					out.disallowed = append(out.disallowed, r)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan mapping table: %w", err)
	}
	sort.Slice(out.ignored, func(i, j int) bool { return out.ignored[i] < out.ignored[j] })
	sort.Slice(out.separators, func(i, j int) bool { return out.separators[i] < out.separators[j] })
	sort.Slice(out.valid, func(i, j int) bool { return out.valid[i] < out.valid[j] })
	sort.Slice(out.disallowed, func(i, j int) bool { return out.disallowed[i] < out.disallowed[j] })
	return out, nil
}

// recordNames stores the character names from a row's trailing comment.
// The comment holds the Unicode version followed by the name, or for range
// rows the first and last names joined by "..". Interior code points of a
// range keep no name.
func (o *overrideTables) recordNames(lo, hi rune, comment string) {
	_, name, ok := strings.Cut(comment, " ")
	if !ok {
		return
	}
	name = strings.TrimSpace(name)
	if lo == hi {
		o.names[lo] = name
		return
	}
	if first, last, ok := strings.Cut(name, ".."); ok {
		o.names[lo] = first
		o.names[hi] = last
	}
}

type derived int

const (
	derivedValid derived = iota
	derivedMapped
	derivedDisallowed
)

// deriveStatus mirrors the runtime fold-derivation fallback in
// internal/codepoint, so the emitted overrides are exactly the rows where
// that fallback would get the table status wrong.
func deriveStatus(r rune) derived {
	folded := deriveFold(r)
	if folded != string(r) {
		for _, fr := range folded {
			if !deriveAllowed(fr) {
				return derivedDisallowed
			}
		}
		return derivedMapped
	}
	if !deriveAllowed(r) {
		return derivedDisallowed
	}
	return derivedValid
}

func deriveFold(r rune) string {
	s := cases.Fold().String(string(r))
	s = width.Fold.String(s)
	s = norm.NFKC.String(s)
	for _, fr := range s {
		if unicode.IsUpper(fr) || unicode.IsTitle(fr) {
			return cases.Fold().String(s)
		}
	}
	return s
}

func deriveAllowed(r rune) bool {
	if r < 0x80 {
		return 'a' <= r && r <= 'z' || '0' <= r && r <= '9' || r == '-' || r == '.'
	}
	return unicode.In(r, unicode.L, unicode.M, unicode.N)
}

// parseArabicShaping returns code points grouped by joining type. ZWNJ and
// ZWJ are skipped; the runtime handles them explicitly.
func parseArabicShaping(content []byte) (map[string][]rune, error) {
	classes := map[string][]rune{}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 1024), 1024*1024)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ";")
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: malformed entry", lineNo)
		}
		r, err := parseHexRune(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if r == 0x200C || r == 0x200D {
			continue
		}
		jt := strings.TrimSpace(fields[2])
		switch jt {
		case "R", "L", "D", "C":
			classes[jt] = append(classes[jt], r)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan shaping table: %w", err)
	}
	for _, runes := range classes {
		sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	}
	return classes, nil
}

func generateCodepointTables(o *overrideTables, sourceLabel string) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "package codepoint")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "// Code generated by internal/gen; DO NOT EDIT.")
	fmt.Fprintf(&buf, "// Source: %s\n\n", sourceLabel)
	fmt.Fprintln(&buf, `import "unicode"`)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "// deviationMappings holds the UTS #46 deviation rows: code points whose")
	fmt.Fprintln(&buf, "// handling differs between transitional and nontransitional processing.")
	fmt.Fprintln(&buf, "var deviationMappings = map[rune]string{")
	devs := make([]rune, 0, len(o.deviations))
	for r := range o.deviations {
		devs = append(devs, r)
	}
	sort.Slice(devs, func(i, j int) bool { return devs[i] < devs[j] })
	for _, r := range devs {
		fmt.Fprintf(&buf, "\t%#04x: %q,%s\n", r, string(o.deviations[r]), o.nameComment(r))
	}
	fmt.Fprintln(&buf, "}")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "// ignoredRunes holds the UTS #46 ignored rows: code points removed from")
	fmt.Fprintln(&buf, "// the output during mapping.")
	fmt.Fprintln(&buf, "var ignoredRunes = map[rune]struct{}{")
	for _, r := range o.ignored {
		fmt.Fprintf(&buf, "\t%#04x: {},%s\n", r, o.nameComment(r))
	}
	fmt.Fprintln(&buf, "}")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "// separatorMappings folds the dot-equivalent separators to FULL STOP so the")
	fmt.Fprintln(&buf, "// label splitter only has to deal with '.'.")
	fmt.Fprintln(&buf, "var separatorMappings = map[rune]string{")
	for _, r := range o.separators {
		fmt.Fprintf(&buf, "\t%#04x: \".\",%s\n", r, o.nameComment(r))
	}
	fmt.Fprintln(&buf, "}")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "// mappedOverrides holds mapped rows whose table mapping differs from the")
	fmt.Fprintln(&buf, "// fold derivation.")
	fmt.Fprintln(&buf, "var mappedOverrides = map[rune]string{")
	mapr := make([]rune, 0, len(o.mapped))
	for r := range o.mapped {
		mapr = append(mapr, r)
	}
	sort.Slice(mapr, func(i, j int) bool { return mapr[i] < mapr[j] })
	for _, r := range mapr {
		fmt.Fprintf(&buf, "\t%#04x: %q,%s\n", r, string(o.mapped[r]), o.nameComment(r))
	}
	fmt.Fprintln(&buf, "}")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "// validOverrides holds code points the mapping table marks valid that the")
	fmt.Fprintln(&buf, "// fold derivation would reject, chiefly the symbol rows carried over from")
	fmt.Fprintln(&buf, "// IDNA2003.")
	writeRangeTable(&buf, "validOverrides", o.valid)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "// disallowedOverrides holds code points the mapping table disallows that the")
	fmt.Fprintln(&buf, "// fold derivation would accept, such as the Hangul filler letters.")
	writeRangeTable(&buf, "disallowedOverrides", o.disallowed)
	return buf.Bytes()
}

func (o *overrideTables) nameComment(r rune) string {
	if name, ok := o.names[r]; ok {
		return " // " + name
	}
	return ""
}

func generateJoiningTables(classes map[string][]rune, sourceLabel string) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "package joining")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "// Code generated by internal/gen; DO NOT EDIT.")
	fmt.Fprintf(&buf, "// Source: %s\n\n", sourceLabel)
	fmt.Fprintln(&buf, `import "unicode"`)

	for _, t := range []struct{ name, class string }{
		{"rightJoining", "R"},
		{"dualJoining", "D"},
		{"leftJoining", "L"},
		{"joinCausing", "C"},
	} {
		fmt.Fprintln(&buf)
		writeRangeTable(&buf, t.name, classes[t.class])
	}
	return buf.Bytes()
}

func writeRangeTable(buf *bytes.Buffer, name string, runes []rune) {
	fmt.Fprintf(buf, "var %s = &unicode.RangeTable{\n", name)
	r16, r32 := toRanges(runes)
	if len(r16) > 0 {
		fmt.Fprintln(buf, "\tR16: []unicode.Range16{")
		for _, r := range r16 {
			fmt.Fprintf(buf, "\t\t{Lo: %#04x, Hi: %#04x, Stride: 1},\n", r[0], r[1])
		}
		fmt.Fprintln(buf, "\t},")
	}
	if len(r32) > 0 {
		fmt.Fprintln(buf, "\tR32: []unicode.Range32{")
		for _, r := range r32 {
			fmt.Fprintf(buf, "\t\t{Lo: %#04x, Hi: %#04x, Stride: 1},\n", r[0], r[1])
		}
		fmt.Fprintln(buf, "\t},")
	}
	fmt.Fprintln(buf, "}")
}

// toRanges merges sorted code points into contiguous ranges, split at the
// 16-bit boundary the way unicode.RangeTable requires.
func toRanges(runes []rune) (r16, r32 [][2]rune) {
	for i := 0; i < len(runes); {
		lo := runes[i]
		hi := lo
		for i++; i < len(runes) && runes[i] == hi+1; i++ {
			hi = runes[i]
		}
		if hi <= 0xFFFF {
			r16 = append(r16, [2]rune{lo, hi})
		} else if lo > 0xFFFF {
			r32 = append(r32, [2]rune{lo, hi})
		} else {
			r16 = append(r16, [2]rune{lo, 0xFFFF})
			r32 = append(r32, [2]rune{0x10000, hi})
		}
	}
	return r16, r32
}

func parseRange(s string) (rune, rune, error) {
	if lo, hi, ok := strings.Cut(s, ".."); ok {
		l, err := parseHexRune(lo)
		if err != nil {
			return 0, 0, err
		}
		h, err := parseHexRune(hi)
		if err != nil {
			return 0, 0, err
		}
		if h < l {
			return 0, 0, fmt.Errorf("descending range %q", s)
		}
		return l, h, nil
	}
	r, err := parseHexRune(s)
	return r, r, err
}

func parseRuneList(s string) ([]rune, error) {
	var runes []rune
	for _, f := range strings.Fields(strings.TrimSpace(s)) {
		r, err := parseHexRune(f)
		if err != nil {
			return nil, err
		}
		runes = append(runes, r)
	}
	return runes, nil
}

func parseHexRune(s string) (rune, error) {
	u, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q: %w", s, err)
	}
	if u > 0x10FFFF {
		return 0, fmt.Errorf("code point out of range %q", s)
	}
	return rune(u), nil
}

func writeFormatted(path string, src []byte) error {
	formatted, err := format.Source(src)
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
