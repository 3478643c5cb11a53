// Package punycode implements the RFC 3492 encoding used by ACE labels.
//
// The codec works on single labels without the "xn--" prefix; prefix
// handling belongs to the caller.
package punycode

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Parameters from RFC 3492 section 5.
const (
	base        int32 = 36
	tMin        int32 = 1
	tMax        int32 = 26
	skew        int32 = 38
	damp        int32 = 700
	initialBias int32 = 72
	initialN    int32 = 128

	maxInt32 int32 = 1<<31 - 1
)

var (
	// ErrOverflow means the input needs wider integers than the codec uses.
	ErrOverflow = errors.New("punycode: overflow")
	// ErrInvalid means the input is not well-formed Punycode.
	ErrInvalid = errors.New("punycode: invalid encoding")
)

// adapt is the bias adaptation function from RFC 3492 section 6.1.
func adapt(delta, numPoints int32, firstTime bool) int32 {
	if firstTime {
		delta /= damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := int32(0)
	for delta > (base-tMin)*tMax/2 {
		delta /= base - tMin
		k += base
	}
	return k + (base-tMin+1)*delta/(delta+skew)
}

func decodeDigit(b byte) int32 {
	switch {
	case '0' <= b && b <= '9':
		return int32(b - '0' + 26)
	case 'A' <= b && b <= 'Z':
		return int32(b - 'A')
	case 'a' <= b && b <= 'z':
		return int32(b - 'a')
	}
	return base
}

func encodeDigit(digit int32) byte {
	switch {
	case 0 <= digit && digit <= 25:
		return byte(digit) + 'a'
	case 26 <= digit && digit <= 35:
		return byte(digit) - 26 + '0'
	}
	panic("punycode: digit out of range")
}

// threshold clamps k-bias into [tMin, tMax].
func threshold(k, bias int32) int32 {
	t := k - bias
	if t < tMin {
		return tMin
	}
	if t > tMax {
		return tMax
	}
	return t
}

// Decode converts a Punycode string of basic code points back to Unicode.
func Decode(s string) (string, error) {
	basic := strings.LastIndexByte(s, '-')
	output := make([]rune, 0, len(s))
	for i := 0; i < basic; i++ {
		b := s[i]
		if b >= 0x80 {
			return "", ErrInvalid
		}
		output = append(output, rune(b))
	}

	i, n, bias := int32(0), initialN, initialBias
	for pos := basic + 1; pos < len(s); {
		oldi, w := i, int32(1)
		for k := base; ; k += base {
			if pos == len(s) {
				return "", ErrInvalid
			}
			digit := decodeDigit(s[pos])
			pos++
			if digit >= base {
				return "", ErrInvalid
			}
			if digit > (maxInt32-i)/w {
				return "", ErrOverflow
			}
			i += digit * w
			t := threshold(k, bias)
			if digit < t {
				break
			}
			if w > maxInt32/(base-t) {
				return "", ErrOverflow
			}
			w *= base - t
		}

		out := int32(len(output) + 1)
		bias = adapt(i-oldi, out, oldi == 0)
		if i/out > maxInt32-n {
			return "", ErrOverflow
		}
		n += i / out
		i %= out
		if n > utf8.MaxRune || (0xD800 <= n && n <= 0xDFFF) {
			return "", ErrInvalid
		}

		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = n
		i++
	}

	return string(output), nil
}

// Encode converts a string of Unicode code points to its Punycode form.
// The result contains only basic code points; pure-ASCII input yields the
// basic portion followed by the delimiter and no extended digits.
func Encode(input string) (string, error) {
	n, delta, bias := initialN, int32(0), initialBias

	output := make([]byte, 0, len(input))
	remaining := 0
	for _, r := range input {
		if r < 0x80 {
			output = append(output, byte(r))
			continue
		}
		remaining++
	}

	basicLength := int32(len(output))
	handled := basicLength
	if basicLength > 0 {
		output = append(output, '-')
	}

	for remaining > 0 {
		m := int32(maxInt32)
		for _, r := range input {
			if int32(r) >= n && int32(r) < m {
				m = int32(r)
			}
		}

		if m-n > (maxInt32-delta)/(handled+1) {
			return "", ErrOverflow
		}
		delta += (m - n) * (handled + 1)
		n = m

		for _, r := range input {
			if int32(r) < n {
				delta++
				if delta > maxInt32 {
					return "", ErrOverflow
				}
				continue
			}
			if int32(r) > n {
				continue
			}
			q := delta
			for k := base; ; k += base {
				t := threshold(k, bias)
				if q < t {
					break
				}
				output = append(output, encodeDigit(t+(q-t)%(base-t)))
				q = (q - t) / (base - t)
			}
			output = append(output, encodeDigit(q))
			bias = adapt(delta, handled+1, handled == basicLength)
			delta = 0
			handled++
			remaining--
		}
		delta++
		n++
	}

	return string(output), nil
}
