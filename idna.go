// Package idnakit implements Internationalized Domain Names in
// Applications using the compatibility processing defined by UTS #46,
// covering the validity rules of RFC 5891, RFC 5892 and RFC 5893 and the
// Punycode encoding of RFC 3492.
//
// The four operations convert whole domain names or single labels between
// their Unicode and ASCII-compatible ("xn--") forms. Malformed input never
// produces a Go error; each operation returns a best-effort result string
// together with an Errors bit set that callers inspect with HasErrors.
package idnakit

import (
	"sync"

	"idnakit/internal/codepoint"
)

// Engine performs UTS #46 processing with a fixed set of Options. It holds
// no per-call state and is safe for concurrent use.
type Engine struct {
	opts  Options
	table *codepoint.Table
}

// New returns an Engine configured with opts. The shared code-point table
// is built on first use, process-wide, and reused by every engine.
func New(opts Options) *Engine {
	return &Engine{opts: opts, table: codepoint.DefaultTable()}
}

// LabelToASCII converts a single label to its ASCII form. The result is
// populated even when errors are set; callers must check Errors, not the
// result, to decide whether the label is usable for DNS.
func (e *Engine) LabelToASCII(label string) (string, Errors) {
	return e.processLabelOp(label, true)
}

// LabelToUnicode converts a single label to its Unicode form. It never
// fails: if the label is ACE-prefixed and cannot be decoded and
// re-validated, the original input is returned with errors set.
func (e *Engine) LabelToUnicode(label string) (string, Errors) {
	return e.processLabelOp(label, false)
}

// NameToASCII converts a whole domain name to its ASCII form, processing
// each dot-separated label and rejoining with '.'.
func (e *Engine) NameToASCII(name string) (string, Errors) {
	return e.processName(name, true)
}

// NameToUnicode converts a whole domain name to its Unicode form. It never
// fails; in the worst case the partially processed name is returned with
// errors set.
func (e *Engine) NameToUnicode(name string) (string, Errors) {
	return e.processName(name, false)
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

func defaultEng() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New(UseSTD3Rules | CheckBiDi | CheckContextJ | NontransitionalToASCII)
	})
	return defaultEngine
}

// ToASCII converts a domain name using a shared default engine with
// UseSTD3Rules, CheckBiDi, CheckContextJ and NontransitionalToASCII set.
func ToASCII(name string) (string, Errors) {
	return defaultEng().NameToASCII(name)
}

// ToUnicode converts a domain name using the shared default engine.
func ToUnicode(name string) (string, Errors) {
	return defaultEng().NameToUnicode(name)
}
