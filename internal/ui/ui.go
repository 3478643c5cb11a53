// Package ui provides terminal UI components using pterm.
package ui

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
)

// Theme colors for consistent styling
var (
	ColorPrimary   = pterm.FgCyan
	ColorSecondary = pterm.FgLightBlue
	ColorSuccess   = pterm.FgGreen
	ColorWarning   = pterm.FgYellow
	ColorError     = pterm.FgRed
	ColorMuted     = pterm.FgGray
)

// UI wraps pterm components for idnakit.
type UI struct {
	quiet   bool
	verbose bool
}

// New creates a new UI instance.
func New(quiet, verbose bool) *UI {
	if quiet {
		pterm.DisableOutput()
	}
	return &UI{quiet: quiet, verbose: verbose}
}

// Banner prints the application banner.
func (u *UI) Banner() {
	pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("idna", pterm.NewStyle(pterm.FgCyan)),
		pterm.NewLettersFromStringWithStyle("kit", pterm.NewStyle(pterm.FgLightBlue)),
	).Render()

	pterm.DefaultCenter.Println(
		pterm.FgGray.Sprint("Internationalized Domain Name Converter"),
	)
	fmt.Println()
}

// Config prints the configuration summary.
func (u *UI) Config(direction string, std3, bidi, contextJ, nontransitional, labelMode bool) {
	pterm.DefaultSection.Println("Configuration")

	data := [][]string{
		{"Direction", direction},
		{"STD3 Rules", onOff(std3)},
		{"BiDi Check", onOff(bidi)},
		{"ContextJ Check", onOff(contextJ)},
		{"Nontransitional", onOff(nontransitional)},
		{"Mode", mode(labelMode)},
	}

	pterm.DefaultTable.WithData(data).Render()
	fmt.Println()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func mode(labelMode bool) string {
	if labelMode {
		return "single label"
	}
	return "full name"
}

// NameStatus prints the result of converting one name.
func (u *UI) NameStatus(input, output, errs string, ok bool) {
	prefix := pterm.FgCyan.Sprintf("[%s]", input)
	if ok {
		pterm.Success.Println(prefix, output)
		return
	}
	pterm.Error.Println(prefix, fmt.Sprintf("%s (%s)", output, errs))
}

// Summary prints the final summary report.
func (u *UI) Summary(total, failed int, duration time.Duration) {
	pterm.DefaultSection.Println("Summary")

	panel := pterm.DefaultBox.WithTitle("Results").Sprint(
		fmt.Sprintf(
			"  Names:     %s\n"+
				"  Converted: %s\n"+
				"  Errors:    %s\n"+
				"  Duration:  %s",
			pterm.FgCyan.Sprintf("%d", total),
			pterm.FgGreen.Sprintf("%d", total-failed),
			pterm.FgRed.Sprintf("%d", failed),
			pterm.FgYellow.Sprint(duration.Round(time.Millisecond)),
		),
	)
	fmt.Println(panel)
}

// Success prints a success message.
func (u *UI) Success(message string) {
	pterm.Success.Println(message)
}

// Error prints an error message.
func (u *UI) Error(message string) {
	pterm.Error.Println(message)
}

// Warning prints a warning message.
func (u *UI) Warning(message string) {
	pterm.Warning.Println(message)
}

// Info prints an info message.
func (u *UI) Info(message string) {
	pterm.Info.Println(message)
}

// Debug prints a debug message (only in verbose mode).
func (u *UI) Debug(message string) {
	if u.verbose {
		pterm.Debug.Println(message)
	}
}
