// idnakit CLI - Internationalized domain name converter.
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"idnakit"
	"idnakit/internal/config"
	"idnakit/internal/ui"

	"github.com/spf13/pflag"
)

func main() {
	// Flags (defaults come from config.toml when present)
	toUnicode := pflag.BoolP("to-unicode", "u", config.DefaultToUnicode(), "Convert to Unicode form instead of ASCII")
	std3 := pflag.Bool("std3", config.DefaultSTD3(), "Apply STD3 ASCII rules and length limits")
	bidi := pflag.Bool("bidi", config.DefaultBiDi(), "Check the Bidi rule on right-to-left labels")
	contextJ := pflag.Bool("contextj", config.DefaultContextJ(), "Check ContextJ rules for joiner code points")
	nontransitional := pflag.Bool("nontransitional", config.DefaultNontransitional(), "Use nontransitional processing for ToASCII")
	labelMode := pflag.Bool("label", config.DefaultLabel(), "Treat each input as a single label, not a full name")
	quiet := pflag.BoolP("quiet", "q", config.DefaultQuiet(), "Suppress decorated output, print results only")
	verbose := pflag.BoolP("verbose", "v", config.DefaultVerbose(), "Verbose logging")
	pflag.Parse()

	var opts idnakit.Options
	if *std3 {
		opts |= idnakit.UseSTD3Rules
	}
	if *bidi {
		opts |= idnakit.CheckBiDi
	}
	if *contextJ {
		opts |= idnakit.CheckContextJ
	}
	if *nontransitional {
		opts |= idnakit.NontransitionalToASCII
	}
	engine := idnakit.New(opts)

	term := ui.New(*quiet, *verbose)
	if !*quiet {
		term.Banner()
		direction := "ToASCII"
		if *toUnicode {
			direction = "ToUnicode"
		}
		term.Config(direction, *std3, *bidi, *contextJ, *nontransitional, *labelMode)
	}

	names := pflag.Args()
	if len(names) == 0 {
		if !*quiet {
			term.Info("Reading names from stdin")
		}
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				names = append(names, line)
			}
		}
		if err := scanner.Err(); err != nil {
			term.Error(fmt.Sprintf("read stdin: %v", err))
			os.Exit(1)
		}
	}
	if len(names) == 0 {
		term.Warning("No input names")
		return
	}

	start := time.Now()
	failed := 0
	for _, name := range names {
		out, errs := convert(engine, name, *toUnicode, *labelMode)
		if errs.HasErrors() {
			failed++
		}
		if *quiet {
			fmt.Println(out)
			continue
		}
		term.NameStatus(name, out, errs.String(), !errs.HasErrors())
	}

	if !*quiet {
		term.Summary(len(names), failed, time.Since(start))
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func convert(e *idnakit.Engine, name string, toUnicode, labelMode bool) (string, idnakit.Errors) {
	switch {
	case labelMode && toUnicode:
		return e.LabelToUnicode(name)
	case labelMode:
		return e.LabelToASCII(name)
	case toUnicode:
		return e.NameToUnicode(name)
	default:
		return e.NameToASCII(name)
	}
}
