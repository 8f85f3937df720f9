// Package main is the entry point for the hexyl hex viewer.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/ErichDonGubler/hexyl/internal/dump"
	"github.com/ErichDonGubler/hexyl/internal/input"
	"github.com/ErichDonGubler/hexyl/internal/ui"
)

// Version information (set via ldflags during build).
var version = "dev"

type options struct {
	length        int64
	displayOffset string
	width         int
	border        string
	noSqueezing   bool
	colorMode     string
	interactive   bool
	showVersion   bool
	path          string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("hexyl %s\n", version)
		return 0
	}

	windowSize, err := dump.NewWindowSize(opts.width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hexyl: invalid width %d: %v\n", opts.width, err)
		return 1
	}

	borderStyle, err := dump.ParseBorderStyle(opts.border)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hexyl: %v\n", err)
		return 1
	}

	displayOffset, err := strconv.ParseUint(opts.displayOffset, 0, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hexyl: invalid display offset %q\n", opts.displayOffset)
		return 1
	}

	showColor, err := resolveColor(opts.colorMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hexyl: %v\n", err)
		return 1
	}

	src, err := input.Open(opts.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hexyl: %v\n", err)
		return 1
	}
	defer src.Close()
	reader := src.Reader(opts.length)

	useSqueeze := !opts.noSqueezing

	if opts.interactive {
		return runInteractive(src, reader, windowSize, borderStyle, useSqueeze, displayOffset)
	}

	printer := dump.NewPrinter(os.Stdout, showColor, borderStyle, useSqueeze).
		SetDisplayOffset(displayOffset).
		SetWindowSize(windowSize)

	if err := printer.PrintAll(reader); err != nil {
		fmt.Fprintf(os.Stderr, "hexyl: %v\n", err)
		return 1
	}
	return 0
}

// runInteractive renders the whole dump up front, colored for the screen
// and plain for the clipboard, then hands both to the pager.
func runInteractive(src *input.Source, reader io.Reader, windowSize dump.WindowSize, borderStyle dump.BorderStyle, useSqueeze bool, displayOffset uint64) int {
	data, err := io.ReadAll(reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hexyl: reading %s: %v\n", src.Name, err)
		return 1
	}

	// The pager draws through tview, not a tty, so force escapes on.
	color.NoColor = false

	var colored, plain bytes.Buffer
	renderings := []struct {
		out       *bytes.Buffer
		showColor bool
	}{
		{&colored, true},
		{&plain, false},
	}
	for _, r := range renderings {
		printer := dump.NewPrinter(r.out, r.showColor, borderStyle, useSqueeze).
			SetDisplayOffset(displayOffset).
			SetWindowSize(windowSize)
		if err := printer.PrintAll(bytes.NewReader(data)); err != nil {
			fmt.Fprintf(os.Stderr, "hexyl: %v\n", err)
			return 1
		}
	}

	viewer := ui.NewViewer(src.Name, len(data), colored.String(), plain.String())
	if err := viewer.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "hexyl: %v\n", err)
		return 1
	}
	return 0
}

// resolveColor maps the --color mode to a final on/off decision and keeps
// the color package's global kill switch consistent with it.
func resolveColor(mode string) (bool, error) {
	switch mode {
	case "always":
		color.NoColor = false
		return true, nil
	case "never":
		return false, nil
	case "auto":
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	}
	return false, fmt.Errorf("unknown color mode %q (expected auto, always or never)", mode)
}

func parseFlags() options {
	var opts options

	flag.Int64Var(&opts.length, "n", -1, "")
	flag.Int64Var(&opts.length, "length", -1, "read only this many input bytes")
	flag.StringVar(&opts.displayOffset, "o", "0", "")
	flag.StringVar(&opts.displayOffset, "display-offset", "0", "add this offset (decimal or 0x hex) to printed addresses")
	flag.IntVar(&opts.width, "w", 16, "")
	flag.IntVar(&opts.width, "width", 16, "bytes shown per line (must be even)")
	flag.StringVar(&opts.border, "border", "unicode", "border style: unicode, ascii or none")
	flag.BoolVar(&opts.noSqueezing, "no-squeezing", false, "always show repeated lines instead of collapsing them")
	flag.StringVar(&opts.colorMode, "color", "auto", "when to colorize: auto, always or never")
	flag.BoolVar(&opts.interactive, "I", false, "")
	flag.BoolVar(&opts.interactive, "interactive", false, "browse the dump in an interactive pager")
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")

	flag.Usage = usage
	flag.Parse()

	opts.path = flag.Arg(0)
	return opts
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: hexyl [OPTIONS] [FILE]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Render FILE (or stdin when FILE is omitted or -) as a hex dump.")
	fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
}
