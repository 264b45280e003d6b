// Command z80asm assembles Z80 source files into a listing and (optionally)
// a flat binary image, per spec.md §6. Flag-based CLI in the teacher's
// main.go style -- standard `flag`, a `-version`/`-help` pair, and a
// printHelp() function -- not cobra/urfave.
package main

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/xyproto/env/v2"

	"github.com/lookbusy1344/z80asm/config"
	"github.com/lookbusy1344/z80asm/internal/ast"
	"github.com/lookbusy1344/z80asm/internal/compile"
	"github.com/lookbusy1344/z80asm/internal/emu"
	"github.com/lookbusy1344/z80asm/internal/layout"
	"github.com/lookbusy1344/z80asm/internal/listing"
	"github.com/lookbusy1344/z80asm/internal/parse"
)

// Version information -- can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := goflag.NewFlagSet("z80asm", goflag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		showVersion = fs.Bool("version", false, "Show version information")
		showHelp    = fs.Bool("help", false, "Show help information")
		outPath     = fs.String("o", "", "Write the assembled flat binary image to this file")
		configPath  = fs.String("config", "", "Path to a z80asm config.toml (default: the platform config dir)")
		replaceN    = fs.Bool("replace-names", false, "Render label/const references as resolved numeric values")
		interpLit   = fs.Bool("interpret-literals", false, "Render char/string literals as hex byte sequences")
		noColor     = fs.Bool("no-color", false, "Disable colorized listing output even on a terminal")
		runImage    = fs.Bool("run", false, "After assembling, execute the image on the emulator adjunct and dump registers")
	)
	fs.Usage = func() { printHelp(fs) }

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "z80asm %s\n", Version)
		if Commit != "unknown" {
			fmt.Fprintf(stdout, "Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Fprintf(stdout, "Built: %s\n", Date)
		}
		return 0
	}
	if *showHelp {
		printHelp(fs)
		return 0
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "z80asm: %v\n", err)
		return 1
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(stderr, "z80asm: no input files")
		printHelp(fs)
		return 2
	}

	opts := listing.Options{
		ReplaceNames:      *replaceN || cfg.Listing.ReplaceNames,
		InterpretLiterals: *interpLit || cfg.Listing.InterpretLiteral,
		BytesPerLine:      cfg.Listing.BytesPerLine,
	}
	colorize := cfg.Listing.ColorOutput && !*noColor && isTerminal(int(stdout.Fd()))

	failed := false
	for _, path := range inputs {
		prog, img, ok := assembleFile(path, opts, stdout, stderr, colorize)
		if !ok {
			failed = true
			continue
		}
		if *outPath != "" {
			if err := os.WriteFile(*outPath, img, 0o644); err != nil { // #nosec G306 -- assembled binary, not sensitive
				fmt.Fprintf(stderr, "z80asm: writing %s: %v\n", *outPath, err)
				failed = true
			}
		}
		if *runImage {
			runOnEmulator(prog, img, cfg, stdout)
		}
	}

	if failed {
		return 1
	}
	return 0
}

// loadConfig reads config.toml from configPath, or the platform default
// location when configPath is empty; environment variables override the
// file per spec.md's CLI ambient stack, the same role xyproto/env/v2 plays
// in wiring small env-var overrides onto CLI defaults elsewhere in the pack.
func loadConfig(configPath string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if v := env.StrOr("Z80ASM_ENTRY", ""); v != "" {
		cfg.Emulator.EntryPoint = v
	}
	if v := env.IntOr("Z80ASM_MAX_CYCLES", 0); v > 0 {
		cfg.Emulator.MaxInstructions = uint64(v)
	}
	return cfg, nil
}

// assembleFile runs the full parse -> layout -> compile -> print pipeline
// for one input file, printing its listing to stdout and any diagnostics
// to stderr, per spec.md §6. ok is false if any stage reported an error.
func assembleFile(path string, opts listing.Options, stdout, stderr *os.File, colorize bool) (*ast.Program, []byte, bool) {
	src, err := os.ReadFile(path) // #nosec G304 -- CLI-provided source path
	if err != nil {
		fmt.Fprintf(stderr, "z80asm: %v\n", err)
		return nil, nil, false
	}

	p := parse.NewParser(string(src), path)
	prog, err := p.Parse()
	if err != nil {
		fmt.Fprint(stderr, err.Error())
		return nil, nil, false
	}

	if err := layout.Layout(prog); err != nil {
		fmt.Fprint(stderr, err.Error())
		return nil, nil, false
	}

	if err := compile.Compile(prog); err != nil {
		fmt.Fprint(stderr, err.Error())
		return nil, nil, false
	}

	out := listing.Print(prog, opts)
	if colorize {
		out = colorizeListing(out)
	}
	fmt.Fprint(stdout, out)

	return prog, compile.EmitBinary(prog), true
}

// runOnEmulator loads the assembled image into the §6 emulator adjunct,
// runs it to completion (or the configured instruction ceiling), and dumps
// its registers. Opt-in via -run: the default invocation's stdout is only
// ever the listing, per spec.md §6.
func runOnEmulator(prog *ast.Program, img []byte, cfg *config.Config, stdout *os.File) {
	read, write := emu.LoadImage(img)
	cpu := emu.NewCPU(read, write, func(byte) byte { return 0 }, func(byte, byte) {})
	if cfg.Emulator.MaxInstructions > 0 {
		cpu.MaxInstructions = int(cfg.Emulator.MaxInstructions)
	}
	cpu.Run()

	fmt.Fprintln(stdout, "\n; -- emulator run --")
	dump := cpu.Dump()
	for _, name := range []string{"a", "f", "b", "c", "d", "e", "h", "l", "ix", "iy", "sp", "pc", "i", "r"} {
		fmt.Fprintf(stdout, "; %-3s = 0x%04X\n", name, dump[name])
	}
	if cpu.Halted {
		fmt.Fprintf(stdout, "; halted after %d instructions\n", cpu.Executed)
	} else {
		fmt.Fprintf(stdout, "; stopped at instruction ceiling (%d) without halting\n", cpu.MaxInstructions)
	}
}

// colorizeListing wraps the address column in ANSI bold when writing to a
// terminal; kept deliberately minimal since spec.md's Non-goals exclude a
// source-level debugger or TUI, not plain ANSI color.
func colorizeListing(s string) string {
	const boldOn, boldOff = "\x1b[1m", "\x1b[0m"
	var out []byte
	lines := splitLines(s)
	for _, line := range lines {
		if len(line) >= 4 {
			out = append(out, boldOn...)
			out = append(out, line[:4]...)
			out = append(out, boldOff...)
			out = append(out, line[4:]...)
		} else {
			out = append(out, line...)
		}
		out = append(out, '\n')
	}
	return string(out)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func printHelp(fs *goflag.FlagSet) {
	fmt.Fprintln(os.Stderr, "z80asm - a Z80 assembler")
	fmt.Fprintln(os.Stderr, "\nUsage: z80asm [flags] INPUT...")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	fs.PrintDefaults()
}
