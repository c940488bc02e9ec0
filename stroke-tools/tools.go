package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'strokefont.tools'
func tracer() tracing.Trace {
	return tracing.Select("strokefont.tools")
}

type action struct {
	name  string
	short string
}

var actions = []action{
	{"svg", "assemble an SVG font from glyph sources"},
	{"svg_pseudoclose", "pseudo-close the closed contours of a font"},
	{"view", "render glyphs of a font to PNG"},
	{"explore", "inspect glyphs of a font interactively"},
}

func main() {
	initDisplay()
	if len(os.Args) > 1 {
		checkAction(os.Args[1])
	}
	commando.
		SetExecutableName("stroke-tools").
		SetVersion("v1.0.0").
		SetDescription("Tools for building and inspecting the Norm Stroke SVG font.")

	commando.
		Register(nil).
		SetAction(func(map[string]commando.ArgValue, map[string]commando.FlagValue) {
			usage(os.Stdout)
			os.Exit(2)
		})

	commando.
		Register("svg").
		SetDescription("Assemble glyph sources into an SVG font document.").
		SetShortDescription("assemble font").
		AddFlag("input,i", "directory of glyph sources", commando.String, "glyphs").
		AddFlag("output,o", "output SVG font file", commando.String, "font/NormStroke.svg").
		AddFlag("family", "font family name (default: Norm Stroke)", commando.String, "-").
		AddFlag("id", "font id (default: NormStroke)", commando.String, "-").
		AddFlag("trace", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runSvgCommand)

	commando.
		Register("svg_pseudoclose").
		SetDescription("Shorten the final segment of every closed contour by one font unit.").
		SetShortDescription("pseudo-close contours").
		AddFlag("input,i", "input SVG font file", commando.String, "font/NormStroke.svg").
		AddFlag("output,o", "output SVG font file", commando.String, "font/NormStroke_pseudoclosed.svg").
		AddFlag("trace", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runPseudoCloseCommand)

	commando.
		Register("view").
		SetDescription("Render the strokes of glyphs of an SVG font to a PNG image.").
		SetShortDescription("font to image").
		AddArgument("font", "SVG font file path", "").
		AddFlag("text,t", "characters to render (default: all glyphs)", commando.String, "-").
		AddFlag("output,o", "output PNG file", commando.String, "stroke-tools-view.png").
		AddFlag("size,s", "render scale in pixels-per-em", commando.Int, 96).
		AddFlag("trace", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runViewCommand)

	commando.
		Register("explore").
		SetDescription("Inspect glyphs and contours of an SVG font interactively.").
		SetShortDescription("glyph explorer").
		AddArgument("font", "SVG font file path", "").
		AddFlag("trace", "trace level [Debug|Info|Error]", commando.String, "Info").
		SetAction(runExploreCommand)

	commando.Parse(nil)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// checkAction rejects unknown action names before commando gets to see them.
func checkAction(arg string) {
	if strings.HasPrefix(arg, "-") || isAction(arg) {
		return // --help, --version or a registered action
	}
	pterm.Error.Printf("unknown action %q\n", arg)
	usage(os.Stdout)
	os.Exit(2)
}

func isAction(name string) bool {
	for _, a := range actions {
		if a.name == name {
			return true
		}
	}
	return false
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: stroke-tools <action> [flags]")
	fmt.Fprintln(w, "actions:")
	for _, a := range actions {
		fmt.Fprintf(w, "  %-16s %s\n", a.name, a.short)
	}
}

var traceKeys = []string{
	"strokefont",
	"strokefont.tools",
	"strokefont.glyphtab",
	"strokefont.svgpath",
	"strokefont.svgfont",
	"strokefont.preview",
}

// setupTracing routes all tracers of this module to the Go log package,
// with trace level taken from the --trace flag.
func setupTracing(flags map[string]commando.FlagValue) {
	level, err := flags["trace"].GetString()
	if err != nil {
		fatalf("invalid --trace flag: %v", err)
	}
	if err := checkTraceLevel(level); err != nil {
		fatalf("%v", err)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("cannot configure tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("trace level is %s", level)
}

func checkTraceLevel(level string) error {
	switch level {
	case "Debug", "Info", "Error":
		return nil
	}
	return fmt.Errorf("invalid trace level %q, expected Debug|Info|Error", level)
}

// optionalFlag returns the value of a string flag, or "" if the flag has been
// left at its placeholder default "-".
func optionalFlag(flags map[string]commando.FlagValue, name string) string {
	s, err := flags[name].GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	if s = strings.TrimSpace(s); s == "-" {
		return ""
	}
	return s
}

func mustFlagString(flags map[string]commando.FlagValue, name string) string {
	s, err := flags[name].GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	if s = strings.TrimSpace(s); s == "" {
		fatalf("--%s must not be empty", name)
	}
	return s
}

func mustFlagInt(flags map[string]commando.FlagValue, name string) int {
	n, err := flags[name].GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func fatalf(format string, args ...interface{}) {
	pterm.Error.Println(fmt.Sprintf(format, args...))
	os.Exit(1)
}
