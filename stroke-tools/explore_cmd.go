package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/strokefont"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
	"golang.org/x/text/unicode/runenames"
)

func runExploreCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	outlines, _ := mustLoadOutlines(fontPath)
	intp := &Intp{font: fontPath, outlines: outlines}
	pterm.Info.Printf("Loaded %s with %d glyphs\n", fontPath, len(intp.outlines))
	repl, err := readline.New("glyphs > ")
	if err != nil {
		fatalf("%v", err)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// Intp is our interpreter object
type Intp struct {
	font     string
	outlines []strokefont.Outline
	repl     *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.execute(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// execute runs a single command line and reports whether to quit.
func (intp *Intp) execute(line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	tracer().Debugf("command %q, argument %q", cmd, arg)
	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return true
	case "list":
		intp.list()
	case "glyph":
		if err := intp.glyph(arg); err != nil {
			pterm.Error.Println(err)
		}
	default:
		help()
	}
	return false
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	list         list all glyphs with advance width and contours
	glyph <c>    show the contours of the glyph for character c
	help         show this text
	quit         leave the explorer
	`)
}

func (intp *Intp) list() {
	data := [][]string{
		{"Char", "Code", "Advance", "Contours", "Closed"},
	}
	for _, o := range intp.outlines {
		contours := o.Contours()
		closed := 0
		for _, c := range contours {
			if c.IsClosed() {
				closed++
			}
		}
		data = append(data, []string{
			fmt.Sprintf("%q", o.Char),
			formatCodepoints(o.Char),
			fmt.Sprintf("%d", o.Advance),
			fmt.Sprintf("%d", len(contours)),
			fmt.Sprintf("%d", closed),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) glyph(arg string) error {
	if arg = strings.TrimSpace(arg); arg == "" {
		return fmt.Errorf("usage: glyph <character>")
	}
	o, ok := strokefont.Lookup(intp.outlines, arg)
	if !ok {
		return fmt.Errorf("no glyph for %q in %s", arg, intp.font)
	}
	pterm.Printf("%q %s  advance=%d\n", o.Char, describeRunes(o.Char), o.Advance)
	for i, c := range o.Contours() {
		state := "open"
		if c.IsClosed() {
			state = "closed"
		}
		pterm.Printf("  contour #%d (%s, %d segments)\n", i, state, len(c))
		for _, seg := range c {
			pterm.Printf("    %s\n", seg)
		}
	}
	return nil
}

func formatCodepoints(s string) string {
	var parts []string
	for _, r := range s {
		parts = append(parts, fmt.Sprintf("U+%04X", r))
	}
	return strings.Join(parts, " ")
}

func describeRunes(s string) string {
	var names []string
	for _, r := range s {
		names = append(names, fmt.Sprintf("U+%04X %s", r, runenames.Name(r)))
	}
	return strings.Join(names, ", ")
}
