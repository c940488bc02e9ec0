package main

import (
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/strokefont"
	"github.com/npillmayer/strokefont/svgfont"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runSvgCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	input := mustFlagString(flags, "input")
	output := mustFlagString(flags, "output")
	conf := testconfig.Conf{}
	if family := optionalFlag(flags, "family"); family != "" {
		conf[svgfont.KeyFamily] = family
		conf[svgfont.KeyName] = family
	}
	if id := optionalFlag(flags, "id"); id != "" {
		conf[svgfont.KeyID] = id
	}
	meta := svgfont.MetadataFromConfig(conf)
	n, err := strokefont.BuildFont(input, output, meta)
	if err != nil {
		fatalf("%v", err)
	}
	pterm.Success.Printf("wrote %s (%d glyphs)\n", output, n)
}

func runPseudoCloseCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	input := mustFlagString(flags, "input")
	output := mustFlagString(flags, "output")
	n, err := strokefont.PseudoCloseFile(input, output)
	if err != nil {
		fatalf("%v", err)
	}
	pterm.Success.Printf("wrote %s (%d contours pseudo-closed)\n", output, n)
}
