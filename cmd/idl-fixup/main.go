package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ic-n/redio-contract/idl"
)

func main() {
	inPath := flag.String("in", "", "path to the Anchor IDL JSON to rewrite")
	outPath := flag.String("out", "", "path to write the rewritten IDL JSON")
	flag.Usage = printUsage
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		printUsage()
		os.Exit(1)
	}

	if err := idl.FixFile(*inPath, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: idl-fixup -in <idl.json> -out <fixed.json>

Rewrites an Anchor-emitted IDL so strict consumers accept it: strips
unrecognized account fields, makes writable/signer flags explicit,
truncates dotted seed paths, and drops malformed program overrides.

Flags:
`)
	flag.PrintDefaults()
}
