package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"golox/internal"

	"github.com/labstack/gommon/color"
)

func main() {
	tokens := flag.Bool("tokens", false, "print the token stream instead of the tree")
	rpn := flag.Bool("rpn", false, "print expressions in reverse Polish notation")
	noColor := flag.Bool("no-color", false, "disable colored diagnostics")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: loxast [-tokens | -rpn] [-no-color] /path/to/source.lox")
		os.Exit(64)
	}

	b, err := ioutil.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	if *noColor {
		color.Disable()
	}

	dump := internal.ParseTree
	switch {
	case *tokens:
		dump = internal.TokenListing
	case *rpn:
		dump = internal.RPNTree
	}

	out, diagnostics := dump(string(b))
	fmt.Print(out)

	for _, d := range diagnostics {
		fmt.Fprintln(os.Stderr, color.Red(d.String()))
	}
	if len(diagnostics) != 0 {
		os.Exit(65)
	}
}
