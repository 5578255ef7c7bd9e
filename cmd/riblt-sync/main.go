// Command riblt-sync is a two-sided demonstration of the riblt packages: a
// "serve" side holds a set of content-addressed chunks and streams coded
// symbols on request; a "diff" side accumulates those coded symbols and
// peels out the chunks it is missing. Built on the teacher's own CLI
// skeleton: a pborman/options flags struct per subcommand and a
// mattn/go-isatty terminal-aware status banner.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: riblt-sync <serve|diff> [flags]")
	}

	sub := os.Args[1]
	os.Args = append(os.Args[:1], os.Args[2:]...)

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		fmt.Fprintf(os.Stderr, "riblt-sync %s: reading chunk payloads from your terminal, one per line...\n", sub)
	}

	switch sub {
	case "serve":
		runServe()
	case "diff":
		runDiff()
	default:
		log.Fatalf("unknown subcommand %q: want serve or diff", sub)
	}
}
