package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	kind := flag.String("kind", "", "table kind: names, titles, locations or history (default: guessed from the file name)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-kind names|titles|locations|history] <table.json>...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	failed := false
	for _, filename := range flag.Args() {
		fmt.Printf("Validating %s...\n", filename)
		v := &TableValidator{}
		if err := v.ValidateFile(filename, *kind); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
			continue
		}
		fmt.Printf("%s is a valid %s table!\n", filename, v.Kind)
	}
	if failed {
		os.Exit(1)
	}
}
