package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout io.Writer, stderr io.Writer) int {
	if len(argv) < 1 {
		usage(stderr)
		return 1
	}
	sub := argv[0]
	args := argv[1:]
	var err error
	switch sub {
	case "merge":
		cfg, e := parseCommonFlags("merge", args, stderr, usageMerge)
		if e != nil {
			err = e
			break
		}
		err = runMerge(cfg, stdout, stderr)
	case "check":
		cfg, e := parseCommonFlags("check", args, stderr, usageCheck)
		if e != nil {
			err = e
			break
		}
		err = runCheck(cfg, stdout, stderr)
	case "help", "-h", "--help":
		usage(stderr)
		return 0
	default:
		fmt.Fprintf(stderr, "xcmerge: unknown subcommand %q\n", sub)
		usage(stderr)
		return 1
	}
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "xcmerge: %v\n", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `xcmerge - merge per-language JSON tables into a string catalog

usage: xcmerge <command> [options]

commands:
  merge    Read the configured language tables and write Localizable.xcstrings.
  check    Build the catalog in memory and report key collisions; writes nothing.

Use 'xcmerge merge -h' or 'xcmerge check -h' for command-specific flags.
`)
}
