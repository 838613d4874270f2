package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/loopcontext/xcmerge"
)

func usageMerge(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `usage: xcmerge merge [options]

Merge reads every configured language table (a flat JSON object of key to text),
rewrites {n} placeholders to %%<n+1>$@, and writes one string catalog keyed by the
source language text. Missing language files are skipped.

Flags:
`)
	fs.PrintDefaults()
}

func runMerge(cc *commandConfig, stdout io.Writer, stderr io.Writer) error {
	cfg, err := cc.resolve()
	if err != nil {
		return err
	}
	result, err := xcmerge.Merge(cfg, append(cc.buildOptions(), xcmerge.WithObserver(newReporter(stderr)))...)
	if result != nil {
		reportSkipped(stderr, cfg, result.Skipped)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "xcmerge: wrote %s (%d strings)\n", result.Output, len(result.Catalog.Strings))
	return nil
}

func reportSkipped(w io.Writer, cfg xcmerge.Config, skipped []string) {
	for _, lang := range skipped {
		for _, lf := range cfg.Languages {
			if lf.Code == lang {
				fmt.Fprintf(w, "xcmerge: skipped %s (%s not found)\n", lang, cfg.LanguagePath(lf))
			}
		}
	}
}

// reporter prints build notifications to the CLI's stderr.
type reporter struct {
	w io.Writer
}

func newReporter(w io.Writer) *reporter {
	return &reporter{w: w}
}

func (r *reporter) OnCollision(catalogKey string, keptKey string, droppedKey string) {
	fmt.Fprintf(r.w, "xcmerge: collision on %q: %q replaces %q\n", catalogKey, keptKey, droppedKey)
}

func (r *reporter) OnSourceMissing(messageKey string) {
	fmt.Fprintf(r.w, "xcmerge: %q has no source text\n", xcmerge.NormalizeKey(messageKey))
}
