package main

import (
	"flag"
	"fmt"
	"io"
	"sort"

	"github.com/loopcontext/xcmerge"
)

func usageCheck(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `usage: xcmerge check [options]

Check builds the catalog without writing it. Per-language translation counts
go to stdout; keys that collide on the same catalog key and keys with no source
text go to stderr. Exits non-zero when any collision is found.

Flags:
`)
	fs.PrintDefaults()
}

func runCheck(cc *commandConfig, stdout io.Writer, stderr io.Writer) error {
	cfg, err := cc.resolve()
	if err != nil {
		return err
	}
	result, err := xcmerge.Assemble(cfg, append(cc.buildOptions(), xcmerge.WithCollisionPolicy(xcmerge.CollisionOverwrite))...)
	if err != nil {
		return err
	}
	reportSkipped(stderr, cfg, result.Skipped)

	stats := result.Stats
	fmt.Fprintf(stdout, "keys: %d, entries: %d\n", stats.Keys, stats.Entries)
	langs := make([]string, 0, len(stats.Translated))
	for lang := range stats.Translated {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		fmt.Fprintf(stdout, "  %s: %d/%d translated\n", lang, stats.Translated[lang], stats.Keys)
	}
	for _, key := range stats.SourceMissing {
		fmt.Fprintf(stderr, "missing source: %s\n", xcmerge.NormalizeKey(key))
	}
	for _, c := range stats.Collisions {
		fmt.Fprintf(stderr, "collision: %q from %s and %s\n", c.CatalogKey, c.DroppedKey, c.KeptKey)
	}
	if len(stats.Collisions) > 0 {
		return &xcmerge.CollisionError{Collisions: stats.Collisions}
	}
	return nil
}
