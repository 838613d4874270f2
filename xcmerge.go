// Package xcmerge consolidates per-language flat JSON translation tables into
// a single string catalog (.xcstrings).
//
// Each table maps a message key to text with zero-based positional
// placeholders ({0}, {1}, ...). Build rewrites them to one-based catalog
// placeholders (%1$@, %2$@, ...), takes the union of keys across languages
// and keys every entry by the source language text with indices stripped
// (Hello %@). Merge runs the whole pipeline from a Config.
package xcmerge

import "fmt"

// Result is the outcome of Assemble or Merge.
type Result struct {
	Catalog *Catalog
	Stats   BuildStats
	Loaded  []string
	Skipped []string
	Output  string
}

// Assemble loads the tables named by cfg and builds the catalog in memory.
// The config's collision policy applies unless opts override it.
func Assemble(cfg Config, opts ...BuildOption) (*Result, error) {
	loader, err := NewLoader(cfg)
	if err != nil {
		return nil, err
	}
	cfg = loader.Config()
	loaded, err := loader.Load()
	if err != nil {
		return nil, err
	}

	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	opts = append([]BuildOption{WithCollisionPolicy(policy)}, opts...)
	catalog, stats, err := BuildWithStats(cfg.SourceLanguage, loaded.Tables, opts...)
	result := &Result{
		Catalog: catalog,
		Stats:   stats,
		Loaded:  loaded.Loaded,
		Skipped: loaded.Skipped,
		Output:  cfg.Output,
	}
	if err != nil {
		return result, fmt.Errorf("build catalog: %w", err)
	}
	return result, nil
}

// Merge assembles the catalog and writes it to cfg.Output.
func Merge(cfg Config, opts ...BuildOption) (*Result, error) {
	result, err := Assemble(cfg, opts...)
	if err != nil {
		return result, err
	}
	if err := WriteFile(result.Output, result.Catalog); err != nil {
		return result, err
	}
	return result, nil
}
