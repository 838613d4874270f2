package xcmerge

import "sort"

// BuildStats summarizes a Build run.
type BuildStats struct {
	Keys          int
	Entries       int
	Translated    map[string]int
	Collisions    []Collision
	SourceMissing []string
}

type buildOptions struct {
	observer           Observer
	policy             CollisionPolicy
	normalizedComments bool
}

type BuildOption func(*buildOptions)

// WithObserver registers an Observer notified of collisions and missing source text.
func WithObserver(o Observer) BuildOption {
	return func(bo *buildOptions) {
		if o != nil {
			bo.observer = o
		}
	}
}

// WithCollisionPolicy sets how catalog key collisions are handled.
func WithCollisionPolicy(p CollisionPolicy) BuildOption {
	return func(bo *buildOptions) {
		if p != "" {
			bo.policy = p
		}
	}
}

// WithNormalizedComments stores each comment with {n} tokens rewritten to %@.
func WithNormalizedComments() BuildOption {
	return func(bo *buildOptions) {
		bo.normalizedComments = true
	}
}

// Build assembles the catalog for sourceLang from tables.
func Build(sourceLang string, tables Tables, opts ...BuildOption) (*Catalog, error) {
	catalog, _, err := BuildWithStats(sourceLang, tables, opts...)
	return catalog, err
}

// BuildWithStats is Build plus a summary of what was merged. The catalog is nil
// when the error is non-nil.
func BuildWithStats(sourceLang string, tables Tables, opts ...BuildOption) (*Catalog, BuildStats, error) {
	bo := buildOptions{observer: nopObserver{}, policy: CollisionOverwrite}
	for _, opt := range opts {
		opt(&bo)
	}

	keys := unionKeys(tables)
	langs := otherLanguages(sourceLang, tables)
	source := tables[sourceLang]

	stats := BuildStats{
		Keys:       len(keys),
		Translated: make(map[string]int, len(langs)),
	}
	catalog := &Catalog{
		SourceLanguage: sourceLang,
		Strings:        make(map[string]CatalogEntry, len(keys)),
		Version:        CatalogVersion,
	}
	owners := make(map[string]string, len(keys))

	for _, key := range keys {
		sourceText, found := source[key]
		if !found {
			stats.SourceMissing = append(stats.SourceMissing, key)
			bo.observer.OnSourceMissing(key)
		}
		sourceValue := NormalizeValue(sourceText)

		entry := CatalogEntry{
			Comment: key,
			Localizations: map[string]Localization{
				sourceLang: {StringUnit: StringUnit{State: StateNew, Value: sourceValue}},
			},
		}
		if bo.normalizedComments {
			entry.Comment = NormalizeKey(key)
		}
		for _, lang := range langs {
			text, ok := tables[lang][key]
			if !ok {
				continue
			}
			entry.Localizations[lang] = Localization{
				StringUnit: StringUnit{State: StateTranslated, Value: NormalizeValue(text)},
			}
			stats.Translated[lang]++
		}

		catalogKey := CatalogKey(sourceValue)
		if previous, taken := owners[catalogKey]; taken {
			stats.Collisions = append(stats.Collisions, Collision{
				CatalogKey: catalogKey,
				KeptKey:    key,
				DroppedKey: previous,
			})
			bo.observer.OnCollision(catalogKey, key, previous)
		}
		owners[catalogKey] = key
		catalog.Strings[catalogKey] = entry
	}
	stats.Entries = len(catalog.Strings)

	if bo.policy == CollisionFail && len(stats.Collisions) > 0 {
		return nil, stats, &CollisionError{Collisions: stats.Collisions}
	}
	return catalog, stats, nil
}

// unionKeys returns every message key defined by any table, sorted.
func unionKeys(tables Tables) []string {
	seen := map[string]struct{}{}
	for _, table := range tables {
		for key := range table {
			seen[key] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func otherLanguages(sourceLang string, tables Tables) []string {
	langs := make([]string, 0, len(tables))
	for lang := range tables {
		if lang != sourceLang {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	return langs
}
