package xcmerge

import "github.com/loopcontext/xcmerge/internal/placeholder"

// NormalizeValue rewrites zero-based {n} tokens to one-based %<n+1>$@ tokens.
func NormalizeValue(text string) string {
	return placeholder.Positional(text)
}

// NormalizeKey rewrites {n} tokens in a message key to the generic %@ token.
func NormalizeKey(key string) string {
	return placeholder.Unindexed(key)
}

// CatalogKey strips the indices from %<n>$@ tokens of an already normalized
// value, producing the lookup key used in Catalog.Strings.
func CatalogKey(normalized string) string {
	return placeholder.StripIndex(normalized)
}
