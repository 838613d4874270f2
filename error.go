package xcmerge

import (
	"fmt"
	"strings"
)

// ParseError reports a language table file that is not a flat JSON object of strings.
type ParseError struct {
	Lang string
	Path string
	Err  error
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse %s table %s: %v", pe.Lang, pe.Path, pe.Err)
}

func (pe *ParseError) Unwrap() error {
	return pe.Err
}

// Collision describes two message keys whose source text maps to one catalog key.
type Collision struct {
	CatalogKey string
	KeptKey    string
	DroppedKey string
}

// CollisionError is returned by Build under CollisionFail.
type CollisionError struct {
	Collisions []Collision
}

func (ce *CollisionError) Error() string {
	if len(ce.Collisions) == 1 {
		c := ce.Collisions[0]
		return fmt.Sprintf("catalog key %q produced by both %q and %q", c.CatalogKey, c.DroppedKey, c.KeptKey)
	}
	keys := make([]string, 0, len(ce.Collisions))
	for _, c := range ce.Collisions {
		keys = append(keys, fmt.Sprintf("%q", c.CatalogKey))
	}
	return fmt.Sprintf("%d catalog key collisions: %s", len(ce.Collisions), strings.Join(keys, ", "))
}

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field  string
	Reason string
}

func (ce *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", ce.Field, ce.Reason)
}

func newConfigError(field string, format string, args ...interface{}) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
