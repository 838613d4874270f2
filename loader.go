package xcmerge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Loader reads the configured language tables from disk.
type Loader struct {
	cfg Config
}

// LoadResult lists what a Loader read and which configured languages had no file.
type LoadResult struct {
	Tables  Tables
	Loaded  []string
	Skipped []string
}

// NewLoader validates cfg and returns a Loader for it.
func NewLoader(cfg Config) (*Loader, error) {
	cfg.Languages = append([]LanguageFile(nil), cfg.Languages...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Loader{cfg: cfg}, nil
}

// Config returns the validated config the loader was built with.
func (l *Loader) Config() Config {
	return l.cfg
}

// Load reads every configured language table. A missing file skips that
// language; any other read failure or a malformed table stops the load.
func (l *Loader) Load() (LoadResult, error) {
	result := LoadResult{Tables: make(Tables, len(l.cfg.Languages))}
	for _, lf := range l.cfg.Languages {
		path := l.cfg.LanguagePath(lf)
		content, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				result.Skipped = append(result.Skipped, lf.Code)
				continue
			}
			return LoadResult{}, fmt.Errorf("read %s table: %w", lf.Code, err)
		}
		table, err := ParseTable(content)
		if err != nil {
			return LoadResult{}, &ParseError{Lang: lf.Code, Path: path, Err: err}
		}
		result.Tables[lf.Code] = table
		result.Loaded = append(result.Loaded, lf.Code)
	}
	return result, nil
}

// ParseTable decodes a flat JSON object whose values are all strings.
func ParseTable(content []byte) (LanguageTable, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	var raw map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document, want a JSON object")
		}
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("top-level value is null, want a JSON object")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after the top-level object")
	}

	table := make(LanguageTable, len(raw))
	for key, value := range raw {
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return nil, fmt.Errorf("value of key %q is null, want a string", key)
		}
		var text string
		if err := json.Unmarshal(value, &text); err != nil {
			return nil, fmt.Errorf("value of key %q is not a string: %s", key, bytes.TrimSpace(value))
		}
		table[key] = text
	}
	return table, nil
}
