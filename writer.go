package xcmerge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Write encodes the catalog as indented UTF-8 JSON. Non-ASCII text, including
// U+2028 and U+2029, and HTML characters are written literally; object keys
// are sorted.
func Write(w io.Writer, catalog *Catalog) error {
	if catalog == nil {
		return fmt.Errorf("nil catalog")
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(catalog); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if _, err := w.Write(unescapeSeparators(buf.Bytes())); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

// unescapeSeparators turns the \u2028 and \u2029 escapes encoding/json always
// emits back into literal runes. Escape pairs such as \\ are copied whole, so
// an escaped backslash followed by u2028 stays as written.
func unescapeSeparators(encoded []byte) []byte {
	if !bytes.Contains(encoded, []byte(`\u202`)) {
		return encoded
	}
	out := make([]byte, 0, len(encoded))
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c != '\\' || i+1 >= len(encoded) {
			out = append(out, c)
			continue
		}
		if rest := encoded[i+1:]; len(rest) >= 5 && rest[0] == 'u' {
			switch string(rest[1:5]) {
			case "2028":
				out = append(out, "\u2028"...)
				i += 5
				continue
			case "2029":
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		out = append(out, c, encoded[i+1])
		i++
	}
	return out
}

// WriteFile writes the catalog to path through a temporary file in the same
// directory, so an existing catalog is replaced only by a complete one.
func WriteFile(path string, catalog *Catalog) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, catalog); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadFile decodes a catalog previously written by WriteFile.
func ReadFile(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var catalog Catalog
	if err := json.Unmarshal(content, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return &catalog, nil
}
