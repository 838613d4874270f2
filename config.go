package xcmerge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

const (
	DefaultSourceLanguage = "en"
	DefaultOutput         = "Localizable.xcstrings"

	EnvSourceLanguage  = "XCMERGE_SOURCE_LANGUAGE"
	EnvInputDir        = "XCMERGE_INPUT_DIR"
	EnvOutput          = "XCMERGE_OUTPUT"
	EnvCollisionPolicy = "XCMERGE_COLLISION_POLICY"
)

// Config describes which language tables to read and where the catalog goes.
// Languages are read in the listed order; file paths are relative to InputDir.
type Config struct {
	SourceLanguage  string          `yaml:"sourceLanguage"`
	InputDir        string          `yaml:"inputDir"`
	Output          string          `yaml:"output"`
	CollisionPolicy CollisionPolicy `yaml:"collisionPolicy"`
	Languages       []LanguageFile  `yaml:"languages"`
}

// DefaultLanguages is used when a config lists no languages.
func DefaultLanguages() []LanguageFile {
	return []LanguageFile{
		{Code: "en", File: "en.json"},
		{Code: "ja", File: "ja.json"},
		{Code: "zh-Hans", File: "zh-Hans.json"},
	}
}

func DefaultConfig() Config {
	return Config{
		SourceLanguage:  DefaultSourceLanguage,
		InputDir:        ".",
		Output:          DefaultOutput,
		CollisionPolicy: CollisionOverwrite,
		Languages:       DefaultLanguages(),
	}
}

// LoadConfig reads a YAML config file. An empty path yields DefaultConfig.
// Unset fields fall back to their defaults; the result is validated.
func LoadConfig(path string) (Config, error) {
	cfg, err := ReadConfig(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ReadConfig is LoadConfig without validation, for callers that apply
// further overrides before calling Validate.
func ReadConfig(path string) (Config, error) {
	cfg := Config{}
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.UnmarshalStrict(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyDefaults()
	return cfg, nil
}

// ApplyEnv overrides config fields from XCMERGE_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvSourceLanguage); ok && strings.TrimSpace(v) != "" {
		c.SourceLanguage = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvInputDir); ok && strings.TrimSpace(v) != "" {
		c.InputDir = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvOutput); ok && strings.TrimSpace(v) != "" {
		c.Output = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvCollisionPolicy); ok && strings.TrimSpace(v) != "" {
		c.CollisionPolicy = CollisionPolicy(strings.TrimSpace(v))
	}
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.SourceLanguage) == "" {
		c.SourceLanguage = DefaultSourceLanguage
	}
	if strings.TrimSpace(c.InputDir) == "" {
		c.InputDir = "."
	}
	if strings.TrimSpace(c.Output) == "" {
		c.Output = DefaultOutput
	}
	if c.CollisionPolicy == "" {
		c.CollisionPolicy = CollisionOverwrite
	}
	if len(c.Languages) == 0 {
		c.Languages = DefaultLanguages()
	}
}

// Validate canonicalizes language codes in place and checks the config is usable.
func (c *Config) Validate() error {
	c.applyDefaults()

	policy, err := ParseCollisionPolicy(string(c.CollisionPolicy))
	if err != nil {
		return newConfigError("collisionPolicy", "%v", err)
	}
	c.CollisionPolicy = policy

	source, err := CanonicalLanguage(c.SourceLanguage)
	if err != nil {
		return newConfigError("sourceLanguage", "%v", err)
	}
	c.SourceLanguage = source

	seen := make(map[string]struct{}, len(c.Languages))
	sourceListed := false
	for i, lf := range c.Languages {
		code, err := CanonicalLanguage(lf.Code)
		if err != nil {
			return newConfigError(fmt.Sprintf("languages[%d].code", i), "%v", err)
		}
		if _, dup := seen[code]; dup {
			return newConfigError(fmt.Sprintf("languages[%d].code", i), "duplicate language %s", code)
		}
		seen[code] = struct{}{}
		file := strings.TrimSpace(lf.File)
		if file == "" {
			file = code + ".json"
		}
		c.Languages[i] = LanguageFile{Code: code, File: file}
		if code == source {
			sourceListed = true
		}
	}
	if !sourceListed {
		return newConfigError("sourceLanguage", "%s is not one of the configured languages", source)
	}
	return nil
}

// Policy returns the parsed collision policy. An empty policy means overwrite;
// an unknown one is a *ConfigError, the same one Validate reports.
func (c Config) Policy() (CollisionPolicy, error) {
	p, err := ParseCollisionPolicy(string(c.CollisionPolicy))
	if err != nil {
		return "", newConfigError("collisionPolicy", "%v", err)
	}
	return p, nil
}

// LanguagePath resolves a language file against InputDir.
func (c Config) LanguagePath(lf LanguageFile) string {
	if filepath.IsAbs(lf.File) {
		return lf.File
	}
	return filepath.Join(c.InputDir, lf.File)
}

// CanonicalLanguage parses a BCP 47 language code and returns its canonical
// form (zh_hans -> zh-Hans).
func CanonicalLanguage(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", fmt.Errorf("language code is required")
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("invalid language code %q: %w", code, err)
	}
	return tag.String(), nil
}
