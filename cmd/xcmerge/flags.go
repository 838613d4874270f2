package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/loopcontext/xcmerge"
)

// commandConfig holds flags shared by merge and check.
type commandConfig struct {
	configPath string
	envFile    string
	source     string
	inputDir   string
	output     string
	languages  string
	strict     bool
	comments   bool
}

func parseCommonFlags(name string, args []string, stderr io.Writer, usageFn func(io.Writer, *flag.FlagSet)) (*commandConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usageFn(stderr, fs) }
	var cfg commandConfig
	fs.StringVar(&cfg.configPath, "config", "", "YAML config file with sourceLanguage, inputDir, output and languages.")
	fs.StringVar(&cfg.envFile, "env", ".env", "Optional dotenv file read before XCMERGE_* overrides.")
	fs.StringVar(&cfg.source, "source", "", "Source language code (default: en).")
	fs.StringVar(&cfg.inputDir, "in", "", "Directory containing the language tables (default: .).")
	fs.StringVar(&cfg.output, "out", "", "Catalog output path (default: Localizable.xcstrings).")
	fs.StringVar(&cfg.languages, "languages", "", "Comma-separated code=file pairs (e.g. en=en.json,ja=ja.json); overrides config languages.")
	fs.BoolVar(&cfg.strict, "strict", false, "Fail when two keys produce the same catalog key.")
	fs.BoolVar(&cfg.comments, "normalize-comments", false, "Rewrite {n} tokens in comments to %@.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%s: unexpected arguments %v", name, fs.Args())
	}
	return &cfg, nil
}

// resolve layers the config file, the dotenv/environment overrides and the flags, in that order.
func (c *commandConfig) resolve() (xcmerge.Config, error) {
	if c.envFile != "" {
		if err := godotenv.Load(c.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return xcmerge.Config{}, fmt.Errorf("load %s: %w", c.envFile, err)
		}
	}
	cfg, err := xcmerge.ReadConfig(c.configPath)
	if err != nil {
		return xcmerge.Config{}, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	if c.source != "" {
		cfg.SourceLanguage = c.source
	}
	if c.inputDir != "" {
		cfg.InputDir = c.inputDir
	}
	if c.output != "" {
		cfg.Output = c.output
	}
	if c.languages != "" {
		langs, err := parseLanguageList(c.languages)
		if err != nil {
			return xcmerge.Config{}, err
		}
		cfg.Languages = langs
	}
	if c.strict {
		cfg.CollisionPolicy = xcmerge.CollisionFail
	}
	if err := cfg.Validate(); err != nil {
		return xcmerge.Config{}, err
	}
	return cfg, nil
}

func (c *commandConfig) buildOptions() []xcmerge.BuildOption {
	if c.comments {
		return []xcmerge.BuildOption{xcmerge.WithNormalizedComments()}
	}
	return nil
}

func parseLanguageList(s string) ([]xcmerge.LanguageFile, error) {
	var out []xcmerge.LanguageFile
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		code, file, _ := strings.Cut(item, "=")
		code = strings.TrimSpace(code)
		if code == "" {
			return nil, fmt.Errorf("languages: missing code in %q", item)
		}
		out = append(out, xcmerge.LanguageFile{Code: code, File: strings.TrimSpace(file)})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("languages: no entries in %q", s)
	}
	return out, nil
}
