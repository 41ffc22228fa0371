package config

import "github.com/heartmarshall/somali-phrasebook/internal/domain"

// Config is the root application configuration.
type Config struct {
	Build  BuildConfig  `yaml:"build"`
	Search SearchConfig `yaml:"search"`
	Log    LogConfig    `yaml:"log"`
}

// BuildConfig holds settings for turning the vocabulary CSV into a phrase-book.
// Empty paths mean stdin and stdout.
type BuildConfig struct {
	InputPath      string `yaml:"input_path"      env:"PHRASEBOOK_INPUT"`
	OutputPath     string `yaml:"output_path"     env:"PHRASEBOOK_OUTPUT"`
	ItalicMarker   string `yaml:"italic_marker"   env:"PHRASEBOOK_ITALIC_MARKER"   env-default:"Y"`
	KeepHeader     bool   `yaml:"keep_header"     env:"PHRASEBOOK_KEEP_HEADER"     env-default:"false"`
	ItalicConflict string `yaml:"italic_conflict" env:"PHRASEBOOK_ITALIC_CONFLICT" env-default:"last"`
	Indent         bool   `yaml:"indent"          env:"PHRASEBOOK_INDENT"          env-default:"false"`
}

// SearchConfig holds settings for querying an existing phrase-book.
type SearchConfig struct {
	BookPath    string `yaml:"book_path"    env:"PHRASEBOOK_BOOK"          env-default:"phrase-book.json"`
	KeyLanguage string `yaml:"key_language" env:"PHRASEBOOK_KEY_LANGUAGE"  env-default:"english"`
	Limit       int    `yaml:"limit"        env:"PHRASEBOOK_SEARCH_LIMIT"  env-default:"0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// ItalicPolicy returns the configured conflict policy.
func (c BuildConfig) ItalicPolicy() domain.ItalicPolicy {
	return domain.ItalicPolicy(c.ItalicConflict)
}

// Language returns the configured key language.
func (c SearchConfig) Language() domain.Language {
	return domain.Language(c.KeyLanguage)
}
