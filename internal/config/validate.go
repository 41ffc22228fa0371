package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically. CLIs call
// it again after applying flag overrides.
func (c *Config) Validate() error {
	if err := c.Build.validate(); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	return nil
}

func (b *BuildConfig) validate() error {
	if strings.TrimSpace(b.ItalicMarker) == "" {
		return fmt.Errorf("italic_marker must not be empty")
	}
	if !b.ItalicPolicy().IsValid() {
		return fmt.Errorf("italic_conflict must be one of last, first, any (got %q)", b.ItalicConflict)
	}
	return nil
}

func (s *SearchConfig) validate() error {
	if !s.Language().IsValid() {
		return fmt.Errorf("key_language must be somali or english (got %q)", s.KeyLanguage)
	}
	if s.Limit < 0 {
		return fmt.Errorf("limit must be >= 0 (got %d)", s.Limit)
	}
	return nil
}
