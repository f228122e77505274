// This file implements YAML seed loading. A seed declares authors,
// magazines and articles; articles refer to the others by name.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed is the YAML document describing a catalog.
type Seed struct {
	Authors   []AuthorSeed   `yaml:"authors"`
	Magazines []MagazineSeed `yaml:"magazines"`
	Articles  []ArticleSeed  `yaml:"articles"`
}

// AuthorSeed declares one author.
type AuthorSeed struct {
	Name string `yaml:"name"`
}

// MagazineSeed declares one magazine.
type MagazineSeed struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// ArticleSeed declares one article by author and magazine name.
type ArticleSeed struct {
	Author   string `yaml:"author"`
	Magazine string `yaml:"magazine"`
	Title    string `yaml:"title"`
}

// ErrInvalidSeed wraps YAML decoding failures.
var ErrInvalidSeed = errors.New("invalid seed")

// LoadSeedFile reads the seed at path and builds a catalog from it.
func LoadSeedFile(path string, logger *slog.Logger) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed: %w", err)
	}
	defer f.Close()

	c, err := LoadSeed(f, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadSeed decodes a YAML seed from r and builds a catalog from it.
// Unknown fields are rejected. An empty document yields an empty catalog.
func LoadSeed(r io.Reader, logger *slog.Logger) (*Catalog, error) {
	var seed Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	return Build(seed, logger)
}

// Build creates a catalog from seed. Entries are applied in order: authors,
// then magazines, then articles. On the first failure the error names the
// offending entry and no catalog is returned.
func Build(seed Seed, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := New()

	for i, s := range seed.Authors {
		if _, err := c.AddAuthor(s.Name); err != nil {
			return nil, fmt.Errorf("authors[%d]: %w", i, err)
		}
	}
	for i, s := range seed.Magazines {
		if _, err := c.AddMagazine(s.Name, s.Category); err != nil {
			return nil, fmt.Errorf("magazines[%d]: %w", i, err)
		}
	}
	for i, s := range seed.Articles {
		if _, err := c.AddArticle(s.Author, s.Magazine, s.Title); err != nil {
			return nil, fmt.Errorf("articles[%d]: %w", i, err)
		}
	}

	logger.Debug("catalog built",
		"authors", len(seed.Authors),
		"magazines", len(seed.Magazines),
		"articles", len(seed.Articles),
	)
	return c, nil
}
