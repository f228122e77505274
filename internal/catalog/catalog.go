// Package catalog builds and owns a Masthead entity graph: the magazine
// Registry plus the authors writing for it. It resolves entities by name,
// loads graphs from YAML seeds, and computes the demonstration report.
package catalog

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/masthead/pkg/types"
)

// Lookup and uniqueness errors.
var (
	ErrAuthorNotFound    = errors.New("author not found")
	ErrMagazineNotFound  = errors.New("magazine not found")
	ErrDuplicateAuthor   = errors.New("duplicate author name")
	ErrDuplicateMagazine = errors.New("duplicate magazine name")
)

// Catalog is the composition root for one entity graph. Author and
// magazine names are unique within a catalog; lookups scan linearly.
type Catalog struct {
	registry *types.Registry
	authors  []*types.Author
}

// New returns an empty catalog with its own registry.
func New() *Catalog {
	return &Catalog{registry: types.NewRegistry()}
}

// Registry returns the catalog's magazine registry.
func (c *Catalog) Registry() *types.Registry { return c.registry }

// Authors returns the catalog's authors in creation order.
func (c *Catalog) Authors() []*types.Author {
	out := make([]*types.Author, len(c.authors))
	copy(out, c.authors)
	return out
}

// Magazines returns the registered magazines in creation order.
func (c *Catalog) Magazines() []*types.Magazine { return c.registry.Magazines() }

// AddAuthor creates an author. Returns ErrDuplicateAuthor if the name is
// taken, or the validation error from types.NewAuthor.
func (c *Catalog) AddAuthor(name string) (*types.Author, error) {
	if _, err := c.Author(name); err == nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateAuthor, name)
	}
	a, err := types.NewAuthor(name)
	if err != nil {
		return nil, err
	}
	c.authors = append(c.authors, a)
	return a, nil
}

// AddMagazine creates and registers a magazine. Returns
// ErrDuplicateMagazine if the name is taken.
func (c *Catalog) AddMagazine(name, category string) (*types.Magazine, error) {
	if _, err := c.Magazine(name); err == nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateMagazine, name)
	}
	return c.registry.NewMagazine(name, category)
}

// AddArticle creates an article linking the named author and magazine.
func (c *Catalog) AddArticle(authorName, magazineName, title string) (*types.Article, error) {
	a, err := c.Author(authorName)
	if err != nil {
		return nil, err
	}
	m, err := c.Magazine(magazineName)
	if err != nil {
		return nil, err
	}
	return types.NewArticle(a, m, title)
}

// Author returns the author with the given name.
func (c *Catalog) Author(name string) (*types.Author, error) {
	for _, a := range c.authors {
		if a.Name() == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrAuthorNotFound, name)
}

// Magazine returns the magazine currently named name.
func (c *Catalog) Magazine(name string) (*types.Magazine, error) {
	for _, m := range c.registry.Magazines() {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrMagazineNotFound, name)
}

// RenameMagazine changes a magazine's name, keeping names unique.
func (c *Catalog) RenameMagazine(oldName, newName string) error {
	m, err := c.Magazine(oldName)
	if err != nil {
		return err
	}
	if oldName == newName {
		return nil
	}
	if _, err := c.Magazine(newName); err == nil {
		return fmt.Errorf("%w: %q", ErrDuplicateMagazine, newName)
	}
	return m.SetName(newName)
}
