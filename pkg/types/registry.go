package types

// Registry records every magazine created through it, in creation order.
// It is owned by whoever builds the entity graph; there is no global
// registry. Magazines are never removed.
type Registry struct {
	magazines []*Magazine
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewMagazine creates a magazine and registers it.
// The name must be 2 to 16 characters (ErrInvalidName) and the category
// non-empty (ErrInvalidCategory). Nothing is registered on error.
func (r *Registry) NewMagazine(name, category string) (*Magazine, error) {
	if err := validateMagazineName(name); err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	m := &Magazine{id: newID(), name: name, category: category}
	r.magazines = append(r.magazines, m)
	return m, nil
}

// Magazines returns a copy of the registered magazines in creation order.
func (r *Registry) Magazines() []*Magazine {
	out := make([]*Magazine, len(r.magazines))
	copy(out, r.magazines)
	return out
}

// Len returns the number of registered magazines.
func (r *Registry) Len() int { return len(r.magazines) }

// TopPublisher returns the magazine with the most articles. Ties go to the
// magazine registered first. The second result is false when the registry
// is empty.
func (r *Registry) TopPublisher() (*Magazine, bool) {
	var top *Magazine
	for _, m := range r.magazines {
		if top == nil || len(m.articles) > len(top.articles) {
			top = m
		}
	}
	return top, top != nil
}
