package types

// Magazine publishes articles under a name and a category. Both may change
// after construction; every change is re-validated. Magazines are created
// through Registry.NewMagazine so that each one is registered.
type Magazine struct {
	id       string
	name     string
	category string
	articles []*Article
}

// ID returns the magazine's UUID v7.
func (m *Magazine) ID() string { return m.id }

// Name returns the magazine's current name.
func (m *Magazine) Name() string { return m.name }

// SetName renames the magazine. The name must be 2 to 16 characters;
// otherwise an error wrapping ErrInvalidName is returned and the name is
// unchanged.
func (m *Magazine) SetName(name string) error {
	if err := validateMagazineName(name); err != nil {
		return err
	}
	m.name = name
	return nil
}

// Category returns the magazine's current category.
func (m *Magazine) Category() string { return m.category }

// SetCategory changes the category. Returns an error wrapping
// ErrInvalidCategory if category is empty.
func (m *Magazine) SetCategory(category string) error {
	if err := validateCategory(category); err != nil {
		return err
	}
	m.category = category
	return nil
}

// AddArticle appends article to the magazine's list, without a duplicate
// check. Returns ErrTypeMismatch for a nil article and ErrForeignArticle
// when the article was published in another magazine.
func (m *Magazine) AddArticle(article *Article) error {
	if article == nil {
		return ErrTypeMismatch
	}
	if article.magazine != m {
		return ErrForeignArticle
	}
	m.articles = append(m.articles, article)
	return nil
}

// Articles returns a copy of the magazine's articles in creation order.
func (m *Magazine) Articles() []*Article {
	return cloneArticles(m.articles)
}

// ArticleCount returns len(Articles()) without copying.
func (m *Magazine) ArticleCount() int { return len(m.articles) }

// Contributors returns the distinct authors published in the magazine.
// Callers must not depend on the order.
func (m *Magazine) Contributors() []*Author {
	seen := make(map[*Author]bool, len(m.articles))
	var result []*Author
	for _, art := range m.articles {
		if seen[art.author] {
			continue
		}
		seen[art.author] = true
		result = append(result, art.author)
	}
	return result
}

// ArticleTitles returns the titles of the magazine's articles in creation
// order.
func (m *Magazine) ArticleTitles() []string {
	titles := make([]string, 0, len(m.articles))
	for _, art := range m.articles {
		titles = append(titles, art.title)
	}
	return titles
}
