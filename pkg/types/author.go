package types

// Author writes articles. The name is fixed at construction; the article
// list grows as articles are created and is never pruned.
type Author struct {
	id       string
	name     string
	articles []*Article
}

// NewAuthor returns an author with the given name and no articles.
// Returns an error wrapping ErrInvalidName if name is empty.
func NewAuthor(name string) (*Author, error) {
	if err := validateAuthorName(name); err != nil {
		return nil, err
	}
	return &Author{id: newID(), name: name}, nil
}

// ID returns the author's UUID v7.
func (a *Author) ID() string { return a.id }

// Name returns the author's name.
func (a *Author) Name() string { return a.name }

// AddArticle appends article to the author's list. There is no duplicate
// check: adding the same article twice lists it twice. NewArticle already
// calls this, so callers rarely need to.
// Returns ErrTypeMismatch for a nil article and ErrForeignArticle when the
// article was written by someone else.
func (a *Author) AddArticle(article *Article) error {
	if article == nil {
		return ErrTypeMismatch
	}
	if article.author != a {
		return ErrForeignArticle
	}
	a.articles = append(a.articles, article)
	return nil
}

// Articles returns the author's articles in creation order. The slice is a
// copy; appending to it does not affect the author.
func (a *Author) Articles() []*Article {
	return cloneArticles(a.articles)
}

// Magazines returns the distinct magazines the author has written for.
// Callers must not depend on the order.
func (a *Author) Magazines() []*Magazine {
	seen := make(map[*Magazine]bool, len(a.articles))
	var result []*Magazine
	for _, art := range a.articles {
		if seen[art.magazine] {
			continue
		}
		seen[art.magazine] = true
		result = append(result, art.magazine)
	}
	return result
}

// TopicAreas returns the distinct categories of the magazines the author
// has written for. Categories are read at call time, so a renamed category
// is reported under its new value. Callers must not depend on the order.
func (a *Author) TopicAreas() []string {
	seen := make(map[string]bool)
	var result []string
	for _, art := range a.articles {
		c := art.magazine.category
		if seen[c] {
			continue
		}
		seen[c] = true
		result = append(result, c)
	}
	return result
}

func cloneArticles(src []*Article) []*Article {
	out := make([]*Article, len(src))
	copy(out, src)
	return out
}
