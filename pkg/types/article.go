package types

// Article joins one author to one magazine. All fields are fixed at
// construction; there is no way to move an article to another author or
// magazine, so both owners' lists always agree with the article.
type Article struct {
	id       string
	title    string
	author   *Author
	magazine *Magazine
}

// NewArticle creates an article and appends it once to author's and
// magazine's article lists. Nothing is modified when an error is returned.
//
// Returns ErrTypeMismatch if author or magazine is nil, and an error
// wrapping ErrInvalidTitle if title is not 5 to 50 characters.
func NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	if author == nil || magazine == nil {
		return nil, ErrTypeMismatch
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	art := &Article{
		id:       newID(),
		title:    title,
		author:   author,
		magazine: magazine,
	}
	// Neither append can fail: art is non-nil and owned by both.
	author.articles = append(author.articles, art)
	magazine.articles = append(magazine.articles, art)
	return art, nil
}

// ID returns the article's UUID v7.
func (a *Article) ID() string { return a.id }

// Title returns the article's title.
func (a *Article) Title() string { return a.title }

// Author returns the article's author.
func (a *Article) Author() *Author { return a.author }

// Magazine returns the magazine that published the article.
func (a *Article) Magazine() *Magazine { return a.magazine }
