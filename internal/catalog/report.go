package catalog

import "github.com/mesh-intelligence/masthead/pkg/types"

// Report collects the demonstration queries for one author and one
// magazine.
type Report struct {
	Author               string   `json:"author"`
	AuthorArticles       []string `json:"author_articles"`
	AuthorMagazines      []string `json:"author_magazines"`
	AuthorTopicAreas     []string `json:"author_topic_areas"`
	Magazine             string   `json:"magazine"`
	MagazineTitles       []string `json:"magazine_titles"`
	MagazineContributors []string `json:"magazine_contributors"`
	TopPublisher         string   `json:"top_publisher,omitempty"`
}

// BuildReport runs the demonstration queries against c.
func BuildReport(c *Catalog, authorName, magazineName string) (Report, error) {
	a, err := c.Author(authorName)
	if err != nil {
		return Report{}, err
	}
	m, err := c.Magazine(magazineName)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		Author:               a.Name(),
		AuthorArticles:       ArticleTitles(a.Articles()),
		AuthorMagazines:      MagazineNames(a.Magazines()),
		AuthorTopicAreas:     nonNil(a.TopicAreas()),
		Magazine:             m.Name(),
		MagazineTitles:       m.ArticleTitles(),
		MagazineContributors: AuthorNames(m.Contributors()),
	}
	if top, ok := c.Registry().TopPublisher(); ok {
		r.TopPublisher = top.Name()
	}
	return r, nil
}

// AuthorSummary is the listing view of an author.
type AuthorSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Articles int    `json:"articles"`
}

// MagazineSummary is the listing view of a magazine.
type MagazineSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Articles int    `json:"articles"`
}

// SummarizeAuthor returns the listing view of a.
func SummarizeAuthor(a *types.Author) AuthorSummary {
	return AuthorSummary{ID: a.ID(), Name: a.Name(), Articles: len(a.Articles())}
}

// SummarizeMagazine returns the listing view of m.
func SummarizeMagazine(m *types.Magazine) MagazineSummary {
	return MagazineSummary{ID: m.ID(), Name: m.Name(), Category: m.Category(), Articles: m.ArticleCount()}
}

// ArticleTitles maps articles to their titles.
func ArticleTitles(articles []*types.Article) []string {
	out := make([]string, 0, len(articles))
	for _, art := range articles {
		out = append(out, art.Title())
	}
	return out
}

// MagazineNames maps magazines to their names.
func MagazineNames(mags []*types.Magazine) []string {
	out := make([]string, 0, len(mags))
	for _, m := range mags {
		out = append(out, m.Name())
	}
	return out
}

// AuthorNames maps authors to their names.
func AuthorNames(authors []*types.Author) []string {
	out := make([]string, 0, len(authors))
	for _, a := range authors {
		out = append(out, a.Name())
	}
	return out
}

// nonNil keeps empty lists as [] in JSON output.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
