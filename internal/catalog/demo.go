package catalog

import "log/slog"

// Names used by the demonstration report.
const (
	DemoAuthor   = "Mark Goldbrigde"
	DemoMagazine = "London post"
)

// demoSeed is the built-in demonstration graph: two authors, two
// magazines, three articles.
var demoSeed = Seed{
	Authors: []AuthorSeed{
		{Name: DemoAuthor},
		{Name: "Mark Twain"},
	},
	Magazines: []MagazineSeed{
		{Name: DemoMagazine, Category: "sports"},
		{Name: "Big think", Category: "Science"},
	},
	Articles: []ArticleSeed{
		{Author: DemoAuthor, Magazine: DemoMagazine, Title: "The Art of code"},
		{Author: DemoAuthor, Magazine: "Big think", Title: "The Science of Storytelling"},
		{Author: "Mark Twain", Magazine: DemoMagazine, Title: "London is blue"},
	},
}

// DemoSeed returns a copy of the built-in demonstration seed.
func DemoSeed() Seed {
	return Seed{
		Authors:   append([]AuthorSeed(nil), demoSeed.Authors...),
		Magazines: append([]MagazineSeed(nil), demoSeed.Magazines...),
		Articles:  append([]ArticleSeed(nil), demoSeed.Articles...),
	}
}

// Demo builds a catalog from the demonstration seed.
func Demo(logger *slog.Logger) *Catalog {
	c, err := Build(DemoSeed(), logger)
	if err != nil {
		// The seed is a constant; failure is a programming error.
		panic("catalog: demonstration seed is invalid: " + err.Error())
	}
	return c
}
