package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/masthead/internal/catalog"
	"github.com/mesh-intelligence/masthead/pkg/types"
)

func newAuthorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "authors",
		Short: "List authors",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}
			summaries := make([]catalog.AuthorSummary, 0, len(c.Authors()))
			for _, au := range c.Authors() {
				summaries = append(summaries, catalog.SummarizeAuthor(au))
			}
			return a.render(cmd, summaries, func(w io.Writer) {
				if len(summaries) == 0 {
					fmt.Fprintln(w, "No authors")
					return
				}
				for _, s := range summaries {
					fmt.Fprintf(w, "%s\t%d articles\n", s.Name, s.Articles)
				}
			})
		},
	}
}

func newMagazinesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "magazines",
		Short: "List magazines in registration order",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}
			summaries := make([]catalog.MagazineSummary, 0, c.Registry().Len())
			for _, m := range c.Magazines() {
				summaries = append(summaries, catalog.SummarizeMagazine(m))
			}
			return a.render(cmd, summaries, func(w io.Writer) {
				if len(summaries) == 0 {
					fmt.Fprintln(w, "No magazines")
					return
				}
				for _, s := range summaries {
					fmt.Fprintf(w, "%s\t%s\t%d articles\n", s.Name, s.Category, s.Articles)
				}
			})
		},
	}
}

func newAuthorCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "author",
		Short: "Query one author",
	}
	cmd.AddCommand(
		authorQuery(a, "articles", "Titles of the author's articles, oldest first",
			func(au *types.Author) []string { return catalog.ArticleTitles(au.Articles()) }),
		authorQuery(a, "magazines", "Magazines the author has written for",
			func(au *types.Author) []string { return catalog.MagazineNames(au.Magazines()) }),
		authorQuery(a, "topics", "Categories of the magazines the author has written for",
			func(au *types.Author) []string { return au.TopicAreas() }),
	)
	return cmd
}

func newMagazineCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "magazine",
		Short: "Query one magazine",
	}
	cmd.AddCommand(
		magazineQuery(a, "titles", "Titles of the magazine's articles, oldest first",
			func(m *types.Magazine) []string { return m.ArticleTitles() }),
		magazineQuery(a, "contributors", "Authors published in the magazine",
			func(m *types.Magazine) []string { return catalog.AuthorNames(m.Contributors()) }),
	)
	return cmd
}

func authorQuery(a *app, use, short string, query func(*types.Author) []string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " NAME",
		Short: short,
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}
			au, err := c.Author(args[0])
			if err != nil {
				return err
			}
			return a.renderList(cmd, query(au))
		},
	}
}

func magazineQuery(a *app, use, short string, query func(*types.Magazine) []string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " NAME",
		Short: short,
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}
			m, err := c.Magazine(args[0])
			if err != nil {
				return err
			}
			return a.renderList(cmd, query(m))
		},
	}
}

func (a *app) renderList(cmd *cobra.Command, items []string) error {
	if items == nil {
		items = []string{}
	}
	return a.render(cmd, items, func(w io.Writer) { printLines(w, items, "(none)") })
}

func newTopCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "top",
		Short: "Print the magazine with the most articles",
		Long:  "Print the magazine with the most articles. Ties go to the magazine registered first.",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}
			top, ok := c.Registry().TopPublisher()
			if !ok {
				return a.render(cmd, nil, func(w io.Writer) { fmt.Fprintln(w, "No magazines") })
			}
			s := catalog.SummarizeMagazine(top)
			return a.render(cmd, s, func(w io.Writer) {
				fmt.Fprintf(w, "%s\t%d articles\n", s.Name, s.Articles)
			})
		},
	}
}
