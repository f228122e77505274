package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/masthead/internal/catalog"
)

func newDemoCmd(a *app) *cobra.Command {
	var authorName, magazineName string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the demonstration report",
		Long: "Print an author's articles, magazines and topic areas, a magazine's\n" +
			"titles and contributors, and the top publisher.",
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}
			r, err := catalog.BuildReport(c, authorName, magazineName)
			if err != nil {
				return err
			}
			return a.render(cmd, r, func(w io.Writer) { printReport(w, r) })
		},
	}
	cmd.Flags().StringVar(&authorName, "author", catalog.DemoAuthor, "author to report on")
	cmd.Flags().StringVar(&magazineName, "magazine", catalog.DemoMagazine, "magazine to report on")
	return cmd
}

func printReport(w io.Writer, r catalog.Report) {
	fmt.Fprintf(w, "Articles by %s:\n", r.Author)
	printLines(w, r.AuthorArticles, "(none)")

	fmt.Fprintf(w, "\nMagazines %s has written for:\n", r.Author)
	printLines(w, r.AuthorMagazines, "(none)")

	fmt.Fprintf(w, "\nArticles in %s:\n", r.Magazine)
	printLines(w, r.MagazineTitles, "(none)")

	fmt.Fprintf(w, "\nContributors to %s:\n", r.Magazine)
	printLines(w, r.MagazineContributors, "(none)")

	fmt.Fprintf(w, "\nTopic areas by %s:\n", r.Author)
	printLines(w, r.AuthorTopicAreas, "(none)")

	fmt.Fprintln(w, "\nMagazine with the most articles:")
	if r.TopPublisher == "" {
		fmt.Fprintln(w, "(no magazines)")
		return
	}
	fmt.Fprintln(w, r.TopPublisher)
}
