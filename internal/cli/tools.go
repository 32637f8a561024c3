package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/khanglvm/toolbelt/internal/catalog"
	"github.com/khanglvm/toolbelt/internal/transform"
	"github.com/spf13/cobra"
)

// NewToolsCmd creates the 'tools' command for browsing the catalog.
func NewToolsCmd(g *Globals) *cobra.Command {
	var category string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "tools",
		Aliases: []string{"ls", "list"},
		Short:   "List catalog tools",
		Long: `List every tool in the catalog, grouped by category.

Tools marked with ▶ run locally with 'toolbelt run'.`,
		Example: `  toolbelt tools
  toolbelt tools --category developer
  toolbelt tools --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.Catalog()
			if err != nil {
				return err
			}

			records := c.Records()
			if category != "" {
				records = c.ByCategory(category)
				if len(records) == 0 {
					return fmt.Errorf("unknown category %q (available: %s)", category, strings.Join(c.Categories(), ", "))
				}
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				return writeJSON(out, records)
			}
			printCatalog(out, records)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list tools in this category")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func printCatalog(w io.Writer, records []catalog.ToolRecord) {
	byCategory := make(map[string][]catalog.ToolRecord)
	var order []string
	for _, rec := range records {
		if _, seen := byCategory[rec.Category]; !seen {
			order = append(order, rec.Category)
		}
		byCategory[rec.Category] = append(byCategory[rec.Category], rec)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, cat := range order {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s (%d)\n", cat, len(byCategory[cat]))
		for _, rec := range byCategory[cat] {
			marker := " "
			if _, ok := transform.Lookup(transform.ProcessorID(rec.Href)); ok {
				marker = "▶"
			}
			fmt.Fprintf(tw, "  %s %s\t%s\t%s\n", marker, rec.Title, rec.Href, rec.Description)
		}
	}
	tw.Flush()
}
