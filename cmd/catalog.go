package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fincalc/catalog"
)

var (
	catalogSearch   string
	catalogCategory string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [type]",
	Short: "List calculators",
	Long: `Lists the available calculators grouped by category, or the fields of
a single calculator.

Examples:
  fincalc catalog
  fincalc catalog --search loan
  fincalc catalog --category Tax
  fincalc catalog emi`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVarP(&catalogSearch, "search", "s", "", "filter by search term")
	catalogCmd.Flags().StringVarP(&catalogCategory, "category", "c", "", "filter by category")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		c, ok := catalog.Get(calculatorID(args[0]))
		if !ok {
			return fmt.Errorf("unknown calculator %q", args[0])
		}

		fmt.Fprintf(out, "%s %s\n%s\n\n", c.Icon, c.Name, c.Description)
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "FIELD\tTYPE\tLABEL\tDEFAULT")
		for _, f := range c.Fields {
			def := ""
			if f.Default != nil {
				def = fmt.Sprint(f.Default)
			}
			label := f.Label
			if f.Optional {
				label += " (optional)"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.Type, label, def)
		}
		return tw.Flush()
	}

	groups := make(map[string][]catalog.Calculator)
	for _, c := range catalog.Search(catalogSearch) {
		groups[c.Category] = append(groups[c.Category], c)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	found := false
	for _, category := range catalog.Categories() {
		if catalogCategory != "" && !strings.EqualFold(category, catalogCategory) {
			continue
		}
		list := groups[category]
		if len(list) == 0 {
			continue
		}

		found = true
		fmt.Fprintf(tw, "%s\n", category)
		for _, c := range list {
			fmt.Fprintf(tw, "  %s\t%s\n", c.ID, c.Name)
		}
	}
	if !found {
		fmt.Fprintln(tw, "No calculators found.")
	}
	return tw.Flush()
}
