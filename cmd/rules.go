package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fincalc/domain"
	"fincalc/validation"
)

var rulesCmd = &cobra.Command{
	Use:   "rules <type>",
	Short: "Show the input rules of a calculator",
	Args:  cobra.ExactArgs(1),
	RunE:  runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	rules, ok := validation.Rules(calculatorID(args[0]))
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrInvalidCalculatorType, args[0])
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tTYPE\tCONSTRAINT\tMESSAGE")
	for _, r := range rules {
		field := r.Field
		if r.Optional {
			field += "?"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", field, r.Type, constraint(r), r.Message)
	}
	return tw.Flush()
}

func constraint(r domain.ValidationRule) string {
	switch {
	case len(r.Enum) > 0:
		return strings.Join(r.Enum, "|")
	case r.Pattern != "":
		return r.Pattern
	case r.Min != nil && r.Max != nil:
		return fmtBound(*r.Min) + ".." + fmtBound(*r.Max)
	case r.Min != nil:
		return ">= " + fmtBound(*r.Min)
	case r.Max != nil:
		return "<= " + fmtBound(*r.Max)
	}
	return "-"
}

func fmtBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func calculatorID(arg string) domain.CalculatorType {
	return domain.CalculatorType(strings.ToLower(strings.TrimSpace(arg)))
}
