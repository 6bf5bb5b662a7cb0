package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fincalc/catalog"
	"fincalc/domain"
	"fincalc/repository"
	"fincalc/service"
)

var (
	calcInputs []string
	calcJSON   bool
)

var calcCmd = &cobra.Command{
	Use:   "calc <type>",
	Short: "Run one calculation",
	Long: `Validates the inputs and runs a single calculator.

Examples:
  fincalc calc sip -i monthlyInvestment=10000 -i annualRate=12 -i years=10
  fincalc calc gst -i amount=1000 -i gstRate=18 -i isInclusive=true
  fincalc calc xirr -i startDate=2020-01-01 -i frequency=monthly \
    -i recurringAmount=10000 -i maturityDate=2021-01-01 -i maturityAmount=132000`,
	Args: cobra.ExactArgs(1),
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().StringArrayVarP(&calcInputs, "input", "i", nil, "input as key=value, repeatable")
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "print the result as JSON")
}

func runCalc(cmd *cobra.Command, args []string) error {
	inputs, err := parseInputs(calcInputs)
	if err != nil {
		return err
	}

	calculatorType := calculatorID(args[0])

	calculatorService := service.NewCalculatorService(repository.NewCalculationRepositoryMemory(), nil)
	outcome, err := calculatorService.Calculate(context.Background(), string(calculatorType), inputs)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			for _, f := range validationErr.Fields {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", f.Field, f.Message)
			}
		}
		return err
	}

	if calcJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(outcome.Result)
	}
	return printResult(cmd.OutOrStdout(), calculatorType, outcome.Result)
}

// parseInputs turns key=value pairs into inputs. Numbers and booleans are
// typed, anything else stays a string.
func parseInputs(pairs []string) (domain.Inputs, error) {
	inputs := domain.Inputs{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid input %q: expected key=value", pair)
		}

		value = strings.TrimSpace(value)
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			inputs[key] = f
		} else if value == "true" || value == "false" {
			inputs[key] = value == "true"
		} else {
			inputs[key] = value
		}
	}
	return inputs, nil
}

// printResult lists the result fields declared in the catalog first, then
// any others in key order.
func printResult(out io.Writer, calculatorType domain.CalculatorType, result domain.Result) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	printed := make(map[string]bool, len(result))
	if c, ok := catalog.Get(calculatorType); ok {
		for _, f := range c.Results {
			v, ok := result[f.Key]
			if !ok {
				continue
			}
			printed[f.Key] = true
			fmt.Fprintf(tw, "%s\t%s\n", f.Label, formatValue(v, f.Format, f.Suffix))
		}
	}

	for _, key := range result.Keys() {
		if !printed[key] {
			fmt.Fprintf(tw, "%s\t%s\n", key, strconv.FormatFloat(result[key], 'f', -1, 64))
		}
	}
	return tw.Flush()
}

func formatValue(v float64, format domain.FormatKind, suffix string) string {
	var s string
	switch format {
	case domain.FormatCurrency:
		s = "₹" + strconv.FormatFloat(v, 'f', 0, 64)
	case domain.FormatCurrency2:
		s = "₹" + strconv.FormatFloat(v, 'f', 2, 64)
	case domain.FormatPercentage:
		s = strconv.FormatFloat(v, 'f', 2, 64) + "%"
	default:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	}
	if suffix != "" {
		s += " " + suffix
	}
	return s
}
