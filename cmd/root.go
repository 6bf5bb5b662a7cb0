package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fincalc",
	Short: "Financial calculators for Indian savings, loans and taxes",
	Long: `fincalc runs 35 financial calculators: SIP, PPF, EMI, income tax,
GST, XIRR and more.

Commands:
  serve    - HTTP API
  calc     - run one calculation from the command line
  catalog  - list calculators and their fields
  rules    - show the input rules of a calculator`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
