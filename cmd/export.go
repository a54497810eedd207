package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/marketsim/report"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the market and the portfolio to an XLSX workbook" }
func (*exportCmd) Usage() string {
	return `marketsim export [-o <report.xlsx>]

  Writes a workbook with a Market sheet and a Portfolio sheet.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "marketsim.xlsx", "output workbook")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}
	s, status := openSessionOrFail("", "")
	if s == nil {
		return status
	}

	data, err := report.Generate(s.market, s.portfolio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully exported to %s\n", c.output)
	return subcommands.ExitSuccess
}
