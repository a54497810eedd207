package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/marketsim"
	"github.com/etnz/marketsim/renderer"
	"github.com/google/subcommands"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the cash balance and the holdings" }
func (*portfolioCmd) Usage() string {
	return `marketsim portfolio

  Displays the portfolio balance and the holdings valued at the market price.
`
}
func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {}
func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}
	s, status := openSessionOrFail("", "")
	if s == nil {
		return status
	}
	printMarkdown(renderer.PortfolioMarkdown(s.portfolio, s.market, Currency()))
	return subcommands.ExitSuccess
}

// tradeCmd is a one shot buy or sell, saved immediately.
type tradeCmd struct {
	op    string
	trade func(*marketsim.Market, *marketsim.Portfolio, string, marketsim.Quantity) error
}

func (c *tradeCmd) Name() string { return c.op }
func (c *tradeCmd) Synopsis() string {
	return c.op + " shares of a stock at the market price"
}
func (c *tradeCmd) Usage() string {
	return fmt.Sprintf(`marketsim %s <ticker> <count>

  Validates the order against the market and the portfolio, applies it, then
  saves the portfolio.
`, c.op)
}
func (c *tradeCmd) SetFlags(f *flag.FlagSet) {}
func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "expected <ticker> <count>")
		return subcommands.ExitUsageError
	}
	count, err := marketsim.ParseQuantity(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing count: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, status := openSessionOrFail("", "")
	if s == nil {
		return status
	}
	ticker := string(marketsim.NewTicker(f.Arg(0)))
	if err := c.trade(s.market, s.portfolio, ticker, count); err != nil {
		fmt.Fprintln(os.Stderr, tradeMessage(c.op, err))
		return subcommands.ExitFailure
	}
	if err := s.close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving files: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully %s %s shares of %s, balance is now %s\n", pastTense(c.op), count.Fixed(3), ticker, s.portfolio.Balance().Fixed(2))
	return subcommands.ExitSuccess
}

func pastTense(op string) string {
	if op == "sell" {
		return "sold"
	}
	return "bought"
}

func newBuyCmd() *tradeCmd  { return &tradeCmd{op: "buy", trade: marketsim.Buy} }
func newSellCmd() *tradeCmd { return &tradeCmd{op: "sell", trade: marketsim.Sell} }
