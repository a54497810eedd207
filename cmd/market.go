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

type marketCmd struct{}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "display all the stocks of the market" }
func (*marketCmd) Usage() string {
	return `marketsim market

  Displays every stock with its total shares, price and market cap.
`
}
func (c *marketCmd) SetFlags(f *flag.FlagSet) {}
func (c *marketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}
	market, err := marketsim.LoadMarket(MarketFile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.MarketMarkdown(market, Currency()))
	return subcommands.ExitSuccess
}

type viewCmd struct{}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "display a single stock" }
func (*viewCmd) Usage() string {
	return `marketsim view <ticker>

  Displays the total shares, price and market cap of a stock.
`
}
func (c *viewCmd) SetFlags(f *flag.FlagSet) {}
func (c *viewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one ticker")
		return subcommands.ExitUsageError
	}
	market, err := marketsim.LoadMarket(MarketFile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market: %v\n", err)
		return subcommands.ExitFailure
	}
	stock, ok := market.Lookup(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Stock %q not found.\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StockMarkdown(stock, Currency()))
	return subcommands.ExitSuccess
}

type updateCmd struct{}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "force the market to update" }
func (*updateCmd) Usage() string {
	return `marketsim update

  Prices never move in the simulator: this only checks the market file loads.
`
}
func (c *updateCmd) SetFlags(f *flag.FlagSet) {}
func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}
	if _, err := marketsim.LoadMarket(MarketFile()); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
