package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/marketsim"
	"github.com/google/subcommands"
)

type importCmd struct {
	file  string
	query marketsim.QuoteQuery
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "add stocks to the market from a JSON quotes document" }
func (*importCmd) Usage() string {
	return `marketsim import -f <quotes.json> [-quotes <path>] [-ticker <path>] [-price <path>] [-shares <path>]

  Inserts every quote found in a JSON document into the market file. Quotes
  are located with JSONPath expressions, -quotes on the document, the others
  on each quote. A ticker already listed is shadowed by the imported quote.

Usage Examples:
$ marketsim import -f quotes.json -quotes '$.data[*]' -ticker '$.symbol'
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "JSON quotes file (required)")
	f.StringVar(&c.query.Quotes, "quotes", marketsim.DefaultQuoteQuery.Quotes, "JSONPath selecting the list of quotes")
	f.StringVar(&c.query.Ticker, "ticker", marketsim.DefaultQuoteQuery.Ticker, "JSONPath of the ticker in a quote")
	f.StringVar(&c.query.Price, "price", marketsim.DefaultQuoteQuery.Price, "JSONPath of the price in a quote")
	f.StringVar(&c.query.TotalShares, "shares", marketsim.DefaultQuoteQuery.TotalShares, "JSONPath of the total shares in a quote")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" || f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "-f <quotes.json> is required and no arguments are expected")
		return subcommands.ExitUsageError
	}

	market, err := marketsim.LoadMarket(MarketFile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market: %v\n", err)
		return subcommands.ExitFailure
	}

	r, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening quotes file %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	n, err := marketsim.ImportQuotes(market, r, c.query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	if err := marketsim.SaveMarket(MarketFile(), market); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving market: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully imported %d stocks into %s\n", n, MarketFile())
	return subcommands.ExitSuccess
}
