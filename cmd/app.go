// Package cmd implements the CLI application of the market simulator.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/marketsim"
	"github.com/etnz/marketsim/config"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")

	c.Register(&shellCmd{}, "session")

	c.Register(&viewCmd{}, "market")
	c.Register(&marketCmd{}, "market")
	c.Register(&updateCmd{}, "market")
	c.Register(&importCmd{}, "market")

	c.Register(&portfolioCmd{}, "portfolio")
	c.Register(newBuyCmd(), "portfolio")
	c.Register(newSellCmd(), "portfolio")
	c.Register(&exportCmd{}, "portfolio")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	marketFile    = flag.String("market-file", "", "Path to the market file (default $MARKETSIM_MARKET_FILE or market.txt)")
	portfolioFile = flag.String("portfolio-file", "", "Path to the portfolio file (default $MARKETSIM_PORTFOLIO_FILE or portfolio.txt)")
	currency      = flag.String("currency", "", "Currency used to display prices (default $MARKETSIM_CURRENCY or USD)")
	Verbose       = flag.Bool("v", false, "log debug messages")
)

// cfg holds the environment defaults, replaced by Configure.
var cfg = &config.Config{
	MarketFile:    "market.txt",
	PortfolioFile: "portfolio.txt",
	Currency:      "USD",
	Style:         "auto",
	LogLevel:      "info",
}

// Configure installs the environment defaults and the logger. It must be
// called after the command line flags are parsed.
func Configure(c *config.Config) {
	cfg = c
	level := c.Level()
	if *Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).With(
		slog.String("session", uuid.NewString()),
	)
	slog.SetDefault(logger)
}

// MarketFile returns the market file path in use.
func MarketFile() string {
	if *marketFile != "" {
		return *marketFile
	}
	return cfg.MarketFile
}

// PortfolioFile returns the portfolio file path in use.
func PortfolioFile() string {
	if *portfolioFile != "" {
		return *portfolioFile
	}
	return cfg.PortfolioFile
}

// Currency returns the display currency.
func Currency() string {
	if *currency != "" {
		return *currency
	}
	return cfg.Currency
}

// session is the market and portfolio loaded from their files.
type session struct {
	marketFile, portfolioFile string
	market                    *marketsim.Market
	portfolio                 *marketsim.Portfolio
}

// openSession loads both files. The file paths default to the global flags.
func openSession(mfile, pfile string) (*session, error) {
	if mfile == "" {
		mfile = MarketFile()
	}
	if pfile == "" {
		pfile = PortfolioFile()
	}
	market, err := marketsim.LoadMarket(mfile)
	if err != nil {
		return nil, err
	}
	portfolio, err := marketsim.LoadPortfolio(pfile)
	if err != nil {
		return nil, err
	}
	return &session{
		marketFile:    mfile,
		portfolioFile: pfile,
		market:        market,
		portfolio:     portfolio,
	}, nil
}

// close saves the market and the portfolio back to their files. Both saves
// are attempted even if the first one fails.
func (s *session) close() error {
	errM := marketsim.SaveMarket(s.marketFile, s.market)
	errP := marketsim.SavePortfolio(s.portfolioFile, s.portfolio)
	return errors.Join(errM, errP)
}

// openSessionOrFail is openSession for commands: errors are printed.
func openSessionOrFail(mfile, pfile string) (*session, subcommands.ExitStatus) {
	s, err := openSession(mfile, pfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading files: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return s, subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal, falling back to raw markdown.
func printMarkdown(md string) {
	opt := glamour.WithAutoStyle()
	if cfg.Style != "" && cfg.Style != "auto" {
		opt = glamour.WithStandardStyle(cfg.Style)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err != nil {
		slog.Debug("cannot create markdown renderer", "err", err)
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		slog.Debug("cannot render markdown", "err", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
