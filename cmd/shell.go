package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/marketsim"
	"github.com/google/subcommands"
)

// shellCmd runs the interactive menu session.
type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "trade interactively, then save the market and portfolio" }
func (*shellCmd) Usage() string {
	return `marketsim [shell] [<market_file> [<portfolio_file>]]

  Loads the market and the portfolio, then reads commands from the standard
  input until 'q'. Both files are saved on exit.
  This is the default command. A market file named like a subcommand
  (e.g. 'market') is read as that subcommand: write 'marketsim shell market'
  or 'marketsim ./market' instead.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "at most two arguments expected: <market_file> <portfolio_file>")
		return subcommands.ExitUsageError
	}
	s, status := openSessionOrFail(f.Arg(0), f.Arg(1))
	if s == nil {
		return status
	}

	sh := NewShell(s.market, s.portfolio, os.Stdin, os.Stdout)
	if err := sh.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Session interrupted: %v\n", err)
	}

	if err := s.close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving files: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// Shell is the interactive menu. It borrows the market and the portfolio for
// the duration of Run, the caller saves them afterwards.
type Shell struct {
	market    *marketsim.Market
	portfolio *marketsim.Portfolio
	in        *bufio.Scanner
	out       io.Writer
}

// NewShell returns a shell reading commands from in and writing to out.
func NewShell(m *marketsim.Market, p *marketsim.Portfolio, in io.Reader, out io.Writer) *Shell {
	return &Shell{market: m, portfolio: p, in: bufio.NewScanner(in), out: out}
}

const help = `
Enter a command from the list below:
v) view a specific stock
a) view all stocks
p) view portfolio
b) buy stock
s) sell stock
u) force the market to update
q) quit
`

// Run processes commands until 'q', the end of the input or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Welcome to the Marketsim!")
	fmt.Fprint(s.out, help)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, "\n> ")
		line, ok := s.readLine()
		if !ok {
			// end of input is a quit
			fmt.Fprintln(s.out)
			return s.in.Err()
		}

		// only the first character counts, like a menu key.
		var command byte
		if line != "" {
			command = line[0]
		}
		switch command {
		case 'v':
			s.view()
		case 'a':
			fmt.Fprintln(s.out, "Current market:")
			fmt.Fprint(s.out, s.market.Render())
		case 'p':
			fmt.Fprintln(s.out, "Current portfolio:")
			fmt.Fprint(s.out, s.portfolio.Render())
		case 'b':
			s.trade("buy", "purchase", marketsim.Buy)
		case 's':
			s.trade("sell", "sell", marketsim.Sell)
		case 'u':
			// prices never move in this simulator.
		case 'q':
			return nil
		default:
			fmt.Fprint(s.out, help)
		}
	}
}

// readLine returns the next input line, trimmed.
func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// readTicker prompts for a ticker and keeps the first word.
func (s *Shell) readTicker(action string) (string, bool) {
	fmt.Fprintf(s.out, "Enter the ticker of the stock you wish to %s.\n> ", action)
	line, ok := s.readLine()
	if !ok {
		return "", false
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", true
	}
	return string(marketsim.NewTicker(fields[0])), true
}

func (s *Shell) view() {
	ticker, ok := s.readTicker("view")
	if !ok {
		return
	}
	stock, found := s.market.Lookup(ticker)
	if !found {
		fmt.Fprintln(s.out, "Stock not found.")
		return
	}
	fmt.Fprintln(s.out, stock.Render())
}

func (s *Shell) trade(op, verb string, do func(*marketsim.Market, *marketsim.Portfolio, string, marketsim.Quantity) error) {
	ticker, ok := s.readTicker(op)
	if !ok {
		return
	}
	fmt.Fprintf(s.out, "Enter the amount of shares you'd like to %s.\n> ", verb)
	line, ok := s.readLine()
	if !ok {
		return
	}
	count, err := marketsim.ParseQuantity(line)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid number of shares.")
		return
	}

	if err := do(s.market, s.portfolio, ticker, count); err != nil {
		fmt.Fprintln(s.out, tradeMessage(op, err))
		return
	}
	past := "Bought"
	if op == "sell" {
		past = "Sold"
	}
	fmt.Fprintf(s.out, "%s %s shares of %s.\n", past, count.Fixed(3), ticker)
}

// tradeMessage returns the user facing explanation of a rejected trade.
func tradeMessage(op string, err error) string {
	switch {
	case errors.Is(err, marketsim.ErrNoMarket), errors.Is(err, marketsim.ErrNoPortfolio):
		return "No market or portfolio provided."
	case errors.Is(err, marketsim.ErrInvalidCount):
		if op == "sell" {
			return "Shares to sell must be positive."
		}
		return "Shares desired must be positive."
	case errors.Is(err, marketsim.ErrStockNotFound):
		if op == "sell" {
			return "That stock doesn't exist in the market."
		}
		return "Stock not available."
	case errors.Is(err, marketsim.ErrNoSuchHolding):
		return "No shares of that stock in portfolio available."
	case errors.Is(err, marketsim.ErrInsufficientShares):
		return "Not enough shares available."
	case errors.Is(err, marketsim.ErrInsufficientFunds):
		return "You can't afford that trade."
	default:
		return err.Error()
	}
}
