// Package renderer renders the market and the portfolio as Markdown.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/marketsim"
)

// StockMarkdown renders a single stock.
func StockMarkdown(s *marketsim.Stock, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.Ticker())
	fmt.Fprintln(&b, "| Total Shares | Price | Market Cap |")
	fmt.Fprintln(&b, "|---:|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s | %s |\n",
		s.TotalShares().Fixed(2),
		formatMoney(s.Price(), currency),
		formatMoney(s.Cap(), currency),
	)
	return b.String()
}

// MarketMarkdown renders every stock of the market, most recent first.
func MarketMarkdown(m *marketsim.Market, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Market\n\n")
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintln(w, "| Ticker | Total Shares | Price | Market Cap |")
		fmt.Fprintln(w, "|:---|---:|---:|---:|")
		for s := range m.Stocks() {
			fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
				s.Ticker(),
				s.TotalShares().Fixed(2),
				formatMoney(s.Price(), currency),
				formatMoney(s.Cap(), currency),
			)
		}
		return m.Len() > 0
	})
	if m.Len() == 0 {
		fmt.Fprintln(&b, "*No stock listed.*")
	}
	return b.String()
}

// PortfolioMarkdown renders the cash balance and the holdings. Holdings are
// valued at the market price when the market lists them.
func PortfolioMarkdown(p *marketsim.Portfolio, m *marketsim.Market, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio\n\n")
	fmt.Fprintf(&b, "**Balance**: %s\n\n", formatMoney(p.Balance(), currency))

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintln(w, "## Holdings")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "| Ticker | Shares | Price | Value |")
		fmt.Fprintln(w, "|:---|---:|---:|---:|")
		total := p.Balance()
		for s := range p.Shares() {
			price, value := "-", "-"
			if stock, ok := m.Lookup(string(s.Ticker())); ok {
				v := stock.Price().Mul(s.Count())
				total = total.Add(v)
				price, value = formatMoney(stock.Price(), currency), formatMoney(v, currency)
			}
			fmt.Fprintf(w, "| %s | %s | %s | %s |\n", s.Ticker(), s.Count().Fixed(2), price, value)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "**Total Value**: %s\n", formatMoney(total, currency))
		return p.Len() > 0
	})
	return b.String()
}
