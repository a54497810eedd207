package marketsim

import (
	"fmt"
	"iter"
	"strings"
)

// Stock is a tradable instrument of the market.
type Stock struct {
	ticker      Ticker
	price       Money
	totalShares Quantity
}

func (s *Stock) Ticker() Ticker        { return s.ticker }
func (s *Stock) Price() Money          { return s.price }
func (s *Stock) TotalShares() Quantity { return s.totalShares }

// Cap returns the market capitalization, price times total shares.
func (s *Stock) Cap() Money { return s.price.Mul(s.totalShares) }

// Render returns the one line description of the stock.
func (s *Stock) Render() string {
	return fmt.Sprintf("%4s -> total shares: %8s, price: $ %7s, cap: $ %11s",
		s.ticker,
		s.totalShares.Fixed(2),
		s.price.Fixed(2),
		s.Cap().Fixed(2),
	)
}

// Market holds the tradable instruments.
//
// Stocks are kept most recent first. Inserting a ticker twice keeps both
// records but the latest one shadows the other for Lookup.
type Market struct {
	stocks []*Stock
	index  map[Ticker]*Stock
}

// NewMarket returns a new empty market.
func NewMarket() *Market {
	return &Market{
		stocks: make([]*Stock, 0),
		index:  make(map[Ticker]*Stock),
	}
}

// Insert adds a new instrument. Price and total shares must be positive.
func (m *Market) Insert(ticker string, price Money, totalShares Quantity) error {
	if !price.IsPositive() || !totalShares.IsPositive() {
		return fmt.Errorf("%w: stock price/share count must be positive, got price %s and %s shares", ErrValidation, price, totalShares)
	}
	s := &Stock{
		ticker:      NewTicker(ticker),
		price:       price,
		totalShares: totalShares,
	}
	m.stocks = append([]*Stock{s}, m.stocks...)
	m.index[s.ticker] = s
	return nil
}

// Lookup returns the most recently inserted stock for ticker.
func (m *Market) Lookup(ticker string) (*Stock, bool) {
	if m == nil {
		return nil, false
	}
	s, ok := m.index[NewTicker(ticker)]
	return s, ok
}

// Len returns the number of records, shadowed duplicates included.
func (m *Market) Len() int { return len(m.stocks) }

// Stocks iterates over all records, most recent first.
func (m *Market) Stocks() iter.Seq[*Stock] {
	return func(yield func(*Stock) bool) {
		for _, s := range m.stocks {
			if !yield(s) {
				return
			}
		}
	}
}

// Render returns the listing of every stock, one per line.
func (m *Market) Render() string {
	var b strings.Builder
	for s := range m.Stocks() {
		fmt.Fprintln(&b, s.Render())
	}
	return b.String()
}
