package marketsim

import (
	"fmt"
	"iter"
	"strings"
)

// Share is the quantity of one instrument held in the portfolio.
type Share struct {
	ticker Ticker
	count  Quantity
}

func (s *Share) Ticker() Ticker  { return s.ticker }
func (s *Share) Count() Quantity { return s.count }

// Portfolio is a cash balance and a set of holdings.
//
// Like the market, holdings are kept most recent first and a duplicate
// ticker shadows the older record. A holding is never removed, even when
// its count drops to zero.
type Portfolio struct {
	balance Money
	shares  []*Share
	index   map[Ticker]*Share
}

// NewPortfolio returns an empty portfolio with the given cash balance.
func NewPortfolio(balance Money) *Portfolio {
	return &Portfolio{
		balance: balance,
		shares:  make([]*Share, 0),
		index:   make(map[Ticker]*Share),
	}
}

func (p *Portfolio) Balance() Money { return p.balance }

// InsertShare adds a new holding. A zero count is accepted.
func (p *Portfolio) InsertShare(ticker string, count Quantity) error {
	if count.IsNegative() {
		return fmt.Errorf("%w: share count must be positive, got %s", ErrValidation, count)
	}
	s := &Share{
		ticker: NewTicker(ticker),
		count:  count,
	}
	p.shares = append([]*Share{s}, p.shares...)
	p.index[s.ticker] = s
	return nil
}

// LookupShare returns the most recently inserted holding for ticker.
func (p *Portfolio) LookupShare(ticker string) (*Share, bool) {
	if p == nil {
		return nil, false
	}
	s, ok := p.index[NewTicker(ticker)]
	return s, ok
}

// Len returns the number of holdings, shadowed duplicates included.
func (p *Portfolio) Len() int { return len(p.shares) }

// Shares iterates over all holdings, most recent first.
func (p *Portfolio) Shares() iter.Seq[*Share] {
	return func(yield func(*Share) bool) {
		for _, s := range p.shares {
			if !yield(s) {
				return
			}
		}
	}
}

// Render returns the balance followed by one line per holding.
func (p *Portfolio) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "balance: %s\n", p.balance.Fixed(6))
	for s := range p.Shares() {
		fmt.Fprintf(&b, "%4s -> shares: %8s\n", s.ticker, s.count.Fixed(2))
	}
	return b.String()
}
