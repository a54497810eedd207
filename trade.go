package marketsim

import "log/slog"

// Buy purchases count shares of ticker at the market price.
//
// Checks run in a fixed order and only the first failure is reported:
// market and portfolio presence, count, market listing, total shares, then
// cash balance. On failure nothing is modified.
func Buy(m *Market, p *Portfolio, ticker string, count Quantity) error {
	fail := func(err error) error {
		return &TradeError{Op: "buy", Ticker: NewTicker(ticker), Count: count, Err: err}
	}
	if m == nil {
		return fail(ErrNoMarket)
	}
	if p == nil {
		return fail(ErrNoPortfolio)
	}
	if !count.IsPositive() {
		return fail(ErrInvalidCount)
	}
	stock, ok := m.Lookup(ticker)
	if !ok {
		return fail(ErrStockNotFound)
	}
	// total shares is a cap on a single order, it is never consumed.
	if count.GreaterThan(stock.totalShares) {
		return fail(ErrInsufficientShares)
	}
	cost := stock.price.Mul(count)
	if p.balance.LessThan(cost) {
		return fail(ErrInsufficientFunds)
	}

	if share, ok := p.LookupShare(ticker); ok {
		share.count = share.count.Add(count)
	} else if err := p.InsertShare(ticker, count); err != nil {
		return fail(err)
	}
	p.balance = p.balance.Sub(cost)

	slog.Debug("bought shares", "ticker", stock.ticker, "count", count, "cost", cost, "balance", p.balance)
	return nil
}

// Sell sells count held shares of ticker at the market price.
//
// Unlike Buy, the holding is checked before the market listing.
func Sell(m *Market, p *Portfolio, ticker string, count Quantity) error {
	fail := func(err error) error {
		return &TradeError{Op: "sell", Ticker: NewTicker(ticker), Count: count, Err: err}
	}
	if m == nil {
		return fail(ErrNoMarket)
	}
	if p == nil {
		return fail(ErrNoPortfolio)
	}
	if !count.IsPositive() {
		return fail(ErrInvalidCount)
	}
	share, ok := p.LookupShare(ticker)
	if !ok {
		return fail(ErrNoSuchHolding)
	}
	stock, ok := m.Lookup(ticker)
	if !ok {
		return fail(ErrStockNotFound)
	}
	if count.GreaterThan(share.count) {
		return fail(ErrInsufficientShares)
	}

	proceeds := stock.price.Mul(count)
	share.count = share.count.Sub(count)
	p.balance = p.balance.Add(proceeds)

	slog.Debug("sold shares", "ticker", stock.ticker, "count", count, "proceeds", proceeds, "balance", p.balance)
	return nil
}
