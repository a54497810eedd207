package marketsim

import (
	"bytes"
	"errors"
	"testing"
)

// snapshot returns the encoded portfolio, to check a failed trade left it untouched.
func snapshot(t *testing.T, p *Portfolio) string {
	t.Helper()
	var b bytes.Buffer
	if err := EncodePortfolio(&b, p); err != nil {
		t.Fatalf("EncodePortfolio() error = %v", err)
	}
	return b.String()
}

func TestBuy(t *testing.T) {
	testCases := []struct {
		name    string
		market  []string
		balance string
		ticker  string
		count   Quantity
		wantErr error
	}{
		{"Success", []string{"AAPL 150 1000"}, "1000", "AAPL", Q(5), nil},
		{"Invalid count before missing stock", []string{"GOOG 10 10"}, "1000", "AAPL", Q(-5), ErrInvalidCount},
		{"Zero count", []string{"AAPL 150 1000"}, "1000", "AAPL", Q(0), ErrInvalidCount},
		{"Stock not found", []string{"AAPL 150 1000"}, "1000", "ZZZZ", Q(1), ErrStockNotFound},
		{"Exactly total shares", []string{"AAPL 1 10"}, "1000", "AAPL", Q(10), nil},
		{"One more than total shares", []string{"AAPL 1 10"}, "1000", "AAPL", Q(11), ErrInsufficientShares},
		{"Shares checked before funds", []string{"AAPL 150 10"}, "0", "AAPL", Q(11), ErrInsufficientShares},
		{"Insufficient funds", []string{"AAPL 150 1000"}, "1000", "AAPL", Q(7), ErrInsufficientFunds},
		{"Exact funds", []string{"AAPL 150 1000"}, "1050", "AAPL", Q(7), nil},
		{"Case sensitive", []string{"AAPL 150 1000"}, "1000", "aapl", Q(1), ErrStockNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMarket(t, tc.market...)
			p := newTestPortfolio(t, tc.balance)
			before := snapshot(t, p)

			err := Buy(m, p, tc.ticker, tc.count)
			if !errors.Is(err, tc.wantErr) || (err == nil) != (tc.wantErr == nil) {
				t.Fatalf("Buy(%q, %v) error = %v, want %v", tc.ticker, tc.count, err, tc.wantErr)
			}
			if err != nil {
				var terr *TradeError
				if !errors.As(err, &terr) || terr.Op != "buy" {
					t.Errorf("Buy() error = %#v, want a *TradeError for buy", err)
				}
				if after := snapshot(t, p); after != before {
					t.Errorf("failed Buy() modified the portfolio:\n%s\nwant\n%s", after, before)
				}
			}
		})
	}
}

func TestBuy_NoMarketOrPortfolio(t *testing.T) {
	m := newTestMarket(t, "AAPL 150 1000")
	p := newTestPortfolio(t, "1000")

	if err := Buy(nil, p, "AAPL", Q(-1)); !errors.Is(err, ErrNoMarket) {
		t.Errorf("Buy(nil market) error = %v, want ErrNoMarket", err)
	}
	if err := Buy(m, nil, "AAPL", Q(-1)); !errors.Is(err, ErrNoPortfolio) {
		t.Errorf("Buy(nil portfolio) error = %v, want ErrNoPortfolio", err)
	}
	if err := Sell(nil, p, "AAPL", Q(-1)); !errors.Is(err, ErrNoMarket) {
		t.Errorf("Sell(nil market) error = %v, want ErrNoMarket", err)
	}
	if err := Sell(m, nil, "AAPL", Q(-1)); !errors.Is(err, ErrNoPortfolio) {
		t.Errorf("Sell(nil portfolio) error = %v, want ErrNoPortfolio", err)
	}
}

func TestSell(t *testing.T) {
	testCases := []struct {
		name      string
		market    []string
		portfolio []string
		ticker    string
		count     Quantity
		wantErr   error
	}{
		{"Success", []string{"AAPL 150 1000"}, []string{"0", "AAPL 5"}, "AAPL", Q(5), nil},
		{"Invalid count", []string{"AAPL 150 1000"}, []string{"0", "AAPL 5"}, "AAPL", Q(0), ErrInvalidCount},
		{"Invalid count before holding", []string{}, []string{"0"}, "AAPL", Q(-1), ErrInvalidCount},
		{"No holding", []string{"AAPL 150 1000"}, []string{"0"}, "AAPL", Q(1), ErrNoSuchHolding},
		{"Holding checked before market", []string{}, []string{"0"}, "AAPL", Q(1), ErrNoSuchHolding},
		{"Delisted stock", []string{"GOOG 10 10"}, []string{"0", "AAPL 5"}, "AAPL", Q(1), ErrStockNotFound},
		{"Too many shares", []string{"AAPL 150 1000"}, []string{"0", "AAPL 5"}, "AAPL", Q(10), ErrInsufficientShares},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMarket(t, tc.market...)
			p := newTestPortfolio(t, tc.portfolio...)
			before := snapshot(t, p)

			err := Sell(m, p, tc.ticker, tc.count)
			if !errors.Is(err, tc.wantErr) || (err == nil) != (tc.wantErr == nil) {
				t.Fatalf("Sell(%q, %v) error = %v, want %v", tc.ticker, tc.count, err, tc.wantErr)
			}
			if err != nil {
				if after := snapshot(t, p); after != before {
					t.Errorf("failed Sell() modified the portfolio:\n%s\nwant\n%s", after, before)
				}
			}
		})
	}
}

func TestSell_KeepsZeroHolding(t *testing.T) {
	m := newTestMarket(t, "AAPL 150 1000")
	p := newTestPortfolio(t, "0", "AAPL 5")

	if err := Sell(m, p, "AAPL", Q(5)); err != nil {
		t.Fatalf("Sell() error = %v", err)
	}
	s, ok := p.LookupShare("AAPL")
	if !ok {
		t.Fatal("holding removed after selling all shares")
	}
	if !s.Count().IsZero() {
		t.Errorf("Count() = %v, want 0", s.Count())
	}
	if !p.Balance().Equal(M(750)) {
		t.Errorf("Balance() = %v, want 750", p.Balance())
	}
}

// Scenario: buy then oversell.
func TestTrade_Scenario(t *testing.T) {
	m := newTestMarket(t, "AAPL 150.000000 1000.000000")
	p := newTestPortfolio(t, "1000.000000")

	if err := Buy(m, p, "AAPL", Q(5)); err != nil {
		t.Fatalf("Buy(AAPL, 5) error = %v", err)
	}
	if got := p.Balance().Fixed(6); got != "250.000000" {
		t.Errorf("balance after buy = %s, want 250.000000", got)
	}
	share, ok := p.LookupShare("AAPL")
	if !ok {
		t.Fatal("no AAPL holding after buy")
	}
	if got := share.Count().Fixed(6); got != "5.000000" {
		t.Errorf("AAPL count after buy = %s, want 5.000000", got)
	}

	if err := Sell(m, p, "AAPL", Q(10)); !errors.Is(err, ErrInsufficientShares) {
		t.Fatalf("Sell(AAPL, 10) error = %v, want ErrInsufficientShares", err)
	}
	if got := share.Count().Fixed(6); got != "5.000000" {
		t.Errorf("AAPL count after failed sell = %s, want 5.000000", got)
	}
	if got := p.Balance().Fixed(6); got != "250.000000" {
		t.Errorf("balance after failed sell = %s, want 250.000000", got)
	}

	// a second buy adds to the existing holding
	if err := Buy(m, p, "AAPL", Q(1)); err != nil {
		t.Fatalf("Buy(AAPL, 1) error = %v", err)
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want a single AAPL holding", p.Len())
	}
	if !share.Count().Equal(Q(6)) {
		t.Errorf("AAPL count = %v, want 6", share.Count())
	}
}

func TestTrade_Conservation(t *testing.T) {
	m := newTestMarket(t,
		"AAPL 150.10 1000",
		"GOOG 0.3 100000",
		"MSFT 333.333333 10",
	)
	p := newTestPortfolio(t, "100000")
	start := p.Balance()

	orders := []struct {
		buy    bool
		ticker string
		count  Quantity
	}{
		{true, "GOOG", Q(0.1)},
		{true, "GOOG", Q(0.2)},
		{true, "AAPL", Q(3)},
		{false, "GOOG", Q(0.3)},
		{true, "MSFT", Q(7)},
		{false, "AAPL", Q(1.5)},
		{true, "ZZZZ", Q(1)},  // rejected
		{false, "MSFT", Q(8)}, // rejected
		{false, "MSFT", Q(7)},
	}

	want := start
	for _, o := range orders {
		stock, listed := m.Lookup(o.ticker)
		var err error
		if o.buy {
			err = Buy(m, p, o.ticker, o.count)
			if err == nil {
				want = want.Sub(stock.Price().Mul(o.count))
			}
		} else {
			err = Sell(m, p, o.ticker, o.count)
			if err == nil {
				want = want.Add(stock.Price().Mul(o.count))
			}
		}
		if err == nil && !listed {
			t.Fatalf("trade on unlisted %s succeeded", o.ticker)
		}
	}

	if !p.Balance().Equal(want) {
		t.Errorf("Balance() = %v, want exactly %v", p.Balance(), want)
	}
	goog, _ := p.LookupShare("GOOG")
	if !goog.Count().IsZero() {
		t.Errorf("GOOG count = %v, want exactly 0", goog.Count())
	}
	aapl, _ := p.LookupShare("AAPL")
	if !aapl.Count().Equal(Q(1.5)) {
		t.Errorf("AAPL count = %v, want 1.5", aapl.Count())
	}
	// everything sold back but AAPL at an unchanged price.
	if wantBalance := start.Sub(M(150.10).Mul(Q(1.5))); !p.Balance().Equal(wantBalance) {
		t.Errorf("Balance() = %v, want %v", p.Balance(), wantBalance)
	}
}
