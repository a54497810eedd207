package marketsim

// TickerLength is the fixed width of a ticker symbol.
const TickerLength = 4

// Ticker identifies an instrument in both the market and the portfolio.
// Comparison is case-sensitive.
type Ticker string

// NewTicker returns s truncated to TickerLength bytes.
// There is no minimum length.
func NewTicker(s string) Ticker {
	if len(s) > TickerLength {
		s = s[:TickerLength]
	}
	return Ticker(s)
}

func (t Ticker) String() string { return string(t) }
