package marketsim

import (
	"errors"
	"fmt"
)

// ErrValidation is returned when a value is rejected on insertion.
var ErrValidation = errors.New("validation error")

// Trade failures. Only the first failing check of a trade is reported.
var (
	ErrNoMarket           = errors.New("no market provided")
	ErrNoPortfolio        = errors.New("no portfolio provided")
	ErrInvalidCount       = errors.New("share count must be positive")
	ErrStockNotFound      = errors.New("stock not available")
	ErrNoSuchHolding      = errors.New("no shares of that stock in portfolio")
	ErrInsufficientShares = errors.New("not enough shares available")
	ErrInsufficientFunds  = errors.New("you can't afford that trade")
)

// TradeError reports a rejected buy or sell. The portfolio is left untouched.
type TradeError struct {
	Op     string // "buy" or "sell"
	Ticker Ticker
	Count  Quantity
	Err    error
}

func (e *TradeError) Error() string {
	return fmt.Sprintf("cannot %s %s shares of %q: %v", e.Op, e.Count, e.Ticker, e.Err)
}

func (e *TradeError) Unwrap() error { return e.Err }

// LoadError reports a record that could not be decoded. Loading is atomic:
// when a LoadError is returned no partial market or portfolio is.
type LoadError struct {
	File string // empty when decoding from a bare reader
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("load error on line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("load error %s:%d: %v", e.File, e.Line, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
