// Package marketsim is the trading engine of a single user stock market
// simulator.
//
// The core functionalities include:
//   - Market: the tradable instruments, each with a price and a number of
//     total shares, keyed by a four character ticker.
//   - Portfolio: a cash balance and the number of shares held per ticker.
//   - Trading: Buy and Sell validate an order against the market and the
//     portfolio and apply it to the portfolio. Cash and shares are conserved
//     exactly, a rejected order changes nothing.
//   - Data Persistence: the market and the portfolio are stored in plain,
//     human-readable text files, one record per line.
//
// This package serves as the foundational logic for the `marketsim`
// command-line tool.
package marketsim
