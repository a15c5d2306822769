// Package strategy implements a rule-table bidding strategy.
//
// For every point of an auction BuildRules produces an ordered table of
// rules, each pairing a hand criterion with a bid. Deciding a bid scans the
// table and takes the first rule whose criterion matches the hand.
// Interpreting a bid runs the scan backwards: a hand that made the bid
// failed every earlier rule and matched a rule naming that bid.
//
// # Modeled auctions
//
//   - opening, while partner has not called or has only passed
//   - pass after partner passed or reached game
//   - responses to 1N and to a one-level suit opening
//   - opener's rebid after 1N, after a major raise and after a one-level
//     major response
//
// Other shapes, such as a 1N or 2N response to a suit opening, 1C-1D,
// two-level new suits, minor raises and every later round, have no rules.
// Deciding there fails with ErrNoApplicableRule.
//
// # Engine
//
// Strategy wraps the tables with an optional LRU cache keyed on the
// history, a structured logger and Prometheus metrics. The package level
// DecideBid and InterpretBid use an engine with none of them.
package strategy
